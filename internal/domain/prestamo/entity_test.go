//go:build unit

package prestamo_test

import (
	"testing"
	"time"

	"loandesk/internal/domain/prestamo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestNewPrestamo(t *testing.T) {
	p := prestamo.NewPrestamo(3, now, now.AddDate(0, 0, 7))
	assert.Equal(t, prestamo.StatusActivo, p.Estado())
	assert.True(t, p.IsActivo())
	assert.Equal(t, int64(3), p.SolicitudID())
}

func TestDevolver(t *testing.T) {
	p := prestamo.NewPrestamo(3, now, now.AddDate(0, 0, 7))
	require.NoError(t, p.Devolver())
	assert.Equal(t, prestamo.StatusDevuelto, p.Estado())

	assert.ErrorIs(t, p.Devolver(), prestamo.ErrNotActive)
}

func TestEstaVencido(t *testing.T) {
	p := prestamo.NewPrestamo(3, now, now.AddDate(0, 0, 7))

	assert.False(t, p.EstaVencido(now.AddDate(0, 0, 7)))
	assert.True(t, p.EstaVencido(now.AddDate(0, 0, 8)))

	require.NoError(t, p.Devolver())
	assert.False(t, p.EstaVencido(now.AddDate(0, 0, 8)))
}
