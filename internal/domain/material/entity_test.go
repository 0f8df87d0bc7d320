//go:build unit

package material_test

import (
	"testing"
	"time"

	"loandesk/internal/domain/material"
	"loandesk/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDisponible(t *testing.T, cantidad int32) *material.Material {
	t.Helper()
	m, err := material.NewMaterial(1, "Proyector Epson", ptr.To("HDMI"), cantidad, material.StatusDisponible)
	require.NoError(t, err)
	return m
}

func TestNewMaterial(t *testing.T) {
	t.Run("starts with disponible equal to total", func(t *testing.T) {
		m := newDisponible(t, 5)
		assert.Equal(t, int32(5), m.CantidadTotal())
		assert.Equal(t, int32(5), m.CantidadDisponible())
		assert.Equal(t, material.StatusDisponible, m.Estado())
	})

	t.Run("trims the nombre", func(t *testing.T) {
		m, err := material.NewMaterial(1, "  Laptop  ", nil, 1, material.StatusDisponible)
		require.NoError(t, err)
		assert.Equal(t, "Laptop", m.Nombre())
	})

	cases := []struct {
		name     string
		nombre   string
		cantidad int32
		estado   material.Status
		errIs    error
	}{
		{name: "empty nombre", nombre: "   ", cantidad: 1, estado: material.StatusDisponible, errIs: material.ErrEmptyNombre},
		{name: "negative cantidad", nombre: "Laptop", cantidad: -1, estado: material.StatusDisponible, errIs: material.ErrNegativeCantidad},
		{name: "unknown estado", nombre: "Laptop", cantidad: 1, estado: material.Status("Prestado"), errIs: material.ErrInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := material.NewMaterial(1, tc.nombre, nil, tc.cantidad, tc.estado)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestReservarStock(t *testing.T) {
	t.Run("decrements disponible", func(t *testing.T) {
		m := newDisponible(t, 5)
		require.NoError(t, m.ReservarStock(3))
		assert.Equal(t, int32(2), m.CantidadDisponible())
		assert.Equal(t, int32(5), m.CantidadTotal())
	})

	t.Run("more than available is refused", func(t *testing.T) {
		m := newDisponible(t, 2)
		err := m.ReservarStock(3)
		assert.ErrorIs(t, err, material.ErrInsufficientStock)
		assert.Equal(t, int32(2), m.CantidadDisponible())
	})

	t.Run("cantidad below one is refused", func(t *testing.T) {
		m := newDisponible(t, 2)
		assert.ErrorIs(t, m.ReservarStock(0), material.ErrInvalidCantidad)
	})

	t.Run("not solicitable while en reparacion", func(t *testing.T) {
		m := newDisponible(t, 2)
		require.NoError(t, m.CambiarEstado(material.StatusEnReparacion))
		assert.ErrorIs(t, m.ReservarStock(1), material.ErrNotSolicitable)
	})

	t.Run("not solicitable when exhausted", func(t *testing.T) {
		m := newDisponible(t, 1)
		require.NoError(t, m.ReservarStock(1))
		assert.False(t, m.EsSolicitable())
		assert.ErrorIs(t, m.ReservarStock(1), material.ErrNotSolicitable)
	})
}

func TestLiberarStock(t *testing.T) {
	t.Run("restores reserved units", func(t *testing.T) {
		m := newDisponible(t, 5)
		require.NoError(t, m.ReservarStock(4))
		require.NoError(t, m.LiberarStock(4))
		assert.Equal(t, int32(5), m.CantidadDisponible())
	})

	t.Run("never exceeds the total", func(t *testing.T) {
		m := newDisponible(t, 5)
		err := m.LiberarStock(1)
		assert.ErrorIs(t, err, material.ErrStockExceedsTotal)
		assert.Equal(t, int32(5), m.CantidadDisponible())
	})
}

func TestNewStatus(t *testing.T) {
	cases := []struct {
		in   string
		want material.Status
	}{
		{in: "Disponible", want: material.StatusDisponible},
		{in: " disponible ", want: material.StatusDisponible},
		{in: "EnReparacion", want: material.StatusEnReparacion},
		{in: "en reparación", want: material.StatusEnReparacion},
		{in: "de baja", want: material.StatusDeBaja},
	}
	for _, tc := range cases {
		got, err := material.NewStatus(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := material.NewStatus("prestado")
	assert.ErrorIs(t, err, material.ErrInvalidStatus)
}

func TestReconstructMaterial(t *testing.T) {
	now := time.Now()
	m := material.ReconstructMaterial(7, 2, "Microscopio", nil, 10, 4, material.StatusDisponible, now, now)
	assert.Equal(t, int64(7), m.ID())
	assert.Equal(t, int32(4), m.CantidadDisponible())
	assert.True(t, m.EsSolicitable())
}
