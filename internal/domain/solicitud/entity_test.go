//go:build unit

package solicitud_test

import (
	"testing"
	"time"

	"loandesk/internal/domain/solicitud"
	"loandesk/internal/pkg/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(solicitud.Linea{}),
}

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func services() *solicitud.Services {
	return &solicitud.Services{Clock: clock.NewMockClock(now)}
}

func TestNewSolicitud(t *testing.T) {
	t.Run("starts pending with the clock's timestamp", func(t *testing.T) {
		s, err := solicitud.NewSolicitud(services(), 4, []solicitud.LineaSpec{
			{MaterialID: 1, Cantidad: 2},
			{MaterialID: 2, Cantidad: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, solicitud.StatusPendiente, s.Estado())
		assert.True(t, s.IsPendiente())
		assert.Equal(t, now, s.FechaSolicitud())
		linea1, _ := solicitud.NewLinea(1, 2)
		linea2, _ := solicitud.NewLinea(2, 1)
		if diff := cmp.Diff([]solicitud.Linea{linea1, linea2}, s.Lineas(), cmpOpts...); diff != "" {
			t.Errorf("Lineas mismatch (-want +got):\n%s", diff)
		}
	})

	cases := []struct {
		name  string
		specs []solicitud.LineaSpec
		errIs error
	}{
		{name: "no lineas", specs: nil, errIs: solicitud.ErrEmptyLineas},
		{
			name: "duplicate material",
			specs: []solicitud.LineaSpec{
				{MaterialID: 1, Cantidad: 1},
				{MaterialID: 1, Cantidad: 2},
			},
			errIs: solicitud.ErrDuplicateMaterial,
		},
		{
			name:  "cantidad below one",
			specs: []solicitud.LineaSpec{{MaterialID: 1, Cantidad: 0}},
			errIs: solicitud.ErrInvalidCantidad,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := solicitud.NewSolicitud(services(), 4, tc.specs)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func pending(t *testing.T) *solicitud.Solicitud {
	t.Helper()
	s, err := solicitud.NewSolicitud(services(), 4, []solicitud.LineaSpec{{MaterialID: 1, Cantidad: 1}})
	require.NoError(t, err)
	return s
}

func TestAprobar(t *testing.T) {
	t.Run("pending with a future due date", func(t *testing.T) {
		s := pending(t)
		require.NoError(t, s.Aprobar(now, now.AddDate(0, 0, 7)))
		assert.Equal(t, solicitud.StatusAprobada, s.Estado())
		assert.True(t, s.Estado().IsTerminal())
	})

	t.Run("due date equal to now is refused", func(t *testing.T) {
		s := pending(t)
		assert.ErrorIs(t, s.Aprobar(now, now), solicitud.ErrFechaNoFutura)
		assert.True(t, s.IsPendiente())
	})

	t.Run("approved is terminal", func(t *testing.T) {
		s := pending(t)
		require.NoError(t, s.Aprobar(now, now.AddDate(0, 0, 7)))
		assert.ErrorIs(t, s.Aprobar(now, now.AddDate(0, 0, 7)), solicitud.ErrNotPending)
		assert.ErrorIs(t, s.Rechazar(), solicitud.ErrNotPending)
	})
}

func TestRechazar(t *testing.T) {
	s := pending(t)
	require.NoError(t, s.Rechazar())
	assert.Equal(t, solicitud.StatusRechazada, s.Estado())

	assert.ErrorIs(t, s.Rechazar(), solicitud.ErrNotPending)
	assert.ErrorIs(t, s.Aprobar(now, now.AddDate(0, 0, 1)), solicitud.ErrNotPending)
}

func TestStatusResolution(t *testing.T) {
	got, err := solicitud.NewStatus(" pendiente ")
	require.NoError(t, err)
	assert.Equal(t, solicitud.StatusPendiente, got)

	_, err = solicitud.NewStatus("cancelada")
	assert.ErrorIs(t, err, solicitud.ErrInvalidStatus)
}
