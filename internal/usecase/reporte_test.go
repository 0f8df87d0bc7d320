//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	domainprestamo "loandesk/internal/domain/prestamo"
	"loandesk/internal/infra/repository"
	"loandesk/internal/usecase"
	"loandesk/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPrestamoRepo struct {
	mock.Mock
}

func (m *mockPrestamoRepo) Create(ctx context.Context, q repository.Querier, p *domainprestamo.Prestamo) (int64, error) {
	args := m.Called(ctx, q, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPrestamoRepo) FindAll(ctx context.Context) ([]*queries.PrestamoView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*queries.PrestamoView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPrestamoRepo) FindByID(ctx context.Context, id int64) (*queries.PrestamoView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.PrestamoView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPrestamoRepo) FindByRange(ctx context.Context, desde, hasta time.Time, usuarioID *int64) ([]*queries.PrestamoView, error) {
	args := m.Called(ctx, desde, hasta, usuarioID)
	if v := args.Get(0); v != nil {
		return v.([]*queries.PrestamoView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPrestamoRepo) FindForUpdate(ctx context.Context, q repository.Querier, id int64) (*domainprestamo.Prestamo, error) {
	args := m.Called(ctx, q, id)
	if v := args.Get(0); v != nil {
		return v.(*domainprestamo.Prestamo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPrestamoRepo) UpdateEstado(ctx context.Context, q repository.Querier, id int64, estado domainprestamo.Status) error {
	args := m.Called(ctx, q, id, estado)
	return args.Error(0)
}

type mockDevolucionRepo struct {
	mock.Mock
}

func (m *mockDevolucionRepo) Create(ctx context.Context, q repository.Querier, prestamoID int64, fecha time.Time, observaciones string) (int64, error) {
	args := m.Called(ctx, q, prestamoID, fecha, observaciones)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDevolucionRepo) FindAll(ctx context.Context) ([]*queries.DevolucionView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*queries.DevolucionView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDevolucionRepo) FindByID(ctx context.Context, id int64) (*queries.DevolucionView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.DevolucionView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDevolucionRepo) FindByRange(ctx context.Context, desde, hasta time.Time, usuarioID *int64) ([]*queries.DevolucionView, error) {
	args := m.Called(ctx, desde, hasta, usuarioID)
	if v := args.Get(0); v != nil {
		return v.([]*queries.DevolucionView), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestPrestamosYDevoluciones(t *testing.T) {
	desde := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("inverted range is refused before any query", func(t *testing.T) {
		prestamos := new(mockPrestamoRepo)
		devoluciones := new(mockDevolucionRepo)
		uc := usecase.NewReporteUseCase(prestamos, devoluciones)

		_, err := uc.PrestamosYDevoluciones(context.Background(), hasta, desde, nil)
		assert.ErrorIs(t, err, usecase.ErrInvalidDateRange)
		prestamos.AssertNotCalled(t, "FindByRange")
		devoluciones.AssertNotCalled(t, "FindByRange")
	})

	t.Run("combines both sides of the window", func(t *testing.T) {
		prestamos := new(mockPrestamoRepo)
		devoluciones := new(mockDevolucionRepo)
		uc := usecase.NewReporteUseCase(prestamos, devoluciones)

		prestamos.On("FindByRange", mock.Anything, desde, hasta, (*int64)(nil)).
			Return([]*queries.PrestamoView{{ID: 1, SolicitudID: 2, EstadoPrestamo: "Activo"}}, nil).Once()
		devoluciones.On("FindByRange", mock.Anything, desde, hasta, (*int64)(nil)).
			Return([]*queries.DevolucionView{{ID: 5, PrestamoID: 1}}, nil).Once()

		report, err := uc.PrestamosYDevoluciones(context.Background(), desde, hasta, nil)
		require.NoError(t, err)
		require.Len(t, report.Prestamos, 1)
		require.Len(t, report.Devoluciones, 1)
		assert.Equal(t, int64(1), report.Prestamos[0].ID)
		assert.Equal(t, int64(5), report.Devoluciones[0].ID)

		prestamos.AssertExpectations(t)
		devoluciones.AssertExpectations(t)
	})

	t.Run("usuario filter is forwarded to both queries", func(t *testing.T) {
		prestamos := new(mockPrestamoRepo)
		devoluciones := new(mockDevolucionRepo)
		uc := usecase.NewReporteUseCase(prestamos, devoluciones)

		usuarioID := int64(3)
		prestamos.On("FindByRange", mock.Anything, desde, hasta, &usuarioID).
			Return([]*queries.PrestamoView{}, nil).Once()
		devoluciones.On("FindByRange", mock.Anything, desde, hasta, &usuarioID).
			Return([]*queries.DevolucionView{}, nil).Once()

		report, err := uc.PrestamosYDevoluciones(context.Background(), desde, hasta, &usuarioID)
		require.NoError(t, err)
		assert.Empty(t, report.Prestamos)
		assert.Empty(t, report.Devoluciones)

		prestamos.AssertExpectations(t)
		devoluciones.AssertExpectations(t)
	})
}
