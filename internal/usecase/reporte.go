package usecase

import (
	"context"
	"errors"
	"time"

	"loandesk/internal/pkg/errs"
	"loandesk/internal/usecase/queries"
)

var ErrInvalidDateRange = errors.New("desde must not be after hasta")

type ReporteUseCase interface {
	PrestamosYDevoluciones(ctx context.Context, desde, hasta time.Time, usuarioID *int64) (*queries.ReporteView, error)
}

type reporteUseCaseImpl struct {
	prestamoRepo   PrestamoRepository
	devolucionRepo DevolucionRepository
}

func NewReporteUseCase(prestamoRepo PrestamoRepository, devolucionRepo DevolucionRepository) ReporteUseCase {
	return &reporteUseCaseImpl{
		prestamoRepo:   prestamoRepo,
		devolucionRepo: devolucionRepo,
	}
}

// PrestamosYDevoluciones reports both sides of the loan traffic inside the
// inclusive [desde, hasta] window. usuarioID narrows to one docente's
// activity; nil means everyone.
func (r *reporteUseCaseImpl) PrestamosYDevoluciones(ctx context.Context, desde, hasta time.Time, usuarioID *int64) (*queries.ReporteView, error) {
	if desde.After(hasta) {
		return nil, ErrInvalidDateRange
	}

	prestamos, err := r.prestamoRepo.FindByRange(ctx, desde, hasta, usuarioID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	devoluciones, err := r.devolucionRepo.FindByRange(ctx, desde, hasta, usuarioID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	report := &queries.ReporteView{
		Prestamos:    make([]queries.PrestamoView, 0, len(prestamos)),
		Devoluciones: make([]queries.DevolucionView, 0, len(devoluciones)),
	}
	for _, p := range prestamos {
		report.Prestamos = append(report.Prestamos, *p)
	}
	for _, d := range devoluciones {
		report.Devoluciones = append(report.Devoluciones, *d)
	}

	return report, nil
}
