package usecase

import (
	"context"

	"loandesk/internal/pkg/errs"
	"loandesk/internal/usecase/queries"
)

type MovimientoUseCase interface {
	ListMovimientos(ctx context.Context) ([]*queries.MovimientoView, error)
}

type movimientoUseCaseImpl struct {
	movimientoRepo MovimientoRepository
}

func NewMovimientoUseCase(movimientoRepo MovimientoRepository) MovimientoUseCase {
	return &movimientoUseCaseImpl{movimientoRepo: movimientoRepo}
}

func (m *movimientoUseCaseImpl) ListMovimientos(ctx context.Context) ([]*queries.MovimientoView, error) {
	views, err := m.movimientoRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
