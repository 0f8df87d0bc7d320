package usecase

import (
	"context"
	"errors"
	"time"

	"loandesk/internal/domain/material"
	"loandesk/internal/domain/movimiento"
	"loandesk/internal/infra"
	"loandesk/internal/infra/repository"
	"loandesk/internal/pkg/clock"
	"loandesk/internal/pkg/errs"
	"loandesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReparacionRepository interface {
	Create(ctx context.Context, q repository.Querier, materialID int64, fechaEnvio time.Time, descripcionFalla string, costo *float64, cantidad int32) (int64, error)
	FindAll(ctx context.Context) ([]*queries.ReparacionView, error)
	FindByID(ctx context.Context, id int64) (*queries.ReparacionView, error)
}

type ReparacionUseCase interface {
	EnviarAReparacion(ctx context.Context, materialID int64, fechaEnvio *time.Time, descripcionFalla string, costo *float64, cantidad int32) (*queries.ReparacionView, error)
	ListReparaciones(ctx context.Context) ([]*queries.ReparacionView, error)
}

type reparacionUseCaseImpl struct {
	reparacionRepo ReparacionRepository
	materialRepo   MaterialRepository
	movimientoRepo MovimientoRepository
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewReparacionUseCase(
	reparacionRepo ReparacionRepository,
	materialRepo MaterialRepository,
	movimientoRepo MovimientoRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) ReparacionUseCase {
	return &reparacionUseCaseImpl{
		reparacionRepo: reparacionRepo,
		materialRepo:   materialRepo,
		movimientoRepo: movimientoRepo,
		db:             db,
		clock:          clock,
	}
}

// EnviarAReparacion pulls cantidad units out of the available pool, marks the
// material EnReparacion and records the Reparacion movement, all in one
// transaction. fechaEnvio defaults to now when the caller leaves it unset.
func (r *reparacionUseCaseImpl) EnviarAReparacion(ctx context.Context, materialID int64, fechaEnvio *time.Time, descripcionFalla string, costo *float64, cantidad int32) (*queries.ReparacionView, error) {
	now := r.clock.Now()
	envio := now
	if fechaEnvio != nil {
		envio = *fechaEnvio
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	mat, err := r.materialRepo.FindForUpdate(ctx, tx, materialID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrMaterialNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := mat.ReservarStock(cantidad); err != nil {
		if errors.Is(err, material.ErrNotSolicitable) {
			return nil, errs.ErrMaterialUnavailable
		}
		return nil, errs.ErrInsufficientStock
	}

	if err := mat.CambiarEstado(material.StatusEnReparacion); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := r.materialRepo.Save(ctx, tx, mat); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	reparacionID, err := r.reparacionRepo.Create(ctx, tx, materialID, envio, descripcionFalla, costo, cantidad)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if _, err := r.movimientoRepo.Record(ctx, tx, materialID, movimiento.TipoReparacion, now, cantidad, nil); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return r.reparacionRepo.FindByID(ctx, reparacionID)
}

func (r *reparacionUseCaseImpl) ListReparaciones(ctx context.Context) ([]*queries.ReparacionView, error) {
	views, err := r.reparacionRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
