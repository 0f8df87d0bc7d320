package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"loandesk/internal/domain/material"
	"loandesk/internal/domain/movimiento"
	"loandesk/internal/infra"
	"loandesk/internal/infra/repository"
	"loandesk/internal/pkg/clock"
	"loandesk/internal/pkg/errs"
	"loandesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MaterialRepository interface {
	FindAll(ctx context.Context) ([]*queries.MaterialView, error)
	FindByID(ctx context.Context, id int64) (*queries.MaterialView, error)
	FindForUpdate(ctx context.Context, q repository.Querier, id int64) (*material.Material, error)
	Create(ctx context.Context, q repository.Querier, m *material.Material) (int64, error)
	Update(ctx context.Context, q repository.Querier, id int64, categoriaID int64, nombre string, descripcion *string) error
	Save(ctx context.Context, q repository.Querier, m *material.Material) error
	Disponibilidad(ctx context.Context, id int64) (*queries.DisponibilidadView, error)
}

type MovimientoRepository interface {
	Record(ctx context.Context, q repository.Querier, materialID int64, tipo movimiento.Tipo, fecha time.Time, cantidad int32, prestamoID *int64) (int64, error)
	FindAll(ctx context.Context) ([]*queries.MovimientoView, error)
}

type MaterialUseCase interface {
	ListMateriales(ctx context.Context) ([]*queries.MaterialView, error)
	GetMaterial(ctx context.Context, id int64) (*queries.MaterialView, error)
	CreateMaterial(ctx context.Context, categoriaID int64, nombre string, descripcion *string, cantidadTotal int32, estado *string) (*queries.MaterialView, error)
	UpdateMaterial(ctx context.Context, id, categoriaID int64, nombre string, descripcion *string) (*queries.MaterialView, error)
	UpdateEstado(ctx context.Context, id int64, estado string) (*queries.MaterialView, error)
	GetDisponibilidad(ctx context.Context, id int64) (*queries.DisponibilidadView, error)
}

type materialUseCaseImpl struct {
	materialRepo   MaterialRepository
	movimientoRepo MovimientoRepository
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewMaterialUseCase(materialRepo MaterialRepository, movimientoRepo MovimientoRepository, db *pgxpool.Pool, clock clock.Clock) MaterialUseCase {
	return &materialUseCaseImpl{
		materialRepo:   materialRepo,
		movimientoRepo: movimientoRepo,
		db:             db,
		clock:          clock,
	}
}

func (m *materialUseCaseImpl) ListMateriales(ctx context.Context) ([]*queries.MaterialView, error) {
	views, err := m.materialRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (m *materialUseCaseImpl) GetMaterial(ctx context.Context, id int64) (*queries.MaterialView, error) {
	view, err := m.materialRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrMaterialNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// CreateMaterial registers the material and writes the initial Ingreso row to
// the movement ledger in the same transaction.
func (m *materialUseCaseImpl) CreateMaterial(ctx context.Context, categoriaID int64, nombre string, descripcion *string, cantidadTotal int32, estado *string) (*queries.MaterialView, error) {
	st := material.StatusDisponible
	if estado != nil {
		var err error
		st, err = material.NewStatus(*estado)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	entity, err := material.NewMaterial(categoriaID, nombre, descripcion, cantidadTotal, st)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	id, err := m.materialRepo.Create(ctx, tx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrCategoriaNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if _, err := m.movimientoRepo.Record(ctx, tx, id, movimiento.TipoIngreso, m.clock.Now(), cantidadTotal, nil); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return m.materialRepo.FindByID(ctx, id)
}

func (m *materialUseCaseImpl) UpdateMaterial(ctx context.Context, id, categoriaID int64, nombre string, descripcion *string) (*queries.MaterialView, error) {
	if err := m.materialRepo.Update(ctx, m.db, id, categoriaID, nombre, descripcion); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrMaterialNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrCategoriaNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return m.materialRepo.FindByID(ctx, id)
}

// UpdateEstado flips the lifecycle estado without touching stock counters.
// Stock follows the prestamo and reparacion flows only.
func (m *materialUseCaseImpl) UpdateEstado(ctx context.Context, id int64, estado string) (*queries.MaterialView, error) {
	st, err := material.NewStatus(estado)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	entity, err := m.materialRepo.FindForUpdate(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrMaterialNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.CambiarEstado(st); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := m.materialRepo.Save(ctx, tx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return m.materialRepo.FindByID(ctx, id)
}

func (m *materialUseCaseImpl) GetDisponibilidad(ctx context.Context, id int64) (*queries.DisponibilidadView, error) {
	view, err := m.materialRepo.Disponibilidad(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrMaterialNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}
