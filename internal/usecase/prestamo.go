package usecase

import (
	"context"
	"time"

	"loandesk/internal/domain/movimiento"
	"loandesk/internal/infra"
	"loandesk/internal/infra/repository"
	"loandesk/internal/pkg/clock"
	"loandesk/internal/pkg/errs"
	"loandesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DevolucionRepository interface {
	Create(ctx context.Context, q repository.Querier, prestamoID int64, fecha time.Time, observaciones string) (int64, error)
	FindAll(ctx context.Context) ([]*queries.DevolucionView, error)
	FindByID(ctx context.Context, id int64) (*queries.DevolucionView, error)
	FindByRange(ctx context.Context, desde, hasta time.Time, usuarioID *int64) ([]*queries.DevolucionView, error)
}

type PrestamoUseCase interface {
	ListPrestamos(ctx context.Context) ([]*queries.PrestamoView, error)
	GetPrestamo(ctx context.Context, id int64) (*queries.PrestamoView, error)
}

type prestamoUseCaseImpl struct {
	prestamoRepo PrestamoRepository
}

func NewPrestamoUseCase(prestamoRepo PrestamoRepository) PrestamoUseCase {
	return &prestamoUseCaseImpl{prestamoRepo: prestamoRepo}
}

func (p *prestamoUseCaseImpl) ListPrestamos(ctx context.Context) ([]*queries.PrestamoView, error) {
	views, err := p.prestamoRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (p *prestamoUseCaseImpl) GetPrestamo(ctx context.Context, id int64) (*queries.PrestamoView, error) {
	view, err := p.prestamoRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPrestamoNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

type DevolucionUseCase interface {
	RegistrarDevolucion(ctx context.Context, prestamoID int64, observaciones string) (*queries.DevolucionView, error)
	ListDevoluciones(ctx context.Context) ([]*queries.DevolucionView, error)
}

type devolucionUseCaseImpl struct {
	devolucionRepo DevolucionRepository
	prestamoRepo   PrestamoRepository
	solicitudRepo  SolicitudRepository
	materialRepo   MaterialRepository
	movimientoRepo MovimientoRepository
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewDevolucionUseCase(
	devolucionRepo DevolucionRepository,
	prestamoRepo PrestamoRepository,
	solicitudRepo SolicitudRepository,
	materialRepo MaterialRepository,
	movimientoRepo MovimientoRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) DevolucionUseCase {
	return &devolucionUseCaseImpl{
		devolucionRepo: devolucionRepo,
		prestamoRepo:   prestamoRepo,
		solicitudRepo:  solicitudRepo,
		materialRepo:   materialRepo,
		movimientoRepo: movimientoRepo,
		db:             db,
		clock:          clock,
	}
}

// RegistrarDevolucion closes the prestamo and releases the reserved stock in
// one transaction: the prestamo flips to Devuelto, every linea of the backing
// solicitud returns its units and a Devolucion movement is written per line.
func (d *devolucionUseCaseImpl) RegistrarDevolucion(ctx context.Context, prestamoID int64, observaciones string) (*queries.DevolucionView, error) {
	now := d.clock.Now()

	tx, err := d.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	prestamoEntity, err := d.prestamoRepo.FindForUpdate(ctx, tx, prestamoID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPrestamoNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := prestamoEntity.Devolver(); err != nil {
		return nil, errs.ErrPrestamoNotActive
	}

	solicitudEntity, err := d.solicitudRepo.FindForUpdate(ctx, tx, prestamoEntity.SolicitudID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	for _, l := range solicitudEntity.Lineas() {
		mat, err := d.materialRepo.FindForUpdate(ctx, tx, l.MaterialID())
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := mat.LiberarStock(l.Cantidad()); err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		if err := d.materialRepo.Save(ctx, tx, mat); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if _, err := d.movimientoRepo.Record(ctx, tx, l.MaterialID(), movimiento.TipoDevolucion, now, l.Cantidad(), &prestamoID); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if err := d.prestamoRepo.UpdateEstado(ctx, tx, prestamoID, prestamoEntity.Estado()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	devolucionID, err := d.devolucionRepo.Create(ctx, tx, prestamoID, now, observaciones)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return d.devolucionRepo.FindByID(ctx, devolucionID)
}

func (d *devolucionUseCaseImpl) ListDevoluciones(ctx context.Context) ([]*queries.DevolucionView, error) {
	views, err := d.devolucionRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
