package usecase

import (
	"context"
	"errors"
	"time"

	"loandesk/internal/domain/material"
	"loandesk/internal/domain/movimiento"
	"loandesk/internal/domain/prestamo"
	"loandesk/internal/domain/solicitud"
	reqdto "loandesk/internal/handler/dto/request"
	"loandesk/internal/infra"
	"loandesk/internal/infra/repository"
	"loandesk/internal/pkg/clock"
	"loandesk/internal/pkg/errs"
	"loandesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SolicitudRepository interface {
	Create(ctx context.Context, q repository.Querier, s *solicitud.Solicitud) (int64, error)
	FindAll(ctx context.Context) ([]*queries.SolicitudView, error)
	FindByDocente(ctx context.Context, docenteID int64) ([]*queries.SolicitudView, error)
	FindCompletaByID(ctx context.Context, id int64) (*queries.SolicitudCompletaView, error)
	FindForUpdate(ctx context.Context, q repository.Querier, id int64) (*solicitud.Solicitud, error)
	UpdateEstado(ctx context.Context, q repository.Querier, id int64, estado solicitud.Status) error
}

type PrestamoRepository interface {
	Create(ctx context.Context, q repository.Querier, p *prestamo.Prestamo) (int64, error)
	FindAll(ctx context.Context) ([]*queries.PrestamoView, error)
	FindByID(ctx context.Context, id int64) (*queries.PrestamoView, error)
	FindByRange(ctx context.Context, desde, hasta time.Time, usuarioID *int64) ([]*queries.PrestamoView, error)
	FindForUpdate(ctx context.Context, q repository.Querier, id int64) (*prestamo.Prestamo, error)
	UpdateEstado(ctx context.Context, q repository.Querier, id int64, estado prestamo.Status) error
}

type SolicitudUseCase interface {
	CreateSolicitud(ctx context.Context, req reqdto.CreateSolicitudRequest) (*queries.SolicitudCompletaView, error)
	ListSolicitudes(ctx context.Context) ([]*queries.SolicitudView, error)
	ListSolicitudesByDocente(ctx context.Context, docenteID int64) ([]*queries.SolicitudView, error)
	GetSolicitud(ctx context.Context, id int64) (*queries.SolicitudCompletaView, error)
	AprobarSolicitud(ctx context.Context, id int64, fechaDevolucionPrevista time.Time) (*queries.PrestamoView, error)
	RechazarSolicitud(ctx context.Context, id int64) (*queries.SolicitudCompletaView, error)
}

type solicitudUseCaseImpl struct {
	solicitudRepo  SolicitudRepository
	materialRepo   MaterialRepository
	prestamoRepo   PrestamoRepository
	movimientoRepo MovimientoRepository
	docenteRepo    DocenteRepository
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewSolicitudUseCase(
	solicitudRepo SolicitudRepository,
	materialRepo MaterialRepository,
	prestamoRepo PrestamoRepository,
	movimientoRepo MovimientoRepository,
	docenteRepo DocenteRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) SolicitudUseCase {
	return &solicitudUseCaseImpl{
		solicitudRepo:  solicitudRepo,
		materialRepo:   materialRepo,
		prestamoRepo:   prestamoRepo,
		movimientoRepo: movimientoRepo,
		docenteRepo:    docenteRepo,
		db:             db,
		clock:          clock,
	}
}

// CreateSolicitud validates each requested material against current
// availability and fails fast on the first unservable line. No stock is
// reserved here; reservation happens on approval.
func (s *solicitudUseCaseImpl) CreateSolicitud(ctx context.Context, req reqdto.CreateSolicitudRequest) (*queries.SolicitudCompletaView, error) {
	if _, err := s.docenteRepo.FindByID(ctx, req.DocenteID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDocenteNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := solicitud.NewSolicitud(&solicitud.Services{Clock: s.clock}, req.DocenteID, req.ToLineaSpecs())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	for _, l := range entity.Lineas() {
		disp, err := s.materialRepo.Disponibilidad(ctx, l.MaterialID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrMaterialNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if disp.Estado != "Disponible" || disp.CantidadDisponible < 1 {
			return nil, errs.ErrMaterialUnavailable
		}
		if l.Cantidad() > disp.CantidadDisponible {
			return nil, errs.ErrInsufficientStock
		}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	id, err := s.solicitudRepo.Create(ctx, tx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.ErrMaterialNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return s.solicitudRepo.FindCompletaByID(ctx, id)
}

func (s *solicitudUseCaseImpl) ListSolicitudes(ctx context.Context) ([]*queries.SolicitudView, error) {
	views, err := s.solicitudRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (s *solicitudUseCaseImpl) ListSolicitudesByDocente(ctx context.Context, docenteID int64) ([]*queries.SolicitudView, error) {
	views, err := s.solicitudRepo.FindByDocente(ctx, docenteID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (s *solicitudUseCaseImpl) GetSolicitud(ctx context.Context, id int64) (*queries.SolicitudCompletaView, error) {
	view, err := s.solicitudRepo.FindCompletaByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSolicitudNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// AprobarSolicitud runs the whole approval as one transaction: the solicitud
// flips to Aprobada, every requested material has its stock reserved, the
// prestamo is opened and a Prestamo movement is recorded per line. Any
// failure rolls the lot back and the solicitud stays Pendiente.
func (s *solicitudUseCaseImpl) AprobarSolicitud(ctx context.Context, id int64, fechaDevolucionPrevista time.Time) (*queries.PrestamoView, error) {
	now := s.clock.Now()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	entity, err := s.solicitudRepo.FindForUpdate(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSolicitudNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.Aprobar(now, fechaDevolucionPrevista); err != nil {
		switch {
		case errors.Is(err, solicitud.ErrNotPending):
			return nil, errs.ErrSolicitudNotPending
		case errors.Is(err, solicitud.ErrFechaNoFutura):
			return nil, errs.ErrDueDateNotFuture
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	for _, l := range entity.Lineas() {
		mat, err := s.materialRepo.FindForUpdate(ctx, tx, l.MaterialID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrMaterialNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := mat.ReservarStock(l.Cantidad()); err != nil {
			if errors.Is(err, material.ErrNotSolicitable) {
				return nil, errs.ErrMaterialUnavailable
			}
			return nil, errs.ErrInsufficientStock
		}

		if err := s.materialRepo.Save(ctx, tx, mat); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if err := s.solicitudRepo.UpdateEstado(ctx, tx, id, solicitud.StatusAprobada); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	prestamoEntity := prestamo.NewPrestamo(id, now, fechaDevolucionPrevista)
	prestamoID, err := s.prestamoRepo.Create(ctx, tx, prestamoEntity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	for _, l := range entity.Lineas() {
		if _, err := s.movimientoRepo.Record(ctx, tx, l.MaterialID(), movimiento.TipoPrestamo, now, l.Cantidad(), &prestamoID); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return s.prestamoRepo.FindByID(ctx, prestamoID)
}

func (s *solicitudUseCaseImpl) RechazarSolicitud(ctx context.Context, id int64) (*queries.SolicitudCompletaView, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	entity, err := s.solicitudRepo.FindForUpdate(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSolicitudNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.Rechazar(); err != nil {
		return nil, errs.ErrSolicitudNotPending
	}

	if err := s.solicitudRepo.UpdateEstado(ctx, tx, id, solicitud.StatusRechazada); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return s.solicitudRepo.FindCompletaByID(ctx, id)
}
