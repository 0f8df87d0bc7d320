package repository

import (
	"context"
	"time"

	"loandesk/internal/domain/prestamo"
	"loandesk/internal/infra"
	"loandesk/internal/pkg/pgconv"
	"loandesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PrestamoRepository struct {
	db *pgxpool.Pool
}

func NewPrestamoRepository(db *pgxpool.Pool) *PrestamoRepository {
	return &PrestamoRepository{db: db}
}

func (r *PrestamoRepository) Create(ctx context.Context, q Querier, p *prestamo.Prestamo) (int64, error) {
	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO prestamos (solicitud_id, fecha_prestamo, fecha_devolucion_prevista, estado_prestamo)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		p.SolicitudID(), pgconv.TimeToPgtype(p.FechaPrestamo()),
		pgconv.TimeToPgtype(p.FechaDevolucionPrevista()), p.Estado().String(),
	).Scan(&id)
	if err != nil {
		return 0, wrapWriteErr("failed to create prestamo", err)
	}
	return id, nil
}

func (r *PrestamoRepository) FindAll(ctx context.Context) ([]*queries.PrestamoView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, solicitud_id, fecha_prestamo, fecha_devolucion_prevista, estado_prestamo
		 FROM prestamos ORDER BY fecha_prestamo DESC, id DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list prestamos", err)
	}
	defer rows.Close()

	return scanPrestamoViews(rows)
}

func (r *PrestamoRepository) FindByID(ctx context.Context, id int64) (*queries.PrestamoView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, solicitud_id, fecha_prestamo, fecha_devolucion_prevista, estado_prestamo
		 FROM prestamos WHERE id = $1`, id)

	var rm queries.PrestamoView
	var fPrestamo, fPrevista pgtype.Timestamptz
	if err := row.Scan(&rm.ID, &rm.SolicitudID, &fPrestamo, &fPrevista, &rm.EstadoPrestamo); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("prestamo not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find prestamo by ID", err)
	}
	rm.FechaPrestamo = pgconv.TimeFromPgtype(fPrestamo)
	rm.FechaDevolucionPrevista = pgconv.TimeFromPgtype(fPrevista)

	return &rm, nil
}

// FindByRange lists prestamos whose fecha_prestamo falls inside the inclusive
// [desde, hasta] window, optionally narrowed to the docente tied to a usuario.
func (r *PrestamoRepository) FindByRange(ctx context.Context, desde, hasta time.Time, usuarioID *int64) ([]*queries.PrestamoView, error) {
	sql := `SELECT p.id, p.solicitud_id, p.fecha_prestamo, p.fecha_devolucion_prevista, p.estado_prestamo
		 FROM prestamos p`
	args := []any{pgconv.TimeToPgtype(desde), pgconv.TimeToPgtype(hasta)}
	if usuarioID != nil {
		sql += `
		 JOIN solicitudes s ON s.id = p.solicitud_id
		 JOIN docentes d ON d.id = s.docente_id
		 WHERE p.fecha_prestamo >= $1 AND p.fecha_prestamo <= $2 AND d.usuario_id = $3`
		args = append(args, *usuarioID)
	} else {
		sql += `
		 WHERE p.fecha_prestamo >= $1 AND p.fecha_prestamo <= $2`
	}
	sql += ` ORDER BY p.fecha_prestamo, p.id`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list prestamos by range", err)
	}
	defer rows.Close()

	return scanPrestamoViews(rows)
}

func scanPrestamoViews(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]*queries.PrestamoView, error) {
	var result []*queries.PrestamoView
	for rows.Next() {
		var rm queries.PrestamoView
		var fPrestamo, fPrevista pgtype.Timestamptz
		if err := rows.Scan(&rm.ID, &rm.SolicitudID, &fPrestamo, &fPrevista, &rm.EstadoPrestamo); err != nil {
			return nil, infra.WrapRepoErr("failed to scan prestamo", err)
		}
		rm.FechaPrestamo = pgconv.TimeFromPgtype(fPrestamo)
		rm.FechaDevolucionPrevista = pgconv.TimeFromPgtype(fPrevista)
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate prestamos", err)
	}
	return result, nil
}

// FindForUpdate row-locks the prestamo for the devolucion transition.
func (r *PrestamoRepository) FindForUpdate(ctx context.Context, q Querier, id int64) (*prestamo.Prestamo, error) {
	row := q.QueryRow(ctx,
		`SELECT id, solicitud_id, fecha_prestamo, fecha_devolucion_prevista, estado_prestamo
		 FROM prestamos WHERE id = $1 FOR UPDATE`, id)

	var (
		pID, solicitudID    int64
		estado              string
		fPrestamo, fPrevista pgtype.Timestamptz
	)
	if err := row.Scan(&pID, &solicitudID, &fPrestamo, &fPrevista, &estado); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("prestamo not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock prestamo", err)
	}

	st, err := prestamo.NewStatus(estado)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid prestamo estado in storage", err)
	}

	return prestamo.ReconstructPrestamo(pID, solicitudID,
		pgconv.TimeFromPgtype(fPrestamo), pgconv.TimeFromPgtype(fPrevista), st), nil
}

func (r *PrestamoRepository) UpdateEstado(ctx context.Context, q Querier, id int64, estado prestamo.Status) error {
	tag, err := q.Exec(ctx,
		`UPDATE prestamos SET estado_prestamo = $2, updated_at = now() WHERE id = $1`,
		id, estado.String())
	if err != nil {
		return wrapWriteErr("failed to update prestamo estado", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("prestamo not found", nil, infra.KindNotFound)
	}
	return nil
}
