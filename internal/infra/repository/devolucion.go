package repository

import (
	"context"
	"time"

	"loandesk/internal/infra"
	"loandesk/internal/pkg/pgconv"
	"loandesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DevolucionRepository struct {
	db *pgxpool.Pool
}

func NewDevolucionRepository(db *pgxpool.Pool) *DevolucionRepository {
	return &DevolucionRepository{db: db}
}

func (r *DevolucionRepository) Create(ctx context.Context, q Querier, prestamoID int64, fecha time.Time, observaciones string) (int64, error) {
	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO devoluciones (prestamo_id, fecha_devolucion, observaciones)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		prestamoID, pgconv.TimeToPgtype(fecha), observaciones,
	).Scan(&id)
	if err != nil {
		return 0, wrapWriteErr("failed to create devolucion", err)
	}
	return id, nil
}

func (r *DevolucionRepository) FindByID(ctx context.Context, id int64) (*queries.DevolucionView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, prestamo_id, fecha_devolucion, observaciones FROM devoluciones WHERE id = $1`, id)

	var rm queries.DevolucionView
	var fecha pgtype.Timestamptz
	if err := row.Scan(&rm.ID, &rm.PrestamoID, &fecha, &rm.Observaciones); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("devolucion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find devolucion by ID", err)
	}
	rm.FechaDevolucion = pgconv.TimeFromPgtype(fecha)

	return &rm, nil
}

func (r *DevolucionRepository) FindAll(ctx context.Context) ([]*queries.DevolucionView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, prestamo_id, fecha_devolucion, observaciones
		 FROM devoluciones ORDER BY fecha_devolucion DESC, id DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list devoluciones", err)
	}
	defer rows.Close()

	return scanDevolucionViews(rows)
}

// FindByRange lists devoluciones inside the inclusive [desde, hasta] window,
// optionally narrowed to the docente tied to a usuario.
func (r *DevolucionRepository) FindByRange(ctx context.Context, desde, hasta time.Time, usuarioID *int64) ([]*queries.DevolucionView, error) {
	sql := `SELECT dv.id, dv.prestamo_id, dv.fecha_devolucion, dv.observaciones
		 FROM devoluciones dv`
	args := []any{pgconv.TimeToPgtype(desde), pgconv.TimeToPgtype(hasta)}
	if usuarioID != nil {
		sql += `
		 JOIN prestamos p ON p.id = dv.prestamo_id
		 JOIN solicitudes s ON s.id = p.solicitud_id
		 JOIN docentes d ON d.id = s.docente_id
		 WHERE dv.fecha_devolucion >= $1 AND dv.fecha_devolucion <= $2 AND d.usuario_id = $3`
		args = append(args, *usuarioID)
	} else {
		sql += `
		 WHERE dv.fecha_devolucion >= $1 AND dv.fecha_devolucion <= $2`
	}
	sql += ` ORDER BY dv.fecha_devolucion, dv.id`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list devoluciones by range", err)
	}
	defer rows.Close()

	return scanDevolucionViews(rows)
}

func scanDevolucionViews(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]*queries.DevolucionView, error) {
	var result []*queries.DevolucionView
	for rows.Next() {
		var rm queries.DevolucionView
		var fecha pgtype.Timestamptz
		if err := rows.Scan(&rm.ID, &rm.PrestamoID, &fecha, &rm.Observaciones); err != nil {
			return nil, infra.WrapRepoErr("failed to scan devolucion", err)
		}
		rm.FechaDevolucion = pgconv.TimeFromPgtype(fecha)
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate devoluciones", err)
	}
	return result, nil
}
