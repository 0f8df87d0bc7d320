package repository

import (
	"context"

	"loandesk/internal/domain/solicitud"
	"loandesk/internal/infra"
	"loandesk/internal/pkg/pgconv"
	"loandesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SolicitudRepository struct {
	db *pgxpool.Pool
}

func NewSolicitudRepository(db *pgxpool.Pool) *SolicitudRepository {
	return &SolicitudRepository{db: db}
}

// Create inserts the solicitud and its detalle rows in the caller's
// transaction.
func (r *SolicitudRepository) Create(ctx context.Context, q Querier, s *solicitud.Solicitud) (int64, error) {
	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO solicitudes (docente_id, estado_solicitud, fecha_solicitud)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		s.DocenteID(), s.Estado().String(), pgconv.TimeToPgtype(s.FechaSolicitud()),
	).Scan(&id)
	if err != nil {
		return 0, wrapWriteErr("failed to create solicitud", err)
	}

	for _, l := range s.Lineas() {
		_, err := q.Exec(ctx,
			`INSERT INTO solicitud_detalles (solicitud_id, material_id, cantidad_solicitada)
			 VALUES ($1, $2, $3)`,
			id, l.MaterialID(), l.Cantidad())
		if err != nil {
			return 0, wrapWriteErr("failed to create solicitud detalle", err)
		}
	}

	return id, nil
}

func (r *SolicitudRepository) FindAll(ctx context.Context) ([]*queries.SolicitudView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, docente_id, estado_solicitud, fecha_solicitud FROM solicitudes ORDER BY fecha_solicitud DESC, id DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list solicitudes", err)
	}
	defer rows.Close()

	return scanSolicitudViews(rows)
}

func (r *SolicitudRepository) FindByDocente(ctx context.Context, docenteID int64) ([]*queries.SolicitudView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, docente_id, estado_solicitud, fecha_solicitud FROM solicitudes
		 WHERE docente_id = $1 ORDER BY fecha_solicitud DESC, id DESC`, docenteID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list solicitudes by docente", err)
	}
	defer rows.Close()

	return scanSolicitudViews(rows)
}

func scanSolicitudViews(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]*queries.SolicitudView, error) {
	var result []*queries.SolicitudView
	for rows.Next() {
		var rm queries.SolicitudView
		var fecha pgtype.Timestamptz
		if err := rows.Scan(&rm.ID, &rm.DocenteID, &rm.EstadoSolicitud, &fecha); err != nil {
			return nil, infra.WrapRepoErr("failed to scan solicitud", err)
		}
		rm.FechaSolicitud = pgconv.TimeFromPgtype(fecha)
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate solicitudes", err)
	}
	return result, nil
}

// FindCompletaByID returns the solicitud together with its detalle lines and
// the joined material names.
func (r *SolicitudRepository) FindCompletaByID(ctx context.Context, id int64) (*queries.SolicitudCompletaView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, docente_id, estado_solicitud, fecha_solicitud FROM solicitudes WHERE id = $1`, id)

	var rm queries.SolicitudCompletaView
	var fecha pgtype.Timestamptz
	if err := row.Scan(&rm.ID, &rm.DocenteID, &rm.EstadoSolicitud, &fecha); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("solicitud not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find solicitud by ID", err)
	}
	rm.FechaSolicitud = pgconv.TimeFromPgtype(fecha)

	rows, err := r.db.Query(ctx,
		`SELECT d.id, d.material_id, d.cantidad_solicitada, m.nombre_material
		 FROM solicitud_detalles d
		 JOIN materiales m ON m.id = d.material_id
		 WHERE d.solicitud_id = $1
		 ORDER BY d.id`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list solicitud detalles", err)
	}
	defer rows.Close()

	for rows.Next() {
		var det queries.SolicitudDetalleView
		if err := rows.Scan(&det.ID, &det.MaterialID, &det.CantidadSolicitada, &det.NombreMaterial); err != nil {
			return nil, infra.WrapRepoErr("failed to scan solicitud detalle", err)
		}
		rm.Detalles = append(rm.Detalles, det)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate solicitud detalles", err)
	}

	return &rm, nil
}

// FindForUpdate row-locks the solicitud and loads it with its lineas, for the
// approve and reject transitions.
func (r *SolicitudRepository) FindForUpdate(ctx context.Context, q Querier, id int64) (*solicitud.Solicitud, error) {
	row := q.QueryRow(ctx,
		`SELECT id, docente_id, estado_solicitud, fecha_solicitud FROM solicitudes WHERE id = $1 FOR UPDATE`, id)

	var (
		sID, docenteID int64
		estado         string
		fecha          pgtype.Timestamptz
	)
	if err := row.Scan(&sID, &docenteID, &estado, &fecha); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("solicitud not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock solicitud", err)
	}

	st, err := solicitud.NewStatus(estado)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid solicitud estado in storage", err)
	}

	rows, err := q.Query(ctx,
		`SELECT material_id, cantidad_solicitada FROM solicitud_detalles WHERE solicitud_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load solicitud lineas", err)
	}
	defer rows.Close()

	var lineas []solicitud.Linea
	for rows.Next() {
		var materialID int64
		var cantidad int32
		if err := rows.Scan(&materialID, &cantidad); err != nil {
			return nil, infra.WrapRepoErr("failed to scan solicitud linea", err)
		}
		l, err := solicitud.NewLinea(materialID, cantidad)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid solicitud linea in storage", err)
		}
		lineas = append(lineas, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate solicitud lineas", err)
	}

	return solicitud.ReconstructSolicitud(sID, docenteID, st, pgconv.TimeFromPgtype(fecha), lineas), nil
}

func (r *SolicitudRepository) UpdateEstado(ctx context.Context, q Querier, id int64, estado solicitud.Status) error {
	tag, err := q.Exec(ctx,
		`UPDATE solicitudes SET estado_solicitud = $2, updated_at = now() WHERE id = $1`,
		id, estado.String())
	if err != nil {
		return wrapWriteErr("failed to update solicitud estado", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("solicitud not found", nil, infra.KindNotFound)
	}
	return nil
}
