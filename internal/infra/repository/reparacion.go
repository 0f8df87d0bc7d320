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

type ReparacionRepository struct {
	db *pgxpool.Pool
}

func NewReparacionRepository(db *pgxpool.Pool) *ReparacionRepository {
	return &ReparacionRepository{db: db}
}

func (r *ReparacionRepository) Create(ctx context.Context, q Querier, materialID int64, fechaEnvio time.Time, descripcionFalla string, costo *float64, cantidad int32) (int64, error) {
	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO reparaciones (material_id, fecha_envio, descripcion_falla, costo, cantidad)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		materialID, pgconv.TimeToPgtype(fechaEnvio), descripcionFalla,
		pgconv.Float64PtrToNumeric(costo), cantidad,
	).Scan(&id)
	if err != nil {
		return 0, wrapWriteErr("failed to create reparacion", err)
	}
	return id, nil
}

func (r *ReparacionRepository) FindByID(ctx context.Context, id int64) (*queries.ReparacionView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, material_id, fecha_envio, descripcion_falla, costo, cantidad
		 FROM reparaciones WHERE id = $1`, id)

	var rm queries.ReparacionView
	var fecha pgtype.Timestamptz
	var costo pgtype.Numeric
	if err := row.Scan(&rm.ID, &rm.MaterialID, &fecha, &rm.DescripcionFalla, &costo, &rm.Cantidad); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reparacion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reparacion by ID", err)
	}
	rm.FechaEnvio = pgconv.TimeFromPgtype(fecha)
	c, err := pgconv.Float64PtrFromNumeric(costo)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reparacion costo in storage", err)
	}
	rm.Costo = c

	return &rm, nil
}

func (r *ReparacionRepository) FindAll(ctx context.Context) ([]*queries.ReparacionView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, material_id, fecha_envio, descripcion_falla, costo, cantidad
		 FROM reparaciones ORDER BY fecha_envio DESC, id DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reparaciones", err)
	}
	defer rows.Close()

	var result []*queries.ReparacionView
	for rows.Next() {
		var rm queries.ReparacionView
		var fecha pgtype.Timestamptz
		var costo pgtype.Numeric
		if err := rows.Scan(&rm.ID, &rm.MaterialID, &fecha, &rm.DescripcionFalla, &costo, &rm.Cantidad); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reparacion", err)
		}
		rm.FechaEnvio = pgconv.TimeFromPgtype(fecha)
		c, err := pgconv.Float64PtrFromNumeric(costo)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid reparacion costo in storage", err)
		}
		rm.Costo = c
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reparaciones", err)
	}

	return result, nil
}
