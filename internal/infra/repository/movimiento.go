package repository

import (
	"context"
	"time"

	"loandesk/internal/domain/movimiento"
	"loandesk/internal/infra"
	"loandesk/internal/pkg/pgconv"
	"loandesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MovimientoRepository struct {
	db *pgxpool.Pool
}

func NewMovimientoRepository(db *pgxpool.Pool) *MovimientoRepository {
	return &MovimientoRepository{db: db}
}

// Record appends one row to the movement ledger. The ledger is append-only;
// nothing updates or deletes movimientos.
func (r *MovimientoRepository) Record(ctx context.Context, q Querier, materialID int64, tipo movimiento.Tipo, fecha time.Time, cantidad int32, prestamoID *int64) (int64, error) {
	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO movimientos (material_id, tipo_movimiento, fecha_movimiento, cantidad, prestamo_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		materialID, tipo.String(), pgconv.TimeToPgtype(fecha), cantidad,
		pgconv.Int64PtrToPgtype(prestamoID),
	).Scan(&id)
	if err != nil {
		return 0, wrapWriteErr("failed to record movimiento", err)
	}
	return id, nil
}

func (r *MovimientoRepository) FindAll(ctx context.Context) ([]*queries.MovimientoView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT mv.id, mv.material_id, mv.tipo_movimiento, mv.fecha_movimiento, mv.cantidad, mv.prestamo_id, m.nombre_material
		 FROM movimientos mv
		 JOIN materiales m ON m.id = mv.material_id
		 ORDER BY mv.fecha_movimiento DESC, mv.id DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list movimientos", err)
	}
	defer rows.Close()

	var result []*queries.MovimientoView
	for rows.Next() {
		var rm queries.MovimientoView
		var fecha pgtype.Timestamptz
		var prestamoID pgtype.Int8
		var nombre string
		if err := rows.Scan(&rm.ID, &rm.MaterialID, &rm.TipoMovimiento, &fecha, &rm.Cantidad, &prestamoID, &nombre); err != nil {
			return nil, infra.WrapRepoErr("failed to scan movimiento", err)
		}
		rm.FechaMovimiento = pgconv.TimeFromPgtype(fecha)
		rm.PrestamoID = pgconv.Int64PtrFromPgtype(prestamoID)
		rm.MaterialNombre = &nombre
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate movimientos", err)
	}

	return result, nil
}
