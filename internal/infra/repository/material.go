package repository

import (
	"context"

	"loandesk/internal/domain/material"
	"loandesk/internal/infra"
	"loandesk/internal/pkg/pgconv"
	"loandesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MaterialRepository struct {
	db *pgxpool.Pool
}

func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{db: db}
}

const materialColumns = `id, categoria_id, nombre_material, descripcion, cantidad_total, cantidad_disponible, estado`

func scanMaterialView(row interface{ Scan(...any) error }) (*queries.MaterialView, error) {
	var rm queries.MaterialView
	var descripcion pgtype.Text
	err := row.Scan(&rm.ID, &rm.CategoriaID, &rm.NombreMaterial, &descripcion,
		&rm.CantidadTotal, &rm.CantidadDisponible, &rm.Estado)
	if err != nil {
		return nil, err
	}
	rm.Descripcion = pgconv.StringPtrFromPgtype(descripcion)
	return &rm, nil
}

func (r *MaterialRepository) FindAll(ctx context.Context) ([]*queries.MaterialView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+materialColumns+` FROM materiales ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list materiales", err)
	}
	defer rows.Close()

	var result []*queries.MaterialView
	for rows.Next() {
		rm, err := scanMaterialView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan material", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate materiales", err)
	}

	return result, nil
}

func (r *MaterialRepository) FindByID(ctx context.Context, id int64) (*queries.MaterialView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+materialColumns+` FROM materiales WHERE id = $1`, id)

	rm, err := scanMaterialView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("material not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find material by ID", err)
	}

	return rm, nil
}

// FindForUpdate loads the material row with a row lock so stock mutations are
// serialized inside the caller's transaction.
func (r *MaterialRepository) FindForUpdate(ctx context.Context, q Querier, id int64) (*material.Material, error) {
	row := q.QueryRow(ctx,
		`SELECT id, categoria_id, nombre_material, descripcion, cantidad_total, cantidad_disponible, estado, created_at, updated_at
		 FROM materiales WHERE id = $1 FOR UPDATE`, id)

	var (
		mID, categoriaID   int64
		nombre, estado     string
		descripcion        pgtype.Text
		total, disponible  int32
		createdAt, updated pgtype.Timestamptz
	)
	err := row.Scan(&mID, &categoriaID, &nombre, &descripcion, &total, &disponible, &estado, &createdAt, &updated)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("material not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock material", err)
	}

	st, err := material.NewStatus(estado)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid material estado in storage", err)
	}

	return material.ReconstructMaterial(mID, categoriaID, nombre,
		pgconv.StringPtrFromPgtype(descripcion), total, disponible, st,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updated)), nil
}

func (r *MaterialRepository) Create(ctx context.Context, q Querier, m *material.Material) (int64, error) {
	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO materiales (categoria_id, nombre_material, descripcion, cantidad_total, cantidad_disponible, estado)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		m.CategoriaID(), m.Nombre(), pgconv.StringPtrToPgtype(m.Descripcion()),
		m.CantidadTotal(), m.CantidadDisponible(), m.Estado().String(),
	).Scan(&id)
	if err != nil {
		return 0, wrapWriteErr("failed to create material", err)
	}
	return id, nil
}

func (r *MaterialRepository) Update(ctx context.Context, q Querier, id int64, categoriaID int64, nombre string, descripcion *string) error {
	tag, err := q.Exec(ctx,
		`UPDATE materiales SET categoria_id = $2, nombre_material = $3, descripcion = $4, updated_at = now() WHERE id = $1`,
		id, categoriaID, nombre, pgconv.StringPtrToPgtype(descripcion))
	if err != nil {
		return wrapWriteErr("failed to update material", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("material not found", nil, infra.KindNotFound)
	}
	return nil
}

// Save persists the mutable portion of a loaded entity: stock and estado.
func (r *MaterialRepository) Save(ctx context.Context, q Querier, m *material.Material) error {
	tag, err := q.Exec(ctx,
		`UPDATE materiales SET cantidad_disponible = $2, estado = $3, updated_at = now() WHERE id = $1`,
		m.ID(), m.CantidadDisponible(), m.Estado().String())
	if err != nil {
		return wrapWriteErr("failed to save material", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("material not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MaterialRepository) Disponibilidad(ctx context.Context, id int64) (*queries.DisponibilidadView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT cantidad_disponible, estado FROM materiales WHERE id = $1`, id)

	var rm queries.DisponibilidadView
	if err := row.Scan(&rm.CantidadDisponible, &rm.Estado); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("material not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read disponibilidad", err)
	}

	return &rm, nil
}
