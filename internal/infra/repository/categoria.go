package repository

import (
	"context"

	"loandesk/internal/infra"
	"loandesk/internal/pkg/pgconv"
	"loandesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoriaRepository struct {
	db *pgxpool.Pool
}

func NewCategoriaRepository(db *pgxpool.Pool) *CategoriaRepository {
	return &CategoriaRepository{db: db}
}

func (r *CategoriaRepository) FindAll(ctx context.Context) ([]*queries.CategoriaView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nombre_categoria, descripcion FROM categorias ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categorias", err)
	}
	defer rows.Close()

	var result []*queries.CategoriaView
	for rows.Next() {
		var rm queries.CategoriaView
		var descripcion pgtype.Text
		if err := rows.Scan(&rm.ID, &rm.NombreCategoria, &descripcion); err != nil {
			return nil, infra.WrapRepoErr("failed to scan categoria", err)
		}
		rm.Descripcion = pgconv.StringPtrFromPgtype(descripcion)
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate categorias", err)
	}

	return result, nil
}

func (r *CategoriaRepository) FindByID(ctx context.Context, id int64) (*queries.CategoriaView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, nombre_categoria, descripcion FROM categorias WHERE id = $1`, id)

	var rm queries.CategoriaView
	var descripcion pgtype.Text
	if err := row.Scan(&rm.ID, &rm.NombreCategoria, &descripcion); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("categoria not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find categoria by ID", err)
	}
	rm.Descripcion = pgconv.StringPtrFromPgtype(descripcion)

	return &rm, nil
}

func (r *CategoriaRepository) Create(ctx context.Context, nombre string, descripcion *string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO categorias (nombre_categoria, descripcion) VALUES ($1, $2) RETURNING id`,
		nombre, pgconv.StringPtrToPgtype(descripcion),
	).Scan(&id)
	if err != nil {
		return 0, wrapWriteErr("failed to create categoria", err)
	}
	return id, nil
}

func (r *CategoriaRepository) Update(ctx context.Context, id int64, nombre string, descripcion *string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE categorias SET nombre_categoria = $2, descripcion = $3, updated_at = now() WHERE id = $1`,
		id, nombre, pgconv.StringPtrToPgtype(descripcion))
	if err != nil {
		return wrapWriteErr("failed to update categoria", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("categoria not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete surfaces a FOREIGN_KEY_VIOLATED kind when materials still reference
// the categoria; the usecase maps that onto a conflict for the caller.
func (r *CategoriaRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete categoria", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("categoria not found", nil, infra.KindNotFound)
	}
	return nil
}
