package repository

import (
	"context"

	"loandesk/internal/domain/user"
	"loandesk/internal/infra"
	"loandesk/internal/pkg/pgconv"
	"loandesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DocenteRepository struct {
	db *pgxpool.Pool
}

func NewDocenteRepository(db *pgxpool.Pool) *DocenteRepository {
	return &DocenteRepository{db: db}
}

func (r *DocenteRepository) FindAll(ctx context.Context) ([]*queries.DocenteView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, usuario_id, nombre, apellido, cedula_identidad FROM docentes ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list docentes", err)
	}
	defer rows.Close()

	var result []*queries.DocenteView
	for rows.Next() {
		var rm queries.DocenteView
		if err := rows.Scan(&rm.ID, &rm.UsuarioID, &rm.Nombre, &rm.Apellido, &rm.CedulaIdentidad); err != nil {
			return nil, infra.WrapRepoErr("failed to scan docente", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate docentes", err)
	}

	return result, nil
}

func (r *DocenteRepository) FindByID(ctx context.Context, id int64) (*queries.DocenteView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, usuario_id, nombre, apellido, cedula_identidad FROM docentes WHERE id = $1`, id)

	var rm queries.DocenteView
	if err := row.Scan(&rm.ID, &rm.UsuarioID, &rm.Nombre, &rm.Apellido, &rm.CedulaIdentidad); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("docente not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find docente by ID", err)
	}

	return &rm, nil
}

// FindByUsuarioID backs GET /api/Docente/PorUsuario/{usuarioId}, the lookup a
// freshly logged-in docente performs before listing their solicitudes.
func (r *DocenteRepository) FindByUsuarioID(ctx context.Context, usuarioID int64) (*queries.DocenteView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, usuario_id, nombre, apellido, cedula_identidad FROM docentes WHERE usuario_id = $1`, usuarioID)

	var rm queries.DocenteView
	if err := row.Scan(&rm.ID, &rm.UsuarioID, &rm.Nombre, &rm.Apellido, &rm.CedulaIdentidad); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("docente not found for usuario", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find docente by usuario ID", err)
	}

	return &rm, nil
}

func (r *DocenteRepository) Create(ctx context.Context, q Querier, d *user.Docente) (int64, error) {
	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO docentes (usuario_id, nombre, apellido, cedula_identidad)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		d.UsuarioID(), d.Nombre(), d.Apellido(), d.CedulaIdentidad(),
	).Scan(&id)
	if err != nil {
		return 0, wrapWriteErr("failed to create docente", err)
	}
	return id, nil
}

func (r *DocenteRepository) Update(ctx context.Context, q Querier, id int64, nombre, apellido, cedulaIdentidad string) error {
	tag, err := q.Exec(ctx,
		`UPDATE docentes SET nombre = $2, apellido = $3, cedula_identidad = $4, updated_at = now() WHERE id = $1`,
		id, nombre, apellido, cedulaIdentidad)
	if err != nil {
		return wrapWriteErr("failed to update docente", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("docente not found", nil, infra.KindNotFound)
	}
	return nil
}
