package repository

import (
	"context"

	"loandesk/internal/domain/user"
	"loandesk/internal/infra"
	"loandesk/internal/pkg/pgconv"
	"loandesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const authorizedUserSQL = `
SELECT u.id, u.rol_id, r.nombre_rol, u.nombre_usuario, u.email, u.password_hash
FROM usuarios u
JOIN roles r ON r.id = u.rol_id
`

// FindByIdentifier resolves a login identifier that may be either the nombre
// de usuario or the email.
func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx, authorizedUserSQL+`WHERE u.nombre_usuario = $1 OR u.email = $1`, identifier)

	var rm queries.AuthorizedUserView
	var passwordHash string
	err := row.Scan(&rm.ID, &rm.RolID, &rm.NombreRol, &rm.NombreUsuario, &rm.Email, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("usuario not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find usuario by identifier", err)
	}

	return &rm, passwordHash, nil
}

func (r *UserRepository) FindAuthorizedByID(ctx context.Context, id int64) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx, authorizedUserSQL+`WHERE u.id = $1`, id)

	var rm queries.AuthorizedUserView
	var passwordHash string
	err := row.Scan(&rm.ID, &rm.RolID, &rm.NombreRol, &rm.NombreUsuario, &rm.Email, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("usuario not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find usuario by ID", err)
	}

	return &rm, nil
}

func (r *UserRepository) FindUsuarioByID(ctx context.Context, id int64) (*queries.UsuarioView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, rol_id, nombre_usuario, email FROM usuarios WHERE id = $1`, id)

	var rm queries.UsuarioView
	err := row.Scan(&rm.ID, &rm.RolID, &rm.NombreUsuario, &rm.Email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("usuario not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find usuario by ID", err)
	}

	return &rm, nil
}

func (r *UserRepository) CreateUsuario(ctx context.Context, q Querier, u *user.Usuario) (int64, error) {
	var id int64
	err := q.QueryRow(ctx,
		`INSERT INTO usuarios (rol_id, nombre_usuario, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		u.RolID(), u.NombreUsuario(), u.Email().Value(), u.PasswordHash(),
	).Scan(&id)
	if err != nil {
		return 0, wrapWriteErr("failed to create usuario", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateUsuario(ctx context.Context, q Querier, id, rolID int64, nombreUsuario, email string) error {
	tag, err := q.Exec(ctx,
		`UPDATE usuarios SET rol_id = $2, nombre_usuario = $3, email = $4, updated_at = now() WHERE id = $1`,
		id, rolID, nombreUsuario, email)
	if err != nil {
		return wrapWriteErr("failed to update usuario", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("usuario not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) ListRoles(ctx context.Context) ([]*queries.RolView, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nombre_rol FROM roles ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list roles", err)
	}
	defer rows.Close()

	var result []*queries.RolView
	for rows.Next() {
		var rm queries.RolView
		if err := rows.Scan(&rm.ID, &rm.NombreRol); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rol", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate roles", err)
	}

	return result, nil
}

func (r *UserRepository) FindRolByID(ctx context.Context, id int64) (*queries.RolView, error) {
	row := r.db.QueryRow(ctx, `SELECT id, nombre_rol FROM roles WHERE id = $1`, id)

	var rm queries.RolView
	if err := row.Scan(&rm.ID, &rm.NombreRol); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rol not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rol by ID", err)
	}

	return &rm, nil
}
