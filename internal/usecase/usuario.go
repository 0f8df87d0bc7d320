package usecase

import (
	"context"
	"errors"

	"loandesk/internal/domain/user"
	"loandesk/internal/infra"
	"loandesk/internal/infra/repository"
	"loandesk/internal/pkg/errs"
	"loandesk/internal/pkg/password"
	"loandesk/internal/usecase/queries"
)

var (
	ErrUsuarioDuplicado = errors.New("usuario or email already registered")
	ErrRolNotFound      = errors.New("rol not found")
	ErrDocenteNotFound  = errors.New("docente not found")
)

type UsuarioRepository interface {
	FindUsuarioByID(ctx context.Context, id int64) (*queries.UsuarioView, error)
	CreateUsuario(ctx context.Context, q repository.Querier, u *user.Usuario) (int64, error)
	UpdateUsuario(ctx context.Context, q repository.Querier, id, rolID int64, nombreUsuario, email string) error
	ListRoles(ctx context.Context) ([]*queries.RolView, error)
	FindRolByID(ctx context.Context, id int64) (*queries.RolView, error)
}

type DocenteRepository interface {
	FindAll(ctx context.Context) ([]*queries.DocenteView, error)
	FindByID(ctx context.Context, id int64) (*queries.DocenteView, error)
	FindByUsuarioID(ctx context.Context, usuarioID int64) (*queries.DocenteView, error)
	Create(ctx context.Context, q repository.Querier, d *user.Docente) (int64, error)
	Update(ctx context.Context, q repository.Querier, id int64, nombre, apellido, cedulaIdentidad string) error
}

type UsuarioUseCase interface {
	CreateUsuario(ctx context.Context, rolID int64, nombreUsuario, email, rawPassword string) (*queries.UsuarioView, error)
	GetUsuario(ctx context.Context, id int64) (*queries.UsuarioView, error)
	UpdateUsuario(ctx context.Context, id, rolID int64, nombreUsuario, email string) (*queries.UsuarioView, error)
	ListRoles(ctx context.Context) ([]*queries.RolView, error)
}

type usuarioUseCaseImpl struct {
	usuarioRepo UsuarioRepository
	db          repository.Querier
}

func NewUsuarioUseCase(usuarioRepo UsuarioRepository, db repository.Querier) UsuarioUseCase {
	return &usuarioUseCaseImpl{usuarioRepo: usuarioRepo, db: db}
}

// CreateUsuario registers the authentication identity. Registering a docente
// profile for it is a separate call; there is no cross-entity transaction
// between the two, matching the two-request flow the admin panel performs.
func (u *usuarioUseCaseImpl) CreateUsuario(ctx context.Context, rolID int64, nombreUsuario, email, rawPassword string) (*queries.UsuarioView, error) {
	rol, err := u.usuarioRepo.FindRolByID(ctx, rolID)
	if err != nil {
		return nil, ErrRolNotFound
	}

	role, err := user.NewRole(rol.NombreRol)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	pw, err := user.NewPassword(rawPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := user.NewUsuario(rolID, role, nombreUsuario, emailVO, hash)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := u.usuarioRepo.CreateUsuario(ctx, u.db, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrUsuarioDuplicado
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.usuarioRepo.FindUsuarioByID(ctx, id)
}

func (u *usuarioUseCaseImpl) GetUsuario(ctx context.Context, id int64) (*queries.UsuarioView, error) {
	view, err := u.usuarioRepo.FindUsuarioByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *usuarioUseCaseImpl) UpdateUsuario(ctx context.Context, id, rolID int64, nombreUsuario, email string) (*queries.UsuarioView, error) {
	if _, err := user.NewEmail(email); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.usuarioRepo.UpdateUsuario(ctx, u.db, id, rolID, nombreUsuario, email); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrUserNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrUsuarioDuplicado
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrRolNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.usuarioRepo.FindUsuarioByID(ctx, id)
}

func (u *usuarioUseCaseImpl) ListRoles(ctx context.Context) ([]*queries.RolView, error) {
	roles, err := u.usuarioRepo.ListRoles(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return roles, nil
}

type DocenteUseCase interface {
	ListDocentes(ctx context.Context) ([]*queries.DocenteView, error)
	GetDocente(ctx context.Context, id int64) (*queries.DocenteView, error)
	GetDocenteByUsuario(ctx context.Context, usuarioID int64) (*queries.DocenteView, error)
	CreateDocente(ctx context.Context, usuarioID int64, nombre, apellido, cedulaIdentidad string) (*queries.DocenteView, error)
	UpdateDocente(ctx context.Context, id int64, nombre, apellido, cedulaIdentidad string) (*queries.DocenteView, error)
}

type docenteUseCaseImpl struct {
	docenteRepo DocenteRepository
	db          repository.Querier
}

func NewDocenteUseCase(docenteRepo DocenteRepository, db repository.Querier) DocenteUseCase {
	return &docenteUseCaseImpl{docenteRepo: docenteRepo, db: db}
}

func (d *docenteUseCaseImpl) ListDocentes(ctx context.Context) ([]*queries.DocenteView, error) {
	docentes, err := d.docenteRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return docentes, nil
}

func (d *docenteUseCaseImpl) GetDocente(ctx context.Context, id int64) (*queries.DocenteView, error) {
	view, err := d.docenteRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDocenteNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (d *docenteUseCaseImpl) GetDocenteByUsuario(ctx context.Context, usuarioID int64) (*queries.DocenteView, error) {
	view, err := d.docenteRepo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDocenteNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (d *docenteUseCaseImpl) CreateDocente(ctx context.Context, usuarioID int64, nombre, apellido, cedulaIdentidad string) (*queries.DocenteView, error) {
	entity, err := user.NewDocente(usuarioID, nombre, apellido, cedulaIdentidad)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := d.docenteRepo.Create(ctx, d.db, entity)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrUsuarioDuplicado
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return d.docenteRepo.FindByID(ctx, id)
}

func (d *docenteUseCaseImpl) UpdateDocente(ctx context.Context, id int64, nombre, apellido, cedulaIdentidad string) (*queries.DocenteView, error) {
	if _, err := user.NewDocente(0, nombre, apellido, cedulaIdentidad); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := d.docenteRepo.Update(ctx, d.db, id, nombre, apellido, cedulaIdentidad); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDocenteNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return d.docenteRepo.FindByID(ctx, id)
}
