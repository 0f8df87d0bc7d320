package usecase

import (
	"context"
	"errors"

	"loandesk/internal/infra"
	"loandesk/internal/pkg/errs"
	"loandesk/internal/usecase/queries"
)

var (
	ErrCategoriaNotFound = errors.New("categoria not found")
	ErrCategoriaEnUso    = errors.New("categoria has materiales assigned")
	ErrCategoriaDuplicada = errors.New("categoria already exists")
)

type CategoriaRepository interface {
	FindAll(ctx context.Context) ([]*queries.CategoriaView, error)
	FindByID(ctx context.Context, id int64) (*queries.CategoriaView, error)
	Create(ctx context.Context, nombre string, descripcion *string) (int64, error)
	Update(ctx context.Context, id int64, nombre string, descripcion *string) error
	Delete(ctx context.Context, id int64) error
}

type CategoriaUseCase interface {
	ListCategorias(ctx context.Context) ([]*queries.CategoriaView, error)
	GetCategoria(ctx context.Context, id int64) (*queries.CategoriaView, error)
	CreateCategoria(ctx context.Context, nombre string, descripcion *string) (*queries.CategoriaView, error)
	UpdateCategoria(ctx context.Context, id int64, nombre string, descripcion *string) (*queries.CategoriaView, error)
	DeleteCategoria(ctx context.Context, id int64) error
}

type categoriaUseCaseImpl struct {
	categoriaRepo CategoriaRepository
}

func NewCategoriaUseCase(categoriaRepo CategoriaRepository) CategoriaUseCase {
	return &categoriaUseCaseImpl{categoriaRepo: categoriaRepo}
}

func (c *categoriaUseCaseImpl) ListCategorias(ctx context.Context) ([]*queries.CategoriaView, error) {
	views, err := c.categoriaRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (c *categoriaUseCaseImpl) GetCategoria(ctx context.Context, id int64) (*queries.CategoriaView, error) {
	view, err := c.categoriaRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoriaNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *categoriaUseCaseImpl) CreateCategoria(ctx context.Context, nombre string, descripcion *string) (*queries.CategoriaView, error) {
	id, err := c.categoriaRepo.Create(ctx, nombre, descripcion)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrCategoriaDuplicada
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.categoriaRepo.FindByID(ctx, id)
}

func (c *categoriaUseCaseImpl) UpdateCategoria(ctx context.Context, id int64, nombre string, descripcion *string) (*queries.CategoriaView, error) {
	if err := c.categoriaRepo.Update(ctx, id, nombre, descripcion); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrCategoriaNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrCategoriaDuplicada
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.categoriaRepo.FindByID(ctx, id)
}

// DeleteCategoria refuses to remove a categoria that still has materiales;
// the foreign key reports that as ErrCategoriaEnUso.
func (c *categoriaUseCaseImpl) DeleteCategoria(ctx context.Context, id int64) error {
	if err := c.categoriaRepo.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrCategoriaNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrCategoriaEnUso
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
