package components

import (
	"loandesk/internal/infra/repository"
	"loandesk/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewQuerier,
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
			fx.As(new(usecase.UsuarioRepository)),
		),
		fx.Annotate(
			repository.NewDocenteRepository,
			fx.As(new(usecase.DocenteRepository)),
		),
		fx.Annotate(
			repository.NewCategoriaRepository,
			fx.As(new(usecase.CategoriaRepository)),
		),
		fx.Annotate(
			repository.NewMaterialRepository,
			fx.As(new(usecase.MaterialRepository)),
		),
		fx.Annotate(
			repository.NewSolicitudRepository,
			fx.As(new(usecase.SolicitudRepository)),
		),
		fx.Annotate(
			repository.NewPrestamoRepository,
			fx.As(new(usecase.PrestamoRepository)),
		),
		fx.Annotate(
			repository.NewDevolucionRepository,
			fx.As(new(usecase.DevolucionRepository)),
		),
		fx.Annotate(
			repository.NewReparacionRepository,
			fx.As(new(usecase.ReparacionRepository)),
		),
		fx.Annotate(
			repository.NewMovimientoRepository,
			fx.As(new(usecase.MovimientoRepository)),
		),
	),
)

func NewQuerier(pool *pgxpool.Pool) repository.Querier {
	return pool
}
