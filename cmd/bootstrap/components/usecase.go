package components

import (
	"loandesk/internal/pkg/clock"
	"loandesk/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewUsuarioUseCase,
		usecase.NewDocenteUseCase,
		usecase.NewCategoriaUseCase,
		usecase.NewMaterialUseCase,
		usecase.NewSolicitudUseCase,
		usecase.NewPrestamoUseCase,
		usecase.NewDevolucionUseCase,
		usecase.NewReparacionUseCase,
		usecase.NewMovimientoUseCase,
		usecase.NewReporteUseCase,
	),
)
