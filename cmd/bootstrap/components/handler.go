package components

import (
	"loandesk/internal/handler"
	"loandesk/internal/handler/api"
	"loandesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUsuarioHandler,
		api.NewDocenteHandler,
		api.NewCategoriaHandler,
		api.NewMaterialHandler,
		api.NewSolicitudHandler,
		api.NewPrestamoHandler,
		api.NewReparacionHandler,
		api.NewMovimientoHandler,
		api.NewReporteHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	usuario *api.UsuarioHandler,
	docente *api.DocenteHandler,
	categoria *api.CategoriaHandler,
	material *api.MaterialHandler,
	solicitud *api.SolicitudHandler,
	prestamo *api.PrestamoHandler,
	reparacion *api.ReparacionHandler,
	movimiento *api.MovimientoHandler,
	reporte *api.ReporteHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Usuario:    usuario,
		Docente:    docente,
		Categoria:  categoria,
		Material:   material,
		Solicitud:  solicitud,
		Prestamo:   prestamo,
		Reparacion: reparacion,
		Movimiento: movimiento,
		Reporte:    reporte,
	}
}
