package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"loandesk/internal/domain/user"
	"loandesk/internal/handler/api"
	"loandesk/internal/handler/middleware"
	"loandesk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Usuario    *api.UsuarioHandler
	Docente    *api.DocenteHandler
	Categoria  *api.CategoriaHandler
	Material   *api.MaterialHandler
	Solicitud  *api.SolicitudHandler
	Prestamo   *api.PrestamoHandler
	Reparacion *api.ReparacionHandler
	Movimiento *api.MovimientoHandler
	Reporte    *api.ReporteHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireEncargado := authMiddleware.RequireRole(user.RoleEncargado)
	requireDocente := authMiddleware.RequireRole(user.RoleDocente)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/Auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Everything below requires a session; per-route middleware narrows
		// mutations to the encargado and request submission to docentes.
		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())

		materiales := authed.Group("/Material")
		addRoutes(materiales, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Material.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Material.Get},
			{Method: http.MethodGet, Path: "/:id/disponibilidad", Handler: h.Material.GetDisponibilidad},
			{Method: http.MethodPost, Path: "", Handler: h.Material.Create, Mw: []gin.HandlerFunc{requireEncargado}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Material.Update, Mw: []gin.HandlerFunc{requireEncargado}},
			{Method: http.MethodPut, Path: "/:id/estado", Handler: h.Material.UpdateEstado, Mw: []gin.HandlerFunc{requireEncargado}},
		})

		categorias := authed.Group("/Categoria")
		addRoutes(categorias, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Categoria.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Categoria.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Categoria.Create, Mw: []gin.HandlerFunc{requireEncargado}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Categoria.Update, Mw: []gin.HandlerFunc{requireEncargado}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Categoria.Delete, Mw: []gin.HandlerFunc{requireEncargado}},
		})

		roles := authed.Group("/Rol")
		addRoutes(roles, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Usuario.ListRoles},
		})

		usuarios := authed.Group("/Usuario")
		usuarios.Use(requireEncargado)
		addRoutes(usuarios, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Usuario.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Usuario.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Usuario.Update},
		})

		docentes := authed.Group("/Docente")
		addRoutes(docentes, []route{
			{Method: http.MethodGet, Path: "/PorUsuario/:usuarioId", Handler: h.Docente.GetByUsuario},
			{Method: http.MethodGet, Path: "", Handler: h.Docente.List, Mw: []gin.HandlerFunc{requireEncargado}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Docente.Get, Mw: []gin.HandlerFunc{requireEncargado}},
			{Method: http.MethodPost, Path: "", Handler: h.Docente.Create, Mw: []gin.HandlerFunc{requireEncargado}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Docente.Update, Mw: []gin.HandlerFunc{requireEncargado}},
		})

		solicitudes := authed.Group("/Solicitud")
		addRoutes(solicitudes, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Solicitud.Create, Mw: []gin.HandlerFunc{requireDocente}},
			{Method: http.MethodGet, Path: "", Handler: h.Solicitud.List, Mw: []gin.HandlerFunc{requireEncargado}},
			{Method: http.MethodGet, Path: "/PorDocente/:docenteId", Handler: h.Solicitud.ListByDocente},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Solicitud.Get},
			{Method: http.MethodPost, Path: "/:id/aprobar", Handler: h.Solicitud.Aprobar, Mw: []gin.HandlerFunc{requireEncargado}},
			{Method: http.MethodPost, Path: "/:id/rechazar", Handler: h.Solicitud.Rechazar, Mw: []gin.HandlerFunc{requireEncargado}},
		})

		prestamos := authed.Group("/Prestamo")
		prestamos.Use(requireEncargado)
		addRoutes(prestamos, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Prestamo.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Prestamo.Get},
		})

		devoluciones := authed.Group("/Devolucion")
		devoluciones.Use(requireEncargado)
		addRoutes(devoluciones, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Prestamo.CreateDevolucion},
			{Method: http.MethodGet, Path: "", Handler: h.Prestamo.ListDevoluciones},
		})

		reparaciones := authed.Group("/Reparacion")
		reparaciones.Use(requireEncargado)
		addRoutes(reparaciones, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reparacion.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reparacion.List},
		})

		movimientos := authed.Group("/Movimiento")
		movimientos.Use(requireEncargado)
		addRoutes(movimientos, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Movimiento.List},
		})

		reportes := authed.Group("/Reporte")
		reportes.Use(requireEncargado)
		addRoutes(reportes, []route{
			{Method: http.MethodGet, Path: "/prestamos-y-devoluciones", Handler: h.Reporte.PrestamosYDevoluciones},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
