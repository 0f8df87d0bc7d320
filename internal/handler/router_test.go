//go:build unit

package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"loandesk/internal/domain/user"
	"loandesk/internal/handler/api"
	"loandesk/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type rejectAllValidator struct{}

func (rejectAllValidator) ValidateToken(string) (int64, user.Role, error) {
	return 0, "", errors.New("invalid token")
}

func newRoutedEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := Handlers{
		Auth:       &api.AuthHandler{},
		Usuario:    &api.UsuarioHandler{},
		Docente:    &api.DocenteHandler{},
		Categoria:  &api.CategoriaHandler{},
		Material:   &api.MaterialHandler{},
		Solicitud:  &api.SolicitudHandler{},
		Prestamo:   &api.PrestamoHandler{},
		Reparacion: &api.ReparacionHandler{},
		Movimiento: &api.MovimientoHandler{},
		Reporte:    &api.ReporteHandler{},
	}
	setupRoutes(engine, h, middleware.NewAuthMiddleware(rejectAllValidator{}))
	return engine
}

func perform(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	engine.ServeHTTP(rec, req)
	return rec
}

// The material estado update is part of the admin panel's wire contract as a
// PUT; a client speaking the documented verb must reach the route (and stop
// at the auth gate), not fall through to a 404.
func TestMaterialEstadoServedOnPut(t *testing.T) {
	engine := newRoutedEngine()

	rec := perform(engine, http.MethodPut, "/api/Material/1/estado")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = perform(engine, http.MethodPatch, "/api/Material/1/estado")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouteContractVerbs(t *testing.T) {
	engine := newRoutedEngine()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/Material/1/disponibilidad"},
		{http.MethodPut, "/api/Material/1"},
		{http.MethodPost, "/api/Solicitud/1/aprobar"},
		{http.MethodPost, "/api/Solicitud/1/rechazar"},
		{http.MethodGet, "/api/Solicitud/PorDocente/1"},
		{http.MethodPost, "/api/Devolucion"},
		{http.MethodGet, "/api/Reporte/prestamos-y-devoluciones"},
	} {
		rec := perform(engine, tc.method, tc.path)
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}
