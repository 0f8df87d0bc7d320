//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"loandesk/tests/common/dbtest"
	"loandesk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type SolicitudFlowTestSuite struct {
	suite.Suite
}

func TestSolicitudFlowSuite(t *testing.T) {
	suite.Run(t, new(SolicitudFlowTestSuite))
}

type loginResult struct {
	UsuarioID int64  `json:"usuarioId"`
	NombreRol string `json:"nombreRol"`
	Token     string `json:"token"`
}

// TestLoanLifecycle walks the whole happy path: a docente files a request
// from the cart payload, the encargado approves it, stock drops, the loan is
// returned, stock recovers, and the movement ledger records every step.
func (s *SolicitudFlowTestSuite) TestLoanLifecycle() {
	pool, router, _ := setupE2EEnvironment(s.T())
	t := s.T()

	encargadoID := dbtest.CreateTestUsuario(t, pool, "mrojas", "mrojas@instituto.edu", "secreto123", "encargado")
	docenteUsuarioID := dbtest.CreateTestUsuario(t, pool, "jperez", "jperez@instituto.edu", "secreto123", "docente")
	docenteID := dbtest.CreateTestDocente(t, pool, docenteUsuarioID, "Juan", "Perez", "4455667")
	categoriaID := dbtest.CreateTestCategoria(t, pool, "Audiovisual")
	materialID := dbtest.CreateTestMaterial(t, pool, categoriaID, "Proyector Epson", 5)

	// both roles can log in with either nombre de usuario or email
	var encargadoLogin, docenteLogin loginResult
	rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/Auth/login",
		map[string]any{"nombreUsuarioOrEmail": "mrojas", "password": "secreto123"}, "")
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &encargadoLogin)
	s.Equal(encargadoID, encargadoLogin.UsuarioID)
	s.Equal("encargado", encargadoLogin.NombreRol)

	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/Auth/login",
		map[string]any{"nombreUsuarioOrEmail": "jperez@instituto.edu", "password": "secreto123"}, "")
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &docenteLogin)

	// the docente files a request for 2 units
	var created struct {
		ID              int64  `json:"id"`
		EstadoSolicitud string `json:"estadoSolicitud"`
		Detalles        []struct {
			MaterialID         int64 `json:"materialId"`
			CantidadSolicitada int32 `json:"cantidadSolicitada"`
		} `json:"detalles"`
	}
	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/Solicitud",
		map[string]any{
			"docenteId": docenteID,
			"detalles":  []map[string]any{{"materialId": materialID, "cantidadSolicitada": 2}},
		}, docenteLogin.Token)
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
	s.Equal("Pendiente", created.EstadoSolicitud)
	s.Require().Len(created.Detalles, 1)

	// a docente may not approve
	fechaPrevista := time.Now().AddDate(0, 0, 7).Format(time.RFC3339)
	rec = httptest.PerformRequest(t, router, http.MethodPost,
		s.solicitudPath(created.ID, "aprobar"),
		map[string]any{"fechaDevolucionPrevista": fechaPrevista}, docenteLogin.Token)
	s.Equal(http.StatusForbidden, rec.Code)

	// the encargado approves; a loan appears and stock drops
	var prestamo struct {
		ID             int64  `json:"id"`
		SolicitudID    int64  `json:"solicitudId"`
		EstadoPrestamo string `json:"estadoPrestamo"`
	}
	rec = httptest.PerformRequest(t, router, http.MethodPost,
		s.solicitudPath(created.ID, "aprobar"),
		map[string]any{"fechaDevolucionPrevista": fechaPrevista}, encargadoLogin.Token)
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &prestamo)
	s.Equal(created.ID, prestamo.SolicitudID)
	s.Equal("Activo", prestamo.EstadoPrestamo)

	s.assertDisponibilidad(router, materialID, 3, encargadoLogin.Token)

	// the decision is terminal
	rec = httptest.PerformRequest(t, router, http.MethodPost,
		s.solicitudPath(created.ID, "rechazar"), nil, encargadoLogin.Token)
	s.Equal(http.StatusConflict, rec.Code)

	// return the loan; stock recovers in the same transaction
	var devolucion struct {
		ID         int64 `json:"id"`
		PrestamoID int64 `json:"prestamoId"`
	}
	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/Devolucion",
		map[string]any{"prestamoId": prestamo.ID, "observaciones": "sin observaciones"}, encargadoLogin.Token)
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &devolucion)
	s.Equal(prestamo.ID, devolucion.PrestamoID)

	s.assertDisponibilidad(router, materialID, 5, encargadoLogin.Token)

	// a second devolucion for the same loan is refused
	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/Devolucion",
		map[string]any{"prestamoId": prestamo.ID}, encargadoLogin.Token)
	s.Equal(http.StatusConflict, rec.Code)

	// the ledger holds Ingreso, Prestamo and Devolucion rows for the material
	var movimientos []struct {
		MaterialID     int64  `json:"materialId"`
		TipoMovimiento string `json:"tipoMovimiento"`
		Cantidad       int32  `json:"cantidad"`
	}
	rec = httptest.PerformRequest(t, router, http.MethodGet, "/api/Movimiento", nil, encargadoLogin.Token)
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &movimientos)

	tipos := map[string]int32{}
	for _, m := range movimientos {
		if m.MaterialID == materialID {
			tipos[m.TipoMovimiento] += m.Cantidad
		}
	}
	s.Equal(int32(5), tipos["Ingreso"])
	s.Equal(int32(2), tipos["Prestamo"])
	s.Equal(int32(2), tipos["Devolucion"])
}

func (s *SolicitudFlowTestSuite) TestSolicitudValidation() {
	pool, router, _ := setupE2EEnvironment(s.T())
	t := s.T()

	dbtest.CreateTestUsuario(t, pool, "mrojas", "mrojas@instituto.edu", "secreto123", "encargado")
	docenteUsuarioID := dbtest.CreateTestUsuario(t, pool, "jperez", "jperez@instituto.edu", "secreto123", "docente")
	docenteID := dbtest.CreateTestDocente(t, pool, docenteUsuarioID, "Juan", "Perez", "4455667")
	categoriaID := dbtest.CreateTestCategoria(t, pool, "Laboratorio")
	materialID := dbtest.CreateTestMaterial(t, pool, categoriaID, "Microscopio", 1)

	var docenteLogin loginResult
	rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/Auth/login",
		map[string]any{"nombreUsuarioOrEmail": "jperez", "password": "secreto123"}, "")
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &docenteLogin)

	// more units than the stock holds
	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/Solicitud",
		map[string]any{
			"docenteId": docenteID,
			"detalles":  []map[string]any{{"materialId": materialID, "cantidadSolicitada": 3}},
		}, docenteLogin.Token)
	httptest.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "exceeds available stock")

	// unauthenticated requests never reach the handler
	rec = httptest.PerformRequest(t, router, http.MethodGet, "/api/Solicitud/PorDocente/1", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	// a docente sees their own solicitudes but not another docente's
	rec = httptest.PerformRequest(t, router, http.MethodGet,
		fmt.Sprintf("/api/Solicitud/PorDocente/%d", docenteID), nil, docenteLogin.Token)
	s.Equal(http.StatusOK, rec.Code)

	rec = httptest.PerformRequest(t, router, http.MethodGet,
		fmt.Sprintf("/api/Solicitud/PorDocente/%d", docenteID+1), nil, docenteLogin.Token)
	s.Equal(http.StatusForbidden, rec.Code)

	// estado updates ride PUT, the verb the admin panel speaks
	var encargadoLogin loginResult
	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/Auth/login",
		map[string]any{"nombreUsuarioOrEmail": "mrojas", "password": "secreto123"}, "")
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &encargadoLogin)

	rec = httptest.PerformRequest(t, router, http.MethodPut,
		fmt.Sprintf("/api/Material/%d/estado", materialID),
		map[string]any{"estado": "DeBaja"}, encargadoLogin.Token)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *SolicitudFlowTestSuite) solicitudPath(id int64, action string) string {
	return fmt.Sprintf("/api/Solicitud/%d/%s", id, action)
}

func (s *SolicitudFlowTestSuite) assertDisponibilidad(router *gin.Engine, materialID int64, want int32, token string) {
	s.T().Helper()

	var disponibilidad struct {
		CantidadDisponible int32  `json:"cantidadDisponible"`
		Estado             string `json:"estado"`
	}
	rec := httptest.PerformRequest(s.T(), router, http.MethodGet,
		fmt.Sprintf("/api/Material/%d/disponibilidad", materialID), nil, token)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &disponibilidad)
	s.Equal(want, disponibilidad.CantidadDisponible)
}
