//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"loandesk/internal/domain/user"
	"loandesk/internal/handler/api"
	reqdto "loandesk/internal/handler/dto/request"
	"loandesk/internal/handler/middleware"
	"loandesk/internal/pkg/errs"
	"loandesk/internal/usecase"
	"loandesk/internal/usecase/queries"
	"loandesk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type mockSolicitudUseCase struct {
	mock.Mock
}

func (m *mockSolicitudUseCase) CreateSolicitud(ctx context.Context, req reqdto.CreateSolicitudRequest) (*queries.SolicitudCompletaView, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*queries.SolicitudCompletaView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSolicitudUseCase) ListSolicitudes(ctx context.Context) ([]*queries.SolicitudView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*queries.SolicitudView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSolicitudUseCase) ListSolicitudesByDocente(ctx context.Context, docenteID int64) ([]*queries.SolicitudView, error) {
	args := m.Called(ctx, docenteID)
	if v := args.Get(0); v != nil {
		return v.([]*queries.SolicitudView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSolicitudUseCase) GetSolicitud(ctx context.Context, id int64) (*queries.SolicitudCompletaView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.SolicitudCompletaView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSolicitudUseCase) AprobarSolicitud(ctx context.Context, id int64, fechaDevolucionPrevista time.Time) (*queries.PrestamoView, error) {
	args := m.Called(ctx, id, fechaDevolucionPrevista)
	if v := args.Get(0); v != nil {
		return v.(*queries.PrestamoView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSolicitudUseCase) RechazarSolicitud(ctx context.Context, id int64) (*queries.SolicitudCompletaView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.SolicitudCompletaView), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockDocenteUseCase struct {
	mock.Mock
}

func (m *mockDocenteUseCase) ListDocentes(ctx context.Context) ([]*queries.DocenteView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*queries.DocenteView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocenteUseCase) GetDocente(ctx context.Context, id int64) (*queries.DocenteView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.DocenteView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocenteUseCase) GetDocenteByUsuario(ctx context.Context, usuarioID int64) (*queries.DocenteView, error) {
	args := m.Called(ctx, usuarioID)
	if v := args.Get(0); v != nil {
		return v.(*queries.DocenteView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocenteUseCase) CreateDocente(ctx context.Context, usuarioID int64, nombre, apellido, cedulaIdentidad string) (*queries.DocenteView, error) {
	args := m.Called(ctx, usuarioID, nombre, apellido, cedulaIdentidad)
	if v := args.Get(0); v != nil {
		return v.(*queries.DocenteView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocenteUseCase) UpdateDocente(ctx context.Context, id int64, nombre, apellido, cedulaIdentidad string) (*queries.DocenteView, error) {
	args := m.Called(ctx, id, nombre, apellido, cedulaIdentidad)
	if v := args.Get(0); v != nil {
		return v.(*queries.DocenteView), args.Error(1)
	}
	return nil, args.Error(1)
}

type SolicitudHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockUseCase   *mockSolicitudUseCase
	mockDocente   *mockDocenteUseCase
	authUsuarioID int64
	authRole      user.Role
}

func (s *SolicitudHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockUseCase = new(mockSolicitudUseCase)
	s.mockDocente = new(mockDocenteUseCase)
	s.authUsuarioID = 1
	s.authRole = user.RoleEncargado

	// Stands in for RequireAuth so handlers see a resolved identity.
	s.router.Use(func(c *gin.Context) {
		middleware.SetAuthContext(c, s.authUsuarioID, s.authRole)
	})

	handler := api.NewSolicitudHandler(s.mockUseCase, s.mockDocente)
	s.router.POST("/api/Solicitud", handler.Create)
	s.router.GET("/api/Solicitud", handler.List)
	s.router.GET("/api/Solicitud/PorDocente/:docenteId", handler.ListByDocente)
	s.router.GET("/api/Solicitud/:id", handler.Get)
	s.router.POST("/api/Solicitud/:id/aprobar", handler.Aprobar)
	s.router.POST("/api/Solicitud/:id/rechazar", handler.Rechazar)
}

func TestSolicitudHandlerSuite(t *testing.T) {
	suite.Run(t, new(SolicitudHandlerTestSuite))
}

func (s *SolicitudHandlerTestSuite) TestCreate() {
	body := map[string]any{
		"docenteId": 4,
		"detalles":  []map[string]any{{"materialId": 1, "cantidadSolicitada": 2}},
	}

	s.Run("created pending", func() {
		s.mockUseCase.On("CreateSolicitud", mock.Anything, mock.Anything).
			Return(&queries.SolicitudCompletaView{
				SolicitudView: queries.SolicitudView{ID: 7, DocenteID: 4, EstadoSolicitud: "Pendiente"},
			}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/Solicitud", body, "")

		var response queries.SolicitudCompletaView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Pendiente", response.EstadoSolicitud)
	})

	s.Run("insufficient stock", func() {
		s.mockUseCase.On("CreateSolicitud", mock.Anything, mock.Anything).
			Return(nil, errs.ErrInsufficientStock).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/Solicitud", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "exceeds available stock")
	})

	s.Run("empty detalles rejected by binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/Solicitud",
			map[string]any{"docenteId": 4, "detalles": []map[string]any{}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("unknown docente", func() {
		s.mockUseCase.On("CreateSolicitud", mock.Anything, mock.Anything).
			Return(nil, usecase.ErrDocenteNotFound).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/Solicitud", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Docente not found")
	})
}

func (s *SolicitudHandlerTestSuite) TestListByDocente() {
	s.Run("docente reads own solicitudes", func() {
		s.authRole = user.RoleDocente
		s.authUsuarioID = 10
		s.mockDocente.On("GetDocenteByUsuario", mock.Anything, int64(10)).
			Return(&queries.DocenteView{ID: 4, UsuarioID: 10}, nil).Once()
		s.mockUseCase.On("ListSolicitudesByDocente", mock.Anything, int64(4)).
			Return([]*queries.SolicitudView{{ID: 7, DocenteID: 4, EstadoSolicitud: "Pendiente"}}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/Solicitud/PorDocente/4", nil, "")

		var response []queries.SolicitudView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(int64(4), response[0].DocenteID)
	})

	s.Run("encargado reads any docente", func() {
		s.authRole = user.RoleEncargado
		s.mockUseCase.On("ListSolicitudesByDocente", mock.Anything, int64(5)).
			Return([]*queries.SolicitudView{}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/Solicitud/PorDocente/5", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.mockDocente.AssertNotCalled(s.T(), "GetDocenteByUsuario", mock.Anything, mock.Anything)
	})
}

func (s *SolicitudHandlerTestSuite) TestListByDocenteForbidden() {
	s.Run("docente cannot read another docente", func() {
		s.authRole = user.RoleDocente
		s.authUsuarioID = 10
		s.mockDocente.On("GetDocenteByUsuario", mock.Anything, int64(10)).
			Return(&queries.DocenteView{ID: 4, UsuarioID: 10}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/Solicitud/PorDocente/5", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("docente without a profile is refused", func() {
		s.authRole = user.RoleDocente
		s.authUsuarioID = 11
		s.mockDocente.On("GetDocenteByUsuario", mock.Anything, int64(11)).
			Return(nil, usecase.ErrDocenteNotFound).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/Solicitud/PorDocente/4", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.mockUseCase.AssertNotCalled(s.T(), "ListSolicitudesByDocente", mock.Anything, mock.Anything)
}

func (s *SolicitudHandlerTestSuite) TestAprobar() {
	fecha := time.Date(2026, 3, 17, 12, 0, 0, 0, time.UTC)
	body := map[string]any{"fechaDevolucionPrevista": fecha.Format(time.RFC3339)}

	s.Run("approved returns the created prestamo", func() {
		s.mockUseCase.On("AprobarSolicitud", mock.Anything, int64(7), fecha).
			Return(&queries.PrestamoView{ID: 9, SolicitudID: 7, EstadoPrestamo: "Activo"}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/Solicitud/7/aprobar", body, "")

		var response queries.PrestamoView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(9), response.ID)
		s.Equal("Activo", response.EstadoPrestamo)
	})

	s.Run("already decided", func() {
		s.mockUseCase.On("AprobarSolicitud", mock.Anything, int64(7), fecha).
			Return(nil, errs.ErrSolicitudNotPending).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/Solicitud/7/aprobar", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not pending")
	})

	s.Run("due date not in the future", func() {
		s.mockUseCase.On("AprobarSolicitud", mock.Anything, int64(7), fecha).
			Return(nil, errs.ErrDueDateNotFuture).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/Solicitud/7/aprobar", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "must be in the future")
	})

	s.Run("stock drained since submission", func() {
		s.mockUseCase.On("AprobarSolicitud", mock.Anything, int64(7), fecha).
			Return(nil, errs.ErrInsufficientStock).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/Solicitud/7/aprobar", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Insufficient stock")
	})
}

func (s *SolicitudHandlerTestSuite) TestRechazar() {
	s.Run("rejected", func() {
		s.mockUseCase.On("RechazarSolicitud", mock.Anything, int64(7)).
			Return(&queries.SolicitudCompletaView{
				SolicitudView: queries.SolicitudView{ID: 7, EstadoSolicitud: "Rechazada"},
			}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/Solicitud/7/rechazar", nil, "")

		var response queries.SolicitudCompletaView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Rechazada", response.EstadoSolicitud)
	})

	s.Run("terminal state stays put", func() {
		s.mockUseCase.On("RechazarSolicitud", mock.Anything, int64(7)).
			Return(nil, errs.ErrSolicitudNotPending).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/Solicitud/7/rechazar", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not pending")
	})
}
