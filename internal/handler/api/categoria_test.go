//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"loandesk/internal/handler/api"
	"loandesk/internal/pkg/ptr"
	"loandesk/internal/usecase"
	"loandesk/internal/usecase/queries"
	"loandesk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type mockCategoriaUseCase struct {
	mock.Mock
}

func (m *mockCategoriaUseCase) ListCategorias(ctx context.Context) ([]*queries.CategoriaView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*queries.CategoriaView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoriaUseCase) GetCategoria(ctx context.Context, id int64) (*queries.CategoriaView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.CategoriaView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoriaUseCase) CreateCategoria(ctx context.Context, nombre string, descripcion *string) (*queries.CategoriaView, error) {
	args := m.Called(ctx, nombre, descripcion)
	if v := args.Get(0); v != nil {
		return v.(*queries.CategoriaView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoriaUseCase) UpdateCategoria(ctx context.Context, id int64, nombre string, descripcion *string) (*queries.CategoriaView, error) {
	args := m.Called(ctx, id, nombre, descripcion)
	if v := args.Get(0); v != nil {
		return v.(*queries.CategoriaView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoriaUseCase) DeleteCategoria(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CategoriaHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockUseCase *mockCategoriaUseCase
}

func (s *CategoriaHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockUseCase = new(mockCategoriaUseCase)

	handler := api.NewCategoriaHandler(s.mockUseCase)
	s.router.GET("/api/Categoria", handler.List)
	s.router.GET("/api/Categoria/:id", handler.Get)
	s.router.POST("/api/Categoria", handler.Create)
	s.router.PUT("/api/Categoria/:id", handler.Update)
	s.router.DELETE("/api/Categoria/:id", handler.Delete)
}

func TestCategoriaHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoriaHandlerTestSuite))
}

func (s *CategoriaHandlerTestSuite) TestList() {
	s.mockUseCase.On("ListCategorias", mock.Anything).
		Return([]*queries.CategoriaView{
			{ID: 1, NombreCategoria: "Electrónica", Descripcion: ptr.To("Equipos de laboratorio")},
		}, nil).Once()

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/Categoria", nil, "")

	var response []queries.CategoriaView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 1)
	s.Equal("Electrónica", response[0].NombreCategoria)
	s.mockUseCase.AssertExpectations(s.T())
}

func (s *CategoriaHandlerTestSuite) TestGet() {
	s.Run("found", func() {
		s.mockUseCase.On("GetCategoria", mock.Anything, int64(1)).
			Return(&queries.CategoriaView{ID: 1, NombreCategoria: "Electrónica"}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/Categoria/1", nil, "")

		var response queries.CategoriaView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1), response.ID)
	})

	s.Run("not found", func() {
		s.mockUseCase.On("GetCategoria", mock.Anything, int64(9)).
			Return(nil, usecase.ErrCategoriaNotFound).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/Categoria/9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Categoria not found")
	})

	s.Run("invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/Categoria/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid categoria ID")
	})
}

func (s *CategoriaHandlerTestSuite) TestCreate() {
	body := map[string]any{"nombreCategoria": "Audiovisual", "descripcion": "Proyectores y pantallas"}

	s.Run("created", func() {
		s.mockUseCase.On("CreateCategoria", mock.Anything, "Audiovisual", mock.Anything).
			Return(&queries.CategoriaView{ID: 2, NombreCategoria: "Audiovisual"}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/Categoria", body, "")

		var response queries.CategoriaView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(2), response.ID)
	})

	s.Run("duplicate nombre", func() {
		s.mockUseCase.On("CreateCategoria", mock.Anything, "Audiovisual", mock.Anything).
			Return(nil, usecase.ErrCategoriaDuplicada).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/Categoria", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Categoria already exists")
	})

	s.Run("missing nombre", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/Categoria", map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *CategoriaHandlerTestSuite) TestDelete() {
	s.Run("deleted", func() {
		s.mockUseCase.On("DeleteCategoria", mock.Anything, int64(1)).Return(nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/Categoria/1", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("still referenced by materiales", func() {
		s.mockUseCase.On("DeleteCategoria", mock.Anything, int64(2)).
			Return(usecase.ErrCategoriaEnUso).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/Categoria/2", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Categoria has materiales assigned")
	})
}
