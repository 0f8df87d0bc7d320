package api

import (
	"errors"
	"net/http"

	reqdto "loandesk/internal/handler/dto/request"
	"loandesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CategoriaHandler struct {
	categoriaUseCase usecase.CategoriaUseCase
}

func NewCategoriaHandler(categoriaUseCase usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{
		categoriaUseCase: categoriaUseCase,
	}
}

// @Summary List categorias
// @Tags categorias
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.CategoriaView
// @Router /Categoria [get]
func (h *CategoriaHandler) List(c *gin.Context) {
	views, err := h.categoriaUseCase.ListCategorias(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get categoria
// @Tags categorias
// @Security BearerAuth
// @Produce json
// @Param id path int true "Categoria ID"
// @Success 200 {object} queries.CategoriaView
// @Failure 404 {object} map[string]string
// @Router /Categoria/{id} [get]
func (h *CategoriaHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categoria ID"})
		return
	}

	view, err := h.categoriaUseCase.GetCategoria(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCategoriaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Categoria not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create categoria
// @Tags categorias
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCategoriaRequest true "Categoria"
// @Success 201 {object} queries.CategoriaView
// @Failure 409 {object} map[string]string
// @Router /Categoria [post]
func (h *CategoriaHandler) Create(c *gin.Context) {
	var req reqdto.CreateCategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.categoriaUseCase.CreateCategoria(c.Request.Context(), req.NombreCategoria, req.Descripcion)
	if err != nil {
		if errors.Is(err, usecase.ErrCategoriaDuplicada) {
			c.JSON(http.StatusConflict, gin.H{"error": "Categoria already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update categoria
// @Tags categorias
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Categoria ID"
// @Param request body reqdto.UpdateCategoriaRequest true "Categoria"
// @Success 200 {object} queries.CategoriaView
// @Failure 404 {object} map[string]string
// @Router /Categoria/{id} [put]
func (h *CategoriaHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categoria ID"})
		return
	}

	var req reqdto.UpdateCategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.categoriaUseCase.UpdateCategoria(c.Request.Context(), id, req.NombreCategoria, req.Descripcion)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCategoriaNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Categoria not found"})
		case errors.Is(err, usecase.ErrCategoriaDuplicada):
			c.JSON(http.StatusConflict, gin.H{"error": "Categoria already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete categoria
// @Tags categorias
// @Security BearerAuth
// @Param id path int true "Categoria ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /Categoria/{id} [delete]
func (h *CategoriaHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categoria ID"})
		return
	}

	if err := h.categoriaUseCase.DeleteCategoria(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCategoriaNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Categoria not found"})
		case errors.Is(err, usecase.ErrCategoriaEnUso):
			c.JSON(http.StatusConflict, gin.H{"error": "Categoria has materiales assigned"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
