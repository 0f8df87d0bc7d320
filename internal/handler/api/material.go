package api

import (
	"errors"
	"net/http"

	reqdto "loandesk/internal/handler/dto/request"
	"loandesk/internal/pkg/errs"
	"loandesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MaterialHandler struct {
	materialUseCase usecase.MaterialUseCase
}

func NewMaterialHandler(materialUseCase usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{
		materialUseCase: materialUseCase,
	}
}

// @Summary List materiales
// @Tags materiales
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.MaterialView
// @Router /Material [get]
func (h *MaterialHandler) List(c *gin.Context) {
	views, err := h.materialUseCase.ListMateriales(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get material
// @Tags materiales
// @Security BearerAuth
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} queries.MaterialView
// @Failure 404 {object} map[string]string
// @Router /Material/{id} [get]
func (h *MaterialHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID"})
		return
	}

	view, err := h.materialUseCase.GetMaterial(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrMaterialNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Register material
// @Tags materiales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateMaterialRequest true "Material"
// @Success 201 {object} queries.MaterialView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /Material [post]
func (h *MaterialHandler) Create(c *gin.Context) {
	var req reqdto.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.materialUseCase.CreateMaterial(c.Request.Context(), req.CategoriaID, req.NombreMaterial, req.Descripcion, req.CantidadTotal, req.Estado)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCategoriaNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Categoria not found"})
		case errors.Is(err, usecase.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid material data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update material
// @Tags materiales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param request body reqdto.UpdateMaterialRequest true "Material"
// @Success 200 {object} queries.MaterialView
// @Failure 404 {object} map[string]string
// @Router /Material/{id} [put]
func (h *MaterialHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID"})
		return
	}

	var req reqdto.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.materialUseCase.UpdateMaterial(c.Request.Context(), id, req.CategoriaID, req.NombreMaterial, req.Descripcion)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMaterialNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
		case errors.Is(err, usecase.ErrCategoriaNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Categoria not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Change material estado
// @Tags materiales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param request body reqdto.UpdateEstadoRequest true "Estado"
// @Success 200 {object} queries.MaterialView
// @Failure 404 {object} map[string]string
// @Router /Material/{id}/estado [put]
func (h *MaterialHandler) UpdateEstado(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID"})
		return
	}

	var req reqdto.UpdateEstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.materialUseCase.UpdateEstado(c.Request.Context(), id, req.Estado)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMaterialNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
		case errors.Is(err, usecase.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid estado"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Material availability
// @Tags materiales
// @Security BearerAuth
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} queries.DisponibilidadView
// @Failure 404 {object} map[string]string
// @Router /Material/{id}/disponibilidad [get]
func (h *MaterialHandler) GetDisponibilidad(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID"})
		return
	}

	view, err := h.materialUseCase.GetDisponibilidad(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrMaterialNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}
