package api

import (
	"errors"
	"net/http"

	reqdto "loandesk/internal/handler/dto/request"
	"loandesk/internal/pkg/errs"
	"loandesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReparacionHandler struct {
	reparacionUseCase usecase.ReparacionUseCase
}

func NewReparacionHandler(reparacionUseCase usecase.ReparacionUseCase) *ReparacionHandler {
	return &ReparacionHandler{
		reparacionUseCase: reparacionUseCase,
	}
}

// @Summary Send material to repair
// @Tags reparaciones
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReparacionRequest true "Reparacion"
// @Success 201 {object} queries.ReparacionView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /Reparacion [post]
func (h *ReparacionHandler) Create(c *gin.Context) {
	var req reqdto.CreateReparacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.reparacionUseCase.EnviarAReparacion(c.Request.Context(), req.MaterialID, req.FechaEnvio, req.DescripcionFalla, req.Costo, req.Cantidad)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMaterialNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
		case errors.Is(err, errs.ErrMaterialUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Material not available"})
		case errors.Is(err, errs.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock for reparacion"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List reparaciones
// @Tags reparaciones
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ReparacionView
// @Router /Reparacion [get]
func (h *ReparacionHandler) List(c *gin.Context) {
	views, err := h.reparacionUseCase.ListReparaciones(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

type MovimientoHandler struct {
	movimientoUseCase usecase.MovimientoUseCase
}

func NewMovimientoHandler(movimientoUseCase usecase.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{
		movimientoUseCase: movimientoUseCase,
	}
}

// @Summary List movimientos
// @Description Full stock movement ledger, newest first
// @Tags movimientos
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.MovimientoView
// @Router /Movimiento [get]
func (h *MovimientoHandler) List(c *gin.Context) {
	views, err := h.movimientoUseCase.ListMovimientos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}
