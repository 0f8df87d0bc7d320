package api

import (
	"errors"
	"net/http"

	reqdto "loandesk/internal/handler/dto/request"
	"loandesk/internal/pkg/errs"
	"loandesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PrestamoHandler struct {
	prestamoUseCase   usecase.PrestamoUseCase
	devolucionUseCase usecase.DevolucionUseCase
}

func NewPrestamoHandler(prestamoUseCase usecase.PrestamoUseCase, devolucionUseCase usecase.DevolucionUseCase) *PrestamoHandler {
	return &PrestamoHandler{
		prestamoUseCase:   prestamoUseCase,
		devolucionUseCase: devolucionUseCase,
	}
}

// @Summary List prestamos
// @Tags prestamos
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.PrestamoView
// @Router /Prestamo [get]
func (h *PrestamoHandler) List(c *gin.Context) {
	views, err := h.prestamoUseCase.ListPrestamos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get prestamo
// @Tags prestamos
// @Security BearerAuth
// @Produce json
// @Param id path int true "Prestamo ID"
// @Success 200 {object} queries.PrestamoView
// @Failure 404 {object} map[string]string
// @Router /Prestamo/{id} [get]
func (h *PrestamoHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prestamo ID"})
		return
	}

	view, err := h.prestamoUseCase.GetPrestamo(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrPrestamoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prestamo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Register devolucion
// @Description Close an active prestamo and release its stock
// @Tags devoluciones
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDevolucionRequest true "Devolucion"
// @Success 201 {object} queries.DevolucionView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /Devolucion [post]
func (h *PrestamoHandler) CreateDevolucion(c *gin.Context) {
	var req reqdto.CreateDevolucionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.devolucionUseCase.RegistrarDevolucion(c.Request.Context(), req.PrestamoID, req.Observaciones)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPrestamoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Prestamo not found"})
		case errors.Is(err, errs.ErrPrestamoNotActive):
			c.JSON(http.StatusConflict, gin.H{"error": "Prestamo is not active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List devoluciones
// @Tags devoluciones
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.DevolucionView
// @Router /Devolucion [get]
func (h *PrestamoHandler) ListDevoluciones(c *gin.Context) {
	views, err := h.devolucionUseCase.ListDevoluciones(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}
