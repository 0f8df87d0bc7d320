package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"loandesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReporteHandler struct {
	reporteUseCase usecase.ReporteUseCase
}

func NewReporteHandler(reporteUseCase usecase.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{
		reporteUseCase: reporteUseCase,
	}
}

// parseDateParam accepts either a bare date or a full RFC3339 timestamp. A
// bare date used as the upper bound is stretched to the end of that day so
// the range stays inclusive.
func parseDateParam(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// @Summary Prestamos y devoluciones report
// @Description Loans and returns inside an inclusive date range, optionally per usuario
// @Tags reportes
// @Security BearerAuth
// @Produce json
// @Param desde query string true "Range start (YYYY-MM-DD or RFC3339)"
// @Param hasta query string true "Range end (YYYY-MM-DD or RFC3339)"
// @Param usuarioId query int false "Restrict to the docente of this usuario"
// @Success 200 {object} queries.ReporteView
// @Failure 400 {object} map[string]string
// @Router /Reporte/prestamos-y-devoluciones [get]
func (h *ReporteHandler) PrestamosYDevoluciones(c *gin.Context) {
	desde, err := parseDateParam(c.Query("desde"), false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid desde date"})
		return
	}

	hasta, err := parseDateParam(c.Query("hasta"), true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hasta date"})
		return
	}

	var usuarioID *int64
	if raw := c.Query("usuarioId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid usuario ID"})
			return
		}
		usuarioID = &id
	}

	view, err := h.reporteUseCase.PrestamosYDevoluciones(c.Request.Context(), desde, hasta, usuarioID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "desde must not be after hasta"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}
