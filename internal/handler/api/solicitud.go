package api

import (
	"errors"
	"net/http"

	"loandesk/internal/domain/user"
	reqdto "loandesk/internal/handler/dto/request"
	"loandesk/internal/handler/middleware"
	"loandesk/internal/pkg/errs"
	"loandesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SolicitudHandler struct {
	solicitudUseCase usecase.SolicitudUseCase
	docenteUseCase   usecase.DocenteUseCase
}

func NewSolicitudHandler(solicitudUseCase usecase.SolicitudUseCase, docenteUseCase usecase.DocenteUseCase) *SolicitudHandler {
	return &SolicitudHandler{
		solicitudUseCase: solicitudUseCase,
		docenteUseCase:   docenteUseCase,
	}
}

// @Summary Submit solicitud
// @Description Create a pending material request for a docente
// @Tags solicitudes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSolicitudRequest true "Solicitud"
// @Success 201 {object} queries.SolicitudCompletaView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /Solicitud [post]
func (h *SolicitudHandler) Create(c *gin.Context) {
	var req reqdto.CreateSolicitudRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.solicitudUseCase.CreateSolicitud(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDocenteNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Docente not found"})
		case errors.Is(err, errs.ErrMaterialNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
		case errors.Is(err, errs.ErrMaterialUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Material not available"})
		case errors.Is(err, errs.ErrInsufficientStock):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Requested cantidad exceeds available stock"})
		case errors.Is(err, usecase.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid solicitud data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List solicitudes
// @Tags solicitudes
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.SolicitudView
// @Router /Solicitud [get]
func (h *SolicitudHandler) List(c *gin.Context) {
	views, err := h.solicitudUseCase.ListSolicitudes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Solicitudes by docente
// @Tags solicitudes
// @Security BearerAuth
// @Produce json
// @Param docenteId path int true "Docente ID"
// @Success 200 {array} queries.SolicitudView
// @Failure 403 {object} map[string]string
// @Router /Solicitud/PorDocente/{docenteId} [get]
func (h *SolicitudHandler) ListByDocente(c *gin.Context) {
	docenteID, ok := parseIDParam(c, "docenteId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid docente ID"})
		return
	}

	// A docente may only read their own solicitudes; the encargado sees any.
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if role == user.RoleDocente {
		usuarioID, ok := middleware.GetUsuarioID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		own, err := h.docenteUseCase.GetDocenteByUsuario(c.Request.Context(), usuarioID)
		if err != nil {
			if errors.Is(err, usecase.ErrDocenteNotFound) {
				c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if own.ID != docenteID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
	}

	views, err := h.solicitudUseCase.ListSolicitudesByDocente(c.Request.Context(), docenteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get solicitud
// @Description Solicitud with its detalle lines
// @Tags solicitudes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Solicitud ID"
// @Success 200 {object} queries.SolicitudCompletaView
// @Failure 404 {object} map[string]string
// @Router /Solicitud/{id} [get]
func (h *SolicitudHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid solicitud ID"})
		return
	}

	view, err := h.solicitudUseCase.GetSolicitud(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrSolicitudNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Solicitud not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Approve solicitud
// @Description Approve a pending solicitud, reserve stock and open the prestamo
// @Tags solicitudes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Solicitud ID"
// @Param request body reqdto.AprobarSolicitudRequest true "Due date"
// @Success 200 {object} queries.PrestamoView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /Solicitud/{id}/aprobar [post]
func (h *SolicitudHandler) Aprobar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid solicitud ID"})
		return
	}

	var req reqdto.AprobarSolicitudRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.solicitudUseCase.AprobarSolicitud(c.Request.Context(), id, req.FechaDevolucionPrevista)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSolicitudNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Solicitud not found"})
		case errors.Is(err, errs.ErrSolicitudNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "Solicitud is not pending"})
		case errors.Is(err, errs.ErrDueDateNotFuture):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Fecha de devolucion must be in the future"})
		case errors.Is(err, errs.ErrMaterialUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Material no longer available"})
		case errors.Is(err, errs.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock to approve"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Reject solicitud
// @Tags solicitudes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Solicitud ID"
// @Success 200 {object} queries.SolicitudCompletaView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /Solicitud/{id}/rechazar [post]
func (h *SolicitudHandler) Rechazar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid solicitud ID"})
		return
	}

	view, err := h.solicitudUseCase.RechazarSolicitud(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSolicitudNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Solicitud not found"})
		case errors.Is(err, errs.ErrSolicitudNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "Solicitud is not pending"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}
