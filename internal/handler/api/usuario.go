package api

import (
	"errors"
	"net/http"

	reqdto "loandesk/internal/handler/dto/request"
	"loandesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UsuarioHandler struct {
	usuarioUseCase usecase.UsuarioUseCase
}

func NewUsuarioHandler(usuarioUseCase usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioUseCase: usuarioUseCase,
	}
}

// @Summary Register usuario
// @Tags usuarios
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUsuarioRequest true "Usuario"
// @Success 201 {object} queries.UsuarioView
// @Failure 409 {object} map[string]string
// @Router /Usuario [post]
func (h *UsuarioHandler) Create(c *gin.Context) {
	var req reqdto.CreateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.usuarioUseCase.CreateUsuario(c.Request.Context(), req.RolID, req.NombreUsuario, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRolNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rol not found"})
		case errors.Is(err, usecase.ErrUsuarioDuplicado):
			c.JSON(http.StatusConflict, gin.H{"error": "Usuario or email already registered"})
		case errors.Is(err, usecase.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid usuario data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Get usuario
// @Tags usuarios
// @Security BearerAuth
// @Produce json
// @Param id path int true "Usuario ID"
// @Success 200 {object} queries.UsuarioView
// @Failure 404 {object} map[string]string
// @Router /Usuario/{id} [get]
func (h *UsuarioHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid usuario ID"})
		return
	}

	view, err := h.usuarioUseCase.GetUsuario(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update usuario
// @Tags usuarios
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Usuario ID"
// @Param request body reqdto.UpdateUsuarioRequest true "Usuario"
// @Success 200 {object} queries.UsuarioView
// @Failure 404 {object} map[string]string
// @Router /Usuario/{id} [put]
func (h *UsuarioHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid usuario ID"})
		return
	}

	var req reqdto.UpdateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.usuarioUseCase.UpdateUsuario(c.Request.Context(), id, req.RolID, req.NombreUsuario, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario not found"})
		case errors.Is(err, usecase.ErrRolNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rol not found"})
		case errors.Is(err, usecase.ErrUsuarioDuplicado):
			c.JSON(http.StatusConflict, gin.H{"error": "Usuario or email already registered"})
		case errors.Is(err, usecase.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid usuario data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List roles
// @Tags usuarios
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.RolView
// @Router /Rol [get]
func (h *UsuarioHandler) ListRoles(c *gin.Context) {
	views, err := h.usuarioUseCase.ListRoles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

type DocenteHandler struct {
	docenteUseCase usecase.DocenteUseCase
}

func NewDocenteHandler(docenteUseCase usecase.DocenteUseCase) *DocenteHandler {
	return &DocenteHandler{
		docenteUseCase: docenteUseCase,
	}
}

// @Summary List docentes
// @Tags docentes
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.DocenteView
// @Router /Docente [get]
func (h *DocenteHandler) List(c *gin.Context) {
	views, err := h.docenteUseCase.ListDocentes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get docente
// @Tags docentes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Docente ID"
// @Success 200 {object} queries.DocenteView
// @Failure 404 {object} map[string]string
// @Router /Docente/{id} [get]
func (h *DocenteHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid docente ID"})
		return
	}

	view, err := h.docenteUseCase.GetDocente(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrDocenteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Docente not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Docente by usuario
// @Description Resolve the docente profile tied to a usuario account
// @Tags docentes
// @Security BearerAuth
// @Produce json
// @Param usuarioId path int true "Usuario ID"
// @Success 200 {object} queries.DocenteView
// @Failure 404 {object} map[string]string
// @Router /Docente/PorUsuario/{usuarioId} [get]
func (h *DocenteHandler) GetByUsuario(c *gin.Context) {
	usuarioID, ok := parseIDParam(c, "usuarioId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid usuario ID"})
		return
	}

	view, err := h.docenteUseCase.GetDocenteByUsuario(c.Request.Context(), usuarioID)
	if err != nil {
		if errors.Is(err, usecase.ErrDocenteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Docente not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Register docente
// @Tags docentes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDocenteRequest true "Docente"
// @Success 201 {object} queries.DocenteView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /Docente [post]
func (h *DocenteHandler) Create(c *gin.Context) {
	var req reqdto.CreateDocenteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.docenteUseCase.CreateDocente(c.Request.Context(), req.UsuarioID, req.Nombre, req.Apellido, req.CedulaIdentidad)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario not found"})
		case errors.Is(err, usecase.ErrUsuarioDuplicado):
			c.JSON(http.StatusConflict, gin.H{"error": "Docente already registered"})
		case errors.Is(err, usecase.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid docente data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update docente
// @Tags docentes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Docente ID"
// @Param request body reqdto.UpdateDocenteRequest true "Docente"
// @Success 200 {object} queries.DocenteView
// @Failure 404 {object} map[string]string
// @Router /Docente/{id} [put]
func (h *DocenteHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid docente ID"})
		return
	}

	var req reqdto.UpdateDocenteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.docenteUseCase.UpdateDocente(c.Request.Context(), id, req.Nombre, req.Apellido, req.CedulaIdentidad)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDocenteNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Docente not found"})
		case errors.Is(err, usecase.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid docente data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}
