package request

type CreateUsuarioRequest struct {
	RolID         int64  `json:"rolId" binding:"required"`
	NombreUsuario string `json:"nombreUsuario" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
}

type UpdateUsuarioRequest struct {
	RolID         int64  `json:"rolId" binding:"required"`
	NombreUsuario string `json:"nombreUsuario" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
}

type CreateDocenteRequest struct {
	UsuarioID       int64  `json:"usuarioId" binding:"required"`
	Nombre          string `json:"nombre" binding:"required"`
	Apellido        string `json:"apellido" binding:"required"`
	CedulaIdentidad string `json:"cedulaIdentidad" binding:"required"`
}

type UpdateDocenteRequest struct {
	Nombre          string `json:"nombre" binding:"required"`
	Apellido        string `json:"apellido" binding:"required"`
	CedulaIdentidad string `json:"cedulaIdentidad" binding:"required"`
}
