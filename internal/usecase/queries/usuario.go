package queries

// AuthorizedUserView is the session shape handed back on login and /me.
type AuthorizedUserView struct {
	ID            int64  `json:"usuarioId"`
	RolID         int64  `json:"rolId"`
	NombreRol     string `json:"nombreRol"`
	NombreUsuario string `json:"nombreUsuario"`
	Email         string `json:"email"`
}

type UsuarioView struct {
	ID            int64  `json:"id"`
	RolID         int64  `json:"rolId"`
	NombreUsuario string `json:"nombreUsuario"`
	Email         string `json:"email"`
}

type DocenteView struct {
	ID              int64  `json:"id"`
	UsuarioID       int64  `json:"usuarioId"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	CedulaIdentidad string `json:"cedulaIdentidad"`
}

type RolView struct {
	ID        int64  `json:"id"`
	NombreRol string `json:"nombreRol"`
}
