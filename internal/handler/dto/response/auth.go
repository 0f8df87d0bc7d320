package response

import (
	"loandesk/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// LoginResponse is the flat shape the panel stores as its session.
type LoginResponse struct {
	UsuarioID     int64  `json:"usuarioId" copier:"ID"`
	RolID         int64  `json:"rolId"`
	NombreRol     string `json:"nombreRol"`
	NombreUsuario string `json:"nombreUsuario"`
	Email         string `json:"email"`
	Token         string `json:"token"`
}

func FromLogin(view *queries.AuthorizedUserView, token string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	resp.Token = token
	return &resp, nil
}
