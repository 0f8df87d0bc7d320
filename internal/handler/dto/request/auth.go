package request

import (
	"loandesk/internal/domain/user"
)

type LoginRequest struct {
	NombreUsuarioOrEmail string `json:"nombreUsuarioOrEmail" binding:"required"`
	Password             string `json:"password" binding:"required"`
}

func (r LoginRequest) ToCredentials() (user.Credentials, error) {
	return user.NewCredentials(r.NombreUsuarioOrEmail, r.Password)
}
