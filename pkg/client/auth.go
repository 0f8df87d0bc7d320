package client

import "context"

type LoginRequest struct {
	NombreUsuarioOrEmail string `json:"nombreUsuarioOrEmail"`
	Password             string `json:"password"`
}

type LoginResponse struct {
	UsuarioID     int64  `json:"usuarioId"`
	RolID         int64  `json:"rolId"`
	NombreRol     string `json:"nombreRol"`
	NombreUsuario string `json:"nombreUsuario"`
	Email         string `json:"email"`
	Token         string `json:"token"`
}

type CurrentUser struct {
	UsuarioID     int64  `json:"usuarioId"`
	RolID         int64  `json:"rolId"`
	NombreRol     string `json:"nombreRol"`
	NombreUsuario string `json:"nombreUsuario"`
	Email         string `json:"email"`
}

// Login authenticates and installs the returned token on the client, so
// follow-up calls are already authorized.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.post(ctx, "/api/Auth/login", req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*CurrentUser, error) {
	var out CurrentUser
	if err := c.get(ctx, "/api/Auth/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
