package client

import (
	"context"
	"fmt"
)

type Usuario struct {
	ID            int64  `json:"id"`
	RolID         int64  `json:"rolId"`
	NombreUsuario string `json:"nombreUsuario"`
	Email         string `json:"email"`
}

type Docente struct {
	ID              int64  `json:"id"`
	UsuarioID       int64  `json:"usuarioId"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	CedulaIdentidad string `json:"cedulaIdentidad"`
}

type Rol struct {
	ID        int64  `json:"id"`
	NombreRol string `json:"nombreRol"`
}

type CreateUsuarioInput struct {
	RolID         int64  `json:"rolId"`
	NombreUsuario string `json:"nombreUsuario"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

type UpdateUsuarioInput struct {
	RolID         int64  `json:"rolId"`
	NombreUsuario string `json:"nombreUsuario"`
	Email         string `json:"email"`
}

type CreateDocenteInput struct {
	UsuarioID       int64  `json:"usuarioId"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	CedulaIdentidad string `json:"cedulaIdentidad"`
}

type UpdateDocenteInput struct {
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	CedulaIdentidad string `json:"cedulaIdentidad"`
}

// CreateUsuario registers the account only. Registering a docente profile
// for it is a second, separate call; there is no compensating rollback if
// the second call fails.
func (c *Client) CreateUsuario(ctx context.Context, in CreateUsuarioInput) (*Usuario, error) {
	var out Usuario
	if err := c.post(ctx, "/api/Usuario", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUsuario(ctx context.Context, id int64) (*Usuario, error) {
	var out Usuario
	if err := c.get(ctx, fmt.Sprintf("/api/Usuario/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUsuario(ctx context.Context, id int64, in UpdateUsuarioInput) (*Usuario, error) {
	var out Usuario
	if err := c.put(ctx, fmt.Sprintf("/api/Usuario/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListRoles(ctx context.Context) ([]Rol, error) {
	var out []Rol
	if err := c.get(ctx, "/api/Rol", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListDocentes(ctx context.Context) ([]Docente, error) {
	var out []Docente
	if err := c.get(ctx, "/api/Docente", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDocente(ctx context.Context, id int64) (*Docente, error) {
	var out Docente
	if err := c.get(ctx, fmt.Sprintf("/api/Docente/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDocenteByUsuario resolves the docente profile behind a user account,
// which is how a logged-in docente finds its own docenteId.
func (c *Client) GetDocenteByUsuario(ctx context.Context, usuarioID int64) (*Docente, error) {
	var out Docente
	if err := c.get(ctx, fmt.Sprintf("/api/Docente/PorUsuario/%d", usuarioID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateDocente(ctx context.Context, in CreateDocenteInput) (*Docente, error) {
	var out Docente
	if err := c.post(ctx, "/api/Docente", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDocente(ctx context.Context, id int64, in UpdateDocenteInput) (*Docente, error) {
	var out Docente
	if err := c.put(ctx, fmt.Sprintf("/api/Docente/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
