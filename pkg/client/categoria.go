package client

import (
	"context"
	"fmt"
)

type Categoria struct {
	ID              int64   `json:"id"`
	NombreCategoria string  `json:"nombreCategoria"`
	Descripcion     *string `json:"descripcion,omitempty"`
}

type CategoriaInput struct {
	NombreCategoria string  `json:"nombreCategoria"`
	Descripcion     *string `json:"descripcion,omitempty"`
}

func (c *Client) ListCategorias(ctx context.Context) ([]Categoria, error) {
	var out []Categoria
	if err := c.get(ctx, "/api/Categoria", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCategoria(ctx context.Context, id int64) (*Categoria, error) {
	var out Categoria
	if err := c.get(ctx, fmt.Sprintf("/api/Categoria/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCategoria(ctx context.Context, in CategoriaInput) (*Categoria, error) {
	var out Categoria
	if err := c.post(ctx, "/api/Categoria", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategoria(ctx context.Context, id int64, in CategoriaInput) (*Categoria, error) {
	var out Categoria
	if err := c.put(ctx, fmt.Sprintf("/api/Categoria/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategoria fails with a conflict while materials still reference the
// categoria; the backend message explains which constraint fired.
func (c *Client) DeleteCategoria(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/Categoria/%d", id))
}
