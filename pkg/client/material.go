package client

import (
	"context"
	"fmt"
)

const (
	MaterialDisponible   = "Disponible"
	MaterialEnReparacion = "EnReparacion"
	MaterialDeBaja       = "DeBaja"
)

type Material struct {
	ID                 int64   `json:"id"`
	CategoriaID        int64   `json:"categoriaId"`
	NombreMaterial     string  `json:"nombreMaterial"`
	Descripcion        *string `json:"descripcion,omitempty"`
	CantidadTotal      int32   `json:"cantidadTotal"`
	CantidadDisponible int32   `json:"cantidadDisponible"`
	Estado             string  `json:"estado"`
}

// EsSolicitable reports whether the material can enter a solicitud: it must
// be Disponible and have at least one unit free.
func (m Material) EsSolicitable() bool {
	return m.Estado == MaterialDisponible && m.CantidadDisponible > 0
}

type Disponibilidad struct {
	CantidadDisponible int32  `json:"cantidadDisponible"`
	Estado             string `json:"estado"`
}

type CreateMaterialInput struct {
	CategoriaID    int64   `json:"categoriaId"`
	NombreMaterial string  `json:"nombreMaterial"`
	Descripcion    *string `json:"descripcion,omitempty"`
	CantidadTotal  int32   `json:"cantidadTotal"`
	Estado         *string `json:"estado,omitempty"`
}

type UpdateMaterialInput struct {
	CategoriaID    int64   `json:"categoriaId"`
	NombreMaterial string  `json:"nombreMaterial"`
	Descripcion    *string `json:"descripcion,omitempty"`
}

func (c *Client) ListMateriales(ctx context.Context) ([]Material, error) {
	var out []Material
	if err := c.get(ctx, "/api/Material", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMaterial(ctx context.Context, id int64) (*Material, error) {
	var out Material
	if err := c.get(ctx, fmt.Sprintf("/api/Material/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMaterial(ctx context.Context, in CreateMaterialInput) (*Material, error) {
	var out Material
	if err := c.post(ctx, "/api/Material", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMaterial(ctx context.Context, id int64, in UpdateMaterialInput) (*Material, error) {
	var out Material
	if err := c.put(ctx, fmt.Sprintf("/api/Material/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMaterialEstado(ctx context.Context, id int64, estado string) (*Material, error) {
	var out Material
	body := struct {
		Estado string `json:"estado"`
	}{Estado: estado}
	if err := c.put(ctx, fmt.Sprintf("/api/Material/%d/estado", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDisponibilidad(ctx context.Context, id int64) (*Disponibilidad, error) {
	var out Disponibilidad
	if err := c.get(ctx, fmt.Sprintf("/api/Material/%d/disponibilidad", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
