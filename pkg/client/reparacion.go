package client

import (
	"context"
	"time"
)

type Reparacion struct {
	ID               int64     `json:"id"`
	MaterialID       int64     `json:"materialId"`
	FechaEnvio       time.Time `json:"fechaEnvio"`
	DescripcionFalla string    `json:"descripcionFalla"`
	Costo            *float64  `json:"costo,omitempty"`
	Cantidad         int32     `json:"cantidad"`
}

type CreateReparacionInput struct {
	MaterialID       int64      `json:"materialId"`
	FechaEnvio       *time.Time `json:"fechaEnvio,omitempty"`
	DescripcionFalla string     `json:"descripcionFalla"`
	Costo            *float64   `json:"costo,omitempty"`
	Cantidad         int32      `json:"cantidad"`
}

type Movimiento struct {
	ID              int64     `json:"id"`
	MaterialID      int64     `json:"materialId"`
	TipoMovimiento  string    `json:"tipoMovimiento"`
	FechaMovimiento time.Time `json:"fechaMovimiento"`
	Cantidad        int32     `json:"cantidad"`
	PrestamoID      *int64    `json:"prestamoId,omitempty"`
	MaterialNombre  *string   `json:"materialNombre,omitempty"`
}

func (c *Client) CreateReparacion(ctx context.Context, in CreateReparacionInput) (*Reparacion, error) {
	var out Reparacion
	if err := c.post(ctx, "/api/Reparacion", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListReparaciones(ctx context.Context) ([]Reparacion, error) {
	var out []Reparacion
	if err := c.get(ctx, "/api/Reparacion", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMovimientos(ctx context.Context) ([]Movimiento, error) {
	var out []Movimiento
	if err := c.get(ctx, "/api/Movimiento", &out); err != nil {
		return nil, err
	}
	return out, nil
}
