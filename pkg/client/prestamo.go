package client

import (
	"context"
	"fmt"
	"time"
)

const (
	PrestamoActivo   = "Activo"
	PrestamoDevuelto = "Devuelto"
)

type Prestamo struct {
	ID                      int64     `json:"id"`
	SolicitudID             int64     `json:"solicitudId"`
	FechaPrestamo           time.Time `json:"fechaPrestamo"`
	FechaDevolucionPrevista time.Time `json:"fechaDevolucionPrevista"`
	EstadoPrestamo          string    `json:"estadoPrestamo"`
}

type Devolucion struct {
	ID              int64     `json:"id"`
	PrestamoID      int64     `json:"prestamoId"`
	FechaDevolucion time.Time `json:"fechaDevolucion"`
	Observaciones   string    `json:"observaciones"`
}

type CreateDevolucionInput struct {
	PrestamoID    int64  `json:"prestamoId"`
	Observaciones string `json:"observaciones"`
}

func (c *Client) ListPrestamos(ctx context.Context) ([]Prestamo, error) {
	var out []Prestamo
	if err := c.get(ctx, "/api/Prestamo", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPrestamo(ctx context.Context, id int64) (*Prestamo, error) {
	var out Prestamo
	if err := c.get(ctx, fmt.Sprintf("/api/Prestamo/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDevolucion closes an active loan: the backend flips it to Devuelto
// and restores the reserved stock in the same transaction.
func (c *Client) CreateDevolucion(ctx context.Context, in CreateDevolucionInput) (*Devolucion, error) {
	var out Devolucion
	if err := c.post(ctx, "/api/Devolucion", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListDevoluciones(ctx context.Context) ([]Devolucion, error) {
	var out []Devolucion
	if err := c.get(ctx, "/api/Devolucion", &out); err != nil {
		return nil, err
	}
	return out, nil
}
