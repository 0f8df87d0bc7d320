package client

import (
	"context"
	"fmt"
	"time"
)

const (
	EstadoPendiente = "Pendiente"
	EstadoAprobada  = "Aprobada"
	EstadoRechazada = "Rechazada"
)

type Solicitud struct {
	ID              int64     `json:"id"`
	DocenteID       int64     `json:"docenteId"`
	EstadoSolicitud string    `json:"estadoSolicitud"`
	FechaSolicitud  time.Time `json:"fechaSolicitud"`
}

type SolicitudDetalle struct {
	ID                 int64  `json:"id"`
	MaterialID         int64  `json:"materialId"`
	CantidadSolicitada int32  `json:"cantidadSolicitada"`
	NombreMaterial     string `json:"nombreMaterial"`
}

type SolicitudCompleta struct {
	Solicitud
	Detalles []SolicitudDetalle `json:"detalles"`
}

type SolicitudDetalleInput struct {
	MaterialID         int64 `json:"materialId"`
	CantidadSolicitada int32 `json:"cantidadSolicitada"`
}

type CreateSolicitudInput struct {
	DocenteID int64                   `json:"docenteId"`
	Detalles  []SolicitudDetalleInput `json:"detalles"`
}

func (c *Client) CreateSolicitud(ctx context.Context, in CreateSolicitudInput) (*SolicitudCompleta, error) {
	var out SolicitudCompleta
	if err := c.post(ctx, "/api/Solicitud", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListSolicitudes(ctx context.Context) ([]Solicitud, error) {
	var out []Solicitud
	if err := c.get(ctx, "/api/Solicitud", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListSolicitudesPorDocente(ctx context.Context, docenteID int64) ([]Solicitud, error) {
	var out []Solicitud
	if err := c.get(ctx, fmt.Sprintf("/api/Solicitud/PorDocente/%d", docenteID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSolicitud(ctx context.Context, id int64) (*SolicitudCompleta, error) {
	var out SolicitudCompleta
	if err := c.get(ctx, fmt.Sprintf("/api/Solicitud/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AprobarSolicitud approves a pending solicitud and returns the prestamo the
// backend created for it.
func (c *Client) AprobarSolicitud(ctx context.Context, id int64, fechaDevolucionPrevista time.Time) (*Prestamo, error) {
	var out Prestamo
	body := struct {
		FechaDevolucionPrevista time.Time `json:"fechaDevolucionPrevista"`
	}{FechaDevolucionPrevista: fechaDevolucionPrevista}
	if err := c.post(ctx, fmt.Sprintf("/api/Solicitud/%d/aprobar", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RechazarSolicitud(ctx context.Context, id int64) (*SolicitudCompleta, error) {
	var out SolicitudCompleta
	if err := c.post(ctx, fmt.Sprintf("/api/Solicitud/%d/rechazar", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
