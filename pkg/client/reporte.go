package client

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

type Reporte struct {
	Prestamos    []Prestamo   `json:"prestamos"`
	Devoluciones []Devolucion `json:"devoluciones"`
}

// ReportePrestamosYDevoluciones fetches the loans and returns inside the
// inclusive [desde, hasta] range, optionally restricted to the docente
// behind usuarioID. Dates go over the wire as bare days.
func (c *Client) ReportePrestamosYDevoluciones(ctx context.Context, desde, hasta time.Time, usuarioID *int64) (*Reporte, error) {
	params := url.Values{}
	params.Set("desde", desde.Format("2006-01-02"))
	params.Set("hasta", hasta.Format("2006-01-02"))
	if usuarioID != nil {
		params.Set("usuarioId", strconv.FormatInt(*usuarioID, 10))
	}

	var out Reporte
	if err := c.get(ctx, "/api/Reporte/prestamos-y-devoluciones?"+params.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
