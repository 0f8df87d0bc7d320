package queries

import "time"

type SolicitudView struct {
	ID              int64     `json:"id"`
	DocenteID       int64     `json:"docenteId"`
	EstadoSolicitud string    `json:"estadoSolicitud"`
	FechaSolicitud  time.Time `json:"fechaSolicitud"`
}

type SolicitudDetalleView struct {
	ID                 int64  `json:"id"`
	MaterialID         int64  `json:"materialId"`
	CantidadSolicitada int32  `json:"cantidadSolicitada"`
	NombreMaterial     string `json:"nombreMaterial"`
}

// SolicitudCompletaView is a solicitud with its line detail, as served by
// GET /api/Solicitud/{id}.
type SolicitudCompletaView struct {
	SolicitudView
	Detalles []SolicitudDetalleView `json:"detalles"`
}

type PrestamoView struct {
	ID                      int64     `json:"id"`
	SolicitudID             int64     `json:"solicitudId"`
	FechaPrestamo           time.Time `json:"fechaPrestamo"`
	FechaDevolucionPrevista time.Time `json:"fechaDevolucionPrevista"`
	EstadoPrestamo          string    `json:"estadoPrestamo"`
}

type DevolucionView struct {
	ID              int64     `json:"id"`
	PrestamoID      int64     `json:"prestamoId"`
	FechaDevolucion time.Time `json:"fechaDevolucion"`
	Observaciones   string    `json:"observaciones"`
}

type ReparacionView struct {
	ID               int64     `json:"id"`
	MaterialID       int64     `json:"materialId"`
	FechaEnvio       time.Time `json:"fechaEnvio"`
	DescripcionFalla string    `json:"descripcionFalla"`
	Costo            *float64  `json:"costo,omitempty"`
	Cantidad         int32     `json:"cantidad"`
}

type MovimientoView struct {
	ID              int64     `json:"id"`
	MaterialID      int64     `json:"materialId"`
	TipoMovimiento  string    `json:"tipoMovimiento"`
	FechaMovimiento time.Time `json:"fechaMovimiento"`
	Cantidad        int32     `json:"cantidad"`
	PrestamoID      *int64    `json:"prestamoId,omitempty"`
	MaterialNombre  *string   `json:"materialNombre,omitempty"`
}

// ReporteView pairs the loans and returns inside an inclusive date range.
type ReporteView struct {
	Prestamos    []PrestamoView   `json:"prestamos"`
	Devoluciones []DevolucionView `json:"devoluciones"`
}
