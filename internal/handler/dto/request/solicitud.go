package request

import (
	"time"

	"loandesk/internal/domain/solicitud"
)

type SolicitudDetalleRequest struct {
	MaterialID         int64 `json:"materialId" binding:"required"`
	CantidadSolicitada int32 `json:"cantidadSolicitada" binding:"required,min=1"`
}

type CreateSolicitudRequest struct {
	DocenteID int64                     `json:"docenteId" binding:"required"`
	Detalles  []SolicitudDetalleRequest `json:"detalles" binding:"required,min=1,dive"`
}

func (r CreateSolicitudRequest) ToLineaSpecs() []solicitud.LineaSpec {
	specs := make([]solicitud.LineaSpec, 0, len(r.Detalles))
	for _, d := range r.Detalles {
		specs = append(specs, solicitud.LineaSpec{
			MaterialID: d.MaterialID,
			Cantidad:   d.CantidadSolicitada,
		})
	}
	return specs
}

type AprobarSolicitudRequest struct {
	FechaDevolucionPrevista time.Time `json:"fechaDevolucionPrevista" binding:"required"`
}

type CreateDevolucionRequest struct {
	PrestamoID    int64  `json:"prestamoId" binding:"required"`
	Observaciones string `json:"observaciones"`
}

type CreateReparacionRequest struct {
	MaterialID       int64      `json:"materialId" binding:"required"`
	FechaEnvio       *time.Time `json:"fechaEnvio,omitempty"`
	DescripcionFalla string     `json:"descripcionFalla" binding:"required"`
	Costo            *float64   `json:"costo,omitempty"`
	Cantidad         int32      `json:"cantidad" binding:"required,min=1"`
}
