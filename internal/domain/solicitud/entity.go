package solicitud

import (
	"time"
)

type Solicitud struct {
	id             int64
	docenteID      int64
	estado         Status
	fechaSolicitud time.Time
	lineas         []Linea
}

func ReconstructSolicitud(id, docenteID int64, estado Status, fechaSolicitud time.Time, lineas []Linea) *Solicitud {
	return &Solicitud{
		id:             id,
		docenteID:      docenteID,
		estado:         estado,
		fechaSolicitud: fechaSolicitud,
		lineas:         lineas,
	}
}

// Aprobar moves Pendiente -> Aprobada. The due date must be strictly after
// now; equality is refused.
func (s *Solicitud) Aprobar(now, fechaDevolucionPrevista time.Time) error {
	if s.estado != StatusPendiente {
		return ErrNotPending
	}
	if !fechaDevolucionPrevista.After(now) {
		return ErrFechaNoFutura
	}
	s.estado = StatusAprobada
	return nil
}

// Rechazar moves Pendiente -> Rechazada.
func (s *Solicitud) Rechazar() error {
	if s.estado != StatusPendiente {
		return ErrNotPending
	}
	s.estado = StatusRechazada
	return nil
}

func (s *Solicitud) IsPendiente() bool {
	return s.estado == StatusPendiente
}

func (s *Solicitud) ID() int64                 { return s.id }
func (s *Solicitud) DocenteID() int64          { return s.docenteID }
func (s *Solicitud) Estado() Status            { return s.estado }
func (s *Solicitud) FechaSolicitud() time.Time { return s.fechaSolicitud }

func (s *Solicitud) Lineas() []Linea {
	out := make([]Linea, len(s.lineas))
	copy(out, s.lineas)
	return out
}
