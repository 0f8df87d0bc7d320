package prestamo

import (
	"errors"
	"time"
)

var (
	ErrInvalidStatus = errors.New("invalid prestamo status")
	ErrNotActive     = errors.New("prestamo is not active")
)

// Prestamo is created only by approving a solicitud and closed only by a
// devolucion.
type Prestamo struct {
	id                      int64
	solicitudID             int64
	fechaPrestamo           time.Time
	fechaDevolucionPrevista time.Time
	estado                  Status
}

func NewPrestamo(solicitudID int64, fechaPrestamo, fechaDevolucionPrevista time.Time) *Prestamo {
	return &Prestamo{
		solicitudID:             solicitudID,
		fechaPrestamo:           fechaPrestamo,
		fechaDevolucionPrevista: fechaDevolucionPrevista,
		estado:                  StatusActivo,
	}
}

func ReconstructPrestamo(id, solicitudID int64, fechaPrestamo, fechaDevolucionPrevista time.Time, estado Status) *Prestamo {
	return &Prestamo{
		id:                      id,
		solicitudID:             solicitudID,
		fechaPrestamo:           fechaPrestamo,
		fechaDevolucionPrevista: fechaDevolucionPrevista,
		estado:                  estado,
	}
}

func (p *Prestamo) Devolver() error {
	if p.estado != StatusActivo {
		return ErrNotActive
	}
	p.estado = StatusDevuelto
	return nil
}

func (p *Prestamo) IsActivo() bool {
	return p.estado == StatusActivo
}

func (p *Prestamo) EstaVencido(now time.Time) bool {
	return p.estado == StatusActivo && now.After(p.fechaDevolucionPrevista)
}

func (p *Prestamo) ID() int64                          { return p.id }
func (p *Prestamo) SolicitudID() int64                 { return p.solicitudID }
func (p *Prestamo) FechaPrestamo() time.Time           { return p.fechaPrestamo }
func (p *Prestamo) FechaDevolucionPrevista() time.Time { return p.fechaDevolucionPrevista }
func (p *Prestamo) Estado() Status                     { return p.estado }
