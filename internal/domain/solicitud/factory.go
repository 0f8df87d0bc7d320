package solicitud

import (
	"loandesk/internal/pkg/clock"
)

type Services struct {
	Clock clock.Clock
}

type LineaSpec struct {
	MaterialID int64
	Cantidad   int32
}

// NewSolicitud builds a pending solicitud from raw line specs. At most one
// linea per material; every cantidad >= 1. Stock limits are enforced by the
// usecase against current availability, not here.
func NewSolicitud(services *Services, docenteID int64, specs []LineaSpec) (*Solicitud, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyLineas
	}

	seen := make(map[int64]struct{}, len(specs))
	lineas := make([]Linea, 0, len(specs))
	for _, spec := range specs {
		if _, dup := seen[spec.MaterialID]; dup {
			return nil, ErrDuplicateMaterial
		}
		seen[spec.MaterialID] = struct{}{}

		linea, err := NewLinea(spec.MaterialID, spec.Cantidad)
		if err != nil {
			return nil, err
		}
		lineas = append(lineas, linea)
	}

	return &Solicitud{
		docenteID:      docenteID,
		estado:         StatusPendiente,
		fechaSolicitud: services.Clock.Now(),
		lineas:         lineas,
	}, nil
}
