package material

import "strings"

// Status mirrors the estado vocabulary on the wire. Incoming free text is
// resolved once via NewStatus; comparisons elsewhere use the closed values.
type Status string

const (
	StatusDisponible   Status = "Disponible"
	StatusEnReparacion Status = "EnReparacion"
	StatusDeBaja       Status = "DeBaja"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDisponible, StatusEnReparacion, StatusDeBaja:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disponible":
		return StatusDisponible, nil
	case "enreparacion", "en reparacion", "en reparación":
		return StatusEnReparacion, nil
	case "debaja", "de baja":
		return StatusDeBaja, nil
	default:
		return "", ErrInvalidStatus
	}
}
