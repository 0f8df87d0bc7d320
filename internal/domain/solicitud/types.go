package solicitud

import "strings"

// Status is the solicitud lifecycle: Pendiente is the only non-terminal
// state; Aprobada and Rechazada are terminal.
type Status string

const (
	StatusPendiente Status = "Pendiente"
	StatusAprobada  Status = "Aprobada"
	StatusRechazada Status = "Rechazada"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendiente, StatusAprobada, StatusRechazada:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusAprobada || s == StatusRechazada
}

func NewStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pendiente":
		return StatusPendiente, nil
	case "aprobada":
		return StatusAprobada, nil
	case "rechazada":
		return StatusRechazada, nil
	default:
		return "", ErrInvalidStatus
	}
}
