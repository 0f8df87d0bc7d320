package prestamo

import "strings"

type Status string

const (
	StatusActivo   Status = "Activo"
	StatusDevuelto Status = "Devuelto"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActivo, StatusDevuelto:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "activo":
		return StatusActivo, nil
	case "devuelto":
		return StatusDevuelto, nil
	default:
		return "", ErrInvalidStatus
	}
}
