package solicitud

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid solicitud status")
	ErrEmptyLineas       = errors.New("solicitud must have at least one linea")
	ErrDuplicateMaterial = errors.New("duplicate material in solicitud")
	ErrInvalidCantidad   = errors.New("cantidad must be at least 1")
	ErrNotPending        = errors.New("solicitud is not pending")
	ErrFechaNoFutura     = errors.New("fecha de devolucion must be in the future")
)

// Linea is one requested material with its quantity.
type Linea struct {
	materialID int64
	cantidad   int32
}

func NewLinea(materialID int64, cantidad int32) (Linea, error) {
	if cantidad < 1 {
		return Linea{}, ErrInvalidCantidad
	}
	return Linea{materialID: materialID, cantidad: cantidad}, nil
}

func (l Linea) MaterialID() int64 { return l.materialID }
func (l Linea) Cantidad() int32   { return l.cantidad }
