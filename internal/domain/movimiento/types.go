package movimiento

// Tipo classifies a stock movement. Ingreso rows are written when a material
// is registered; the rest follow the loan lifecycle.
type Tipo string

const (
	TipoIngreso    Tipo = "Ingreso"
	TipoPrestamo   Tipo = "Prestamo"
	TipoDevolucion Tipo = "Devolucion"
	TipoReparacion Tipo = "Reparacion"
)

func (t Tipo) String() string {
	return string(t)
}

func (t Tipo) IsValid() bool {
	switch t {
	case TipoIngreso, TipoPrestamo, TipoDevolucion, TipoReparacion:
		return true
	default:
		return false
	}
}
