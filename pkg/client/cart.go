package client

import (
	"context"
	"errors"
)

var (
	ErrYaEnCarrito       = errors.New("material already in cart")
	ErrNoSolicitable     = errors.New("material is not available for solicitud")
	ErrCantidadRecortada = errors.New("cantidad clamped to available stock")
	ErrCantidadMinima    = errors.New("cantidad must be at least 1")
	ErrCarritoVacio      = errors.New("cart is empty")
	ErrDocenteNoResuelto = errors.New("docente is not resolved")
)

// CartLine is one requested material with the availability snapshot taken
// when it entered the cart. The snapshot is deliberately not refreshed while
// the cart is being built; depletion that happens in the meantime is caught
// by the backend at submission.
type CartLine struct {
	MaterialID     int64
	NombreMaterial string
	Disponible     int32
	Cantidad       int32
}

// Cart accumulates solicitud lines before a single submission. At most one
// line per material; insertion order is preserved so a rendered cart does
// not reshuffle under the user.
type Cart struct {
	api   *Client
	lines []CartLine
	index map[int64]int
}

func NewCart(api *Client) *Cart {
	return &Cart{
		api:   api,
		index: make(map[int64]int),
	}
}

// Add appends a line with cantidad 1 for the offered material. A material
// already in the cart is rejected with ErrYaEnCarrito and no second line;
// one that is not solicitable (wrong estado or nothing free) never enters,
// keeping every line inside 1 <= cantidad <= disponible.
func (c *Cart) Add(m Material) error {
	if !m.EsSolicitable() {
		return ErrNoSolicitable
	}
	if _, ok := c.index[m.ID]; ok {
		return ErrYaEnCarrito
	}
	c.index[m.ID] = len(c.lines)
	c.lines = append(c.lines, CartLine{
		MaterialID:     m.ID,
		NombreMaterial: m.NombreMaterial,
		Disponible:     m.CantidadDisponible,
		Cantidad:       1,
	})
	return nil
}

// SetCantidad adjusts a line. Asking for more than the snapshot allows
// clamps to the snapshot and reports ErrCantidadRecortada as a warning;
// asking for less than 1 changes nothing and reports ErrCantidadMinima.
// An id that is not in the cart is a silent no-op.
func (c *Cart) SetCantidad(materialID int64, cantidad int32) error {
	i, ok := c.index[materialID]
	if !ok {
		return nil
	}
	if cantidad < 1 {
		return ErrCantidadMinima
	}
	if cantidad > c.lines[i].Disponible {
		c.lines[i].Cantidad = c.lines[i].Disponible
		return ErrCantidadRecortada
	}
	c.lines[i].Cantidad = cantidad
	return nil
}

func (c *Cart) Remove(materialID int64) {
	i, ok := c.index[materialID]
	if !ok {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, materialID)
	for id, j := range c.index {
		if j > i {
			c.index[id] = j - 1
		}
	}
}

// Lines returns the cart content in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Submit posts the whole cart as one solicitud. It fails fast with zero
// network calls when the cart is empty, the docente is unresolved, or any
// line carries a non-positive cantidad. Success clears the cart; failure
// leaves it intact so the user can retry or adjust.
func (c *Cart) Submit(ctx context.Context, docenteID int64) (*SolicitudCompleta, error) {
	if len(c.lines) == 0 {
		return nil, ErrCarritoVacio
	}
	if docenteID < 1 {
		return nil, ErrDocenteNoResuelto
	}

	in := CreateSolicitudInput{
		DocenteID: docenteID,
		Detalles:  make([]SolicitudDetalleInput, 0, len(c.lines)),
	}
	for _, line := range c.lines {
		if line.Cantidad < 1 {
			return nil, ErrCantidadMinima
		}
		in.Detalles = append(in.Detalles, SolicitudDetalleInput{
			MaterialID:         line.MaterialID,
			CantidadSolicitada: line.Cantidad,
		})
	}

	created, err := c.api.CreateSolicitud(ctx, in)
	if err != nil {
		return nil, err
	}

	c.lines = nil
	c.index = make(map[int64]int)
	return created, nil
}
