package material

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidStatus     = errors.New("invalid material status")
	ErrEmptyNombre       = errors.New("material nombre is required")
	ErrNegativeCantidad  = errors.New("cantidad cannot be negative")
	ErrInvalidCantidad   = errors.New("cantidad must be at least 1")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrStockExceedsTotal = errors.New("stock cannot exceed total")
	ErrNotSolicitable    = errors.New("material cannot be requested")
)

// Material tracks total against available stock. Invariant:
// 0 <= cantidadDisponible <= cantidadTotal.
type Material struct {
	id                 int64
	categoriaID        int64
	nombre             string
	descripcion        *string
	cantidadTotal      int32
	cantidadDisponible int32
	estado             Status
	createdAt          time.Time
	updatedAt          time.Time
}

func NewMaterial(categoriaID int64, nombre string, descripcion *string, cantidadInicial int32, estado Status) (*Material, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, ErrEmptyNombre
	}
	if cantidadInicial < 0 {
		return nil, ErrNegativeCantidad
	}
	if !estado.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Material{
		categoriaID:        categoriaID,
		nombre:             nombre,
		descripcion:        descripcion,
		cantidadTotal:      cantidadInicial,
		cantidadDisponible: cantidadInicial,
		estado:             estado,
	}, nil
}

func ReconstructMaterial(id, categoriaID int64, nombre string, descripcion *string, cantidadTotal, cantidadDisponible int32, estado Status, createdAt, updatedAt time.Time) *Material {
	return &Material{
		id:                 id,
		categoriaID:        categoriaID,
		nombre:             nombre,
		descripcion:        descripcion,
		cantidadTotal:      cantidadTotal,
		cantidadDisponible: cantidadDisponible,
		estado:             estado,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// EsSolicitable reports whether the material may appear as an offer to
// docentes: estado Disponible and at least one unit free.
func (m *Material) EsSolicitable() bool {
	return m.estado == StatusDisponible && m.cantidadDisponible > 0
}

// ReservarStock takes cantidad units out of the available pool.
func (m *Material) ReservarStock(cantidad int32) error {
	if cantidad < 1 {
		return ErrInvalidCantidad
	}
	if !m.EsSolicitable() {
		return ErrNotSolicitable
	}
	if cantidad > m.cantidadDisponible {
		return ErrInsufficientStock
	}
	m.cantidadDisponible -= cantidad
	return nil
}

// LiberarStock returns cantidad units to the available pool.
func (m *Material) LiberarStock(cantidad int32) error {
	if cantidad < 1 {
		return ErrInvalidCantidad
	}
	if m.cantidadDisponible+cantidad > m.cantidadTotal {
		return ErrStockExceedsTotal
	}
	m.cantidadDisponible += cantidad
	return nil
}

func (m *Material) CambiarEstado(estado Status) error {
	if !estado.IsValid() {
		return ErrInvalidStatus
	}
	m.estado = estado
	return nil
}

func (m *Material) ID() int64                 { return m.id }
func (m *Material) CategoriaID() int64        { return m.categoriaID }
func (m *Material) Nombre() string            { return m.nombre }
func (m *Material) Descripcion() *string      { return m.descripcion }
func (m *Material) CantidadTotal() int32      { return m.cantidadTotal }
func (m *Material) CantidadDisponible() int32 { return m.cantidadDisponible }
func (m *Material) Estado() Status            { return m.estado }
func (m *Material) CreatedAt() time.Time      { return m.createdAt }
func (m *Material) UpdatedAt() time.Time      { return m.updatedAt }
