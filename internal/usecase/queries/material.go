package queries

type MaterialView struct {
	ID                 int64   `json:"id"`
	CategoriaID        int64   `json:"categoriaId"`
	NombreMaterial     string  `json:"nombreMaterial"`
	Descripcion        *string `json:"descripcion,omitempty"`
	CantidadTotal      int32   `json:"cantidadTotal"`
	CantidadDisponible int32   `json:"cantidadDisponible"`
	Estado             string  `json:"estado"`
}

type DisponibilidadView struct {
	CantidadDisponible int32  `json:"cantidadDisponible"`
	Estado             string `json:"estado"`
}

type CategoriaView struct {
	ID              int64   `json:"id"`
	NombreCategoria string  `json:"nombreCategoria"`
	Descripcion     *string `json:"descripcion,omitempty"`
}
