package request

type CreateMaterialRequest struct {
	CategoriaID    int64   `json:"categoriaId" binding:"required"`
	NombreMaterial string  `json:"nombreMaterial" binding:"required"`
	Descripcion    *string `json:"descripcion,omitempty"`
	CantidadTotal  int32   `json:"cantidadTotal" binding:"required,min=1"`
	Estado         *string `json:"estado,omitempty"`
}

type UpdateMaterialRequest struct {
	CategoriaID    int64   `json:"categoriaId" binding:"required"`
	NombreMaterial string  `json:"nombreMaterial" binding:"required"`
	Descripcion    *string `json:"descripcion,omitempty"`
}

// UpdateEstadoRequest backs PUT /api/Material/{id}/estado.
type UpdateEstadoRequest struct {
	Estado string `json:"estado" binding:"required"`
}

type CreateCategoriaRequest struct {
	NombreCategoria string  `json:"nombreCategoria" binding:"required"`
	Descripcion     *string `json:"descripcion,omitempty"`
}

type UpdateCategoriaRequest struct {
	NombreCategoria string  `json:"nombreCategoria" binding:"required"`
	Descripcion     *string `json:"descripcion,omitempty"`
}
