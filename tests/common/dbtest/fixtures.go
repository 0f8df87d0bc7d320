//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"loandesk/internal/pkg/password"

	"github.com/stretchr/testify/require"
)

// RolID looks up one of the seeded roles (docente, encargado).
func RolID(t *testing.T, db DBLike, nombreRol string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), "SELECT id FROM roles WHERE nombre_rol = $1", nombreRol).Scan(&id)
	require.NoError(t, err, "role %s should be seeded by the initial migration", nombreRol)
	return id
}

func CreateTestUsuario(t *testing.T, db DBLike, nombreUsuario, email, rawPassword, nombreRol string) int64 {
	t.Helper()

	hash, err := password.HashPassword(rawPassword)
	require.NoError(t, err)

	var id int64
	err = db.QueryRow(context.Background(),
		"INSERT INTO usuarios (rol_id, nombre_usuario, email, password_hash) VALUES ($1, $2, $3, $4) RETURNING id",
		RolID(t, db, nombreRol), nombreUsuario, email, hash).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestDocente(t *testing.T, db DBLike, usuarioID int64, nombre, apellido, cedula string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO docentes (usuario_id, nombre, apellido, cedula_identidad) VALUES ($1, $2, $3, $4) RETURNING id",
		usuarioID, nombre, apellido, cedula).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestCategoria(t *testing.T, db DBLike, nombre string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO categorias (nombre_categoria) VALUES ($1) RETURNING id", nombre).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestMaterial(t *testing.T, db DBLike, categoriaID int64, nombre string, cantidad int32) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO materiales (categoria_id, nombre_material, cantidad_total, cantidad_disponible, estado) VALUES ($1, $2, $3, $3, 'Disponible') RETURNING id",
		categoriaID, nombre, cantidad).Scan(&id)
	require.NoError(t, err)
	return id
}
