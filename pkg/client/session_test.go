//go:build unit

package client_test

import (
	"os"
	"path/filepath"
	"testing"

	"loandesk/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginFixture() client.LoginResponse {
	return client.LoginResponse{
		UsuarioID:     3,
		RolID:         2,
		NombreRol:     "encargado",
		NombreUsuario: "mrojas",
		Email:         "mrojas@instituto.edu",
		Token:         "jwt-token",
	}
}

func TestResolveRole(t *testing.T) {
	role, err := client.ResolveRole("  Encargado ")
	require.NoError(t, err)
	assert.Equal(t, client.RoleEncargado, role)

	role, err = client.ResolveRole("DOCENTE")
	require.NoError(t, err)
	assert.Equal(t, client.RoleDocente, role)

	_, err = client.ResolveRole("admin")
	assert.ErrorIs(t, err, client.ErrUnknownRole)
}

func TestSessionStoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := client.NewSessionStore(path)

	session, err := client.NewSession(loginFixture())
	require.NoError(t, err)
	require.NoError(t, store.Save(session))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, int64(3), loaded.UsuarioID)
	assert.Equal(t, "jwt-token", loaded.Token)
	assert.Equal(t, client.RoleEncargado, loaded.Role())
}

func TestSessionStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	loaded, err := client.NewSessionStore(path).Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "corrupt session file should be removed")
}

func TestSessionStoreUnknownRole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"usuarioId":1,"nombreRol":"admin","token":"x"}`), 0o600))

	loaded, err := client.NewSessionStore(path).Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionStoreMissingFile(t *testing.T) {
	store := client.NewSessionStore(filepath.Join(t.TempDir(), "absent.json"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	assert.NoError(t, store.Clear())
}

func TestSessionStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := client.NewSessionStore(path)

	session, err := client.NewSession(loginFixture())
	require.NoError(t, err)
	require.NoError(t, store.Save(session))
	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
