//go:build unit

package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"loandesk/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorMessagePassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error": "Categoria has materiales assigned"}`))
	}))
	defer srv.Close()

	err := client.New(srv.URL).DeleteCategoria(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "Categoria has materiales assigned", err.Error())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

func TestAPIErrorGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream choked"))
	}))
	defer srv.Close()

	_, err := client.New(srv.URL).ListMateriales(context.Background())
	require.Error(t, err)
	assert.Equal(t, "request failed with status 502", err.Error())
}

func TestLoginInstallsToken(t *testing.T) {
	var authHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/Auth/login":
			_ = json.NewEncoder(w).Encode(client.LoginResponse{
				UsuarioID: 3,
				NombreRol: "docente",
				Token:     "issued-token",
			})
		case "/api/Auth/me":
			authHeader = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(client.CurrentUser{UsuarioID: 3})
		}
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	login, err := c.Login(context.Background(), client.LoginRequest{
		NombreUsuarioOrEmail: "jperez",
		Password:             "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", login.Token)

	_, err = c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer issued-token", authHeader)
}
