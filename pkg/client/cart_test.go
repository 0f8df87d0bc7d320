//go:build unit

package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"loandesk/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func material(id int64, nombre string, disponible int32) client.Material {
	return client.Material{
		ID:                 id,
		NombreMaterial:     nombre,
		CantidadTotal:      disponible,
		CantidadDisponible: disponible,
		Estado:             "Disponible",
	}
}

func TestCartAdd(t *testing.T) {
	cart := client.NewCart(client.New("http://unused"))

	require.NoError(t, cart.Add(material(1, "Proyector", 5)))
	require.NoError(t, cart.Add(material(2, "Laptop", 3)))

	err := cart.Add(material(1, "Proyector", 5))
	assert.ErrorIs(t, err, client.ErrYaEnCarrito)
	assert.Equal(t, 2, cart.Len())

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].MaterialID)
	assert.Equal(t, int64(2), lines[1].MaterialID)
	assert.Equal(t, int32(1), lines[0].Cantidad)
}

func TestCartAddNoSolicitable(t *testing.T) {
	cart := client.NewCart(client.New("http://unused"))

	t.Run("nothing free", func(t *testing.T) {
		err := cart.Add(material(1, "Proyector", 0))
		assert.ErrorIs(t, err, client.ErrNoSolicitable)
		assert.Equal(t, 0, cart.Len())
	})

	t.Run("en reparacion", func(t *testing.T) {
		m := material(2, "Laptop", 3)
		m.Estado = client.MaterialEnReparacion
		err := cart.Add(m)
		assert.ErrorIs(t, err, client.ErrNoSolicitable)
		assert.Equal(t, 0, cart.Len())
	})

	t.Run("de baja", func(t *testing.T) {
		m := material(3, "Microscopio", 3)
		m.Estado = client.MaterialDeBaja
		err := cart.Add(m)
		assert.ErrorIs(t, err, client.ErrNoSolicitable)
		assert.Equal(t, 0, cart.Len())
	})
}

func TestCartSetCantidad(t *testing.T) {
	cart := client.NewCart(client.New("http://unused"))
	require.NoError(t, cart.Add(material(1, "Proyector", 3)))

	t.Run("clamps to available stock", func(t *testing.T) {
		err := cart.SetCantidad(1, 10)
		assert.ErrorIs(t, err, client.ErrCantidadRecortada)
		assert.Equal(t, int32(3), cart.Lines()[0].Cantidad)
	})

	t.Run("below one is a no-op", func(t *testing.T) {
		err := cart.SetCantidad(1, 0)
		assert.ErrorIs(t, err, client.ErrCantidadMinima)
		assert.Equal(t, int32(3), cart.Lines()[0].Cantidad)
	})

	t.Run("valid cantidad sticks", func(t *testing.T) {
		require.NoError(t, cart.SetCantidad(1, 2))
		assert.Equal(t, int32(2), cart.Lines()[0].Cantidad)
	})

	t.Run("unknown material is silent", func(t *testing.T) {
		assert.NoError(t, cart.SetCantidad(99, 5))
	})
}

func TestCartRemove(t *testing.T) {
	cart := client.NewCart(client.New("http://unused"))
	require.NoError(t, cart.Add(material(1, "Proyector", 5)))
	require.NoError(t, cart.Add(material(2, "Laptop", 3)))
	require.NoError(t, cart.Add(material(3, "Microscopio", 2)))

	cart.Remove(2)
	cart.Remove(42) // absent, silent

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].MaterialID)
	assert.Equal(t, int64(3), lines[1].MaterialID)

	// index stays consistent after the shift
	require.NoError(t, cart.SetCantidad(3, 2))
	assert.Equal(t, int32(2), cart.Lines()[1].Cantidad)
}

func TestCartSubmit(t *testing.T) {
	t.Run("empty cart makes zero calls", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer srv.Close()

		cart := client.NewCart(client.New(srv.URL))
		_, err := cart.Submit(context.Background(), 1)
		assert.ErrorIs(t, err, client.ErrCarritoVacio)
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("unresolved docente makes zero calls", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer srv.Close()

		cart := client.NewCart(client.New(srv.URL))
		require.NoError(t, cart.Add(material(1, "Proyector", 5)))

		_, err := cart.Submit(context.Background(), 0)
		assert.ErrorIs(t, err, client.ErrDocenteNoResuelto)
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("success posts once and clears the cart", func(t *testing.T) {
		var calls int32
		var got client.CreateSolicitudInput
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/Solicitud", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(client.SolicitudCompleta{
				Solicitud: client.Solicitud{
					ID:              7,
					DocenteID:       got.DocenteID,
					EstadoSolicitud: client.EstadoPendiente,
					FechaSolicitud:  time.Now(),
				},
			})
		}))
		defer srv.Close()

		cart := client.NewCart(client.New(srv.URL))
		require.NoError(t, cart.Add(material(1, "Proyector", 5)))
		require.NoError(t, cart.Add(material(2, "Laptop", 3)))
		require.NoError(t, cart.SetCantidad(2, 2))

		created, err := cart.Submit(context.Background(), 4)
		require.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		assert.Equal(t, 0, cart.Len())

		require.Len(t, got.Detalles, 2)
		assert.Equal(t, int64(4), got.DocenteID)
		assert.Equal(t, int64(1), got.Detalles[0].MaterialID)
		assert.Equal(t, int32(1), got.Detalles[0].CantidadSolicitada)
		assert.Equal(t, int64(2), got.Detalles[1].MaterialID)
		assert.Equal(t, int32(2), got.Detalles[1].CantidadSolicitada)
	})

	t.Run("failure keeps the cart intact", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error": "Requested cantidad exceeds available stock"}`))
		}))
		defer srv.Close()

		cart := client.NewCart(client.New(srv.URL))
		require.NoError(t, cart.Add(material(1, "Proyector", 5)))

		_, err := cart.Submit(context.Background(), 4)
		require.Error(t, err)
		assert.Equal(t, "Requested cantidad exceeds available stock", err.Error())
		assert.Equal(t, 1, cart.Len())
	})
}
