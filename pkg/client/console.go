package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"loandesk/internal/pkg/clock"
)

var (
	ErrRolNoPermitido = errors.New("role is not allowed to perform this operation")
	ErrFechaNoFutura  = errors.New("fecha de devolucion prevista must be in the future")
)

const defaultLoanDays = 7

// Tally splits solicitudes into the two buckets the panel shows: pending
// work versus already-decided history.
type Tally struct {
	Pendientes int
	Historial  int
}

// SolicitudFilter is applied client-side after the fetch. Texto matches the
// id or the status, case-insensitively; Desde and Hasta bound fechaSolicitud
// inclusively.
type SolicitudFilter struct {
	Texto string
	Desde *time.Time
	Hasta *time.Time
}

// Console drives the request-management panel over the solicitud endpoints.
// Mutations never flip status locally: every approve or reject goes to the
// server first and the list is re-fetched afterwards, so the panel only ever
// shows states the server confirmed.
type Console struct {
	api   *Client
	role  Role
	clock clock.Clock

	mu          sync.Mutex
	solicitudes []Solicitud
	mine        bool
	docenteID   int64

	requested uint64
	applied   uint64
	details   *SolicitudCompleta
}

func NewConsole(api *Client, role Role, clk clock.Clock) *Console {
	return &Console{
		api:   api,
		role:  role,
		clock: clk,
	}
}

// ListAll fetches every solicitud. Management-wide listing belongs to the
// encargado; docentes only see their own requests via ListMine.
func (c *Console) ListAll(ctx context.Context, filter SolicitudFilter) ([]Solicitud, Tally, error) {
	if c.role != RoleEncargado {
		return nil, Tally{}, ErrRolNoPermitido
	}

	all, err := c.api.ListSolicitudes(ctx)
	if err != nil {
		return nil, Tally{}, err
	}

	c.mu.Lock()
	c.solicitudes = all
	c.mine = false
	c.mu.Unlock()

	filtered := filterSolicitudes(all, filter)
	return filtered, tallySolicitudes(filtered), nil
}

// ListMine fetches the solicitudes of one docente.
func (c *Console) ListMine(ctx context.Context, docenteID int64, filter SolicitudFilter) ([]Solicitud, Tally, error) {
	if docenteID < 1 {
		return nil, Tally{}, ErrDocenteNoResuelto
	}

	own, err := c.api.ListSolicitudesPorDocente(ctx, docenteID)
	if err != nil {
		return nil, Tally{}, err
	}

	c.mu.Lock()
	c.solicitudes = own
	c.mine = true
	c.docenteID = docenteID
	c.mu.Unlock()

	filtered := filterSolicitudes(own, filter)
	return filtered, tallySolicitudes(filtered), nil
}

// ViewDetails loads the detail panel for one solicitud. Concurrent fetches
// are allowed; the panel keeps only the most recently requested result, so a
// slow early response can never overwrite a newer one.
func (c *Console) ViewDetails(ctx context.Context, id int64) (*SolicitudCompleta, error) {
	c.mu.Lock()
	c.requested++
	gen := c.requested
	c.mu.Unlock()

	view, err := c.api.GetSolicitud(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if gen > c.applied {
		c.applied = gen
		c.details = view
	}
	c.mu.Unlock()
	return view, nil
}

// Details returns what the detail panel currently shows.
func (c *Console) Details() *SolicitudCompleta {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.details
}

// SuggestFechaDevolucion is the default due date offered when approving.
func (c *Console) SuggestFechaDevolucion() time.Time {
	return c.clock.Now().AddDate(0, 0, defaultLoanDays)
}

// Approve sends the approval and re-fetches the list once on success. A due
// date that is not strictly in the future is refused locally, before any
// network traffic. On failure the decision stays open and the server's
// message comes back verbatim.
func (c *Console) Approve(ctx context.Context, id int64, fechaPrevista time.Time) (*Prestamo, error) {
	if c.role != RoleEncargado {
		return nil, ErrRolNoPermitido
	}
	if !fechaPrevista.After(c.clock.Now()) {
		return nil, ErrFechaNoFutura
	}

	prestamo, err := c.api.AprobarSolicitud(ctx, id, fechaPrevista)
	if err != nil {
		return nil, err
	}

	if err := c.refetch(ctx); err != nil {
		return prestamo, fmt.Errorf("solicitud approved but list refresh failed: %w", err)
	}
	return prestamo, nil
}

// Reject asks for confirmation before doing anything; the network call fires
// only once the callback returns true. The returned bool reports whether the
// rejection was actually performed.
func (c *Console) Reject(ctx context.Context, id int64, confirm func() bool) (bool, error) {
	if c.role != RoleEncargado {
		return false, ErrRolNoPermitido
	}
	if confirm == nil || !confirm() {
		return false, nil
	}

	if _, err := c.api.RechazarSolicitud(ctx, id); err != nil {
		return false, err
	}

	if err := c.refetch(ctx); err != nil {
		return true, fmt.Errorf("solicitud rejected but list refresh failed: %w", err)
	}
	return true, nil
}

// refetch repeats the last listing exactly once so the panel reflects the
// server state after a mutation.
func (c *Console) refetch(ctx context.Context) error {
	c.mu.Lock()
	mine, docenteID := c.mine, c.docenteID
	c.mu.Unlock()

	var (
		fresh []Solicitud
		err   error
	)
	if mine {
		fresh, err = c.api.ListSolicitudesPorDocente(ctx, docenteID)
	} else {
		fresh, err = c.api.ListSolicitudes(ctx)
	}
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.solicitudes = fresh
	c.mu.Unlock()
	return nil
}

// Solicitudes returns the last fetched list.
func (c *Console) Solicitudes() []Solicitud {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Solicitud, len(c.solicitudes))
	copy(out, c.solicitudes)
	return out
}

func filterSolicitudes(all []Solicitud, f SolicitudFilter) []Solicitud {
	out := make([]Solicitud, 0, len(all))
	for _, s := range all {
		if matchesFilter(s, f) {
			out = append(out, s)
		}
	}
	return out
}

func matchesFilter(s Solicitud, f SolicitudFilter) bool {
	if texto := strings.ToLower(strings.TrimSpace(f.Texto)); texto != "" {
		id := strconv.FormatInt(s.ID, 10)
		estado := strings.ToLower(s.EstadoSolicitud)
		if !strings.Contains(id, texto) && !strings.Contains(estado, texto) {
			return false
		}
	}
	if f.Desde != nil && s.FechaSolicitud.Before(*f.Desde) {
		return false
	}
	if f.Hasta != nil && s.FechaSolicitud.After(inclusiveUpperBound(*f.Hasta)) {
		return false
	}
	return true
}

// inclusiveUpperBound stretches a bare day to its last instant so a filter
// of "hasta 2026-03-10" still matches solicitudes from that afternoon.
func inclusiveUpperBound(t time.Time) time.Time {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Add(24*time.Hour - time.Nanosecond)
	}
	return t
}

func tallySolicitudes(all []Solicitud) Tally {
	var tally Tally
	for _, s := range all {
		if s.EstadoSolicitud == EstadoPendiente {
			tally.Pendientes++
		} else {
			tally.Historial++
		}
	}
	return tally
}
