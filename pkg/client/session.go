package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Role is the closed set of roles the SDK understands. The free-form
// nombreRol string coming off the wire is resolved into it exactly once,
// when the session is built; everything past that boundary compares Role
// values and never touches strings again.
type Role string

const (
	RoleDocente   Role = "docente"
	RoleEncargado Role = "encargado"
)

var ErrUnknownRole = errors.New("unknown role")

func ResolveRole(nombreRol string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(nombreRol)) {
	case string(RoleDocente):
		return RoleDocente, nil
	case string(RoleEncargado):
		return RoleEncargado, nil
	default:
		return "", ErrUnknownRole
	}
}

// Session is the authenticated identity persisted between runs.
type Session struct {
	UsuarioID     int64  `json:"usuarioId"`
	RolID         int64  `json:"rolId"`
	NombreRol     string `json:"nombreRol"`
	NombreUsuario string `json:"nombreUsuario"`
	Email         string `json:"email"`
	Token         string `json:"token"`

	role Role
}

func NewSession(login LoginResponse) (*Session, error) {
	role, err := ResolveRole(login.NombreRol)
	if err != nil {
		return nil, err
	}
	return &Session{
		UsuarioID:     login.UsuarioID,
		RolID:         login.RolID,
		NombreRol:     login.NombreRol,
		NombreUsuario: login.NombreUsuario,
		Email:         login.Email,
		Token:         login.Token,
		role:          role,
	}, nil
}

func (s *Session) Role() Role {
	return s.role
}

// SessionStore persists at most one session as a JSON file.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

func (st *SessionStore) Save(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(st.path, data, 0o600)
}

// Load returns the persisted session, or nil when there is none. Unreadable
// or corrupt content counts as logged out and the file is removed, so a bad
// write can never wedge the caller into a broken half-session.
func (st *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		_ = os.Remove(st.path)
		return nil, nil
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		_ = os.Remove(st.path)
		return nil, nil
	}
	role, err := ResolveRole(s.NombreRol)
	if err != nil || s.Token == "" {
		_ = os.Remove(st.path)
		return nil, nil
	}
	s.role = role
	return &s, nil
}

func (st *SessionStore) Clear() error {
	if err := os.Remove(st.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
