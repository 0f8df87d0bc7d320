package user

import "strings"

// Role is the closed set of panel roles. Free-text role names coming from
// storage or tokens are resolved here exactly once, at the session boundary.
type Role string

const (
	RoleDocente   Role = "docente"
	RoleEncargado Role = "encargado"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleDocente, RoleEncargado:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
