package user

import (
	"strings"
	"time"
)

// Usuario is the authentication-side identity. A docente additionally owns a
// Docente profile row keyed by usuarioId.
type Usuario struct {
	id            int64
	rolID         int64
	role          Role
	nombreUsuario string
	email         Email
	passwordHash  string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUsuario(rolID int64, role Role, nombreUsuario string, email Email, passwordHash string) (*Usuario, error) {
	nombreUsuario = strings.TrimSpace(nombreUsuario)
	if nombreUsuario == "" {
		return nil, ErrEmptyNombreUsuario
	}

	return &Usuario{
		rolID:         rolID,
		role:          role,
		nombreUsuario: nombreUsuario,
		email:         email,
		passwordHash:  passwordHash,
	}, nil
}

func ReconstructUsuario(id, rolID int64, role Role, nombreUsuario string, email Email, passwordHash string, createdAt, updatedAt time.Time) *Usuario {
	return &Usuario{
		id:            id,
		rolID:         rolID,
		role:          role,
		nombreUsuario: nombreUsuario,
		email:         email,
		passwordHash:  passwordHash,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (u *Usuario) ID() int64             { return u.id }
func (u *Usuario) RolID() int64          { return u.rolID }
func (u *Usuario) Role() Role            { return u.role }
func (u *Usuario) NombreUsuario() string { return u.nombreUsuario }
func (u *Usuario) Email() Email          { return u.email }
func (u *Usuario) PasswordHash() string  { return u.passwordHash }
func (u *Usuario) CreatedAt() time.Time  { return u.createdAt }
func (u *Usuario) UpdatedAt() time.Time  { return u.updatedAt }

type Docente struct {
	id              int64
	usuarioID       int64
	nombre          string
	apellido        string
	cedulaIdentidad string
}

func NewDocente(usuarioID int64, nombre, apellido, cedulaIdentidad string) (*Docente, error) {
	nombre = strings.TrimSpace(nombre)
	apellido = strings.TrimSpace(apellido)
	cedulaIdentidad = strings.TrimSpace(cedulaIdentidad)

	if nombre == "" || apellido == "" {
		return nil, ErrEmptyNombre
	}
	if cedulaIdentidad == "" {
		return nil, ErrEmptyCedula
	}

	return &Docente{
		usuarioID:       usuarioID,
		nombre:          nombre,
		apellido:        apellido,
		cedulaIdentidad: cedulaIdentidad,
	}, nil
}

func ReconstructDocente(id, usuarioID int64, nombre, apellido, cedulaIdentidad string) *Docente {
	return &Docente{
		id:              id,
		usuarioID:       usuarioID,
		nombre:          nombre,
		apellido:        apellido,
		cedulaIdentidad: cedulaIdentidad,
	}
}

func (d *Docente) ID() int64               { return d.id }
func (d *Docente) UsuarioID() int64        { return d.usuarioID }
func (d *Docente) Nombre() string          { return d.nombre }
func (d *Docente) Apellido() string        { return d.apellido }
func (d *Docente) CedulaIdentidad() string { return d.cedulaIdentidad }
