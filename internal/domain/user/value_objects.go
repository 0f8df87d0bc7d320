package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidRole        = errors.New("invalid role")
	ErrPasswordTooWeak    = errors.New("password must be at least 8 characters long")
	ErrEmptyIdentifier    = errors.New("username or email is required")
	ErrEmptyNombre        = errors.New("nombre is required")
	ErrEmptyCedula        = errors.New("cedula de identidad is required")
	ErrEmptyNombreUsuario = errors.New("nombre de usuario is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Credentials carry the login identifier as submitted: the backend accepts
// either nombre de usuario or email in the same field.
type Credentials struct {
	identifier string
	password   Password
}

func NewCredentials(identifier, rawPassword string) (Credentials, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return Credentials{}, ErrEmptyIdentifier
	}

	pw, err := NewPassword(rawPassword)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{identifier: identifier, password: pw}, nil
}

func (c Credentials) Identifier() string {
	return c.identifier
}

func (c Credentials) Password() Password {
	return c.password
}
