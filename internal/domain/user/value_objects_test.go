//go:build unit

package user_test

import (
	"testing"

	"loandesk/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		errIs error
	}{
		{name: "valid", in: "jperez@instituto.edu"},
		{name: "trimmed", in: "  jperez@instituto.edu  "},
		{name: "empty", in: "", errIs: user.ErrInvalidEmail},
		{name: "no at sign", in: "jperez.instituto.edu", errIs: user.ErrInvalidEmail},
		{name: "no tld", in: "jperez@instituto", errIs: user.ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.in)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jperez@instituto.edu", email.Value())
		})
	}
}

func TestNewRole(t *testing.T) {
	role, err := user.NewRole(" Encargado ")
	require.NoError(t, err)
	assert.Equal(t, user.RoleEncargado, role)

	role, err = user.NewRole("DOCENTE")
	require.NoError(t, err)
	assert.Equal(t, user.RoleDocente, role)

	_, err = user.NewRole("admin")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("corta")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	pw, err := user.NewPassword("secreto123")
	require.NoError(t, err)
	assert.Equal(t, "secreto123", pw.Value())
}

func TestNewCredentials(t *testing.T) {
	creds, err := user.NewCredentials(" jperez ", "secreto123")
	require.NoError(t, err)
	assert.Equal(t, "jperez", creds.Identifier())

	_, err = user.NewCredentials("   ", "secreto123")
	assert.ErrorIs(t, err, user.ErrEmptyIdentifier)

	_, err = user.NewCredentials("jperez", "corta")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
}
