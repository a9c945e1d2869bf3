package validation

import (
	"errors"
	"testing"

	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUser(t *testing.T) {
	tests := []struct {
		name       string
		userName   string
		email      string
		password   *string
		wantFields map[string]string
	}{
		{
			name:     "valid with password",
			userName: "Ann",
			email:    "ann@x.com",
			password: strPtr("secret1"),
		},
		{
			name:     "valid without password",
			userName: "Ann",
			email:    "ann@x.com",
		},
		{
			name:     "all missing",
			password: strPtr(""),
			wantFields: map[string]string{
				"name":     "Name is required",
				"email":    "Email is required",
				"password": "Password is required",
			},
		},
		{
			name:       "blank name",
			userName:   "   ",
			email:      "ann@x.com",
			wantFields: map[string]string{"name": "Name is required"},
		},
		{
			name:       "malformed email",
			userName:   "Ann",
			email:      "ann-at-x",
			wantFields: map[string]string{"email": "Please fill a valid email address"},
		},
		{
			name:       "short password",
			userName:   "Ann",
			email:      "ann@x.com",
			password:   strPtr("12345"),
			wantFields: map[string]string{"password": "Password must be at least 6 characters."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := User(tt.userName, tt.email, tt.password)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrValidation))

			var verr *apperr.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantFields, verr.Fields)
		})
	}
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("secret1"))
	assert.ErrorIs(t, Password("abc"), apperr.ErrValidation)
	assert.ErrorIs(t, Password(""), apperr.ErrValidation)
}
