package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	verr := NewValidationError()
	assert.NoError(t, verr.OrNil())

	verr.Add("email", "Email is required")
	verr.Add("email", "ignored")
	verr.Add("name", "Name is required")

	err := verr.OrNil()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "validation failed: email: Email is required; name: Name is required", err.Error())

	var target *ValidationError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
	assert.Equal(t, "Email is required", target.Fields["email"])
}

func TestInternal(t *testing.T) {
	cause := errors.New("connection refused")

	err := Internal(cause)
	assert.True(t, errors.Is(err, ErrInternal))
	assert.True(t, errors.Is(err, cause))

	assert.Same(t, err, Internal(err))
	assert.NoError(t, Internal(nil))
}
