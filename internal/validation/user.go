package validation

import (
	"regexp"
	"strings"

	"github.com/sbilibin2017/gw-social/internal/apperr"
)

// EmailPattern is the basic address shape accepted for user emails.
var EmailPattern = regexp.MustCompile(`.+@.+\..+`)

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 6

// User checks name, email and, when non-nil, password.
// Missing or malformed fields are reported together in one *apperr.ValidationError.
func User(name, email string, password *string) error {
	verr := apperr.NewValidationError()

	if strings.TrimSpace(name) == "" {
		verr.Add("name", "Name is required")
	}

	email = strings.TrimSpace(email)
	switch {
	case email == "":
		verr.Add("email", "Email is required")
	case !EmailPattern.MatchString(email):
		verr.Add("email", "Please fill a valid email address")
	}

	if password != nil {
		if msg := passwordMessage(*password); msg != "" {
			verr.Add("password", msg)
		}
	}

	return verr.OrNil()
}

// Password checks a plaintext password on its own.
func Password(password string) error {
	if msg := passwordMessage(password); msg != "" {
		return apperr.Validation("password", msg)
	}
	return nil
}

func passwordMessage(password string) string {
	switch {
	case password == "":
		return "Password is required"
	case len(password) < MinPasswordLen:
		return "Password must be at least 6 characters."
	}
	return ""
}
