package shared

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates a password mismatch at login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken indicates signup with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrValidation indicates malformed or missing request input.
	ErrValidation = errors.New("validation failed")
)

// UserSafeMessage returns a message that can be shown to API clients
// without leaking store internals.
func UserSafeMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "Record not found"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid password"
	case errors.Is(err, ErrEmailTaken):
		return "User already exists"
	case errors.Is(err, ErrValidation):
		return "Invalid request"
	default:
		return "Internal server error"
	}
}
