package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrorResponse is the wire envelope for client-facing failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
