package notifying

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEmail = errors.New("missing or invalid to/subject/body in request")
	ErrOutboxWrite  = errors.New("failed to save outgoing email")
)

// ValidationError carrega o mapa campo -> regra violada
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidEmail.Error(), e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidEmail
}
