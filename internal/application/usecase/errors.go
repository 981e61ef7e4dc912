package usecase

import (
	"errors"
	"fmt"
)

// ValidationError reports a request the caller has to fix. Handlers answer it with 400.
type ValidationError struct {
	reason string
}

func (e ValidationError) Error() string {
	return e.reason
}

func invalid(format string, args ...any) error {
	return ValidationError{reason: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve ValidationError

	return errors.As(err, &ve)
}
