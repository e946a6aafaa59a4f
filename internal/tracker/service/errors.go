package service

import (
	"errors"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	ErrDuplicateEmail = errors.New("email already in use")
	ErrDuplicateName  = errors.New("name already in use")
)

// ValidationError lists the rejected input fields and why. Its message is
// safe to show to the caller.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("invalid input")
	for i, k := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(k + ": " + e.Fields[k])
	}
	return b.String()
}

// validationError converts an ozzo-validation result into a ValidationError.
// Errors that are not field errors are returned unchanged.
func validationError(err error) error {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}
	fields := make(map[string]string, len(errs))
	for k, v := range errs {
		fields[k] = v.Error()
	}
	return &ValidationError{Fields: fields}
}
