package mapping

import (
	"errors"
	"fmt"
)

// Validation messages shared across mappers.
const (
	msgRequired = "This field is required."
	msgBlank    = "This field may not be blank."
	msgUnique   = "This field must be unique."
)

// FieldErrors maps a field name to the validation messages recorded for it.
// Mappers collect errors for every failing field before reporting.
type FieldErrors map[string][]string

// Add appends a message for the field.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// fieldError is a validation failure whose message is safe to surface to
// the client, as opposed to an internal store failure.
type fieldError struct {
	msg string
}

func (e *fieldError) Error() string {
	return e.msg
}

func fieldErrorf(format string, args ...any) error {
	return &fieldError{msg: fmt.Sprintf(format, args...)}
}

// IsFieldError reports whether err carries a client-facing message.
func IsFieldError(err error) bool {
	var fe *fieldError
	return errors.As(err, &fe)
}

// collect records a field-scoped error, passing internal failures through.
func collect(errs FieldErrors, field string, err error) error {
	if err == nil {
		return nil
	}
	if IsFieldError(err) {
		errs.Add(field, err.Error())
		return nil
	}
	return err
}
