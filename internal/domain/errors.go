package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrExecution     = errors.New("execution error")

	ErrInvalidName      = errors.New("invalid name")
	ErrInvalidPhone     = errors.New("invalid phone")
	ErrInvalidBirthday  = errors.New("invalid birthday")
	ErrPhoneNotFound    = errors.New("phone not found")
	ErrInvalidBatchSize = errors.New("invalid batch size")
	ErrInvalidTemplate  = errors.New("invalid template")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindValidation    ErrorKind = "validation"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// ValidationError reports a field payload that failed its validation rule.
type ValidationError struct {
	Field FieldKind
	Value string
	Rule  string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Rule)
}

// Unwrap maps the error onto the sentinel for its field kind.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	switch e.Field {
	case FieldName:
		return ErrInvalidName
	case FieldPhone:
		return ErrInvalidPhone
	case FieldBirthday:
		return ErrInvalidBirthday
	default:
		return nil
	}
}

// PhoneNotFoundError is returned by Record.EditPhone when the phone to replace
// is not on the record.
type PhoneNotFoundError struct {
	Contact string
	Phone   string
}

func (e *PhoneNotFoundError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("contact %s: phone %s not found", e.Contact, e.Phone)
}

func (e *PhoneNotFoundError) Unwrap() error {
	return ErrPhoneNotFound
}
