package signup

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Sentinel errors for the signup repository.
var (
	// ErrNotFound indicates no user exists for the given email.
	ErrNotFound = errors.New("signup: user not found")
	// ErrEmailTaken indicates the email unique constraint rejected an insert.
	ErrEmailTaken = errors.New("signup: email already in use")
)

// FieldError pairs a field name with its localized message.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors is an ordered set of field errors. It serializes as a JSON
// object whose keys appear in field evaluation order.
type FieldErrors []FieldError

// MarshalJSON emits {"field":"message",...} preserving slice order.
func (fe FieldErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range fe {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Field)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Message)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the message for field, if present.
func (fe FieldErrors) Get(field string) (string, bool) {
	for _, e := range fe {
		if e.Field == field {
			return e.Message, true
		}
	}
	return "", false
}

// ValidationError reports per-field rule violations, including the
// email-uniqueness violation. It is an expected outcome, not a fault.
type ValidationError struct {
	Errors FieldErrors
}

func (e *ValidationError) Error() string {
	return "signup: validation failed"
}
