package validate

import (
	"strings"
)

type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// ValidationError is the only business-rule error kind in the core. Callers
// surface it to the user; no state is committed when one is returned.
type ValidationError []FieldError

func (e ValidationError) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Helpers
func Required(field, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Msg: "required"}
	}
	return nil
}

func Match(field, value, other string) *FieldError {
	if value != other {
		return &FieldError{Field: field, Msg: "does not match"}
	}
	return nil
}
