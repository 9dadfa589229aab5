package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrPermissionDenied reports an authorization policy denial.
var ErrPermissionDenied = errors.New("service: permission denied")

// ValidationError carries field-keyed messages, rendered at the HTTP
// boundary as a 400 with one message list per field.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError(field, msg string) *ValidationError {
	e := &ValidationError{Fields: map[string][]string{}}
	return e.Add(field, msg)
}

func (e *ValidationError) Add(field, msg string) *ValidationError {
	e.Fields[field] = append(e.Fields[field], msg)
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed:")
	for _, f := range fields {
		fmt.Fprintf(&b, " %s: %s;", f, strings.Join(e.Fields[f], ", "))
	}
	return strings.TrimSuffix(b.String(), ";")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
