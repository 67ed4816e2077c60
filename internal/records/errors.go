package records

import (
	"errors"
	"strings"
)

var ErrRecordNotFound = errors.New("health record not found")

// ValidationError reports every required-field or enum violation in a
// submitted payload.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid health record: " + strings.Join(e.Fields, ", ")
}
