package schema

import (
	"fmt"
	"strings"
)

// ValidationError reports an entity that failed its shape contract. Fields
// holds the offending field paths in declaration order, e.g.
// "preferences.zipCode" or "[2].reservationUrl".
type ValidationError struct {
	Fields []string
	err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.err
}
