package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyExport is returned when an export is requested over zero records.
var ErrEmptyExport = errors.New("no flight records to export")

// ErrPageCapacity is returned when a logbook page capacity is below one row.
var ErrPageCapacity = errors.New("page capacity must be at least 1")

// FieldViolation is one validation failure tagged with the offending field.
type FieldViolation struct {
	Field   string
	Message string
}

func (v FieldViolation) String() string {
	return v.Field + ": " + v.Message
}

// ValidationError carries every violation found on a single record, in
// check order. Callers report the whole list at once.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "flight record invalid: " + strings.Join(parts, "; ")
}

// DecompositionError reports a derived time field that contradicts the
// record it was derived from. It is surfaced, never auto-corrected.
type DecompositionError struct {
	Field  string
	Reason string
}

func (e *DecompositionError) Error() string {
	return fmt.Sprintf("time decomposition failed on %s: %s", e.Field, e.Reason)
}
