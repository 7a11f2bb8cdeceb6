package hydraulics

import (
	"errors"
	"fmt"
)

// ErrDischargeUnresolved is returned by the flow solves when the solver
// has no discharge to solve for.
var ErrDischargeUnresolved = errors.New("discharge is not set")

// ValidationError reports an input rejected at construction.
// Value is the offending input and Limit the bound it violated.
type ValidationError struct {
	Field string
	Value float64
	Limit float64
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s = %.4f, limit %.4f", e.Msg, e.Field, e.Value, e.Limit)
}
