package transmission

import (
	"errors"
	"fmt"
)

// Load errors. Loaders wrap exactly one of these in a *LoadError.
var (
	ErrWrongJointCount       = errors.New("wrong joint count")
	ErrWrongActuatorCount    = errors.New("wrong actuator count")
	ErrInvalidParameterValue = errors.New("invalid parameter value")
	ErrInvalidReductionValue = errors.New("invalid reduction value")
	ErrInvalidRoleMapping    = errors.New("invalid role mapping")
)

// LoadError reports why a configuration record was rejected.
type LoadError struct {
	Transmission string // name of the rejected record
	Field        string // offending field, e.g. "actuators[0].mechanical_reduction"
	Err          error  // one of the Err* kinds above
	Detail       string
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("transmission %q", e.Transmission)
	if e.Field != "" {
		msg += ": " + e.Field
	}
	msg += ": " + e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadErrorf(name, field string, kind error, format string, args ...any) *LoadError {
	return &LoadError{
		Transmission: name,
		Field:        field,
		Err:          kind,
		Detail:       fmt.Sprintf(format, args...),
	}
}
