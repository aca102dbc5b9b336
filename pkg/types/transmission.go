package types

import (
	"errors"
	"fmt"
)

// Record-level errors returned by TransmissionInfo.Validate. These cover the
// shape of the record itself; per-variant numeric and structural checks
// live with the loaders.
var (
	ErrNameEmpty         = errors.New("transmission name must not be empty")
	ErrTypeEmpty         = errors.New("transmission type must not be empty")
	ErrDuplicateJoint    = errors.New("duplicate joint name")
	ErrDuplicateActuator = errors.New("duplicate actuator name")
)

// Limits is an optional joint position range. Lower and Upper are raw
// values; a Continuous joint has no range and wraps instead.
type Limits struct {
	Lower      any  `json:"lower,omitempty" yaml:"lower,omitempty"`
	Upper      any  `json:"upper,omitempty" yaml:"upper,omitempty"`
	Continuous bool `json:"continuous,omitempty" yaml:"continuous,omitempty"`
}

// JointInfo describes one joint of a transmission.
type JointInfo struct {
	// Name is unique within the transmission.
	Name string `json:"name" yaml:"name"`

	// Role ties this joint to a parameter slot of the variant (e.g. "joint1").
	Role string `json:"role,omitempty" yaml:"role,omitempty"`

	// Offset is the raw position offset; nil means 0.
	Offset any `json:"offset,omitempty" yaml:"offset,omitempty"`

	// MechanicalReduction is the raw joint-side reduction; nil means default.
	MechanicalReduction any `json:"mechanical_reduction,omitempty" yaml:"mechanical_reduction,omitempty"`

	Limits *Limits `json:"limits,omitempty" yaml:"limits,omitempty"`
}

// ActuatorInfo describes one actuator of a transmission.
type ActuatorInfo struct {
	Name                string `json:"name" yaml:"name"`
	Role                string `json:"role,omitempty" yaml:"role,omitempty"`
	MechanicalReduction any    `json:"mechanical_reduction,omitempty" yaml:"mechanical_reduction,omitempty"`
}

// TransmissionInfo is the configuration record for one transmission, as
// produced by a description parser. It is read-only once produced.
type TransmissionInfo struct {
	Name       string         `json:"name" yaml:"name"`
	Type       string         `json:"type" yaml:"type"`
	Joints     []JointInfo    `json:"joints" yaml:"joints"`
	Actuators  []ActuatorInfo `json:"actuators" yaml:"actuators"`
	Parameters map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Validate checks the record-level shape: a name, a type, and unique joint
// and actuator names. Empty descriptor names are left to the loaders, which
// do not key anything on them.
func (t TransmissionInfo) Validate() error {
	if t.Name == "" {
		return ErrNameEmpty
	}
	if t.Type == "" {
		return ErrTypeEmpty
	}

	seen := make(map[string]bool, len(t.Joints))
	for _, j := range t.Joints {
		if j.Name == "" {
			continue
		}
		if seen[j.Name] {
			return fmt.Errorf("%w: %q in transmission %q", ErrDuplicateJoint, j.Name, t.Name)
		}
		seen[j.Name] = true
	}

	seen = make(map[string]bool, len(t.Actuators))
	for _, a := range t.Actuators {
		if a.Name == "" {
			continue
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: %q in transmission %q", ErrDuplicateActuator, a.Name, t.Name)
		}
		seen[a.Name] = true
	}
	return nil
}

// JointNames returns the joint names in declaration order.
func (t TransmissionInfo) JointNames() []string {
	names := make([]string, len(t.Joints))
	for i, j := range t.Joints {
		names[i] = j.Name
	}
	return names
}

// ActuatorNames returns the actuator names in declaration order.
func (t TransmissionInfo) ActuatorNames() []string {
	names := make([]string, len(t.Actuators))
	for i, a := range t.Actuators {
		names[i] = a.Name
	}
	return names
}
