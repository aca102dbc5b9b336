package transmission

import (
	"fmt"

	"github.com/mesh-intelligence/transmission/pkg/types"
)

// Transmission converts samples between actuator space and joint space.
//
// Each method reads the first slice and writes the second. Slice lengths
// must equal NumActuators and NumJoints respectively; a mismatch is a
// programming error and panics.
type Transmission interface {
	NumActuators() int
	NumJoints() int

	ActuatorToJointPosition(actuator, joint []float64)
	ActuatorToJointVelocity(actuator, joint []float64)
	ActuatorToJointEffort(actuator, joint []float64)

	JointToActuatorPosition(joint, actuator []float64)
	JointToActuatorVelocity(joint, actuator []float64)
	JointToActuatorEffort(joint, actuator []float64)
}

// ActuatorToJoint converts every quantity for which both buffers are set.
func ActuatorToJoint(t Transmission, act *types.ActuatorData, jnt *types.JointData) {
	if act.Position != nil && jnt.Position != nil {
		t.ActuatorToJointPosition(act.Position, jnt.Position)
	}
	if act.Velocity != nil && jnt.Velocity != nil {
		t.ActuatorToJointVelocity(act.Velocity, jnt.Velocity)
	}
	if act.Effort != nil && jnt.Effort != nil {
		t.ActuatorToJointEffort(act.Effort, jnt.Effort)
	}
}

// JointToActuator converts every quantity for which both buffers are set.
func JointToActuator(t Transmission, jnt *types.JointData, act *types.ActuatorData) {
	if jnt.Position != nil && act.Position != nil {
		t.JointToActuatorPosition(jnt.Position, act.Position)
	}
	if jnt.Velocity != nil && act.Velocity != nil {
		t.JointToActuatorVelocity(jnt.Velocity, act.Velocity)
	}
	if jnt.Effort != nil && act.Effort != nil {
		t.JointToActuatorEffort(jnt.Effort, act.Effort)
	}
}

// checkLen panics when a buffer does not match the transmission cardinality.
func checkLen(op string, buf []float64, n int) {
	if len(buf) != n {
		panic(fmt.Sprintf("transmission: %s: buffer has %d slots, want %d", op, len(buf), n))
	}
}

// JointLimits returns the position range of each joint in slot order.
// Variants that carry no limits report every joint as unbounded.
func JointLimits(t Transmission) []PositionRange {
	switch v := t.(type) {
	case interface{ JointLimits() PositionRange }:
		return []PositionRange{v.JointLimits()}
	case interface{ JointLimits() [2]PositionRange }:
		l := v.JointLimits()
		return l[:]
	}
	return make([]PositionRange, t.NumJoints())
}
