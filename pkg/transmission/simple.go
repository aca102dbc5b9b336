package transmission

import "fmt"

// SimpleConfig holds the resolved parameters of a Simple transmission.
type SimpleConfig struct {
	Reduction float64
	Offset    float64
	Limits    PositionRange
}

// Simple couples one actuator to one joint through a reduction (gearbox,
// belt, lever) and a position offset:
//
//	joint position = actuator position / reduction + offset
//	joint velocity = actuator velocity / reduction
//	joint effort   = actuator effort * reduction
//
// A negative reduction reverses direction.
type Simple struct {
	reduction float64
	offset    float64
	limits    PositionRange
}

// NewSimple builds a Simple transmission, rejecting a zero or non-finite
// reduction and a non-finite offset.
func NewSimple(cfg SimpleConfig) (*Simple, error) {
	if !validReduction(cfg.Reduction) {
		return nil, fmt.Errorf("%w: reduction %v", ErrInvalidReductionValue, cfg.Reduction)
	}
	if !isFinite(cfg.Offset) {
		return nil, fmt.Errorf("%w: offset %v", ErrInvalidParameterValue, cfg.Offset)
	}
	return &Simple{
		reduction: cfg.Reduction,
		offset:    cfg.Offset,
		limits:    cfg.Limits,
	}, nil
}

func (s *Simple) NumActuators() int { return 1 }
func (s *Simple) NumJoints() int    { return 1 }

// ActuatorReduction returns the reduction ratio.
func (s *Simple) ActuatorReduction() float64 { return s.reduction }

// JointOffset returns the position offset.
func (s *Simple) JointOffset() float64 { return s.offset }

// JointLimits returns the joint position range.
func (s *Simple) JointLimits() PositionRange { return s.limits }

func (s *Simple) ActuatorToJointPosition(actuator, joint []float64) {
	checkLen("simple actuator position", actuator, 1)
	checkLen("simple joint position", joint, 1)
	joint[0] = actuator[0]/s.reduction + s.offset
}

func (s *Simple) ActuatorToJointVelocity(actuator, joint []float64) {
	checkLen("simple actuator velocity", actuator, 1)
	checkLen("simple joint velocity", joint, 1)
	joint[0] = actuator[0] / s.reduction
}

func (s *Simple) ActuatorToJointEffort(actuator, joint []float64) {
	checkLen("simple actuator effort", actuator, 1)
	checkLen("simple joint effort", joint, 1)
	joint[0] = actuator[0] * s.reduction
}

func (s *Simple) JointToActuatorPosition(joint, actuator []float64) {
	checkLen("simple joint position", joint, 1)
	checkLen("simple actuator position", actuator, 1)
	actuator[0] = (joint[0] - s.offset) * s.reduction
}

func (s *Simple) JointToActuatorVelocity(joint, actuator []float64) {
	checkLen("simple joint velocity", joint, 1)
	checkLen("simple actuator velocity", actuator, 1)
	actuator[0] = joint[0] * s.reduction
}

func (s *Simple) JointToActuatorEffort(joint, actuator []float64) {
	checkLen("simple joint effort", joint, 1)
	checkLen("simple actuator effort", actuator, 1)
	actuator[0] = joint[0] / s.reduction
}
