package transmission

import "fmt"

// CoupledConfig holds the resolved parameters shared by the two-actuator,
// two-joint variants. Index 0 is the "actuator1"/"joint1" slot.
type CoupledConfig struct {
	ActuatorReduction [2]float64
	JointReduction    [2]float64
	JointOffset       [2]float64
	JointLimits       [2]PositionRange
}

func (c CoupledConfig) validate() error {
	for i, r := range c.ActuatorReduction {
		if !validReduction(r) {
			return fmt.Errorf("%w: actuator %d reduction %v", ErrInvalidReductionValue, i+1, r)
		}
	}
	for i, r := range c.JointReduction {
		if !validReduction(r) {
			return fmt.Errorf("%w: joint %d reduction %v", ErrInvalidReductionValue, i+1, r)
		}
	}
	for i, o := range c.JointOffset {
		if !isFinite(o) {
			return fmt.Errorf("%w: joint %d offset %v", ErrInvalidParameterValue, i+1, o)
		}
	}
	return nil
}

// coupled carries the parameters and accessors common to Differential and
// FourBarLinkage.
type coupled struct {
	ar  [2]float64
	jr  [2]float64
	off [2]float64
	lim [2]PositionRange
}

func newCoupled(cfg CoupledConfig) coupled {
	return coupled{
		ar:  cfg.ActuatorReduction,
		jr:  cfg.JointReduction,
		off: cfg.JointOffset,
		lim: cfg.JointLimits,
	}
}

func (c *coupled) NumActuators() int { return 2 }
func (c *coupled) NumJoints() int    { return 2 }

// ActuatorReduction returns the actuator reductions in role order.
func (c *coupled) ActuatorReduction() [2]float64 { return c.ar }

// JointReduction returns the joint reductions in role order.
func (c *coupled) JointReduction() [2]float64 { return c.jr }

// JointOffset returns the joint position offsets in role order.
func (c *coupled) JointOffset() [2]float64 { return c.off }

// JointLimits returns the joint position ranges in role order.
func (c *coupled) JointLimits() [2]PositionRange { return c.lim }

func checkPair(op string, a, b []float64) {
	checkLen(op, a, 2)
	checkLen(op, b, 2)
}
