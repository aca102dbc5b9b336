package transmission

// Differential couples two actuators to two joints through the sum and the
// difference of their motions, as in a bevel-gear wrist:
//
//	joint1 velocity = (a1/ar1 + a2/ar2) / (2 jr1)
//	joint2 velocity = (a1/ar1 - a2/ar2) / (2 jr2)
//
// Positions use the same combination plus per-joint offsets. Efforts use the
// transpose of the inverse velocity map, so actuator and joint power match.
type Differential struct {
	coupled
}

// NewDifferential builds a Differential transmission, rejecting zero or
// non-finite reductions and non-finite offsets.
func NewDifferential(cfg CoupledConfig) (*Differential, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Differential{coupled: newCoupled(cfg)}, nil
}

func (d *Differential) ActuatorToJointPosition(actuator, joint []float64) {
	checkPair("differential position", actuator, joint)
	a0 := actuator[0] / d.ar[0]
	a1 := actuator[1] / d.ar[1]
	joint[0] = (a0+a1)/(2*d.jr[0]) + d.off[0]
	joint[1] = (a0-a1)/(2*d.jr[1]) + d.off[1]
}

func (d *Differential) ActuatorToJointVelocity(actuator, joint []float64) {
	checkPair("differential velocity", actuator, joint)
	a0 := actuator[0] / d.ar[0]
	a1 := actuator[1] / d.ar[1]
	joint[0] = (a0 + a1) / (2 * d.jr[0])
	joint[1] = (a0 - a1) / (2 * d.jr[1])
}

func (d *Differential) ActuatorToJointEffort(actuator, joint []float64) {
	checkPair("differential effort", actuator, joint)
	a0 := actuator[0] * d.ar[0]
	a1 := actuator[1] * d.ar[1]
	joint[0] = d.jr[0] * (a0 + a1)
	joint[1] = d.jr[1] * (a0 - a1)
}

func (d *Differential) JointToActuatorPosition(joint, actuator []float64) {
	checkPair("differential position", joint, actuator)
	j0 := (joint[0] - d.off[0]) * d.jr[0]
	j1 := (joint[1] - d.off[1]) * d.jr[1]
	actuator[0] = (j0 + j1) * d.ar[0]
	actuator[1] = (j0 - j1) * d.ar[1]
}

func (d *Differential) JointToActuatorVelocity(joint, actuator []float64) {
	checkPair("differential velocity", joint, actuator)
	j0 := joint[0] * d.jr[0]
	j1 := joint[1] * d.jr[1]
	actuator[0] = (j0 + j1) * d.ar[0]
	actuator[1] = (j0 - j1) * d.ar[1]
}

func (d *Differential) JointToActuatorEffort(joint, actuator []float64) {
	checkPair("differential effort", joint, actuator)
	j0 := joint[0] / d.jr[0]
	j1 := joint[1] / d.jr[1]
	actuator[0] = (j0 + j1) / (2 * d.ar[0])
	actuator[1] = (j0 - j1) / (2 * d.ar[1])
}
