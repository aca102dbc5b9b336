package transmission

// FourBarLinkage drives two joints from two actuators where the second joint
// rides on the first, so moving joint1 also moves joint2 unless actuator2
// compensates:
//
//	joint1 velocity = a1 / (jr1 ar1)
//	joint2 velocity = (a2/ar2 - a1/(jr1 ar1)) / jr2
//
// This is the instantaneous (linearised) linkage map. Positions add per-joint
// offsets. Efforts use the transpose of the inverse velocity map, so
// actuator and joint power match.
type FourBarLinkage struct {
	coupled
}

// NewFourBarLinkage builds a FourBarLinkage transmission, rejecting zero or
// non-finite reductions and non-finite offsets.
func NewFourBarLinkage(cfg CoupledConfig) (*FourBarLinkage, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &FourBarLinkage{coupled: newCoupled(cfg)}, nil
}

func (f *FourBarLinkage) ActuatorToJointPosition(actuator, joint []float64) {
	checkPair("four-bar position", actuator, joint)
	j0 := actuator[0] / (f.jr[0] * f.ar[0])
	joint[0] = j0 + f.off[0]
	joint[1] = (actuator[1]/f.ar[1]-j0)/f.jr[1] + f.off[1]
}

func (f *FourBarLinkage) ActuatorToJointVelocity(actuator, joint []float64) {
	checkPair("four-bar velocity", actuator, joint)
	j0 := actuator[0] / (f.jr[0] * f.ar[0])
	joint[0] = j0
	joint[1] = (actuator[1]/f.ar[1] - j0) / f.jr[1]
}

func (f *FourBarLinkage) ActuatorToJointEffort(actuator, joint []float64) {
	checkPair("four-bar effort", actuator, joint)
	joint[0] = f.jr[0]*f.ar[0]*actuator[0] + f.ar[1]*actuator[1]
	joint[1] = f.jr[1] * f.ar[1] * actuator[1]
}

func (f *FourBarLinkage) JointToActuatorPosition(joint, actuator []float64) {
	checkPair("four-bar position", joint, actuator)
	j0 := joint[0] - f.off[0]
	j1 := joint[1] - f.off[1]
	actuator[0] = j0 * f.jr[0] * f.ar[0]
	actuator[1] = (j0 + j1*f.jr[1]) * f.ar[1]
}

func (f *FourBarLinkage) JointToActuatorVelocity(joint, actuator []float64) {
	checkPair("four-bar velocity", joint, actuator)
	actuator[0] = joint[0] * f.jr[0] * f.ar[0]
	actuator[1] = (joint[0] + joint[1]*f.jr[1]) * f.ar[1]
}

func (f *FourBarLinkage) JointToActuatorEffort(joint, actuator []float64) {
	checkPair("four-bar effort", joint, actuator)
	actuator[0] = (joint[0] - joint[1]/f.jr[1]) / (f.jr[0] * f.ar[0])
	actuator[1] = joint[1] / (f.jr[1] * f.ar[1])
}
