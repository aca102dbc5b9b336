package types

// ActuatorData holds one sample of actuator-space values, one slot per
// actuator. The buffers are owned by the caller; transmissions only read or
// write the slots. A nil slice means the quantity is not exchanged.
type ActuatorData struct {
	Position []float64
	Velocity []float64
	Effort   []float64
}

// JointData holds one sample of joint-space values, one slot per joint.
type JointData struct {
	Position []float64
	Velocity []float64
	Effort   []float64
}

// NewActuatorData allocates buffers for n actuators.
func NewActuatorData(n int) ActuatorData {
	return ActuatorData{
		Position: make([]float64, n),
		Velocity: make([]float64, n),
		Effort:   make([]float64, n),
	}
}

// NewJointData allocates buffers for n joints.
func NewJointData(n int) JointData {
	return JointData{
		Position: make([]float64, n),
		Velocity: make([]float64, n),
		Effort:   make([]float64, n),
	}
}
