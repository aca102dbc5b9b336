package transmission

import (
	"github.com/mesh-intelligence/transmission/pkg/types"
)

// jointReductionFunc resolves the reduction of joint i. It reports the
// reductions it read so they take part in the nonzero check.
type jointReductionFunc func(p *recordParser, info types.TransmissionInfo, i int, def float64) (float64, []reduction)

// parseCoupled runs the shared validation of the two-actuator variants and
// returns the configuration with every slot in role order.
func parseCoupled(info types.TransmissionInfo, opts LoaderOptions, jointReduction jointReductionFunc) (CoupledConfig, error) {
	if err := checkCounts(info, 2, 2); err != nil {
		return CoupledConfig{}, err
	}
	def := opts.defaultReduction()

	p := recordParser{name: info.Name}
	var (
		ar, jr, off [2]float64
		lim         [2]PositionRange
		reductions  []reduction
	)
	for i, a := range info.Actuators {
		r := reduction{field: actuatorField(i, "mechanical_reduction")}
		r.value = p.real(r.field, a.MechanicalReduction, def)
		ar[i] = r.value
		reductions = append(reductions, r)
	}
	for i, j := range info.Joints {
		var rs []reduction
		jr[i], rs = jointReduction(&p, info, i, def)
		reductions = append(reductions, rs...)
		off[i] = p.real(jointField(i, "offset"), j.Offset, 0)
		lim[i] = p.limits(jointField(i, "limits"), j.Limits)
	}
	if p.err != nil {
		return CoupledConfig{}, p.err
	}

	if err := checkReductions(info.Name, reductions...); err != nil {
		return CoupledConfig{}, err
	}
	for i := range jr {
		if !validReduction(jr[i]) {
			return CoupledConfig{}, loadErrorf(info.Name, jointField(i, "mechanical_reduction"),
				ErrInvalidReductionValue, "resolved reduction %v", jr[i])
		}
	}

	jointRoles := []string{info.Joints[0].Role, info.Joints[1].Role}
	jo, err := roleOrder(info.Name, "joints", jointRoles, [2]string{RoleJoint1, RoleJoint2})
	if err != nil {
		return CoupledConfig{}, err
	}
	actuatorRoles := []string{info.Actuators[0].Role, info.Actuators[1].Role}
	ao, err := roleOrder(info.Name, "actuators", actuatorRoles, [2]string{RoleActuator1, RoleActuator2})
	if err != nil {
		return CoupledConfig{}, err
	}

	var cfg CoupledConfig
	for slot := range 2 {
		cfg.ActuatorReduction[slot] = ar[ao[slot]]
		cfg.JointReduction[slot] = jr[jo[slot]]
		cfg.JointOffset[slot] = off[jo[slot]]
		cfg.JointLimits[slot] = lim[jo[slot]]
	}
	return cfg, nil
}

// descriptorJointReduction reads the joint's own mechanical reduction.
func descriptorJointReduction(p *recordParser, info types.TransmissionInfo, i int, def float64) (float64, []reduction) {
	r := reduction{field: jointField(i, "mechanical_reduction")}
	r.value = p.real(r.field, info.Joints[i].MechanicalReduction, def)
	return r.value, []reduction{r}
}

// DifferentialLoader builds Differential transmissions. Joints must carry
// roles joint1 and joint2 and actuators actuator1 and actuator2, in any
// order. Absent reductions take LoaderOptions.DefaultReduction; absent
// offsets are 0.
type DifferentialLoader struct {
	Options LoaderOptions
}

// Load implements Loader.
func (l DifferentialLoader) Load(info types.TransmissionInfo) (Transmission, error) {
	cfg, err := l.Parse(info)
	if err != nil {
		return nil, err
	}
	d, err := NewDifferential(cfg)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Parse validates info and returns the resolved configuration.
func (l DifferentialLoader) Parse(info types.TransmissionInfo) (CoupledConfig, error) {
	return parseCoupled(info, l.Options, descriptorJointReduction)
}
