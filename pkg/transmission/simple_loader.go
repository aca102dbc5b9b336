package transmission

import (
	"github.com/mesh-intelligence/transmission/pkg/types"
)

// SimpleLoader builds Simple transmissions. The reduction is the product of
// the actuator and joint reductions; when neither is given it is
// LoaderOptions.DefaultReduction. The offset comes from the joint and
// defaults to 0. Any single role is accepted.
type SimpleLoader struct {
	Options LoaderOptions
}

// Load implements Loader.
func (l SimpleLoader) Load(info types.TransmissionInfo) (Transmission, error) {
	cfg, err := l.Parse(info)
	if err != nil {
		return nil, err
	}
	s, err := NewSimple(cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Parse validates info and returns the resolved configuration.
func (l SimpleLoader) Parse(info types.TransmissionInfo) (SimpleConfig, error) {
	if err := checkCounts(info, 1, 1); err != nil {
		return SimpleConfig{}, err
	}
	jnt := info.Joints[0]
	act := info.Actuators[0]
	def := l.Options.defaultReduction()

	p := recordParser{name: info.Name}
	actRed := reduction{field: actuatorField(0, "mechanical_reduction")}
	jntRed := reduction{field: jointField(0, "mechanical_reduction")}
	actRed.value = p.real(actRed.field, act.MechanicalReduction, def)
	jntRed.value = p.real(jntRed.field, jnt.MechanicalReduction, 1)
	if !hasValue(act.MechanicalReduction) && hasValue(jnt.MechanicalReduction) {
		// A reduction given only on the joint replaces the default rather
		// than multiplying it.
		actRed.value = 1
	}
	cfg := SimpleConfig{
		Offset: p.real(jointField(0, "offset"), jnt.Offset, 0),
		Limits: p.limits(jointField(0, "limits"), jnt.Limits),
	}
	if p.err != nil {
		return SimpleConfig{}, p.err
	}

	if err := checkReductions(info.Name, actRed, jntRed); err != nil {
		return SimpleConfig{}, err
	}
	cfg.Reduction = actRed.value * jntRed.value
	if !validReduction(cfg.Reduction) {
		return SimpleConfig{}, loadErrorf(info.Name, "mechanical_reduction", ErrInvalidReductionValue,
			"combined reduction %v", cfg.Reduction)
	}
	return cfg, nil
}
