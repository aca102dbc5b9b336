package transmission

import (
	"github.com/mesh-intelligence/transmission/pkg/types"
)

// Linkage geometry parameter suffixes. A joint with role "joint2" reads
// "joint2_input_link_length" and "joint2_output_link_length" from the
// transmission parameters.
const (
	InputLinkLengthSuffix  = "_input_link_length"
	OutputLinkLengthSuffix = "_output_link_length"
)

// FourBarLinkageLoader builds FourBarLinkage transmissions. Roles follow the
// DifferentialLoader rules. A joint without its own mechanical reduction
// takes the ratio output/input of its link lengths when both are given in
// the transmission parameters, and the default reduction otherwise.
type FourBarLinkageLoader struct {
	Options LoaderOptions
}

// Load implements Loader.
func (l FourBarLinkageLoader) Load(info types.TransmissionInfo) (Transmission, error) {
	cfg, err := l.Parse(info)
	if err != nil {
		return nil, err
	}
	f, err := NewFourBarLinkage(cfg)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Parse validates info and returns the resolved configuration.
func (l FourBarLinkageLoader) Parse(info types.TransmissionInfo) (CoupledConfig, error) {
	return parseCoupled(info, l.Options, linkageJointReduction)
}

func linkageJointReduction(p *recordParser, info types.TransmissionInfo, i int, def float64) (float64, []reduction) {
	j := info.Joints[i]
	if hasValue(j.MechanicalReduction) {
		return descriptorJointReduction(p, info, i, def)
	}

	inKey := j.Role + InputLinkLengthSuffix
	outKey := j.Role + OutputLinkLengthSuffix
	in, out := info.Parameters[inKey], info.Parameters[outKey]
	if !hasValue(in) && !hasValue(out) {
		return def, nil
	}

	input := reduction{field: "parameters." + inKey}
	output := reduction{field: "parameters." + outKey}
	input.value = p.real(input.field, in, 0)
	output.value = p.real(output.field, out, 0)
	if p.err == nil && (!hasValue(in) || !hasValue(out)) {
		missing := inKey
		if hasValue(in) {
			missing = outKey
		}
		p.err = loadErrorf(info.Name, "parameters."+missing, ErrInvalidParameterValue,
			"link lengths must be given in pairs")
	}
	if p.err != nil || input.value == 0 {
		return def, []reduction{input, output}
	}
	return output.value / input.value, []reduction{input, output}
}
