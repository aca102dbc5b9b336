package transmission

import (
	"fmt"
	"math"

	"github.com/mesh-intelligence/transmission/pkg/types"
)

// Type tags naming the variants in configuration records.
const (
	TypeSimple         = "transmission_interface/SimpleTransmission"
	TypeDifferential   = "transmission_interface/DifferentialTransmission"
	TypeFourBarLinkage = "transmission_interface/FourBarLinkageTransmission"
)

// Roles expected by the two-actuator variants.
const (
	RoleJoint1    = "joint1"
	RoleJoint2    = "joint2"
	RoleActuator1 = "actuator1"
	RoleActuator2 = "actuator2"
)

// Loader validates a configuration record and builds the matching
// Transmission. On failure it returns a nil Transmission and a *LoadError.
//
// Checks run in a fixed order and the first failure wins: joint count,
// actuator count, parameter parsing, nonzero reductions, role mapping.
type Loader interface {
	Load(info types.TransmissionInfo) (Transmission, error)
}

// LoaderOptions tunes defaults applied to absent parameters.
type LoaderOptions struct {
	// DefaultReduction replaces an absent mechanical reduction. Zero means 1.
	DefaultReduction float64
}

func (o LoaderOptions) defaultReduction() float64 {
	if o.DefaultReduction == 0 {
		return 1
	}
	return o.DefaultReduction
}

// recordParser parses the raw values of one record and keeps the first
// failure, so later fields do not overwrite the reported cause.
type recordParser struct {
	name string
	err  error
}

func (p *recordParser) real(field string, raw any, def float64) float64 {
	if p.err != nil {
		return def
	}
	v, present, err := parseReal(raw)
	if err != nil {
		p.err = loadErrorf(p.name, field, ErrInvalidParameterValue, "%v", err)
		return def
	}
	if !present {
		return def
	}
	return v
}

// hasValue reports whether raw carries a value, parseable or not.
func hasValue(raw any) bool {
	_, ok, err := parseReal(raw)
	return ok || err != nil
}

func (p *recordParser) limits(field string, l *types.Limits) PositionRange {
	if l == nil || p.err != nil {
		return Unbounded()
	}
	if l.Continuous {
		return PositionRange{Continuous: true}
	}
	if !hasValue(l.Lower) && !hasValue(l.Upper) {
		return Unbounded()
	}
	r := PositionRange{
		Lower:   p.real(field+".lower", l.Lower, math.Inf(-1)),
		Upper:   p.real(field+".upper", l.Upper, math.Inf(1)),
		Bounded: true,
	}
	if p.err == nil && r.Lower > r.Upper {
		p.err = loadErrorf(p.name, field, ErrInvalidParameterValue, "lower %g above upper %g", r.Lower, r.Upper)
	}
	return r
}

// reduction is a parsed reduction remembered with its field for the
// nonzero pass.
type reduction struct {
	field string
	value float64
}

func checkReductions(name string, rs ...reduction) error {
	for _, r := range rs {
		if r.value == 0 {
			return loadErrorf(name, r.field, ErrInvalidReductionValue, "reduction must be nonzero")
		}
	}
	return nil
}

func checkCounts(info types.TransmissionInfo, joints, actuators int) error {
	if n := len(info.Joints); n != joints {
		return loadErrorf(info.Name, "joints", ErrWrongJointCount, "got %d, want %d", n, joints)
	}
	if n := len(info.Actuators); n != actuators {
		return loadErrorf(info.Name, "actuators", ErrWrongActuatorCount, "got %d, want %d", n, actuators)
	}
	return nil
}

// roleOrder returns, for each expected role, the index of the descriptor
// carrying it. Every expected role must appear exactly once.
func roleOrder(name, field string, roles []string, want [2]string) ([2]int, error) {
	var order [2]int
	for slot, role := range want {
		found := -1
		for i, r := range roles {
			if r != role {
				continue
			}
			if found >= 0 {
				return order, loadErrorf(name, field, ErrInvalidRoleMapping, "role %q used more than once", role)
			}
			found = i
		}
		if found < 0 {
			return order, loadErrorf(name, field, ErrInvalidRoleMapping, "roles %q, want %q and %q", roles, want[0], want[1])
		}
		order[slot] = found
	}
	return order, nil
}

func jointField(i int, key string) string    { return fmt.Sprintf("joints[%d].%s", i, key) }
func actuatorField(i int, key string) string { return fmt.Sprintf("actuators[%d].%s", i, key) }
