package transmission

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// parseReal converts a loosely typed configuration scalar to a finite
// float64. A nil value or a blank string is reported as absent.
func parseReal(raw any) (value float64, present bool, err error) {
	switch v := raw.(type) {
	case nil:
		return 0, false, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false, nil
		}
		raw = s
	case json.Number:
		raw = v.String()
	case bool:
		return 0, true, fmt.Errorf("not a number: %v", v)
	}

	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, true, fmt.Errorf("not a number: %v", raw)
	}
	if !isFinite(f) {
		return 0, true, fmt.Errorf("not finite: %v", raw)
	}
	return f, true, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// validReduction reports whether r can be divided by.
func validReduction(r float64) bool {
	return r != 0 && isFinite(r)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// WrapAngle maps an angle in radians to [-pi, pi).
func WrapAngle(a float64) float64 {
	w := math.Mod(a+math.Pi, 2*math.Pi)
	if w < 0 {
		w += 2 * math.Pi
	}
	return w - math.Pi
}

// PositionRange is a joint position range. The zero value is unbounded.
type PositionRange struct {
	Lower, Upper float64
	Bounded      bool
	// Continuous joints have no range; positions wrap to [-pi, pi).
	Continuous bool
}

// Unbounded returns a range that accepts every position.
func Unbounded() PositionRange {
	return PositionRange{}
}

// Contains reports whether p lies inside the range.
func (r PositionRange) Contains(p float64) bool {
	if !r.Bounded || r.Continuous {
		return true
	}
	return p >= r.Lower && p <= r.Upper
}

// Apply brings p into the range: wrapped for continuous joints, clamped for
// bounded ones, unchanged otherwise.
func (r PositionRange) Apply(p float64) float64 {
	switch {
	case r.Continuous:
		return WrapAngle(p)
	case r.Bounded:
		return Clamp(p, r.Lower, r.Upper)
	default:
		return p
	}
}

func (r PositionRange) String() string {
	switch {
	case r.Continuous:
		return "continuous"
	case r.Bounded:
		return fmt.Sprintf("[%g, %g]", r.Lower, r.Upper)
	default:
		return "unbounded"
	}
}
