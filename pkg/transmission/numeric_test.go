package transmission

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReal(t *testing.T) {
	tests := []struct {
		name        string
		raw         any
		want        float64
		wantPresent bool
		wantErr     bool
	}{
		{name: "nil is absent", raw: nil},
		{name: "blank string is absent", raw: "  "},
		{name: "decimal string", raw: "325.949", want: 325.949, wantPresent: true},
		{name: "padded string", raw: "\n 50 \t", want: 50, wantPresent: true},
		{name: "negative string", raw: "-2.5", want: -2.5, wantPresent: true},
		{name: "exponent string", raw: "1e3", want: 1000, wantPresent: true},
		{name: "float64", raw: 0.5, want: 0.5, wantPresent: true},
		{name: "int", raw: 42, want: 42, wantPresent: true},
		{name: "json number", raw: json.Number("7.25"), want: 7.25, wantPresent: true},
		{name: "zero is present", raw: "0", want: 0, wantPresent: true},
		{name: "word", raw: "fifty", wantPresent: true, wantErr: true},
		{name: "nan string", raw: "NaN", wantPresent: true, wantErr: true},
		{name: "inf float", raw: math.Inf(1), wantPresent: true, wantErr: true},
		{name: "bool", raw: true, wantPresent: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, present, err := parseReal(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.wantPresent, present)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(3, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3, -1, 1))
	assert.Equal(t, 0.25, Clamp(0.25, -1, 1))
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{math.Pi, -math.Pi},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, WrapAngle(tt.in), 1e-12, "WrapAngle(%v)", tt.in)
	}
}

func TestPositionRange(t *testing.T) {
	t.Run("zero value is unbounded", func(t *testing.T) {
		var r PositionRange
		assert.True(t, r.Contains(1e9))
		assert.Equal(t, 1e9, r.Apply(1e9))
		assert.Equal(t, "unbounded", r.String())
	})

	t.Run("bounded clamps", func(t *testing.T) {
		r := PositionRange{Lower: -1, Upper: 2, Bounded: true}
		assert.True(t, r.Contains(2))
		assert.False(t, r.Contains(2.1))
		assert.Equal(t, 2.0, r.Apply(5))
		assert.Equal(t, -1.0, r.Apply(-5))
		assert.Equal(t, "[-1, 2]", r.String())
	})

	t.Run("half-open range", func(t *testing.T) {
		r := PositionRange{Lower: 0, Upper: math.Inf(1), Bounded: true}
		assert.True(t, r.Contains(1e300))
		assert.Equal(t, 0.0, r.Apply(-3))
	})

	t.Run("continuous wraps", func(t *testing.T) {
		r := PositionRange{Continuous: true}
		assert.True(t, r.Contains(100))
		assert.InDelta(t, -math.Pi/2, r.Apply(3*math.Pi/2), 1e-12)
		assert.Equal(t, "continuous", r.String())
	})
}
