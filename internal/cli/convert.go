package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/transmission/internal/description"
	"github.com/mesh-intelligence/transmission/pkg/transmission"
	"github.com/mesh-intelligence/transmission/pkg/types"
)

// Conversion directions.
const (
	dirActuatorToJoint = "actuator-to-joint"
	dirJointToActuator = "joint-to-actuator"
)

type convertFlags struct {
	transmission string
	direction    string
	position     []float64
	velocity     []float64
	effort       []float64
	limit        bool
}

// conversion is the JSON form of a convert result.
type conversion struct {
	Transmission string    `json:"transmission"`
	Type         string    `json:"type"`
	Direction    string    `json:"direction"`
	Position     []float64 `json:"position,omitempty"`
	Velocity     []float64 `json:"velocity,omitempty"`
	Effort       []float64 `json:"effort,omitempty"`
}

func newConvertCmd(a *app) *cobra.Command {
	var f convertFlags
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert samples between actuator and joint space",
		Long: `Convert loads one transmission from a description file and maps the given
samples through it. Each quantity takes one value per actuator (or joint,
for joint-to-actuator).

With --limit, joint positions are clamped to the joint limits, or wrapped
for continuous joints: on the output for actuator-to-joint and on the
input for joint-to-actuator.

Example:
  transmissionctl convert robot.urdf --transmission transmission1 --position 325.949
  transmissionctl convert arm.yaml --transmission wrist_diff \
      --direction joint-to-actuator --velocity 0.5,-0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVarP(&f.transmission, "transmission", "t", "", "transmission name (required when the file declares several)")
	cmd.Flags().StringVarP(&f.direction, "direction", "d", dirActuatorToJoint, "actuator-to-joint or joint-to-actuator")
	cmd.Flags().Float64SliceVar(&f.position, "position", nil, "positions, comma separated")
	cmd.Flags().Float64SliceVar(&f.velocity, "velocity", nil, "velocities, comma separated")
	cmd.Flags().Float64SliceVar(&f.effort, "effort", nil, "efforts, comma separated")
	cmd.Flags().BoolVar(&f.limit, "limit", false, "enforce joint position limits")
	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, path string, f convertFlags) error {
	if f.direction != dirActuatorToJoint && f.direction != dirJointToActuator {
		return fmt.Errorf("invalid direction %q (valid: %s, %s)", f.direction, dirActuatorToJoint, dirJointToActuator)
	}
	if f.position == nil && f.velocity == nil && f.effort == nil {
		return fmt.Errorf("nothing to convert: pass --position, --velocity or --effort")
	}

	info, err := selectRecord(path, f.transmission)
	if err != nil {
		return err
	}
	t, err := a.registry.Load(info)
	if err != nil {
		return err
	}

	in := f.direction == dirActuatorToJoint
	width := t.NumJoints()
	if in {
		width = t.NumActuators()
	}
	for name, v := range map[string][]float64{"position": f.position, "velocity": f.velocity, "effort": f.effort} {
		if v != nil && len(v) != width {
			return fmt.Errorf("--%s needs %d values, got %d", name, width, len(v))
		}
	}

	res := conversion{Transmission: info.Name, Type: info.Type, Direction: f.direction}
	limits := transmission.JointLimits(t)
	if in {
		act := types.ActuatorData{Position: f.position, Velocity: f.velocity, Effort: f.effort}
		jnt := outputBuffers(f, t.NumJoints())
		transmission.ActuatorToJoint(t, &act, &jnt)
		if f.limit {
			applyLimits(limits, jnt.Position)
		}
		res.Position, res.Velocity, res.Effort = jnt.Position, jnt.Velocity, jnt.Effort
	} else {
		if f.limit {
			applyLimits(limits, f.position)
		}
		jnt := types.JointData{Position: f.position, Velocity: f.velocity, Effort: f.effort}
		act := types.ActuatorData(outputBuffers(f, t.NumActuators()))
		transmission.JointToActuator(t, &jnt, &act)
		res.Position, res.Velocity, res.Effort = act.Position, act.Velocity, act.Effort
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return printJSON(out, res)
	}
	fmt.Fprintf(out, "%s (%s) %s\n", res.Transmission, res.Type, res.Direction)
	for _, q := range []struct {
		name string
		v    []float64
	}{{"position", res.Position}, {"velocity", res.Velocity}, {"effort", res.Effort}} {
		if q.v != nil {
			fmt.Fprintf(out, "  %-8s %s\n", q.name+":", formatValues(q.v))
		}
	}
	return nil
}

// selectRecord parses path and picks the named record, or the only one.
func selectRecord(path, name string) (types.TransmissionInfo, error) {
	infos, err := description.ParseFile(path)
	if err != nil {
		return types.TransmissionInfo{}, err
	}
	if name != "" {
		return description.Find(infos, name)
	}
	switch len(infos) {
	case 0:
		return types.TransmissionInfo{}, fmt.Errorf("%s declares no transmissions", path)
	case 1:
		return infos[0], nil
	default:
		names := make([]string, len(infos))
		for i, info := range infos {
			names[i] = info.Name
		}
		return types.TransmissionInfo{}, fmt.Errorf("%s declares %d transmissions, pick one with --transmission (%s)",
			path, len(infos), strings.Join(names, ", "))
	}
}

// outputBuffers allocates n slots for each quantity requested in f.
func outputBuffers(f convertFlags, n int) types.JointData {
	var d types.JointData
	if f.position != nil {
		d.Position = make([]float64, n)
	}
	if f.velocity != nil {
		d.Velocity = make([]float64, n)
	}
	if f.effort != nil {
		d.Effort = make([]float64, n)
	}
	return d
}

func applyLimits(limits []transmission.PositionRange, positions []float64) {
	for i := range positions {
		positions[i] = limits[i].Apply(positions[i])
	}
}

func formatValues(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return strings.Join(parts, " ")
}
