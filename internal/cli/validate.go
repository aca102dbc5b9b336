package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/transmission/internal/description"
)

// validation is the outcome for one record, or for a file that failed to parse.
type validation struct {
	File      string `json:"file"`
	Name      string `json:"name,omitempty"`
	Type      string `json:"type,omitempty"`
	Joints    int    `json:"joints,omitempty"`
	Actuators int    `json:"actuators,omitempty"`
	Error     string `json:"error,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Load every transmission in the given descriptions",
		Long: `Validate parses each description file (.yaml, .yml, .urdf, .xml) and loads
every transmission it declares. Records that fail are reported with the
offending field. The exit code is 1 if any record fails.

Example:
  transmissionctl validate robot.urdf
  transmissionctl validate --json arm.yaml gripper.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runValidate,
	}
}

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	var (
		results []validation
		failed  int
	)
	for _, path := range args {
		infos, err := description.ParseFile(path)
		if err != nil {
			results = append(results, validation{File: path, Error: err.Error()})
			failed++
			continue
		}
		for _, info := range infos {
			r := validation{
				File:      path,
				Name:      info.Name,
				Type:      info.Type,
				Joints:    len(info.Joints),
				Actuators: len(info.Actuators),
			}
			if _, err := a.registry.Load(info); err != nil {
				a.log.Warn("transmission rejected",
					zap.String("file", path),
					zap.String("transmission", info.Name),
					zap.Error(err))
				r.Error = err.Error()
				failed++
			}
			results = append(results, r)
		}
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		if err := printJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			switch {
			case r.Error != "" && r.Name == "":
				fmt.Fprintf(out, "FAIL  %s: %s\n", r.File, r.Error)
			case r.Error != "":
				fmt.Fprintf(out, "FAIL  %s: %s\n", r.Name, r.Error)
			default:
				fmt.Fprintf(out, "ok    %s (%s, %d joints, %d actuators)\n", r.Name, r.Type, r.Joints, r.Actuators)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}
