// Package cli implements the transmissionctl command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/transmission/internal/logging"
	"github.com/mesh-intelligence/transmission/internal/paths"
	"github.com/mesh-intelligence/transmission/pkg/registry"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the exit code a failure should produce.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// sysError marks err as an environment failure (exit code 2).
func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// app is the state shared by one command invocation.
type app struct {
	flags    rootFlags
	settings settings
	log      *zap.Logger
	registry *registry.Registry
}

// NewRootCmd creates the top-level "transmissionctl" command with global
// flags and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "transmissionctl",
		Short: "Inspect, validate and apply robot transmission configurations",
		Long: "transmissionctl loads mechanical transmission descriptions (YAML or URDF),\n" +
			"validates them, converts samples between actuator and joint space, and\n" +
			"keeps a local catalog of known transmissions.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "catalog data directory (default: platform data dir)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(a),
		newTypesCmd(a),
		newValidateCmd(a),
		newConvertCmd(a),
		newCatalogCmd(a),
	)
	return root
}

// setup resolves configuration and builds the logger and registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}
	s, err := loadSettings(configDir)
	if err != nil {
		return err
	}
	if a.flags.logLevel != "" {
		s.Logging.Level = a.flags.logLevel
	}
	a.settings = s

	log, err := logging.New(s.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log

	a.registry, err = registry.New(
		registry.WithLogger(log),
		registry.WithDefaultReduction(s.DefaultReduction),
	)
	if err != nil {
		return err
	}
	log.Debug("configuration loaded",
		zap.String("config_dir", s.ConfigDir),
		zap.Float64("default_reduction", s.DefaultReduction))
	return nil
}

// dataDir resolves the catalog directory for commands that need one.
func (a *app) dataDir() (string, error) {
	dir, err := paths.ResolveDataDir(a.flags.dataDir, a.settings.DataDir)
	if err != nil {
		return "", sysError("resolve data dir: %w", err)
	}
	return dir, nil
}

// Run executes the command tree with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// Execute runs the CLI against the process arguments and exits.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
