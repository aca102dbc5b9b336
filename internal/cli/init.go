package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/transmission/internal/paths"
	"github.com/mesh-intelligence/transmission/internal/sqlite"
	"github.com/mesh-intelligence/transmission/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration file and catalog",
		Long:  "Create the configuration and data directories, write a default config.yaml\nif none exists, and initialize the transmission catalog.",
		Args:  cobra.NoArgs,
		RunE:  a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, _ []string) error {
	dataDir, err := a.dataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.settings.ConfigDir, 0o755); err != nil {
		return sysError("create config directory: %w", err)
	}
	configPath := filepath.Join(a.settings.ConfigDir, paths.ConfigFileName)
	created, err := writeConfigIfMissing(configPath, dataDir)
	if err != nil {
		return sysError("write config: %w", err)
	}
	if created {
		a.log.Info("wrote default configuration", zap.String("path", configPath))
	}

	catalog := sqlite.NewCatalog()
	if err := catalog.Attach(types.CatalogConfig{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
		return sysError("initialize catalog: %w", err)
	}
	if err := catalog.Detach(); err != nil {
		return sysError("finalize catalog: %w", err)
	}

	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), map[string]string{
			"config": configPath,
			"data":   dataDir,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "config: %s\ndata:   %s\n", configPath, dataDir)
	return nil
}
