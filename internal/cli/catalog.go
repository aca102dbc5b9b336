package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/transmission/internal/description"
	"github.com/mesh-intelligence/transmission/internal/sqlite"
	"github.com/mesh-intelligence/transmission/pkg/types"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the local transmission catalog",
	}

	var typeFilter string
	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withCatalog(func(c types.Catalog) error { return a.runCatalogList(cmd, c, typeFilter) })
		},
	}
	list.Flags().StringVar(&typeFilter, "type", "", "only list transmissions of this type")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "import FILE...",
			Short: "Validate descriptions and store their transmissions",
			Long: `Import loads every transmission in the given files and stores the ones that
load cleanly. Description files (.yaml, .yml, .urdf, .xml) are validated
record by record; .jsonl files produced by "catalog export" are imported
as they are. Records replace existing entries of the same name.`,
			Args: cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withCatalog(func(c types.Catalog) error { return a.runCatalogImport(cmd, c, args) })
			},
		},
		list,
		&cobra.Command{
			Use:   "show NAME|ID",
			Short: "Show one catalog entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withCatalog(func(c types.Catalog) error { return a.runCatalogShow(cmd, c, args[0]) })
			},
		},
		&cobra.Command{
			Use:   "delete NAME|ID",
			Short: "Remove one catalog entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withCatalog(func(c types.Catalog) error {
					entry, err := lookupEntry(c, args[0])
					if err != nil {
						return err
					}
					if err := c.Delete(entry.ID); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "deleted %s (%s)\n", entry.Info.Name, entry.ID)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "export FILE",
			Short: "Write every catalog entry to a JSONL file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withCatalog(func(c types.Catalog) error {
					n, err := c.Export(args[0])
					if err != nil {
						return sysError("export: %w", err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "exported %d transmissions to %s\n", n, args[0])
					return nil
				})
			},
		},
	)
	return cmd
}

// withCatalog attaches the catalog for the duration of fn.
func (a *app) withCatalog(fn func(types.Catalog) error) (err error) {
	dataDir, err := a.dataDir()
	if err != nil {
		return err
	}
	c := sqlite.NewCatalog()
	if err := c.Attach(types.CatalogConfig{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
		return sysError("attach catalog: %w", err)
	}
	defer func() {
		if derr := c.Detach(); derr != nil && err == nil {
			err = sysError("detach catalog: %w", derr)
		}
	}()
	return fn(c)
}

func (a *app) runCatalogImport(cmd *cobra.Command, c types.Catalog, args []string) error {
	var (
		saved int
		errs  []error
	)
	for _, path := range args {
		if strings.EqualFold(filepath.Ext(path), ".jsonl") {
			n, err := c.Import(path)
			if err != nil {
				errs = append(errs, err)
			}
			saved += n
			continue
		}

		infos, err := description.ParseFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		loaded, err := a.registry.LoadAll(infos)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
		for _, l := range loaded {
			entry, err := c.Save(l.Info)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			a.log.Debug("transmission saved",
				zap.String("transmission", entry.Info.Name),
				zap.String("id", entry.ID))
			saved++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d transmissions\n", saved)
	return errors.Join(errs...)
}

func (a *app) runCatalogList(cmd *cobra.Command, c types.Catalog, typ string) error {
	entries, err := c.List(typ)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		if entries == nil {
			entries = []types.CatalogEntry{}
		}
		return printJSON(out, entries)
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tUPDATED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Info.Name, e.Info.Type, e.UpdatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func (a *app) runCatalogShow(cmd *cobra.Command, c types.Catalog, key string) error {
	entry, err := lookupEntry(c, key)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return printJSON(out, entry)
	}
	fmt.Fprintf(out, "# %s\n", entry.ID)
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(entry.Info); err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}
	return enc.Close()
}

// lookupEntry finds an entry by name first, then by ID.
func lookupEntry(c types.Catalog, key string) (types.CatalogEntry, error) {
	entry, err := c.GetByName(key)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, types.ErrNotFound) {
		return types.CatalogEntry{}, err
	}
	entry, err = c.Get(key)
	if errors.Is(err, types.ErrNotFound) {
		return types.CatalogEntry{}, fmt.Errorf("no catalog entry named or identified by %q", key)
	}
	return entry, err
}
