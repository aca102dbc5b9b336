package types

import "errors"

// CatalogConfig holds backend selection and parameters for Catalog.Attach.
type CatalogConfig struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Supported catalog backend names.
const (
	BackendSQLite = "sqlite"
)

// Catalog configuration errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the CatalogConfig is well-formed. It returns a
// sentinel error from this package on failure.
func (c CatalogConfig) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}
