// Package sqlite provides the public constructor for the SQLite
// transmission catalog while keeping its implementation internal.
package sqlite

import (
	"github.com/mesh-intelligence/transmission/internal/sqlite"
	"github.com/mesh-intelligence/transmission/pkg/types"
)

// NewCatalog creates a new SQLite catalog. The catalog is not attached;
// call Attach with a CatalogConfig to initialize.
//
// Example:
//
//	catalog := sqlite.NewCatalog()
//	err := catalog.Attach(types.CatalogConfig{
//	    Backend: types.BackendSQLite,
//	    DataDir: "/var/lib/transmission",
//	})
//	defer catalog.Detach()
func NewCatalog() types.Catalog {
	return sqlite.NewCatalog()
}
