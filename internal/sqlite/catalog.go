// Package sqlite implements the transmission catalog on SQLite.
//
// transmissions.jsonl in the data directory is the source of truth. On
// Attach the database is recreated and loaded from it; every write updates
// SQLite and then rewrites the JSONL file atomically.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/transmission/pkg/types"
)

// Compile-time interface check.
var _ types.Catalog = (*Catalog)(nil)

// Catalog implements types.Catalog.
type Catalog struct {
	mu       sync.RWMutex
	attached bool
	config   types.CatalogConfig
	db       *sql.DB
}

// NewCatalog creates a detached catalog; call Attach to use it.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Attach opens the catalog in config.DataDir, creating it if needed.
func (c *Catalog) Attach(config types.CatalogConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// The database is a cache; start from a fresh schema every time.
	dbPath := filepath.Join(dataDir, "catalog.db")
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	jsonlPath := filepath.Join(dataDir, transmissionsJSONL)
	if _, err := os.Stat(jsonlPath); errors.Is(err, os.ErrNotExist) {
		if err := writeJSONL(jsonlPath, nil); err != nil {
			db.Close()
			return err
		}
	}

	c.db = db
	c.config = config
	c.config.DataDir = dataDir

	if err := c.loadJSONL(jsonlPath); err != nil {
		db.Close()
		c.db = nil
		return fmt.Errorf("load JSONL: %w", err)
	}

	c.attached = true
	return nil
}

// Detach closes the database. It is idempotent.
func (c *Catalog) Detach() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.attached {
		return nil
	}
	if err := c.db.Close(); err != nil {
		return err
	}
	c.db = nil
	c.attached = false
	return nil
}

// Save stores info, replacing any record with the same name.
func (c *Catalog) Save(info types.TransmissionInfo) (types.CatalogEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.attached {
		return types.CatalogEntry{}, types.ErrCatalogDetached
	}
	entry, err := c.saveLocked(info, time.Now().UTC())
	if err != nil {
		return types.CatalogEntry{}, err
	}
	if err := c.persistLocked(); err != nil {
		return types.CatalogEntry{}, err
	}
	return entry, nil
}

// Get returns the entry with the given ID.
func (c *Catalog) Get(id string) (types.CatalogEntry, error) {
	if id == "" {
		return types.CatalogEntry{}, types.ErrInvalidID
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.attached {
		return types.CatalogEntry{}, types.ErrCatalogDetached
	}
	return c.queryOne("SELECT "+entryColumns+" FROM transmissions WHERE transmission_id = ?", id)
}

// GetByName returns the entry whose record is called name.
func (c *Catalog) GetByName(name string) (types.CatalogEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.attached {
		return types.CatalogEntry{}, types.ErrCatalogDetached
	}
	return c.queryOne("SELECT "+entryColumns+" FROM transmissions WHERE name = ?", name)
}

// List returns entries ordered by name, optionally restricted to one type.
func (c *Catalog) List(typ string) ([]types.CatalogEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.attached {
		return nil, types.ErrCatalogDetached
	}
	query := "SELECT " + entryColumns + " FROM transmissions"
	var args []any
	if typ != "" {
		query += " WHERE type = ?"
		args = append(args, typ)
	}
	query += " ORDER BY name"
	return c.queryAll(query, args...)
}

// Delete removes the entry with the given ID.
func (c *Catalog) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.attached {
		return types.ErrCatalogDetached
	}
	res, err := c.db.Exec("DELETE FROM transmissions WHERE transmission_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return c.persistLocked()
}

// generateID returns a new UUID v7.
func generateID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}
	return id.String(), nil
}
