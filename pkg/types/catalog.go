package types

import (
	"errors"
	"time"
)

// Catalog stores transmission configuration records between runs.
// Callers attach to a backend, save and query records, and detach when done.
type Catalog interface {
	// Attach connects the Catalog to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config CatalogConfig) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, every other operation returns ErrCatalogDetached.
	Detach() error

	// Save validates info and stores it. A record with the same name is
	// replaced in place and keeps its ID.
	Save(info TransmissionInfo) (CatalogEntry, error)

	// Get returns the entry with the given ID.
	Get(id string) (CatalogEntry, error)

	// GetByName returns the entry whose record is called name.
	GetByName(name string) (CatalogEntry, error)

	// List returns entries ordered by name. A non-empty typ keeps only
	// records of that transmission type.
	List(typ string) ([]CatalogEntry, error)

	// Delete removes the entry with the given ID.
	Delete(id string) error

	// Import saves every entry found in a JSONL file and returns the count.
	Import(path string) (int, error)

	// Export writes every entry to a JSONL file and returns the count.
	Export(path string) (int, error)
}

// CatalogEntry is a stored record with its catalog bookkeeping.
type CatalogEntry struct {
	ID        string           `json:"transmission_id"`
	Info      TransmissionInfo `json:"info"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Catalog errors.
var (
	ErrCatalogDetached = errors.New("catalog is detached")
	ErrAlreadyAttached = errors.New("catalog is already attached")
	ErrNotFound        = errors.New("entry not found")
	ErrInvalidID       = errors.New("invalid entry ID")
)
