package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/transmission/pkg/types"
)

const entryColumns = "transmission_id, info, created_at, updated_at"

// saveLocked upserts info by name. The caller holds c.mu for writing.
func (c *Catalog) saveLocked(info types.TransmissionInfo, now time.Time) (types.CatalogEntry, error) {
	if err := info.Validate(); err != nil {
		return types.CatalogEntry{}, err
	}

	entry, err := c.queryOne("SELECT "+entryColumns+" FROM transmissions WHERE name = ?", info.Name)
	switch {
	case errors.Is(err, types.ErrNotFound):
		id, err := generateID()
		if err != nil {
			return types.CatalogEntry{}, err
		}
		entry = types.CatalogEntry{ID: id, CreatedAt: now}
	case err != nil:
		return types.CatalogEntry{}, err
	}
	entry.Info = info
	entry.UpdatedAt = now
	return entry, c.upsertLocked(entry)
}

func (c *Catalog) upsertLocked(entry types.CatalogEntry) error {
	data, err := json.Marshal(entry.Info)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", entry.Info.Name, err)
	}
	_, err = c.db.Exec(
		`INSERT INTO transmissions (transmission_id, name, type, info, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(transmission_id) DO UPDATE SET
    name = excluded.name,
    type = excluded.type,
    info = excluded.info,
    updated_at = excluded.updated_at`,
		entry.ID,
		entry.Info.Name,
		entry.Info.Type,
		string(data),
		entry.CreatedAt.Format(time.RFC3339Nano),
		entry.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving %s: %w", entry.Info.Name, err)
	}
	return nil
}

func (c *Catalog) queryOne(query string, args ...any) (types.CatalogEntry, error) {
	entry, err := scanEntry(c.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return types.CatalogEntry{}, types.ErrNotFound
	}
	return entry, err
}

func (c *Catalog) queryAll(query string, args ...any) ([]types.CatalogEntry, error) {
	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transmissions: %w", err)
	}
	defer rows.Close()

	var entries []types.CatalogEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEntry hydrates one row selected with entryColumns.
func scanEntry(row rowScanner) (types.CatalogEntry, error) {
	var (
		entry            types.CatalogEntry
		info             string
		created, updated string
	)
	if err := row.Scan(&entry.ID, &info, &created, &updated); err != nil {
		return types.CatalogEntry{}, err
	}
	if err := json.Unmarshal([]byte(info), &entry.Info); err != nil {
		return types.CatalogEntry{}, fmt.Errorf("decoding %s: %w", entry.ID, err)
	}
	var err error
	if entry.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return types.CatalogEntry{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if entry.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return types.CatalogEntry{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return entry, nil
}

// persistLocked rewrites transmissions.jsonl from the database.
func (c *Catalog) persistLocked() error {
	_, err := c.exportLocked(filepath.Join(c.config.DataDir, transmissionsJSONL))
	return err
}

func (c *Catalog) exportLocked(path string) (int, error) {
	entries, err := c.queryAll("SELECT " + entryColumns + " FROM transmissions ORDER BY name")
	if err != nil {
		return 0, err
	}
	records := make([]json.RawMessage, 0, len(entries))
	for _, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return 0, fmt.Errorf("encoding %s: %w", entry.ID, err)
		}
		records = append(records, data)
	}
	if err := writeJSONL(path, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// loadJSONL fills the fresh database from the catalog file. Lines that
// decode but fail validation, or repeat an ID or name, are skipped like
// malformed ones.
func (c *Catalog) loadJSONL(path string) error {
	records, err := readJSONL(path)
	if err != nil {
		return err
	}
	ids := make(map[string]bool, len(records))
	names := make(map[string]bool, len(records))
	for _, rec := range records {
		var entry types.CatalogEntry
		if err := json.Unmarshal(rec, &entry); err != nil || entry.ID == "" || entry.Info.Validate() != nil {
			continue
		}
		if ids[entry.ID] || names[entry.Info.Name] {
			continue
		}
		ids[entry.ID] = true
		names[entry.Info.Name] = true
		if err := c.upsertLocked(entry); err != nil {
			return err
		}
	}
	return nil
}
