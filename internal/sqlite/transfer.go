package sqlite

import (
	"encoding/json"
	"time"

	"github.com/mesh-intelligence/transmission/pkg/types"
)

// Export writes every entry to path as JSONL.
func (c *Catalog) Export(path string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.attached {
		return 0, types.ErrCatalogDetached
	}
	return c.exportLocked(path)
}

// Import saves the records found in a JSONL file. Each line is either a
// catalog entry or a bare transmission record; records are matched to
// existing entries by name. Malformed or invalid lines are skipped.
func (c *Catalog) Import(path string) (int, error) {
	records, err := readJSONL(path)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.attached {
		return 0, types.ErrCatalogDetached
	}

	now := time.Now().UTC()
	n := 0
	for _, rec := range records {
		info, ok := decodeRecord(rec)
		if !ok {
			continue
		}
		if _, err := c.saveLocked(info, now); err != nil {
			continue
		}
		n++
	}
	if n > 0 {
		if err := c.persistLocked(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// decodeRecord accepts an exported entry or a plain TransmissionInfo.
func decodeRecord(rec json.RawMessage) (types.TransmissionInfo, bool) {
	var entry types.CatalogEntry
	if err := json.Unmarshal(rec, &entry); err == nil && entry.Info.Name != "" {
		return entry.Info, true
	}
	var info types.TransmissionInfo
	if err := json.Unmarshal(rec, &info); err == nil && info.Name != "" {
		return info, true
	}
	return types.TransmissionInfo{}, false
}
