package models

import (
	_ "embed"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

//go:embed seed_entries.json
var seedEntriesJSON []byte

// SeedEntries returns the bundled starter entries. They are inserted when the
// journal table is empty so a fresh deployment has a non-empty feed.
func SeedEntries() ([]JournalEntry, error) {
	var entries []JournalEntry
	if err := json.Unmarshal(seedEntriesJSON, &entries); err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range entries {
		entries[i].ID = uuid.New()
		entries[i].DateAdded = now
	}
	return entries, nil
}
