package database

import (
	"gorm.io/gorm"

	"github.com/sHiNy2005-beep/journalreact/models"
)

type Database struct {
	journalEntryRepo *JournalEntryRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		journalEntryRepo: NewJournalEntryRepo(db),
	}
}

func (d Database) JournalEntryRepo() *JournalEntryRepo {
	return d.journalEntryRepo
}

// Migrate creates or updates the schema for all models.
func (d Database) Migrate() error {
	return d.journalEntryRepo.db.AutoMigrate(&models.JournalEntry{})
}

// SeedIfEmpty inserts the bundled starter entries when the journal table has
// no rows, so a fresh deployment serves a non-empty feed.
func (d Database) SeedIfEmpty() (int, error) {
	count, err := d.journalEntryRepo.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	entries, err := models.SeedEntries()
	if err != nil {
		return 0, err
	}
	for i := range entries {
		if err := d.journalEntryRepo.Add(&entries[i]); err != nil {
			return i, err
		}
	}
	return len(entries), nil
}
