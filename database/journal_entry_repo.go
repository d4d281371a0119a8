package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sHiNy2005-beep/journalreact/models"
)

type JournalEntryRepo struct {
	db *gorm.DB
}

func NewJournalEntryRepo(db *gorm.DB) *JournalEntryRepo {
	return &JournalEntryRepo{db}
}

// FindAll returns all journal entries, newest first.
func (r *JournalEntryRepo) FindAll() ([]*models.JournalEntry, error) {
	var entries []*models.JournalEntry
	err := r.db.Order("date DESC, date_added DESC").Find(&entries).Error
	return entries, err
}

// FindByID returns a journal entry by its ID, or nil when no row matches.
func (r *JournalEntryRepo) FindByID(id uuid.UUID) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Add inserts a new journal entry into the database
func (r *JournalEntryRepo) Add(entry *models.JournalEntry) error {
	return r.db.Create(entry).Error
}

// Update updates an existing journal entry in the database
func (r *JournalEntryRepo) Update(entry *models.JournalEntry) error {
	return r.db.Save(entry).Error
}

// Delete removes a journal entry from the database by id
func (r *JournalEntryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.JournalEntry{}, "id = ?", id).Error
}

// Count returns the number of stored journal entries.
func (r *JournalEntryRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.JournalEntry{}).Count(&count).Error
	return count, err
}
