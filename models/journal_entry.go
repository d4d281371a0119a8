package models

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry represents a single journal entry in the feed.
//
// Date is kept as an ISO "YYYY-MM-DD" string rather than a time.Time so the
// value round-trips unchanged between the API, the database, and the
// front-end date input.
type JournalEntry struct {
	ID         uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title      string     `json:"title" db:"title" gorm:"type:text;not null"`
	Date       string     `json:"date" db:"date" gorm:"type:text;not null"`
	Summary    string     `json:"summary" db:"summary" gorm:"type:text;not null"`
	Mood       string     `json:"mood,omitempty" db:"mood" gorm:"type:text"`
	ImgName    string     `json:"img_name,omitempty" db:"img_name" gorm:"type:text"`
	DateAdded  time.Time  `json:"dateAdded" db:"date_added" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	DateEdited *time.Time `json:"dateEdited,omitempty" db:"date_edited" gorm:"type:timestamp"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
