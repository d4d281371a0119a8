package client

import (
	"encoding/json"
	"io"
	"strings"
)

// Entry is one journal entry as the feed displays it.
//
// Pending marks an optimistically inserted entry that the server has not
// confirmed yet; such entries carry a local temporary ID which is always
// replaced or removed, never persisted.
type Entry struct {
	ID      string
	Title   string
	Date    string
	Summary string
	Mood    string
	ImgName string
	ImgURL  string
	Pending bool
}

// File describes an image attached to a create or update, with the metadata
// the validator needs up front.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// wireEntry is the JSON shape entries travel in. Servers disagree on the
// identifier key: the Go server emits "id", Mongo-era servers "_id" (which
// the bundled seed data even held as a number), so both are accepted.
type wireEntry struct {
	ID      string          `json:"id,omitempty"`
	MongoID json.RawMessage `json:"_id,omitempty"`
	Title   string          `json:"title"`
	Date    string          `json:"date"`
	Summary string          `json:"summary"`
	Mood    string          `json:"mood,omitempty"`
	ImgName string          `json:"img_name,omitempty"`
	ImgURL  string          `json:"img_url,omitempty"`
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var w wireEntry
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	id := w.ID
	if len(w.MongoID) > 0 {
		id = strings.Trim(string(w.MongoID), `"`)
	}
	*e = Entry{
		ID:      id,
		Title:   w.Title,
		Date:    w.Date,
		Summary: w.Summary,
		Mood:    w.Mood,
		ImgName: w.ImgName,
		ImgURL:  w.ImgURL,
	}
	return nil
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireEntry{
		ID:      e.ID,
		Title:   e.Title,
		Date:    e.Date,
		Summary: e.Summary,
		Mood:    e.Mood,
		ImgName: e.ImgName,
		ImgURL:  e.ImgURL,
	})
}
