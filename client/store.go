package client

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Store owns the ordered in-memory feed of journal entries and reconciles it
// against the server.
//
// The feed is always sorted by date descending, with ties keeping their
// relative insertion order; entries whose dates don't parse sort as oldest.
// Adds are optimistic: a pending entry with a temporary identifier is
// visible while the create call is in flight, then replaced by the
// server-confirmed entry or rolled back. Edits and deletes mutate the feed
// only after the server confirms.
//
// A mutex guards the collection so snapshots may be taken from other
// goroutines; concurrent mutations of the same entry are not coordinated
// beyond that (last response wins).
type Store struct {
	client *Client

	mu      sync.Mutex
	entries []Entry
}

// NewStore builds a Store over the given client. Seed entries, when
// provided, populate the feed until the first successful Load; they stay in
// place when loading fails.
func NewStore(c *Client, seed []Entry) *Store {
	s := &Store{
		client:  c,
		entries: append([]Entry(nil), seed...),
	}
	sortEntries(s.entries)
	return s
}

// Entries returns a snapshot of the feed in display order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

// Load replaces the feed with the server's entries. On failure the feed is
// left exactly as it was (seed or previously loaded data keeps showing) and
// the error is returned. A successful empty result empties the feed; that is
// an empty feed, not an error.
func (s *Store) Load(ctx context.Context) error {
	fetched, err := s.client.List(ctx)
	if err != nil {
		return err
	}
	// A cancelled load discards its result rather than applying it late.
	if err := ctx.Err(); err != nil {
		return err
	}

	sortEntries(fetched)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = fetched
	return nil
}

// Add validates the fields and, when valid, optimistically inserts a pending
// entry while the create call runs. On success the pending entry is replaced
// by the server-confirmed one; on failure it is removed, leaving the feed
// identical to its pre-submission state. The returned error is a
// *ValidationError for local or server field rejections.
func (s *Store) Add(ctx context.Context, f Fields, file *File) (*Entry, error) {
	if fieldErrs := Validate(f, file); len(fieldErrs) > 0 {
		return nil, &ValidationError{Message: "Please fix the highlighted errors.", Fields: fieldErrs}
	}

	temp := Entry{
		ID:      tempID(),
		Title:   f.Title,
		Date:    f.Date,
		Summary: f.Summary,
		Mood:    f.Mood,
		ImgName: f.ImgName,
		Pending: true,
	}

	s.mu.Lock()
	s.entries = append(s.entries, temp)
	sortEntries(s.entries)
	s.mu.Unlock()

	saved, err := s.client.Create(ctx, f, file)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(temp.ID)
	if err != nil {
		return nil, err
	}

	s.entries = append(s.entries, *saved)
	sortEntries(s.entries)
	return saved, nil
}

// Edit validates the fields and issues the update; the local entry is only
// mutated once the server confirms, so a failed edit never diverges the
// visible record from server truth.
func (s *Store) Edit(ctx context.Context, id string, f Fields, file *File) (*Entry, error) {
	if fieldErrs := Validate(f, file); len(fieldErrs) > 0 {
		return nil, &ValidationError{Message: "Please fix the highlighted errors.", Fields: fieldErrs}
	}

	saved, err := s.client.Update(ctx, id, f, file)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i] = *saved
			break
		}
	}
	sortEntries(s.entries)
	return saved, nil
}

// Remove issues the delete and drops the entry from the feed only after the
// server confirms; on failure the entry stays visible.
func (s *Store) Remove(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
	return nil
}

func (s *Store) removeLocked(id string) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// tempID generates a local identifier for a pending entry. The prefix keeps
// it from ever colliding with a server-assigned one.
func tempID() string {
	return "temp-" + uuid.NewString()
}

// sortEntries orders newest first; the sort is stable so equal dates keep
// their relative insertion order, and unparseable dates (the zero time) end
// up last.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return parseDate(entries[i].Date).After(parseDate(entries[j].Date))
	})
}
