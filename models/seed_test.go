package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedEntries(t *testing.T) {
	entries, err := SeedEntries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	seen := map[uuid.UUID]bool{}
	for _, e := range entries {
		assert.NotEqual(t, uuid.Nil, e.ID)
		assert.False(t, seen[e.ID], "duplicate seed id %s", e.ID)
		seen[e.ID] = true

		assert.NotEmpty(t, e.Title)
		assert.NotEmpty(t, e.Summary)
		_, err := time.Parse("2006-01-02", e.Date)
		assert.NoError(t, err, "seed entry %q has unparseable date %q", e.Title, e.Date)
	}
}
