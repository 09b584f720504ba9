package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditableFields(t *testing.T) {
	s := &Shift{
		ID:          "shift-1",
		Title:       "Gate",
		Description: "Morning gate watch",
		Date:        time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		StartTime:   "08:00",
		EndTime:     "12:00",
		Location:    "Front gate",
		Slots:       []Slot{openSlot("a"), takenSlot("b", "memberM")},
		CreatedBy:   "adminA",
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	updates := editableFields(s)
	require.Len(t, updates, 7)

	paths := make(map[string]any, len(updates))
	for _, u := range updates {
		paths[u.Path] = u.Value
	}

	// An edit never rewrites identity or provenance.
	assert.NotContains(t, paths, "id")
	assert.NotContains(t, paths, "createdBy")
	assert.NotContains(t, paths, "createdAt")

	assert.Equal(t, "Gate", paths["title"])
	assert.Equal(t, "Morning gate watch", paths["description"])
	assert.Equal(t, s.Date, paths["date"])
	assert.Equal(t, "08:00", paths["startTime"])
	assert.Equal(t, "12:00", paths["endTime"])
	assert.Equal(t, "Front gate", paths["location"])
	assert.Equal(t, s.Slots, paths["slots"])
}
