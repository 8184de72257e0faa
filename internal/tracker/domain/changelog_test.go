package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeLog_AppendOrder(t *testing.T) {
	var c ChangeLog
	c.Append(LogEntry{Description: "first"})
	c.Append(LogEntry{Description: "second"})

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Description)
	assert.Equal(t, "second", entries[1].Description)
}

func TestChangeLog_EntriesReturnsCopy(t *testing.T) {
	var c ChangeLog
	c.Append(LogEntry{Description: "original"})

	entries := c.Entries()
	entries[0].Description = "tampered"

	assert.Equal(t, "original", c.Entries()[0].Description)
}

func TestChangeLog_LogStampsTime(t *testing.T) {
	at := time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC)
	freezeClock(t, at)

	var c ChangeLog
	c.log("did a thing", "Alice <a@example.com>", "because")

	require.Equal(t, 1, c.Len())
	entry := c.Entries()[0]
	assert.Equal(t, at, entry.Time)
	assert.Equal(t, "Alice <a@example.com>", entry.Actor)
	assert.Equal(t, "because", entry.Comment)
	assert.Equal(t, "did a thing", entry.Description)
}
