package domain

import "time"

// timeNow is the clock used for changelog timestamps, release times and id
// generation. Overridable in tests.
var timeNow = time.Now

// LogEntry is a single timestamped, actor-attributed record of a state
// change. Entries are never edited or removed once appended.
type LogEntry struct {
	Time        time.Time `yaml:"time"`
	Actor       string    `yaml:"actor"`
	Comment     string    `yaml:"comment"`
	Description string    `yaml:"description"`
}

// ChangeLog is the append-only audit trail owned by loggable entities
// (Issue, Release).
type ChangeLog struct {
	entries []LogEntry
}

// Append adds an entry to the log.
func (c *ChangeLog) Append(e LogEntry) {
	c.entries = append(c.entries, e)
}

// Entries returns a copy of the log in append order.
func (c *ChangeLog) Entries() []LogEntry {
	out := make([]LogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len reports the number of entries in the log.
func (c *ChangeLog) Len() int {
	return len(c.entries)
}

// log records a state-changing action, stamped with the current time.
func (c *ChangeLog) log(description, actor, comment string) {
	c.Append(LogEntry{
		Time:        timeNow(),
		Actor:       actor,
		Comment:     comment,
		Description: description,
	})
}
