package journal

import "time"

// JournalEntry is a free-text reflection. Entries are immutable once
// written: they are only ever created and read back.
type JournalEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood"`
	Tags      []string  `json:"tags"`
}
