package journal

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pebbleway/pebbleway-api/internal/config"
	"github.com/pebbleway/pebbleway-api/internal/store"
)

const dateLayout = "2006-01-02"

// Repository owns the journal collection, newest entry first. An entry with
// no content and no mood is not worth keeping: Create returns (nil, nil)
// and persists nothing in that case.
type Repository interface {
	List() []JournalEntry
	Create(content string, mood Mood, tags []string) (*JournalEntry, error)
	Search(term string) []JournalEntry
	Stats() StatsResponse
	Subscribe(fn func())
}

type repository struct {
	st  store.Store
	now func() time.Time

	mu          sync.RWMutex
	entries     []JournalEntry
	subscribers []func()
}

func NewRepository(st store.Store) Repository {
	return newRepository(st, time.Now)
}

func newRepository(st store.Store, now func() time.Time) *repository {
	r := &repository{st: st, now: now}
	r.hydrate()
	return r
}

func (r *repository) hydrate() {
	data, err := r.st.Load(store.JournalKey)
	if err != nil {
		config.Logger().WithError(err).Warn("Failed to load journal, starting empty")
		return
	}
	if data == nil {
		return
	}
	var entries []JournalEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		config.Logger().WithError(err).Warn("Stored journal is unreadable, starting empty")
		return
	}
	r.entries = entries
}

func (r *repository) persist(next []JournalEntry) error {
	data, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := r.st.Save(store.JournalKey, data); err != nil {
		return err
	}
	r.entries = next
	return nil
}

// notify must be called without the write lock held, so subscribers are
// free to read the repository from their callback.
func (r *repository) notify() {
	r.mu.RLock()
	subs := make([]func(), len(r.subscribers))
	copy(subs, r.subscribers)
	r.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}

func (r *repository) Subscribe(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers = append(r.subscribers, fn)
}

func (r *repository) List() []JournalEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]JournalEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *repository) Create(content string, mood Mood, tags []string) (*JournalEntry, error) {
	if strings.TrimSpace(content) == "" && mood == "" {
		return nil, nil
	}

	r.mu.Lock()
	now := r.now()
	entry := JournalEntry{
		ID:        uuid.NewString(),
		Date:      now.Format(dateLayout),
		Timestamp: now,
		Content:   content,
		Mood:      mood,
		Tags:      tags,
	}

	// Newest first.
	next := make([]JournalEntry, 0, len(r.entries)+1)
	next = append(next, entry)
	next = append(next, r.entries...)

	err := r.persist(next)
	r.mu.Unlock()

	if err != nil {
		return nil, err
	}
	r.notify()
	return &entry, nil
}

func (r *repository) Search(term string) []JournalEntry {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return r.List()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(term)
	var out []JournalEntry
	for _, e := range r.entries {
		if strings.Contains(strings.ToLower(e.Content), lower) ||
			strings.Contains(strings.ToLower(string(e.Mood)), lower) ||
			strings.Contains(e.Date, term) {
			out = append(out, e)
		}
	}
	return out
}

func (r *repository) Stats() StatsResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := make(map[string]struct{}, len(r.entries))
	for _, e := range r.entries {
		days[e.Date] = struct{}{}
	}
	return StatsResponse{
		Entries:       len(r.entries),
		DaysJournaled: len(days),
	}
}
