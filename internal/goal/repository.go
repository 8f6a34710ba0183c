package goal

import (
	"encoding/json"
	"errors"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/pebbleway/pebbleway-api/internal/config"
	"github.com/pebbleway/pebbleway-api/internal/store"
)

var ErrGoalNotFound = errors.New("goal not found")

// Repository owns the in-memory goal collection. It is hydrated from the
// store once at construction and the full collection is written back after
// every successful mutation. There is no delete operation.
type Repository interface {
	List() []Goal
	Create(g Goal) (*Goal, error)
	Update(id string, g Goal) (*Goal, error)
	ToggleComplete(id string) (*Goal, error)
	Active() []Goal
	Completed() []Goal
	AverageProgress() int
	Subscribe(fn func())
}

type repository struct {
	st store.Store

	mu          sync.RWMutex
	goals       []Goal
	subscribers []func()
}

func NewRepository(st store.Store) Repository {
	r := &repository{st: st}
	r.hydrate()
	return r
}

func (r *repository) hydrate() {
	data, err := r.st.Load(store.GoalsKey)
	if err != nil {
		config.Logger().WithError(err).Warn("Failed to load goals, starting empty")
		return
	}
	if data == nil {
		return
	}
	var goals []Goal
	if err := json.Unmarshal(data, &goals); err != nil {
		// Corrupt data reads as an empty collection, never as an error.
		config.Logger().WithError(err).Warn("Stored goals are unreadable, starting empty")
		return
	}
	r.goals = goals
}

// persist writes the candidate collection and commits it in memory only
// when the write succeeds, so a failed save leaves no partial state.
func (r *repository) persist(next []Goal) error {
	data, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := r.st.Save(store.GoalsKey, data); err != nil {
		return err
	}
	r.goals = next
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

func (r *repository) List() []Goal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Goal, len(r.goals))
	copy(out, r.goals)
	return out
}

func (r *repository) Create(g Goal) (*Goal, error) {
	r.mu.Lock()
	g.ID = uuid.NewString()
	g.Completed = false

	next := make([]Goal, len(r.goals), len(r.goals)+1)
	copy(next, r.goals)
	next = append(next, g)

	err := r.persist(next)
	r.mu.Unlock()

	if err != nil {
		return nil, err
	}
	r.notify()
	return &g, nil
}

func (r *repository) Update(id string, g Goal) (*Goal, error) {
	r.mu.Lock()
	idx := r.indexOf(id)
	if idx < 0 {
		r.mu.Unlock()
		return nil, ErrGoalNotFound
	}

	g.ID = id

	next := make([]Goal, len(r.goals))
	copy(next, r.goals)
	next[idx] = g

	err := r.persist(next)
	r.mu.Unlock()

	if err != nil {
		return nil, err
	}
	r.notify()
	return &g, nil
}

func (r *repository) ToggleComplete(id string) (*Goal, error) {
	r.mu.Lock()
	idx := r.indexOf(id)
	if idx < 0 {
		r.mu.Unlock()
		return nil, ErrGoalNotFound
	}

	g := r.goals[idx]
	if g.Completed {
		// Completed -> active keeps whatever progress was recorded.
		g.Completed = false
	} else {
		g.Completed = true
		g.Progress = 100
	}

	next := make([]Goal, len(r.goals))
	copy(next, r.goals)
	next[idx] = g

	err := r.persist(next)
	r.mu.Unlock()

	if err != nil {
		return nil, err
	}
	r.notify()
	return &g, nil
}

func (r *repository) Active() []Goal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Goal
	for _, g := range r.goals {
		if !g.Completed {
			out = append(out, g)
		}
	}
	return out
}

func (r *repository) Completed() []Goal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Goal
	for _, g := range r.goals {
		if g.Completed {
			out = append(out, g)
		}
	}
	return out
}

func (r *repository) AverageProgress() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.goals) == 0 {
		return 0
	}
	sum := 0
	for _, g := range r.goals {
		sum += g.Progress
	}
	return int(math.Round(float64(sum) / float64(len(r.goals))))
}

// indexOf must be called with the lock held.
func (r *repository) indexOf(id string) int {
	for i, g := range r.goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}
