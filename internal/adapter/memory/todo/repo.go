// Package todo implements the todo repository as a process-local,
// concurrency-safe map. Records live for the lifetime of the Repo.
package todo

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Repo stores todo records keyed by ID.
// All methods are safe for concurrent use.
type Repo struct {
	mu    sync.RWMutex
	items map[string]domain.Todo

	now   func() time.Time
	newID func() string
}

// Option configures a Repo.
type Option func(*Repo)

// WithClock overrides the clock used to stamp CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(r *Repo) { r.now = now }
}

// WithIDGenerator overrides the ID generator. The generator must keep
// producing new values: Create retries until it gets an unused ID.
func WithIDGenerator(gen func() string) Option {
	return func(r *Repo) { r.newID = gen }
}

// New creates an empty repository.
func New(opts ...Option) *Repo {
	r := &Repo{
		items: make(map[string]domain.Todo),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListAll returns a snapshot of every record, newest CreatedAt first.
// Records with equal CreatedAt are ordered by ID.
func (r *Repo) ListAll() []domain.Todo {
	r.mu.RLock()
	out := make([]domain.Todo, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, t)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.Todo) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Get returns the record with the given ID and whether it exists.
func (r *Repo) Get(id string) (domain.Todo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	return t, ok
}

// Len returns the number of stored records.
func (r *Repo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new, not yet done record with a generated ID and the
// current time. A blank title is rejected with a *domain.ValidationError
// and nothing is stored.
func (r *Repo) Create(title string) (domain.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Todo{}, domain.NewValidationError("title", "required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for {
		if _, taken := r.items[id]; !taken {
			break
		}
		id = r.newID()
	}

	t := domain.Todo{
		ID:        id,
		Title:     title,
		Done:      false,
		CreatedAt: r.now(),
	}
	r.items[id] = t
	return t, nil
}

// Save stores t under t.ID, replacing any existing record. An unknown ID
// inserts a new record.
func (r *Repo) Save(t domain.Todo) domain.Todo {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[t.ID] = t
	return t
}

// DeleteByID removes the record and reports whether it existed.
func (r *Repo) DeleteByID(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	return true
}
