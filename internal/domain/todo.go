package domain

import "time"

// Todo is a single task tracked by the API.
type Todo struct {
	ID        string
	Title     string
	Done      bool
	CreatedAt time.Time
}

// TodoPatch holds optional replacements for the mutable fields of a Todo.
// A nil field keeps the current value.
type TodoPatch struct {
	Title *string
	Done  *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Done == nil
}

// Apply returns a copy of t with the non-nil fields of p overlaid.
// ID and CreatedAt are never touched.
func (t Todo) Apply(p TodoPatch) Todo {
	out := t
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Done != nil {
		out.Done = *p.Done
	}
	return out
}
