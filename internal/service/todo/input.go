package todo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// CreateTodoInput holds the parameters for creating a todo.
type CreateTodoInput struct {
	Title string
}

// Validate checks all fields and collects all errors.
func (i CreateTodoInput) Validate(maxTitle int) error {
	var ve domain.ValidationError
	validateTitle(&ve, strings.TrimSpace(i.Title), maxTitle)
	return ve.Err()
}

// UpdateTodoInput holds the parameters for a partial todo update.
// Nil fields keep their current value.
type UpdateTodoInput struct {
	ID    string
	Title *string
	Done  *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateTodoInput) Validate(maxTitle int) error {
	var ve domain.ValidationError
	if strings.TrimSpace(i.ID) == "" {
		ve.Add("id", "required")
	}
	if i.Title != nil {
		validateTitle(&ve, strings.TrimSpace(*i.Title), maxTitle)
	}
	return ve.Err()
}

func (i UpdateTodoInput) patch() domain.TodoPatch {
	return domain.TodoPatch{
		Title: trimPtr(i.Title),
		Done:  i.Done,
	}
}

func validateTitle(ve *domain.ValidationError, title string, maxTitle int) {
	switch {
	case title == "":
		ve.Add("title", "required")
	case maxTitle > 0 && utf8.RuneCountInString(title) > maxTitle:
		ve.Add("title", fmt.Sprintf("max %d characters", maxTitle))
	}
}
