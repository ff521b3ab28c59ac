package todo

import (
	"context"
	"fmt"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// ListTodos returns every todo, newest first.
func (s *Service) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.todos.ListAll(), nil
}

// GetTodo returns the todo with the given ID or domain.ErrNotFound.
func (s *Service) GetTodo(ctx context.Context, id string) (*domain.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, ok := s.todos.Get(id)
	if !ok {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}
	return &t, nil
}
