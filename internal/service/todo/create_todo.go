package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

// CreateTodo creates a new todo with done=false.
func (s *Service) CreateTodo(ctx context.Context, input CreateTodoInput) (*domain.Todo, error) {
	if err := input.Validate(s.maxTitle); err != nil {
		return nil, err
	}

	t, err := s.todos.Create(strings.TrimSpace(input.Title))
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	s.mutations.WithLabelValues(opCreate).Inc()

	s.log.InfoContext(ctx, "todo created",
		slog.String("todo_id", t.ID),
		slog.String("title", preview(t.Title)),
		slog.String("operation", ctxutil.OperationFromCtx(ctx)),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	)

	return &t, nil
}

func preview(s string) string {
	const previewLen = 50
	r := []rune(s)
	if len(r) > previewLen {
		return string(r[:previewLen])
	}
	return s
}
