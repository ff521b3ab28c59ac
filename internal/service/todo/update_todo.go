package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

// UpdateTodo overlays the provided fields onto an existing todo and saves it.
// ID and CreatedAt are preserved. Unknown IDs yield domain.ErrNotFound.
func (s *Service) UpdateTodo(ctx context.Context, input UpdateTodoInput) (*domain.Todo, error) {
	if err := input.Validate(s.maxTitle); err != nil {
		return nil, err
	}

	existing, ok := s.todos.Get(input.ID)
	if !ok {
		return nil, fmt.Errorf("todo not found: %s: %w", input.ID, domain.ErrNotFound)
	}

	patch := input.patch()
	if patch.IsEmpty() {
		return &existing, nil
	}

	saved := s.todos.Save(existing.Apply(patch))
	s.mutations.WithLabelValues(opUpdate).Inc()

	s.log.InfoContext(ctx, "todo updated",
		slog.String("todo_id", saved.ID),
		slog.Bool("title_changed", patch.Title != nil),
		slog.Bool("done", saved.Done),
		slog.String("operation", ctxutil.OperationFromCtx(ctx)),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	)

	return &saved, nil
}
