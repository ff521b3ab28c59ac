package todo

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

// DeleteTodo removes a todo and reports whether it existed.
func (s *Service) DeleteTodo(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if !s.todos.DeleteByID(id) {
		return false, nil
	}
	s.mutations.WithLabelValues(opDelete).Inc()

	s.log.InfoContext(ctx, "todo deleted",
		slog.String("todo_id", id),
		slog.String("operation", ctxutil.OperationFromCtx(ctx)),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	)

	return true, nil
}
