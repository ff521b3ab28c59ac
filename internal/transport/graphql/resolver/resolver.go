package resolver

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/internal/service/todo"
)

// todoService defines what resolver needs from Todo service.
type todoService interface {
	ListTodos(ctx context.Context) ([]domain.Todo, error)
	GetTodo(ctx context.Context, id string) (*domain.Todo, error)
	CreateTodo(ctx context.Context, input todo.CreateTodoInput) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, input todo.UpdateTodoInput) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, id string) (bool, error)
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	todos todoService
	log   *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(log *slog.Logger, todos todoService) *Resolver {
	return &Resolver{
		todos: todos,
		log:   log.With("component", "graphql"),
	}
}
