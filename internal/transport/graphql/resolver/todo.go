package resolver

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/graph-gophers/graphql-go"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/internal/service/todo"
)

// TimeLayout is the textual form of Todo.createdAt.
const TimeLayout = time.RFC3339Nano

// CreateTodoInput mirrors the CreateTodoInput GraphQL input type.
type CreateTodoInput struct {
	Title string
}

// UpdateTodoInput mirrors the UpdateTodoInput GraphQL input type.
type UpdateTodoInput struct {
	ID    graphql.ID
	Title *string
	Done  *bool
}

// Todos is the resolver for the todos field.
func (r *Resolver) Todos(ctx context.Context) ([]*todoResolver, error) {
	items, err := r.todos.ListTodos(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*todoResolver, len(items))
	for i := range items {
		out[i] = &todoResolver{t: items[i]}
	}
	return out, nil
}

// Todo is the resolver for the todo field. Unknown IDs resolve to null.
func (r *Resolver) Todo(ctx context.Context, args struct{ ID graphql.ID }) (*todoResolver, error) {
	t, err := r.todos.GetTodo(ctx, string(args.ID))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todoResolver{t: *t}, nil
}

// CreateTodo is the resolver for the createTodo field.
func (r *Resolver) CreateTodo(ctx context.Context, args struct{ Input CreateTodoInput }) (*todoResolver, error) {
	t, err := r.todos.CreateTodo(ctx, todo.CreateTodoInput{Title: args.Input.Title})
	if err != nil {
		return nil, err
	}
	return &todoResolver{t: *t}, nil
}

// UpdateTodo is the resolver for the updateTodo field.
func (r *Resolver) UpdateTodo(ctx context.Context, args struct{ Input UpdateTodoInput }) (*todoResolver, error) {
	t, err := r.todos.UpdateTodo(ctx, todo.UpdateTodoInput{
		ID:    string(args.Input.ID),
		Title: args.Input.Title,
		Done:  args.Input.Done,
	})
	if err != nil {
		return nil, err
	}
	return &todoResolver{t: *t}, nil
}

// DeleteTodo is the resolver for the deleteTodo field.
func (r *Resolver) DeleteTodo(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	deleted, err := r.todos.DeleteTodo(ctx, string(args.ID))
	if err != nil {
		return false, err
	}
	if !deleted {
		r.log.DebugContext(ctx, "delete of unknown todo", slog.String("todo_id", string(args.ID)))
	}
	return deleted, nil
}

type todoResolver struct {
	t domain.Todo
}

func (r *todoResolver) ID() graphql.ID { return graphql.ID(r.t.ID) }

func (r *todoResolver) Title() string { return r.t.Title }

func (r *todoResolver) Done() bool { return r.t.Done }

func (r *todoResolver) CreatedAt() string { return r.t.CreatedAt.UTC().Format(TimeLayout) }
