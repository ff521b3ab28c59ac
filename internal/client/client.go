// Package client talks to the todo GraphQL API.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/machinebox/graphql"
)

// EnvAddr names the environment variable holding the API address.
const EnvAddr = "TODO_API_ADDR"

// DefaultAddr is used when no address is configured.
const DefaultAddr = "http://localhost:8080"

// Todo is a todo as returned by the API.
type Todo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

const todoFields = `id title done createdAt`

const (
	listQuery = `query { todos { ` + todoFields + ` } }`

	createMutation = `mutation ($input: CreateTodoInput!) {
		createTodo(input: $input) { ` + todoFields + ` }
	}`

	updateMutation = `mutation ($input: UpdateTodoInput!) {
		updateTodo(input: $input) { ` + todoFields + ` }
	}`

	deleteMutation = `mutation ($id: ID!) { deleteTodo(id: $id) }`
)

// Option configures a Client.
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// Client is a thin typed wrapper around the GraphQL endpoint.
type Client struct {
	gql      *graphql.Client
	endpoint string
}

// New creates a client for the server at addr. addr may omit the scheme
// and the /graphql path.
func New(addr string, log *slog.Logger, opts ...Option) *Client {
	o := options{httpClient: &http.Client{Timeout: 10 * time.Second}}
	for _, opt := range opts {
		opt(&o)
	}

	endpoint := Endpoint(addr)
	c := graphql.NewClient(endpoint, graphql.WithHTTPClient(o.httpClient))
	if log != nil {
		log = log.With("component", "client")
		c.Log = func(s string) { log.Debug(s) }
	}
	return &Client{gql: c, endpoint: endpoint}
}

// Endpoint normalizes addr into the URL of the GraphQL endpoint.
func Endpoint(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = DefaultAddr
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	addr = strings.TrimRight(addr, "/")
	if !strings.HasSuffix(addr, "/graphql") {
		addr += "/graphql"
	}
	return addr
}

// URL returns the GraphQL endpoint the client talks to.
func (c *Client) URL() string {
	return c.endpoint
}

// List returns all todos, newest first.
func (c *Client) List(ctx context.Context) ([]Todo, error) {
	var resp struct {
		Todos []Todo `json:"todos"`
	}
	if err := c.gql.Run(ctx, graphql.NewRequest(listQuery), &resp); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return resp.Todos, nil
}

// Create adds a todo with the given title.
func (c *Client) Create(ctx context.Context, title string) (Todo, error) {
	req := graphql.NewRequest(createMutation)
	req.Var("input", map[string]any{"title": title})

	var resp struct {
		CreateTodo Todo `json:"createTodo"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return Todo{}, fmt.Errorf("create todo: %w", err)
	}
	return resp.CreateTodo, nil
}

// Update changes the title and/or done flag of a todo. Nil fields are left as is.
func (c *Client) Update(ctx context.Context, id string, title *string, done *bool) (Todo, error) {
	input := map[string]any{"id": id}
	if title != nil {
		input["title"] = *title
	}
	if done != nil {
		input["done"] = *done
	}
	req := graphql.NewRequest(updateMutation)
	req.Var("input", input)

	var resp struct {
		UpdateTodo Todo `json:"updateTodo"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return Todo{}, fmt.Errorf("update todo %s: %w", id, err)
	}
	return resp.UpdateTodo, nil
}

// Delete removes a todo and reports whether it existed.
func (c *Client) Delete(ctx context.Context, id string) (bool, error) {
	req := graphql.NewRequest(deleteMutation)
	req.Var("id", id)

	var resp struct {
		DeleteTodo bool `json:"deleteTodo"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return false, fmt.Errorf("delete todo %s: %w", id, err)
	}
	return resp.DeleteTodo, nil
}
