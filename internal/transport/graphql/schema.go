package graphql

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"

	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

// SDL is the GraphQL schema served at /graphql.
//
//go:embed schema.graphqls
var SDL string

// NewSchema parses SDL and binds it to the root resolver.
func NewSchema(log *slog.Logger, root any, cfg config.GraphQLConfig) (*graphql.Schema, error) {
	opts := []graphql.SchemaOpt{
		graphql.MaxDepth(cfg.MaxDepth),
		graphql.Logger(panicLogger{log: log}),
		graphql.PanicHandler(panicHandler{}),
	}
	if !cfg.IntrospectionEnabled {
		opts = append(opts, graphql.DisableIntrospection())
	}

	schema, err := graphql.ParseSchema(SDL, root, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return schema, nil
}

// panicLogger routes resolver panics to slog.
type panicLogger struct {
	log *slog.Logger
}

func (l panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.log.ErrorContext(ctx, "panic in resolver",
		slog.Any("panic", value),
		slog.String("stack", string(debug.Stack())),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	)
}

// panicHandler hides panic values from clients.
type panicHandler struct{}

func (panicHandler) MakePanicError(_ context.Context, _ interface{}) *gqlerrors.QueryError {
	return &gqlerrors.QueryError{
		Message:    "internal error",
		Extensions: map[string]interface{}{"code": CodeInternal},
	}
}
