package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	operationKey ctxKey = "operation"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithOperation stores the GraphQL operation name in the context.
func WithOperation(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, operationKey, name)
}

// OperationFromCtx extracts the GraphQL operation name from the context.
// Returns an empty string for anonymous operations.
func OperationFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(operationKey).(string)
	return name
}
