package graphql

import (
	"context"
	"errors"
	"log/slog"

	gqlerrors "github.com/graph-gophers/graphql-go/errors"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

// Error codes reported in extensions.code.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeValidation       = "VALIDATION"
	CodeInternal         = "INTERNAL"
	CodeComplexityLimit  = "COMPLEXITY_LIMIT"
	CodeValidationFailed = "GRAPHQL_VALIDATION_FAILED"
	CodeBadRequest       = "BAD_REQUEST"
)

// ErrorPresenterFunc rewrites an execution error before it is sent to the client.
type ErrorPresenterFunc func(ctx context.Context, err *gqlerrors.QueryError) *gqlerrors.QueryError

// NewErrorPresenter returns an error presenter that maps domain errors
// to GraphQL error codes.
func NewErrorPresenter(log *slog.Logger) ErrorPresenterFunc {
	return func(ctx context.Context, err *gqlerrors.QueryError) *gqlerrors.QueryError {
		if _, ok := err.Extensions["code"]; ok {
			return err
		}

		// Parse and validation errors carry no resolver error.
		origErr := err.ResolverError
		if origErr == nil {
			err.Extensions = map[string]interface{}{"code": CodeValidationFailed}
			return err
		}

		switch {
		case errors.Is(origErr, domain.ErrNotFound):
			err.Extensions = map[string]interface{}{"code": CodeNotFound}

		case errors.Is(origErr, domain.ErrValidation):
			err.Extensions = map[string]interface{}{"code": CodeValidation}
			var ve *domain.ValidationError
			if errors.As(origErr, &ve) {
				err.Extensions["fields"] = fieldsOf(ve)
			}

		case errors.Is(origErr, context.Canceled), errors.Is(origErr, context.DeadlineExceeded):
			err.Extensions = map[string]interface{}{"code": CodeInternal}

		default:
			// Unexpected error - log it, return generic message to client
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", origErr.Error()),
				slog.String("operation", ctxutil.OperationFromCtx(ctx)),
				slog.Any("path", err.Path),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			err.Message = "internal error"
			err.Extensions = map[string]interface{}{"code": CodeInternal}
		}

		return err
	}
}

// fieldsOf renders field errors with lower-case JSON keys.
func fieldsOf(ve *domain.ValidationError) []map[string]string {
	out := make([]map[string]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		out[i] = map[string]string{"field": fe.Field, "message": fe.Message}
	}
	return out
}

// present applies fn to every error in place.
func present(ctx context.Context, fn ErrorPresenterFunc, errs []*gqlerrors.QueryError) {
	for i, err := range errs {
		errs[i] = fn(ctx, err)
	}
}
