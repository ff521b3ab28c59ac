package graphql

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/heartmarshall/todo-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

// Request is a GraphQL-over-HTTP request body.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves GraphQL over HTTP (POST with a JSON body, GET with query parameters).
type Handler struct {
	schema    *graphql.Schema
	guard     *ComplexityGuard
	presenter ErrorPresenterFunc
	log       *slog.Logger
}

// NewHandler creates a GraphQL HTTP handler.
func NewHandler(log *slog.Logger, schema *graphql.Schema, guard *ComplexityGuard) *Handler {
	log = log.With("component", "graphql")
	return &Handler{
		schema:    schema,
		guard:     guard,
		presenter: NewErrorPresenter(log),
		log:       log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		req Request
		err error
	)

	switch r.Method {
	case http.MethodPost:
		req, err = decodePost(w, r)
	case http.MethodGet:
		req, err = decodeGet(r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, CodeBadRequest, "method not allowed")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "query is required")
		return
	}

	if r.Method == http.MethodGet {
		if typ, ok := OperationType(req.Query, req.OperationName); ok && typ == ast.Mutation {
			w.Header().Set("Allow", "POST")
			writeError(w, http.StatusMethodNotAllowed, CodeBadRequest, "mutations require POST")
			return
		}
	}

	ctx := r.Context()
	if op, ok := h.guard.Analyze(req.Query, req.OperationName); ok {
		if h.guard.Exceeds(op) {
			h.log.WarnContext(ctx, "query rejected by complexity limit",
				slog.String("operation", op.Name),
				slog.Int("complexity", op.Complexity),
				slog.Int("limit", h.guard.Limit()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			writeJSON(w, http.StatusOK, graphql.Response{Errors: []*gqlerrors.QueryError{{
				Message:    fmt.Sprintf("operation has complexity %d, which exceeds the limit of %d", op.Complexity, h.guard.Limit()),
				Extensions: map[string]interface{}{"code": CodeComplexityLimit},
			}}})
			return
		}
		ctx = ctxutil.WithOperation(ctx, op.Name)
	}

	resp := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	present(ctx, h.presenter, resp.Errors)

	writeJSON(w, http.StatusOK, resp)
}

func decodePost(w http.ResponseWriter, r *http.Request) (Request, error) {
	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		return Request{}, fmt.Errorf("invalid request body: %w", err)
	}
	return req, nil
}

func decodeGet(r *http.Request) (Request, error) {
	q := r.URL.Query()
	req := Request{
		Query:         q.Get("query"),
		OperationName: q.Get("operationName"),
	}
	if raw := q.Get("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			return Request{}, fmt.Errorf("invalid variables: %w", err)
		}
	}
	return req, nil
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, graphql.Response{Errors: []*gqlerrors.QueryError{{
		Message:    msg,
		Extensions: map[string]interface{}{"code": code},
	}}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
