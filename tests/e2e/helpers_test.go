//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/todo-backend/internal/app"
	"github.com/heartmarshall/todo-backend/internal/client"
	"github.com/heartmarshall/todo-backend/internal/config"
)

// ---------------------------------------------------------------------------
// GraphQL assertion / extraction helpers.
// ---------------------------------------------------------------------------

// gqlData extracts the "data" map from a GraphQL response.
func gqlData(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data object in response")
	return data
}

// gqlErrorCode extracts the error code from the first GraphQL error.
func gqlErrorCode(t *testing.T, result map[string]any) string {
	t.Helper()
	errors, ok := result["errors"].([]any)
	require.True(t, ok, "expected errors array")
	require.NotEmpty(t, errors)

	firstErr, ok := errors[0].(map[string]any)
	require.True(t, ok)
	extensions, ok := firstErr["extensions"].(map[string]any)
	require.True(t, ok, "expected extensions in error")

	code, ok := extensions["code"].(string)
	require.True(t, ok, "expected code string in extensions")
	return code
}

// requireNoErrors asserts that the GraphQL response has no errors.
func requireNoErrors(t *testing.T, result map[string]any) {
	t.Helper()
	if errs, ok := result["errors"]; ok && errs != nil {
		t.Fatalf("unexpected GraphQL errors: %v", errs)
	}
}

// ---------------------------------------------------------------------------
// testServer runs the full application on a loopback listener.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	API    *client.Client
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			IdleTimeout:     30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		GraphQL: config.GraphQLConfig{IntrospectionEnabled: true, ComplexityLimit: 50, MaxDepth: 5},
		Log:     config.LogConfig{Level: "debug", Format: "text"},
		CORS: config.CORSConfig{
			AllowedOrigins: "http://localhost:3000",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         300,
		},
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 6000, Burst: 200, CleanupInterval: time.Minute},
		Todo:      config.TodoConfig{MaxTitleLength: 200},
	}
}

// setupTestServer starts the application with cfg (testConfig when nil)
// and stops it when the test ends.
func setupTestServer(t *testing.T, cfgs ...*config.Config) *testServer {
	t.Helper()

	cfg := testConfig()
	if len(cfgs) > 0 {
		cfg = cfgs[0]
	}
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	a, err := app.New(cfg, logger)
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx, ln) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Error("server did not stop")
		}
	})

	url := "http://" + ln.Addr().String()
	httpClient := &http.Client{Timeout: 10 * time.Second}

	require.Eventually(t, func() bool {
		resp, err := httpClient.Get(url + app.RouteReady)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	return &testServer{
		URL:    url,
		Client: httpClient,
		API:    client.New(url, logger, client.WithHTTPClient(httpClient)),
	}
}

// graphqlRequest posts a GraphQL query and decodes the JSON response.
func (ts *testServer) graphqlRequest(t *testing.T, query string, variables map[string]any) map[string]any {
	t.Helper()

	body, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+app.RouteGraphQL, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// getJSON issues a GET and decodes the JSON body.
func (ts *testServer) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}
