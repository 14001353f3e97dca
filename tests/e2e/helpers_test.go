//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/uievents-backend/internal/adapter/postgres"
	elementrepo "github.com/heartmarshall/uievents-backend/internal/adapter/postgres/element"
	eventrepo "github.com/heartmarshall/uievents-backend/internal/adapter/postgres/event"
	"github.com/heartmarshall/uievents-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/uievents-backend/internal/config"
	"github.com/heartmarshall/uievents-backend/internal/service/catalog"
	eventsvc "github.com/heartmarshall/uievents-backend/internal/service/event"
	"github.com/heartmarshall/uievents-backend/internal/transport/middleware"
	"github.com/heartmarshall/uievents-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	elementRepo := elementrepo.New(pool)
	eventRepo := eventrepo.New(pool)

	// 4. Services.
	catalogService := catalog.NewService(logger, elementRepo, txm)
	eventService := eventsvc.NewService(logger, elementRepo, eventRepo, txm)

	// 5. Seed the catalog, exactly as server startup does. A second call
	// against the same database is a no-op.
	require.NoError(t, catalogService.Seed(context.Background()))

	// 6. Handlers + router.
	elementsHandler := rest.NewElementsHandler(catalogService, logger)
	eventsHandler := rest.NewEventsHandler(eventService, logger)
	healthHandler := rest.NewHealthHandler(pool, "test-version")

	mux := rest.NewRouter(elementsHandler, eventsHandler, healthHandler)

	// 7. Middleware chain.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Content-Type",
			AllowCredentials: false,
			MaxAge:           86400,
		}),
	)(mux)

	// 8. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

// getElements fetches the catalog and returns status + decoded array.
func (ts *testServer) getElements(t *testing.T) (int, []map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + "/elements")
	require.NoError(t, err)
	defer resp.Body.Close()

	var elements []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&elements))
	return resp.StatusCode, elements
}

// postEvent marshals body and posts it to /events, returning status + decoded
// response object.
func (ts *testServer) postEvent(t *testing.T, body map[string]any) (int, map[string]any) {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)
	return ts.postEventRaw(t, string(jsonBody))
}

// postEventRaw posts a raw body to /events. Used for malformed payloads.
func (ts *testServer) postEventRaw(t *testing.T, raw string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Post(ts.URL+"/events", "application/json", bytes.NewReader([]byte(raw)))
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// requireErrorBody asserts a {"error": message} response.
func requireErrorBody(t *testing.T, result map[string]any, message string) {
	t.Helper()
	require.Equal(t, message, result["error"], "unexpected error body: %v", result)
}

// storedPayload reads an event's payload column directly.
func (ts *testServer) storedPayload(t *testing.T, eventID int64) *string {
	t.Helper()

	var payload *string
	err := ts.Pool.QueryRow(context.Background(),
		"SELECT payload FROM events WHERE id = $1", eventID,
	).Scan(&payload)
	require.NoError(t, err)
	return payload
}

// eventID extracts the numeric id from a decoded event response.
func eventID(t *testing.T, result map[string]any) int64 {
	t.Helper()

	id, ok := result["id"].(float64)
	require.True(t, ok, "expected numeric id, got %T", result["id"])
	return int64(id)
}

// elementKeys projects the key field from a decoded catalog response.
func elementKeys(elements []map[string]any) []string {
	keys := make([]string, 0, len(elements))
	for _, el := range elements {
		if k, ok := el["key"].(string); ok {
			keys = append(keys, k)
		}
	}
	return keys
}
