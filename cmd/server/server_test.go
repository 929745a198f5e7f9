package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rollashield/screenquote/internal/db"
	"github.com/rollashield/screenquote/internal/metrics"
	"github.com/rollashield/screenquote/internal/migrations"
	"github.com/rollashield/screenquote/internal/store"
)

type testServer struct {
	*server
	db      *sql.DB
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	database, err := db.Open("sqlite", filepath.Join(t.TempDir(), "server-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, migrations.Up(database, "sqlite"))

	srv := newServer(store.New(database, "sqlite"), zap.NewNop(), metrics.New())
	srv.now = func() time.Time { return time.Date(2026, 4, 10, 15, 0, 0, 0, time.UTC) }
	return &testServer{server: srv, db: database, handler: srv.routes()}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func zipperScreen(name string, widthInches, heightInches float64, operator string) map[string]any {
	return map[string]any{
		"screenName":          name,
		"widthInches":         widthInches,
		"heightInches":        heightInches,
		"frameColor":          "Bronze",
		"includeInstallation": true,
		"selection": map[string]any{
			"trackType":    "sunair-zipper",
			"operatorType": operator,
			"fabricColor":  "Charcoal 95%",
		},
	}
}

func openingOnly(name string, widthInches, heightInches float64) map[string]any {
	return map[string]any{
		"screenName":   name,
		"widthInches":  widthInches,
		"heightInches": heightInches,
	}
}
