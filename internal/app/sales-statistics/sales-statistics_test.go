package salesstatistics

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/sales-statistics/internal/config"
	"github.com/magabrotheeeer/sales-statistics/internal/peer"
	"github.com/magabrotheeeer/sales-statistics/internal/storage"
)

const schema = `
	CREATE TABLE salesData (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		price REAL NOT NULL,
		category TEXT NOT NULL,
		dateOfSale TEXT NOT NULL,
		sold BOOLEAN NOT NULL
	)`

const seed = `
	INSERT INTO salesData (id, title, description, price, category, dateOfSale, sold) VALUES
	(1, 'Mens Casual Premium Slim Fit T-Shirts', 'Slim-fitting style', 22.3, 'men''s clothing', '2021-03-27T20:29:54+05:30', 0),
	(2, 'Fjallraven Backpack', 'Your perfect pack', 109.95, 'men''s clothing', '2022-03-15T20:29:54+05:30', 1),
	(3, 'WD 2TB Elements Portable Hard Drive', 'USB 3.0', 64, 'electronics', '2021-03-05T20:29:54+05:30', 1),
	(4, 'Samsung 49-Inch Monitor', 'Ultrawide', 999.99, 'electronics', '2022-03-10T20:29:54+05:30', 0),
	(5, 'Winter Jacket', 'Warm', 56.99, 'women''s clothing', '2021-11-27T20:29:54+05:30', 1)`

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newSalesDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "salesDatabase.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(schema)
	require.NoError(t, err)
	_, err = db.Exec(seed)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	return path
}

// newTestServer поднимает приложение, которое в /all-statistics обращается к peerURL.
// Пустой peerURL означает обращение к самому себе.
func newTestServer(t *testing.T, peerURL string) *httptest.Server {
	t.Helper()

	db, err := storage.New(storage.DriverSQLite, newSalesDB(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var handler http.Handler
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	if peerURL == "" {
		peerURL = srv.URL
	}
	registry := prometheus.NewRegistry()
	handler = NewRouter(newNoopLogger(), db, peer.NewClient(peerURL, 0, registry), registry)
	return srv
}

func getJSON(t *testing.T, url string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func getBody(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestAllStatistics_RoundTrip(t *testing.T) {
	srv := newTestServer(t, "")

	status, combined := getJSON(t, srv.URL+"/all-statistics?month=3")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "March", combined["monthName"])

	_, stats := getJSON(t, srv.URL+"/statistics?month=3")
	_, ranges := getJSON(t, srv.URL+"/items?month=3")
	assert.Equal(t, stats, combined["statistics"])
	assert.Equal(t, ranges, combined["itemPriceRange"])

	_, categories := getBody(t, srv.URL+"/categories?month=3")
	want, err := json.Marshal(combined["categories"])
	require.NoError(t, err)
	assert.JSONEq(t, categories, string(want))

	assert.Equal(t, 2.0, stats["soldItems"])
	assert.Equal(t, 2.0, stats["unSoldItems"])
	assert.InDelta(t, 173.95, stats["sales"], 0.001)
}

func TestAllStatistics_DefaultMonth(t *testing.T) {
	srv := newTestServer(t, "")

	status, combined := getJSON(t, srv.URL+"/all-statistics")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "March", combined["monthName"])
}

func TestAllStatistics_PeerFailure(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/items" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/categories" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`{"sales":null,"soldItems":0,"unSoldItems":0}`))
	}))
	t.Cleanup(failing.Close)

	srv := newTestServer(t, failing.URL)

	status, body := getBody(t, srv.URL+"/all-statistics?month=3")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"error":"An error occurred while fetching all statistics."}`, body)
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, "")

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "root",
			path:       "/",
			wantStatus: http.StatusOK,
			wantBody:   "Backend Server is running!",
		},
		{
			name:       "month out of range",
			path:       "/statistics?month=13",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"An error occurred while fetching statistics."}`,
		},
		{
			name:       "items without month",
			path:       "/items",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"An error occurred while fetching item price ranges."}`,
		},
		{
			name:       "empty month categories",
			path:       "/categories?month=6",
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "empty month statistics",
			path:       "/statistics?month=6",
			wantStatus: http.StatusOK,
			wantBody:   `{"sales":null,"soldItems":0,"unSoldItems":0}`,
		},
		{
			name:       "sales search",
			path:       "/sales?month=3&search_q=Monitor",
			wantStatus: http.StatusOK,
			wantBody: `[{"id":4,"title":"Samsung 49-Inch Monitor","description":"Ultrawide","price":999.99,` +
				`"category":"electronics","dateOfSale":"2022-03-10T20:29:54+05:30","sold":false}]`,
		},
		{
			name:       "health",
			path:       "/healthz",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := getBody(t, srv.URL+tt.path)
			assert.Equal(t, tt.wantStatus, status)
			if strings.HasPrefix(tt.wantBody, "{") || strings.HasPrefix(tt.wantBody, "[") {
				assert.JSONEq(t, tt.wantBody, body)
			} else {
				assert.Equal(t, tt.wantBody, body)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, "")

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/statistics?month=3", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	status, _ := getBody(t, srv.URL+"/all-statistics?month=3")
	require.Equal(t, http.StatusOK, status)

	status, body := getBody(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `http_requests_total{method="GET",route="/all-statistics",status="200"} 1`)
	assert.Contains(t, body, `peer_requests_total{endpoint="/items",outcome="ok"} 1`)
}

func TestNew_StorageNotReady(t *testing.T) {
	cfg := &config.Config{
		Storage: config.Storage{
			Driver: storage.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "empty.db"),
		},
		Peer: config.Peer{BaseURL: "http://localhost:3001"},
	}

	_, err := New(context.Background(), cfg, newNoopLogger())
	assert.Error(t, err)
}

func TestNewHTTPServer_NoWriteTimeout(t *testing.T) {
	cfg := &config.Config{
		HTTPServer: config.HTTPServer{
			AddressHTTP: ":3001",
			TimeoutHTTP: 30 * time.Second,
			IdleTimeout: 60 * time.Second,
		},
	}

	srv := newHTTPServer(cfg, http.NotFoundHandler())

	assert.Equal(t, ":3001", srv.Addr)
	assert.Equal(t, 30*time.Second, srv.ReadTimeout)
	assert.Equal(t, 60*time.Second, srv.IdleTimeout)
	assert.Zero(t, srv.WriteTimeout)
}
