package httpserver

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-todo/internal/metrics"
	"smart-todo/internal/middleware"
	"smart-todo/internal/task/repository/sqlite"
	"smart-todo/internal/task/usecase"
	"smart-todo/pkg/log"
	"smart-todo/pkg/nlparser"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) (*HTTPServer, *sql.DB) {
	t.Helper()
	ctx := context.Background()
	l := log.NewNop()

	db, err := sqlite.Open(ctx, ":memory:", 1)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	reg := prometheus.NewRegistry()
	m := metrics.MustNew(reg)

	parser := nlparser.New(l)
	uc := usecase.New(l, sqlite.New(db, l), parser, nil, m, usecase.Config{})

	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		DB:          db,
		Metrics:     m,
		Gatherer:    reg,
		Middleware:  middleware.Config{RequestsPerMin: 600},
		TaskUseCase: uc,
		Location:    time.UTC,
	})
	require.NoError(t, err)
	return srv, db
}

func call(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestNewValidates(t *testing.T) {
	l := log.NewNop()
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing mode", Config{Port: 1}},
		{"missing port", Config{Mode: "test"}},
		{"missing use case", Config{Mode: "test", Port: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(l, tt.cfg)
			assert.Error(t, err)
		})
	}

	_, err := New(nil, Config{Mode: "test", Port: 1})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv, db := newTestServer(t)
	h := srv.Handler()

	for _, path := range []string{"/health", "/ready", "/live"} {
		w, env := call(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, 0, env.ErrorCode, path)
	}

	w, _ := call(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "smart_todo_http_requests_total")

	require.NoError(t, db.Close())
	w, env := call(t, h, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, http.StatusServiceUnavailable, env.ErrorCode)
}

func TestRequestIDEchoed(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
}

func TestTaskFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	// Parse stores nothing.
	w, env := call(t, h, http.MethodPost, "/api/v1/tasks/parse", `{"text":"URGENT: submit report asap!!"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var parsed struct {
		ParsedTask struct {
			Priority   int    `json:"priority"`
			Category   string `json:"category"`
			Confidence struct {
				Priority float64 `json:"priority"`
				Date     float64 `json:"date"`
			} `json:"confidence"`
		} `json:"parsed_task"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &parsed))
	assert.Equal(t, 4, parsed.ParsedTask.Priority)
	assert.Equal(t, 0.9, parsed.ParsedTask.Confidence.Priority)
	assert.Equal(t, "work", parsed.ParsedTask.Category)
	assert.Equal(t, 0.0, parsed.ParsedTask.Confidence.Date)

	w, env = call(t, h, http.MethodGet, "/api/v1/tasks/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":0,"completed":0,"pending":0,"overdue":0}`, string(env.Data))

	// Quick create stores the parsed task.
	w, env = call(t, h, http.MethodPost, "/api/v1/tasks/quick", `{"text":"buy groceries tomorrow"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var quick struct {
		Task struct {
			ID       string  `json:"id"`
			Title    string  `json:"title"`
			Category string  `json:"category"`
			DueDate  *string `json:"due_date"`
		} `json:"task"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &quick))
	require.NotEmpty(t, quick.Task.ID)
	assert.Equal(t, "buy groceries", quick.Task.Title)
	assert.Equal(t, "shopping", quick.Task.Category)
	assert.NotNil(t, quick.Task.DueDate)

	// Explicit create, then toggle, list and delete.
	w, env = call(t, h, http.MethodPost, "/api/v1/tasks", `{"title":"Read chapter 3","category":"study","priority":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, _ = call(t, h, http.MethodPatch, "/api/v1/tasks/"+created.ID+"/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, env = call(t, h, http.MethodGet, "/api/v1/tasks?completed=false", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Tasks []struct {
			ID string `json:"id"`
		} `json:"tasks"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, quick.Task.ID, list.Tasks[0].ID)
	assert.Equal(t, 1, list.Meta.Total)

	w, env = call(t, h, http.MethodGet, "/api/v1/tasks/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":2,"completed":1,"pending":1,"overdue":0}`, string(env.Data))

	w, _ = call(t, h, http.MethodDelete, "/api/v1/tasks/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, env = call(t, h, http.MethodGet, "/api/v1/tasks/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, env.ErrorCode)
}

func TestRunStopsOnCancel(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.port = 0 // any free port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
