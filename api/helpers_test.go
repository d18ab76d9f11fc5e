package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abdhesh369/my-portfolio/database"
	"github.com/abdhesh369/my-portfolio/models"
)

type testEnv struct {
	db     *gorm.DB
	store  database.Database
	router *chi.Mux
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, models.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func testConfig(extra map[string]string) map[string]string {
	cfg := map[string]string{
		"ENVIRONMENT":      "test",
		"ACCEPTED_ORIGINS": "https://portfolio.example.com",
	}
	for k, v := range extra {
		cfg[k] = v
	}
	return cfg
}

func newTestEnv(t *testing.T, opts ...func(*router)) *testEnv {
	t.Helper()
	db := newTestDB(t)
	store := database.New(db, database.Options{CacheTTL: time.Hour})
	opts = append([]func(*router){withConfig(testConfig(nil))}, opts...)
	return &testEnv{db: db, store: store, router: NewRouter(store, opts...)}
}

func (e *testEnv) do(t *testing.T, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&out), "body: %s", rec.Body.String())
	return out
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []models.Message
	err      error
}

func (n *recordingNotifier) NotifyContactMessage(ctx context.Context, message models.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return n.err
}

func (n *recordingNotifier) received() []models.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.Message(nil), n.messages...)
}

const projectBody = `{
	"title": "Calculator Application",
	"description": "A simple calculator",
	"techStack": ["React", "CSS"],
	"imageUrl": "https://images.unsplash.com/photo-1",
	"githubUrl": "https://github.com",
	"category": "Utility"
}`

