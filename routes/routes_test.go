package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"board/config"
	"board/database"
	"board/handlers"
	"board/web"

	"github.com/gorilla/sessions"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandler(t *testing.T) http.Handler {
	t.Helper()
	log, _ := logtest.NewNullLogger()

	cfg := config.Config{Database: filepath.Join(t.TempDir(), "board.sqlite")}
	db, err := database.Open(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	require.NoError(t, database.InitSchema(context.Background(), db, cfg.Dialect()))

	templates, err := web.Load()
	require.NoError(t, err)
	render := handlers.NewRenderer(templates, sessions.NewCookieStore([]byte("test-secret")), log)

	return SetupRoutes(db, log,
		handlers.NewPageHandler(render),
		handlers.NewPostHandler(render, log),
		handlers.NewErrorHandler(render, log),
	)
}

func TestRoutes(t *testing.T) {
	handler := setupHandler(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/about", http.StatusOK},
		{http.MethodGet, "/create", http.StatusOK},
		{http.MethodPost, "/create", http.StatusOK},
		{http.MethodGet, "/posts", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodPost, "/posts", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}
