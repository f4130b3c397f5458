package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"board/config"
	"board/database"
	"board/handlers"
	"board/routes"
	"board/web"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Server is the assembled application: config, storage pool and routes.
type Server struct {
	cfg     config.Config
	log     *logrus.Logger
	db      *gorm.DB
	handler http.Handler
}

func New(cfg config.Config, log *logrus.Logger) (*Server, error) {
	log.Debugf("Current Environment: %s", cfg.Environment)
	log.Debugf("Using Database: %s", cfg.Database)

	db, err := database.Open(cfg, log)
	if err != nil {
		return nil, err
	}

	templates, err := web.Load()
	if err != nil {
		database.Close(db)
		return nil, err
	}

	store := sessions.NewCookieStore([]byte(cfg.SecretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	render := handlers.NewRenderer(templates, store, log)
	handler := routes.SetupRoutes(db, log,
		handlers.NewPageHandler(render),
		handlers.NewPostHandler(render, log),
		handlers.NewErrorHandler(render, log),
	)

	return &Server{cfg: cfg, log: log, db: db, handler: handler}, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves HTTP until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("Server started on port: %d", s.cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func (s *Server) Close() error {
	return database.Close(s.db)
}
