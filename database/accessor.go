package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNoAccessor = errors.New("no database accessor in request context")

type accessorKey struct{}

// Accessor hands out a single connection for the lifetime of one request.
// It is not safe for concurrent use; every request gets its own.
type Accessor struct {
	pool    *gorm.DB
	ctx     context.Context
	conn    *sql.Conn
	session *gorm.DB
}

func NewAccessor(ctx context.Context, pool *gorm.DB) *Accessor {
	return &Accessor{pool: pool, ctx: ctx}
}

// Acquire pins a connection from the pool on first use. Later calls return
// the same session until Release.
func (a *Accessor) Acquire() (*gorm.DB, error) {
	if a.session != nil {
		return a.session, nil
	}

	sqlDB, err := a.pool.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get connection pool: %w", err)
	}
	conn, err := sqlDB.Conn(a.ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	session := a.pool.WithContext(a.ctx)
	session.Statement.ConnPool = conn

	a.conn = conn
	a.session = session
	return session, nil
}

// Release returns the pinned connection to the pool. It does nothing when
// Acquire was never called.
func (a *Accessor) Release() error {
	if a.conn == nil {
		return nil
	}
	err := a.conn.Close()
	a.conn = nil
	a.session = nil
	return err
}

// Middleware gives every request its own Accessor and releases it once the
// handler returns, panics included.
func Middleware(pool *gorm.DB, log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessor := NewAccessor(r.Context(), pool)
			defer func() {
				if err := accessor.Release(); err != nil {
					log.WithError(err).Warn("Failed to release database connection")
				}
			}()

			ctx := context.WithValue(r.Context(), accessorKey{}, accessor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromRequest retrieves the request's Accessor installed by Middleware.
func FromRequest(r *http.Request) (*Accessor, error) {
	accessor, ok := r.Context().Value(accessorKey{}).(*Accessor)
	if !ok {
		return nil, ErrNoAccessor
	}
	return accessor, nil
}
