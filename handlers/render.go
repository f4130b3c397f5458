package handlers

import (
	"encoding/gob"
	"fmt"
	"net/http"

	"board/models"
	"board/web"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

const (
	SessionName = "board-session"
	flashKey    = "_flashes"

	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-time message shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register([]interface{}{})
	gob.Register(Flash{})
}

// View is the data every page template receives.
type View struct {
	Flashes []Flash
	Posts   []models.Post
}

// Renderer renders pages and carries flash messages between requests.
type Renderer struct {
	templates *web.Templates
	store     sessions.Store
	log       logrus.FieldLogger
}

func NewRenderer(templates *web.Templates, store sessions.Store, log logrus.FieldLogger) *Renderer {
	return &Renderer{templates: templates, store: store, log: log}
}

func (rd *Renderer) session(r *http.Request) *sessions.Session {
	session, err := rd.store.Get(r, SessionName)
	if err != nil {
		// A tampered or stale cookie just means starting over with no flashes.
		rd.log.WithError(err).Debug("Discarding unreadable session")
	}
	return session
}

// AddFlash queues a message for the next page rendered for this client.
func (rd *Renderer) AddFlash(r *http.Request, category, message string) {
	rd.session(r).AddFlash(Flash{Category: category, Message: message}, flashKey)
}

// Page drains pending flashes into the view and renders the named template.
func (rd *Renderer) Page(w http.ResponseWriter, r *http.Request, status int, name string, view View) {
	session := rd.session(r)
	for _, f := range session.Flashes(flashKey) {
		if flash, ok := f.(Flash); ok {
			view.Flashes = append(view.Flashes, flash)
		}
	}
	if len(view.Flashes) > 0 {
		if err := session.Save(r, w); err != nil {
			rd.ServerError(w, r, fmt.Errorf("failed to save session: %w", err))
			return
		}
	}

	if err := rd.templates.Render(w, status, name, view); err != nil {
		rd.ServerError(w, r, err)
	}
}

// Redirect persists queued flashes and sends the client elsewhere.
func (rd *Renderer) Redirect(w http.ResponseWriter, r *http.Request, url string) {
	if err := rd.session(r).Save(r, w); err != nil {
		rd.ServerError(w, r, fmt.Errorf("failed to save session: %w", err))
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

// ServerError logs err and answers with a generic 500.
func (rd *Renderer) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	rd.log.WithError(err).WithField("url", requestURL(r)).Error("Request failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, r.Host, r.URL.RequestURI())
}
