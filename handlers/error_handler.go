package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	render *Renderer
	log    logrus.FieldLogger
}

func NewErrorHandler(render *Renderer, log logrus.FieldLogger) *ErrorHandler {
	return &ErrorHandler{render: render, log: log}
}

// NotFound renders the custom 404 page for any unmatched route.
func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.log.Infof("'%s' error (%d) at %s", http.StatusText(http.StatusNotFound), http.StatusNotFound, requestURL(r))
	h.render.Page(w, r, http.StatusNotFound, "errors/404.html", View{})
}
