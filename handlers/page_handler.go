package handlers

import "net/http"

// PageHandler serves the static pages.
type PageHandler struct {
	render *Renderer
}

func NewPageHandler(render *Renderer) *PageHandler {
	return &PageHandler{render: render}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render.Page(w, r, http.StatusOK, "pages/home.html", View{})
}

func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render.Page(w, r, http.StatusOK, "pages/about.html", View{})
}
