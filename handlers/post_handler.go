package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"board/database"
	"board/models"
	"board/monitoring"
	"board/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	postsURL            = "/posts"
	emptyMessageWarning = "You need to post a message."
)

// PostForm is the submitted create form.
type PostForm struct {
	Author  string
	Message string `validate:"required"`
}

// PostHandler handles creating and listing posts
type PostHandler struct {
	render        *Renderer
	log           logrus.FieldLogger
	validate      *validator.Validate
	newRepository func(db *gorm.DB) repositories.PostRepository
}

func NewPostHandler(render *Renderer, log logrus.FieldLogger) *PostHandler {
	return &PostHandler{
		render:        render,
		log:           log,
		validate:      validator.New(),
		newRepository: repositories.NewPostRepository,
	}
}

// Create renders the post form on GET. On POST it stores the post and
// redirects to the list, or re-renders the form when the message is empty.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := PostForm{
			Author:  r.PostForm.Get("author"),
			Message: r.PostForm.Get("message"),
		}
		if strings.TrimSpace(form.Author) == "" {
			form.Author = models.AnonymousAuthor
		}

		if err := h.validate.Struct(form); err == nil {
			repo, err := h.repository(r)
			if err != nil {
				h.render.ServerError(w, r, err)
				return
			}
			if err := repo.Insert(form.Author, form.Message); err != nil {
				h.render.ServerError(w, r, fmt.Errorf("failed to insert post: %w", err))
				return
			}

			monitoring.PostsCreated.Inc()
			h.log.Infof("New post by %s", form.Author)
			h.render.AddFlash(r, FlashSuccess, fmt.Sprintf("Thanks for posting, %s", form.Author))
			h.render.Redirect(w, r, postsURL)
			return
		}

		monitoring.PostValidationFailures.Inc()
		h.render.AddFlash(r, FlashError, emptyMessageWarning)
	}

	h.render.Page(w, r, http.StatusOK, "posts/create.html", View{})
}

// List renders every post, newest first.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	repo, err := h.repository(r)
	if err != nil {
		h.render.ServerError(w, r, err)
		return
	}

	posts, err := repo.ListAll()
	if err != nil {
		h.render.ServerError(w, r, fmt.Errorf("failed to list posts: %w", err))
		return
	}

	h.render.Page(w, r, http.StatusOK, "posts/posts.html", View{Posts: posts})
}

func (h *PostHandler) repository(r *http.Request) (repositories.PostRepository, error) {
	accessor, err := database.FromRequest(r)
	if err != nil {
		return nil, err
	}
	db, err := accessor.Acquire()
	if err != nil {
		return nil, err
	}
	return h.newRepository(db), nil
}
