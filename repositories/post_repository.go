package repositories

import (
	"time"

	"board/models"

	"gorm.io/gorm"
)

type postRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPostRepository works on the connection acquired for the current request.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Insert stores a new post and commits before returning.
func (r *postRepository) Insert(author, message string) error {
	post := models.Post{
		Author:  author,
		Message: message,
		Created: r.now(),
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&post).Error
	})
}

// ListAll returns every post, newest first.
func (r *postRepository) ListAll() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Select("author", "message", "created").
		Order("created DESC").
		Order("id DESC").
		Find(&posts).Error
	return posts, err
}
