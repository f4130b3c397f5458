package repositories

import "board/models"

type PostRepository interface {
	Insert(author, message string) error
	ListAll() ([]models.Post, error)
}
