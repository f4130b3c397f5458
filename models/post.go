package models

import "time"

// AnonymousAuthor is stored when a post is submitted without an author.
const AnonymousAuthor = "Anonymous"

// Post represents a post in the board
type Post struct {
	ID      int64     `gorm:"primaryKey;column:id"`
	Author  string    `gorm:"column:author"`
	Message string    `gorm:"column:message"`
	Created time.Time `gorm:"column:created"`
}

// TableName overrides the table name used by GORM
func (Post) TableName() string {
	return "post"
}
