package models

import "time"

// Post represents a blog post with its author and publication metadata
type Post struct {
	ID          int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	AuthorID    int64     `json:"authorId" db:"author_id" gorm:"not null;index"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Body        string    `json:"body" db:"body" gorm:"type:text;not null"`
	PublishDate time.Time `json:"publishDate" db:"publish_date" gorm:"not null"`
	Cover       *string   `json:"cover,omitempty" db:"cover" gorm:"type:text"`
	Published   bool      `json:"published" db:"published" gorm:"not null;default:false"`
	Tags        []Tag     `json:"tags" gorm:"many2many:post_tags;"`
}

// PostPatch carries a partial update; nil fields keep their prior value.
// Author and tags are not updatable through this path.
type PostPatch struct {
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	Cover     *string `json:"cover"`
	Published *bool   `json:"published"`
}
