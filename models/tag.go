package models

// Tag is a label attachable to any number of posts. Names are unique;
// concurrent creation of the same name is resolved by the store's index.
type Tag struct {
	ID   int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex"`
}

// PostTag is the post/tag association row. The composite key makes
// duplicate association attempts conflict, which writers ignore.
type PostTag struct {
	PostID int64 `json:"postId" db:"post_id" gorm:"primaryKey;autoIncrement:false"`
	TagID  int64 `json:"tagId" db:"tag_id" gorm:"primaryKey;autoIncrement:false"`
}
