package models

// Rating is a single score given to a post, bounded to [0,5] by the
// handler before it reaches the repository.
type Rating struct {
	ID    int64   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Value float64 `json:"value" db:"value" gorm:"not null"`
}

// PostRating links a rating to the post it scores.
type PostRating struct {
	RatingID int64 `json:"ratingId" db:"rating_id" gorm:"primaryKey;autoIncrement:false"`
	PostID   int64 `json:"postId" db:"post_id" gorm:"primaryKey;autoIncrement:false"`
}

// RatingSummary is the derived aggregate for a post, computed at query
// time rather than stored.
type RatingSummary struct {
	PostID  int64   `json:"postId"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}
