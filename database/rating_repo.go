package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/app-blogs/backend/errs"
	"github.com/app-blogs/backend/models"
)

type RatingRepo struct {
	db *gorm.DB
}

func NewRatingRepo(db *gorm.DB) *RatingRepo {
	return &RatingRepo{db}
}

// Record inserts a rating and its association to the post in one
// transaction. The handler validates the value range before this point.
// Ratings are not deduplicated per user; the same caller may rate the
// same post again.
func (r *RatingRepo) Record(postID int64, value float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("post")
			}
			return err
		}

		rating := models.Rating{Value: value}
		if err := tx.Create(&rating).Error; err != nil {
			return err
		}

		link := models.PostRating{RatingID: rating.ID, PostID: postID}
		return tx.Create(&link).Error
	})
}

// Average computes the post's mean rating and rating count at query
// time. A post with no ratings averages to 0 with count 0; an unknown
// post id yields nil.
func (r *RatingRepo) Average(postID int64) (*models.RatingSummary, error) {
	var summary models.RatingSummary
	err := r.db.Raw(`
		SELECT p.id AS post_id,
		       COALESCE(AVG(rt.value), 0) AS average,
		       COUNT(rt.id) AS count
		FROM posts p
		LEFT JOIN post_ratings pr ON p.id = pr.post_id
		LEFT JOIN ratings rt ON pr.rating_id = rt.id
		WHERE p.id = ?
		GROUP BY p.id`, postID).Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	if summary.PostID == 0 {
		return nil, nil
	}
	return &summary, nil
}
