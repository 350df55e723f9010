package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/app-blogs/backend/models"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// Create inserts the post and its tag associations in one transaction.
// Tag names that do not exist yet are created inline; duplicate
// associations are ignored. Any failure rolls the whole thing back, so
// a half-created post never leaves orphaned tag or association rows.
// PublishDate defaults to the current time when unset.
func (r *PostRepo) Create(post *models.Post, tagNames []string) (int64, error) {
	if post.PublishDate.IsZero() {
		post.PublishDate = time.Now()
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(post).Error; err != nil {
			return err
		}

		for _, name := range tagNames {
			tagID, err := getOrCreateTag(tx, name)
			if err != nil {
				return err
			}
			link := models.PostTag{PostID: post.ID, TagID: tagID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return post.ID, nil
}

// FindByID returns a post with its tags ordered by name, or nil when
// the id is unknown. A post without tags carries an empty list.
func (r *PostRepo) FindByID(id int64) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Order("tags.name")
	}).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if post.Tags == nil {
		post.Tags = []models.Tag{}
	}
	return &post, nil
}

// FindPage returns the total post count alongside one page, newest
// publish date first. The count is independent of the page bounds.
func (r *PostRepo) FindPage(offset, limit int) (int64, []*models.Post, error) {
	var total int64
	if err := r.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var posts []*models.Post
	err := r.db.Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Order("tags.name")
	}).Order("publish_date DESC").Offset(offset).Limit(limit).Find(&posts).Error
	if err != nil {
		return 0, nil, err
	}
	for _, post := range posts {
		if post.Tags == nil {
			post.Tags = []models.Tag{}
		}
	}
	return total, posts, nil
}

// Update overwrites only the fields present in the patch; nil fields
// keep their prior value. Author and tags cannot change through this
// path. Returns the updated post, or nil when the id is unknown.
func (r *PostRepo) Update(id int64, patch models.PostPatch) (*models.Post, error) {
	var existing models.Post
	err := r.db.First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Body != nil {
		updates["body"] = *patch.Body
	}
	if patch.Cover != nil {
		updates["cover"] = *patch.Cover
	}
	if patch.Published != nil {
		updates["published"] = *patch.Published
	}

	if len(updates) > 0 {
		if err := r.db.Model(&models.Post{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

// Delete removes the post's tag associations, its rating associations
// and finally the post row, all in one transaction. The tag and rating
// entities themselves survive. Returns whether a post row was actually
// removed, so a second delete of the same id reports false.
func (r *PostRepo) Delete(id int64) (bool, error) {
	var removed bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostRating{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected > 0
		return nil
	})
	return removed, err
}
