package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/app-blogs/backend/errs"
	"github.com/app-blogs/backend/models"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// GetOrCreate resolves a tag name to its id, inserting the row when the
// name is new. A concurrent insert of the same name is not an error: the
// conflicting insert is a no-op and the existing id is looked up instead,
// which collapses the create-vs-reuse race into one idempotent operation.
// It runs on the handle it is given so post creation can call it inside
// its own transaction.
func (r *TagRepo) GetOrCreate(tx *gorm.DB, name string) (int64, error) {
	return getOrCreateTag(tx, name)
}

func getOrCreateTag(tx *gorm.DB, name string) (int64, error) {
	tag := models.Tag{Name: name}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error; err != nil {
		return 0, err
	}
	if tag.ID != 0 {
		return tag.ID, nil
	}
	// Insert hit the unique index; the row already exists.
	if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
		return 0, err
	}
	return tag.ID, nil
}

// CreateIfAbsent inserts a tag and returns it, or returns nil when the
// name already exists. Unlike GetOrCreate, a duplicate here is the
// caller's request failing, not idempotent success; the strict tag
// creation endpoint maps nil to a conflict response.
func (r *TagRepo) CreateIfAbsent(name string) (*models.Tag, error) {
	tag := models.Tag{Name: name}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &tag, nil
}

// FindAll returns every tag ordered by name.
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Order("name").Find(&tags).Error
	return tags, err
}

// AssignToPost links each named tag to the post, creating tags that do
// not exist yet. All inserts happen in one transaction; duplicate
// associations are ignored.
func (r *TagRepo) AssignToPost(postID int64, names []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("post")
			}
			return err
		}

		for _, name := range names {
			tagID, err := getOrCreateTag(tx, name)
			if err != nil {
				return err
			}
			link := models.PostTag{PostID: postID, TagID: tagID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
