package database

import (
	"gorm.io/gorm"

	"github.com/app-blogs/backend/models"
)

type Database struct {
	userRepo   *UserRepo
	postRepo   *PostRepo
	tagRepo    *TagRepo
	ratingRepo *RatingRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:   NewUserRepo(db),
		postRepo:   NewPostRepo(db),
		tagRepo:    NewTagRepo(db),
		ratingRepo: NewRatingRepo(db),
	}
}

// Migrate creates or updates the five tables the app owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Tag{},
		&models.PostTag{},
		&models.Rating{},
		&models.PostRating{},
	)
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) RatingRepo() *RatingRepo {
	return d.ratingRepo
}
