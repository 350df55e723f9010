package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/app-blogs/backend/errs"
	"github.com/app-blogs/backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// Add inserts a new user. The caller hashes the password before this
// point; a duplicate email surfaces as a conflict.
func (r *UserRepo) Add(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExists("user")
		}
		return err
	}
	return nil
}

// FindByEmail returns the user including the password hash. Internal
// use only: the hash is needed for credential verification.
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the public view of a user, hash stripped.
func (r *UserRepo) FindByID(id int64) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return &user, nil
}
