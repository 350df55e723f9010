package models

// User represents a registered account. PasswordHash is never serialized;
// handlers return users through this struct with the hash already stripped
// by the repository's public lookup.
type User struct {
	ID           int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name" db:"name" gorm:"type:text;not null"`
	Email        string `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string `json:"-" db:"password_hash" gorm:"type:text;not null"`
}
