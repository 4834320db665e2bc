// Package model holds the relational persistence models.
package model

import "time"

// UserModel mirrors the 'users' table. IDs are UUIDs generated by the application.
// Column defaults live in the migrations so inserts never need RETURNING.
type UserModel struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(320);uniqueIndex:users_email_unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FieldOfStudy *string   `gorm:"type:varchar(255)"`
	Interests    []string  `gorm:"type:jsonb;serializer:json;not null"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
