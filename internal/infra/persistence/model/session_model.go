package model

import "time"

// SessionModel mirrors the 'sessions' table. UserID is a plain copy of users.id
// with no foreign key, so deleting a user leaves its sessions in place.
type SessionModel struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:varchar(64);index;not null"`
	Token     string    `gorm:"type:varchar(128);uniqueIndex:sessions_token_unique;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
