// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The numeric id is generated by the
// database; the unique indexes on username and email are the enforcement
// backstop for registration uniqueness under concurrency.
type UserModel struct {
	ID           uint64  `gorm:"primaryKey;autoIncrement"`
	Username     string  `gorm:"type:varchar(50);uniqueIndex:idx_users_username;not null"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	Role         string  `gorm:"type:varchar(20);not null"`
	IsActive     bool    `gorm:"not null;default:true"`
	FirstName    *string `gorm:"type:varchar(100)"`
	LastName     *string `gorm:"type:varchar(100)"`
	SchoolName   *string `gorm:"type:varchar(255)"`
	Phone        *string `gorm:"type:varchar(30)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
