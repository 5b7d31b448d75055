package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin is an administrator account. Accounts are created by seed/bootstrap
// only; there is no registration endpoint. Usernames are stored lowercase.
type Admin struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"not null" json:"-"`
	LastLoginAt  *time.Time     `json:"last_login"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Admin) TableName() string {
	return "admins"
}
