package models

import (
	"strings"

	"github.com/siddur-next/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultAdminUsername = "admin@jewside.com"
	defaultAdminPassword = "OriAdmin"
)

// InitDefaultAdmin creates the bootstrap admin account when none exists.
func InitDefaultAdmin(username, password string) error {
	var count int64
	if err := DB.Model(&Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if username == "" {
		username = defaultAdminUsername
	}
	if password == "" {
		password = defaultAdminPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := Admin{
		Username:     strings.ToLower(strings.TrimSpace(username)),
		PasswordHash: string(hash),
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == defaultAdminPassword {
		logger.Warnw("default_admin_created_with_default_password", "username", admin.Username)
		logger.Warnw("default_admin_password_change_required", "username", admin.Username)
	} else {
		logger.Infow("default_admin_created", "username", admin.Username)
	}
	return nil
}
