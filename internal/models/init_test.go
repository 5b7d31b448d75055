package models

import (
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func setupModelsTest(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:models_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	if err := InitDB("sqlite", dsn, DBPoolConfig{}); err != nil {
		t.Fatalf("init db failed: %v", err)
	}
	if err := AutoMigrate(); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
}

func TestInitDefaultAdmin(t *testing.T) {
	setupModelsTest(t)

	if err := InitDefaultAdmin("", ""); err != nil {
		t.Fatalf("init default admin failed: %v", err)
	}

	var admin Admin
	if err := DB.First(&admin).Error; err != nil {
		t.Fatalf("load admin failed: %v", err)
	}
	if admin.Username != "admin@jewside.com" {
		t.Fatalf("username want admin@jewside.com got %s", admin.Username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("OriAdmin")); err != nil {
		t.Fatalf("default password hash mismatch: %v", err)
	}

	// A second call must not add another account.
	if err := InitDefaultAdmin("second@jewside.com", "other-password"); err != nil {
		t.Fatalf("repeat init failed: %v", err)
	}
	var count int64
	if err := DB.Model(&Admin{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("admin count want 1 got %d", count)
	}
}

func TestInitDefaultAdminNormalizesUsername(t *testing.T) {
	setupModelsTest(t)

	if err := InitDefaultAdmin("  Ori@JewSide.com  ", "custom-password"); err != nil {
		t.Fatalf("init default admin failed: %v", err)
	}

	var admin Admin
	if err := DB.First(&admin).Error; err != nil {
		t.Fatalf("load admin failed: %v", err)
	}
	if admin.Username != "ori@jewside.com" {
		t.Fatalf("username want ori@jewside.com got %s", admin.Username)
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range PrayerCategories {
		if !IsValidCategory(category) {
			t.Fatalf("category %s should be valid", category)
		}
	}
	for _, category := range []string{"", "morning", "Afternoon", "SHABBAT"} {
		if IsValidCategory(category) {
			t.Fatalf("category %q should be invalid", category)
		}
	}
}
