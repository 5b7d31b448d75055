package models

import "time"

// Prayer categories. The set is fixed; validation rejects anything else.
const (
	CategoryMorning   = "Morning"
	CategoryEvening   = "Evening"
	CategoryShabbat   = "Shabbat"
	CategoryHolidays  = "Holidays"
	CategoryBlessings = "Blessings"
)

// PrayerCategories lists the allowed categories in display order.
var PrayerCategories = []string{
	CategoryMorning,
	CategoryEvening,
	CategoryShabbat,
	CategoryHolidays,
	CategoryBlessings,
}

// IsValidCategory reports whether category belongs to the fixed set.
func IsValidCategory(category string) bool {
	for _, c := range PrayerCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Prayer is a liturgical text with transliteration and translation.
// No soft-delete column: DELETE removes the row. IsActive only controls
// visibility on the public list.
type Prayer struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Title           string    `gorm:"type:varchar(200);not null" json:"title"`
	Category        string    `gorm:"type:varchar(40);not null;index:idx_prayers_category_order" json:"category"`
	Hebrew          string    `gorm:"type:text;not null" json:"hebrew"`
	Transliteration string    `gorm:"type:text" json:"transliteration"`
	Translation     string    `gorm:"type:text;not null" json:"translation"`
	SortOrder       int       `gorm:"default:0;index:idx_prayers_category_order" json:"order"`
	IsActive        bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Prayer) TableName() string {
	return "prayers"
}
