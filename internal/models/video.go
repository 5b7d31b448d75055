package models

import "time"

// Video is an educational video with bilingual title and description.
// Same delete semantics as Prayer: hard delete, IsActive gates the public list.
type Video struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	TitleEN         string    `gorm:"type:varchar(200);not null" json:"title_en"`
	TitleHE         string    `gorm:"type:varchar(200);not null" json:"title_he"`
	DescriptionEN   string    `gorm:"type:text" json:"description_en"`
	DescriptionHE   string    `gorm:"type:text" json:"description_he"`
	Thumbnail       string    `gorm:"type:varchar(500)" json:"thumbnail"`
	URL             string    `gorm:"type:varchar(1000);not null" json:"url"`
	Category        string    `gorm:"type:varchar(40);not null;index:idx_videos_category_order" json:"category"`
	DurationSeconds int       `gorm:"default:0" json:"duration_seconds"`
	Featured        bool      `gorm:"default:false;index" json:"featured"`
	SortOrder       int       `gorm:"default:0;index:idx_videos_category_order" json:"order"`
	IsActive        bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Video) TableName() string {
	return "videos"
}
