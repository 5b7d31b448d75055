package repository

import (
	"errors"
	"strings"

	"github.com/siddur-next/internal/models"

	"gorm.io/gorm"
)

// VideoListFilter narrows video listings.
type VideoListFilter struct {
	Category string
	Featured *bool
	IsActive *bool
	Search   string
}

// VideoRepository is the video data access interface.
type VideoRepository interface {
	ListActive(category string, featured *bool) ([]models.Video, error)
	List(filter VideoListFilter) ([]models.Video, error)
	GetByID(id uint) (*models.Video, error)
	Create(video *models.Video) error
	Update(video *models.Video) error
	Delete(id uint) error
}

// GormVideoRepository is the GORM implementation.
type GormVideoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a video repository.
func NewVideoRepository(db *gorm.DB) *GormVideoRepository {
	return &GormVideoRepository{db: db}
}

// ListActive returns active videos ordered by (category, sort_order).
func (r *GormVideoRepository) ListActive(category string, featured *bool) ([]models.Video, error) {
	videos := make([]models.Video, 0)
	query := r.db.Where("is_active = ?", true)
	if category = strings.TrimSpace(category); category != "" {
		query = query.Where("category = ?", category)
	}
	if featured != nil {
		query = query.Where("featured = ?", *featured)
	}
	if err := query.Order("category ASC, sort_order ASC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// List returns videos for the admin surface, active or not.
func (r *GormVideoRepository) List(filter VideoListFilter) ([]models.Video, error) {
	videos := make([]models.Video, 0)
	query := r.db.Model(&models.Video{})

	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"title_en LIKE ? OR title_he LIKE ? OR description_en LIKE ? OR description_he LIKE ?",
			like, like, like, like,
		)
	}

	if err := query.Order("category ASC, sort_order ASC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// GetByID returns a video by id regardless of the active flag.
func (r *GormVideoRepository) GetByID(id uint) (*models.Video, error) {
	var video models.Video
	if err := r.db.First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

// Create inserts a video.
func (r *GormVideoRepository) Create(video *models.Video) error {
	return r.db.Create(video).Error
}

// Update persists a video.
func (r *GormVideoRepository) Update(video *models.Video) error {
	return r.db.Save(video).Error
}

// Delete removes the row.
func (r *GormVideoRepository) Delete(id uint) error {
	return r.db.Delete(&models.Video{}, id).Error
}
