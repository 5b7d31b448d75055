package repository

import (
	"errors"
	"strings"

	"github.com/siddur-next/internal/models"

	"gorm.io/gorm"
)

// PrayerListFilter narrows the admin prayer listing.
type PrayerListFilter struct {
	Category string
	IsActive *bool
	Search   string
}

// PrayerRepository is the prayer data access interface.
type PrayerRepository interface {
	ListActive() ([]models.Prayer, error)
	List(filter PrayerListFilter) ([]models.Prayer, error)
	GetByID(id uint) (*models.Prayer, error)
	Create(prayer *models.Prayer) error
	Update(prayer *models.Prayer) error
	Delete(id uint) error
}

// GormPrayerRepository is the GORM implementation.
type GormPrayerRepository struct {
	db *gorm.DB
}

// NewPrayerRepository creates a prayer repository.
func NewPrayerRepository(db *gorm.DB) *GormPrayerRepository {
	return &GormPrayerRepository{db: db}
}

// ListActive returns active prayers ordered by (category, sort_order).
func (r *GormPrayerRepository) ListActive() ([]models.Prayer, error) {
	prayers := make([]models.Prayer, 0)
	err := r.db.
		Where("is_active = ?", true).
		Order("category ASC, sort_order ASC").
		Find(&prayers).Error
	if err != nil {
		return nil, err
	}
	return prayers, nil
}

// List returns prayers for the admin surface, active or not.
func (r *GormPrayerRepository) List(filter PrayerListFilter) ([]models.Prayer, error) {
	prayers := make([]models.Prayer, 0)
	query := r.db.Model(&models.Prayer{})

	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR translation LIKE ?", like, like)
	}

	if err := query.Order("category ASC, sort_order ASC").Find(&prayers).Error; err != nil {
		return nil, err
	}
	return prayers, nil
}

// GetByID returns a prayer by id regardless of the active flag.
func (r *GormPrayerRepository) GetByID(id uint) (*models.Prayer, error) {
	var prayer models.Prayer
	if err := r.db.First(&prayer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prayer, nil
}

// Create inserts a prayer.
func (r *GormPrayerRepository) Create(prayer *models.Prayer) error {
	return r.db.Create(prayer).Error
}

// Update persists a prayer.
func (r *GormPrayerRepository) Update(prayer *models.Prayer) error {
	return r.db.Save(prayer).Error
}

// Delete removes the row. Hard delete: the record is gone, not deactivated.
func (r *GormPrayerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Prayer{}, id).Error
}
