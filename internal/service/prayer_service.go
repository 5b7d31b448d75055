package service

import (
	"strings"

	"github.com/siddur-next/internal/models"
	"github.com/siddur-next/internal/repository"
)

// PrayerService implements the prayer content operations.
type PrayerService struct {
	repo repository.PrayerRepository
}

// NewPrayerService creates the prayer service.
func NewPrayerService(repo repository.PrayerRepository) *PrayerService {
	return &PrayerService{repo: repo}
}

// PrayerInput carries create/update fields. Nil pointers are "not supplied",
// which makes updates a partial merge.
type PrayerInput struct {
	Title           *string `json:"title"`
	Category        *string `json:"category"`
	Hebrew          *string `json:"hebrew"`
	Transliteration *string `json:"transliteration"`
	Translation     *string `json:"translation"`
	SortOrder       *int    `json:"order"`
	IsActive        *bool   `json:"is_active"`
}

// ListPublic returns active prayers sorted by (category, order).
func (s *PrayerService) ListPublic() ([]models.Prayer, error) {
	return s.repo.ListActive()
}

// ListAdmin returns all prayers, including inactive ones.
func (s *PrayerService) ListAdmin(filter repository.PrayerListFilter) ([]models.Prayer, error) {
	return s.repo.List(filter)
}

// GetByID returns a prayer by id, active or not.
func (s *PrayerService) GetByID(id uint) (*models.Prayer, error) {
	prayer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prayer == nil {
		return nil, ErrNotFound
	}
	return prayer, nil
}

// Create validates required fields and inserts a prayer.
func (s *PrayerService) Create(input PrayerInput) (*models.Prayer, error) {
	var missing []string

	title := trimmed(input.Title)
	if title == "" {
		missing = append(missing, "title")
	}
	category := trimmed(input.Category)
	if !models.IsValidCategory(category) {
		missing = append(missing, "category")
	}
	hebrew := trimmed(input.Hebrew)
	if hebrew == "" {
		missing = append(missing, "hebrew")
	}
	translation := trimmed(input.Translation)
	if translation == "" {
		missing = append(missing, "translation")
	}
	if len(missing) > 0 {
		return nil, newValidationError(missing...)
	}

	prayer := &models.Prayer{
		Title:           title,
		Category:        category,
		Hebrew:          hebrew,
		Transliteration: trimmed(input.Transliteration),
		Translation:     translation,
		IsActive:        true,
	}
	if input.SortOrder != nil {
		prayer.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		prayer.IsActive = *input.IsActive
	}

	if err := s.repo.Create(prayer); err != nil {
		return nil, err
	}
	return prayer, nil
}

// Update merges the supplied fields into an existing prayer.
func (s *PrayerService) Update(id uint, input PrayerInput) (*models.Prayer, error) {
	prayer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prayer == nil {
		return nil, ErrNotFound
	}

	var invalid []string
	if input.Title != nil {
		if trimmed(input.Title) == "" {
			invalid = append(invalid, "title")
		} else {
			prayer.Title = trimmed(input.Title)
		}
	}
	if input.Category != nil {
		if !models.IsValidCategory(trimmed(input.Category)) {
			invalid = append(invalid, "category")
		} else {
			prayer.Category = trimmed(input.Category)
		}
	}
	if input.Hebrew != nil {
		if trimmed(input.Hebrew) == "" {
			invalid = append(invalid, "hebrew")
		} else {
			prayer.Hebrew = trimmed(input.Hebrew)
		}
	}
	if input.Transliteration != nil {
		prayer.Transliteration = trimmed(input.Transliteration)
	}
	if input.Translation != nil {
		if trimmed(input.Translation) == "" {
			invalid = append(invalid, "translation")
		} else {
			prayer.Translation = trimmed(input.Translation)
		}
	}
	if len(invalid) > 0 {
		return nil, newValidationError(invalid...)
	}
	if input.SortOrder != nil {
		prayer.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		prayer.IsActive = *input.IsActive
	}

	if err := s.repo.Update(prayer); err != nil {
		return nil, err
	}
	return prayer, nil
}

// Delete removes a prayer permanently.
func (s *PrayerService) Delete(id uint) error {
	prayer, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if prayer == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func trimmed(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
