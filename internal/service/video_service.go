package service

import (
	"github.com/siddur-next/internal/models"
	"github.com/siddur-next/internal/repository"
)

// VideoService implements the video catalog operations.
type VideoService struct {
	repo repository.VideoRepository
}

// NewVideoService creates the video service.
func NewVideoService(repo repository.VideoRepository) *VideoService {
	return &VideoService{repo: repo}
}

// VideoInput carries create/update fields; nil means "not supplied".
type VideoInput struct {
	TitleEN         *string `json:"title_en"`
	TitleHE         *string `json:"title_he"`
	DescriptionEN   *string `json:"description_en"`
	DescriptionHE   *string `json:"description_he"`
	Thumbnail       *string `json:"thumbnail"`
	URL             *string `json:"url"`
	Category        *string `json:"category"`
	DurationSeconds *int    `json:"duration_seconds"`
	Featured        *bool   `json:"featured"`
	SortOrder       *int    `json:"order"`
	IsActive        *bool   `json:"is_active"`
}

// ListPublic returns active videos, optionally filtered by category or featured flag.
func (s *VideoService) ListPublic(category string, featured *bool) ([]models.Video, error) {
	return s.repo.ListActive(category, featured)
}

// ListAdmin returns all videos, including inactive ones.
func (s *VideoService) ListAdmin(filter repository.VideoListFilter) ([]models.Video, error) {
	return s.repo.List(filter)
}

// GetByID returns a video by id, active or not.
func (s *VideoService) GetByID(id uint) (*models.Video, error) {
	video, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrNotFound
	}
	return video, nil
}

// Create validates required fields and inserts a video.
func (s *VideoService) Create(input VideoInput) (*models.Video, error) {
	var missing []string

	titleEN := trimmed(input.TitleEN)
	if titleEN == "" {
		missing = append(missing, "title_en")
	}
	titleHE := trimmed(input.TitleHE)
	if titleHE == "" {
		missing = append(missing, "title_he")
	}
	url := trimmed(input.URL)
	if url == "" {
		missing = append(missing, "url")
	}
	category := trimmed(input.Category)
	if !models.IsValidCategory(category) {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return nil, newValidationError(missing...)
	}

	video := &models.Video{
		TitleEN:       titleEN,
		TitleHE:       titleHE,
		DescriptionEN: trimmed(input.DescriptionEN),
		DescriptionHE: trimmed(input.DescriptionHE),
		Thumbnail:     trimmed(input.Thumbnail),
		URL:           url,
		Category:      category,
		IsActive:      true,
	}
	if input.DurationSeconds != nil {
		video.DurationSeconds = *input.DurationSeconds
	}
	if input.Featured != nil {
		video.Featured = *input.Featured
	}
	if input.SortOrder != nil {
		video.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		video.IsActive = *input.IsActive
	}

	if err := s.repo.Create(video); err != nil {
		return nil, err
	}
	return video, nil
}

// Update merges the supplied fields into an existing video.
func (s *VideoService) Update(id uint, input VideoInput) (*models.Video, error) {
	video, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrNotFound
	}

	var invalid []string
	if input.TitleEN != nil {
		if trimmed(input.TitleEN) == "" {
			invalid = append(invalid, "title_en")
		} else {
			video.TitleEN = trimmed(input.TitleEN)
		}
	}
	if input.TitleHE != nil {
		if trimmed(input.TitleHE) == "" {
			invalid = append(invalid, "title_he")
		} else {
			video.TitleHE = trimmed(input.TitleHE)
		}
	}
	if input.URL != nil {
		if trimmed(input.URL) == "" {
			invalid = append(invalid, "url")
		} else {
			video.URL = trimmed(input.URL)
		}
	}
	if input.Category != nil {
		if !models.IsValidCategory(trimmed(input.Category)) {
			invalid = append(invalid, "category")
		} else {
			video.Category = trimmed(input.Category)
		}
	}
	if len(invalid) > 0 {
		return nil, newValidationError(invalid...)
	}

	if input.DescriptionEN != nil {
		video.DescriptionEN = trimmed(input.DescriptionEN)
	}
	if input.DescriptionHE != nil {
		video.DescriptionHE = trimmed(input.DescriptionHE)
	}
	if input.Thumbnail != nil {
		video.Thumbnail = trimmed(input.Thumbnail)
	}
	if input.DurationSeconds != nil {
		video.DurationSeconds = *input.DurationSeconds
	}
	if input.Featured != nil {
		video.Featured = *input.Featured
	}
	if input.SortOrder != nil {
		video.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		video.IsActive = *input.IsActive
	}

	if err := s.repo.Update(video); err != nil {
		return nil, err
	}
	return video, nil
}

// Delete removes a video permanently.
func (s *VideoService) Delete(id uint) error {
	video, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if video == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
