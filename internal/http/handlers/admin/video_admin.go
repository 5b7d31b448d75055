package admin

import (
	"errors"
	"strconv"

	"github.com/siddur-next/internal/http/response"
	"github.com/siddur-next/internal/i18n"
	"github.com/siddur-next/internal/repository"
	"github.com/siddur-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListVideos lists all videos for the admin dashboard, inactive included.
func (h *Handler) ListVideos(c *gin.Context) {
	filter := repository.VideoListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("is_active"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &value
		}
	}
	if raw := c.Query("featured"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &value
		}
	}

	videos, err := h.VideoService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.video_fetch_failed", err)
		return
	}
	response.List(c, len(videos), videos)
}

// CreateVideo validates and inserts a video.
func (h *Handler) CreateVideo(c *gin.Context) {
	var input service.VideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	video, err := h.VideoService.Create(input)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			respondValidationError(c, validationErr)
			return
		}
		respondError(c, response.CodeInternal, "error.video_save_failed", err)
		return
	}

	requestLog(c).Infow("video_created", "video_id", video.ID, "title_en", video.TitleEN)
	response.Created(c, i18n.T(i18n.ResolveLocale(c), "message.video_created"), video)
}

// UpdateVideo merges the supplied fields into an existing video.
func (h *Handler) UpdateVideo(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		respondError(c, response.CodeNotFound, "error.video_not_found", nil)
		return
	}

	var input service.VideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	video, err := h.VideoService.Update(id, input)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.video_not_found", nil)
		case errors.As(err, &validationErr):
			respondValidationError(c, validationErr)
		default:
			respondError(c, response.CodeInternal, "error.video_save_failed", err)
		}
		return
	}

	response.OKWithMsg(c, i18n.T(i18n.ResolveLocale(c), "message.video_updated"), gin.H{"data": video})
}

// DeleteVideo removes a video permanently.
func (h *Handler) DeleteVideo(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		respondError(c, response.CodeNotFound, "error.video_not_found", nil)
		return
	}

	if err := h.VideoService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.video_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.video_save_failed", err)
		return
	}

	requestLog(c).Infow("video_deleted", "video_id", id)
	response.OKWithMsg(c, i18n.T(i18n.ResolveLocale(c), "message.video_deleted"), nil)
}
