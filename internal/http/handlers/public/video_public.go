package public

import (
	"errors"
	"strconv"

	"github.com/siddur-next/internal/http/response"
	"github.com/siddur-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetVideos lists active videos, optionally filtered by category or featured flag.
func (h *Handler) GetVideos(c *gin.Context) {
	category := c.Query("category")
	var featured *bool
	if raw := c.Query("featured"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			featured = &value
		}
	}

	videos, err := h.VideoService.ListPublic(category, featured)
	if err != nil {
		respondError(c, response.CodeInternal, "error.video_fetch_failed", err)
		return
	}
	response.List(c, len(videos), videos)
}

// GetVideo returns a single video by id, active or not.
func (h *Handler) GetVideo(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		respondError(c, response.CodeNotFound, "error.video_not_found", nil)
		return
	}

	video, err := h.VideoService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.video_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.video_fetch_failed", err)
		return
	}
	response.Data(c, video)
}
