package public

import (
	"errors"

	"github.com/siddur-next/internal/http/response"
	"github.com/siddur-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetPrayers lists active prayers sorted by (category, order).
func (h *Handler) GetPrayers(c *gin.Context) {
	prayers, err := h.PrayerService.ListPublic()
	if err != nil {
		respondError(c, response.CodeInternal, "error.prayer_fetch_failed", err)
		return
	}
	response.List(c, len(prayers), prayers)
}

// GetPrayer returns a single prayer by id, active or not.
func (h *Handler) GetPrayer(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		respondError(c, response.CodeNotFound, "error.prayer_not_found", nil)
		return
	}

	prayer, err := h.PrayerService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.prayer_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.prayer_fetch_failed", err)
		return
	}
	response.Data(c, prayer)
}
