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

// ListPrayers lists all prayers for the admin dashboard, inactive included.
func (h *Handler) ListPrayers(c *gin.Context) {
	filter := repository.PrayerListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("is_active"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &value
		}
	}

	prayers, err := h.PrayerService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.prayer_fetch_failed", err)
		return
	}
	response.List(c, len(prayers), prayers)
}

// CreatePrayer validates and inserts a prayer.
func (h *Handler) CreatePrayer(c *gin.Context) {
	var input service.PrayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	prayer, err := h.PrayerService.Create(input)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			respondValidationError(c, validationErr)
			return
		}
		respondError(c, response.CodeInternal, "error.prayer_save_failed", err)
		return
	}

	requestLog(c).Infow("prayer_created", "prayer_id", prayer.ID, "title", prayer.Title)
	response.Created(c, i18n.T(i18n.ResolveLocale(c), "message.prayer_created"), prayer)
}

// UpdatePrayer merges the supplied fields into an existing prayer.
func (h *Handler) UpdatePrayer(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		respondError(c, response.CodeNotFound, "error.prayer_not_found", nil)
		return
	}

	var input service.PrayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	prayer, err := h.PrayerService.Update(id, input)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.prayer_not_found", nil)
		case errors.As(err, &validationErr):
			respondValidationError(c, validationErr)
		default:
			respondError(c, response.CodeInternal, "error.prayer_save_failed", err)
		}
		return
	}

	response.OKWithMsg(c, i18n.T(i18n.ResolveLocale(c), "message.prayer_updated"), gin.H{"data": prayer})
}

// DeletePrayer removes a prayer permanently.
func (h *Handler) DeletePrayer(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		respondError(c, response.CodeNotFound, "error.prayer_not_found", nil)
		return
	}

	if err := h.PrayerService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.prayer_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.prayer_save_failed", err)
		return
	}

	requestLog(c).Infow("prayer_deleted", "prayer_id", id)
	response.OKWithMsg(c, i18n.T(i18n.ResolveLocale(c), "message.prayer_deleted"), nil)
}

func respondValidationError(c *gin.Context, validationErr *service.ValidationError) {
	msg := i18n.Sprintf(i18n.ResolveLocale(c), "error.validation_failed", validationErr.FieldList())
	response.ErrorWithFields(c, response.CodeBadRequest, msg, gin.H{"fields": validationErr.Fields})
}
