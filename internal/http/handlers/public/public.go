package public

import (
	"strconv"
	"strings"
	"time"

	"github.com/siddur-next/internal/http/handlers/shared"
	"github.com/siddur-next/internal/http/response"
	"github.com/siddur-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler serves the public, unauthenticated surface.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

// Health reports API liveness.
func (h *Handler) Health(c *gin.Context) {
	response.OKWithMsg(c, "Siddur API is running", gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func respondError(c *gin.Context, code int, key string, err error) {
	shared.RespondError(c, code, key, err)
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
