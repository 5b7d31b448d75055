package admin

import "github.com/siddur-next/internal/provider"

// Handler serves the identity-gated admin surface plus login.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
