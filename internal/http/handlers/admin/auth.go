package admin

import (
	"errors"
	"time"

	"github.com/siddur-next/internal/http/handlers/shared"
	"github.com/siddur-next/internal/http/response"
	"github.com/siddur-next/internal/i18n"
	"github.com/siddur-next/internal/models"
	"github.com/siddur-next/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the login body.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest is the change-password body.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// Login verifies credentials and returns a signed bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.credentials_required", nil)
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "error.invalid_credentials", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.login_failed", err)
		return
	}

	requestLog(c).Infow("admin_login", "admin_id", admin.ID, "username", admin.Username)
	response.OKWithMsg(c, i18n.T(i18n.ResolveLocale(c), "message.login_success"), gin.H{
		"token":      token,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
		"admin":      adminJSON(admin),
	})
}

// Verify resolves the bearer token back to its admin account.
func (h *Handler) Verify(c *gin.Context) {
	adminID, ok := shared.AdminID(c)
	if !ok {
		return
	}

	admin, err := h.AuthService.GetByID(adminID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.admin_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.OK(c, gin.H{"admin": adminJSON(admin)})
}

// ChangePassword replaces the admin's password after verifying the current one.
func (h *Handler) ChangePassword(c *gin.Context) {
	adminID, ok := shared.AdminID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.password_fields_required", nil)
		return
	}

	if err := h.AuthService.ChangePassword(adminID, req.CurrentPassword, req.NewPassword); err != nil {
		var policyErr *service.PasswordPolicyError
		switch {
		case errors.Is(err, service.ErrInvalidPassword):
			respondError(c, response.CodeUnauthorized, "error.current_password_incorrect", nil)
		case errors.As(err, &policyErr):
			msg := i18n.Sprintf(i18n.ResolveLocale(c), "error.password_too_short", policyErr.MinLength)
			respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.admin_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}

	requestLog(c).Infow("admin_password_changed", "admin_id", adminID)
	response.OKWithMsg(c, i18n.T(i18n.ResolveLocale(c), "message.password_changed"), nil)
}

func adminJSON(admin *models.Admin) gin.H {
	return gin.H{
		"id":         admin.ID,
		"username":   admin.Username,
		"last_login": admin.LastLoginAt,
	}
}
