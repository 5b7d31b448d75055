package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/siddur-next/internal/config"
	"github.com/siddur-next/internal/models"
	"github.com/siddur-next/internal/repository"
	"github.com/siddur-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const testJWTSecret = "router-middleware-test-secret-0123456789"

func setupJWTMiddlewareTest(t *testing.T) (*gin.Engine, *service.AuthService, *models.Admin, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:middleware_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = testJWTSecret
	cfg.JWT.ExpireHours = 1
	adminRepo := repository.NewAdminRepository(db)
	authSvc := service.NewAuthService(cfg, adminRepo)

	hash, err := authSvc.HashPassword("OriAdmin")
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := &models.Admin{Username: "admin@jewside.com", PasswordHash: hash}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}

	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(testJWTSecret, adminRepo), func(c *gin.Context) {
		adminID, _ := c.Get("admin_id")
		c.JSON(http.StatusOK, gin.H{"admin_id": adminID})
	})
	return r, authSvc, admin, db
}

func doProtectedRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddlewareMissingHeader(t *testing.T) {
	r, _, _, _ := setupJWTMiddlewareTest(t)

	w := doProtectedRequest(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"success":false`) {
		t.Fatalf("expected failure envelope, got %s", w.Body.String())
	}
}

func TestJWTAuthMiddlewareMalformedHeader(t *testing.T) {
	r, authSvc, admin, _ := setupJWTMiddlewareTest(t)
	token, _, err := authSvc.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	for _, header := range []string{"Basic abc", token, "Bearer"} {
		w := doProtectedRequest(r, header)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status want 401 got %d", header, w.Code)
		}
	}
}

func TestJWTAuthMiddlewareInvalidToken(t *testing.T) {
	r, _, _, _ := setupJWTMiddlewareTest(t)

	w := doProtectedRequest(r, "Bearer not-a-real-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
}

func TestJWTAuthMiddlewareExpiredToken(t *testing.T) {
	r, _, admin, _ := setupJWTMiddlewareTest(t)

	past := time.Now().Add(-2 * time.Hour)
	claims := service.JWTClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(past),
			NotBefore: jwt.NewNumericDate(past),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}

	w := doProtectedRequest(r, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
	if !strings.Contains(strings.ToLower(w.Body.String()), "expired") {
		t.Fatalf("expected expiry message, got %s", w.Body.String())
	}
}

func TestJWTAuthMiddlewareValidToken(t *testing.T) {
	r, authSvc, admin, _ := setupJWTMiddlewareTest(t)
	token, _, err := authSvc.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	w := doProtectedRequest(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), fmt.Sprintf(`"admin_id":%d`, admin.ID)) {
		t.Fatalf("expected admin_id in context, got %s", w.Body.String())
	}
}

func TestJWTAuthMiddlewareDeletedAdmin(t *testing.T) {
	r, authSvc, admin, db := setupJWTMiddlewareTest(t)
	token, _, err := authSvc.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	if err := db.Delete(&models.Admin{}, admin.ID).Error; err != nil {
		t.Fatalf("delete admin failed: %v", err)
	}

	w := doProtectedRequest(r, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
}
