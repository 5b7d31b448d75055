package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/siddur-next/internal/config"
	"github.com/siddur-next/internal/models"
	"github.com/siddur-next/internal/provider"

	"github.com/gin-gonic/gin"
)

func setupRouterTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	if err := models.InitDB("sqlite", dsn, models.DBPoolConfig{}); err != nil {
		t.Fatalf("init db failed: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	if err := models.InitDefaultAdmin("", ""); err != nil {
		t.Fatalf("init default admin failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.JWT.SecretKey = "router-e2e-test-secret-key-0123456789"
	cfg.JWT.ExpireHours = 1
	cfg.Security.RateLimit.WindowSeconds = 900
	cfg.Security.RateLimit.MaxRequests = 100
	cfg.Security.LoginRateLimit.WindowSeconds = 900
	cfg.Security.LoginRateLimit.MaxRequests = 5
	cfg.Security.PasswordPolicy.MinLength = 6

	container := provider.NewContainer(cfg)
	return SetupRouter(cfg, container)
}

func doJSONRequest(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func loginForToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSONRequest(r, http.MethodPost, "/api/auth/login", `{"username":"admin@jewside.com","password":"OriAdmin"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status want 200 got %d: %s", w.Code, w.Body.String())
	}
	var payload struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode login response failed: %v", err)
	}
	if !payload.Success || payload.Token == "" {
		t.Fatalf("expected token in login response: %s", w.Body.String())
	}
	return payload.Token
}

func TestRouterPrayerFlow(t *testing.T) {
	r := setupRouterTest(t)

	w := doJSONRequest(r, http.MethodGet, "/api/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health status want 200 got %d", w.Code)
	}

	w = doJSONRequest(r, http.MethodGet, "/api/prayers", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("public list status want 200 got %d", w.Code)
	}

	body := `{"title":"Modeh Ani","category":"Morning","hebrew":"מוֹדֶה אֲנִי","translation":"I give thanks","order":1}`
	w = doJSONRequest(r, http.MethodPost, "/api/prayers", body, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create status want 401 got %d", w.Code)
	}

	token := loginForToken(t, r)

	w = doJSONRequest(r, http.MethodPost, "/api/prayers", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status want 201 got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Data models.Prayer `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response failed: %v", err)
	}
	if created.Data.ID == 0 {
		t.Fatalf("expected created prayer id, got %s", w.Body.String())
	}

	w = doJSONRequest(r, http.MethodGet, "/api/prayers", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("public list status want 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Modeh Ani") {
		t.Fatalf("expected created prayer in public list, got %s", w.Body.String())
	}

	// Validation failure reports the offending fields.
	w = doJSONRequest(r, http.MethodPost, "/api/prayers", `{"title":"No Category"}`, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid create status want 400 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"fields"`) {
		t.Fatalf("expected fields in validation response, got %s", w.Body.String())
	}

	// Hebrew error messages on demand.
	w = doJSONRequest(r, http.MethodGet, "/api/prayers/99999?lang=he", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing prayer status want 404 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "התפילה") {
		t.Fatalf("expected Hebrew message, got %s", w.Body.String())
	}

	w = doJSONRequest(r, http.MethodPut, fmt.Sprintf("/api/prayers/%d", created.Data.ID), `{"is_active":false}`, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update status want 200 got %d: %s", w.Code, w.Body.String())
	}

	w = doJSONRequest(r, http.MethodDelete, fmt.Sprintf("/api/prayers/%d", created.Data.ID), "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status want 200 got %d: %s", w.Code, w.Body.String())
	}
	w = doJSONRequest(r, http.MethodGet, fmt.Sprintf("/api/prayers/%d", created.Data.ID), "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted prayer status want 404 got %d", w.Code)
	}
}

func TestRouterVerifyAndChangePassword(t *testing.T) {
	r := setupRouterTest(t)
	token := loginForToken(t, r)

	w := doJSONRequest(r, http.MethodGet, "/api/auth/verify", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("verify status want 200 got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "admin@jewside.com") {
		t.Fatalf("expected admin payload, got %s", w.Body.String())
	}

	w = doJSONRequest(r, http.MethodGet, "/api/auth/verify", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("verify without token status want 401 got %d", w.Code)
	}

	w = doJSONRequest(r, http.MethodPost, "/api/auth/change-password", `{"currentPassword":"wrong","newPassword":"new-password"}`, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong current password status want 401 got %d", w.Code)
	}

	w = doJSONRequest(r, http.MethodPost, "/api/auth/change-password", `{"currentPassword":"OriAdmin","newPassword":"short"}`, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short password status want 400 got %d", w.Code)
	}

	w = doJSONRequest(r, http.MethodPost, "/api/auth/change-password", `{"currentPassword":"OriAdmin","newPassword":"new-password"}`, token)
	if w.Code != http.StatusOK {
		t.Fatalf("change password status want 200 got %d: %s", w.Code, w.Body.String())
	}

	w = doJSONRequest(r, http.MethodPost, "/api/auth/login", `{"username":"admin@jewside.com","password":"new-password"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login with new password status want 200 got %d", w.Code)
	}
}

func TestRouterLoginRateLimit(t *testing.T) {
	r := setupRouterTest(t)

	// The login budget is 5 per window. Attempts count whether or not the
	// credentials are valid, so the 6th request is rejected outright.
	for i := 1; i <= 5; i++ {
		w := doJSONRequest(r, http.MethodPost, "/api/auth/login", `{"username":"admin@jewside.com","password":"wrong"}`, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: status want 401 got %d", i, w.Code)
		}
	}

	w := doJSONRequest(r, http.MethodPost, "/api/auth/login", `{"username":"admin@jewside.com","password":"OriAdmin"}`, "")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("attempt 6: status want 429 got %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}
