package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func makeContext(t *testing.T, target string, acceptLanguage string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		c.Request.Header.Set("Accept-Language", acceptLanguage)
	}
	return c
}

func TestResolveLocale(t *testing.T) {
	cases := []struct {
		name           string
		target         string
		acceptLanguage string
		want           string
	}{
		{name: "default", target: "/api/prayers", want: LocaleEN},
		{name: "query he", target: "/api/prayers?lang=he", want: LocaleHE},
		{name: "query en", target: "/api/prayers?lang=en", want: LocaleEN},
		{name: "query unknown", target: "/api/prayers?lang=fr", want: LocaleEN},
		{name: "header he", target: "/api/prayers", acceptLanguage: "he-IL,he;q=0.9", want: LocaleHE},
		{name: "header legacy iw", target: "/api/prayers", acceptLanguage: "iw", want: LocaleHE},
		{name: "header en region", target: "/api/prayers", acceptLanguage: "en-US,en;q=0.9", want: LocaleEN},
		{name: "query beats header", target: "/api/prayers?lang=he", acceptLanguage: "en-US", want: LocaleHE},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := makeContext(t, tc.target, tc.acceptLanguage)
			if got := ResolveLocale(c); got != tc.want {
				t.Fatalf("locale want %s got %s", tc.want, got)
			}
		})
	}
}

func TestT(t *testing.T) {
	if got := T(LocaleEN, "error.invalid_credentials"); got != "Invalid credentials" {
		t.Fatalf("unexpected english message: %q", got)
	}
	if got := T(LocaleHE, "error.invalid_credentials"); got == "Invalid credentials" || got == "" {
		t.Fatalf("expected hebrew message, got %q", got)
	}
	// Unknown locale falls back to English, unknown key to itself.
	if got := T("fr", "error.invalid_credentials"); got != "Invalid credentials" {
		t.Fatalf("fallback want english got %q", got)
	}
	if got := T(LocaleEN, "error.does_not_exist"); got != "error.does_not_exist" {
		t.Fatalf("unknown key want key itself got %q", got)
	}
}

func TestSprintf(t *testing.T) {
	got := Sprintf(LocaleEN, "error.password_too_short", 6)
	if got != "New password must be at least 6 characters" {
		t.Fatalf("unexpected formatted message: %q", got)
	}
}

func TestCatalogHasBothLocales(t *testing.T) {
	for key, messages := range catalog {
		if messages[LocaleEN] == "" {
			t.Fatalf("key %s missing english message", key)
		}
		if messages[LocaleHE] == "" {
			t.Fatalf("key %s missing hebrew message", key)
		}
	}
}
