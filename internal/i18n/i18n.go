package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// Supported locales. English is the site default, Hebrew the second language.
const (
	LocaleEN = "en"
	LocaleHE = "he"
)

const localeQueryParam = "lang"

// ResolveLocale picks the response locale from the lang query parameter or
// the Accept-Language header. Unknown values fall back to English.
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return LocaleEN
	}
	if locale := normalizeLocale(c.Query(localeQueryParam)); locale != "" {
		return locale
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if locale := normalizeLocale(tag); locale != "" {
			return locale
		}
	}
	return LocaleEN
}

// T returns the message for key in the given locale, falling back to English
// and finally to the key itself.
func T(locale, key string) string {
	if messages, ok := catalog[key]; ok {
		if msg, ok := messages[normalizeOrDefault(locale)]; ok && msg != "" {
			return msg
		}
		if msg, ok := messages[LocaleEN]; ok && msg != "" {
			return msg
		}
	}
	return key
}

// Sprintf formats the localized message for key with args.
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func normalizeLocale(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	switch {
	case tag == LocaleEN || strings.HasPrefix(tag, "en-"):
		return LocaleEN
	case tag == LocaleHE || strings.HasPrefix(tag, "he-") || tag == "iw":
		return LocaleHE
	default:
		return ""
	}
}

func normalizeOrDefault(locale string) string {
	if normalized := normalizeLocale(locale); normalized != "" {
		return normalized
	}
	return LocaleEN
}

var catalog = map[string]map[string]string{
	"error.bad_request": {
		LocaleEN: "Invalid request payload",
		LocaleHE: "בקשה לא תקינה",
	},
	"error.credentials_required": {
		LocaleEN: "Please provide username and password",
		LocaleHE: "נא להזין שם משתמש וסיסמה",
	},
	"error.invalid_credentials": {
		LocaleEN: "Invalid credentials",
		LocaleHE: "פרטי ההתחברות שגויים",
	},
	"error.auth_header_missing": {
		LocaleEN: "No token provided",
		LocaleHE: "לא סופק אסימון גישה",
	},
	"error.auth_header_invalid": {
		LocaleEN: "Invalid authorization header",
		LocaleHE: "כותרת הרשאה לא תקינה",
	},
	"error.token_invalid": {
		LocaleEN: "Invalid token",
		LocaleHE: "אסימון לא תקין",
	},
	"error.token_expired": {
		LocaleEN: "Token has expired",
		LocaleHE: "פג תוקף האסימון",
	},
	"error.admin_not_found": {
		LocaleEN: "Admin not found",
		LocaleHE: "מנהל לא נמצא",
	},
	"error.unauthorized": {
		LocaleEN: "Unauthorized",
		LocaleHE: "אין הרשאה",
	},
	"error.validation_failed": {
		LocaleEN: "Missing or invalid fields: %s",
		LocaleHE: "שדות חסרים או לא תקינים: %s",
	},
	"error.prayer_not_found": {
		LocaleEN: "Prayer not found",
		LocaleHE: "התפילה לא נמצאה",
	},
	"error.prayer_fetch_failed": {
		LocaleEN: "Error fetching prayers",
		LocaleHE: "שגיאה בטעינת התפילות",
	},
	"error.prayer_save_failed": {
		LocaleEN: "Error saving prayer",
		LocaleHE: "שגיאה בשמירת התפילה",
	},
	"error.video_not_found": {
		LocaleEN: "Video not found",
		LocaleHE: "הסרטון לא נמצא",
	},
	"error.video_fetch_failed": {
		LocaleEN: "Error fetching videos",
		LocaleHE: "שגיאה בטעינת הסרטונים",
	},
	"error.video_save_failed": {
		LocaleEN: "Error saving video",
		LocaleHE: "שגיאה בשמירת הסרטון",
	},
	"error.password_fields_required": {
		LocaleEN: "Please provide current and new password",
		LocaleHE: "נא להזין סיסמה נוכחית וסיסמה חדשה",
	},
	"error.password_too_short": {
		LocaleEN: "New password must be at least %d characters",
		LocaleHE: "הסיסמה החדשה חייבת להכיל לפחות %d תווים",
	},
	"error.current_password_incorrect": {
		LocaleEN: "Current password is incorrect",
		LocaleHE: "הסיסמה הנוכחית שגויה",
	},
	"error.login_failed": {
		LocaleEN: "Error during login",
		LocaleHE: "שגיאה בהתחברות",
	},
	"error.rate_limited": {
		LocaleEN: "Too many requests, please try again in %d seconds",
		LocaleHE: "יותר מדי בקשות, נסו שוב בעוד %d שניות",
	},
	"error.login_too_many": {
		LocaleEN: "Too many login attempts, please try again in %d seconds",
		LocaleHE: "יותר מדי ניסיונות התחברות, נסו שוב בעוד %d שניות",
	},
	"error.rate_limit_unavailable": {
		LocaleEN: "Rate limiter unavailable",
		LocaleHE: "מגביל הבקשות אינו זמין",
	},
	"error.internal": {
		LocaleEN: "Internal server error",
		LocaleHE: "שגיאת שרת פנימית",
	},
	"message.login_success": {
		LocaleEN: "Login successful",
		LocaleHE: "ההתחברות הצליחה",
	},
	"message.password_changed": {
		LocaleEN: "Password changed successfully",
		LocaleHE: "הסיסמה הוחלפה בהצלחה",
	},
	"message.prayer_created": {
		LocaleEN: "Prayer created successfully",
		LocaleHE: "התפילה נוצרה בהצלחה",
	},
	"message.prayer_updated": {
		LocaleEN: "Prayer updated successfully",
		LocaleHE: "התפילה עודכנה בהצלחה",
	},
	"message.prayer_deleted": {
		LocaleEN: "Prayer deleted successfully",
		LocaleHE: "התפילה נמחקה בהצלחה",
	},
	"message.video_created": {
		LocaleEN: "Video created successfully",
		LocaleHE: "הסרטון נוצר בהצלחה",
	},
	"message.video_updated": {
		LocaleEN: "Video updated successfully",
		LocaleHE: "הסרטון עודכן בהצלחה",
	},
	"message.video_deleted": {
		LocaleEN: "Video deleted successfully",
		LocaleHE: "הסרטון נמחק בהצלחה",
	},
}
