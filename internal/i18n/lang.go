package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference
	LangCookieName = "menu_lang"
)

// Field suffixes used by the three-language columns
const (
	LangRu = "ru"
	LangKz = "kz"
	LangEn = "en"
)

// Kazakh is "kk" in BCP 47, the columns use "kz"
var supported = []language.Tag{
	language.Russian,
	language.Kazakh,
	language.English,
}

var matcher = language.NewMatcher(supported)

// Default is the language used when nothing else matches
func Default() string {
	return LangRu
}

// Normalize maps a user supplied code ("kz", "kk-KZ", "en-US", ...) to a column suffix
func Normalize(value string) (string, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", false
	}
	if value == LangKz {
		return LangKz, true
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return suffix(idx), true
}

// Resolve picks the language for the request: ?lang, then the cookie, then
// Accept-Language. The bool reports whether ?lang should be persisted.
func Resolve(r *http.Request) (string, bool) {
	if r == nil {
		return Default(), false
	}
	if lang, ok := Normalize(r.URL.Query().Get(LangParam)); ok {
		return lang, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if lang, ok := Normalize(cookie.Value); ok {
			return lang, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return suffix(idx), false
			}
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language on the response
func SetLanguageCookie(w http.ResponseWriter, lang string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    lang,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

func suffix(idx int) string {
	switch idx {
	case 1:
		return LangKz
	case 2:
		return LangEn
	default:
		return LangRu
	}
}
