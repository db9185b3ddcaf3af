package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"ru", LangRu, true},
		{"kz", LangKz, true},
		{"KK", LangKz, true},
		{"kk-KZ", LangKz, true},
		{"en-US", LangEn, true},
		{"", "", false},
		{"not a tag!", "", false},
	}
	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestResolve(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	lang, persist := Resolve(req)
	assert.Equal(t, LangEn, lang)
	assert.True(t, persist)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "kz"})
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	lang, persist = Resolve(req)
	assert.Equal(t, LangKz, lang)
	assert.False(t, persist)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-GB,en;q=0.9")
	lang, _ = Resolve(req)
	assert.Equal(t, LangEn, lang)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	lang, _ = Resolve(req)
	assert.Equal(t, LangRu, lang)
}

func TestSetLanguageCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, LangEn)
	cookies := rec.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, LangCookieName, cookies[0].Name)
		assert.Equal(t, LangEn, cookies[0].Value)
	}
}
