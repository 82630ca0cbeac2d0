package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pagekit/pkg/i18n"
)

func TestLocaleContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(ctx))
	_, ok := i18n.LocaleFromContext(ctx)
	assert.False(t, ok)

	ctx = i18n.SetLocale(ctx, "en")
	ctx = i18n.SetLocale(ctx, "fr")
	assert.Equal(t, "fr", i18n.GetLocale(ctx))
	locale, ok := i18n.LocaleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "fr", locale)
}

func captureLocale(t *testing.T, mw func(http.Handler) http.Handler, r *http.Request) string {
	t.Helper()
	var got string
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.NotEmpty(t, got)
	return got
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("uses extractor", func(t *testing.T) {
		mw := i18n.Middleware(func(*http.Request) string { return "de" })
		assert.Equal(t, "de", captureLocale(t, mw, httptest.NewRequest(http.MethodGet, "/", nil)))
	})

	t.Run("falls back to english", func(t *testing.T) {
		mw := i18n.Middleware(func(*http.Request) string { return "" })
		assert.Equal(t, "en", captureLocale(t, mw, httptest.NewRequest(http.MethodGet, "/", nil)))
	})

	t.Run("nil extractor uses default", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?lang=it", nil)
		assert.Equal(t, "it", captureLocale(t, i18n.Middleware(nil), r))
	})
}

func TestLocalizer(t *testing.T) {
	t.Parallel()

	loc := i18n.NewLocalizer(i18n.Config{
		DefaultLanguage:    "de",
		SupportedLanguages: []string{"en", "de", "fr"},
		CookieName:         "lang",
		QueryParamName:     "lang",
	})

	t.Run("context value wins", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
		r = r.WithContext(i18n.SetLocale(r.Context(), "en"))
		assert.Equal(t, "en", loc.Locale(r))
	})

	t.Run("extracts from request", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
		assert.Equal(t, "fr", loc.Locale(r))
	})

	t.Run("default language", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "ja")
		assert.Equal(t, "de", loc.Locale(r))
	})

	t.Run("middleware uses configured default", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "de", captureLocale(t, loc.Middleware(), r))
	})

	t.Run("zero config", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "en", i18n.NewLocalizer(i18n.Config{}).Locale(r))
	})
}
