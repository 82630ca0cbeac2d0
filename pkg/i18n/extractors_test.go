package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/pagekit/pkg/i18n"
)

func TestDefaultLangExtractor(t *testing.T) {
	t.Parallel()

	supported := i18n.DefaultLangExtractor("en", "fr", "de")
	open := i18n.DefaultLangExtractor()

	tests := []struct {
		name     string
		extr     i18n.LangExtractor
		setup    func(r *http.Request)
		target   string
		expected string
	}{
		{
			name:     "cookie wins",
			extr:     supported,
			target:   "/?lang=de",
			setup:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "lang", Value: "fr"}) },
			expected: "fr",
		},
		{
			name:     "unsupported cookie falls through to query",
			extr:     supported,
			target:   "/?lang=de",
			setup:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "lang", Value: "ja"}) },
			expected: "de",
		},
		{
			name:     "query parameter region matches base",
			extr:     supported,
			target:   "/?lang=fr-BE",
			expected: "fr",
		},
		{
			name:     "language header",
			extr:     supported,
			target:   "/",
			setup:    func(r *http.Request) { r.Header.Set("Language", "de") },
			expected: "de",
		},
		{
			name:     "accept language",
			extr:     supported,
			target:   "/",
			setup:    func(r *http.Request) { r.Header.Set("Accept-Language", "ja, de;q=0.8") },
			expected: "de",
		},
		{
			name:     "nothing supported",
			extr:     supported,
			target:   "/",
			setup:    func(r *http.Request) { r.Header.Set("Accept-Language", "ja") },
			expected: "",
		},
		{
			name:     "without supported languages any valid tag is accepted",
			extr:     open,
			target:   "/?lang=PT-BR",
			expected: "pt-br",
		},
		{
			name:     "invalid tag is ignored",
			extr:     open,
			target:   "/?lang=not_a_language!",
			expected: "",
		},
		{
			name:     "first accept language entry without supported languages",
			extr:     open,
			target:   "/",
			setup:    func(r *http.Request) { r.Header.Set("Accept-Language", "es;q=0.4, it") },
			expected: "it",
		},
		{
			name:     "empty request",
			extr:     open,
			target:   "/",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.setup != nil {
				tt.setup(r)
			}
			assert.Equal(t, tt.expected, tt.extr(r))
		})
	}
}

func TestNewExtractor(t *testing.T) {
	t.Parallel()

	extr := i18n.NewExtractor(nil, i18n.Cookie("locale"), i18n.Query("hl"))

	r := httptest.NewRequest(http.MethodGet, "/?lang=de&hl=fr", nil)
	assert.Equal(t, "fr", extr(r))

	r = httptest.NewRequest(http.MethodGet, "/?hl=fr", nil)
	r.AddCookie(&http.Cookie{Name: "locale", Value: "es"})
	assert.Equal(t, "es", extr(r))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Language", "de")
	assert.Empty(t, extr(r), "sources not listed are ignored")

	r = httptest.NewRequest(http.MethodGet, "/?hl="+strings.Repeat("a", 40), nil)
	assert.Empty(t, extr(r), "overlong codes are rejected")
}
