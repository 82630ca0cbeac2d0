package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/pagekit/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		header         string
		supportedLangs []string
		defaultLang    string
		expected       string
	}{
		{
			name:           "empty header returns default",
			header:         "",
			supportedLangs: []string{"en", "fr", "de"},
			defaultLang:    "en",
			expected:       "en",
		},
		{
			name:           "no supported languages returns default",
			header:         "fr",
			supportedLangs: nil,
			defaultLang:    "en",
			expected:       "en",
		},
		{
			name:           "exact match",
			header:         "fr",
			supportedLangs: []string{"en", "fr", "de"},
			defaultLang:    "en",
			expected:       "fr",
		},
		{
			name:           "region variant matches base language",
			header:         "fr-CA",
			supportedLangs: []string{"en", "fr", "de"},
			defaultLang:    "en",
			expected:       "fr",
		},
		{
			name:           "quality values respected",
			header:         "en;q=0.5,fr;q=0.9,de;q=0.8",
			supportedLangs: []string{"en", "fr", "de"},
			defaultLang:    "en",
			expected:       "fr",
		},
		{
			name:           "unsupported language falls back to default",
			header:         "ja,ko",
			supportedLangs: []string{"en", "fr", "de"},
			defaultLang:    "en",
			expected:       "en",
		},
		{
			name:           "supported codes are lowercased",
			header:         "de",
			supportedLangs: []string{"EN", "DE"},
			defaultLang:    "en",
			expected:       "de",
		},
		{
			name:           "malformed header returns default",
			header:         "en;q=nope",
			supportedLangs: []string{"en", "fr"},
			defaultLang:    "fr",
			expected:       "fr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := i18n.ParseAcceptLanguage(tt.header, tt.supportedLangs, tt.defaultLang)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseAcceptLanguage_OversizedHeader(t *testing.T) {
	t.Parallel()

	header := "fr," + strings.Repeat("de;q=0.1,", 1000)
	assert.Equal(t, "fr", i18n.ParseAcceptLanguage(header, []string{"en", "fr"}, "en"))
}
