package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the Accept-Language header inspected per request.
const maxAcceptLanguageLength = 4096

// matcher resolves requested language tags against a fixed list of supported codes.
type matcher struct {
	codes []string
	m     language.Matcher
}

// newMatcher returns nil when no supported code parses.
func newMatcher(supported []string) *matcher {
	var (
		codes []string
		tags  []language.Tag
	)
	for _, code := range supported {
		tag, err := language.Parse(strings.TrimSpace(code))
		if err != nil {
			continue
		}
		codes = append(codes, strings.ToLower(strings.TrimSpace(code)))
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return nil
	}
	return &matcher{codes: codes, m: language.NewMatcher(tags)}
}

// match returns the supported code closest to tags, or "" when none is compatible.
func (m *matcher) match(tags ...language.Tag) string {
	if m == nil || len(tags) == 0 {
		return ""
	}
	_, idx, conf := m.m.Match(tags...)
	if conf == language.No {
		return ""
	}
	return m.codes[idx]
}

// parseAcceptLanguageHeader returns the tags of header ordered by quality.
// Malformed headers yield nil.
func parseAcceptLanguageHeader(header string) []language.Tag {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
		if i := strings.LastIndexByte(header, ','); i > 0 {
			header = header[:i]
		}
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	return tags
}

// ParseAcceptLanguage negotiates an Accept-Language header against
// supportedLangs, honoring quality values. Regional variants match their
// base language (fr-CA selects fr). defaultLang is returned when nothing matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if lang := newMatcher(supportedLangs).match(parseAcceptLanguageHeader(header)...); lang != "" {
		return lang
	}
	return defaultLang
}
