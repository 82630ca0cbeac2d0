package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// RFC 5646 recommends at most 35 characters per tag.
const maxLangCodeLength = 35

// Source reads a raw language code from one place in a request.
type Source func(r *http.Request) string

// Cookie reads the named cookie.
func Cookie(name string) Source {
	return func(r *http.Request) string {
		c, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		return c.Value
	}
}

// Query reads the named query parameter.
func Query(name string) Source {
	return func(r *http.Request) string { return r.URL.Query().Get(name) }
}

// Header reads the named request header.
func Header(name string) Source {
	return func(r *http.Request) string { return r.Header.Get(name) }
}

// NewExtractor tries sources in order, then negotiates Accept-Language.
// With supported codes, the first value matching one of them wins and
// regional variants resolve to their base (fr-BE selects fr). Without,
// any well-formed tag is returned lowercased.
func NewExtractor(supported []string, sources ...Source) LangExtractor {
	m := newMatcher(supported)

	return func(r *http.Request) string {
		for _, src := range sources {
			if lang := normalize(m, strings.TrimSpace(src(r))); lang != "" {
				return lang
			}
		}

		tags := parseAcceptLanguageHeader(r.Header.Get("Accept-Language"))
		switch {
		case m != nil:
			return m.match(tags...)
		case len(tags) > 0:
			return strings.ToLower(tags[0].String())
		default:
			return ""
		}
	}
}

// DefaultLangExtractor checks the "lang" cookie, the "lang" query parameter,
// the non-standard Language header and finally Accept-Language.
func DefaultLangExtractor(supported ...string) LangExtractor {
	return NewExtractor(supported, Cookie("lang"), Query("lang"), Header("Language"))
}

func normalize(m *matcher, code string) string {
	if code == "" || len(code) > maxLangCodeLength {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	if m == nil {
		return strings.ToLower(code)
	}
	return m.match(tag)
}
