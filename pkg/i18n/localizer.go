package i18n

import (
	"net/http"
)

// Config configures locale detection.
type Config struct {
	DefaultLanguage    string   `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`
	SupportedLanguages []string `env:"I18N_SUPPORTED_LANGUAGES" envSeparator:","`
	CookieName         string   `env:"I18N_COOKIE_NAME" envDefault:"lang"`
	QueryParamName     string   `env:"I18N_QUERY_PARAM" envDefault:"lang"`
}

// Localizer resolves the locale of a request: the value stored in the
// context by its middleware, else the extractor result, else the default.
type Localizer struct {
	extract  LangExtractor
	fallback string
}

// NewLocalizer builds a Localizer from cfg.
func NewLocalizer(cfg Config) *Localizer {
	fallback := cfg.DefaultLanguage
	if fallback == "" {
		fallback = DefaultLanguage
	}
	var sources []Source
	if cfg.CookieName != "" {
		sources = append(sources, Cookie(cfg.CookieName))
	}
	if cfg.QueryParamName != "" {
		sources = append(sources, Query(cfg.QueryParamName))
	}
	sources = append(sources, Header("Language"))

	return &Localizer{
		extract:  NewExtractor(cfg.SupportedLanguages, sources...),
		fallback: fallback,
	}
}

// Locale returns the locale of r.
func (l *Localizer) Locale(r *http.Request) string {
	if locale, ok := LocaleFromContext(r.Context()); ok {
		return locale
	}
	if locale := l.extract(r); locale != "" {
		return locale
	}
	return l.fallback
}

// Middleware stores the locale of every request in its context.
func (l *Localizer) Middleware() func(http.Handler) http.Handler {
	return middleware(l.extract, l.fallback)
}
