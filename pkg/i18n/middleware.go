package i18n

import (
	"net/http"
)

// Middleware determines the client's preferred language with extr and
// stores it in the request context, where GetLocale finds it.
// A nil extr uses DefaultLangExtractor. An empty result falls back to "en".
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	return middleware(extr, DefaultLanguage)
}

func middleware(extr LangExtractor, fallback string) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}
	if fallback == "" {
		fallback = DefaultLanguage
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = fallback
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
