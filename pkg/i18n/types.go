package i18n

import "net/http"

// LangExtractor extracts a language code from a request. It returns ""
// when the request names no usable language.
type LangExtractor func(r *http.Request) string
