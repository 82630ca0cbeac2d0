package formatter

import (
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Config controls the headers set per response kind.
type Config struct {
	// MaxAge is sent as Cache-Control max-age. Zero disables caching.
	MaxAge time.Duration `env:"RESPONSE_MAX_AGE" envDefault:"0s"`
	// MIMETypes overrides or extends the kind to Content-Type mapping,
	// e.g. RESPONSE_MIME_TYPES="json:application/vnd.api+json".
	MIMETypes map[string]string `env:"RESPONSE_MIME_TYPES" envKeyValSeparator:":"`
}

var defaultTypes = map[string]string{
	"html": "text/html; charset=utf-8",
	"txt":  "text/plain; charset=utf-8",
	"json": "application/json; charset=utf-8",
}

// Formatter sets Content-Type, Cache-Control and X-Content-Type-Options.
type Formatter struct {
	types        map[string]string
	cacheControl string
}

// New returns a Formatter for cfg.
func New(cfg Config) *Formatter {
	types := make(map[string]string, len(defaultTypes)+len(cfg.MIMETypes))
	for k, v := range defaultTypes {
		types[k] = v
	}
	for k, v := range cfg.MIMETypes {
		types[strings.ToLower(strings.TrimPrefix(k, "."))] = v
	}

	cc := "no-store"
	if secs := int64(cfg.MaxAge / time.Second); secs > 0 {
		cc = "public, max-age=" + strconv.FormatInt(secs, 10)
	}
	return &Formatter{types: types, cacheControl: cc}
}

// ContentType returns the media type of kind. Unknown kinds are looked up
// as file extensions and fall back to application/octet-stream.
func (f *Formatter) ContentType(kind string) string {
	kind = strings.ToLower(strings.TrimPrefix(kind, "."))
	if t, ok := f.types[kind]; ok {
		return t
	}
	if t := mime.TypeByExtension("." + kind); t != "" {
		return t
	}
	return "application/octet-stream"
}

// SetHeaders writes the headers of kind into h.
func (f *Formatter) SetHeaders(h http.Header, kind string) {
	h.Set("Content-Type", f.ContentType(kind))
	h.Set("Cache-Control", f.cacheControl)
	h.Set("X-Content-Type-Options", "nosniff")
}
