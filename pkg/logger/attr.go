package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error".
// A nil error yields an empty Attr which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request correlation id under "request_id".
// Empty ids are dropped.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records a short event name under "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Method records the HTTP method under "method".
func Method(m string) slog.Attr {
	return slog.String("method", m)
}

// Path records the request path under "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Mode records the negotiated response mode ("html" or "xhr") under "mode".
func Mode(m string) slog.Attr {
	return slog.String("mode", m)
}

// StatusCode records an HTTP status under "status_code".
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Duration records an elapsed time under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Group bundles attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}
