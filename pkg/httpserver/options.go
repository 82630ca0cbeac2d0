package httpserver

import (
	"log/slog"
	"time"
)

// Option configures a Server.
type Option func(*options)

// WithAddr sets the listen address. ":0" picks a free port; read it back with Addr.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty address")
	}
	return func(o *options) { o.addr = addr }
}

// WithTimeouts sets the read, write and idle timeouts. Zero leaves a timeout unset.
func WithTimeouts(read, write, idle time.Duration) Option {
	if read < 0 || write < 0 || idle < 0 {
		panic("httpserver: negative timeout")
	}
	return func(o *options) {
		o.readTimeout = read
		o.writeTimeout = write
		o.idleTimeout = idle
	}
}

// WithReadHeaderTimeout bounds the time allowed to read request headers.
func WithReadHeaderTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: read header timeout must be positive")
	}
	return func(o *options) { o.readHeaderTimeout = d }
}

// WithShutdownTimeout sets the grace period for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: shutdown timeout must be positive")
	}
	return func(o *options) { o.shutdownTimeout = d }
}

// WithTLS serves HTTPS, with HTTP/2, using the given PEM files.
func WithTLS(certFile, keyFile string) Option {
	if certFile == "" || keyFile == "" {
		panic("httpserver: certificate and key files are required")
	}
	return func(o *options) {
		o.certFile = certFile
		o.keyFile = keyFile
	}
}

// WithH2C accepts cleartext HTTP/2, as spoken by proxies that terminate TLS.
func WithH2C() Option {
	return func(o *options) { o.h2c = true }
}

// WithLogger sets the logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
