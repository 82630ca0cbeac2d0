package httpserver

import "time"

// Config is loaded from the environment with pkg/config.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// TLSCertFile and TLSKeyFile enable HTTPS with HTTP/2.
	TLSCertFile string `env:"HTTP_TLS_CERT_FILE"`
	TLSKeyFile  string `env:"HTTP_TLS_KEY_FILE"`
	// H2C accepts HTTP/2 without TLS, typically behind a proxy speaking h2c.
	H2C bool `env:"HTTP_H2C" envDefault:"false"`
}

// NewFromConfig builds a Server from cfg; zero values keep the defaults.
// opts are applied after the config and win on conflict.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	var fromCfg []Option
	if cfg.Addr != "" {
		fromCfg = append(fromCfg, WithAddr(cfg.Addr))
	}
	fromCfg = append(fromCfg, WithTimeouts(max(cfg.ReadTimeout, 0), max(cfg.WriteTimeout, 0), max(cfg.IdleTimeout, 0)))
	if cfg.ReadHeaderTimeout > 0 {
		fromCfg = append(fromCfg, WithReadHeaderTimeout(cfg.ReadHeaderTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		fromCfg = append(fromCfg, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		fromCfg = append(fromCfg, WithTLS(cfg.TLSCertFile, cfg.TLSKeyFile))
	}
	if cfg.H2C {
		fromCfg = append(fromCfg, WithH2C())
	}
	return New(append(fromCfg, opts...)...)
}
