package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

type loadOptions struct {
	prefix   string
	envFiles []string
}

// LoadOption tweaks a single Load call.
type LoadOption func(*loadOptions)

// WithPrefix scopes every env tag of the destination under prefix,
// so `env:"ADDR"` reads PREFIX_ADDR when prefix is "PREFIX_".
func WithPrefix(prefix string) LoadOption {
	return func(o *loadOptions) { o.prefix = prefix }
}

// WithEnvFiles loads the given dotenv files before parsing.
// Unlike the implicit ".env", missing files are reported as errors.
// Variables already present in the process environment win.
func WithEnvFiles(files ...string) LoadOption {
	return func(o *loadOptions) { o.envFiles = append(o.envFiles, files...) }
}

// Load fills v from environment variables according to its `env` and
// `envDefault` struct tags.
//
// A ".env" file in the working directory is loaded once per process if it
// exists. Explicit files passed through WithEnvFiles are loaded on every call.
//
//	var cfg dispatch.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...LoadOption) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The default file is optional.
		_ = godotenv.Load()
	})

	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](v *T, opts ...LoadOption) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
