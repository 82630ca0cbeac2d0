package scripts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/pagekit/pkg/cache"
)

// Config configures a Repository.
type Config struct {
	// Dir is the local directory read when no S3 bucket is configured.
	Dir string `env:"SCRIPTS_DIR" envDefault:"public/scripts"`
	// Cache keeps loaded scripts in memory. Disabled in development so
	// edits show up on reload.
	Cache     bool          `env:"SCRIPTS_CACHE" envDefault:"true"`
	CacheSize int           `env:"SCRIPTS_CACHE_SIZE" envDefault:"32"`
	CacheTTL  time.Duration `env:"SCRIPTS_CACHE_TTL" envDefault:"0s"`
	// LoadTimeout bounds a shared load. It runs detached from the caller's
	// cancellation since other requests may be waiting on it.
	LoadTimeout time.Duration `env:"SCRIPTS_LOAD_TIMEOUT" envDefault:"10s"`
}

const defaultLoadTimeout = 10 * time.Second

// Repository serves script bodies from a Source, caching them when enabled.
// Concurrent loads of the same script share one Source call.
type Repository struct {
	source  Source
	cache   *cache.LRU[string, string]
	group   singleflight.Group
	timeout time.Duration
}

// NewRepository returns a Repository reading from source.
func NewRepository(source Source, cfg Config) *Repository {
	r := &Repository{source: source, timeout: cfg.LoadTimeout}
	if r.timeout <= 0 {
		r.timeout = defaultLoadTimeout
	}
	if cfg.Cache {
		size := cfg.CacheSize
		if size <= 0 {
			size = 32
		}
		r.cache = cache.NewLRU[string, string](size, cache.WithTTL(cfg.CacheTTL))
	}
	return r
}

// Script returns the body of the script called name.
func (r *Repository) Script(ctx context.Context, name string) (string, error) {
	if !validName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidScriptName, name)
	}
	if r.cache != nil {
		if body, ok := r.cache.Get(name); ok {
			return body, nil
		}
	}

	ch := r.group.DoChan(name, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
		defer cancel()

		body, err := r.source.Load(loadCtx, name)
		if err != nil {
			return "", err
		}
		if r.cache != nil {
			r.cache.Put(name, body)
		}
		return body, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", errors.Join(ErrOperationCanceled, ctx.Err())
	}
}

// Invalidate drops every cached script.
func (r *Repository) Invalidate() {
	if r.cache != nil {
		r.cache.Purge()
	}
}

func validName(name string) bool {
	return name != "" && !strings.Contains(name, `\`) && fs.ValidPath(name) && name != "."
}
