package assetversion

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/pagekit/pkg/logger"
)

// Config configures a Manager.
type Config struct {
	// Dir is the public asset directory hashed into the version.
	Dir string `env:"ASSETS_DIR" envDefault:"public"`
	// Static, when set, is used as the version and nothing is hashed.
	Static string `env:"ASSETS_VERSION"`
	// Length truncates the hex digest.
	Length   int           `env:"ASSETS_VERSION_LENGTH" envDefault:"10"`
	RedisKey string        `env:"ASSETS_VERSION_REDIS_KEY" envDefault:"pagekit:assets:version"`
	RedisTTL time.Duration `env:"ASSETS_VERSION_REDIS_TTL" envDefault:"0s"`
	// ResolveTimeout bounds computing the version. The computation is shared
	// by concurrent callers and ignores their individual cancellation.
	ResolveTimeout time.Duration `env:"ASSETS_VERSION_TIMEOUT" envDefault:"10s"`
}

const defaultResolveTimeout = 10 * time.Second

// Store shares the version between server instances, so every instance
// serves documents pointing at the same asset root.
type Store interface {
	// Get returns the stored version, or "" when none is stored.
	Get(ctx context.Context) (string, error)
	// SetIfAbsent stores version unless one exists and returns the stored value.
	SetIfAbsent(ctx context.Context, version string) (string, error)
	Delete(ctx context.Context) error
}

// Option configures a Manager.
type Option func(*Manager)

// WithStore shares the computed version through store.
func WithStore(store Store) Option {
	return func(m *Manager) { m.store = store }
}

// WithLogger sets the logger used to report store failures.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// Manager computes and caches the asset version token: a truncated SHA-256
// over the paths and contents of every file in the asset directory.
type Manager struct {
	fsys    fs.FS
	static  string
	length  int
	store   Store
	logger  *slog.Logger
	timeout time.Duration

	mu      sync.RWMutex
	version string
	group   singleflight.Group
}

// NewManager returns a Manager hashing fsys.
func NewManager(fsys fs.FS, cfg Config, opts ...Option) *Manager {
	length := cfg.Length
	if length <= 0 || length > sha256.Size*2 {
		length = sha256.Size * 2
	}
	m := &Manager{
		fsys:    fsys,
		static:  cfg.Static,
		length:  length,
		logger:  logger.Discard(),
		timeout: cfg.ResolveTimeout,
	}
	if m.timeout <= 0 {
		m.timeout = defaultResolveTimeout
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Version returns the current version, computing it on first use.
// A failing store is logged and the locally computed version is used.
func (m *Manager) Version(ctx context.Context) (string, error) {
	if m.static != "" {
		return m.static, nil
	}

	m.mu.RLock()
	v := m.version
	m.mu.RUnlock()
	if v != "" {
		return v, nil
	}

	ch := m.group.DoChan("version", func() (any, error) {
		resolveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout)
		defer cancel()

		version, err := m.resolve(resolveCtx)
		if err != nil {
			return "", err
		}
		m.mu.Lock()
		m.version = version
		m.mu.Unlock()
		return version, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Invalidate forgets the cached version and clears the store, so the next
// call to Version hashes the assets again.
func (m *Manager) Invalidate(ctx context.Context) error {
	m.mu.Lock()
	m.version = ""
	m.mu.Unlock()

	if m.store != nil {
		if err := m.store.Delete(ctx); err != nil {
			return errors.Join(ErrStoreFailure, err)
		}
	}
	return nil
}

func (m *Manager) resolve(ctx context.Context) (string, error) {
	if m.store != nil {
		v, err := m.store.Get(ctx)
		if err == nil && v != "" {
			return v, nil
		}
		if err != nil {
			m.logger.WarnContext(ctx, "read asset version from store", logger.Error(err))
		}
	}

	v, err := Compute(m.fsys, m.length)
	if err != nil {
		return "", err
	}

	if m.store != nil {
		stored, err := m.store.SetIfAbsent(ctx, v)
		if err != nil {
			m.logger.WarnContext(ctx, "write asset version to store", logger.Error(err))
			return v, nil
		}
		if stored != "" {
			v = stored
		}
	}
	return v, nil
}

// Compute hashes every regular file of fsys in lexical path order and
// returns the first length hex characters of the digest.
func Compute(fsys fs.FS, length int) (string, error) {
	h := sha256.New()
	files := 0
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		f, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		_, _ = io.WriteString(h, path)
		h.Write([]byte{0})
		if _, err := io.Copy(h, f); err != nil {
			return err
		}
		h.Write([]byte{0})
		files++
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashAssets, err)
	}
	if files == 0 {
		return "", ErrNoAssets
	}

	sum := hex.EncodeToString(h.Sum(nil))
	if length > 0 && length < len(sum) {
		sum = sum[:length]
	}
	return sum, nil
}
