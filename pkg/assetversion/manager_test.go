package assetversion_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pagekit/pkg/assetversion"
)

func assets() fstest.MapFS {
	return fstest.MapFS{
		"css/app.css": {Data: []byte("body{}")},
		"js/app.js":   {Data: []byte("console.log(1)")},
	}
}

type memoryStore struct {
	mu      sync.Mutex
	value   string
	getErr  error
	setErr  error
	deleted int
}

func (s *memoryStore) Get(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.getErr
}

func (s *memoryStore) SetIfAbsent(_ context.Context, v string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return "", s.setErr
	}
	if s.value == "" {
		s.value = v
	}
	return s.value, nil
}

func (s *memoryStore) Delete(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = ""
	s.deleted++
	return nil
}

func TestCompute(t *testing.T) {
	t.Parallel()

	a, err := assetversion.Compute(assets(), 10)
	require.NoError(t, err)
	assert.Len(t, a, 10)

	b, err := assetversion.Compute(assets(), 10)
	require.NoError(t, err)
	assert.Equal(t, a, b, "hash must be deterministic")

	changed := assets()
	changed["css/app.css"] = &fstest.MapFile{Data: []byte("body{color:red}")}
	c, err := assetversion.Compute(changed, 10)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	renamed := fstest.MapFS{
		"css/main.css": {Data: []byte("body{}")},
		"js/app.js":    {Data: []byte("console.log(1)")},
	}
	d, err := assetversion.Compute(renamed, 10)
	require.NoError(t, err)
	assert.NotEqual(t, a, d)

	full, err := assetversion.Compute(assets(), 0)
	require.NoError(t, err)
	assert.Len(t, full, 64)
	assert.Equal(t, a, full[:10])

	_, err = assetversion.Compute(fstest.MapFS{}, 10)
	assert.ErrorIs(t, err, assetversion.ErrNoAssets)
}

func TestManager_Version(t *testing.T) {
	t.Parallel()

	t.Run("static", func(t *testing.T) {
		m := assetversion.NewManager(nil, assetversion.Config{Static: "v42"})
		v, err := m.Version(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "v42", v)
	})

	t.Run("computed and cached", func(t *testing.T) {
		fsys := assets()
		m := assetversion.NewManager(fsys, assetversion.Config{Length: 8})
		v, err := m.Version(context.Background())
		require.NoError(t, err)
		assert.Len(t, v, 8)

		fsys["new.css"] = &fstest.MapFile{Data: []byte("x")}
		again, err := m.Version(context.Background())
		require.NoError(t, err)
		assert.Equal(t, v, again)

		require.NoError(t, m.Invalidate(context.Background()))
		fresh, err := m.Version(context.Background())
		require.NoError(t, err)
		assert.NotEqual(t, v, fresh)
	})

	t.Run("store value wins", func(t *testing.T) {
		store := &memoryStore{value: "shared"}
		m := assetversion.NewManager(assets(), assetversion.Config{}, assetversion.WithStore(store))
		v, err := m.Version(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "shared", v)

		require.NoError(t, m.Invalidate(context.Background()))
		assert.Equal(t, 1, store.deleted)
	})

	t.Run("computed version is stored", func(t *testing.T) {
		store := &memoryStore{}
		m := assetversion.NewManager(assets(), assetversion.Config{Length: 10}, assetversion.WithStore(store))
		v, err := m.Version(context.Background())
		require.NoError(t, err)
		assert.Equal(t, v, store.value)
	})

	t.Run("store failure falls back to local hash", func(t *testing.T) {
		store := &memoryStore{getErr: errors.New("down"), setErr: errors.New("down")}
		m := assetversion.NewManager(assets(), assetversion.Config{Length: 10}, assetversion.WithStore(store))
		v, err := m.Version(context.Background())
		require.NoError(t, err)

		want, err := assetversion.Compute(assets(), 10)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	})

	t.Run("empty directory", func(t *testing.T) {
		m := assetversion.NewManager(fstest.MapFS{}, assetversion.Config{})
		_, err := m.Version(context.Background())
		assert.ErrorIs(t, err, assetversion.ErrNoAssets)
	})
}

// blockingStore holds Get until released or its context ends.
type blockingStore struct {
	memoryStore
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *blockingStore) Get(ctx context.Context) (string, error) {
	s.once.Do(func() { close(s.started) })
	select {
	case <-s.release:
		return s.memoryStore.Get(ctx)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestManager_CallerCancellationDoesNotFailOthers(t *testing.T) {
	t.Parallel()

	store := &blockingStore{
		memoryStore: memoryStore{value: "shared"},
		started:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	m := assetversion.NewManager(assets(), assetversion.Config{Length: 10}, assetversion.WithStore(store))

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := m.Version(firstCtx)
		firstErr <- err
	}()
	<-store.started

	type result struct {
		version string
		err     error
	}
	second := make(chan result, 1)
	go func() {
		v, err := m.Version(context.Background())
		second <- result{v, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		require.FailNow(t, "cancelled caller did not return")
	}

	close(store.release)
	select {
	case res := <-second:
		require.NoError(t, res.err)
		assert.Equal(t, "shared", res.version)
	case <-time.After(time.Second):
		require.FailNow(t, "second caller did not return")
	}
}
