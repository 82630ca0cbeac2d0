package scripts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// Source loads raw script bodies by name.
type Source interface {
	Load(ctx context.Context, name string) (string, error)
}

// FSSource reads scripts from a file system, e.g. os.DirFS or an embed.FS.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource returns a Source reading from fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// Load implements Source.
func (s *FSSource) Load(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrScriptNotFound, name)
		}
		return "", fmt.Errorf("read script %s: %w", name, err)
	}
	return string(data), nil
}
