package components

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/pagekit/dispatch"
)

// Page is a full-page component together with the assets it needs.
type Page struct {
	// Title, when set, is added as the document <title>.
	Title string
	// Styles and Scripts are URLs relative to the versioned asset root.
	Styles  []string
	Scripts []string
	// Component builds the body markup. It may add further assets and
	// head tags to chunk.
	Component func(ctx context.Context, chunk *dispatch.ChunkParams) (templ.Component, error)
}

// Action answers data requests for one path.
type Action func(ctx context.Context, chunk *dispatch.ChunkParams) dispatch.Result

// Registry maps request paths to pages and actions. It implements
// dispatch.Renderer and dispatch.Processor.
type Registry struct {
	mu      sync.RWMutex
	pages   map[string]Page
	actions map[string]Action
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		pages:   make(map[string]Page),
		actions: make(map[string]Action),
	}
}

// Page registers p under path. Panics on duplicate paths or a nil component.
func (r *Registry) Page(path string, p Page) *Registry {
	if p.Component == nil {
		panic(fmt.Sprintf("components: page %q has no component", path))
	}
	key := Key(path)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pages[key]; ok {
		panic(fmt.Sprintf("components: page %q registered twice", key))
	}
	r.pages[key] = p
	return r
}

// Action registers a under path. Panics on duplicate paths.
func (r *Registry) Action(path string, a Action) *Registry {
	if a == nil {
		panic(fmt.Sprintf("components: action %q is nil", path))
	}
	key := Key(path)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.actions[key]; ok {
		panic(fmt.Sprintf("components: action %q registered twice", key))
	}
	r.actions[key] = a
	return r
}

// Render implements dispatch.Renderer.
func (r *Registry) Render(ctx context.Context, segments []string, chunk *dispatch.ChunkParams) (string, error) {
	r.mu.RLock()
	p, ok := r.pages[Key(strings.Join(segments, "/"))]
	r.mu.RUnlock()
	if !ok {
		return "", dispatch.ErrNotFound
	}

	if p.Title != "" {
		chunk.HeadTags.Title(p.Title)
	}
	for _, href := range p.Styles {
		chunk.Assets.Styles.Add(href, dispatch.Stylesheet(href))
	}
	for _, src := range p.Scripts {
		chunk.Assets.Scripts.Add(src, dispatch.ModuleScript(src))
	}

	c, err := p.Component(ctx, chunk)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Process implements dispatch.Processor. Unknown paths answer 404.
func (r *Registry) Process(ctx context.Context, segments []string, chunk *dispatch.ChunkParams) dispatch.Result {
	key := Key(strings.Join(segments, "/"))
	r.mu.RLock()
	a, ok := r.actions[key]
	r.mu.RUnlock()
	if !ok {
		chunk.Exchange.Response.SetStatusCode(http.StatusNotFound)
		return dispatch.Throw(dispatch.ThrowError("NotFoundError", "no action for "+key))
	}
	return a(ctx, chunk)
}

// Key normalizes a path into the registry key: a leading slash and no
// empty or trailing segments.
func Key(path string) string {
	return "/" + strings.Join(dispatch.SplitPath(path), "/")
}
