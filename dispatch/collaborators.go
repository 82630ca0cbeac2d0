package dispatch

import (
	"context"
	"net/http"
)

// Response kinds passed to ResponseFormatter.
const (
	KindHTML = "html"
	KindText = "txt"
	KindJSON = "json"
)

// Renderer renders the page addressed by segments into body markup.
// It returns ErrNotFound when no page matches. Any other error, or a panic,
// is treated as a server fault.
type Renderer interface {
	Render(ctx context.Context, segments []string, chunk *ChunkParams) (string, error)
}

// Processor handles data requests. It reports failures through the
// returned Result rather than panicking.
type Processor interface {
	Process(ctx context.Context, segments []string, chunk *ChunkParams) Result
}

// AssetVersioner returns the token identifying the current version of the
// public assets. Implementations cache it.
type AssetVersioner interface {
	Version(ctx context.Context) (string, error)
}

// ScriptRepository returns the body of a bootstrap script inlined into documents.
type ScriptRepository interface {
	Script(ctx context.Context, name string) (string, error)
}

// ResponseFormatter sets Content-Type and caching headers for a response kind.
type ResponseFormatter interface {
	SetHeaders(h http.Header, kind string)
}

// Localizer resolves the locale of a request. An empty result means "en".
type Localizer interface {
	Locale(r *http.Request) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, segments []string, chunk *ChunkParams) (string, error)

// Render implements Renderer.
func (f RendererFunc) Render(ctx context.Context, segments []string, chunk *ChunkParams) (string, error) {
	return f(ctx, segments, chunk)
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, segments []string, chunk *ChunkParams) Result

// Process implements Processor.
func (f ProcessorFunc) Process(ctx context.Context, segments []string, chunk *ChunkParams) Result {
	return f(ctx, segments, chunk)
}

// StaticVersion is an AssetVersioner returning a fixed token.
type StaticVersion string

// Version implements AssetVersioner.
func (v StaticVersion) Version(context.Context) (string, error) { return string(v), nil }

// LocalizerFunc adapts a function to Localizer.
type LocalizerFunc func(r *http.Request) string

// Locale implements Localizer.
func (f LocalizerFunc) Locale(r *http.Request) string { return f(r) }
