package dispatch

import "log/slog"

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRenderer sets the full-page renderer.
func WithRenderer(r Renderer) Option {
	return func(d *Dispatcher) { d.renderer = r }
}

// WithProcessor sets the data processor.
func WithProcessor(p Processor) Option {
	return func(d *Dispatcher) { d.processor = p }
}

// WithAssetVersioner sets the source of the asset version token.
func WithAssetVersioner(v AssetVersioner) Option {
	return func(d *Dispatcher) { d.versioner = v }
}

// WithScripts sets the repository of inlined bootstrap scripts.
func WithScripts(s ScriptRepository) Option {
	return func(d *Dispatcher) { d.scripts = s }
}

// WithFormatter overrides the response header formatter.
func WithFormatter(f ResponseFormatter) Option {
	return func(d *Dispatcher) {
		if f != nil {
			d.formatter = f
		}
	}
}

// WithLocalizer overrides locale resolution. By default the locale stored
// by the i18n middleware is used.
func WithLocalizer(l Localizer) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.localizer = l
		}
	}
}

// WithParamsExtractor overrides parameter extraction.
func WithParamsExtractor(p ParamsExtractor) Option {
	return func(d *Dispatcher) { d.params = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithHeadTags seeds every document with tags, before those added by pages.
func WithHeadTags(tags ...HeadTag) Option {
	return func(d *Dispatcher) { d.headTags = append(d.headTags, tags...) }
}
