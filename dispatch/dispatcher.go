package dispatch

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/pagekit/pkg/environment"
	"github.com/dmitrymomot/pagekit/pkg/formatter"
	"github.com/dmitrymomot/pagekit/pkg/i18n"
	"github.com/dmitrymomot/pagekit/pkg/logger"
)

// Config drives the dispatcher. Loaded from the environment with pkg/config.
type Config struct {
	Environment          string `env:"APP_ENV" envDefault:"production"`
	AjaxVersion          string `env:"AJAX_VERSION" envDefault:""`
	WrongVersionMessage  string `env:"AJAX_WRONG_VERSION_MESSAGE" envDefault:"The application was updated, please reload the page"`
	EarlyHints           bool   `env:"EARLY_HINTS" envDefault:"true"`
	EarlyHintsHTTP1      bool   `env:"EARLY_HINTS_HTTP1" envDefault:"false"`
	MaxBodySize          int64  `env:"MAX_BODY_SIZE" envDefault:"1048576"`
	BrowserSupportScript string `env:"BROWSER_SUPPORT_SCRIPT" envDefault:"browserSupportCheck.js"`
	RoutesFetcherScript  string `env:"ROUTES_FETCHER_SCRIPT" envDefault:"routesFetcher.js"`
}

// Development reports whether error envelopes expose messages and stacks.
func (c Config) Development() bool {
	return environment.Parse(c.Environment).IsDevelopment()
}

// Dispatcher routes each request to the full-page or the data path and
// writes exactly one response.
type Dispatcher struct {
	cfg         Config
	development bool

	renderer  Renderer
	processor Processor
	versioner AssetVersioner
	scripts   ScriptRepository
	formatter ResponseFormatter
	localizer Localizer
	params    ParamsExtractor
	headTags  []HeadTag
	logger    *slog.Logger
}

// New builds a dispatcher. A renderer, a processor, an asset versioner
// and a script repository are required.
func New(cfg Config, opts ...Option) (*Dispatcher, error) {
	if cfg.BrowserSupportScript == "" {
		cfg.BrowserSupportScript = "browserSupportCheck.js"
	}
	if cfg.RoutesFetcherScript == "" {
		cfg.RoutesFetcherScript = "routesFetcher.js"
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = DefaultMaxBodySize
	}

	d := &Dispatcher{
		cfg:         cfg,
		development: cfg.Development(),
		formatter:   formatter.New(formatter.Config{}),
		localizer:   LocalizerFunc(func(r *http.Request) string { return i18n.GetLocale(r.Context()) }),
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.params == nil {
		d.params = BodyExtractor(cfg.MaxBodySize)
	}

	switch {
	case d.renderer == nil:
		return nil, ErrMissingRenderer
	case d.processor == nil:
		return nil, ErrMissingProcessor
	case d.versioner == nil:
		return nil, ErrMissingAssetVersioner
	case d.scripts == nil:
		return nil, ErrMissingScripts
	}
	return d, nil
}

// ServeHTTP dispatches r using the segments of its path.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.Dispatch(w, r, SplitPath(r.URL.Path))
}

// Dispatch handles one exchange. Only GET requests negotiated as HTML take
// the full-page path; everything else is a data request.
func (d *Dispatcher) Dispatch(w http.ResponseWriter, r *http.Request, segments []string) {
	ctx := r.Context()
	mode := Classify(r)
	resp := NewResponse(w, d.cfg.EarlyHints && (r.ProtoMajor >= 2 || d.cfg.EarlyHintsHTTP1))

	log := d.logger.With(
		logger.Component("dispatch"),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.Mode(string(mode)),
	)

	chunk := &ChunkParams{
		Exchange: &Exchange{Request: r, Response: resp},
		IsXHR:    mode.IsXHR(),
		IsHTML:   mode.IsHTML(),
		Assets:   NewAssets(),
		HeadTags: NewHeadTags(d.headTags...),
	}
	defer chunk.Assets.Seal()

	params, err := d.params.Extract(r)
	if err != nil {
		log.WarnContext(ctx, "invalid request parameters", logger.Error(err))
		d.respondWithError(resp, WrapError("BadRequestError", err, true), true)
		return
	}
	chunk.Params = params

	if r.Method == http.MethodGet && mode.IsHTML() {
		d.serveDocument(ctx, log, segments, chunk)
	} else {
		d.serveData(ctx, log, segments, chunk)
	}

	log.DebugContext(ctx, "request dispatched", logger.StatusCode(resp.StatusCode()))
}

// SplitPath returns the non-empty segments of an URL path.
func SplitPath(p string) []string {
	segments := []string{}
	for s := range strings.SplitSeq(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
