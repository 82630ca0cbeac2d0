package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/dmitrymomot/pagekit/pkg/logger"
)

// NotFoundBody is the body of a full-page request that matched no page.
const NotFoundBody = "Page Not Found"

// DefaultLocale is used for the lang attribute when no locale resolves.
const DefaultLocale = "en"

// serveDocument runs the full-page path: render, then wrap the markup in a
// complete document.
func (d *Dispatcher) serveDocument(ctx context.Context, log *slog.Logger, segments []string, chunk *ChunkParams) {
	resp := chunk.Exchange.Response

	body, err := d.render(ctx, segments, chunk)
	if resp.Ended() {
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		resp.SetStatusCode(http.StatusNotFound)
		d.formatter.SetHeaders(resp.Header(), KindHTML)
		_ = resp.End(NotFoundBody)
		return
	case err != nil:
		d.fault(ctx, resp, log, "render failed", err)
		return
	}

	version, err := d.versioner.Version(ctx)
	if err != nil {
		d.fault(ctx, resp, log, "asset version unavailable", err)
		return
	}
	locale := d.localizer.Locale(chunk.Exchange.Request)
	if resp.Ended() {
		return
	}

	doc, err := d.assemble(ctx, chunk, version, locale, body)
	if err != nil {
		d.fault(ctx, resp, log, "document assembly failed", err)
		return
	}
	if resp.Ended() {
		return
	}

	d.emitEarlyHints(ctx, resp, log, version, chunk.Assets)
	d.formatter.SetHeaders(resp.Header(), KindHTML)
	if err := resp.End(doc); err != nil && !errors.Is(err, ErrResponseEnded) {
		log.WarnContext(ctx, "write document", logger.Error(err))
	}
}

// render calls the renderer, turning a panic into an error.
func (d *Dispatcher) render(ctx context.Context, segments []string, chunk *ChunkParams) (body string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = recovered(rec)
		}
	}()
	return d.renderer.Render(ctx, segments, chunk)
}

// fault answers a server-side failure with status 500. In production the
// envelope carries a generic message instead of err.
func (d *Dispatcher) fault(ctx context.Context, resp *Response, log *slog.Logger, msg string, err error) {
	log.ErrorContext(ctx, msg, logger.Error(err))
	if !d.development {
		err = NewError(DefaultErrorName, http.StatusText(http.StatusInternalServerError))
	}
	resp.SetStatusCode(http.StatusInternalServerError)
	d.respondWithError(resp, err, true)
}

// assemble builds the HTML document around body.
func (d *Dispatcher) assemble(ctx context.Context, chunk *ChunkParams, version, locale, body string) (string, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	supportCheck, err := d.scripts.Script(ctx, d.cfg.BrowserSupportScript)
	if err != nil {
		return "", errors.Wrapf(err, "load script %q", d.cfg.BrowserSupportScript)
	}
	routesFetcher, err := d.scripts.Script(ctx, d.cfg.RoutesFetcherScript)
	if err != nil {
		return "", errors.Wrapf(err, "load script %q", d.cfg.RoutesFetcherScript)
	}
	styles, scripts := chunk.Assets.Stringify()

	var b strings.Builder
	b.Grow(len(body) + len(styles) + len(scripts) + len(supportCheck) + len(routesFetcher) + 256)
	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&b, "<html lang=\"%s\">\n", locale)
	b.WriteString("<head>\n")
	fmt.Fprintf(&b, "  <base href=\"%s\">\n", BaseHref(chunk.Exchange.Request.Host, version))
	b.WriteString("  <meta charset=\"utf-8\">\n")
	if chunk.HeadTags != nil {
		b.WriteString(chunk.HeadTags.Render("  "))
	}
	b.WriteString(styles)
	b.WriteString("\n")
	fmt.Fprintf(&b, "  <script>\n%s\n  </script>\n", supportCheck)
	fmt.Fprintf(&b, "  <script>\n%s\n  </script>\n", routesFetcher)
	b.WriteString("</head>\n<body>")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(scripts)
	b.WriteString("\n</body>\n</html>")
	return b.String(), nil
}

// BaseHref returns the protocol-relative base URL of versioned assets.
func BaseHref(host, version string) string {
	if version == "" {
		return "//" + host + "/"
	}
	return "//" + host + "/" + version + "/"
}

func recovered(rec any) error {
	if err, ok := rec.(error); ok {
		return errors.Wrap(err, "panic")
	}
	return errors.Errorf("panic: %v", rec)
}
