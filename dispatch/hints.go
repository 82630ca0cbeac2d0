package dispatch

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/pagekit/pkg/logger"
)

// EarlyHintLinks builds the Link header values announcing every asset URL:
// styles as preload, scripts as modulepreload. URLs are resolved under the
// asset version. Values are deduplicated literally, so two keys pointing at
// the same URL produce one link.
func EarlyHintLinks(version string, assets *Assets) []string {
	if assets == nil {
		return nil
	}

	prefix := "/"
	if version != "" {
		prefix += version + "/"
	}

	var links []string
	seen := make(map[string]struct{})
	add := func(set *AssetSet, rel, as string) {
		for _, a := range set.All() {
			if a.URL == "" {
				continue
			}
			link := "<" + prefix + strings.TrimPrefix(a.URL, "/") + `>; rel="` + rel + `"; as="` + as + `"`
			if _, ok := seen[link]; ok {
				continue
			}
			seen[link] = struct{}{}
			links = append(links, link)
		}
	}
	add(assets.Styles, "preload", "style")
	add(assets.Scripts, "modulepreload", "script")
	return links
}

// emitEarlyHints pushes a 103 response for the collected assets, then sets
// the same links on the final response for clients ignoring 1xx.
// Failures are logged and never affect the final response.
func (d *Dispatcher) emitEarlyHints(ctx context.Context, resp *Response, log *slog.Logger, version string, assets *Assets) {
	if !resp.SupportsEarlyHints() || resp.Ended() {
		return
	}
	links := EarlyHintLinks(version, assets)
	if len(links) == 0 {
		return
	}
	if err := resp.WriteEarlyHints(links); err != nil {
		log.WarnContext(ctx, "early hints not sent", logger.Error(err))
		return
	}
	resp.SetHeader("Link", strings.Join(links, ", "))
	log.DebugContext(ctx, "early hints sent", slog.Int("links", len(links)))
}
