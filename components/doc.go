// Package components registers the pages and actions served by the
// dispatcher.
//
// Pages render templ components for full-page requests and declare the
// stylesheets and module scripts they depend on. Actions answer data
// requests with a dispatch.Result.
//
//	reg := components.NewRegistry().
//		Page("/", components.Page{
//			Title:  "Home",
//			Styles: []string{"css/home.css"},
//			Component: func(ctx context.Context, c *dispatch.ChunkParams) (templ.Component, error) {
//				return views.Home(), nil
//			},
//		}).
//		Action("/api/ping", func(ctx context.Context, c *dispatch.ChunkParams) dispatch.Result {
//			return dispatch.Text("pong")
//		})
package components
