package main

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/pagekit/components"
	"github.com/dmitrymomot/pagekit/dispatch"
)

var demoRegistry = components.NewRegistry().
	Page("/", components.Page{
		Title:   "pagekit",
		Styles:  []string{"css/app.css"},
		Scripts: []string{"js/app.js"},
		Component: func(ctx context.Context, chunk *dispatch.ChunkParams) (templ.Component, error) {
			return markup(`<main><h1>pagekit</h1><p>Rendered on the server.</p></main>`), nil
		},
	}).
	Page("/hello", components.Page{
		Title:  "Hello",
		Styles: []string{"css/app.css"},
		Component: func(ctx context.Context, chunk *dispatch.ChunkParams) (templ.Component, error) {
			name := chunk.Params.Query["name"]
			if name == "" {
				name = "world"
			}
			return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
				_, err := io.WriteString(w, "<main><h1>Hello, "+templ.EscapeString(name)+"!</h1></main>")
				return err
			}), nil
		},
	}).
	Action("/api/time", func(ctx context.Context, chunk *dispatch.ChunkParams) dispatch.Result {
		return dispatch.JSON(map[string]string{"time": time.Now().UTC().Format(time.RFC3339)})
	}).
	Action("/api/echo", func(ctx context.Context, chunk *dispatch.ChunkParams) dispatch.Result {
		if len(chunk.Params.Body) == 0 {
			return dispatch.Fail(dispatch.NewError("ValidationError", "empty body"))
		}
		return dispatch.JSON(chunk.Params.Body)
	}).
	Action("/api/ping", func(ctx context.Context, chunk *dispatch.ChunkParams) dispatch.Result {
		return dispatch.Text("pong")
	})

func markup(html string) templ.Component {
	return templ.Raw(html)
}
