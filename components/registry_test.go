package components_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pagekit/components"
	"github.com/dmitrymomot/pagekit/dispatch"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func newChunk(t *testing.T) *dispatch.ChunkParams {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	return &dispatch.ChunkParams{
		Exchange: &dispatch.Exchange{Request: r, Response: dispatch.NewResponse(httptest.NewRecorder(), false)},
		Assets:   dispatch.NewAssets(),
		HeadTags: dispatch.NewHeadTags(),
	}
}

func TestKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/", components.Key(""))
	assert.Equal(t, "/", components.Key("/"))
	assert.Equal(t, "/blog/post", components.Key("blog//post/"))
}

func TestRegistry_Render(t *testing.T) {
	t.Parallel()

	reg := components.NewRegistry().
		Page("/", components.Page{
			Title:   "Home",
			Styles:  []string{"css/app.css", "css/app.css"},
			Scripts: []string{"js/app.js"},
			Component: func(ctx context.Context, c *dispatch.ChunkParams) (templ.Component, error) {
				c.Assets.Styles.Add("extra", dispatch.Stylesheet("css/extra.css"))
				return text("<h1>Home</h1>"), nil
			},
		}).
		Page("/broken", components.Page{
			Component: func(context.Context, *dispatch.ChunkParams) (templ.Component, error) {
				return nil, errors.New("broken")
			},
		})

	t.Run("renders page and collects assets", func(t *testing.T) {
		chunk := newChunk(t)
		body, err := reg.Render(context.Background(), []string{}, chunk)
		require.NoError(t, err)
		assert.Equal(t, "<h1>Home</h1>", body)

		styles, scripts := chunk.Assets.Stringify()
		assert.Equal(t, `<link rel="stylesheet" href="css/app.css"><link rel="stylesheet" href="css/extra.css">`, styles)
		assert.Equal(t, `<script type="module" src="js/app.js"></script>`, scripts)
		assert.Equal(t, "  <title>Home</title>\n", chunk.HeadTags.Render("  "))
	})

	t.Run("unknown page", func(t *testing.T) {
		_, err := reg.Render(context.Background(), []string{"missing"}, newChunk(t))
		assert.ErrorIs(t, err, dispatch.ErrNotFound)
	})

	t.Run("component error", func(t *testing.T) {
		_, err := reg.Render(context.Background(), []string{"broken"}, newChunk(t))
		assert.EqualError(t, err, "broken")
	})
}

func TestRegistry_Process(t *testing.T) {
	t.Parallel()

	reg := components.NewRegistry().
		Action("/api/ping", func(context.Context, *dispatch.ChunkParams) dispatch.Result {
			return dispatch.Text("pong")
		})

	res := reg.Process(context.Background(), []string{"api", "ping"}, newChunk(t))
	assert.Equal(t, dispatch.ResultText, res.Kind())
	assert.Equal(t, "pong", res.String())

	chunk := newChunk(t)
	res = reg.Process(context.Background(), []string{"api", "nope"}, chunk)
	assert.Equal(t, dispatch.ResultError, res.Kind())
	assert.True(t, res.Thrown())
	assert.Equal(t, http.StatusNotFound, chunk.Exchange.Response.StatusCode())
}

func TestRegistry_DuplicatesPanic(t *testing.T) {
	t.Parallel()

	page := components.Page{Component: func(context.Context, *dispatch.ChunkParams) (templ.Component, error) {
		return text(""), nil
	}}
	reg := components.NewRegistry().Page("/a", page)
	assert.Panics(t, func() { reg.Page("a/", page) })
	assert.Panics(t, func() { reg.Page("/b", components.Page{}) })

	action := func(context.Context, *dispatch.ChunkParams) dispatch.Result { return dispatch.JSON(nil) }
	reg.Action("/a", action)
	assert.Panics(t, func() { reg.Action("/a", action) })
	assert.Panics(t, func() { reg.Action("/c", nil) })
}
