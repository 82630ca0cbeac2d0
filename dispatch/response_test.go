package dispatch_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pagekit/dispatch"
)

// hintRecorder records 103 responses, which httptest.ResponseRecorder
// would treat as the final status.
type hintRecorder struct {
	*httptest.ResponseRecorder
	hints []http.Header
}

func newHintRecorder() *hintRecorder {
	return &hintRecorder{ResponseRecorder: httptest.NewRecorder()}
}

func (h *hintRecorder) WriteHeader(code int) {
	if code >= 100 && code < 200 {
		h.hints = append(h.hints, h.Header().Clone())
		return
	}
	h.ResponseRecorder.WriteHeader(code)
}

func TestResponse_EndOnce(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	resp := dispatch.NewResponse(rec, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.False(t, resp.Ended())

	resp.SetStatusCode(http.StatusTeapot)
	resp.SetHeader("X-Test", "1")
	require.NoError(t, resp.End("first"))
	assert.True(t, resp.Ended())

	assert.ErrorIs(t, resp.End("second"), dispatch.ErrResponseEnded)
	resp.SetStatusCode(http.StatusInternalServerError)
	resp.SetHeader("X-Test", "2")

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "first", rec.Body.String())
	assert.Equal(t, "1", rec.Header().Get("X-Test"))
	assert.Equal(t, http.StatusTeapot, resp.StatusCode())

	resp.Header().Set("X-Late", "1")
	assert.Empty(t, rec.Header().Get("X-Late"))
	assert.Empty(t, resp.Header().Get("X-Late"))
}

func TestResponse_WriteEarlyHints(t *testing.T) {
	t.Parallel()

	t.Run("unsupported transport", func(t *testing.T) {
		resp := dispatch.NewResponse(newHintRecorder(), false)
		assert.False(t, resp.SupportsEarlyHints())
		assert.ErrorIs(t, resp.WriteEarlyHints([]string{"</a.css>"}), dispatch.ErrEarlyHintsUnsupported)
	})

	t.Run("sends links", func(t *testing.T) {
		rec := newHintRecorder()
		resp := dispatch.NewResponse(rec, true)
		require.NoError(t, resp.WriteEarlyHints([]string{"</a.css>", "</b.js>"}))
		require.Len(t, rec.hints, 1)
		assert.Equal(t, []string{"</a.css>", "</b.js>"}, rec.hints[0].Values("Link"))
		assert.False(t, resp.Ended())
	})

	t.Run("after end", func(t *testing.T) {
		resp := dispatch.NewResponse(newHintRecorder(), true)
		require.NoError(t, resp.End(""))
		assert.ErrorIs(t, resp.WriteEarlyHints([]string{"</a.css>"}), dispatch.ErrResponseEnded)
	})
}
