package dispatch

import "context"

// ChunkParams is the per-request state threaded through rendering and
// processing. It lives for exactly one request. Collaborators append to
// Assets and HeadTags; every other field is read-only.
type ChunkParams struct {
	Exchange *Exchange
	IsXHR    bool
	IsHTML   bool
	Params   QueryParams
	Assets   *Assets
	HeadTags *HeadTags
}

// Context returns the request context.
func (c *ChunkParams) Context() context.Context {
	return c.Exchange.Request.Context()
}

// Mode returns the negotiated mode.
func (c *ChunkParams) Mode() Mode {
	if c.IsHTML {
		return ModeHTML
	}
	return ModeXHR
}
