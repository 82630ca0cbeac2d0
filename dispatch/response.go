package dispatch

import (
	"io"
	"net/http"
	"sync"
)

// Response wraps an http.ResponseWriter with a readable status code and a
// single terminal write. Headers and status stay mutable until End is
// called; afterwards every mutation is ignored and End reports ErrResponseEnded.
//
// Collaborators may end the response themselves (redirects, streamed
// downloads). The dispatcher checks Ended after every collaborator call and
// stops without writing when it returns true.
type Response struct {
	mu     sync.Mutex
	w      http.ResponseWriter
	status int
	ended  bool
	hints  bool
}

// NewResponse wraps w. earlyHints tells whether the transport may carry
// 103 Early Hints responses.
func NewResponse(w http.ResponseWriter, earlyHints bool) *Response {
	return &Response{w: w, status: http.StatusOK, hints: earlyHints}
}

// StatusCode returns the status that End will write. Defaults to 200.
func (r *Response) StatusCode() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// SetStatusCode changes the status written by End.
func (r *Response) SetStatusCode(code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ended {
		r.status = code
	}
}

// Header exposes the header map. Once the response has ended it returns a
// detached copy, so late writes are dropped like every other mutation.
func (r *Response) Header() http.Header {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ended {
		return r.w.Header().Clone()
	}
	return r.w.Header()
}

// SetHeader replaces the header name with value.
func (r *Response) SetHeader(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ended {
		r.w.Header().Set(name, value)
	}
}

// Ended reports whether End has been called.
func (r *Response) Ended() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ended
}

// End writes the status, the headers and body. Only the first call writes.
func (r *Response) End(body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ended {
		return ErrResponseEnded
	}
	r.ended = true
	r.w.WriteHeader(r.status)
	_, err := io.WriteString(r.w, body)
	return err
}

// SupportsEarlyHints reports whether WriteEarlyHints can be used.
func (r *Response) SupportsEarlyHints() bool {
	return r.hints
}

// WriteEarlyHints sends a 103 informational response carrying one Link
// header per entry of links. The header map keeps those values afterwards,
// callers decide what the final response carries.
func (r *Response) WriteEarlyHints(links []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.hints {
		return ErrEarlyHintsUnsupported
	}
	if r.ended {
		return ErrResponseEnded
	}
	h := r.w.Header()
	h.Del("Link")
	for _, link := range links {
		h.Add("Link", link)
	}
	r.w.WriteHeader(http.StatusEarlyHints)
	return nil
}

// Exchange pairs the inbound request with its response for one HTTP call.
type Exchange struct {
	Request  *http.Request
	Response *Response
}
