package dispatch

import "errors"

var (
	// ErrNotFound is returned by a Renderer when no page matches the path.
	// The dispatcher answers such requests with 404 and NotFoundBody.
	ErrNotFound = errors.New("page not found")

	// ErrResponseEnded is returned by Response.End when the response was already written.
	ErrResponseEnded = errors.New("response already ended")

	// ErrEarlyHintsUnsupported is returned by Response.WriteEarlyHints when
	// the transport cannot carry informational responses.
	ErrEarlyHintsUnsupported = errors.New("early hints not supported by transport")

	// ErrInvalidBody is returned by the parameter extractor for malformed request bodies.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrBodyTooLarge is returned by the parameter extractor when the body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")

	ErrMissingRenderer       = errors.New("dispatch: renderer is required")
	ErrMissingProcessor      = errors.New("dispatch: processor is required")
	ErrMissingAssetVersioner = errors.New("dispatch: asset versioner is required")
	ErrMissingScripts        = errors.New("dispatch: script repository is required")
)
