package httpserver

import "errors"

var (
	// ErrStart is joined with listen and serve failures returned by Run.
	ErrStart = errors.New("httpserver: start failed")
	// ErrShutdown is joined with failures of a graceful shutdown.
	ErrShutdown = errors.New("httpserver: graceful shutdown failed")
	// ErrAlreadyRunning is returned, joined with ErrStart, when Run is called twice.
	ErrAlreadyRunning = errors.New("httpserver: already running")
)
