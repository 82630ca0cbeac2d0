package scripts

import "errors"

var (
	ErrScriptNotFound     = errors.New("script not found")
	ErrInvalidScriptName  = errors.New("invalid script name")
	ErrInvalidConfig      = errors.New("invalid script source configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
	ErrAccessDenied       = errors.New("access denied to script source")
	ErrSourceUnavailable  = errors.New("script source temporarily unavailable")
	ErrOperationCanceled  = errors.New("script load canceled")
	ErrOperationTimeout   = errors.New("script load timed out")
)
