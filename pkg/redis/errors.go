package redis

import "errors"

// Errors returned by Connect and Healthcheck. Causes are joined onto them,
// so match with errors.Is.
var (
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")
	ErrInvalidURL         = errors.New("redis: invalid connection URL")
	ErrNotReady           = errors.New("redis: server not ready before deadline")
	ErrHealthcheckFailed  = errors.New("redis: healthcheck failed")
)
