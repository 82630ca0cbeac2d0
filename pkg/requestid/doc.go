// Package requestid tags every request with a correlation id.
//
// Middleware reuses a well-formed X-Request-ID header or generates a UUIDv4,
// stores it in the request context and echoes it on the response.
// LoggerExtractor plugs the id into loggers built by the logger package so
// dispatcher faults can be traced back to the request that caused them.
package requestid
