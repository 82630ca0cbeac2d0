// Package logger builds *slog.Logger instances for pagekit services and
// provides attribute helpers so that every component logs the same keys.
//
// New applies functional options on top of production defaults (JSON, info
// level, stdout). WithEnvironment switches to human readable text at debug
// level for development. Context extractors, such as the one exported by the
// requestid package, add request-scoped attributes to each record:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Development, "pagekit"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.ErrorContext(ctx, "render failed", logger.Error(err), logger.Path(r.URL.Path))
package logger
