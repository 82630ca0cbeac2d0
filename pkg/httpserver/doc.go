// Package httpserver runs the pagekit HTTP server with graceful shutdown,
// health probes and HTTP/2.
//
// Run binds the listener before serving, so bind errors are returned
// synchronously and Ready/Addr can be used to find an ephemeral port. It
// then blocks until the context ends or SIGINT/SIGTERM arrives. HTTP/2 is
// enabled over TLS (WithTLS) and in cleartext with WithH2C; 103 Early
// Hints are only sent on HTTP/2 connections unless configured otherwise.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	r.Get("/ready", httpserver.HealthCheckHandler(log, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)}))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
