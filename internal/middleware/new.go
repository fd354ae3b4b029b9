package middleware

import (
	"json-error-responder/config"
	"json-error-responder/pkg/log"
)

// Config is the responder configuration, immutable once the Middleware is
// constructed.
type Config struct {
	// ShowStackTrace exposes error stack traces in response bodies. Server
	// class stacks are logged server-side regardless of this setting.
	ShowStackTrace bool
}

type Middleware struct {
	l   log.Logger
	cfg Config
}

// New creates a Middleware with explicit configuration.
func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}

// Default creates a Middleware with configuration derived from the runtime
// environment: stack traces are exposed only in development. The environment
// is read once, here, not per request.
func Default(l log.Logger) Middleware {
	return New(l, Config{ShowStackTrace: config.IsDevelopment()})
}
