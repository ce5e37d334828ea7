package middleware

import (
	"smart-todo/internal/metrics"
	"smart-todo/pkg/log"
)

// Config holds the middleware tunables.
type Config struct {
	RequestsPerMin int      // Per client IP; zero disables rate limiting
	AllowedOrigins []string // "*" allows any origin
}

type Middleware struct {
	l              log.Logger
	metrics        *metrics.Metrics
	limiter        *rateLimiter
	allowedOrigins []string
}

func New(l log.Logger, cfg Config, m *metrics.Metrics) Middleware {
	mw := Middleware{
		l:              l,
		metrics:        m,
		allowedOrigins: cfg.AllowedOrigins,
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
