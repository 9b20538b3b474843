package ratelimit

import (
	"net/http"
	"time"

	"retryafter-gateway/middleware/ratelimit/application"
	"retryafter-gateway/middleware/ratelimit/infra"
)

type ConcurrencyOptions struct {
	Max            int
	RejectStatus   int
	AcquireTimeout time.Duration

	// RetryAfter é a espera recomendada no 503. Se 0, o 503 sai sem
	// Retry-After (não há estimativa honesta de quando haverá vaga).
	RetryAfter       time.Duration
	RetryAfterFormat Format
	Now              func() time.Time
}

func ConcurrencyMiddleware(opts ConcurrencyOptions) func(next http.Handler) http.Handler {
	if opts.Max <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusServiceUnavailable
	}

	svc := application.ConcurrencyService{
		Pool:           infra.NewChanPool(opts.Max),
		AcquireTimeout: opts.AcquireTimeout,
		RetryAfter:     opts.RetryAfter,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			release, ok := svc.Acquire(r.Context())
			if !ok {
				dec := svc.Deny()
				setRetryAfter(w.Header(), dec.RetryAfter, opts.RetryAfterFormat, opts.Now)
				http.Error(w, http.StatusText(opts.RejectStatus), opts.RejectStatus)
				return
			}
			defer release()

			next.ServeHTTP(w, r)
		})
	}
}
