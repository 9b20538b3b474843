package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"time"

	"retryafter-gateway/middleware/ratelimit/application"
	"retryafter-gateway/middleware/ratelimit/domain"
)

type KeyFunc func(r *http.Request) string

// Format escolhe a forma de fio do Retry-After emitido nas negativas.
//
// As duas formas são equivalentes para o cliente; a diferença é se o
// gateway publica "espere N segundos" ou "não volte antes deste instante".
type Format int

const (
	// FormatSeconds emite delay-seconds (ex: "30"). É o padrão.
	FormatSeconds Format = iota
	// FormatHTTPDate emite a data absoluta now+espera em RFC 1123
	// (ex: "Sun, 06 Nov 1994 08:49:37 GMT").
	FormatHTTPDate
)

type Options struct {
	Store               domain.LimiterStore
	Stats               domain.StatsStore
	KeyFn               KeyFunc
	KeyHeader           string
	TrustXForwardedFor  bool
	RejectStatus        int
	RetryAfter          time.Duration
	RetryAfterFormat    Format
	AddRateLimitHeaders bool

	// Now existe para teste; nil usa time.Now.
	// Só é consultado quando RetryAfterFormat == FormatHTTPDate.
	Now func() time.Time
}

type rateInfo interface {
	RPS() float64
	Burst() int
}

func DefaultKeyFunc(keyHeader string, trustXFF bool) KeyFunc {
	return func(r *http.Request) string {
		if keyHeader != "" {
			if v := strings.TrimSpace(r.Header.Get(keyHeader)); v != "" {
				return v
			}
		}

		if trustXFF {
			// pega o primeiro IP do X-Forwarded-For (cliente original)
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				parts := strings.Split(xff, ",")
				if len(parts) > 0 {
					ip := strings.TrimSpace(parts[0])
					if ip != "" {
						return ip
					}
				}
			}
		}

		// fallback: RemoteAddr
		host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
		if err == nil && host != "" {
			return host
		}
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
}

func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusTooManyRequests
	}
	if opts.RetryAfter == 0 {
		opts.RetryAfter = 1 * time.Second
	}
	if opts.KeyFn == nil {
		opts.KeyFn = DefaultKeyFunc(opts.KeyHeader, opts.TrustXForwardedFor)
	}

	svc := application.Service{
		Store:      opts.Store,
		RetryAfter: opts.RetryAfter,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)

			if opts.AddRateLimitHeaders {
				w.Header().Set("X-RateLimit-Key", key)
				if ri, ok := opts.Store.(rateInfo); ok {
					w.Header().Set("X-RateLimit-RPS", formatFloat(ri.RPS()))
					w.Header().Set("X-RateLimit-Burst", formatInt(ri.Burst()))
				}
			}

			dec := svc.Decide(domain.Key(key))
			if opts.Stats != nil {
				ev := domain.StatsEvent{
					Key:     domain.Key(key),
					Allowed: dec.Allowed,
					Method:  r.Method,
					Path:    r.URL.Path,
					At:      time.Now(),
				}
				if !dec.Allowed {
					ev.RetryAfter = dec.RetryAfter
				}
				_ = opts.Stats.Record(r.Context(), ev)
			}
			if !dec.Allowed {
				setRetryAfter(w.Header(), dec.RetryAfter, opts.RetryAfterFormat, opts.Now)
				http.Error(w, http.StatusText(opts.RejectStatus), opts.RejectStatus)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
