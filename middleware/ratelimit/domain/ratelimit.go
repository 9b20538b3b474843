package domain

// Camada de domínio do rate limit.
//
// Regras e contratos (interfaces/tipos) sem dependência de net/http.

import "time"

type Key string

// Limiter representa algo que pode decidir se uma ação é permitida agora.
//
// Observação: a implementação pode ser token-bucket, leaky-bucket, etc.
// A camada de infra pode usar libs como golang.org/x/time/rate.
type Limiter interface {
	Allow() bool
}

// LimiterStore obtém um limiter por chave (ex: IP, API key, usuário).
// A implementação pode manter cache, TTL, etc.
type LimiterStore interface {
	Get(Key) Limiter
}

// Decision é o resultado de uma decisão de rate limit.
//
// RetryAfter é a recomendação de espera quando bloquear. A camada HTTP
// decide em qual das duas formas de fio do header Retry-After (segundos
// ou HTTP-date) a recomendação vira bytes. Se 0, não há recomendação.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}
