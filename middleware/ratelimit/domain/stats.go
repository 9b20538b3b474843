package domain

import (
	"context"
	"time"
)

// StatsEvent representa um evento de decisão do gateway.
//
// Ele é propositalmente "agnóstico de HTTP": Method/Path são strings
// genéricas e podem ser usadas para web, gRPC, etc.
//
// RetryAfter registra a recomendação de espera emitida junto com a
// negativa (0 quando permitido ou quando não houve recomendação), para as
// estatísticas conseguirem responder "quanto tempo de espera este gateway
// está pedindo aos clientes".
//
// Observação: cuidado com cardinalidade (ex.: salvar Key/Path sem controle
// pode explodir o número de séries/chaves em uma base como Redis).
type StatsEvent struct {
	Key     Key
	Allowed bool

	RetryAfter time.Duration

	Method string
	Path   string

	At time.Time
}

// StatsStore é a estratégia de persistência para estatísticas do gateway.
//
// Implementações podem armazenar em Redis, memória, etc.
// O middleware deve tratar erro como best-effort (não derrubar request).
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}
