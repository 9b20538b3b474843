// utilitários de formatação de headers do middleware.
//    Os X-RateLimit-* usam strconv direto (evita puxar fmt, que é mais
//    "pesado" e genérico, só para formatação simples).
//    O Retry-After passa sempre pelo codec em header/retryafter: é o único
//    caminho entre a decisão (uma duração) e os bytes de fio.

package ratelimit

import (
	"net/http"
	"strconv"
	"time"

	"retryafter-gateway/header/retryafter"
)

func formatInt(v int) string { return strconv.Itoa(v) }

func formatFloat(v float64) string {
	// sem depender de fmt, e sem notação científica para valores comuns
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// setRetryAfter traduz a espera recomendada para a forma de fio escolhida.
// Espera <= 0 significa "sem recomendação": nenhum header é emitido.
func setRetryAfter(h http.Header, wait time.Duration, f Format, now func() time.Time) {
	if wait <= 0 {
		return
	}

	var ra retryafter.RetryAfter
	switch f {
	case FormatHTTPDate:
		if now == nil {
			now = time.Now
		}
		ra = retryafter.NewDate(now().Add(wait))
	default:
		// wait > 0 aqui, então NewDelay nunca falha
		ra, _ = retryafter.NewDelay(wait)
	}
	retryafter.Set(h, ra)
}
