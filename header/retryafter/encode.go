package retryafter

import (
	"strconv"
	"time"
)

// Encode produz os bytes de fio do valor. É total: todo RetryAfter bem
// construído codifica, sem caminho de erro.
//
//   - Delay vira o número inteiro de segundos em decimal ASCII; fração de
//     segundo, se o time.Duration tiver, é truncada (não arredondada).
//   - Date vira sempre RFC 1123 em GMT, independente do formato que o
//     produziu no parse.
//
// O zero value codifica como vazio; é responsabilidade do chamador não
// emitir um header sem valor.
func Encode(ra RetryAfter) []byte {
	return ra.appendWire(nil)
}

// String retorna a forma de fio como string.
func (ra RetryAfter) String() string {
	return string(ra.appendWire(nil))
}

func (ra RetryAfter) appendWire(b []byte) []byte {
	switch ra.kind {
	case kindDelay:
		// divisão inteira: truncamento deliberado da fração
		return strconv.AppendInt(b, int64(ra.delay/time.Second), 10)
	case kindDate:
		return ra.date.UTC().AppendFormat(b, rfc1123Layout)
	default:
		return b
	}
}
