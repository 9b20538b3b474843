package retryafter

import (
	"math"
	"strconv"
	"time"
	"unicode/utf8"
)

// maxDelaySeconds é o maior número inteiro de segundos que cabe em um
// time.Duration (que conta nanossegundos em int64).
const maxDelaySeconds = math.MaxInt64 / int64(time.Second)

// Decode converte o valor bruto do header em um RetryAfter.
//
// A ordem é a do RFC, primeiro acerto ganha:
//
//  1. vazio → ErrInsufficientData
//  2. bytes inválidos como UTF-8 → ErrInvalidByteSequence
//  3. delay-seconds (1*DIGIT): inteiro decimal sem sinal → Delay
//  4. HTTP-date nos três formatos → Date (UTC)
//  5. nada casou → ErrFormatNotRecognized
//
// O inteiro é estrito: "+30", " 30" e "3.5" não são delay-seconds.
// Overflow (do uint64 ou do time.Duration) é falha, não truncamento —
// e acaba reportado como formato não reconhecido, porque o texto também
// não é uma data.
func Decode(raw []byte) (RetryAfter, error) {
	if len(raw) == 0 {
		return RetryAfter{}, ErrInsufficientData
	}
	if !utf8.Valid(raw) {
		return RetryAfter{}, ErrInvalidByteSequence
	}

	s := string(raw)

	if secs, err := strconv.ParseUint(s, 10, 64); err == nil {
		if secs > uint64(maxDelaySeconds) {
			return RetryAfter{}, ErrFormatNotRecognized
		}
		return RetryAfter{kind: kindDelay, delay: time.Duration(secs) * time.Second}, nil
	}

	if t, err := ParseHTTPDate(s); err == nil {
		return RetryAfter{kind: kindDate, date: t}, nil
	}

	return RetryAfter{}, ErrFormatNotRecognized
}

// DecodeString é Decode sobre uma string já validada pelo runtime como
// texto. A validação UTF-8 continua valendo: uma string Go pode carregar
// bytes arbitrários.
func DecodeString(s string) (RetryAfter, error) {
	return Decode([]byte(s))
}
