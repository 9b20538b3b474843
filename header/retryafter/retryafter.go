package retryafter

import "time"

// RetryAfter é o valor tipado do header Retry-After.
//
// Ele tem exatamente duas formas, nunca as duas ao mesmo tempo:
//
//   - Delay: "espere esta duração a partir da resposta antes de tentar de novo"
//   - Date: "não tente de novo antes deste instante" (absoluto, sempre UTC)
//
// O valor é imutável depois de construído. O zero value não é nenhuma das
// duas formas (IsZero() == true) e é o retorno das funções de parse em
// caso de erro.
type RetryAfter struct {
	kind  kind
	delay time.Duration
	date  time.Time
}

type kind uint8

const (
	kindNone kind = iota
	kindDelay
	kindDate
)

// NewDelay cria um RetryAfter relativo.
//
// Delays negativos não existem na gramática de fio (delay-seconds é um
// inteiro sem sinal) e são rejeitados aqui também, com ErrNegativeDelay.
func NewDelay(d time.Duration) (RetryAfter, error) {
	if d < 0 {
		return RetryAfter{}, ErrNegativeDelay
	}
	return RetryAfter{kind: kindDelay, delay: d}, nil
}

// NewDate cria um RetryAfter absoluto, normalizado para UTC já na
// construção. Precisão abaixo de segundo não sobrevive ao formato de fio.
func NewDate(t time.Time) RetryAfter {
	return RetryAfter{kind: kindDate, date: t.UTC()}
}

// Delay retorna a duração relativa e true quando o valor é da forma Delay.
func (ra RetryAfter) Delay() (time.Duration, bool) {
	return ra.delay, ra.kind == kindDelay
}

// Date retorna o instante absoluto (UTC) e true quando o valor é da forma Date.
func (ra RetryAfter) Date() (time.Time, bool) {
	return ra.date, ra.kind == kindDate
}

func (ra RetryAfter) IsDelay() bool { return ra.kind == kindDelay }
func (ra RetryAfter) IsDate() bool  { return ra.kind == kindDate }
func (ra RetryAfter) IsZero() bool  { return ra.kind == kindNone }

// Wait traduz o valor em "quanto esperar a partir de now", qualquer que
// seja a forma. Datas no passado viram 0, nunca negativo.
func (ra RetryAfter) Wait(now time.Time) time.Duration {
	var d time.Duration
	switch ra.kind {
	case kindDelay:
		d = ra.delay
	case kindDate:
		d = ra.date.Sub(now)
	}
	if d < 0 {
		return 0
	}
	return d
}
