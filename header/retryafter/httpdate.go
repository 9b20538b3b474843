package retryafter

import "time"

// rfc1123Layout é o IMF-fixdate do RFC 7231, o único formato que um
// emissor pode produzir. O "GMT" é literal de propósito: os formatos do
// RFC só admitem GMT, então outras abreviações de zona são rejeitadas e o
// relógio de parede lido já é UTC por construção (diferente de
// time.RFC1123, que aceita qualquer abreviação no lugar de MST).
const rfc1123Layout = "Mon, 02 Jan 2006 15:04:05 GMT"

// Layouts aceitos no parse de HTTP-date, na ordem de prioridade do RFC:
// o formato obrigatório primeiro, depois os dois obsoletos aceitos por
// compatibilidade com HTTP/1.0.
var httpDateLayouts = []struct {
	name   string
	layout string
}{
	{"rfc1123", rfc1123Layout},
	{"rfc850", "Monday, 02-Jan-06 15:04:05 GMT"},
	{"asctime", "Mon Jan _2 15:04:05 2006"},
}

// ParseHTTPDate tenta cada layout na ordem e retorna o primeiro que casa
// com a string inteira. O casamento é estrito: caractere sobrando ou
// faltando é falha, sem tolerância a espaços nas pontas.
//
// Anos de dois dígitos (RFC 850) seguem o pivô do time.Parse: 69–99 viram
// 19xx e 00–68 viram 20xx.
func ParseHTTPDate(s string) (time.Time, error) {
	for _, cand := range httpDateLayouts {
		if t, err := time.Parse(cand.layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrFormatNotRecognized
}
