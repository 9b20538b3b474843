// Package retryafter codifica e decodifica o header Retry-After (RFC 7231 §7.1.3).
//
// O header tem duas formas no fio:
//
//   - delay-seconds: inteiro decimal sem sinal, em segundos ("300")
//   - HTTP-date: um dos três formatos históricos de data, sempre GMT
//     ("Sun, 06 Nov 1994 08:49:37 GMT")
//
// Decode aceita as duas formas (e os três formatos de data, na ordem de
// prioridade do RFC); Encode emite delay em segundos ou data sempre em
// RFC 1123, que é o único formato permitido para quem envia. A assimetria
// é proposital: receptor tolerante, emissor estrito.
//
// Tudo aqui é função pura sobre bytes e valores imutáveis: sem estado,
// sem I/O, seguro para chamadas concorrentes sem coordenação.
package retryafter
