// Package client fornece um cliente HTTP com retry que respeita o header
// Retry-After das respostas 429/503, decodificado pelo pacote
// header/retryafter (as duas formas de fio: segundos e HTTP-date).
//
// Header ausente ou não reconhecido não é erro aqui: o cliente só perde a
// orientação e cai no backoff padrão do resty. Essa política é do
// chamador, não do codec.
package client
