package retryafter

import "net/http"

// Name é o nome do header. A busca por nome (caso-insensível no HTTP) é
// papel do http.Header; este pacote só produz e consome o valor.
const Name = "Retry-After"

// Get lê e decodifica o header de um http.Header. Header ausente é
// reportado como ErrInsufficientData, igual a valor vazio — cabe ao
// chamador decidir se isso é "sem orientação de retry" ou erro duro.
func Get(h http.Header) (RetryAfter, error) {
	return DecodeString(h.Get(Name))
}

// Set grava a forma de fio do valor no http.Header, substituindo qualquer
// valor anterior.
func Set(h http.Header, ra RetryAfter) {
	h.Set(Name, ra.String())
}
