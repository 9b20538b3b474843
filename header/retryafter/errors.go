package retryafter

import "errors"

// Erros de decodificação. São valores-sentinela: teste com errors.Is.
var (
	// ErrInsufficientData indica entrada vazia (ou header ausente).
	ErrInsufficientData = errors.New("retryafter: empty header value")

	// ErrInvalidByteSequence indica bytes que não são UTF-8 válido.
	// É separado de ErrFormatNotRecognized de propósito: o chamador
	// consegue distinguir transporte corrompido de texto bem formado
	// que só não foi reconhecido.
	ErrInvalidByteSequence = errors.New("retryafter: header value is not valid utf-8")

	// ErrFormatNotRecognized indica texto válido que não é delay-seconds
	// nem nenhum dos três formatos de HTTP-date.
	ErrFormatNotRecognized = errors.New("retryafter: unrecognized header format")

	// ErrNegativeDelay indica tentativa de construir um Delay negativo.
	ErrNegativeDelay = errors.New("retryafter: negative delay")
)
