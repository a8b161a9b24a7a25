package eventing

import "github.com/pkg/errors"

var (
	// ErrInvalidSignature indica falha de autenticidade da notificação.
	// Nunca deve ser repetida pelo remetente.
	ErrInvalidSignature = errors.New("assinatura do webhook inválida")

	// ErrMalformedEvent indica payload que não pôde ser interpretado
	ErrMalformedEvent = errors.New("payload do webhook malformado")
)
