package stripedomain

import "github.com/pkg/errors"

// Erros tipados da integração com a Stripe.
// ErrCustomerNotFound é terminal; ErrUpstreamUnavailable é seguro de repetir.
var (
	ErrCustomerNotFound    = errors.New("cliente não encontrado na Stripe")
	ErrUpstreamUnavailable = errors.New("API da Stripe indisponível")
)

// ErrorResponse representa a estrutura de erro da API da Stripe
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API da Stripe
type ErrorDetails struct {
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
	DocURL  string `json:"doc_url,omitempty"`
}

// IsNotFound verifica se o erro indica recurso inexistente
func (e *ErrorResponse) IsNotFound() bool {
	// O código "resource_missing" acompanha respostas 404 da Stripe
	return e.Error.Code == "resource_missing" || e.Error.Type == "invalid_request_error" && e.Error.Param == "customer"
}

// IsRateLimited verifica se o erro indica limite de requisições excedido
func (e *ErrorResponse) IsRateLimited() bool {
	return e.Error.Type == "rate_limit_error" || e.Error.Code == "rate_limit"
}
