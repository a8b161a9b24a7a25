package eventing

import "context"

// WebhookProcessor processa notificações de mudança assinadas pela Stripe
type WebhookProcessor interface {
	// ProcessWebhook verifica a assinatura, suprime entregas duplicadas e
	// despacha o evento. Retorna nil quando o evento foi reconhecido com
	// sucesso, inclusive para duplicatas e tipos desconhecidos.
	ProcessWebhook(ctx context.Context, payload []byte, signatureHeader string) error
}

// InsightInvalidator invalida o cache de insights de um cliente
type InsightInvalidator interface {
	InvalidateCustomer(customerID string)
}
