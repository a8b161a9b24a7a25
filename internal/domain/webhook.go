package domain

import "time"

// ProcessedWebhookEvent registra uma entrega de webhook já processada,
// usado para supressão de entregas duplicadas da Stripe
type ProcessedWebhookEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	CustomerID string    `json:"customer_id"`
	ReceivedAt time.Time `json:"received_at"`
}

// InsightSnapshot é o registro histórico de um InsightBundle calculado
type InsightSnapshot struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customer_id"`
	Bundle     *InsightBundle `json:"bundle"`
	ComputedAt time.Time      `json:"computed_at"`
}
