package stripedomain

import "encoding/json"

// Tipos de evento de webhook tratados pelo serviço
const (
	EventCustomerCreated     = "customer.created"
	EventCustomerUpdated     = "customer.updated"
	EventChargeSucceeded     = "charge.succeeded"
	EventChargeFailed        = "charge.failed"
	EventSubscriptionCreated = "customer.subscription.created"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

// Event é o envelope de notificação de mudança enviado pela Stripe.
// O ID identifica a entrega e é usado para supressão de duplicatas.
type Event struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Created int64     `json:"created"`
	Data    EventData `json:"data"`
}

type EventData struct {
	Object json.RawMessage `json:"object"`
}

// EventObject carrega os campos mínimos do objeto do evento necessários
// para identificar o cliente afetado
type EventObject struct {
	ID       string `json:"id"`
	Object   string `json:"object"`
	Customer string `json:"customer"`
}

// AffectedCustomerID extrai o ID do cliente afetado pelo evento. Para
// eventos de cliente o objeto é o próprio cliente; para cobranças e
// assinaturas o cliente vem referenciado no objeto.
func (e *Event) AffectedCustomerID() string {
	var object EventObject
	if err := json.Unmarshal(e.Data.Object, &object); err != nil {
		return ""
	}

	if object.Object == "customer" {
		return object.ID
	}

	return object.Customer
}
