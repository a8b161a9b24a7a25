package stripedomain

// Status possíveis de uma cobrança na API da Stripe
const (
	ChargeStatusSucceeded = "succeeded"
	ChargeStatusFailed    = "failed"
	ChargeStatusPending   = "pending"
)

type Charge struct {
	ID                   string                `json:"id"`
	Amount               int64                 `json:"amount"`
	AmountRefunded       int64                 `json:"amount_refunded"`
	Currency             string                `json:"currency"`
	Status               string                `json:"status"`
	Paid                 bool                  `json:"paid"`
	Refunded             bool                  `json:"refunded"`
	Disputed             bool                  `json:"disputed"`
	Invoice              string                `json:"invoice"`
	Customer             string                `json:"customer"`
	Created              int64                 `json:"created"`
	PaymentMethodDetails *PaymentMethodDetails `json:"payment_method_details"`
}

type PaymentMethodDetails struct {
	Type string `json:"type"`
}

// IsSubscriptionCharge indica se a cobrança está vinculada a uma fatura de
// cobrança recorrente
func (c *Charge) IsSubscriptionCharge() bool {
	return c.Invoice != ""
}

type ChargeList struct {
	Data    []Charge `json:"data"`
	HasMore bool     `json:"has_more"`
}
