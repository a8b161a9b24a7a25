package stripedomain

// Status possíveis de uma assinatura na API da Stripe
const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusCanceled = "canceled"
	SubscriptionStatusUnpaid   = "unpaid"
	SubscriptionStatusPastDue  = "past_due"
	SubscriptionStatusTrialing = "trialing"
)

type Subscription struct {
	ID                 string               `json:"id"`
	Status             string               `json:"status"`
	Customer           string               `json:"customer"`
	CurrentPeriodStart int64                `json:"current_period_start"`
	CurrentPeriodEnd   int64                `json:"current_period_end"`
	Created            int64                `json:"created"`
	Items              SubscriptionItemList `json:"items"`
}

type SubscriptionItemList struct {
	Data []SubscriptionItem `json:"data"`
}

type SubscriptionItem struct {
	ID       string `json:"id"`
	Quantity int64  `json:"quantity"`
	Price    Price  `json:"price"`
}

type Price struct {
	ID         string     `json:"id"`
	UnitAmount int64      `json:"unit_amount"`
	Currency   string     `json:"currency"`
	Recurring  *Recurring `json:"recurring"`
}

type Recurring struct {
	Interval      string `json:"interval"`
	IntervalCount int64  `json:"interval_count"`
}

// IsChurned indica se a assinatura conta como churn para o cálculo de saúde
func (s *Subscription) IsChurned() bool {
	return s.Status == SubscriptionStatusCanceled || s.Status == SubscriptionStatusUnpaid
}

type SubscriptionList struct {
	Data    []Subscription `json:"data"`
	HasMore bool           `json:"has_more"`
}
