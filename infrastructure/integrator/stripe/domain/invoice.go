package stripedomain

// Status possíveis de uma fatura na API da Stripe
const (
	InvoiceStatusDraft         = "draft"
	InvoiceStatusOpen          = "open"
	InvoiceStatusPaid          = "paid"
	InvoiceStatusVoid          = "void"
	InvoiceStatusUncollectible = "uncollectible"
)

type Invoice struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Customer     string `json:"customer"`
	Subscription string `json:"subscription"`
	AmountDue    int64  `json:"amount_due"`
	AmountPaid   int64  `json:"amount_paid"`
	Currency     string `json:"currency"`
	Created      int64  `json:"created"`
	DueDate      int64  `json:"due_date"`
}

// IsPastDue indica se a fatura está em aberto com vencimento no passado
func (i *Invoice) IsPastDue(nowUnix int64) bool {
	return i.Status == InvoiceStatusOpen && i.DueDate > 0 && i.DueDate < nowUnix
}

type InvoiceList struct {
	Data    []Invoice `json:"data"`
	HasMore bool      `json:"has_more"`
}
