package stripedomain

type Customer struct {
	ID              string           `json:"id"`
	Email           string           `json:"email"`
	Name            string           `json:"name"`
	Created         int64            `json:"created"`
	Currency        string           `json:"currency"`
	Delinquent      bool             `json:"delinquent"`
	Deleted         bool             `json:"deleted"`
	InvoiceSettings *InvoiceSettings `json:"invoice_settings"`
}

// InvoiceSettings vem expandido na consulta do cliente
// (expand[]=invoice_settings.default_payment_method)
type InvoiceSettings struct {
	DefaultPaymentMethod *PaymentMethod `json:"default_payment_method"`
}

type PaymentMethod struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}
