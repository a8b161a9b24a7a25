package stripeclient

import (
	"context"
	"net/url"

	stripedomain "github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/domain"
)

// GetCustomerByID busca o perfil do cliente com o método de pagamento padrão
// expandido
func (c *StripeClient) GetCustomerByID(ctx context.Context, customerID string) (*stripedomain.Customer, error) {
	params := url.Values{}
	params.Add("expand[]", "invoice_settings.default_payment_method")

	var customer stripedomain.Customer
	if err := c.get(ctx, "/customers/"+customerID, params, &customer); err != nil {
		return nil, err
	}

	// Clientes removidos respondem 200 com deleted=true
	if customer.Deleted {
		return nil, stripedomain.ErrCustomerNotFound
	}

	return &customer, nil
}
