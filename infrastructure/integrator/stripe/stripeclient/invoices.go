package stripeclient

import (
	"context"
	"net/url"
	"strconv"

	stripedomain "github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/domain"
)

// ListInvoicesByCustomerID busca todas as faturas do cliente paginando com cursor
func (c *StripeClient) ListInvoicesByCustomerID(ctx context.Context, customerID string) ([]stripedomain.Invoice, error) {
	invoices := make([]stripedomain.Invoice, 0)

	params := url.Values{}
	params.Set("customer", customerID)
	params.Set("limit", strconv.Itoa(c.config.Stripe.PageSize))

	for {
		var page stripedomain.InvoiceList
		if err := c.get(ctx, "/invoices", params, &page); err != nil {
			return nil, err
		}

		invoices = append(invoices, page.Data...)

		if !page.HasMore || len(page.Data) == 0 {
			break
		}

		params.Set("starting_after", page.Data[len(page.Data)-1].ID)
	}

	return invoices, nil
}
