package stripeclient

import (
	"context"
	"net/url"
	"strconv"

	stripedomain "github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/domain"
)

// ListChargesByCustomerID busca todas as cobranças do cliente paginando com
// cursor até o fim da lista. A busca é exaustiva para preservar a exatidão
// dos cálculos agregados.
func (c *StripeClient) ListChargesByCustomerID(ctx context.Context, customerID string) ([]stripedomain.Charge, error) {
	charges := make([]stripedomain.Charge, 0)

	params := url.Values{}
	params.Set("customer", customerID)
	params.Set("limit", strconv.Itoa(c.config.Stripe.PageSize))

	for {
		var page stripedomain.ChargeList
		if err := c.get(ctx, "/charges", params, &page); err != nil {
			return nil, err
		}

		charges = append(charges, page.Data...)

		if !page.HasMore || len(page.Data) == 0 {
			break
		}

		// O cursor da próxima página é o ID do último item retornado
		params.Set("starting_after", page.Data[len(page.Data)-1].ID)
	}

	return charges, nil
}
