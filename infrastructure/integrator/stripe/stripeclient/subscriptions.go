package stripeclient

import (
	"context"
	"net/url"
	"strconv"

	stripedomain "github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/domain"
)

// ListSubscriptionsByCustomerID busca todas as assinaturas do cliente,
// incluindo canceladas e inadimplentes (status=all), paginando com cursor
func (c *StripeClient) ListSubscriptionsByCustomerID(ctx context.Context, customerID string) ([]stripedomain.Subscription, error) {
	subscriptions := make([]stripedomain.Subscription, 0)

	params := url.Values{}
	params.Set("customer", customerID)
	params.Set("status", "all")
	params.Set("limit", strconv.Itoa(c.config.Stripe.PageSize))

	for {
		var page stripedomain.SubscriptionList
		if err := c.get(ctx, "/subscriptions", params, &page); err != nil {
			return nil, err
		}

		subscriptions = append(subscriptions, page.Data...)

		if !page.HasMore || len(page.Data) == 0 {
			break
		}

		params.Set("starting_after", page.Data[len(page.Data)-1].ID)
	}

	return subscriptions, nil
}
