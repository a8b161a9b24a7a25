package stripe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripedomain "github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/domain"
	"github.com/vfg2006/customer-insights-api/internal/config"
)

// stubClient devolve respostas fixas para exercitar a coleta paralela
type stubClient struct {
	customer      *stripedomain.Customer
	charges       []stripedomain.Charge
	subscriptions []stripedomain.Subscription
	invoices      []stripedomain.Invoice

	customerErr error
	chargesErr  error
}

func (s *stubClient) GetCustomerByID(ctx context.Context, customerID string) (*stripedomain.Customer, error) {
	return s.customer, s.customerErr
}

func (s *stubClient) ListChargesByCustomerID(ctx context.Context, customerID string) ([]stripedomain.Charge, error) {
	return s.charges, s.chargesErr
}

func (s *stubClient) ListSubscriptionsByCustomerID(ctx context.Context, customerID string) ([]stripedomain.Subscription, error) {
	return s.subscriptions, nil
}

func (s *stubClient) ListInvoicesByCustomerID(ctx context.Context, customerID string) ([]stripedomain.Invoice, error) {
	return s.invoices, nil
}

func TestCollectCustomerData(t *testing.T) {
	client := &stubClient{
		customer: &stripedomain.Customer{ID: "cus_001", Email: "a@b.com"},
		charges: []stripedomain.Charge{
			{ID: "ch_1", Amount: 1000},
			{ID: "ch_2", Amount: 2000},
		},
		subscriptions: []stripedomain.Subscription{
			{ID: "sub_1", Status: stripedomain.SubscriptionStatusActive},
		},
		invoices: []stripedomain.Invoice{
			{ID: "in_1", Status: stripedomain.InvoiceStatusOpen},
		},
	}

	service := New(&config.Config{}, client)

	data, err := service.CollectCustomerData(context.Background(), "cus_001")

	require.NoError(t, err)
	assert.Equal(t, "cus_001", data.Customer.ID)
	assert.Len(t, data.Charges, 2)
	assert.Len(t, data.Subscriptions, 1)
	assert.Len(t, data.Invoices, 1)
}

func TestCollectCustomerData_NoPartialBundles(t *testing.T) {
	// Qualquer falha invalida a coleta inteira, mesmo com as demais buscas OK
	client := &stubClient{
		customer:   &stripedomain.Customer{ID: "cus_002"},
		chargesErr: stripedomain.ErrUpstreamUnavailable,
	}

	service := New(&config.Config{}, client)

	data, err := service.CollectCustomerData(context.Background(), "cus_002")

	assert.Nil(t, data)
	assert.ErrorIs(t, err, stripedomain.ErrUpstreamUnavailable)
}

func TestCollectCustomerData_CustomerNotFound(t *testing.T) {
	client := &stubClient{
		customerErr: stripedomain.ErrCustomerNotFound,
	}

	service := New(&config.Config{}, client)

	data, err := service.CollectCustomerData(context.Background(), "cus_missing")

	assert.Nil(t, data)
	assert.ErrorIs(t, err, stripedomain.ErrCustomerNotFound)
}
