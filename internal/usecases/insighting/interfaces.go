package insighting

import (
	"context"

	"github.com/vfg2006/customer-insights-api/internal/domain"
)

// CustomerInsighter define a operação exposta à camada de apresentação
type CustomerInsighter interface {
	// GetCustomerInsights retorna o bundle de insights do cliente, do cache
	// quando ainda fresco ou recalculado a partir da Stripe
	GetCustomerInsights(ctx context.Context, customerID string) (*domain.InsightBundle, error)

	// RefreshCustomerInsights descarta o cache e recalcula os insights
	RefreshCustomerInsights(ctx context.Context, customerID string) (*domain.InsightBundle, error)

	// InvalidateCustomer remove a entrada de cache do cliente sem recalcular
	InvalidateCustomer(customerID string)
}
