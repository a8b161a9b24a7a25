package insighting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/customer-insights-api/infrastructure/cache"
	"github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe"
	stripedomain "github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/domain"
	stripemocks "github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/mocks"
	"github.com/vfg2006/customer-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/customer-insights-api/internal/config"
	"github.com/vfg2006/customer-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *stripemocks.MockStripeIntegrator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockIntegrator := stripemocks.NewMockStripeIntegrator(ctrl)

	service := NewService(&config.Config{}, mockIntegrator, cache.NewMemoryInsightCache(5*time.Minute))
	return service, mockIntegrator
}

func customerData(customerID string) *stripe.CustomerData {
	return &stripe.CustomerData{
		Customer: &stripedomain.Customer{ID: customerID, Email: "c@d.com"},
		Charges: []stripedomain.Charge{
			{ID: "ch_1", Amount: 1000, Status: stripedomain.ChargeStatusSucceeded, Currency: "brl"},
		},
	}
}

func TestGetCustomerInsights_CacheHitSkipsCollector(t *testing.T) {
	service, mockIntegrator := newTestService(t)

	// Primeira leitura coleta na Stripe; a segunda deve vir do cache
	mockIntegrator.EXPECT().
		CollectCustomerData(gomock.Any(), "cus_001").
		Return(customerData("cus_001"), nil).
		Times(1)

	first, err := service.GetCustomerInsights(context.Background(), "cus_001")
	require.NoError(t, err)

	second, err := service.GetCustomerInsights(context.Background(), "cus_001")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1000), second.LifetimeValue.Total)
}

func TestGetCustomerInsights_ErrorPassthrough(t *testing.T) {
	service, mockIntegrator := newTestService(t)

	mockIntegrator.EXPECT().
		CollectCustomerData(gomock.Any(), "cus_missing").
		Return(nil, stripedomain.ErrCustomerNotFound)

	bundle, err := service.GetCustomerInsights(context.Background(), "cus_missing")

	assert.Nil(t, bundle)
	assert.True(t, errors.Is(err, stripedomain.ErrCustomerNotFound))
}

func TestRefreshCustomerInsights_BypassesCache(t *testing.T) {
	service, mockIntegrator := newTestService(t)

	// Mesmo com a entrada já em cache, o refresh força nova coleta
	mockIntegrator.EXPECT().
		CollectCustomerData(gomock.Any(), "cus_002").
		Return(customerData("cus_002"), nil).
		Times(2)

	_, err := service.GetCustomerInsights(context.Background(), "cus_002")
	require.NoError(t, err)

	bundle, err := service.RefreshCustomerInsights(context.Background(), "cus_002")
	require.NoError(t, err)
	assert.Equal(t, "cus_002", bundle.CustomerID)
}

func TestInvalidateCustomer_ForcesRecomputeOnNextRead(t *testing.T) {
	service, mockIntegrator := newTestService(t)

	mockIntegrator.EXPECT().
		CollectCustomerData(gomock.Any(), "cus_003").
		Return(customerData("cus_003"), nil).
		Times(2)

	_, err := service.GetCustomerInsights(context.Background(), "cus_003")
	require.NoError(t, err)

	service.InvalidateCustomer("cus_003")

	_, err = service.GetCustomerInsights(context.Background(), "cus_003")
	require.NoError(t, err)
}

func TestComputeInsights_SavesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockIntegrator := stripemocks.NewMockStripeIntegrator(ctrl)
	mockSnapshotRepo := mocks.NewMockInsightSnapshotRepository(ctrl)

	service := NewService(&config.Config{}, mockIntegrator, cache.NewMemoryInsightCache(5*time.Minute)).
		WithSnapshots(mockSnapshotRepo)

	mockIntegrator.EXPECT().
		CollectCustomerData(gomock.Any(), "cus_004").
		Return(customerData("cus_004"), nil)

	var saved *domain.InsightSnapshot
	mockSnapshotRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(snapshot *domain.InsightSnapshot) error {
			saved = snapshot
			return nil
		})

	bundle, err := service.GetCustomerInsights(context.Background(), "cus_004")
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, "cus_004", saved.CustomerID)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, bundle, saved.Bundle)
}

func TestComputeInsights_SnapshotFailureDoesNotFailRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockIntegrator := stripemocks.NewMockStripeIntegrator(ctrl)
	mockSnapshotRepo := mocks.NewMockInsightSnapshotRepository(ctrl)

	service := NewService(&config.Config{}, mockIntegrator, cache.NewMemoryInsightCache(5*time.Minute)).
		WithSnapshots(mockSnapshotRepo)

	mockIntegrator.EXPECT().
		CollectCustomerData(gomock.Any(), "cus_005").
		Return(customerData("cus_005"), nil)

	mockSnapshotRepo.EXPECT().
		Save(gomock.Any()).
		Return(errors.New("banco indisponível"))

	bundle, err := service.GetCustomerInsights(context.Background(), "cus_005")

	require.NoError(t, err)
	assert.Equal(t, "cus_005", bundle.CustomerID)
}
