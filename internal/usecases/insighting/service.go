package insighting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-insights-api/infrastructure/cache"
	"github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe"
	"github.com/vfg2006/customer-insights-api/infrastructure/repository"
	"github.com/vfg2006/customer-insights-api/internal/config"
	"github.com/vfg2006/customer-insights-api/internal/domain"
	"github.com/vfg2006/customer-insights-api/pkg/utils"
)

// Service implementa CustomerInsighter orquestrando coleta, agregação e cache
type Service struct {
	cfg           *config.Config
	stripeService stripe.StripeIntegrator
	insightCache  cache.InsightCache
	snapshotRepo  repository.InsightSnapshotRepository
	now           func() time.Time
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	cfg *config.Config,
	stripeService stripe.StripeIntegrator,
	insightCache cache.InsightCache,
) *Service {
	return &Service{
		cfg:           cfg,
		stripeService: stripeService,
		insightCache:  insightCache,
		snapshotRepo:  nil, // Inicialmente sem histórico de snapshots
		now:           time.Now,
	}
}

// WithSnapshots habilita a gravação do histórico de bundles calculados
func (s *Service) WithSnapshots(snapshotRepo repository.InsightSnapshotRepository) *Service {
	s.snapshotRepo = snapshotRepo
	return s
}

// GetCustomerInsights retorna o bundle do cache quando dentro do TTL;
// caso contrário coleta os dados na Stripe e recalcula
func (s *Service) GetCustomerInsights(ctx context.Context, customerID string) (*domain.InsightBundle, error) {
	if bundle, ok := s.insightCache.Get(customerID); ok {
		logrus.WithField("customer_id", customerID).Debug("Insights servidos do cache")
		return bundle, nil
	}

	return s.computeInsights(ctx, customerID)
}

// RefreshCustomerInsights descarta o cache e força um recálculo completo
func (s *Service) RefreshCustomerInsights(ctx context.Context, customerID string) (*domain.InsightBundle, error) {
	s.insightCache.Invalidate(customerID)
	return s.computeInsights(ctx, customerID)
}

// InvalidateCustomer remove a entrada de cache do cliente. O recálculo
// acontece de forma preguiçosa na próxima leitura.
func (s *Service) InvalidateCustomer(customerID string) {
	s.insightCache.Invalidate(customerID)
}

func (s *Service) computeInsights(ctx context.Context, customerID string) (*domain.InsightBundle, error) {
	data, err := s.stripeService.CollectCustomerData(ctx, customerID)
	if err != nil {
		// Erros tipados da integração sobem direto para o handler decidir
		return nil, err
	}

	bundle := Aggregate(s.now(), data)

	s.insightCache.Put(customerID, bundle)
	s.saveSnapshot(bundle)

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"risk_score":  bundle.RiskAssessment.Score,
		"ltv_total":   bundle.LifetimeValue.Total,
	}).Info("Insights do cliente recalculados")

	return bundle, nil
}

// saveSnapshot grava o histórico do bundle calculado. Falhas aqui não
// invalidam a agregação.
func (s *Service) saveSnapshot(bundle *domain.InsightBundle) {
	if s.snapshotRepo == nil {
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar ID do snapshot de insights")
		return
	}

	snapshot := &domain.InsightSnapshot{
		ID:         id,
		CustomerID: bundle.CustomerID,
		Bundle:     bundle,
		ComputedAt: bundle.Metadata.ComputedAt,
	}

	if err := s.snapshotRepo.Save(snapshot); err != nil {
		logrus.WithError(err).WithField("customer_id", bundle.CustomerID).
			Warn("Erro ao salvar snapshot de insights")
	}
}
