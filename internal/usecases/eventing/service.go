package eventing

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	stripedomain "github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/domain"
	"github.com/vfg2006/customer-insights-api/infrastructure/repository"
	"github.com/vfg2006/customer-insights-api/internal/config"
	"github.com/vfg2006/customer-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Service implementa WebhookProcessor. Fluxo por notificação:
// verificação de assinatura → supressão de duplicata → despacho por tipo →
// invalidação de cache → marcação como processado → reconhecimento.
type Service struct {
	cfg             *config.Config
	invalidator     InsightInvalidator
	processedEvents repository.ProcessedEventRepository
	now             func() time.Time
}

func NewService(
	cfg *config.Config,
	invalidator InsightInvalidator,
	processedEvents repository.ProcessedEventRepository,
) *Service {
	return &Service{
		cfg:             cfg,
		invalidator:     invalidator,
		processedEvents: processedEvents,
		now:             time.Now,
	}
}

func (s *Service) ProcessWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	// Nada é processado antes da verificação de autenticidade
	if err := verifySignature(payload, signatureHeader, s.cfg.Stripe.WebhookSecret, s.now()); err != nil {
		// Possível evento de segurança: payload adulterado ou segredo errado
		logrus.WithError(err).Warn("Webhook rejeitado por falha de assinatura")
		return err
	}

	var event stripedomain.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return errors.Wrap(ErrMalformedEvent, err.Error())
	}

	if event.ID == "" || event.Type == "" {
		return errors.Wrap(ErrMalformedEvent, "evento sem id ou tipo")
	}

	processed, err := s.processedEvents.IsProcessed(event.ID)
	if err != nil {
		return err
	}

	if processed {
		// Entrega duplicada: reconhecer sucesso sem reprocessar
		logrus.WithFields(logrus.Fields{
			"event_id":   event.ID,
			"event_type": event.Type,
		}).Info("Entrega duplicada de webhook ignorada")
		return nil
	}

	customerID := s.dispatch(&event)

	if err := s.processedEvents.MarkProcessed(&domain.ProcessedWebhookEvent{
		EventID:    event.ID,
		EventType:  event.Type,
		CustomerID: customerID,
		ReceivedAt: s.now(),
	}); err != nil {
		return err
	}

	return nil
}

// dispatch trata o evento conforme o tipo e retorna o ID do cliente afetado.
// O reconhecimento precisa ser rápido: a invalidação é barata e o recálculo
// dos insights fica para a próxima leitura.
func (s *Service) dispatch(event *stripedomain.Event) string {
	customerID := event.AffectedCustomerID()

	logger := logrus.WithFields(logrus.Fields{
		"event_id":    event.ID,
		"event_type":  event.Type,
		"customer_id": customerID,
	})

	switch event.Type {
	case stripedomain.EventCustomerCreated:
		// Cliente recém-criado ainda não tem entrada de cache
		logger.Debug("Evento de criação de cliente reconhecido sem ação")

	case stripedomain.EventCustomerUpdated,
		stripedomain.EventChargeSucceeded,
		stripedomain.EventChargeFailed,
		stripedomain.EventSubscriptionCreated,
		stripedomain.EventSubscriptionDeleted:
		if customerID == "" {
			logger.Warn("Evento sem cliente associado, nada a invalidar")
			break
		}
		s.invalidator.InvalidateCustomer(customerID)
		logger.Info("Cache de insights invalidado por webhook")

	default:
		// Tipos novos do upstream falham de forma segura: logar e ignorar
		logger.Info("Tipo de evento não tratado, ignorando")
	}

	return customerID
}
