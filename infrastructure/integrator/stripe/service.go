package stripe

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	stripedomain "github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/domain"
	"github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/stripeclient"
	"github.com/vfg2006/customer-insights-api/internal/config"
)

// CustomerData é o resultado completo da coleta para um cliente
type CustomerData struct {
	Customer      *stripedomain.Customer
	Charges       []stripedomain.Charge
	Subscriptions []stripedomain.Subscription
	Invoices      []stripedomain.Invoice
}

type StripeIntegrator interface {
	// CollectCustomerData coleta perfil, cobranças, assinaturas e faturas do
	// cliente. A coleta falha por inteiro se qualquer busca falhar.
	CollectCustomerData(ctx context.Context, customerID string) (*CustomerData, error)
}

type StripeService struct {
	cfg    *config.Config
	Client stripeclient.Client
}

func New(cfg *config.Config, client stripeclient.Client) StripeIntegrator {
	return &StripeService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *StripeService) CollectCustomerData(ctx context.Context, customerID string) (*CustomerData, error) {
	var (
		customer      *stripedomain.Customer
		charges       []stripedomain.Charge
		subscriptions []stripedomain.Subscription
		invoices      []stripedomain.Invoice

		customerErr      error
		chargesErr       error
		subscriptionsErr error
		invoicesErr      error
	)

	// As quatro buscas são independentes entre si e rodam em paralelo.
	// Cada uma pagina sequencialmente até esgotar os dados.
	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		customer, customerErr = s.Client.GetCustomerByID(ctx, customerID)
	}()

	go func() {
		defer wg.Done()
		charges, chargesErr = s.Client.ListChargesByCustomerID(ctx, customerID)
	}()

	go func() {
		defer wg.Done()
		subscriptions, subscriptionsErr = s.Client.ListSubscriptionsByCustomerID(ctx, customerID)
	}()

	go func() {
		defer wg.Done()
		invoices, invoicesErr = s.Client.ListInvoicesByCustomerID(ctx, customerID)
	}()

	wg.Wait()

	// Sem bundles parciais: qualquer falha invalida a coleta inteira
	for _, err := range []error{customerErr, chargesErr, subscriptionsErr, invoicesErr} {
		if err != nil {
			logrus.WithError(err).WithField("customer_id", customerID).
				Error("Erro ao coletar dados do cliente na Stripe")
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"customer_id":   customerID,
		"charges":       len(charges),
		"subscriptions": len(subscriptions),
		"invoices":      len(invoices),
	}).Debug("Coleta de dados do cliente concluída")

	return &CustomerData{
		Customer:      customer,
		Charges:       charges,
		Subscriptions: subscriptions,
		Invoices:      invoices,
	}, nil
}
