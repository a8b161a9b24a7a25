package stripeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
	stripedomain "github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/domain"
	"github.com/vfg2006/customer-insights-api/internal/config"
)

type Client interface {
	GetCustomerByID(ctx context.Context, customerID string) (*stripedomain.Customer, error)
	ListChargesByCustomerID(ctx context.Context, customerID string) ([]stripedomain.Charge, error)
	ListSubscriptionsByCustomerID(ctx context.Context, customerID string) ([]stripedomain.Subscription, error)
	ListInvoicesByCustomerID(ctx context.Context, customerID string) ([]stripedomain.Invoice, error)
}

type StripeClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &StripeClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Stripe.RequestTimeoutSeconds) * time.Second,
		},
		config: cfg,
	}
}

// get executa uma requisição GET autenticada contra a API da Stripe e
// decodifica a resposta em out
func (c *StripeClient) get(ctx context.Context, endpointPath string, query url.Values, out any) error {
	// Construir a URL da requisição
	endpoint, err := url.Parse(c.config.Stripe.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)
	endpoint.RawQuery = query.Encode()

	// Timeout limitado por requisição
	reqCtx, cancel := context.WithTimeout(ctx, time.Duration(c.config.Stripe.RequestTimeoutSeconds)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Stripe.SecretKey)
	req.Header.Set("Stripe-Version", c.config.Stripe.APIVersion)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Falhas de transporte e timeouts são sempre repetíveis
		return errors.Wrap(stripedomain.ErrUpstreamUnavailable, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(stripedomain.ErrUpstreamUnavailable, "erro ao ler a resposta")
	}

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

// handleErrorResponse traduz respostas de erro da Stripe para os erros tipados
// da integração
func (c *StripeClient) handleErrorResponse(status int, body []byte) error {
	var errResp stripedomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.IsRateLimited() {
			return errors.Wrap(stripedomain.ErrUpstreamUnavailable, "limite de requisições excedido")
		}
		if errResp.IsNotFound() {
			return errors.Wrap(stripedomain.ErrCustomerNotFound, errResp.Error.Message)
		}
	}

	switch {
	case status == http.StatusNotFound:
		return stripedomain.ErrCustomerNotFound
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return errors.Wrapf(stripedomain.ErrUpstreamUnavailable, "requisição falhou com status %d", status)
	}

	return fmt.Errorf("requisição à Stripe falhou com status %d: %s", status, errResp.Error.Message)
}
