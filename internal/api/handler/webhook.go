package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/customer-insights-api/internal/usecases/eventing"
	"github.com/vfg2006/customer-insights-api/pkg/apiErrors"
	"github.com/vfg2006/customer-insights-api/pkg/log"
)

// Limite de tamanho do payload aceito no endpoint de webhooks
const maxWebhookBodyBytes = 1 << 20 // 1 MiB

// StripeWebhook recebe as notificações de mudança da Stripe. A resposta 200
// reconhece a entrega; erros de assinatura ou payload retornam 400 e não
// devem ser reenviados pelo remetente.
func StripeWebhook(service eventing.WebhookProcessor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
		if err != nil {
			logger.WithError(err).Warn("webhook: failed to read request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o corpo da requisição", nil)
			return
		}

		signatureHeader := r.Header.Get("Stripe-Signature")

		if err := service.ProcessWebhook(r.Context(), payload, signatureHeader); err != nil {
			handleWebhookError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{
			"received": true,
		})
	})
}

func handleWebhookError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithField("error", err.Error())

	switch {
	case errors.Is(err, eventing.ErrInvalidSignature):
		logger.Warn("webhook: signature verification failed")
		apiErrors.WriteError(w, apiErrors.ErrWebhookInvalidSignature, "Assinatura do webhook inválida", nil)

	case errors.Is(err, eventing.ErrMalformedEvent):
		logger.Warn("webhook: malformed event payload")
		apiErrors.WriteError(w, apiErrors.ErrWebhookMalformedPayload, "Payload do webhook malformado", nil)

	default:
		// Falha transitória (ex.: banco indisponível): 500 induz o retry do remetente
		logger.Error("webhook: failed to process event")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar webhook", nil)
	}
}
