package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	stripedomain "github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/domain"
	"github.com/vfg2006/customer-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/customer-insights-api/pkg/apiErrors"
	"github.com/vfg2006/customer-insights-api/pkg/log"
)

func GetCustomerInsights(service insighting.CustomerInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		logger.WithField("customer_id", id).Info("insights: fetching customer insights by ID")

		bundle, err := service.GetCustomerInsights(r.Context(), id)
		if err != nil {
			handleInsightError(w, r, id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(bundle); err != nil {
			logger.WithFields(log.Fields{
				"customer_id": id,
				"error":       err.Error(),
			}).Error("insights: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

func RefreshCustomerInsights(service insighting.CustomerInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)
			return
		}

		logger.WithField("customer_id", id).Info("insights: forcing customer insights refresh")

		bundle, err := service.RefreshCustomerInsights(r.Context(), id)
		if err != nil {
			handleInsightError(w, r, id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(bundle); err != nil {
			logger.WithFields(log.Fields{
				"customer_id": id,
				"error":       err.Error(),
			}).Error("insights: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// handleInsightError mapeia os erros tipados da integração para os códigos da API
func handleInsightError(w http.ResponseWriter, r *http.Request, customerID string, err error) {
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"customer_id": customerID,
		"error":       err.Error(),
	})

	switch {
	case errors.Is(err, stripedomain.ErrCustomerNotFound):
		logger.Warn("insights: customer not found upstream")
		apiErrors.WriteError(w, apiErrors.ErrCustomerNotFound, "Cliente não encontrado no provedor de pagamentos", nil)

	case errors.Is(err, stripedomain.ErrUpstreamUnavailable):
		logger.Error("insights: upstream unavailable")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Provedor de pagamentos indisponível", nil)

	default:
		logger.Error("insights: failed to compute customer insights")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular insights do cliente", nil)
	}
}
