package handler

import (
	"net/http"

	"github.com/vfg2006/customer-insights-api/internal/api/handler/router"
	"github.com/vfg2006/customer-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/customer-insights-api/internal/usecases/eventing"
	"github.com/vfg2006/customer-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/customer-insights-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Insights(service insighting.CustomerInsighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers/:id/insights",
			Method:      http.MethodGet,
			Handler:     GetCustomerInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id/insights/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshCustomerInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Webhooks não passam pelo middleware de JWT: a autenticidade vem da
// assinatura HMAC no cabeçalho Stripe-Signature
func Webhooks(service eventing.WebhookProcessor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/webhooks/stripe",
			Method:  http.MethodPost,
			Handler: StripeWebhook(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
