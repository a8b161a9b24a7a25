package insighting

import (
	"fmt"
	"time"

	"github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe"
	stripedomain "github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/domain"
	"github.com/vfg2006/customer-insights-api/internal/domain"
	"github.com/vfg2006/customer-insights-api/pkg/utils"
)

// Limiares do cálculo heurístico de risco
const (
	failureRateMediumThreshold = 0.3
	failureRateHighThreshold   = 0.5
	disputeRateHighThreshold   = 0.01

	// Valor considerado alto para uma cobrança de conta recente (unidades mínimas)
	largeChargeThreshold int64 = 100000

	newAccountMaxAgeDays = 30
	velocityMinCharges   = 10
	velocityWindowDays   = 7

	maxRiskScore = 100
)

// Aggregate reduz os dados coletados do cliente a um InsightBundle.
// Função pura: entradas idênticas (incluindo now) sempre produzem a mesma
// saída, e entradas vazias produzem resultados zerados sem erro.
func Aggregate(now time.Time, data *stripe.CustomerData) *domain.InsightBundle {
	bundle := &domain.InsightBundle{
		LifetimeValue:      calculateLifetimeValue(data.Charges),
		PaymentPattern:     calculatePaymentPattern(data.Customer, data.Charges),
		RiskAssessment:     assessRisk(now, data.Customer, data.Charges),
		SubscriptionHealth: calculateSubscriptionHealth(now, data.Subscriptions, data.Invoices),
		Metadata:           buildMetadata(now, data.Charges),
	}

	if data.Customer != nil {
		bundle.CustomerID = data.Customer.ID
		bundle.CustomerEmail = data.Customer.Email
		bundle.CustomerName = data.Customer.Name
	}

	return bundle
}

// calculateLifetimeValue soma as cobranças bem-sucedidas separando receita
// avulsa de receita de assinatura e descontando estornos de todas as
// cobranças, independentemente do status. A moeda vem da primeira cobrança
// bem-sucedida; clientes multi-moeda não são convertidos.
func calculateLifetimeValue(charges []stripedomain.Charge) domain.LifetimeValue {
	ltv := domain.LifetimeValue{}

	for _, charge := range charges {
		if charge.Status == stripedomain.ChargeStatusSucceeded {
			if ltv.Currency == "" {
				ltv.Currency = charge.Currency
			}

			if charge.IsSubscriptionCharge() {
				ltv.Subscription += charge.Amount
			} else {
				ltv.OneTime += charge.Amount
			}
		}

		ltv.Refunded += charge.AmountRefunded
	}

	ltv.Total = ltv.OneTime + ltv.Subscription - ltv.Refunded

	return ltv
}

func calculatePaymentPattern(customer *stripedomain.Customer, charges []stripedomain.Charge) domain.PaymentPattern {
	pattern := domain.PaymentPattern{
		TotalCharges: len(charges),
	}

	var amountSum int64
	methodCounts := make(map[string]int)
	methodOrder := make([]string, 0)

	for _, charge := range charges {
		amountSum += charge.Amount

		switch charge.Status {
		case stripedomain.ChargeStatusSucceeded:
			pattern.SucceededCharges++
		case stripedomain.ChargeStatusFailed:
			pattern.FailedCharges++
		}

		if charge.PaymentMethodDetails != nil && charge.PaymentMethodDetails.Type != "" {
			method := charge.PaymentMethodDetails.Type
			if _, seen := methodCounts[method]; !seen {
				methodOrder = append(methodOrder, method)
			}
			methodCounts[method]++
		}
	}

	// Taxa de sucesso é 0 quando não há cobranças, nunca NaN
	if pattern.TotalCharges > 0 {
		pattern.SuccessRate = utils.RoundWithTwoDecimalPlace(
			float64(pattern.SucceededCharges) / float64(pattern.TotalCharges) * 100,
		)
		pattern.AverageAmount = utils.RoundWithTwoDecimalPlace(
			float64(amountSum) / float64(pattern.TotalCharges),
		)
	}

	// Método preferido: maior ocorrência, empate resolvido pelo primeiro visto
	bestCount := 0
	for _, method := range methodOrder {
		if methodCounts[method] > bestCount {
			bestCount = methodCounts[method]
			pattern.PreferredMethod = method
		}
	}

	// Sem cobranças com método identificado, cair para o método padrão do cliente
	if pattern.PreferredMethod == "" && customer != nil &&
		customer.InvoiceSettings != nil && customer.InvoiceSettings.DefaultPaymentMethod != nil {
		pattern.PreferredMethod = customer.InvoiceSettings.DefaultPaymentMethod.Type
	}

	return pattern
}

// assessRisk avalia os fatores de risco em ordem fixa: falhas de pagamento,
// disputas, conta nova com cobrança alta e velocidade de cobranças. A
// pontuação é aditiva e limitada a 100; cada fator só cresce quando a sua
// magnitude cresce.
func assessRisk(now time.Time, customer *stripedomain.Customer, charges []stripedomain.Charge) domain.RiskAssessment {
	assessment := domain.RiskAssessment{
		Recommendation: domain.RecommendationLowRisk,
		Factors:        make([]domain.RiskFactor, 0),
	}

	total := len(charges)

	var failed, disputed int
	var hasLargeCharge bool
	var minCreated, maxCreated int64

	for i, charge := range charges {
		if charge.Status == stripedomain.ChargeStatusFailed {
			failed++
		}
		if charge.Disputed {
			disputed++
		}
		if charge.Amount >= largeChargeThreshold {
			hasLargeCharge = true
		}
		if i == 0 || charge.Created < minCreated {
			minCreated = charge.Created
		}
		if i == 0 || charge.Created > maxCreated {
			maxCreated = charge.Created
		}
	}

	// 1. Falhas de pagamento
	if total > 0 {
		failureRate := float64(failed) / float64(total)
		if failureRate > failureRateHighThreshold {
			assessment.Factors = append(assessment.Factors, domain.RiskFactor{
				Code:        domain.RiskFactorPaymentFailures,
				Severity:    domain.SeverityHigh,
				Description: fmt.Sprintf("Taxa de falha de pagamento de %.0f%%", failureRate*100),
				Points:      30,
			})
		} else if failureRate > failureRateMediumThreshold {
			assessment.Factors = append(assessment.Factors, domain.RiskFactor{
				Code:        domain.RiskFactorPaymentFailures,
				Severity:    domain.SeverityMedium,
				Description: fmt.Sprintf("Taxa de falha de pagamento de %.0f%%", failureRate*100),
				Points:      15,
			})
		}
	}

	// 2. Disputas
	if disputed > 0 {
		disputeRate := float64(disputed) / float64(total)
		if disputeRate > disputeRateHighThreshold {
			assessment.Factors = append(assessment.Factors, domain.RiskFactor{
				Code:        domain.RiskFactorDisputes,
				Severity:    domain.SeverityHigh,
				Description: fmt.Sprintf("%d cobrança(s) com disputa aberta", disputed),
				Points:      40,
			})
		} else {
			assessment.Factors = append(assessment.Factors, domain.RiskFactor{
				Code:        domain.RiskFactorDisputes,
				Severity:    domain.SeverityMedium,
				Description: fmt.Sprintf("%d cobrança(s) com disputa aberta", disputed),
				Points:      20,
			})
		}
	}

	// 3. Conta nova com cobrança de valor alto
	if customer != nil && customer.Created > 0 && hasLargeCharge {
		accountAge := now.Sub(time.Unix(customer.Created, 0))
		if accountAge < newAccountMaxAgeDays*24*time.Hour {
			assessment.Factors = append(assessment.Factors, domain.RiskFactor{
				Code:        domain.RiskFactorNewAccountLargeCharge,
				Severity:    domain.SeverityMedium,
				Description: "Conta com menos de um mês e cobrança de valor alto",
				Points:      15,
			})
		}
	}

	// 4. Velocidade de cobranças
	if total > velocityMinCharges {
		span := time.Duration(maxCreated-minCreated) * time.Second
		if span < velocityWindowDays*24*time.Hour {
			assessment.Factors = append(assessment.Factors, domain.RiskFactor{
				Code:        domain.RiskFactorVelocity,
				Severity:    domain.SeverityLow,
				Description: fmt.Sprintf("%d cobranças em menos de %d dias", total, velocityWindowDays),
				Points:      10,
			})
		}
	}

	for _, factor := range assessment.Factors {
		assessment.Score += factor.Points
	}
	if assessment.Score > maxRiskScore {
		assessment.Score = maxRiskScore
	}

	switch {
	case assessment.Score < 20:
		assessment.Recommendation = domain.RecommendationLowRisk
	case assessment.Score < 50:
		assessment.Recommendation = domain.RecommendationMediumRisk
	default:
		assessment.Recommendation = domain.RecommendationHighRisk
	}

	return assessment
}

// calculateSubscriptionHealth consolida os contadores de assinatura, o MRR e
// a próxima data de cobrança. A próxima cobrança é o fim de período mais
// próximo entre todas as assinaturas ativas.
func calculateSubscriptionHealth(now time.Time, subscriptions []stripedomain.Subscription, invoices []stripedomain.Invoice) domain.SubscriptionHealth {
	health := domain.SubscriptionHealth{
		Total: len(subscriptions),
	}

	for _, subscription := range subscriptions {
		if subscription.Status == stripedomain.SubscriptionStatusActive {
			health.Active++
			health.MonthlyRecurringRevenue += monthlySubscriptionAmount(&subscription)

			periodEnd := time.Unix(subscription.CurrentPeriodEnd, 0).UTC()
			if health.NextBillingDate == nil || periodEnd.Before(*health.NextBillingDate) {
				health.NextBillingDate = &periodEnd
			}

			continue
		}

		if subscription.IsChurned() {
			health.Churned++
		}
	}

	nowUnix := now.Unix()
	for _, invoice := range invoices {
		if invoice.Status == stripedomain.InvoiceStatusOpen {
			health.OpenInvoices++
			if invoice.IsPastDue(nowUnix) {
				health.PastDueInvoices++
			}
		}
	}

	return health
}

// monthlySubscriptionAmount normaliza o valor por período da assinatura para
// um valor mensal: anual ÷ 12, mensal multi-período ÷ quantidade de períodos
func monthlySubscriptionAmount(subscription *stripedomain.Subscription) int64 {
	var total int64

	for _, item := range subscription.Items.Data {
		if item.Price.Recurring == nil {
			continue
		}

		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		amount := item.Price.UnitAmount * quantity

		intervalCount := item.Price.Recurring.IntervalCount
		if intervalCount <= 0 {
			intervalCount = 1
		}

		switch item.Price.Recurring.Interval {
		case "month":
			total += amount / intervalCount
		case "year":
			total += amount / (12 * intervalCount)
		case "week":
			total += amount * 52 / (12 * intervalCount)
		case "day":
			total += amount * 365 / (12 * intervalCount)
		}
	}

	return total
}

func buildMetadata(now time.Time, charges []stripedomain.Charge) domain.InsightMetadata {
	metadata := domain.InsightMetadata{
		TotalCharges: len(charges),
		ComputedAt:   now,
	}

	if len(charges) == 0 {
		return metadata
	}

	minCreated := charges[0].Created
	maxCreated := charges[0].Created
	for _, charge := range charges[1:] {
		if charge.Created < minCreated {
			minCreated = charge.Created
		}
		if charge.Created > maxCreated {
			maxCreated = charge.Created
		}
	}

	first := time.Unix(minCreated, 0).UTC()
	last := time.Unix(maxCreated, 0).UTC()
	daysSinceLast := int(now.Sub(last).Hours() / 24)

	metadata.FirstChargeAt = &first
	metadata.LastChargeAt = &last
	metadata.DaysSinceLastCharge = &daysSinceLast

	return metadata
}
