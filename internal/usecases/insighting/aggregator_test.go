package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe"
	stripedomain "github.com/vfg2006/customer-insights-api/infrastructure/integrator/stripe/domain"
	"github.com/vfg2006/customer-insights-api/internal/domain"
)

// Data de referência fixa para manter os cálculos determinísticos
var referenceNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func card() *stripedomain.PaymentMethodDetails {
	return &stripedomain.PaymentMethodDetails{Type: "card"}
}

func TestAggregate_LifetimeValue(t *testing.T) {
	// Três cobranças bem-sucedidas (1000, 2000, 3000) e um estorno parcial de
	// 500 na segunda: total esperado 5500
	data := &stripe.CustomerData{
		Customer: &stripedomain.Customer{ID: "cus_001", Email: "a@b.com", Name: "Cliente A"},
		Charges: []stripedomain.Charge{
			{ID: "ch_1", Amount: 1000, Status: stripedomain.ChargeStatusSucceeded, Currency: "brl", Created: referenceNow.AddDate(0, -3, 0).Unix(), PaymentMethodDetails: card()},
			{ID: "ch_2", Amount: 2000, AmountRefunded: 500, Status: stripedomain.ChargeStatusSucceeded, Currency: "brl", Created: referenceNow.AddDate(0, -2, 0).Unix(), PaymentMethodDetails: card()},
			{ID: "ch_3", Amount: 3000, Status: stripedomain.ChargeStatusSucceeded, Currency: "brl", Invoice: "in_1", Created: referenceNow.AddDate(0, -1, 0).Unix(), PaymentMethodDetails: card()},
		},
	}

	bundle := Aggregate(referenceNow, data)

	assert.Equal(t, "cus_001", bundle.CustomerID)
	assert.Equal(t, int64(5500), bundle.LifetimeValue.Total)
	assert.Equal(t, int64(3000), bundle.LifetimeValue.OneTime)
	assert.Equal(t, int64(3000), bundle.LifetimeValue.Subscription)
	assert.Equal(t, int64(500), bundle.LifetimeValue.Refunded)
	assert.Equal(t, "brl", bundle.LifetimeValue.Currency)
}

func TestAggregate_RefundOnFailedChargeStillCounts(t *testing.T) {
	// Estornos são descontados independentemente do status da cobrança
	data := &stripe.CustomerData{
		Charges: []stripedomain.Charge{
			{ID: "ch_1", Amount: 1000, Status: stripedomain.ChargeStatusSucceeded, Currency: "brl"},
			{ID: "ch_2", Amount: 2000, AmountRefunded: 300, Status: stripedomain.ChargeStatusFailed},
		},
	}

	bundle := Aggregate(referenceNow, data)

	assert.Equal(t, int64(1000-300), bundle.LifetimeValue.Total)
}

func TestAggregate_PaymentPatternAndFailureRisk(t *testing.T) {
	// Uma de quatro cobranças bem-sucedida: taxa de sucesso 25%, taxa de
	// falha 75% gera fator payment_failures de severidade alta (30 pontos)
	charges := []stripedomain.Charge{
		{ID: "ch_1", Amount: 1000, Status: stripedomain.ChargeStatusSucceeded, Currency: "brl", PaymentMethodDetails: card()},
		{ID: "ch_2", Amount: 1000, Status: stripedomain.ChargeStatusFailed, PaymentMethodDetails: card()},
		{ID: "ch_3", Amount: 1000, Status: stripedomain.ChargeStatusFailed, PaymentMethodDetails: card()},
		{ID: "ch_4", Amount: 1000, Status: stripedomain.ChargeStatusFailed, PaymentMethodDetails: card()},
	}

	bundle := Aggregate(referenceNow, &stripe.CustomerData{Charges: charges})

	assert.Equal(t, 4, bundle.PaymentPattern.TotalCharges)
	assert.Equal(t, 1, bundle.PaymentPattern.SucceededCharges)
	assert.Equal(t, 3, bundle.PaymentPattern.FailedCharges)
	assert.Equal(t, 25.0, bundle.PaymentPattern.SuccessRate)
	assert.Equal(t, "card", bundle.PaymentPattern.PreferredMethod)

	require.Len(t, bundle.RiskAssessment.Factors, 1)
	factor := bundle.RiskAssessment.Factors[0]
	assert.Equal(t, domain.RiskFactorPaymentFailures, factor.Code)
	assert.Equal(t, domain.SeverityHigh, factor.Severity)
	assert.Equal(t, 30, factor.Points)
	assert.Equal(t, 30, bundle.RiskAssessment.Score)
	assert.Equal(t, domain.RecommendationMediumRisk, bundle.RiskAssessment.Recommendation)
}

func TestAggregate_EmptyCustomerData(t *testing.T) {
	// Cliente sem histórico: tudo zerado, low_risk, datas nulas e sem NaN
	bundle := Aggregate(referenceNow, &stripe.CustomerData{
		Customer: &stripedomain.Customer{ID: "cus_empty"},
	})

	assert.Equal(t, int64(0), bundle.LifetimeValue.Total)
	assert.Equal(t, 0.0, bundle.PaymentPattern.SuccessRate)
	assert.Equal(t, 0.0, bundle.PaymentPattern.AverageAmount)
	assert.Empty(t, bundle.PaymentPattern.PreferredMethod)
	assert.Equal(t, 0, bundle.RiskAssessment.Score)
	assert.Equal(t, domain.RecommendationLowRisk, bundle.RiskAssessment.Recommendation)
	assert.Empty(t, bundle.RiskAssessment.Factors)
	assert.Nil(t, bundle.Metadata.FirstChargeAt)
	assert.Nil(t, bundle.Metadata.LastChargeAt)
	assert.Nil(t, bundle.Metadata.DaysSinceLastCharge)
	assert.Nil(t, bundle.SubscriptionHealth.NextBillingDate)
	assert.Equal(t, referenceNow, bundle.Metadata.ComputedAt)
}

func TestAggregate_Deterministic(t *testing.T) {
	data := &stripe.CustomerData{
		Customer: &stripedomain.Customer{ID: "cus_det", Created: referenceNow.AddDate(-1, 0, 0).Unix()},
		Charges: []stripedomain.Charge{
			{ID: "ch_1", Amount: 1500, Status: stripedomain.ChargeStatusSucceeded, Currency: "brl", Created: referenceNow.AddDate(0, -1, 0).Unix(), PaymentMethodDetails: card()},
			{ID: "ch_2", Amount: 2500, Status: stripedomain.ChargeStatusFailed, Created: referenceNow.AddDate(0, 0, -10).Unix(), PaymentMethodDetails: &stripedomain.PaymentMethodDetails{Type: "boleto"}},
		},
		Subscriptions: []stripedomain.Subscription{
			{ID: "sub_1", Status: stripedomain.SubscriptionStatusActive, CurrentPeriodEnd: referenceNow.AddDate(0, 0, 12).Unix(), Items: stripedomain.SubscriptionItemList{Data: []stripedomain.SubscriptionItem{
				{Quantity: 1, Price: stripedomain.Price{UnitAmount: 9900, Recurring: &stripedomain.Recurring{Interval: "month", IntervalCount: 1}}},
			}}},
		},
	}

	first := Aggregate(referenceNow, data)
	second := Aggregate(referenceNow, data)

	assert.Equal(t, first, second)
}

func TestAssessRisk_Disputes(t *testing.T) {
	customer := &stripedomain.Customer{ID: "cus_d", Created: referenceNow.AddDate(-2, 0, 0).Unix()}

	tests := []struct {
		name             string
		charges          []stripedomain.Charge
		expectedSeverity string
		expectedPoints   int
	}{
		{
			name: "Disputa acima de 1% do total - severidade alta",
			charges: []stripedomain.Charge{
				{ID: "ch_1", Amount: 100, Status: stripedomain.ChargeStatusSucceeded, Disputed: true},
				{ID: "ch_2", Amount: 100, Status: stripedomain.ChargeStatusSucceeded},
			},
			expectedSeverity: domain.SeverityHigh,
			expectedPoints:   40,
		},
		{
			name:             "Disputa com taxa de exatamente 1% - severidade média",
			charges:          disputedOneOutOf(100),
			expectedSeverity: domain.SeverityMedium,
			expectedPoints:   20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment := assessRisk(referenceNow, customer, tt.charges)

			var found *domain.RiskFactor
			for i := range assessment.Factors {
				if assessment.Factors[i].Code == domain.RiskFactorDisputes {
					found = &assessment.Factors[i]
				}
			}

			require.NotNil(t, found)
			assert.Equal(t, tt.expectedSeverity, found.Severity)
			assert.Equal(t, tt.expectedPoints, found.Points)
		})
	}
}

// disputedOneOutOf gera um histórico com exatamente uma disputa em total cobranças
func disputedOneOutOf(total int) []stripedomain.Charge {
	charges := make([]stripedomain.Charge, total)
	for i := range charges {
		charges[i] = stripedomain.Charge{Amount: 100, Status: stripedomain.ChargeStatusSucceeded}
	}
	charges[0].Disputed = true
	return charges
}

func TestAssessRisk_NewAccountLargeCharge(t *testing.T) {
	charges := []stripedomain.Charge{
		{ID: "ch_1", Amount: 150000, Status: stripedomain.ChargeStatusSucceeded, Created: referenceNow.AddDate(0, 0, -1).Unix()},
	}

	tests := []struct {
		name           string
		accountCreated int64
		expectFactor   bool
	}{
		{
			name:           "Conta com 10 dias e cobrança alta - fator presente",
			accountCreated: referenceNow.AddDate(0, 0, -10).Unix(),
			expectFactor:   true,
		},
		{
			name:           "Conta com 60 dias e cobrança alta - sem fator",
			accountCreated: referenceNow.AddDate(0, 0, -60).Unix(),
			expectFactor:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := &stripedomain.Customer{ID: "cus_n", Created: tt.accountCreated}
			assessment := assessRisk(referenceNow, customer, charges)

			hasFactor := false
			for _, factor := range assessment.Factors {
				if factor.Code == domain.RiskFactorNewAccountLargeCharge {
					hasFactor = true
					assert.Equal(t, domain.SeverityMedium, factor.Severity)
					assert.Equal(t, 15, factor.Points)
				}
			}
			assert.Equal(t, tt.expectFactor, hasFactor)
		})
	}
}

func TestAssessRisk_Velocity(t *testing.T) {
	// 11 cobranças no mesmo dia disparam o fator de velocidade
	charges := make([]stripedomain.Charge, 11)
	base := referenceNow.AddDate(0, 0, -1).Unix()
	for i := range charges {
		charges[i] = stripedomain.Charge{
			Amount:  100,
			Status:  stripedomain.ChargeStatusSucceeded,
			Created: base + int64(i*60),
		}
	}

	assessment := assessRisk(referenceNow, nil, charges)

	require.Len(t, assessment.Factors, 1)
	assert.Equal(t, domain.RiskFactorVelocity, assessment.Factors[0].Code)
	assert.Equal(t, domain.SeverityLow, assessment.Factors[0].Severity)
	assert.Equal(t, 10, assessment.Factors[0].Points)
	assert.Equal(t, domain.RecommendationLowRisk, assessment.Recommendation)
}

func TestAssessRisk_AllFactorsCombined(t *testing.T) {
	// Todos os fatores juntos: 30 + 40 + 15 + 10 = 95, dentro do teto de 100
	customer := &stripedomain.Customer{ID: "cus_cap", Created: referenceNow.AddDate(0, 0, -5).Unix()}

	charges := make([]stripedomain.Charge, 12)
	base := referenceNow.AddDate(0, 0, -2).Unix()
	for i := range charges {
		charges[i] = stripedomain.Charge{
			Amount:   150000,
			Status:   stripedomain.ChargeStatusFailed,
			Disputed: true,
			Created:  base + int64(i*60),
		}
	}

	assessment := assessRisk(referenceNow, customer, charges)

	require.Len(t, assessment.Factors, 4)
	assert.Equal(t, 95, assessment.Score)
	assert.LessOrEqual(t, assessment.Score, 100)
	assert.Equal(t, domain.RecommendationHighRisk, assessment.Recommendation)
}

func TestCalculatePaymentPattern_PreferredMethodTieBreak(t *testing.T) {
	// Empate entre card e boleto: vence o primeiro método visto no histórico
	charges := []stripedomain.Charge{
		{ID: "ch_1", Amount: 100, Status: stripedomain.ChargeStatusSucceeded, PaymentMethodDetails: &stripedomain.PaymentMethodDetails{Type: "boleto"}},
		{ID: "ch_2", Amount: 100, Status: stripedomain.ChargeStatusSucceeded, PaymentMethodDetails: card()},
	}

	pattern := calculatePaymentPattern(nil, charges)

	assert.Equal(t, "boleto", pattern.PreferredMethod)
}

func TestCalculatePaymentPattern_FallsBackToCustomerDefault(t *testing.T) {
	customer := &stripedomain.Customer{
		ID: "cus_pm",
		InvoiceSettings: &stripedomain.InvoiceSettings{
			DefaultPaymentMethod: &stripedomain.PaymentMethod{ID: "pm_1", Type: "pix"},
		},
	}

	pattern := calculatePaymentPattern(customer, []stripedomain.Charge{
		{ID: "ch_1", Amount: 100, Status: stripedomain.ChargeStatusSucceeded},
	})

	assert.Equal(t, "pix", pattern.PreferredMethod)
}

func TestCalculateSubscriptionHealth(t *testing.T) {
	soon := referenceNow.AddDate(0, 0, 5)
	later := referenceNow.AddDate(0, 0, 20)

	subscriptions := []stripedomain.Subscription{
		{
			ID:               "sub_1",
			Status:           stripedomain.SubscriptionStatusActive,
			CurrentPeriodEnd: later.Unix(),
			Items: stripedomain.SubscriptionItemList{Data: []stripedomain.SubscriptionItem{
				// Assinatura anual de 120000: MRR de 10000
				{Quantity: 1, Price: stripedomain.Price{UnitAmount: 120000, Recurring: &stripedomain.Recurring{Interval: "year", IntervalCount: 1}}},
			}},
		},
		{
			ID:               "sub_2",
			Status:           stripedomain.SubscriptionStatusActive,
			CurrentPeriodEnd: soon.Unix(),
			Items: stripedomain.SubscriptionItemList{Data: []stripedomain.SubscriptionItem{
				// Mensal de 5000 com quantidade 2: MRR de 10000
				{Quantity: 2, Price: stripedomain.Price{UnitAmount: 5000, Recurring: &stripedomain.Recurring{Interval: "month", IntervalCount: 1}}},
			}},
		},
		{ID: "sub_3", Status: stripedomain.SubscriptionStatusCanceled},
		{ID: "sub_4", Status: stripedomain.SubscriptionStatusUnpaid},
		{ID: "sub_5", Status: stripedomain.SubscriptionStatusPastDue},
	}

	invoices := []stripedomain.Invoice{
		{ID: "in_1", Status: stripedomain.InvoiceStatusOpen, DueDate: referenceNow.AddDate(0, 0, -2).Unix()},
		{ID: "in_2", Status: stripedomain.InvoiceStatusOpen, DueDate: referenceNow.AddDate(0, 0, 10).Unix()},
		{ID: "in_3", Status: stripedomain.InvoiceStatusPaid},
	}

	health := calculateSubscriptionHealth(referenceNow, subscriptions, invoices)

	assert.Equal(t, 5, health.Total)
	assert.Equal(t, 2, health.Active)
	assert.Equal(t, 2, health.Churned) // past_due não conta como churn
	assert.Equal(t, int64(20000), health.MonthlyRecurringRevenue)
	require.NotNil(t, health.NextBillingDate)
	// Próxima cobrança é o fim de período mais próximo entre as ativas
	assert.Equal(t, soon.Unix(), health.NextBillingDate.Unix())
	assert.Equal(t, 2, health.OpenInvoices)
	assert.Equal(t, 1, health.PastDueInvoices)
}

func TestMonthlySubscriptionAmount_Normalization(t *testing.T) {
	tests := []struct {
		name     string
		item     stripedomain.SubscriptionItem
		expected int64
	}{
		{
			name:     "Mensal simples",
			item:     stripedomain.SubscriptionItem{Quantity: 1, Price: stripedomain.Price{UnitAmount: 3000, Recurring: &stripedomain.Recurring{Interval: "month", IntervalCount: 1}}},
			expected: 3000,
		},
		{
			name:     "Trimestral dividido por 3",
			item:     stripedomain.SubscriptionItem{Quantity: 1, Price: stripedomain.Price{UnitAmount: 9000, Recurring: &stripedomain.Recurring{Interval: "month", IntervalCount: 3}}},
			expected: 3000,
		},
		{
			name:     "Anual dividido por 12",
			item:     stripedomain.SubscriptionItem{Quantity: 1, Price: stripedomain.Price{UnitAmount: 24000, Recurring: &stripedomain.Recurring{Interval: "year", IntervalCount: 1}}},
			expected: 2000,
		},
		{
			name:     "Semanal multiplicado por 52/12",
			item:     stripedomain.SubscriptionItem{Quantity: 1, Price: stripedomain.Price{UnitAmount: 1200, Recurring: &stripedomain.Recurring{Interval: "week", IntervalCount: 1}}},
			expected: 5200,
		},
		{
			name:     "Preço sem recorrência é ignorado",
			item:     stripedomain.SubscriptionItem{Quantity: 1, Price: stripedomain.Price{UnitAmount: 999}},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subscription := &stripedomain.Subscription{
				Items: stripedomain.SubscriptionItemList{Data: []stripedomain.SubscriptionItem{tt.item}},
			}
			assert.Equal(t, tt.expected, monthlySubscriptionAmount(subscription))
		})
	}
}

func TestBuildMetadata(t *testing.T) {
	first := referenceNow.AddDate(0, -2, 0)
	last := referenceNow.AddDate(0, 0, -3)

	charges := []stripedomain.Charge{
		{ID: "ch_1", Created: last.Unix()},
		{ID: "ch_2", Created: first.Unix()},
	}

	metadata := buildMetadata(referenceNow, charges)

	require.NotNil(t, metadata.FirstChargeAt)
	require.NotNil(t, metadata.LastChargeAt)
	require.NotNil(t, metadata.DaysSinceLastCharge)
	assert.Equal(t, first.Unix(), metadata.FirstChargeAt.Unix())
	assert.Equal(t, last.Unix(), metadata.LastChargeAt.Unix())
	assert.Equal(t, 3, *metadata.DaysSinceLastCharge)
	assert.Equal(t, 2, metadata.TotalCharges)
}
