package domain

import "time"

// Recomendações de risco derivadas da pontuação
const (
	RecommendationLowRisk    = "low_risk"
	RecommendationMediumRisk = "medium_risk"
	RecommendationHighRisk   = "high_risk"
)

// Severidades dos fatores de risco
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Códigos dos fatores de risco, na ordem de avaliação
const (
	RiskFactorPaymentFailures       = "payment_failures"
	RiskFactorDisputes              = "disputes"
	RiskFactorNewAccountLargeCharge = "new_account_large_charge"
	RiskFactorVelocity              = "velocity"
)

// InsightBundle é o resultado completo da agregação para um cliente.
// Sempre calculado a partir da coleta completa dos dados, nunca atualizado parcialmente.
type InsightBundle struct {
	CustomerID         string             `json:"customer_id"`
	CustomerEmail      string             `json:"customer_email,omitempty"`
	CustomerName       string             `json:"customer_name,omitempty"`
	LifetimeValue      LifetimeValue      `json:"lifetime_value"`
	PaymentPattern     PaymentPattern     `json:"payment_pattern"`
	RiskAssessment     RiskAssessment     `json:"risk_assessment"`
	SubscriptionHealth SubscriptionHealth `json:"subscription_health"`
	Metadata           InsightMetadata    `json:"metadata"`
}

// LifetimeValue representa a receita líquida acumulada do cliente.
// Todos os valores estão em unidades mínimas da moeda (centavos).
// Invariante: Total == OneTime + Subscription - Refunded
type LifetimeValue struct {
	Total        int64  `json:"total"`
	OneTime      int64  `json:"one_time"`
	Subscription int64  `json:"subscription"`
	Refunded     int64  `json:"refunded"`
	Currency     string `json:"currency"`
}

// PaymentPattern resume o comportamento de pagamento do cliente
type PaymentPattern struct {
	SuccessRate      float64 `json:"success_rate"` // Percentual (0-100)
	AverageAmount    float64 `json:"average_amount"`
	TotalCharges     int     `json:"total_charges"`
	SucceededCharges int     `json:"succeeded_charges"`
	FailedCharges    int     `json:"failed_charges"`
	PreferredMethod  string  `json:"preferred_method,omitempty"`
}

// RiskFactor é um sinal independente que contribui para a pontuação de risco
type RiskFactor struct {
	Code        string `json:"code"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// RiskAssessment é a avaliação heurística de risco do cliente.
// Score sempre está no intervalo [0, 100] e os fatores aparecem na ordem de avaliação.
type RiskAssessment struct {
	Score          int          `json:"score"`
	Recommendation string       `json:"recommendation"`
	Factors        []RiskFactor `json:"factors"`
}

// SubscriptionHealth resume a saúde das assinaturas do cliente.
// NextBillingDate segue a política do período ativo mais próximo de vencer
// entre todas as assinaturas ativas.
type SubscriptionHealth struct {
	Total                   int        `json:"total"`
	Active                  int        `json:"active"`
	Churned                 int        `json:"churned"`
	MonthlyRecurringRevenue int64      `json:"monthly_recurring_revenue"`
	NextBillingDate         *time.Time `json:"next_billing_date"`
	OpenInvoices            int        `json:"open_invoices"`
	PastDueInvoices         int        `json:"past_due_invoices"`
}

// InsightMetadata traz informações sobre a linha do tempo dos dados coletados
type InsightMetadata struct {
	FirstChargeAt       *time.Time `json:"first_charge_at"`
	LastChargeAt        *time.Time `json:"last_charge_at"`
	DaysSinceLastCharge *int       `json:"days_since_last_charge"`
	TotalCharges        int        `json:"total_charges"`
	ComputedAt          time.Time  `json:"computed_at"`
}
