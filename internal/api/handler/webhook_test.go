package handler

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/customer-insights-api/infrastructure/repository"
	"github.com/vfg2006/customer-insights-api/internal/config"
	"github.com/vfg2006/customer-insights-api/internal/usecases/eventing"
	"github.com/vfg2006/customer-insights-api/internal/usecases/eventing/mocks"
	"github.com/vfg2006/customer-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const webhookTestSecret = "whsec_handler_test"

func stripeSignature(payload []byte, secret string, timestamp int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", timestamp, payload)
	return fmt.Sprintf("t=%d,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func newWebhookHandler(t *testing.T) (http.Handler, *mocks.MockInsightInvalidator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	invalidator := mocks.NewMockInsightInvalidator(ctrl)

	cfg := &config.Config{
		Stripe: config.Stripe{
			WebhookSecret: webhookTestSecret,
		},
	}

	service := eventing.NewService(cfg, invalidator, repository.NewMemoryProcessedEventRepository())

	return StripeWebhook(service), invalidator
}

func postWebhook(t *testing.T, handler http.Handler, payload []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signature)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	return recorder
}

func TestStripeWebhook_DuplicateDeliveryAcknowledgedOnce(t *testing.T) {
	handler, invalidator := newWebhookHandler(t)

	payload := []byte(fmt.Sprintf(
		`{"id":"evt_dup","type":"charge.succeeded","created":%d,"data":{"object":{"id":"ch_1","object":"charge","customer":"cus_123"}}}`,
		time.Now().Unix(),
	))
	signature := stripeSignature(payload, webhookTestSecret, time.Now().Unix())

	// Entrega duplicada: uma única invalidação, dois reconhecimentos 200
	invalidator.EXPECT().InvalidateCustomer("cus_123").Times(1)

	for i := 0; i < 2; i++ {
		recorder := postWebhook(t, handler, payload, signature)

		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]bool
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.True(t, body["received"])
	}
}

func TestStripeWebhook_InvalidSignature(t *testing.T) {
	handler, _ := newWebhookHandler(t)

	payload := []byte(fmt.Sprintf(
		`{"id":"evt_bad","type":"charge.succeeded","created":%d,"data":{"object":{"id":"ch_2","object":"charge","customer":"cus_456"}}}`,
		time.Now().Unix(),
	))
	signature := stripeSignature(payload, "whsec_segredo_errado", time.Now().Unix())

	recorder := postWebhook(t, handler, payload, signature)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrWebhookInvalidSignature, apiErr.Code)
}

func TestStripeWebhook_MalformedPayload(t *testing.T) {
	handler, _ := newWebhookHandler(t)

	payload := []byte(`{"id":"evt_x",`)
	signature := stripeSignature(payload, webhookTestSecret, time.Now().Unix())

	recorder := postWebhook(t, handler, payload, signature)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrWebhookMalformedPayload, apiErr.Code)
}
