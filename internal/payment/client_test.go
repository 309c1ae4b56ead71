package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		BaseURL:   srv.URL,
		SecretKey: "sk_test_123",
	}, slog.Default(), nil)

	return client, srv
}

func TestClient_CreateIntent(t *testing.T) {
	var gotForm map[string][]string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payment_intents", r.URL.Path)

		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "sk_test_123", user)

		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"id":            "pi_123",
			"client_secret": "pi_123_secret",
			"status":        "requires_payment_method",
		})
	})

	intent, err := client.CreateIntent(context.Background(), CreateIntentParams{
		AmountCents: 17000,
		Currency:    "usd",
		Metadata:    map[string]string{"order_id": "ord-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
	assert.Equal(t, StatusRequiresPaymentMethod, intent.Status)
	assert.Equal(t, []string{"17000"}, gotForm["amount"])
	assert.Equal(t, []string{"ord-1"}, gotForm["metadata[order_id]"])
}

func TestClient_RetrieveIntent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/payment_intents/pi_42", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]string{
			"id":     "pi_42",
			"status": "succeeded",
		})
	})

	intent, err := client.RetrieveIntent(context.Background(), "pi_42")
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, intent.Status)
}

func TestClient_ChargeOffSession_Declined(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "true", r.PostForm.Get("off_session"))
		assert.Equal(t, "true", r.PostForm.Get("confirm"))
		assert.Equal(t, "cus_1", r.PostForm.Get("customer"))

		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{
				"type":         "card_error",
				"code":         "card_declined",
				"decline_code": "insufficient_funds",
			},
		})
	})

	_, err := client.ChargeOffSession(context.Background(), OffSessionParams{
		AmountCents:      4900,
		Currency:         "usd",
		CustomerRef:      "cus_1",
		PaymentMethodRef: "pm_1",
	})
	assert.ErrorIs(t, err, ErrCardDeclined)
}

// A provider rejection like invalid_request_error is permanent: it must not
// masquerade as a transient outage that callers would retry.
func TestClient_InvalidRequestIsNotTransient(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{
				"type": "invalid_request_error",
				"code": "parameter_unknown",
			},
		})
	})

	_, err := client.CreateIntent(context.Background(), CreateIntentParams{
		AmountCents: 17000,
		Currency:    "usd",
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.NotErrorIs(t, err, ErrGatewayUnavailable)
	assert.Contains(t, err.Error(), "parameter_unknown")
}

func TestClient_ServerErrorMapsToUnavailable(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.RetrieveIntent(context.Background(), "pi_1")
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestClient_TransportErrorMapsToUnavailable(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.RetrieveIntent(context.Background(), "pi_1")
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}
