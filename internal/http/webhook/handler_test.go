package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funnelkit/internal/checkout"
	"funnelkit/internal/payment"
)

type confirmerFunc func(ctx context.Context, intentID string) (*checkout.ConfirmResult, error)

func (f confirmerFunc) ConfirmPayment(ctx context.Context, intentID string) (*checkout.ConfirmResult, error) {
	return f(ctx, intentID)
}

const testSecret = "whsec_test"

func sign(body string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(body))

	return hex.EncodeToString(mac.Sum(nil))
}

func newTestRouter(confirmer PaymentConfirmer) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(confirmer, testSecret, logger)

	r := chi.NewRouter()
	r.Route("/webhooks", handler.Routes)

	return r
}

func postEvent(t *testing.T, router http.Handler, body, signature string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/webhooks/gateway", strings.NewReader(body))
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestGateway_SucceededIntentConfirmed(t *testing.T) {
	var confirmed string

	router := newTestRouter(confirmerFunc(func(_ context.Context, intentID string) (*checkout.ConfirmResult, error) {
		confirmed = intentID
		return &checkout.ConfirmResult{Success: true, IntentStatus: payment.StatusSucceeded}, nil
	}))

	body := `{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`
	rec := postEvent(t, router, body, sign(body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pi_123", confirmed)
}

func TestGateway_BadSignature(t *testing.T) {
	router := newTestRouter(confirmerFunc(func(context.Context, string) (*checkout.ConfirmResult, error) {
		t.Fatal("confirmer must not run on a bad signature")
		return nil, nil
	}))

	body := `{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`
	rec := postEvent(t, router, body, "deadbeef")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateway_MissingSignature(t *testing.T) {
	router := newTestRouter(confirmerFunc(func(context.Context, string) (*checkout.ConfirmResult, error) {
		t.Fatal("confirmer must not run without a signature")
		return nil, nil
	}))

	body := `{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`
	rec := postEvent(t, router, body, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateway_IgnoredEventType(t *testing.T) {
	router := newTestRouter(confirmerFunc(func(context.Context, string) (*checkout.ConfirmResult, error) {
		t.Fatal("confirmer must not run for ignored event types")
		return nil, nil
	}))

	body := `{"type":"payment_intent.created","data":{"object":{"id":"pi_123"}}}`
	rec := postEvent(t, router, body, sign(body))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// An orphan intent is acknowledged: the gateway must not keep retrying a
// payment this service has no order for.
func TestGateway_OrphanAcknowledged(t *testing.T) {
	router := newTestRouter(confirmerFunc(func(context.Context, string) (*checkout.ConfirmResult, error) {
		return &checkout.ConfirmResult{Success: false, IntentStatus: payment.StatusSucceeded}, nil
	}))

	body := `{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_orphan"}}}`
	rec := postEvent(t, router, body, sign(body))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// Transient confirmation failures return 5xx so the gateway redelivers.
func TestGateway_ConfirmErrorRetried(t *testing.T) {
	router := newTestRouter(confirmerFunc(func(context.Context, string) (*checkout.ConfirmResult, error) {
		return nil, errors.New("database unavailable")
	}))

	body := `{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`
	rec := postEvent(t, router, body, sign(body))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// A permanently rejected request fails identically on every redelivery, so
// the webhook acknowledges it instead of asking for a retry.
func TestGateway_PermanentRejectionAcknowledged(t *testing.T) {
	router := newTestRouter(confirmerFunc(func(context.Context, string) (*checkout.ConfirmResult, error) {
		return nil, fmt.Errorf("retrieving intent: %w", payment.ErrInvalidRequest)
	}))

	body := `{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`
	rec := postEvent(t, router, body, sign(body))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateway_MalformedPayload(t *testing.T) {
	router := newTestRouter(confirmerFunc(func(context.Context, string) (*checkout.ConfirmResult, error) {
		t.Fatal("confirmer must not run for malformed payloads")
		return nil, nil
	}))

	body := `{not json`
	rec := postEvent(t, router, body, sign(body))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
