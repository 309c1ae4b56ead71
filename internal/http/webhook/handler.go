// Package webhook receives server-to-server payment notifications from the
// gateway and funnels them into the shared confirmation path.
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"funnelkit/internal/checkout"
	"funnelkit/internal/payment"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw request body.
const SignatureHeader = "X-Gateway-Signature"

const intentSucceededEvent = "payment_intent.succeeded"

// PaymentConfirmer is the confirmation entry point shared with the
// buyer-facing confirm endpoint.
type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, intentID string) (*checkout.ConfirmResult, error)
}

type Handler struct {
	confirmer PaymentConfirmer
	secret    []byte
	logger    *slog.Logger
}

func NewHandler(confirmer PaymentConfirmer, secret string, logger *slog.Logger) *Handler {
	return &Handler{
		confirmer: confirmer,
		secret:    []byte(secret),
		logger:    logger.With("component", "webhook"),
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/gateway", h.gateway)
}

type gatewayEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

func (h *Handler) gateway(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "reading body", http.StatusBadRequest)
		return
	}

	if !h.validSignature(body, r.Header.Get(SignatureHeader)) {
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	var ev gatewayEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	// Only successful intents are acted on; everything else is acknowledged
	// so the gateway stops retrying.
	if ev.Type != intentSucceededEvent || ev.Data.Object.ID == "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	result, err := h.confirmer.ConfirmPayment(r.Context(), ev.Data.Object.ID)
	if err != nil {
		h.logger.Error("webhook confirmation failed", "error", err, "intent_id", ev.Data.Object.ID)

		// A permanently rejected request will fail the same way on every
		// redelivery, so it is acknowledged instead of retried.
		if errors.Is(err, payment.ErrInvalidRequest) {
			w.WriteHeader(http.StatusOK)
			return
		}

		// A 5xx asks the gateway to redeliver; confirmation is idempotent so
		// the retry is safe.
		http.Error(w, "confirmation failed", http.StatusInternalServerError)

		return
	}

	if !result.Success {
		h.logger.Info("webhook intent not applied",
			"intent_id", ev.Data.Object.ID, "status", string(result.IntentStatus))
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) validSignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
