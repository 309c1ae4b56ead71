package upsell

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"funnelkit/internal/auth"
	"funnelkit/internal/catalog"
	"funnelkit/internal/checkout"
	"funnelkit/internal/funnel"
	"funnelkit/internal/payment"
	"funnelkit/internal/upsell"
)

type Handler struct {
	svc    *upsell.Service
	tokens *auth.TokenIssuer
}

func NewHandler(svc *upsell.Service, tokens *auth.TokenIssuer) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/accept", h.accept)
	r.Post("/decline", h.decline)
}

type acceptRequest struct {
	StepID    uuid.UUID `json:"step_id"`
	ProductID uuid.UUID `json:"product_id"`
}

type acceptResponse struct {
	Accepted        bool       `json:"accepted"`
	OrderID         *uuid.UUID `json:"order_id,omitempty"`
	RequiresPayment bool       `json:"requires_payment_method,omitempty"`
}

func (h *Handler) accept(w http.ResponseWriter, r *http.Request) {
	token, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req acceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.AcceptOneClick(r.Context(), upsell.AcceptParams{
		SessionID:       token.SessionID,
		StepID:          req.StepID,
		OriginalOrderID: token.OrderID,
		ProductID:       req.ProductID,
	})
	if err != nil {
		writeUpsellError(w, err)
		return
	}

	resp := acceptResponse{
		Accepted:        result.Accepted,
		RequiresPayment: result.RequiresPayment,
	}

	if result.Order != nil {
		resp.OrderID = &result.Order.ID
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) decline(w http.ResponseWriter, r *http.Request) {
	token, ok := h.authorize(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeclineUpsell(r.Context(), token.OrderID); err != nil {
		writeUpsellError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorize extracts and verifies the bearer purchase token. On failure it
// writes the response itself and reports false.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) (*auth.PurchaseToken, bool) {
	header := r.Header.Get("Authorization")

	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || raw == "" {
		http.Error(w, "missing purchase token", http.StatusUnauthorized)
		return nil, false
	}

	token, err := h.tokens.Verify(raw)
	if err != nil {
		http.Error(w, "invalid purchase token", http.StatusUnauthorized)
		return nil, false
	}

	return token, true
}

func writeUpsellError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrInvalidSelection), errors.Is(err, checkout.ErrInvalidTotal):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, checkout.ErrNotFound),
		errors.Is(err, funnel.ErrNotFound),
		errors.Is(err, catalog.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, payment.ErrGatewayUnavailable):
		http.Error(w, "payment gateway unavailable", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
