package checkout

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"funnelkit/internal/auth"
	"funnelkit/internal/catalog"
	"funnelkit/internal/checkout"
	"funnelkit/internal/funnel"
	"funnelkit/internal/payment"
)

type Handler struct {
	svc    *checkout.Service
	tokens *auth.TokenIssuer
}

func NewHandler(svc *checkout.Service, tokens *auth.TokenIssuer) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/confirm", h.confirm)
}

type createCheckoutRequest struct {
	SessionID  uuid.UUID         `json:"session_id"`
	StepID     uuid.UUID         `json:"step_id"`
	ProductIDs []uuid.UUID       `json:"product_ids"`
	BumpIDs    []uuid.UUID       `json:"bump_ids,omitempty"`
	Customer   customerPayload   `json:"customer"`
	Billing    *checkout.Address `json:"billing_address,omitempty"`
}

type customerPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type createCheckoutResponse struct {
	OrderID      uuid.UUID `json:"order_id"`
	TotalCents   int64     `json:"total_cents"`
	Currency     string    `json:"currency"`
	IntentID     string    `json:"payment_intent_id"`
	ClientSecret string    `json:"client_secret"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.CreateCheckout(r.Context(), checkout.CreateParams{
		SessionID:      req.SessionID,
		StepID:         req.StepID,
		ProductIDs:     req.ProductIDs,
		BumpIDs:        req.BumpIDs,
		Customer:       checkout.Customer{Email: req.Customer.Email, Name: req.Customer.Name},
		BillingAddress: req.Billing,
	})
	if err != nil {
		writeCheckoutError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	resp := createCheckoutResponse{
		OrderID:      result.Order.ID,
		TotalCents:   result.TotalCents,
		Currency:     result.Order.Currency,
		IntentID:     result.Intent.ID,
		ClientSecret: result.Intent.ClientSecret,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type confirmRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
}

type confirmResponse struct {
	Success       bool       `json:"success"`
	OrderID       *uuid.UUID `json:"order_id,omitempty"`
	IntentStatus  string     `json:"intent_status,omitempty"`
	PurchaseToken string     `json:"purchase_token,omitempty"`
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.PaymentIntentID == "" {
		http.Error(w, "payment_intent_id is required", http.StatusBadRequest)
		return
	}

	result, err := h.svc.ConfirmPayment(r.Context(), req.PaymentIntentID)
	if err != nil {
		writeCheckoutError(w, err)
		return
	}

	resp := confirmResponse{
		Success:      result.Success,
		IntentStatus: string(result.IntentStatus),
	}

	if result.Order != nil {
		resp.OrderID = &result.Order.ID
	}

	// A confirmed purchase earns a token authorizing the one-click steps
	// that follow. The token is bound to the session the order was placed
	// under, never to anything the caller sent.
	if result.Success && result.Order != nil && result.SessionID != uuid.Nil {
		token, err := h.tokens.Issue(result.SessionID, result.Order.ID)
		if err != nil {
			slog.Error("failed to issue purchase token", "error", err)
		} else {
			resp.PurchaseToken = token
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeCheckoutError(w http.ResponseWriter, err error) {
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
