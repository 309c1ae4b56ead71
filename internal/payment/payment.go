// Package payment is the boundary to the external payment provider. Provider
// error types never cross this boundary; callers only ever see the sentinel
// errors below.
package payment

import (
	"context"
	"errors"
)

var (
	// ErrGatewayUnavailable covers timeouts, transport failures and 5xx
	// responses from the provider.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrCardDeclined is returned when an off-session charge is refused.
	ErrCardDeclined = errors.New("card declined")

	// ErrRequiresPaymentMethod signals the buyer has no stored payment
	// method; it is expected control flow, not a fault.
	ErrRequiresPaymentMethod = errors.New("requires payment method")

	// ErrInvalidRequest marks a 4xx the provider will reject every time,
	// such as a malformed or unknown parameter. Retrying cannot help.
	ErrInvalidRequest = errors.New("gateway rejected request")
)

// IntentStatus is the gateway's lifecycle state for a payment intent.
type IntentStatus string

const (
	StatusRequiresPaymentMethod IntentStatus = "requires_payment_method"
	StatusRequiresConfirmation  IntentStatus = "requires_confirmation"
	StatusProcessing            IntentStatus = "processing"
	StatusSucceeded             IntentStatus = "succeeded"
	StatusFailed                IntentStatus = "failed"
	StatusCanceled              IntentStatus = "canceled"
)

// Intent is the gateway's representation of an authorization in progress.
type Intent struct {
	ID           string
	ClientSecret string
	Status       IntentStatus
}

// CreateIntentParams describes a buyer-completed payment to initiate.
// AmountCents is always integer minor-currency units; Metadata must carry the
// order id so confirmations can be reconciled.
type CreateIntentParams struct {
	AmountCents int64
	Currency    string
	Metadata    map[string]string
}

// OffSessionParams describes an immediate charge against a stored payment
// method, used for one-click upsells.
type OffSessionParams struct {
	AmountCents      int64
	Currency         string
	CustomerRef      string
	PaymentMethodRef string
	Metadata         map[string]string
}

// Gateway is the adapter surface the checkout core depends on.
type Gateway interface {
	CreateIntent(ctx context.Context, params CreateIntentParams) (*Intent, error)
	RetrieveIntent(ctx context.Context, id string) (*Intent, error)
	ChargeOffSession(ctx context.Context, params OffSessionParams) (*Intent, error)
}
