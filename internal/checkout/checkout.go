// Package checkout implements the paid-order core of the funnel: cart
// snapshots, order creation, and idempotent payment confirmation.
package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("order not found")

	// ErrInvalidSelection is returned when a selected product or bump does
	// not belong to the step or is inactive. Nothing is written.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInvalidTotal is returned when the computed total is not positive.
	ErrInvalidTotal = errors.New("invalid total")
)

// OrderStatus is the lifecycle state of a purchase attempt.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderFailed    OrderStatus = "failed"
)

// PaymentStatus tracks whether money has actually moved.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// LineItemKind distinguishes main offers from order bumps.
type LineItemKind string

const (
	ItemMain LineItemKind = "main"
	ItemBump LineItemKind = "bump"
)

// OrderType classifies the funnel position that produced an order.
type OrderType string

const (
	TypeMain     OrderType = "main"
	TypeUpsell   OrderType = "upsell"
	TypeDownsell OrderType = "downsell"
	TypeBump     OrderType = "bump"
)

// MetadataIntentKey is the order metadata key holding the gateway
// payment-intent id used for reconciliation.
const MetadataIntentKey = "payment_intent_id"

// Address is the billing snapshot captured at checkout.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Customer is the buyer contact captured at checkout.
type Customer struct {
	Email string
	Name  string
}

// Order is the durable record of a purchase attempt. Line items are
// immutable once created; the order itself mutates only on status and
// payment transitions.
type Order struct {
	ID             uuid.UUID
	SubtotalCents  int64
	BumpTotalCents int64
	TotalCents     int64
	Status         OrderStatus
	PaymentStatus  PaymentStatus
	Currency       string
	CustomerEmail  string
	CustomerName   string
	BillingAddress *Address
	Metadata       map[string]string
	Items          []*LineItem
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// IntentID returns the gateway payment-intent id recorded on the order, if
// any.
func (o *Order) IntentID() string {
	if o.Metadata == nil {
		return ""
	}

	return o.Metadata[MetadataIntentKey]
}

// Paid reports whether the order's payment has been reconciled.
func (o *Order) Paid() bool {
	return o.PaymentStatus == PaymentPaid
}

// LineItem is one purchased product or bump, priced at creation time.
type LineItem struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	ProductID       uuid.UUID
	Kind            LineItemKind
	Name            string
	UnitPriceCents  int64
	Quantity        int
	TotalPriceCents int64
	CreatedAt       time.Time
}

// RecoveryStatus is the abandoned-cart recovery state. It only ever moves
// forward.
type RecoveryStatus string

const (
	RecoveryPending   RecoveryStatus = "pending"
	RecoverySent      RecoveryStatus = "sent"
	RecoveryRecovered RecoveryStatus = "recovered"
	RecoveryExpired   RecoveryStatus = "expired"
)

var recoveryRank = map[RecoveryStatus]int{
	RecoveryPending:   0,
	RecoverySent:      1,
	RecoveryRecovered: 2,
	RecoveryExpired:   2,
}

// Cart is the staging snapshot of a buyer's unpaid selection, one per
// (session, funnel). It is overwritten on each checkout attempt.
type Cart struct {
	ID             uuid.UUID
	SessionID      uuid.UUID
	FunnelID       uuid.UUID
	ProductIDs     []uuid.UUID
	BumpIDs        []uuid.UUID
	TotalCents     int64
	RecoveryStatus RecoveryStatus
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// AdvanceRecovery moves the cart's recovery status forward. Regressions are
// rejected and leave the cart unchanged.
func (c *Cart) AdvanceRecovery(next RecoveryStatus) bool {
	if recoveryRank[next] < recoveryRank[c.RecoveryStatus] {
		return false
	}

	c.RecoveryStatus = next

	return true
}

// FunnelOrder is the attribution join linking an order to the funnel, step
// and session that produced it. Exactly one main row exists per checkout;
// upsell counters on the main row are monotonic.
type FunnelOrder struct {
	ID                 uuid.UUID
	OrderID            uuid.UUID
	FunnelID           uuid.UUID
	StepID             uuid.UUID
	SessionID          uuid.UUID
	OrderType          OrderType
	FunnelRevenueCents int64
	BumpsOffered       int
	BumpsAccepted      int
	UpsellOffered      int
	UpsellAccepted     int
	CreatedAt          time.Time
}
