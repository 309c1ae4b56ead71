// Package commission derives affiliate payouts for paid orders. Payouts are
// computed from per-product rules and recorded as pending rows for a separate
// payout process to settle.
package commission

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrRuleNotFound is returned by rule lookups when no rule covers the
	// (funnel, product) pair.
	ErrRuleNotFound = errors.New("commission rule not found")
)

// Type selects how a rule's rate is applied.
type Type string

const (
	// TypePercentage pays rate percent of the item price.
	TypePercentage Type = "percentage"

	// TypeFixed pays rate as an absolute amount in minor currency units per
	// matching item.
	TypeFixed Type = "fixed"
)

// Status is the settlement state of a recorded commission.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusPaid     Status = "paid"
	StatusRejected Status = "rejected"
)

// Rule maps one product within one funnel to a payout formula.
type Rule struct {
	ID        uuid.UUID
	FunnelID  uuid.UUID
	ProductID uuid.UUID
	Type      Type
	Rate      decimal.Decimal
	CreatedAt time.Time
}

// Amount computes the payout for one line item priced in minor units.
func (r *Rule) Amount(priceCents int64) int64 {
	switch r.Type {
	case TypeFixed:
		return r.Rate.Round(0).IntPart()
	default:
		return decimal.NewFromInt(priceCents).
			Mul(r.Rate).
			Div(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	}
}

// Commission is one pending payout, at most one per order. Rate and Type
// reflect the last rule applied when an order matched several rules.
type Commission struct {
	ID                    uuid.UUID
	AffiliateID           uuid.UUID
	OrderID               uuid.UUID
	Type                  Type
	Rate                  decimal.Decimal
	OrderAmountCents      int64
	CommissionAmountCents int64
	Status                Status
	CreatedAt             time.Time
}
