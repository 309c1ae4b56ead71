package funnel

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// StepKind identifies the role a step plays within its funnel.
type StepKind string

const (
	StepLanding  StepKind = "landing"
	StepCheckout StepKind = "checkout"
	StepUpsell   StepKind = "upsell"
	StepDownsell StepKind = "downsell"
	StepThankYou StepKind = "thankyou"
)

// Funnel is a configured multi-step sales flow.
type Funnel struct {
	ID                       uuid.UUID
	Name                     string
	AffiliateTrackingEnabled bool
	CreatedAt                time.Time
}

// Step is one page within a funnel.
type Step struct {
	ID        uuid.UUID
	FunnelID  uuid.UUID
	Kind      StepKind
	Position  int
	CreatedAt time.Time
}

// Contact holds the buyer identity attached to a session. The gateway
// references are required for one-click off-session charges.
type Contact struct {
	Email                string
	Name                 string
	GatewayCustomerID    string
	DefaultPaymentMethod string
}

// Session is one visitor's traversal of a funnel. Sessions are created on
// first page view and never deleted.
type Session struct {
	ID          uuid.UUID
	FunnelID    uuid.UUID
	Contact     *Contact
	AffiliateID *uuid.UUID
	Converted   bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// CanChargeOffSession reports whether the session carries the stored
// payment references a one-click charge needs.
func (s *Session) CanChargeOffSession() bool {
	return s.Contact != nil &&
		s.Contact.GatewayCustomerID != "" &&
		s.Contact.DefaultPaymentMethod != ""
}
