// Package upsell implements the post-purchase one-click flow: charging a
// stored payment method for an upsell or downsell offer without another
// checkout form.
package upsell

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"funnelkit/internal/catalog"
	"funnelkit/internal/checkout"
	"funnelkit/internal/funnel"
	"funnelkit/internal/metrics"
	"funnelkit/internal/payment"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=upsell
type Repository interface {
	BeginCheckout(ctx context.Context) (checkout.CheckoutTx, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*checkout.Order, error)
	SetOrderIntent(ctx context.Context, orderID uuid.UUID, intentID string) error
	MarkOrderFailed(ctx context.Context, orderID uuid.UUID) error
	IncrementUpsellAccepted(ctx context.Context, orderID uuid.UUID) error
	IncrementUpsellOffered(ctx context.Context, orderID uuid.UUID) error
}

type CatalogReader interface {
	StepOffer(ctx context.Context, stepID uuid.UUID) (*catalog.StepOffer, error)
}

type SessionReader interface {
	GetSession(ctx context.Context, id uuid.UUID) (*funnel.Session, error)
}

// Gateway is the off-session slice of the payment adapter.
type Gateway interface {
	ChargeOffSession(ctx context.Context, params payment.OffSessionParams) (*payment.Intent, error)
}

// PaidMarker applies the shared paid transition, so an accepted upsell runs
// through the same conversion bookkeeping as a main checkout.
type PaidMarker interface {
	MarkOrderPaid(ctx context.Context, orderID uuid.UUID) (*checkout.Order, error)
}

type Service struct {
	repo     Repository
	catalog  CatalogReader
	sessions SessionReader
	gateway  Gateway
	paid     PaidMarker
	metrics  *metrics.Metrics
	logger   *slog.Logger
	currency string
}

func NewService(
	repo Repository,
	catalogReader CatalogReader,
	sessions SessionReader,
	gateway Gateway,
	paid PaidMarker,
	m *metrics.Metrics,
	logger *slog.Logger,
	currency string,
) *Service {
	if currency == "" {
		currency = "usd"
	}

	return &Service{
		repo:     repo,
		catalog:  catalogReader,
		sessions: sessions,
		gateway:  gateway,
		paid:     paid,
		metrics:  m,
		logger:   logger.With("component", "upsell"),
		currency: currency,
	}
}

type AcceptParams struct {
	SessionID       uuid.UUID
	StepID          uuid.UUID
	OriginalOrderID uuid.UUID
	ProductID       uuid.UUID
}

type AcceptResult struct {
	Accepted        bool
	Order           *checkout.Order
	Intent          *payment.Intent
	RequiresPayment bool
}

// AcceptOneClick charges the session's stored payment method for an upsell
// offer. A session without stored payment references fails fast before any
// order exists. A declined charge marks the fresh order failed, counts the
// offer against the original order, and asks the buyer for a new payment
// method; it is not an error.
func (s *Service) AcceptOneClick(ctx context.Context, params AcceptParams) (*AcceptResult, error) {
	sess, err := s.sessions.GetSession(ctx, params.SessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	if !sess.CanChargeOffSession() {
		s.countOutcome("no_payment_method")
		return &AcceptResult{RequiresPayment: true}, nil
	}

	original, err := s.repo.GetOrder(ctx, params.OriginalOrderID)
	if err != nil {
		return nil, fmt.Errorf("loading original order: %w", err)
	}

	offer, err := s.catalog.StepOffer(ctx, params.StepID)
	if err != nil {
		return nil, fmt.Errorf("loading step offer: %w", err)
	}

	order, item, orderType, err := buildUpsellOrder(offer, params, original.Currency)
	if err != nil {
		s.countOutcome("rejected")
		return nil, err
	}

	attribution := &checkout.FunnelOrder{
		FunnelID:           offer.FunnelID,
		StepID:             params.StepID,
		SessionID:          sess.ID,
		OrderType:          orderType,
		FunnelRevenueCents: order.TotalCents,
	}

	tx, err := s.repo.BeginCheckout(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin upsell order: %w", err)
	}
	defer tx.Rollback()

	if err := tx.CreateOrder(ctx, order, []*checkout.LineItem{item}); err != nil {
		return nil, fmt.Errorf("create upsell order: %w", err)
	}

	attribution.OrderID = order.ID
	if err := tx.CreateFunnelOrder(ctx, attribution); err != nil {
		return nil, fmt.Errorf("create upsell attribution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit upsell order: %w", err)
	}

	intent, err := s.gateway.ChargeOffSession(ctx, payment.OffSessionParams{
		AmountCents:      order.TotalCents,
		Currency:         s.currency,
		CustomerRef:      sess.Contact.GatewayCustomerID,
		PaymentMethodRef: sess.Contact.DefaultPaymentMethod,
		Metadata: map[string]string{
			"order_id":          order.ID.String(),
			"original_order_id": params.OriginalOrderID.String(),
		},
	})
	if err != nil {
		// Any charge failure resolves the same way: the fresh order fails,
		// the offer counts against the original order, and the buyer is
		// routed to a normal payment form to retry.
		return s.handleDecline(ctx, order, params.OriginalOrderID, err)
	}

	if err := s.repo.SetOrderIntent(ctx, order.ID, intent.ID); err != nil {
		return nil, fmt.Errorf("recording intent id: %w", err)
	}

	if intent.Status != payment.StatusSucceeded {
		return &AcceptResult{Intent: intent}, nil
	}

	paid, err := s.paid.MarkOrderPaid(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("marking upsell paid: %w", err)
	}

	if err := s.repo.IncrementUpsellAccepted(ctx, params.OriginalOrderID); err != nil {
		s.logger.Error("counting accepted upsell", "error", err, "order_id", params.OriginalOrderID)
	}

	s.countOutcome("accepted")

	return &AcceptResult{Accepted: true, Order: paid, Intent: intent}, nil
}

// handleDecline records the failed charge attempt. The fresh order fails,
// the offer counts against the original order, and the buyer is asked for a
// payment method.
func (s *Service) handleDecline(ctx context.Context, order *checkout.Order, originalOrderID uuid.UUID, cause error) (*AcceptResult, error) {
	s.logger.Info("one-click charge declined", "order_id", order.ID, "cause", cause)

	if err := s.repo.MarkOrderFailed(ctx, order.ID); err != nil {
		return nil, fmt.Errorf("marking declined order failed: %w", err)
	}

	if err := s.repo.IncrementUpsellOffered(ctx, originalOrderID); err != nil {
		s.logger.Error("counting offered upsell", "error", err, "order_id", originalOrderID)
	}

	s.countOutcome("declined")

	return &AcceptResult{RequiresPayment: true}, nil
}

// DeclineUpsell records that the buyer passed on the offer. Pure
// bookkeeping: no order, no charge.
func (s *Service) DeclineUpsell(ctx context.Context, originalOrderID uuid.UUID) error {
	if err := s.repo.IncrementUpsellOffered(ctx, originalOrderID); err != nil {
		return fmt.Errorf("counting offered upsell: %w", err)
	}

	s.countOutcome("passed")

	return nil
}

func buildUpsellOrder(offer *catalog.StepOffer, params AcceptParams, currency string) (*checkout.Order, *checkout.LineItem, checkout.OrderType, error) {
	var orderType checkout.OrderType

	switch offer.Kind {
	case funnel.StepUpsell:
		orderType = checkout.TypeUpsell
	case funnel.StepDownsell:
		orderType = checkout.TypeDownsell
	default:
		return nil, nil, "", fmt.Errorf("%w: step %s is not an upsell step", checkout.ErrInvalidSelection, params.StepID)
	}

	product, ok := offer.Product(params.ProductID)
	if !ok {
		return nil, nil, "", fmt.Errorf("%w: product %s not offered on step", checkout.ErrInvalidSelection, params.ProductID)
	}

	if product.PriceCents <= 0 {
		return nil, nil, "", fmt.Errorf("%w: total is %d", checkout.ErrInvalidTotal, product.PriceCents)
	}

	order := &checkout.Order{
		SubtotalCents: product.PriceCents,
		TotalCents:    product.PriceCents,
		Status:        checkout.OrderPending,
		PaymentStatus: checkout.PaymentPending,
		Currency:      currency,
	}

	item := &checkout.LineItem{
		ProductID:       product.ID,
		Kind:            checkout.ItemMain,
		Name:            product.Name,
		UnitPriceCents:  product.PriceCents,
		Quantity:        1,
		TotalPriceCents: product.PriceCents,
	}

	return order, item, orderType, nil
}

func (s *Service) countOutcome(outcome string) {
	if s.metrics != nil {
		s.metrics.UpsellOutcomes.WithLabelValues(outcome).Inc()
	}
}
