package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"funnelkit/internal/catalog"
	"funnelkit/internal/event"
	"funnelkit/internal/funnel"
	"funnelkit/internal/metrics"
	"funnelkit/internal/payment"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=checkout
type Repository interface {
	BeginCheckout(ctx context.Context) (CheckoutTx, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*Order, error)
	FindOrderByIntentID(ctx context.Context, intentID string) (*Order, error)
	GetAttribution(ctx context.Context, orderID uuid.UUID) (*FunnelOrder, error)
	SetOrderIntent(ctx context.Context, orderID uuid.UUID, intentID string) error
	BeginConfirm(ctx context.Context, orderID uuid.UUID) (ConfirmTx, error)
}

// CheckoutTx is the atomic unit creating a checkout: cart snapshot, order
// with line items, and the main attribution row commit or roll back together.
type CheckoutTx interface {
	UpsertCart(ctx context.Context, cart *Cart) error
	CreateOrder(ctx context.Context, order *Order, items []*LineItem) error
	CreateFunnelOrder(ctx context.Context, fo *FunnelOrder) error
	Commit() error
	Rollback() error
}

// ConfirmTx holds the row-locked order while payment state, session, cart
// and analytics are updated as one unit. Two confirmations racing on the
// same intent serialize here.
type ConfirmTx interface {
	Order() *Order
	Attribution() *FunnelOrder
	MarkPaid(ctx context.Context, paidAt time.Time) error
	MarkSessionConverted(ctx context.Context, sessionID uuid.UUID) error
	MarkCartRecovered(ctx context.Context, sessionID, funnelID uuid.UUID) error
	AddStats(ctx context.Context, funnelID, stepID uuid.UUID, revenueCents int64) error
	Commit() error
	Rollback() error
}

type CatalogReader interface {
	StepOffer(ctx context.Context, stepID uuid.UUID) (*catalog.StepOffer, error)
}

type SessionStore interface {
	GetSession(ctx context.Context, id uuid.UUID) (*funnel.Session, error)
	UpdateSessionContact(ctx context.Context, id uuid.UUID, contact funnel.Contact) error
}

// Gateway is the slice of the payment adapter the checkout path uses.
type Gateway interface {
	CreateIntent(ctx context.Context, params payment.CreateIntentParams) (*payment.Intent, error)
	RetrieveIntent(ctx context.Context, id string) (*payment.Intent, error)
}

// CommissionCalculator derives the affiliate payout for a freshly paid
// order. Called at most once per order by this service.
type CommissionCalculator interface {
	CommissionForOrder(ctx context.Context, order *Order, attribution *FunnelOrder, sess *funnel.Session) error
}

type Service struct {
	repo        Repository
	catalog     CatalogReader
	sessions    SessionStore
	gateway     Gateway
	commissions CommissionCalculator
	events      event.Dispatcher
	metrics     *metrics.Metrics
	logger      *slog.Logger
	currency    string
}

func NewService(
	repo Repository,
	catalogReader CatalogReader,
	sessions SessionStore,
	gateway Gateway,
	commissions CommissionCalculator,
	events event.Dispatcher,
	m *metrics.Metrics,
	logger *slog.Logger,
	currency string,
) *Service {
	if currency == "" {
		currency = "usd"
	}

	return &Service{
		repo:        repo,
		catalog:     catalogReader,
		sessions:    sessions,
		gateway:     gateway,
		commissions: commissions,
		events:      events,
		metrics:     m,
		logger:      logger.With("component", "checkout"),
		currency:    currency,
	}
}

type CreateParams struct {
	SessionID      uuid.UUID
	StepID         uuid.UUID
	ProductIDs     []uuid.UUID
	BumpIDs        []uuid.UUID
	Customer       Customer
	BillingAddress *Address
}

type CheckoutResult struct {
	Order      *Order
	TotalCents int64
	Intent     *payment.Intent
}

// CreateCheckout validates the selection, atomically persists the cart
// snapshot, order and attribution row, then asks the gateway for a payment
// intent. A gateway failure after commit leaves the pending order in place
// for later reconciliation; no money has moved at that point.
func (s *Service) CreateCheckout(ctx context.Context, params CreateParams) (*CheckoutResult, error) {
	sess, err := s.sessions.GetSession(ctx, params.SessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	offer, err := s.catalog.StepOffer(ctx, params.StepID)
	if err != nil {
		return nil, fmt.Errorf("loading step offer: %w", err)
	}

	order, items, err := buildOrder(offer, params)
	if err != nil {
		s.countCheckout("rejected")
		return nil, err
	}

	cart := &Cart{
		SessionID:      sess.ID,
		FunnelID:       offer.FunnelID,
		ProductIDs:     params.ProductIDs,
		BumpIDs:        params.BumpIDs,
		TotalCents:     order.TotalCents,
		RecoveryStatus: RecoveryPending,
	}

	attribution := &FunnelOrder{
		FunnelID:           offer.FunnelID,
		StepID:             params.StepID,
		SessionID:          sess.ID,
		OrderType:          TypeMain,
		FunnelRevenueCents: order.TotalCents,
		BumpsOffered:       len(offer.Bumps),
		BumpsAccepted:      len(params.BumpIDs),
	}

	tx, err := s.repo.BeginCheckout(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin checkout: %w", err)
	}
	defer tx.Rollback()

	if err := tx.UpsertCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("upsert cart: %w", err)
	}

	if err := tx.CreateOrder(ctx, order, items); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	attribution.OrderID = order.ID
	if err := tx.CreateFunnelOrder(ctx, attribution); err != nil {
		return nil, fmt.Errorf("create funnel order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit checkout: %w", err)
	}

	// Capture buyer identity on the session, preserving stored gateway
	// references. Best effort: the order is already committed.
	if params.Customer.Email != "" {
		contact := funnel.Contact{Email: params.Customer.Email, Name: params.Customer.Name}
		if sess.Contact != nil {
			contact.GatewayCustomerID = sess.Contact.GatewayCustomerID
			contact.DefaultPaymentMethod = sess.Contact.DefaultPaymentMethod
		}

		if err := s.sessions.UpdateSessionContact(ctx, sess.ID, contact); err != nil {
			s.logger.Error("updating session contact", "error", err, "session_id", sess.ID)
		}
	}

	// Intent creation talks to the external gateway, so it happens outside
	// the transaction. On failure the committed pending order remains for
	// reconciliation.
	intent, err := s.gateway.CreateIntent(ctx, payment.CreateIntentParams{
		AmountCents: order.TotalCents,
		Currency:    s.currency,
		Metadata:    map[string]string{"order_id": order.ID.String()},
	})
	if err != nil {
		s.countCheckout("gateway_error")
		s.logger.Error("create intent failed", "error", err, "order_id", order.ID)

		return nil, fmt.Errorf("creating payment intent: %w", err)
	}

	if err := s.repo.SetOrderIntent(ctx, order.ID, intent.ID); err != nil {
		return nil, fmt.Errorf("recording intent id: %w", err)
	}

	if order.Metadata == nil {
		order.Metadata = map[string]string{}
	}

	order.Metadata[MetadataIntentKey] = intent.ID
	order.Items = items

	s.countCheckout("ok")

	return &CheckoutResult{Order: order, TotalCents: order.TotalCents, Intent: intent}, nil
}

func buildOrder(offer *catalog.StepOffer, params CreateParams) (*Order, []*LineItem, error) {
	if len(params.ProductIDs) == 0 {
		return nil, nil, fmt.Errorf("%w: no products selected", ErrInvalidSelection)
	}

	var (
		items    []*LineItem
		subtotal int64
		bumps    int64
	)

	for _, id := range params.ProductIDs {
		product, ok := offer.Product(id)
		if !ok {
			return nil, nil, fmt.Errorf("%w: product %s not offered on step", ErrInvalidSelection, id)
		}

		subtotal += product.PriceCents
		items = append(items, &LineItem{
			ProductID:       product.ID,
			Kind:            ItemMain,
			Name:            product.Name,
			UnitPriceCents:  product.PriceCents,
			Quantity:        1,
			TotalPriceCents: product.PriceCents,
		})
	}

	for _, id := range params.BumpIDs {
		bump, ok := offer.Bump(id)
		if !ok {
			return nil, nil, fmt.Errorf("%w: bump %s not offered on step", ErrInvalidSelection, id)
		}

		bumps += bump.PriceCents
		items = append(items, &LineItem{
			ProductID:       bump.ID,
			Kind:            ItemBump,
			Name:            bump.Name,
			UnitPriceCents:  bump.PriceCents,
			Quantity:        1,
			TotalPriceCents: bump.PriceCents,
		})
	}

	total := subtotal + bumps
	if total <= 0 {
		return nil, nil, fmt.Errorf("%w: total is %d", ErrInvalidTotal, total)
	}

	order := &Order{
		SubtotalCents:  subtotal,
		BumpTotalCents: bumps,
		TotalCents:     total,
		Status:         OrderPending,
		PaymentStatus:  PaymentPending,
		CustomerEmail:  params.Customer.Email,
		CustomerName:   params.Customer.Name,
		BillingAddress: params.BillingAddress,
	}

	return order, items, nil
}

type ConfirmResult struct {
	Success      bool
	Order        *Order
	SessionID    uuid.UUID
	IntentStatus payment.IntentStatus
}

// ConfirmPayment reconciles a gateway confirmation into order state. It is
// safe to call any number of times for the same intent: side effects run
// exactly once, and a repeat call returns success with nothing re-applied.
// Both the buyer-triggered confirm and the server-to-server webhook funnel
// through here.
func (s *Service) ConfirmPayment(ctx context.Context, intentID string) (*ConfirmResult, error) {
	intent, err := s.gateway.RetrieveIntent(ctx, intentID)
	if err != nil {
		s.countConfirm("gateway_error")
		return nil, fmt.Errorf("retrieving intent: %w", err)
	}

	if intent.Status != payment.StatusSucceeded {
		s.countConfirm("not_succeeded")
		return &ConfirmResult{Success: false, IntentStatus: intent.Status}, nil
	}

	order, err := s.repo.FindOrderByIntentID(ctx, intentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Orphan confirmation: the gateway knows about money we have no
			// order for. Logged for reconciliation, never raised.
			s.logger.Warn("orphan confirmation", "intent_id", intentID)
			s.countConfirm("orphan")

			return &ConfirmResult{Success: false, IntentStatus: intent.Status}, nil
		}

		return nil, fmt.Errorf("finding order for intent: %w", err)
	}

	// The session a confirmation belongs to comes from the order's own
	// attribution row, never from the caller.
	attribution, err := s.repo.GetAttribution(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("loading order attribution: %w", err)
	}

	if order.Paid() {
		s.countConfirm("duplicate")
		return &ConfirmResult{Success: true, Order: order, SessionID: attribution.SessionID, IntentStatus: intent.Status}, nil
	}

	paid, err := s.MarkOrderPaid(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	s.countConfirm("ok")

	return &ConfirmResult{Success: true, Order: paid, SessionID: attribution.SessionID, IntentStatus: intent.Status}, nil
}

// MarkOrderPaid applies the paid transition and its transactional side
// effects (session converted, cart recovered, analytics), then fires the
// post-commit hooks. The paid check re-runs under the row lock, so a raced
// duplicate returns idempotently without re-applying anything.
func (s *Service) MarkOrderPaid(ctx context.Context, orderID uuid.UUID) (*Order, error) {
	tx, err := s.repo.BeginConfirm(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("begin confirm: %w", err)
	}
	defer tx.Rollback()

	order := tx.Order()
	if order.Paid() {
		return order, nil
	}

	attribution := tx.Attribution()
	paidAt := time.Now().UTC()

	if err := tx.MarkPaid(ctx, paidAt); err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}

	if err := tx.MarkSessionConverted(ctx, attribution.SessionID); err != nil {
		return nil, fmt.Errorf("mark session converted: %w", err)
	}

	if err := tx.MarkCartRecovered(ctx, attribution.SessionID, attribution.FunnelID); err != nil {
		return nil, fmt.Errorf("mark cart recovered: %w", err)
	}

	if err := tx.AddStats(ctx, attribution.FunnelID, attribution.StepID, attribution.FunnelRevenueCents); err != nil {
		return nil, fmt.Errorf("add stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit confirm: %w", err)
	}

	order.Status = OrderConfirmed
	order.PaymentStatus = PaymentPaid
	order.PaidAt = &paidAt

	s.fireSideEffects(ctx, order, attribution)

	return order, nil
}

// fireSideEffects runs the post-commit hooks. Failures are logged, never
// propagated: the order is already durably paid.
func (s *Service) fireSideEffects(ctx context.Context, order *Order, attribution *FunnelOrder) {
	sess, err := s.sessions.GetSession(ctx, attribution.SessionID)
	if err != nil {
		s.logger.Error("loading session for side effects", "error", err, "order_id", order.ID)
		s.countError("side_effects")
	} else if err := s.commissions.CommissionForOrder(ctx, order, attribution, sess); err != nil {
		s.logger.Error("commission calculation failed", "error", err, "order_id", order.ID)
		s.countError("commission")
	}

	s.events.ConversionRecorded(ctx, event.ConversionRecorded{
		FunnelID:     attribution.FunnelID,
		StepID:       attribution.StepID,
		RevenueCents: attribution.FunnelRevenueCents,
	})
	s.events.AutomationTriggered(ctx, event.AutomationTriggered{
		Type:     event.AutomationOrderPaid,
		FunnelID: attribution.FunnelID,
		OrderID:  order.ID,
	})
	s.events.PixelPurchase(ctx, event.PixelPurchase{
		OrderID:    order.ID,
		SessionID:  attribution.SessionID,
		TotalCents: order.TotalCents,
	})
}

func (s *Service) countCheckout(label string) {
	if s.metrics != nil {
		s.metrics.CheckoutsStarted.WithLabelValues(label).Inc()
	}
}

func (s *Service) countConfirm(label string) {
	if s.metrics != nil {
		s.metrics.PaymentsConfirmed.WithLabelValues(label).Inc()
	}
}

func (s *Service) countError(component string) {
	if s.metrics != nil {
		s.metrics.Errors.WithLabelValues(component).Inc()
	}
}
