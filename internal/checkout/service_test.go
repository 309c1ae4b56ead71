package checkout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"funnelkit/internal/catalog"
	"funnelkit/internal/event"
	"funnelkit/internal/funnel"
	"funnelkit/internal/payment"
)

// recordingDispatcher captures fired events so tests can assert on exactly
// which side effects ran.
type recordingDispatcher struct {
	conversions []event.ConversionRecorded
	automations []event.AutomationTriggered
	pixels      []event.PixelPurchase
}

func (d *recordingDispatcher) ConversionRecorded(_ context.Context, e event.ConversionRecorded) {
	d.conversions = append(d.conversions, e)
}

func (d *recordingDispatcher) AutomationTriggered(_ context.Context, e event.AutomationTriggered) {
	d.automations = append(d.automations, e)
}

func (d *recordingDispatcher) PixelPurchase(_ context.Context, e event.PixelPurchase) {
	d.pixels = append(d.pixels, e)
}

type serviceMocks struct {
	repo        *MockRepository
	catalog     *MockCatalogReader
	sessions    *MockSessionStore
	gateway     *MockGateway
	commissions *MockCommissionCalculator
	events      *recordingDispatcher
}

func newTestService(t *testing.T) (*Service, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		repo:        NewMockRepository(ctrl),
		catalog:     NewMockCatalogReader(ctrl),
		sessions:    NewMockSessionStore(ctrl),
		gateway:     NewMockGateway(ctrl),
		commissions: NewMockCommissionCalculator(ctrl),
		events:      &recordingDispatcher{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(m.repo, m.catalog, m.sessions, m.gateway, m.commissions, m.events, nil, logger, "usd")

	return svc, m
}

func testOffer(stepID, funnelID uuid.UUID) *catalog.StepOffer {
	return &catalog.StepOffer{
		StepID:   stepID,
		FunnelID: funnelID,
		Kind:     funnel.StepCheckout,
		Products: []catalog.Product{
			{ID: uuid.New(), StepID: stepID, Name: "Course", PriceCents: 10000, Active: true},
		},
		Bumps: []catalog.Bump{
			{ID: uuid.New(), StepID: stepID, Name: "Workbook", PriceCents: 5000, Active: true},
			{ID: uuid.New(), StepID: stepID, Name: "Templates", PriceCents: 2000, Active: true},
		},
	}
}

func TestCreateCheckout_MainWithBumps(t *testing.T) {
	svc, m := newTestService(t)

	sessionID := uuid.New()
	stepID := uuid.New()
	funnelID := uuid.New()
	orderID := uuid.New()
	offer := testOffer(stepID, funnelID)

	m.sessions.EXPECT().GetSession(gomock.Any(), sessionID).
		Return(&funnel.Session{ID: sessionID, FunnelID: funnelID}, nil)
	m.sessions.EXPECT().UpdateSessionContact(gomock.Any(), sessionID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, contact funnel.Contact) error {
			assert.Equal(t, "buyer@example.com", contact.Email)
			return nil
		})
	m.catalog.EXPECT().StepOffer(gomock.Any(), stepID).Return(offer, nil)

	tx := NewMockCheckoutTx(gomock.NewController(t))
	m.repo.EXPECT().BeginCheckout(gomock.Any()).Return(tx, nil)

	tx.EXPECT().UpsertCart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cart *Cart) error {
			assert.Equal(t, sessionID, cart.SessionID)
			assert.Equal(t, funnelID, cart.FunnelID)
			assert.Equal(t, int64(17000), cart.TotalCents)
			assert.Equal(t, RecoveryPending, cart.RecoveryStatus)
			return nil
		})
	tx.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *Order, items []*LineItem) error {
			order.ID = orderID
			return nil
		})
	tx.EXPECT().CreateFunnelOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fo *FunnelOrder) error {
			assert.Equal(t, orderID, fo.OrderID)
			assert.Equal(t, TypeMain, fo.OrderType)
			assert.Equal(t, int64(17000), fo.FunnelRevenueCents)
			assert.Equal(t, 2, fo.BumpsOffered)
			assert.Equal(t, 2, fo.BumpsAccepted)
			return nil
		})
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	m.gateway.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params payment.CreateIntentParams) (*payment.Intent, error) {
			assert.Equal(t, int64(17000), params.AmountCents)
			assert.Equal(t, "usd", params.Currency)
			assert.Equal(t, orderID.String(), params.Metadata["order_id"])
			return &payment.Intent{ID: "pi_1", ClientSecret: "pi_1_secret", Status: payment.StatusRequiresConfirmation}, nil
		})
	m.repo.EXPECT().SetOrderIntent(gomock.Any(), orderID, "pi_1").Return(nil)

	result, err := svc.CreateCheckout(context.Background(), CreateParams{
		SessionID:  sessionID,
		StepID:     stepID,
		ProductIDs: []uuid.UUID{offer.Products[0].ID},
		BumpIDs:    []uuid.UUID{offer.Bumps[0].ID, offer.Bumps[1].ID},
		Customer:   Customer{Email: "buyer@example.com", Name: "Buyer"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(17000), result.TotalCents)
	assert.Equal(t, int64(10000), result.Order.SubtotalCents)
	assert.Equal(t, int64(7000), result.Order.BumpTotalCents)
	assert.Equal(t, "pi_1", result.Intent.ID)
	assert.Equal(t, "pi_1", result.Order.IntentID())
	assert.Equal(t, OrderPending, result.Order.Status)

	// Every cent on the order is accounted for by its line items.
	var itemTotal int64
	for _, item := range result.Order.Items {
		itemTotal += item.TotalPriceCents
	}
	assert.Equal(t, result.Order.TotalCents, itemTotal)
	assert.Len(t, result.Order.Items, 3)
}

func TestCreateCheckout_EmptySelection(t *testing.T) {
	svc, m := newTestService(t)

	sessionID := uuid.New()
	stepID := uuid.New()
	offer := testOffer(stepID, uuid.New())

	m.sessions.EXPECT().GetSession(gomock.Any(), sessionID).
		Return(&funnel.Session{ID: sessionID}, nil)
	m.catalog.EXPECT().StepOffer(gomock.Any(), stepID).Return(offer, nil)

	_, err := svc.CreateCheckout(context.Background(), CreateParams{
		SessionID: sessionID,
		StepID:    stepID,
	})
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestCreateCheckout_ProductNotOnStep(t *testing.T) {
	svc, m := newTestService(t)

	sessionID := uuid.New()
	stepID := uuid.New()
	offer := testOffer(stepID, uuid.New())

	m.sessions.EXPECT().GetSession(gomock.Any(), sessionID).
		Return(&funnel.Session{ID: sessionID}, nil)
	m.catalog.EXPECT().StepOffer(gomock.Any(), stepID).Return(offer, nil)

	_, err := svc.CreateCheckout(context.Background(), CreateParams{
		SessionID:  sessionID,
		StepID:     stepID,
		ProductIDs: []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestCreateCheckout_NonPositiveTotal(t *testing.T) {
	svc, m := newTestService(t)

	sessionID := uuid.New()
	stepID := uuid.New()
	offer := &catalog.StepOffer{
		StepID:   stepID,
		FunnelID: uuid.New(),
		Kind:     funnel.StepCheckout,
		Products: []catalog.Product{
			{ID: uuid.New(), StepID: stepID, Name: "Free Guide", PriceCents: 0, Active: true},
		},
	}

	m.sessions.EXPECT().GetSession(gomock.Any(), sessionID).
		Return(&funnel.Session{ID: sessionID}, nil)
	m.catalog.EXPECT().StepOffer(gomock.Any(), stepID).Return(offer, nil)

	_, err := svc.CreateCheckout(context.Background(), CreateParams{
		SessionID:  sessionID,
		StepID:     stepID,
		ProductIDs: []uuid.UUID{offer.Products[0].ID},
	})
	assert.ErrorIs(t, err, ErrInvalidTotal)
}

// A gateway outage after the transaction commits must surface the error while
// leaving the committed pending order alone for reconciliation.
func TestCreateCheckout_GatewayFailureAfterCommit(t *testing.T) {
	svc, m := newTestService(t)

	sessionID := uuid.New()
	stepID := uuid.New()
	offer := testOffer(stepID, uuid.New())

	m.sessions.EXPECT().GetSession(gomock.Any(), sessionID).
		Return(&funnel.Session{ID: sessionID}, nil)
	m.catalog.EXPECT().StepOffer(gomock.Any(), stepID).Return(offer, nil)

	tx := NewMockCheckoutTx(gomock.NewController(t))
	m.repo.EXPECT().BeginCheckout(gomock.Any()).Return(tx, nil)
	tx.EXPECT().UpsertCart(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *Order, _ []*LineItem) error {
			order.ID = uuid.New()
			return nil
		})
	tx.EXPECT().CreateFunnelOrder(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	m.gateway.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
		Return(nil, payment.ErrGatewayUnavailable)

	_, err := svc.CreateCheckout(context.Background(), CreateParams{
		SessionID:  sessionID,
		StepID:     stepID,
		ProductIDs: []uuid.UUID{offer.Products[0].ID},
	})
	assert.ErrorIs(t, err, payment.ErrGatewayUnavailable)
}

func unpaidOrder(orderID uuid.UUID, totalCents int64, intentID string) *Order {
	return &Order{
		ID:            orderID,
		SubtotalCents: totalCents,
		TotalCents:    totalCents,
		Status:        OrderPending,
		PaymentStatus: PaymentPending,
		Currency:      "usd",
		Metadata:      map[string]string{MetadataIntentKey: intentID},
	}
}

func TestConfirmPayment_Success(t *testing.T) {
	svc, m := newTestService(t)

	orderID := uuid.New()
	sessionID := uuid.New()
	funnelID := uuid.New()
	stepID := uuid.New()

	order := unpaidOrder(orderID, 17000, "pi_1")
	attribution := &FunnelOrder{
		OrderID:            orderID,
		FunnelID:           funnelID,
		StepID:             stepID,
		SessionID:          sessionID,
		OrderType:          TypeMain,
		FunnelRevenueCents: 17000,
	}
	sess := &funnel.Session{ID: sessionID, FunnelID: funnelID}

	m.gateway.EXPECT().RetrieveIntent(gomock.Any(), "pi_1").
		Return(&payment.Intent{ID: "pi_1", Status: payment.StatusSucceeded}, nil)
	m.repo.EXPECT().FindOrderByIntentID(gomock.Any(), "pi_1").Return(order, nil)
	m.repo.EXPECT().GetAttribution(gomock.Any(), orderID).Return(attribution, nil)

	tx := NewMockConfirmTx(gomock.NewController(t))
	m.repo.EXPECT().BeginConfirm(gomock.Any(), orderID).Return(tx, nil)
	tx.EXPECT().Order().Return(order)
	tx.EXPECT().Attribution().Return(attribution)
	tx.EXPECT().MarkPaid(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().MarkSessionConverted(gomock.Any(), sessionID).Return(nil)
	tx.EXPECT().MarkCartRecovered(gomock.Any(), sessionID, funnelID).Return(nil)
	tx.EXPECT().AddStats(gomock.Any(), funnelID, stepID, int64(17000)).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	m.sessions.EXPECT().GetSession(gomock.Any(), sessionID).Return(sess, nil)
	m.commissions.EXPECT().CommissionForOrder(gomock.Any(), gomock.Any(), attribution, sess).Return(nil)

	result, err := svc.ConfirmPayment(context.Background(), "pi_1")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, OrderConfirmed, result.Order.Status)
	assert.Equal(t, sessionID, result.SessionID)
	assert.True(t, result.Order.Paid())
	require.NotNil(t, result.Order.PaidAt)

	require.Len(t, m.events.conversions, 1)
	assert.Equal(t, int64(17000), m.events.conversions[0].RevenueCents)
	require.Len(t, m.events.automations, 1)
	assert.Equal(t, event.AutomationOrderPaid, m.events.automations[0].Type)
	require.Len(t, m.events.pixels, 1)
	assert.Equal(t, orderID, m.events.pixels[0].OrderID)
}

// Confirming an already-paid intent reports success without opening a
// transaction or re-running side effects.
func TestConfirmPayment_Duplicate(t *testing.T) {
	svc, m := newTestService(t)

	orderID := uuid.New()
	sessionID := uuid.New()
	order := unpaidOrder(orderID, 17000, "pi_1")
	order.Status = OrderConfirmed
	order.PaymentStatus = PaymentPaid
	paidAt := time.Now().UTC()
	order.PaidAt = &paidAt

	m.gateway.EXPECT().RetrieveIntent(gomock.Any(), "pi_1").
		Return(&payment.Intent{ID: "pi_1", Status: payment.StatusSucceeded}, nil)
	m.repo.EXPECT().FindOrderByIntentID(gomock.Any(), "pi_1").Return(order, nil)
	m.repo.EXPECT().GetAttribution(gomock.Any(), orderID).
		Return(&FunnelOrder{OrderID: orderID, SessionID: sessionID, OrderType: TypeMain}, nil)

	result, err := svc.ConfirmPayment(context.Background(), "pi_1")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, sessionID, result.SessionID)
	assert.Empty(t, m.events.conversions)
	assert.Empty(t, m.events.automations)
	assert.Empty(t, m.events.pixels)
}

// Two confirmations can race past the unlocked paid check. The second one
// finds the order paid under the row lock and backs out without re-applying.
func TestConfirmPayment_RacedDuplicate(t *testing.T) {
	svc, m := newTestService(t)

	orderID := uuid.New()
	stale := unpaidOrder(orderID, 17000, "pi_1")

	locked := unpaidOrder(orderID, 17000, "pi_1")
	locked.Status = OrderConfirmed
	locked.PaymentStatus = PaymentPaid

	m.gateway.EXPECT().RetrieveIntent(gomock.Any(), "pi_1").
		Return(&payment.Intent{ID: "pi_1", Status: payment.StatusSucceeded}, nil)
	m.repo.EXPECT().FindOrderByIntentID(gomock.Any(), "pi_1").Return(stale, nil)
	m.repo.EXPECT().GetAttribution(gomock.Any(), orderID).
		Return(&FunnelOrder{OrderID: orderID, SessionID: uuid.New(), OrderType: TypeMain}, nil)

	tx := NewMockConfirmTx(gomock.NewController(t))
	m.repo.EXPECT().BeginConfirm(gomock.Any(), orderID).Return(tx, nil)
	tx.EXPECT().Order().Return(locked)
	tx.EXPECT().Rollback().Return(nil)

	result, err := svc.ConfirmPayment(context.Background(), "pi_1")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, m.events.conversions)
}

func TestConfirmPayment_NotSucceeded(t *testing.T) {
	svc, m := newTestService(t)

	m.gateway.EXPECT().RetrieveIntent(gomock.Any(), "pi_1").
		Return(&payment.Intent{ID: "pi_1", Status: payment.StatusProcessing}, nil)

	result, err := svc.ConfirmPayment(context.Background(), "pi_1")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, payment.StatusProcessing, result.IntentStatus)
}

/// A succeeded intent with no matching order is an orphan: logged, reported as
// unsuccessful, but never an error.
func TestConfirmPayment_OrphanIntent(t *testing.T) {
	svc, m := newTestService(t)

	m.gateway.EXPECT().RetrieveIntent(gomock.Any(), "pi_orphan").
		Return(&payment.Intent{ID: "pi_orphan", Status: payment.StatusSucceeded}, nil)
	m.repo.EXPECT().FindOrderByIntentID(gomock.Any(), "pi_orphan").Return(nil, ErrNotFound)

	result, err := svc.ConfirmPayment(context.Background(), "pi_orphan")
	require.NoError(t, err)

	assert.False(t, result.Success)
}

func TestConfirmPayment_GatewayError(t *testing.T) {
	svc, m := newTestService(t)

	m.gateway.EXPECT().RetrieveIntent(gomock.Any(), "pi_1").
		Return(nil, payment.ErrGatewayUnavailable)

	_, err := svc.ConfirmPayment(context.Background(), "pi_1")
	assert.ErrorIs(t, err, payment.ErrGatewayUnavailable)
}

// Commission and event failures stay out of the confirmation result; the
// order is already durably paid when side effects run.
func TestConfirmPayment_CommissionFailureIsSwallowed(t *testing.T) {
	svc, m := newTestService(t)

	orderID := uuid.New()
	sessionID := uuid.New()
	funnelID := uuid.New()
	stepID := uuid.New()

	order := unpaidOrder(orderID, 5000, "pi_1")
	attribution := &FunnelOrder{
		OrderID: orderID, FunnelID: funnelID, StepID: stepID, SessionID: sessionID,
		OrderType: TypeMain, FunnelRevenueCents: 5000,
	}

	m.gateway.EXPECT().RetrieveIntent(gomock.Any(), "pi_1").
		Return(&payment.Intent{ID: "pi_1", Status: payment.StatusSucceeded}, nil)
	m.repo.EXPECT().FindOrderByIntentID(gomock.Any(), "pi_1").Return(order, nil)
	m.repo.EXPECT().GetAttribution(gomock.Any(), orderID).Return(attribution, nil)

	tx := NewMockConfirmTx(gomock.NewController(t))
	m.repo.EXPECT().BeginConfirm(gomock.Any(), orderID).Return(tx, nil)
	tx.EXPECT().Order().Return(order)
	tx.EXPECT().Attribution().Return(attribution)
	tx.EXPECT().MarkPaid(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().MarkSessionConverted(gomock.Any(), sessionID).Return(nil)
	tx.EXPECT().MarkCartRecovered(gomock.Any(), sessionID, funnelID).Return(nil)
	tx.EXPECT().AddStats(gomock.Any(), funnelID, stepID, int64(5000)).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	m.sessions.EXPECT().GetSession(gomock.Any(), sessionID).
		Return(&funnel.Session{ID: sessionID}, nil)
	m.commissions.EXPECT().CommissionForOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("rule lookup timed out"))

	result, err := svc.ConfirmPayment(context.Background(), "pi_1")
	require.NoError(t, err)
	assert.True(t, result.Success)

	// Remaining events still fire even though the commission hook failed.
	assert.Len(t, m.events.conversions, 1)
	assert.Len(t, m.events.pixels, 1)
}

func TestCart_AdvanceRecovery(t *testing.T) {
	cart := &Cart{RecoveryStatus: RecoveryPending}

	assert.True(t, cart.AdvanceRecovery(RecoverySent))
	assert.Equal(t, RecoverySent, cart.RecoveryStatus)

	assert.True(t, cart.AdvanceRecovery(RecoveryRecovered))
	assert.Equal(t, RecoveryRecovered, cart.RecoveryStatus)

	// No transitions backward.
	assert.False(t, cart.AdvanceRecovery(RecoveryPending))
	assert.False(t, cart.AdvanceRecovery(RecoverySent))
	assert.Equal(t, RecoveryRecovered, cart.RecoveryStatus)
}
