package commission

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"funnelkit/internal/checkout"
	"funnelkit/internal/funnel"
)

func newTestService(t *testing.T) (*Service, *MockRepository, *MockFunnelReader) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	funnels := NewMockFunnelReader(ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewService(repo, funnels, logger), repo, funnels
}

func paidOrder(orderID uuid.UUID, items ...*checkout.LineItem) *checkout.Order {
	var total int64
	for _, item := range items {
		total += item.TotalPriceCents
	}

	return &checkout.Order{
		ID:            orderID,
		TotalCents:    total,
		Status:        checkout.OrderConfirmed,
		PaymentStatus: checkout.PaymentPaid,
		Items:         items,
	}
}

func affiliateSession(affiliateID uuid.UUID) *funnel.Session {
	return &funnel.Session{ID: uuid.New(), AffiliateID: &affiliateID}
}

func TestCalculate_Percentage(t *testing.T) {
	svc, repo, funnels := newTestService(t)

	funnelID := uuid.New()
	productID := uuid.New()
	affiliateID := uuid.New()
	orderID := uuid.New()

	// 10% of a 100.00 order pays 10.00.
	order := paidOrder(orderID, &checkout.LineItem{
		ProductID: productID, Kind: checkout.ItemMain, TotalPriceCents: 10000,
	})
	attribution := &checkout.FunnelOrder{OrderID: orderID, FunnelID: funnelID}

	funnels.EXPECT().GetFunnel(gomock.Any(), funnelID).
		Return(&funnel.Funnel{ID: funnelID, AffiliateTrackingEnabled: true}, nil)
	repo.EXPECT().FindRule(gomock.Any(), funnelID, productID).
		Return(&Rule{FunnelID: funnelID, ProductID: productID, Type: TypePercentage, Rate: decimal.NewFromInt(10)}, nil)

	c, err := svc.Calculate(context.Background(), order, attribution, affiliateSession(affiliateID))
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, int64(1000), c.CommissionAmountCents)
	assert.Equal(t, int64(10000), c.OrderAmountCents)
	assert.Equal(t, affiliateID, c.AffiliateID)
	assert.Equal(t, orderID, c.OrderID)
	assert.Equal(t, StatusPending, c.Status)
}

func TestCalculate_Fixed(t *testing.T) {
	svc, repo, funnels := newTestService(t)

	funnelID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()

	order := paidOrder(orderID, &checkout.LineItem{
		ProductID: productID, Kind: checkout.ItemMain, TotalPriceCents: 9900,
	})
	attribution := &checkout.FunnelOrder{OrderID: orderID, FunnelID: funnelID}

	funnels.EXPECT().GetFunnel(gomock.Any(), funnelID).
		Return(&funnel.Funnel{ID: funnelID, AffiliateTrackingEnabled: true}, nil)
	repo.EXPECT().FindRule(gomock.Any(), funnelID, productID).
		Return(&Rule{Type: TypeFixed, Rate: decimal.NewFromInt(500)}, nil)

	c, err := svc.Calculate(context.Background(), order, attribution, affiliateSession(uuid.New()))
	require.NoError(t, err)
	require.NotNil(t, c)

	// Fixed rules pay the rate regardless of item price.
	assert.Equal(t, int64(500), c.CommissionAmountCents)
	assert.Equal(t, TypeFixed, c.Type)
}

func TestCalculate_NoAffiliate(t *testing.T) {
	svc, _, _ := newTestService(t)

	order := paidOrder(uuid.New(), &checkout.LineItem{ProductID: uuid.New(), TotalPriceCents: 10000})
	attribution := &checkout.FunnelOrder{OrderID: order.ID, FunnelID: uuid.New()}

	c, err := svc.Calculate(context.Background(), order, attribution, &funnel.Session{ID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCalculate_TrackingDisabled(t *testing.T) {
	svc, _, funnels := newTestService(t)

	funnelID := uuid.New()
	order := paidOrder(uuid.New(), &checkout.LineItem{ProductID: uuid.New(), TotalPriceCents: 10000})
	attribution := &checkout.FunnelOrder{OrderID: order.ID, FunnelID: funnelID}

	funnels.EXPECT().GetFunnel(gomock.Any(), funnelID).
		Return(&funnel.Funnel{ID: funnelID, AffiliateTrackingEnabled: false}, nil)

	c, err := svc.Calculate(context.Background(), order, attribution, affiliateSession(uuid.New()))
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCalculate_NoRuleMatches(t *testing.T) {
	svc, repo, funnels := newTestService(t)

	funnelID := uuid.New()
	productID := uuid.New()
	order := paidOrder(uuid.New(), &checkout.LineItem{ProductID: productID, TotalPriceCents: 10000})
	attribution := &checkout.FunnelOrder{OrderID: order.ID, FunnelID: funnelID}

	funnels.EXPECT().GetFunnel(gomock.Any(), funnelID).
		Return(&funnel.Funnel{ID: funnelID, AffiliateTrackingEnabled: true}, nil)
	repo.EXPECT().FindRule(gomock.Any(), funnelID, productID).Return(nil, ErrRuleNotFound)

	c, err := svc.Calculate(context.Background(), order, attribution, affiliateSession(uuid.New()))
	require.NoError(t, err)
	assert.Nil(t, c)
}

// An order matching several rules records the summed amount but carries the
// rate and type of the last rule applied on the single commission row.
func TestCalculate_MixedRules(t *testing.T) {
	svc, repo, funnels := newTestService(t)

	funnelID := uuid.New()
	mainProduct := uuid.New()
	bumpProduct := uuid.New()
	orderID := uuid.New()

	order := paidOrder(orderID,
		&checkout.LineItem{ProductID: mainProduct, Kind: checkout.ItemMain, TotalPriceCents: 10000},
		&checkout.LineItem{ProductID: bumpProduct, Kind: checkout.ItemBump, TotalPriceCents: 5000},
	)
	attribution := &checkout.FunnelOrder{OrderID: orderID, FunnelID: funnelID}

	funnels.EXPECT().GetFunnel(gomock.Any(), funnelID).
		Return(&funnel.Funnel{ID: funnelID, AffiliateTrackingEnabled: true}, nil)
	repo.EXPECT().FindRule(gomock.Any(), funnelID, mainProduct).
		Return(&Rule{Type: TypePercentage, Rate: decimal.NewFromInt(20)}, nil)
	repo.EXPECT().FindRule(gomock.Any(), funnelID, bumpProduct).
		Return(&Rule{Type: TypeFixed, Rate: decimal.NewFromInt(300)}, nil)

	c, err := svc.Calculate(context.Background(), order, attribution, affiliateSession(uuid.New()))
	require.NoError(t, err)
	require.NotNil(t, c)

	// 20% of 10000 plus a fixed 300.
	assert.Equal(t, int64(2300), c.CommissionAmountCents)
	assert.Equal(t, TypeFixed, c.Type)
	assert.True(t, decimal.NewFromInt(300).Equal(c.Rate))
}

func TestCommissionForOrder_Records(t *testing.T) {
	svc, repo, funnels := newTestService(t)

	funnelID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()

	order := paidOrder(orderID, &checkout.LineItem{ProductID: productID, TotalPriceCents: 10000})
	attribution := &checkout.FunnelOrder{OrderID: orderID, FunnelID: funnelID}

	funnels.EXPECT().GetFunnel(gomock.Any(), funnelID).
		Return(&funnel.Funnel{ID: funnelID, AffiliateTrackingEnabled: true}, nil)
	repo.EXPECT().FindRule(gomock.Any(), funnelID, productID).
		Return(&Rule{Type: TypePercentage, Rate: decimal.NewFromInt(15)}, nil)
	repo.EXPECT().InsertCommission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *Commission) error {
			assert.Equal(t, int64(1500), c.CommissionAmountCents)
			return nil
		})

	err := svc.CommissionForOrder(context.Background(), order, attribution, affiliateSession(uuid.New()))
	require.NoError(t, err)
}

func TestCommissionForOrder_NothingOwed(t *testing.T) {
	svc, _, _ := newTestService(t)

	order := paidOrder(uuid.New(), &checkout.LineItem{ProductID: uuid.New(), TotalPriceCents: 10000})
	attribution := &checkout.FunnelOrder{OrderID: order.ID, FunnelID: uuid.New()}

	// No affiliate on the session: nothing is looked up or written.
	err := svc.CommissionForOrder(context.Background(), order, attribution, &funnel.Session{ID: uuid.New()})
	require.NoError(t, err)
}
