package commission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"funnelkit/internal/checkout"
	"funnelkit/internal/funnel"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=commission
type Repository interface {
	FindRule(ctx context.Context, funnelID, productID uuid.UUID) (*Rule, error)
	InsertCommission(ctx context.Context, c *Commission) error
}

type FunnelReader interface {
	GetFunnel(ctx context.Context, id uuid.UUID) (*funnel.Funnel, error)
}

type Service struct {
	repo    Repository
	funnels FunnelReader
	logger  *slog.Logger
}

func NewService(repo Repository, funnels FunnelReader, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		funnels: funnels,
		logger:  logger.With("component", "commission"),
	}
}

// Calculate derives the payout for a paid order without persisting it. It
// returns nil when no commission is owed: the session has no affiliate, the
// funnel has tracking disabled, or no rule covers any purchased product.
//
// Per-item amounts are summed across all matching line items. The returned
// row's Rate and Type are taken from the last rule applied, so a mixed-rule
// order records the final rule's formula alongside the aggregate amount.
func (s *Service) Calculate(ctx context.Context, order *checkout.Order, attribution *checkout.FunnelOrder, sess *funnel.Session) (*Commission, error) {
	if sess == nil || sess.AffiliateID == nil {
		return nil, nil
	}

	fn, err := s.funnels.GetFunnel(ctx, attribution.FunnelID)
	if err != nil {
		return nil, fmt.Errorf("loading funnel: %w", err)
	}

	if !fn.AffiliateTrackingEnabled {
		return nil, nil
	}

	var (
		total   int64
		last    *Rule
		matched bool
	)

	for _, item := range order.Items {
		rule, err := s.repo.FindRule(ctx, attribution.FunnelID, item.ProductID)
		if err != nil {
			if errors.Is(err, ErrRuleNotFound) {
				continue
			}

			return nil, fmt.Errorf("finding rule: %w", err)
		}

		total += rule.Amount(item.TotalPriceCents)
		last = rule
		matched = true
	}

	if !matched || total <= 0 {
		return nil, nil
	}

	return &Commission{
		AffiliateID:           *sess.AffiliateID,
		OrderID:               order.ID,
		Type:                  last.Type,
		Rate:                  last.Rate,
		OrderAmountCents:      order.TotalCents,
		CommissionAmountCents: total,
		Status:                StatusPending,
	}, nil
}

// CommissionForOrder computes and records the payout for a freshly paid
// order. A nil calculation is a no-op, not an error.
func (s *Service) CommissionForOrder(ctx context.Context, order *checkout.Order, attribution *checkout.FunnelOrder, sess *funnel.Session) error {
	c, err := s.Calculate(ctx, order, attribution, sess)
	if err != nil {
		return err
	}

	if c == nil {
		return nil
	}

	if err := s.repo.InsertCommission(ctx, c); err != nil {
		return fmt.Errorf("recording commission: %w", err)
	}

	s.logger.Info("commission recorded",
		"order_id", c.OrderID,
		"affiliate_id", c.AffiliateID,
		"amount_cents", c.CommissionAmountCents)

	return nil
}
