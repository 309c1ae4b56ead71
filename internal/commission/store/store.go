package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"funnelkit/internal/commission"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindRule(ctx context.Context, funnelID, productID uuid.UUID) (*commission.Rule, error) {
	query := `
		SELECT id, funnel_id, product_id, commission_type, rate, created_at
		FROM commission_rules
		WHERE funnel_id = $1 AND product_id = $2`

	var rule commission.Rule

	var ruleType string

	err := s.db.QueryRowContext(ctx, query, funnelID, productID).Scan(
		&rule.ID, &rule.FunnelID, &rule.ProductID, &ruleType, &rule.Rate, &rule.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, commission.ErrRuleNotFound
		}

		return nil, fmt.Errorf("finding commission rule: %w", err)
	}

	rule.Type = commission.Type(ruleType)

	return &rule, nil
}

// InsertCommission records a pending payout. The unique constraint on
// order_id makes a repeat insert for the same order fail loudly instead of
// double-paying.
func (s *Store) InsertCommission(ctx context.Context, c *commission.Commission) error {
	query := `
		INSERT INTO commissions (affiliate_id, order_id, commission_type, rate,
			order_amount_cents, commission_amount_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := s.db.QueryRowContext(ctx, query,
		c.AffiliateID, c.OrderID, string(c.Type), c.Rate,
		c.OrderAmountCents, c.CommissionAmountCents, string(c.Status),
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting commission: %w", err)
	}

	return nil
}
