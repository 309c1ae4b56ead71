package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"funnelkit/internal/catalog"
	"funnelkit/internal/funnel"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetStepOffer loads the step row plus its active products and bumps.
func (s *Store) GetStepOffer(ctx context.Context, stepID uuid.UUID) (*catalog.StepOffer, error) {
	offer := &catalog.StepOffer{StepID: stepID}

	var kind string

	err := s.db.QueryRowContext(ctx,
		`SELECT funnel_id, kind FROM steps WHERE id = $1`, stepID,
	).Scan(&offer.FunnelID, &kind)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrNotFound
		}

		return nil, fmt.Errorf("getting step: %w", err)
	}

	offer.Kind = funnel.StepKind(kind)

	products, err := s.activeProducts(ctx, stepID)
	if err != nil {
		return nil, err
	}

	bumps, err := s.activeBumps(ctx, stepID)
	if err != nil {
		return nil, err
	}

	offer.Products = products
	offer.Bumps = bumps

	return offer, nil
}

func (s *Store) activeProducts(ctx context.Context, stepID uuid.UUID) ([]catalog.Product, error) {
	query := `
		SELECT id, step_id, name, price_cents, active, recurring, billing_interval, created_at
		FROM products
		WHERE step_id = $1 AND active = TRUE
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, stepID)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product

	for rows.Next() {
		var p catalog.Product

		var interval sql.NullString

		if err := rows.Scan(&p.ID, &p.StepID, &p.Name, &p.PriceCents, &p.Active,
			&p.Recurring, &interval, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		p.BillingInterval = interval.String
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

func (s *Store) activeBumps(ctx context.Context, stepID uuid.UUID) ([]catalog.Bump, error) {
	query := `
		SELECT id, step_id, name, price_cents, active, created_at
		FROM bumps
		WHERE step_id = $1 AND active = TRUE
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, stepID)
	if err != nil {
		return nil, fmt.Errorf("listing bumps: %w", err)
	}
	defer rows.Close()

	var bumps []catalog.Bump

	for rows.Next() {
		var b catalog.Bump
		if err := rows.Scan(&b.ID, &b.StepID, &b.Name, &b.PriceCents, &b.Active, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning bump: %w", err)
		}

		bumps = append(bumps, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bumps: %w", err)
	}

	return bumps, nil
}
