package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"funnelkit/internal/funnel"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetSession(ctx context.Context, id uuid.UUID) (*funnel.Session, error) {
	query := `
		SELECT id, funnel_id, contact_email, contact_name, gateway_customer_id,
			default_payment_method, affiliate_id, converted, created_at, updated_at
		FROM sessions
		WHERE id = $1`

	var sess funnel.Session

	var email, name, customerID, paymentMethod sql.NullString

	if err := s.db.QueryRowContext(ctx, query, id).Scan(
		&sess.ID, &sess.FunnelID, &email, &name, &customerID,
		&paymentMethod, &sess.AffiliateID, &sess.Converted,
		&sess.CreatedAt, &sess.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, funnel.ErrNotFound
		}

		return nil, fmt.Errorf("getting session: %w", err)
	}

	if email.Valid || customerID.Valid {
		sess.Contact = &funnel.Contact{
			Email:                email.String,
			Name:                 name.String,
			GatewayCustomerID:    customerID.String,
			DefaultPaymentMethod: paymentMethod.String,
		}
	}

	return &sess, nil
}

func (s *Store) GetFunnel(ctx context.Context, id uuid.UUID) (*funnel.Funnel, error) {
	query := `
		SELECT id, name, affiliate_tracking_enabled, created_at
		FROM funnels
		WHERE id = $1`

	var f funnel.Funnel
	if err := s.db.QueryRowContext(ctx, query, id).Scan(
		&f.ID, &f.Name, &f.AffiliateTrackingEnabled, &f.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, funnel.ErrNotFound
		}

		return nil, fmt.Errorf("getting funnel: %w", err)
	}

	return &f, nil
}

func (s *Store) GetStep(ctx context.Context, id uuid.UUID) (*funnel.Step, error) {
	query := `
		SELECT id, funnel_id, kind, position, created_at
		FROM steps
		WHERE id = $1`

	var st funnel.Step

	var kind string

	if err := s.db.QueryRowContext(ctx, query, id).Scan(
		&st.ID, &st.FunnelID, &kind, &st.Position, &st.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, funnel.ErrNotFound
		}

		return nil, fmt.Errorf("getting step: %w", err)
	}

	st.Kind = funnel.StepKind(kind)

	return &st, nil
}

// UpdateSessionContact stores buyer identity and gateway payment references
// captured during checkout.
func (s *Store) UpdateSessionContact(ctx context.Context, id uuid.UUID, contact funnel.Contact) error {
	query := `
		UPDATE sessions
		SET contact_email = $1, contact_name = $2, gateway_customer_id = $3,
			default_payment_method = $4, updated_at = NOW()
		WHERE id = $5`

	_, err := s.db.ExecContext(ctx, query,
		nullable(contact.Email),
		nullable(contact.Name),
		nullable(contact.GatewayCustomerID),
		nullable(contact.DefaultPaymentMethod),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating session contact: %w", err)
	}

	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}

	return s
}
