package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"funnelkit/internal/checkout"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectOrderColumns = `
	o.id, o.subtotal_cents, o.bump_total_cents, o.total_cents, o.status,
	o.payment_status, o.currency, o.customer_email, o.customer_name,
	o.billing_address, o.metadata, o.paid_at, o.created_at, o.updated_at
`

// scanOrder reads an order row. Expected column order matches
// selectOrderColumns.
func scanOrder(s scanner) (*checkout.Order, error) {
	var order checkout.Order

	var statusStr, paymentStr string

	var email, name sql.NullString

	var billingJSON, metaJSON []byte

	if err := s.Scan(
		&order.ID, &order.SubtotalCents, &order.BumpTotalCents, &order.TotalCents, &statusStr,
		&paymentStr, &order.Currency, &email, &name,
		&billingJSON, &metaJSON, &order.PaidAt, &order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		return nil, err
	}

	order.Status = checkout.OrderStatus(statusStr)
	order.PaymentStatus = checkout.PaymentStatus(paymentStr)
	order.CustomerEmail = email.String
	order.CustomerName = name.String

	if len(billingJSON) > 0 {
		var addr checkout.Address
		if err := json.Unmarshal(billingJSON, &addr); err != nil {
			return nil, fmt.Errorf("decoding billing address: %w", err)
		}

		order.BillingAddress = &addr
	}

	if len(metaJSON) > 0 {
		if err := json.Unmarshal(metaJSON, &order.Metadata); err != nil {
			return nil, fmt.Errorf("decoding order metadata: %w", err)
		}
	}

	return &order, nil
}

func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (*checkout.Order, error) {
	query := `SELECT ` + selectOrderColumns + ` FROM orders o WHERE o.id = $1`

	order, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, checkout.ErrNotFound
		}

		return nil, fmt.Errorf("getting order: %w", err)
	}

	items, err := s.listItems(ctx, s.db, order.ID)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

// FindOrderByIntentID locates the order whose metadata references the given
// gateway intent id. Failed orders are skipped; at most one non-failed order
// exists per confirmed intent.
func (s *Store) FindOrderByIntentID(ctx context.Context, intentID string) (*checkout.Order, error) {
	query := `SELECT ` + selectOrderColumns + `
		FROM orders o
		WHERE o.metadata ->> 'payment_intent_id' = $1 AND o.status <> 'failed'
		ORDER BY o.created_at ASC
		LIMIT 1`

	order, err := scanOrder(s.db.QueryRowContext(ctx, query, intentID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, checkout.ErrNotFound
		}

		return nil, fmt.Errorf("finding order by intent: %w", err)
	}

	items, err := s.listItems(ctx, s.db, order.ID)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

// GetAttribution returns the order's earliest funnel attribution row, which
// carries the session the order was placed under.
func (s *Store) GetAttribution(ctx context.Context, orderID uuid.UUID) (*checkout.FunnelOrder, error) {
	attribution, err := scanAttribution(s.db.QueryRowContext(ctx, selectAttributionQuery, orderID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, checkout.ErrNotFound
		}

		return nil, fmt.Errorf("getting attribution: %w", err)
	}

	return attribution, nil
}

func (s *Store) SetOrderIntent(ctx context.Context, orderID uuid.UUID, intentID string) error {
	query := `
		UPDATE orders
		SET metadata = metadata || jsonb_build_object('payment_intent_id', $1::text),
			updated_at = NOW()
		WHERE id = $2`

	_, err := s.db.ExecContext(ctx, query, intentID, orderID)
	if err != nil {
		return fmt.Errorf("setting order intent: %w", err)
	}

	return nil
}

func (s *Store) MarkOrderFailed(ctx context.Context, orderID uuid.UUID) error {
	query := `
		UPDATE orders
		SET status = 'failed', updated_at = NOW()
		WHERE id = $1 AND payment_status = 'pending'`

	_, err := s.db.ExecContext(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("marking order failed: %w", err)
	}

	return nil
}

// IncrementUpsellAccepted bumps the accepted counter on the order's main
// attribution row.
func (s *Store) IncrementUpsellAccepted(ctx context.Context, orderID uuid.UUID) error {
	return s.bumpUpsellCounter(ctx, orderID, "upsell_accepted")
}

// IncrementUpsellOffered bumps the offered counter on the order's main
// attribution row.
func (s *Store) IncrementUpsellOffered(ctx context.Context, orderID uuid.UUID) error {
	return s.bumpUpsellCounter(ctx, orderID, "upsell_offered")
}

func (s *Store) bumpUpsellCounter(ctx context.Context, orderID uuid.UUID, column string) error {
	query := fmt.Sprintf(`
		UPDATE funnel_orders
		SET %s = %s + 1
		WHERE order_id = $1 AND order_type = 'main'`, column, column)

	res, err := s.db.ExecContext(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("incrementing %s: %w", column, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return checkout.ErrNotFound
	}

	return nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *Store) listItems(ctx context.Context, q querier, orderID uuid.UUID) ([]*checkout.LineItem, error) {
	query := `
		SELECT id, order_id, product_id, kind, name, unit_price_cents, quantity,
			total_price_cents, created_at
		FROM order_line_items
		WHERE order_id = $1
		ORDER BY created_at ASC, kind ASC`

	rows, err := q.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing line items: %w", err)
	}
	defer rows.Close()

	var items []*checkout.LineItem

	for rows.Next() {
		var item checkout.LineItem

		var kind string

		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &kind, &item.Name,
			&item.UnitPriceCents, &item.Quantity, &item.TotalPriceCents, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning line item: %w", err)
		}

		item.Kind = checkout.LineItemKind(kind)
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating line items: %w", err)
	}

	return items, nil
}

type checkoutTx struct {
	tx *sql.Tx
}

func (s *Store) BeginCheckout(ctx context.Context) (checkout.CheckoutTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning checkout tx: %w", err)
	}

	return &checkoutTx{tx: dbTx}, nil
}

func (c *checkoutTx) Commit() error   { return c.tx.Commit() }
func (c *checkoutTx) Rollback() error { return c.tx.Rollback() }

// UpsertCart overwrites the selection snapshot for (session, funnel). The
// recovery status column is deliberately left alone so an already advanced
// status never regresses.
func (c *checkoutTx) UpsertCart(ctx context.Context, cart *checkout.Cart) error {
	productIDs, err := json.Marshal(cart.ProductIDs)
	if err != nil {
		return fmt.Errorf("encoding product ids: %w", err)
	}

	bumpIDs, err := json.Marshal(cart.BumpIDs)
	if err != nil {
		return fmt.Errorf("encoding bump ids: %w", err)
	}

	query := `
		INSERT INTO carts (session_id, funnel_id, product_ids, bump_ids, total_cents, recovery_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (session_id, funnel_id) DO UPDATE SET
			product_ids = EXCLUDED.product_ids,
			bump_ids = EXCLUDED.bump_ids,
			total_cents = EXCLUDED.total_cents,
			updated_at = NOW()
		RETURNING id, recovery_status, created_at`

	var status string
	if err := c.tx.QueryRowContext(ctx, query,
		cart.SessionID, cart.FunnelID, string(productIDs), string(bumpIDs),
		cart.TotalCents, string(cart.RecoveryStatus),
	).Scan(&cart.ID, &status, &cart.CreatedAt); err != nil {
		return fmt.Errorf("upserting cart: %w", err)
	}

	cart.RecoveryStatus = checkout.RecoveryStatus(status)

	return nil
}

func (c *checkoutTx) CreateOrder(ctx context.Context, order *checkout.Order, items []*checkout.LineItem) error {
	var billingJSON any
	if order.BillingAddress != nil {
		data, err := json.Marshal(order.BillingAddress)
		if err != nil {
			return fmt.Errorf("encoding billing address: %w", err)
		}

		billingJSON = string(data)
	}

	metadata := order.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	metaJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}

	query := `
		INSERT INTO orders (subtotal_cents, bump_total_cents, total_cents, status,
			payment_status, currency, customer_email, customer_name, billing_address, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	currency := order.Currency
	if currency == "" {
		currency = "usd"
	}

	if err := c.tx.QueryRowContext(ctx, query,
		order.SubtotalCents, order.BumpTotalCents, order.TotalCents, string(order.Status),
		string(order.PaymentStatus), currency, nullable(order.CustomerEmail),
		nullable(order.CustomerName), billingJSON, string(metaJSON),
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return fmt.Errorf("creating order: %w", err)
	}

	order.Currency = currency

	itemQuery := `
		INSERT INTO order_line_items (order_id, product_id, kind, name,
			unit_price_cents, quantity, total_price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	for _, item := range items {
		item.OrderID = order.ID
		if err := c.tx.QueryRowContext(ctx, itemQuery,
			item.OrderID, item.ProductID, string(item.Kind), item.Name,
			item.UnitPriceCents, item.Quantity, item.TotalPriceCents,
		).Scan(&item.ID, &item.CreatedAt); err != nil {
			return fmt.Errorf("creating line item: %w", err)
		}
	}

	order.Items = items

	return nil
}

func (c *checkoutTx) CreateFunnelOrder(ctx context.Context, fo *checkout.FunnelOrder) error {
	query := `
		INSERT INTO funnel_orders (order_id, funnel_id, step_id, session_id, order_type,
			funnel_revenue_cents, bumps_offered, bumps_accepted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	if err := c.tx.QueryRowContext(ctx, query,
		fo.OrderID, fo.FunnelID, fo.StepID, fo.SessionID, string(fo.OrderType),
		fo.FunnelRevenueCents, fo.BumpsOffered, fo.BumpsAccepted,
	).Scan(&fo.ID, &fo.CreatedAt); err != nil {
		return fmt.Errorf("creating funnel order: %w", err)
	}

	return nil
}

type confirmTx struct {
	tx          *sql.Tx
	order       *checkout.Order
	attribution *checkout.FunnelOrder
}

// BeginConfirm opens a transaction and row-locks the order so the paid
// check-then-set cannot race a concurrent confirmation of the same intent.
func (s *Store) BeginConfirm(ctx context.Context, orderID uuid.UUID) (checkout.ConfirmTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning confirm tx: %w", err)
	}

	query := `SELECT ` + selectOrderColumns + ` FROM orders o WHERE o.id = $1 FOR UPDATE`

	order, err := scanOrder(dbTx.QueryRowContext(ctx, query, orderID))
	if err != nil {
		dbTx.Rollback()

		if err == sql.ErrNoRows {
			return nil, checkout.ErrNotFound
		}

		return nil, fmt.Errorf("locking order: %w", err)
	}

	items, err := s.listItems(ctx, dbTx, order.ID)
	if err != nil {
		dbTx.Rollback()
		return nil, err
	}

	order.Items = items

	attribution, err := scanAttribution(dbTx.QueryRowContext(ctx, selectAttributionQuery, orderID))
	if err != nil {
		dbTx.Rollback()

		if err == sql.ErrNoRows {
			return nil, checkout.ErrNotFound
		}

		return nil, fmt.Errorf("loading attribution: %w", err)
	}

	return &confirmTx{tx: dbTx, order: order, attribution: attribution}, nil
}

const selectAttributionQuery = `
	SELECT id, order_id, funnel_id, step_id, session_id, order_type,
		funnel_revenue_cents, bumps_offered, bumps_accepted,
		upsell_offered, upsell_accepted, created_at
	FROM funnel_orders
	WHERE order_id = $1
	ORDER BY created_at ASC
	LIMIT 1`

func scanAttribution(s scanner) (*checkout.FunnelOrder, error) {
	var fo checkout.FunnelOrder

	var orderType string

	if err := s.Scan(&fo.ID, &fo.OrderID, &fo.FunnelID, &fo.StepID, &fo.SessionID,
		&orderType, &fo.FunnelRevenueCents, &fo.BumpsOffered, &fo.BumpsAccepted,
		&fo.UpsellOffered, &fo.UpsellAccepted, &fo.CreatedAt); err != nil {
		return nil, err
	}

	fo.OrderType = checkout.OrderType(orderType)

	return &fo, nil
}

func (c *confirmTx) Order() *checkout.Order             { return c.order }
func (c *confirmTx) Attribution() *checkout.FunnelOrder { return c.attribution }
func (c *confirmTx) Commit() error                      { return c.tx.Commit() }
func (c *confirmTx) Rollback() error                    { return c.tx.Rollback() }

func (c *confirmTx) MarkPaid(ctx context.Context, paidAt time.Time) error {
	query := `
		UPDATE orders
		SET status = 'confirmed', payment_status = 'paid', paid_at = $1, updated_at = NOW()
		WHERE id = $2`

	if _, err := c.tx.ExecContext(ctx, query, paidAt, c.order.ID); err != nil {
		return fmt.Errorf("marking order paid: %w", err)
	}

	return nil
}

func (c *confirmTx) MarkSessionConverted(ctx context.Context, sessionID uuid.UUID) error {
	query := `UPDATE sessions SET converted = TRUE, updated_at = NOW() WHERE id = $1`

	if _, err := c.tx.ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("marking session converted: %w", err)
	}

	return nil
}

// MarkCartRecovered advances the cart to recovered. The status filter keeps
// the transition forward-only.
func (c *confirmTx) MarkCartRecovered(ctx context.Context, sessionID, funnelID uuid.UUID) error {
	query := `
		UPDATE carts
		SET recovery_status = 'recovered', updated_at = NOW()
		WHERE session_id = $1 AND funnel_id = $2 AND recovery_status IN ('pending', 'sent')`

	if _, err := c.tx.ExecContext(ctx, query, sessionID, funnelID); err != nil {
		return fmt.Errorf("marking cart recovered: %w", err)
	}

	return nil
}

func (c *confirmTx) AddStats(ctx context.Context, funnelID, stepID uuid.UUID, revenueCents int64) error {
	stepQuery := `
		INSERT INTO step_stats (step_id, orders_count, revenue_cents, updated_at)
		VALUES ($1, 1, $2, NOW())
		ON CONFLICT (step_id) DO UPDATE SET
			orders_count = step_stats.orders_count + 1,
			revenue_cents = step_stats.revenue_cents + EXCLUDED.revenue_cents,
			updated_at = NOW()`

	if _, err := c.tx.ExecContext(ctx, stepQuery, stepID, revenueCents); err != nil {
		return fmt.Errorf("adding step stats: %w", err)
	}

	funnelQuery := `
		INSERT INTO funnel_stats (funnel_id, orders_count, revenue_cents, updated_at)
		VALUES ($1, 1, $2, NOW())
		ON CONFLICT (funnel_id) DO UPDATE SET
			orders_count = funnel_stats.orders_count + 1,
			revenue_cents = funnel_stats.revenue_cents + EXCLUDED.revenue_cents,
			updated_at = NOW()`

	if _, err := c.tx.ExecContext(ctx, funnelQuery, funnelID, revenueCents); err != nil {
		return fmt.Errorf("adding funnel stats: %w", err)
	}

	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}

	return s
}
