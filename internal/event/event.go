// Package event defines the closed set of side-effect notifications fired
// after an order is durably marked paid. Dispatch is fire-and-forget: an
// implementation must absorb its own failures and never propagate them into
// the checkout path.
package event

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"funnelkit/internal/metrics"
)

// AutomationEventType names the trigger handed to the automation engine.
type AutomationEventType string

const (
	AutomationOrderPaid AutomationEventType = "order.paid"
)

// ConversionRecorded reports funnel-attributable revenue to analytics.
type ConversionRecorded struct {
	FunnelID     uuid.UUID
	StepID       uuid.UUID
	RevenueCents int64
}

// AutomationTriggered hands a named trigger to the automation engine.
type AutomationTriggered struct {
	Type     AutomationEventType
	FunnelID uuid.UUID
	OrderID  uuid.UUID
}

// PixelPurchase notifies ad-pixel delivery of a completed purchase.
type PixelPurchase struct {
	OrderID    uuid.UUID
	SessionID  uuid.UUID
	TotalCents int64
}

// Dispatcher receives side-effect events after payment is confirmed.
type Dispatcher interface {
	ConversionRecorded(ctx context.Context, e ConversionRecorded)
	AutomationTriggered(ctx context.Context, e AutomationTriggered)
	PixelPurchase(ctx context.Context, e PixelPurchase)
}

// LogDispatcher logs every event and counts it in Prometheus. It stands in
// for the analytics, automation and pixel integrations, which live outside
// this service.
type LogDispatcher struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewLogDispatcher(logger *slog.Logger, m *metrics.Metrics) *LogDispatcher {
	return &LogDispatcher{
		logger:  logger.With("component", "dispatcher"),
		metrics: m,
	}
}

func (d *LogDispatcher) ConversionRecorded(ctx context.Context, e ConversionRecorded) {
	d.logger.Info("conversion recorded",
		"funnel_id", e.FunnelID, "step_id", e.StepID, "revenue_cents", e.RevenueCents)
	d.count("conversion_recorded")
}

func (d *LogDispatcher) AutomationTriggered(ctx context.Context, e AutomationTriggered) {
	d.logger.Info("automation triggered",
		"type", string(e.Type), "funnel_id", e.FunnelID, "order_id", e.OrderID)
	d.count("automation_triggered")
}

func (d *LogDispatcher) PixelPurchase(ctx context.Context, e PixelPurchase) {
	d.logger.Info("pixel purchase",
		"order_id", e.OrderID, "session_id", e.SessionID, "total_cents", e.TotalCents)
	d.count("pixel_purchase")
}

func (d *LogDispatcher) count(eventType string) {
	if d.metrics != nil {
		d.metrics.EventsDispatched.WithLabelValues(eventType).Inc()
	}
}
