// Package catalog provides read-only lookup of the products and order bumps
// offered on a funnel step.
package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"funnelkit/internal/funnel"
)

var ErrNotFound = errors.New("step not found")

// Product is a main offer hosted on a step.
type Product struct {
	ID              uuid.UUID `json:"id"`
	StepID          uuid.UUID `json:"step_id"`
	Name            string    `json:"name"`
	PriceCents      int64     `json:"price_cents"`
	Active          bool      `json:"active"`
	Recurring       bool      `json:"recurring"`
	BillingInterval string    `json:"billing_interval,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Bump is an additional item offered alongside the main offer at checkout.
type Bump struct {
	ID         uuid.UUID `json:"id"`
	StepID     uuid.UUID `json:"step_id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// StepOffer is the complete active selection available on one step.
type StepOffer struct {
	StepID   uuid.UUID       `json:"step_id"`
	FunnelID uuid.UUID       `json:"funnel_id"`
	Kind     funnel.StepKind `json:"kind"`
	Products []Product       `json:"products"`
	Bumps    []Bump          `json:"bumps"`
}

// Product returns the active product with the given id, if offered.
func (o *StepOffer) Product(id uuid.UUID) (*Product, bool) {
	for i := range o.Products {
		if o.Products[i].ID == id {
			return &o.Products[i], true
		}
	}

	return nil, false
}

// Bump returns the active bump with the given id, if offered.
func (o *StepOffer) Bump(id uuid.UUID) (*Bump, bool) {
	for i := range o.Bumps {
		if o.Bumps[i].ID == id {
			return &o.Bumps[i], true
		}
	}

	return nil, false
}
