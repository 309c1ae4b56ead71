package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"funnelkit/internal/funnel"
)

func TestStepOffer_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewService(repo, nil, logger)

	stepID := uuid.New()
	offer := &StepOffer{
		StepID:   stepID,
		FunnelID: uuid.New(),
		Kind:     funnel.StepCheckout,
		Products: []Product{{ID: uuid.New(), StepID: stepID, Name: "Course", PriceCents: 10000, Active: true}},
	}

	repo.EXPECT().GetStepOffer(gomock.Any(), stepID).Return(offer, nil)

	got, err := svc.StepOffer(context.Background(), stepID)
	require.NoError(t, err)
	assert.Equal(t, offer, got)
}

func TestStepOffer_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewService(repo, nil, logger)

	stepID := uuid.New()
	repo.EXPECT().GetStepOffer(gomock.Any(), stepID).Return(nil, ErrNotFound)

	_, err := svc.StepOffer(context.Background(), stepID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStepOffer_ProductLookup(t *testing.T) {
	stepID := uuid.New()
	productID := uuid.New()
	bumpID := uuid.New()

	offer := &StepOffer{
		StepID:   stepID,
		Products: []Product{{ID: productID, StepID: stepID, Name: "Course", PriceCents: 10000}},
		Bumps:    []Bump{{ID: bumpID, StepID: stepID, Name: "Workbook", PriceCents: 5000}},
	}

	product, ok := offer.Product(productID)
	require.True(t, ok)
	assert.Equal(t, "Course", product.Name)

	_, ok = offer.Product(uuid.New())
	assert.False(t, ok)

	bump, ok := offer.Bump(bumpID)
	require.True(t, ok)
	assert.Equal(t, "Workbook", bump.Name)

	_, ok = offer.Bump(productID)
	assert.False(t, ok)
}
