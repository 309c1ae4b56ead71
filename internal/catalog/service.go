package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"funnelkit/internal/cache"
)

const offerCacheTTL = 5 * time.Minute

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	GetStepOffer(ctx context.Context, stepID uuid.UUID) (*StepOffer, error)
}

// Service reads step offers, caching them in Redis when configured. Cache
// failures degrade to direct reads and are only logged.
type Service struct {
	repo   Repository
	cache  *cache.Redis
	logger *slog.Logger
}

func NewService(repo Repository, redis *cache.Redis, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  redis,
		logger: logger.With("component", "catalog"),
	}
}

// StepOffer returns the active products and bumps for a step.
func (s *Service) StepOffer(ctx context.Context, stepID uuid.UUID) (*StepOffer, error) {
	key := fmt.Sprintf("catalog:offer:%s", stepID)

	if s.cache != nil {
		var cached StepOffer

		ok, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("read offer cache failed", "error", err, "step_id", stepID)
		} else if ok {
			return &cached, nil
		}
	}

	offer, err := s.repo.GetStepOffer(ctx, stepID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, offer, offerCacheTTL); err != nil {
			s.logger.Warn("set offer cache failed", "error", err, "step_id", stepID)
		}
	}

	return offer, nil
}
