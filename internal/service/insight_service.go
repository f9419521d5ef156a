package service

import (
	"context"

	"restaurant-intel/internal/analytics"
	"restaurant-intel/internal/dto"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InsightService runs the breakeven calculator and the recommendation engine
// over a restaurant's latest monthly record.
type InsightService struct {
	access Authorizer
	repo   FinancialStore
	engine *analytics.Engine
	logger *zap.Logger
}

func NewInsightService(access Authorizer, repo FinancialStore, engine *analytics.Engine, logger *zap.Logger) *InsightService {
	return &InsightService{
		access: access,
		repo:   repo,
		engine: engine,
		logger: logger,
	}
}

func (s *InsightService) Breakeven(ctx context.Context, ownerID, restaurantID uuid.UUID) (*dto.BreakevenResponse, error) {
	latest, err := s.latest(ctx, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}

	result := analytics.ComputeBreakeven(latest, s.engine.Benchmarks())
	if !result.Reachable || result.Degenerate {
		s.logger.Info("Breakeven input is degenerate",
			zap.String("restaurant_id", restaurantID.String()),
			zap.Bool("reachable", result.Reachable),
			zap.Bool("degenerate", result.Degenerate),
		)
	}
	return &dto.BreakevenResponse{Period: latest, Result: result}, nil
}

func (s *InsightService) Recommendations(ctx context.Context, ownerID, restaurantID uuid.UUID) (*dto.RecommendationsResponse, error) {
	latest, err := s.latest(ctx, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}

	recs := s.engine.Generate(latest)
	var total float64
	for _, r := range recs {
		total += r.EstimatedSaving
	}

	s.logger.Info("Recommendations generated",
		zap.String("restaurant_id", restaurantID.String()),
		zap.Int("count", len(recs)),
	)
	return &dto.RecommendationsResponse{
		Period:               latest,
		Recommendations:      recs,
		TotalEstimatedSaving: total,
		Benchmarks:           s.engine.Benchmarks(),
	}, nil
}

// latest is the most recently entered monthly record.
func (s *InsightService) latest(ctx context.Context, ownerID, restaurantID uuid.UUID) (analytics.Period, error) {
	if _, err := s.access.Authorize(ctx, ownerID, restaurantID); err != nil {
		return analytics.Period{}, err
	}
	records, err := s.repo.ListMonthly(ctx, restaurantID)
	if err != nil {
		return analytics.Period{}, err
	}
	if len(records) == 0 {
		return analytics.Period{}, ErrNoFinancialData
	}
	return periodFromMonthly(records[len(records)-1]), nil
}
