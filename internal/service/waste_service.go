package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restaurant-intel/internal/analytics"
	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WasteStore interface {
	Create(ctx context.Context, w *models.WasteLog) error
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*models.WasteLog, error)
}

type WasteService struct {
	access    Authorizer
	repo      WasteStore
	financial FinancialStore
	logger    *zap.Logger
}

func NewWasteService(access Authorizer, repo WasteStore, financial FinancialStore, logger *zap.Logger) *WasteService {
	return &WasteService{
		access:    access,
		repo:      repo,
		financial: financial,
		logger:    logger,
	}
}

func (s *WasteService) LogWaste(ctx context.Context, ownerID, restaurantID uuid.UUID, req *dto.CreateWasteLogRequest) (*analytics.WasteLog, error) {
	if _, err := s.access.Authorize(ctx, ownerID, restaurantID); err != nil {
		return nil, err
	}
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date", ErrInvalidInput)
	}

	entry := &models.WasteLog{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		ItemName:     sanitizeUTF8(strings.TrimSpace(req.ItemName)),
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		CostPerUnit:  req.CostPerUnit,
		TotalCost:    analytics.RoundPence(req.Quantity * req.CostPerUnit),
		Reason:       strings.ToLower(strings.TrimSpace(req.Reason)),
		Date:         day,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("Waste logged",
		zap.String("restaurant_id", restaurantID.String()),
		zap.String("item", entry.ItemName),
		zap.Float64("total_cost", entry.TotalCost),
	)
	out := wasteLogFromModel(entry)
	return &out, nil
}

func (s *WasteService) Analytics(ctx context.Context, ownerID, restaurantID uuid.UUID) (*analytics.WasteAnalytics, error) {
	if _, err := s.access.Authorize(ctx, ownerID, restaurantID); err != nil {
		return nil, err
	}
	logs, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	records, err := s.financial.ListMonthly(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	entries := make([]analytics.WasteLog, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, wasteLogFromModel(l))
	}
	result := analytics.AnalyzeWaste(entries, monthlyPeriods(records))
	return &result, nil
}
