package service

import (
	"context"
	"fmt"
	"time"

	"restaurant-intel/internal/analytics"
	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FinancialStore interface {
	CreateMonthly(ctx context.Context, m *models.MonthlyData) error
	ListMonthly(ctx context.Context, restaurantID uuid.UUID) ([]*models.MonthlyData, error)
	ListMonthlyForRestaurants(ctx context.Context, restaurantIDs []uuid.UUID) ([]*models.MonthlyData, error)
	CreateWeekly(ctx context.Context, w *models.WeeklyData) error
	ListWeekly(ctx context.Context, restaurantID uuid.UUID) ([]*models.WeeklyData, error)
}

// FinancialService records trading periods and builds period comparisons.
type FinancialService struct {
	access Authorizer
	repo   FinancialStore
	logger *zap.Logger
}

func NewFinancialService(access Authorizer, repo FinancialStore, logger *zap.Logger) *FinancialService {
	return &FinancialService{
		access: access,
		repo:   repo,
		logger: logger,
	}
}

func (s *FinancialService) AddMonthly(ctx context.Context, ownerID, restaurantID uuid.UUID, req *dto.CreateMonthlyDataRequest) (*dto.PeriodResponse, error) {
	if _, err := s.access.Authorize(ctx, ownerID, restaurantID); err != nil {
		return nil, err
	}
	idx, ok := analytics.MonthIndex(req.Month)
	if !ok {
		return nil, fmt.Errorf("%w: unknown month %q", ErrInvalidInput, req.Month)
	}

	record := &models.MonthlyData{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Month:        analytics.MonthName(idx),
		Year:         req.Year,
		Figures:      figuresFromInput(req.FiguresInput),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.CreateMonthly(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Monthly data recorded",
		zap.String("restaurant_id", restaurantID.String()),
		zap.String("month", record.Month),
		zap.Int("year", record.Year),
	)
	resp := monthlyResponse(record)
	return &resp, nil
}

func (s *FinancialService) ListMonthly(ctx context.Context, ownerID, restaurantID uuid.UUID) ([]dto.PeriodResponse, error) {
	records, err := s.monthly(ctx, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PeriodResponse, 0, len(records))
	for _, m := range records {
		out = append(out, monthlyResponse(m))
	}
	return out, nil
}

func (s *FinancialService) AddWeekly(ctx context.Context, ownerID, restaurantID uuid.UUID, req *dto.CreateWeeklyDataRequest) (*dto.PeriodResponse, error) {
	if _, err := s.access.Authorize(ctx, ownerID, restaurantID); err != nil {
		return nil, err
	}

	record := &models.WeeklyData{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		WeekNumber:   req.WeekNumber,
		Year:         req.Year,
		Figures:      figuresFromInput(req.FiguresInput),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.CreateWeekly(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Weekly data recorded",
		zap.String("restaurant_id", restaurantID.String()),
		zap.Int("week", record.WeekNumber),
		zap.Int("year", record.Year),
	)
	resp := weeklyResponse(record)
	return &resp, nil
}

func (s *FinancialService) ListWeekly(ctx context.Context, ownerID, restaurantID uuid.UUID) ([]dto.PeriodResponse, error) {
	records, err := s.weekly(ctx, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PeriodResponse, 0, len(records))
	for _, w := range records {
		out = append(out, weeklyResponse(w))
	}
	return out, nil
}

func (s *FinancialService) CompareQuarter(ctx context.Context, ownerID, restaurantID uuid.UUID, quarter, year int) (*analytics.QuarterComparison, error) {
	if quarter < 1 || quarter > 4 {
		return nil, fmt.Errorf("%w: quarter must be 1-4", ErrInvalidInput)
	}
	records, err := s.monthly(ctx, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}
	cmp := analytics.CompareQuarter(monthlyPeriods(records), quarter, year)
	return &cmp, nil
}

func (s *FinancialService) CompareHalf(ctx context.Context, ownerID, restaurantID uuid.UUID, half, year int) (*analytics.HalfComparison, error) {
	if half != 1 && half != 2 {
		return nil, fmt.Errorf("%w: half must be 1 or 2", ErrInvalidInput)
	}
	records, err := s.monthly(ctx, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}
	cmp := analytics.CompareHalf(monthlyPeriods(records), half, year)
	return &cmp, nil
}

func (s *FinancialService) CompareWeek(ctx context.Context, ownerID, restaurantID uuid.UUID, week, year int) (*analytics.WeekComparison, error) {
	if week < 1 || week > 53 {
		return nil, fmt.Errorf("%w: week must be 1-53", ErrInvalidInput)
	}
	records, err := s.weekly(ctx, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}
	cmp := analytics.CompareWeek(weeklyPeriods(records), week, year)
	return &cmp, nil
}

func (s *FinancialService) monthly(ctx context.Context, ownerID, restaurantID uuid.UUID) ([]*models.MonthlyData, error) {
	if _, err := s.access.Authorize(ctx, ownerID, restaurantID); err != nil {
		return nil, err
	}
	return s.repo.ListMonthly(ctx, restaurantID)
}

func (s *FinancialService) weekly(ctx context.Context, ownerID, restaurantID uuid.UUID) ([]*models.WeeklyData, error) {
	if _, err := s.access.Authorize(ctx, ownerID, restaurantID); err != nil {
		return nil, err
	}
	return s.repo.ListWeekly(ctx, restaurantID)
}
