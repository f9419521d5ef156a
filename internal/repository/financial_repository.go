package repository

import (
	"context"
	"fmt"

	"restaurant-intel/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var figureColumns = []string{
	"revenue", "food_cost", "labour_cost", "energy_cost", "rent_cost",
	"marketing_cost", "supplies_cost", "technology_cost", "waste_cost",
	"delivery_revenue", "dine_in_revenue", "takeaway_revenue",
	"total_covers", "avg_ticket_size", "repeat_customer_rate",
}

func figureValues(f *models.Figures) []interface{} {
	return []interface{}{
		f.Revenue, f.FoodCost, f.LabourCost, f.EnergyCost, f.RentCost,
		f.MarketingCost, f.SuppliesCost, f.TechnologyCost, f.WasteCost,
		f.DeliveryRevenue, f.DineInRevenue, f.TakeawayRevenue,
		f.TotalCovers, f.AvgTicketSize, f.RepeatCustomerRate,
	}
}

func figureDest(f *models.Figures) []interface{} {
	return []interface{}{
		&f.Revenue, &f.FoodCost, &f.LabourCost, &f.EnergyCost, &f.RentCost,
		&f.MarketingCost, &f.SuppliesCost, &f.TechnologyCost, &f.WasteCost,
		&f.DeliveryRevenue, &f.DineInRevenue, &f.TakeawayRevenue,
		&f.TotalCovers, &f.AvgTicketSize, &f.RepeatCustomerRate,
	}
}

func withFigures(head []string, tail ...string) []string {
	cols := make([]string, 0, len(head)+len(figureColumns)+len(tail))
	cols = append(cols, head...)
	cols = append(cols, figureColumns...)
	return append(cols, tail...)
}

var (
	monthlyColumns = withFigures([]string{"id", "restaurant_id", "month", "year"}, "created_at")
	weeklyColumns  = withFigures([]string{"id", "restaurant_id", "week_number", "year"}, "created_at")
)

// FinancialRepository stores monthly and weekly trading records.
type FinancialRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewFinancialRepository(db *pgxpool.Pool, logger *zap.Logger) *FinancialRepository {
	return &FinancialRepository{
		db:     db,
		logger: logger,
	}
}

func (r *FinancialRepository) CreateMonthly(ctx context.Context, m *models.MonthlyData) error {
	values := append([]interface{}{m.ID, m.RestaurantID, m.Month, m.Year}, figureValues(&m.Figures)...)
	values = append(values, m.CreatedAt)

	query := squirrel.Insert("monthly_data").
		Columns(monthlyColumns...).
		Values(values...).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert monthly data: %w", err)
	}
	return nil
}

// ListMonthly returns records oldest first, so the last element is the latest entry.
func (r *FinancialRepository) ListMonthly(ctx context.Context, restaurantID uuid.UUID) ([]*models.MonthlyData, error) {
	return r.listMonthly(ctx, squirrel.Eq{"restaurant_id": restaurantID})
}

// ListMonthlyForRestaurants loads the records of several locations in one query.
func (r *FinancialRepository) ListMonthlyForRestaurants(ctx context.Context, restaurantIDs []uuid.UUID) ([]*models.MonthlyData, error) {
	if len(restaurantIDs) == 0 {
		return []*models.MonthlyData{}, nil
	}
	return r.listMonthly(ctx, squirrel.Eq{"restaurant_id": restaurantIDs})
}

func (r *FinancialRepository) listMonthly(ctx context.Context, where squirrel.Eq) ([]*models.MonthlyData, error) {
	query := squirrel.Select(monthlyColumns...).
		From("monthly_data").
		Where(where).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query monthly data: %w", err)
	}
	defer rows.Close()

	records := []*models.MonthlyData{}
	for rows.Next() {
		var m models.MonthlyData
		dest := append([]interface{}{&m.ID, &m.RestaurantID, &m.Month, &m.Year}, figureDest(&m.Figures)...)
		dest = append(dest, &m.CreatedAt)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		records = append(records, &m)
	}

	return records, rows.Err()
}

func (r *FinancialRepository) CreateWeekly(ctx context.Context, w *models.WeeklyData) error {
	values := append([]interface{}{w.ID, w.RestaurantID, w.WeekNumber, w.Year}, figureValues(&w.Figures)...)
	values = append(values, w.CreatedAt)

	query := squirrel.Insert("weekly_data").
		Columns(weeklyColumns...).
		Values(values...).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert weekly data: %w", err)
	}
	return nil
}

func (r *FinancialRepository) ListWeekly(ctx context.Context, restaurantID uuid.UUID) ([]*models.WeeklyData, error) {
	query := squirrel.Select(weeklyColumns...).
		From("weekly_data").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("year ASC", "week_number ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query weekly data: %w", err)
	}
	defer rows.Close()

	records := []*models.WeeklyData{}
	for rows.Next() {
		var w models.WeeklyData
		dest := append([]interface{}{&w.ID, &w.RestaurantID, &w.WeekNumber, &w.Year}, figureDest(&w.Figures)...)
		dest = append(dest, &w.CreatedAt)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		records = append(records, &w)
	}

	return records, rows.Err()
}
