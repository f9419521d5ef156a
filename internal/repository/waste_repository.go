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

var wasteColumns = []string{
	"id", "restaurant_id", "item_name", "quantity", "unit", "cost_per_unit", "total_cost", "reason", "date", "created_at",
}

type WasteRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewWasteRepository(db *pgxpool.Pool, logger *zap.Logger) *WasteRepository {
	return &WasteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *WasteRepository) Create(ctx context.Context, w *models.WasteLog) error {
	query := squirrel.Insert("waste_logs").
		Columns(wasteColumns...).
		Values(w.ID, w.RestaurantID, w.ItemName, w.Quantity, w.Unit, w.CostPerUnit, w.TotalCost, w.Reason, w.Date, w.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert waste log: %w", err)
	}
	return nil
}

func (r *WasteRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*models.WasteLog, error) {
	query := squirrel.Select(wasteColumns...).
		From("waste_logs").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query waste logs: %w", err)
	}
	defer rows.Close()

	logs := []*models.WasteLog{}
	for rows.Next() {
		var w models.WasteLog
		if err := rows.Scan(
			&w.ID, &w.RestaurantID, &w.ItemName, &w.Quantity, &w.Unit, &w.CostPerUnit, &w.TotalCost, &w.Reason, &w.Date, &w.CreatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, &w)
	}

	return logs, rows.Err()
}
