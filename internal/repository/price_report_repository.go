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

var priceReportColumns = []string{
	"id", "restaurant_id", "franchise_group_id", "ingredient_name", "supplier_name",
	"unit_price", "unit", "month", "year", "reported_at",
}

type PriceReportRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPriceReportRepository(db *pgxpool.Pool, logger *zap.Logger) *PriceReportRepository {
	return &PriceReportRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PriceReportRepository) Create(ctx context.Context, rep *models.SupplierPriceReport) error {
	query := squirrel.Insert("supplier_price_reports").
		Columns(priceReportColumns...).
		Values(rep.ID, rep.RestaurantID, rep.FranchiseGroupID, rep.IngredientName, rep.SupplierName,
			rep.UnitPrice, rep.Unit, rep.Month, rep.Year, rep.ReportedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert price report: %w", err)
	}
	return nil
}

func (r *PriceReportRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*models.SupplierPriceReport, error) {
	return r.list(ctx, squirrel.Eq{"restaurant_id": restaurantID})
}

func (r *PriceReportRepository) ListByFranchiseGroup(ctx context.Context, groupID uuid.UUID) ([]*models.SupplierPriceReport, error) {
	return r.list(ctx, squirrel.Eq{"franchise_group_id": groupID})
}

func (r *PriceReportRepository) list(ctx context.Context, where squirrel.Eq) ([]*models.SupplierPriceReport, error) {
	query := squirrel.Select(priceReportColumns...).
		From("supplier_price_reports").
		Where(where).
		OrderBy("reported_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query price reports: %w", err)
	}
	defer rows.Close()

	reports := []*models.SupplierPriceReport{}
	for rows.Next() {
		var rep models.SupplierPriceReport
		if err := rows.Scan(
			&rep.ID, &rep.RestaurantID, &rep.FranchiseGroupID, &rep.IngredientName, &rep.SupplierName,
			&rep.UnitPrice, &rep.Unit, &rep.Month, &rep.Year, &rep.ReportedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, &rep)
	}

	return reports, rows.Err()
}
