package repository

import (
	"context"
	"fmt"

	"restaurant-intel/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var restaurantColumns = []string{"id", "owner_id", "name", "cuisine_type", "location", "franchise_group_id", "created_at"}

type RestaurantRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRestaurantRepository(db *pgxpool.Pool, logger *zap.Logger) *RestaurantRepository {
	return &RestaurantRepository{
		db:     db,
		logger: logger,
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *models.Restaurant) error {
	query := squirrel.Insert("restaurants").
		Columns(restaurantColumns...).
		Values(rest.ID, rest.OwnerID, rest.Name, rest.CuisineType, rest.Location, rest.FranchiseGroupID, rest.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	query := squirrel.Select(restaurantColumns...).
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rest, err := scanRestaurant(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return rest, nil
}

func (r *RestaurantRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Restaurant, error) {
	return r.list(ctx, squirrel.Eq{"owner_id": ownerID})
}

func (r *RestaurantRepository) ListByFranchiseGroup(ctx context.Context, groupID uuid.UUID) ([]*models.Restaurant, error) {
	return r.list(ctx, squirrel.Eq{"franchise_group_id": groupID})
}

func (r *RestaurantRepository) list(ctx context.Context, where squirrel.Eq) ([]*models.Restaurant, error) {
	query := squirrel.Select(restaurantColumns...).
		From("restaurants").
		Where(where).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := []*models.Restaurant{}
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, rows.Err()
}

func scanRestaurant(row pgx.Row) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := row.Scan(
		&rest.ID, &rest.OwnerID, &rest.Name, &rest.CuisineType, &rest.Location, &rest.FranchiseGroupID, &rest.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rest, nil
}
