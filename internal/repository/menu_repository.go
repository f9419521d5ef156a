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

var (
	ingredientColumns = []string{"id", "restaurant_id", "name", "unit", "unit_price", "supplier", "created_at"}
	menuItemColumns   = []string{"id", "restaurant_id", "name", "category", "selling_price", "is_active", "created_at"}
)

// MenuRepository stores ingredients, menu items and the recipe lines linking them.
type MenuRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewMenuRepository(db *pgxpool.Pool, logger *zap.Logger) *MenuRepository {
	return &MenuRepository{
		db:     db,
		logger: logger,
	}
}

func (r *MenuRepository) CreateIngredient(ctx context.Context, ing *models.Ingredient) error {
	query := squirrel.Insert("ingredients").
		Columns(ingredientColumns...).
		Values(ing.ID, ing.RestaurantID, ing.Name, ing.Unit, ing.UnitPrice, ing.Supplier, ing.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

func (r *MenuRepository) ListIngredients(ctx context.Context, restaurantID uuid.UUID) ([]*models.Ingredient, error) {
	query := squirrel.Select(ingredientColumns...).
		From("ingredients").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := []*models.Ingredient{}
	for rows.Next() {
		var ing models.Ingredient
		if err := rows.Scan(
			&ing.ID, &ing.RestaurantID, &ing.Name, &ing.Unit, &ing.UnitPrice, &ing.Supplier, &ing.CreatedAt,
		); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, &ing)
	}

	return ingredients, rows.Err()
}

// CreateMenuItem inserts the item and its recipe in one transaction.
func (r *MenuRepository) CreateMenuItem(ctx context.Context, item *models.MenuItem, recipe []*models.MenuItemIngredient) error {
	itemQuery := squirrel.Insert("menu_items").
		Columns(menuItemColumns...).
		Values(item.ID, item.RestaurantID, item.Name, item.Category, item.SellingPrice, item.IsActive, item.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	itemSQL, itemArgs, err := itemQuery.ToSql()
	if err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, itemSQL, itemArgs...); err != nil {
			return fmt.Errorf("insert menu item: %w", err)
		}
		if len(recipe) == 0 {
			return nil
		}

		builder := squirrel.Insert("menu_item_ingredients").
			Columns("id", "menu_item_id", "ingredient_id", "quantity").
			PlaceholderFormat(squirrel.Dollar)
		for _, line := range recipe {
			builder = builder.Values(line.ID, item.ID, line.IngredientID, line.Quantity)
		}

		sql, args, err := builder.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert recipe lines: %w", err)
		}
		return nil
	})
}

func (r *MenuRepository) ListMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]*models.MenuItem, error) {
	query := squirrel.Select(menuItemColumns...).
		From("menu_items").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	items := []*models.MenuItem{}
	for rows.Next() {
		var it models.MenuItem
		if err := rows.Scan(
			&it.ID, &it.RestaurantID, &it.Name, &it.Category, &it.SellingPrice, &it.IsActive, &it.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}

	return items, rows.Err()
}

// SetMenuItemActive toggles whether a dish is on the live menu.
func (r *MenuRepository) SetMenuItemActive(ctx context.Context, restaurantID, itemID uuid.UUID, active bool) error {
	query := squirrel.Update("menu_items").
		Set("is_active", active).
		Where(squirrel.Eq{"id": itemID, "restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRecipeLines returns every recipe line of the restaurant's menu with the
// current ingredient unit price.
func (r *MenuRepository) ListRecipeLines(ctx context.Context, restaurantID uuid.UUID) ([]*models.MenuItemIngredient, error) {
	query := squirrel.Select("mii.id", "mii.menu_item_id", "mii.ingredient_id", "mii.quantity", "i.unit_price").
		From("menu_item_ingredients mii").
		Join("menu_items m ON m.id = mii.menu_item_id").
		Join("ingredients i ON i.id = mii.ingredient_id").
		Where(squirrel.Eq{"m.restaurant_id": restaurantID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query recipe lines: %w", err)
	}
	defer rows.Close()

	lines := []*models.MenuItemIngredient{}
	for rows.Next() {
		var l models.MenuItemIngredient
		if err := rows.Scan(&l.ID, &l.MenuItemID, &l.IngredientID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, err
		}
		lines = append(lines, &l)
	}

	return lines, rows.Err()
}
