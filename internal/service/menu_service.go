package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-intel/internal/analytics"
	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/models"
	"restaurant-intel/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MenuStore interface {
	CreateIngredient(ctx context.Context, ing *models.Ingredient) error
	ListIngredients(ctx context.Context, restaurantID uuid.UUID) ([]*models.Ingredient, error)
	CreateMenuItem(ctx context.Context, item *models.MenuItem, recipe []*models.MenuItemIngredient) error
	ListMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]*models.MenuItem, error)
	SetMenuItemActive(ctx context.Context, restaurantID, itemID uuid.UUID, active bool) error
	ListRecipeLines(ctx context.Context, restaurantID uuid.UUID) ([]*models.MenuItemIngredient, error)
}

const (
	PopularityFlat  = "flat"
	PopularitySales = "sales"
)

type MenuService struct {
	access Authorizer
	repo   MenuStore
	bench  analytics.Benchmarks
	logger *zap.Logger
}

func NewMenuService(access Authorizer, repo MenuStore, bench analytics.Benchmarks, logger *zap.Logger) *MenuService {
	return &MenuService{
		access: access,
		repo:   repo,
		bench:  bench,
		logger: logger,
	}
}

func (s *MenuService) AddIngredient(ctx context.Context, ownerID, restaurantID uuid.UUID, req *dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if _, err := s.access.Authorize(ctx, ownerID, restaurantID); err != nil {
		return nil, err
	}

	ing := &models.Ingredient{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Name:         sanitizeUTF8(strings.TrimSpace(req.Name)),
		Unit:         req.Unit,
		UnitPrice:    req.UnitPrice,
		Supplier:     sanitizeUTF8(req.Supplier),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.CreateIngredient(ctx, ing); err != nil {
		return nil, err
	}
	return &dto.IngredientResponse{
		ID:        ing.ID.String(),
		Name:      ing.Name,
		Unit:      ing.Unit,
		UnitPrice: ing.UnitPrice,
		Supplier:  ing.Supplier,
	}, nil
}

func (s *MenuService) ListIngredients(ctx context.Context, ownerID, restaurantID uuid.UUID) ([]dto.IngredientResponse, error) {
	if _, err := s.access.Authorize(ctx, ownerID, restaurantID); err != nil {
		return nil, err
	}
	ings, err := s.repo.ListIngredients(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngredientResponse, 0, len(ings))
	for _, ing := range ings {
		out = append(out, dto.IngredientResponse{
			ID:        ing.ID.String(),
			Name:      ing.Name,
			Unit:      ing.Unit,
			UnitPrice: ing.UnitPrice,
			Supplier:  ing.Supplier,
		})
	}
	return out, nil
}

// AddMenuItem stores a dish and its recipe. Every recipe line must reference
// an ingredient of the same restaurant.
func (s *MenuService) AddMenuItem(ctx context.Context, ownerID, restaurantID uuid.UUID, req *dto.CreateMenuItemRequest) (*analytics.MenuItem, error) {
	if _, err := s.access.Authorize(ctx, ownerID, restaurantID); err != nil {
		return nil, err
	}

	ings, err := s.repo.ListIngredients(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	prices := make(map[uuid.UUID]float64, len(ings))
	for _, ing := range ings {
		prices[ing.ID] = ing.UnitPrice
	}

	item := &models.MenuItem{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Name:         sanitizeUTF8(strings.TrimSpace(req.Name)),
		Category:     sanitizeUTF8(req.Category),
		SellingPrice: req.SellingPrice,
		IsActive:     req.IsActive == nil || *req.IsActive,
		CreatedAt:    time.Now().UTC(),
	}

	recipe := make([]*models.MenuItemIngredient, 0, len(req.Recipe))
	lines := make([]analytics.RecipeLine, 0, len(req.Recipe))
	for _, rl := range req.Recipe {
		ingID, err := uuid.Parse(rl.IngredientID)
		if err != nil {
			return nil, fmt.Errorf("%w: ingredientId %q", ErrInvalidInput, rl.IngredientID)
		}
		price, ok := prices[ingID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownIngredient, ingID)
		}
		recipe = append(recipe, &models.MenuItemIngredient{
			ID:           uuid.New(),
			MenuItemID:   item.ID,
			IngredientID: ingID,
			Quantity:     rl.Quantity,
			UnitPrice:    price,
		})
		lines = append(lines, analytics.RecipeLine{IngredientID: ingID, Quantity: rl.Quantity, UnitPrice: price})
	}

	if err := s.repo.CreateMenuItem(ctx, item, recipe); err != nil {
		return nil, err
	}

	s.logger.Info("Menu item created",
		zap.String("restaurant_id", restaurantID.String()),
		zap.String("menu_item_id", item.ID.String()),
		zap.Int("recipe_lines", len(recipe)),
	)
	return &analytics.MenuItem{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category,
		SellingPrice: item.SellingPrice,
		ComputedCost: analytics.RecipeCost(lines),
	}, nil
}

// SetMenuItemActive takes a dish on or off the live menu. Inactive dishes stay
// stored but are left out of menu engineering.
func (s *MenuService) SetMenuItemActive(ctx context.Context, ownerID, restaurantID, itemID uuid.UUID, active bool) error {
	if _, err := s.access.Authorize(ctx, ownerID, restaurantID); err != nil {
		return err
	}
	if err := s.repo.SetMenuItemActive(ctx, restaurantID, itemID, active); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: menu item %s", ErrRecordNotFound, itemID)
		}
		return err
	}
	s.logger.Info("Menu item availability changed",
		zap.String("restaurant_id", restaurantID.String()),
		zap.String("menu_item_id", itemID.String()),
		zap.Bool("active", active),
	)
	return nil
}

// Engineer classifies the menu. With sales the popularity axis uses unit
// share, otherwise every dish counts as popular.
func (s *MenuService) Engineer(ctx context.Context, ownerID, restaurantID uuid.UUID, req *dto.MenuEngineeringRequest) (*dto.MenuEngineeringResponse, error) {
	if _, err := s.access.Authorize(ctx, ownerID, restaurantID); err != nil {
		return nil, err
	}

	items, err := s.costedItems(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	var pop analytics.PopularityProvider = analytics.FlatPopularity{}
	source := PopularityFlat
	if req != nil && len(req.Sales) > 0 {
		units := make(map[uuid.UUID]float64, len(req.Sales))
		for _, sale := range req.Sales {
			id, err := uuid.Parse(sale.MenuItemID)
			if err != nil {
				return nil, fmt.Errorf("%w: menuItemId %q", ErrInvalidInput, sale.MenuItemID)
			}
			units[id] += sale.Units
		}
		pop = analytics.SalesVolume{Units: units, Factor: s.bench.PopularityFactor}
		source = PopularitySales
	}

	classified := analytics.ClassifyMenu(items, pop, s.bench)
	parts := analytics.Partition(classified)
	counts := make(map[analytics.Category]int, len(analytics.Categories))
	for _, c := range analytics.Categories {
		counts[c] = len(parts[c])
	}

	return &dto.MenuEngineeringResponse{
		Items:            classified,
		Categories:       parts,
		Counts:           counts,
		PopularitySource: source,
	}, nil
}

func (s *MenuService) costedItems(ctx context.Context, restaurantID uuid.UUID) ([]analytics.MenuItem, error) {
	dishes, err := s.repo.ListMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	recipeLines, err := s.repo.ListRecipeLines(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	byItem := make(map[uuid.UUID][]analytics.RecipeLine)
	for _, l := range recipeLines {
		byItem[l.MenuItemID] = append(byItem[l.MenuItemID], analytics.RecipeLine{
			IngredientID: l.IngredientID,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
		})
	}

	items := make([]analytics.MenuItem, 0, len(dishes))
	for _, d := range dishes {
		if !d.IsActive {
			continue
		}
		items = append(items, analytics.MenuItem{
			ID:           d.ID,
			Name:         d.Name,
			Category:     d.Category,
			SellingPrice: d.SellingPrice,
			ComputedCost: analytics.RecipeCost(byItem[d.ID]),
		})
	}
	return items, nil
}
