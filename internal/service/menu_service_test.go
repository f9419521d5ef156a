package service

import (
	"context"
	"errors"
	"testing"

	"restaurant-intel/internal/analytics"
	"restaurant-intel/internal/dto"

	"github.com/google/uuid"
)

func addIngredient(t *testing.T, f *fixture, rest uuid.UUID, name string, price float64) string {
	t.Helper()
	ing, err := f.menuSvc.AddIngredient(context.Background(), f.ownerOf(t, rest), rest, &dto.CreateIngredientRequest{
		Name: name, Unit: "kg", UnitPrice: price, Supplier: "Brakes",
	})
	if err != nil {
		t.Fatalf("AddIngredient: %v", err)
	}
	return ing.ID
}

func TestMenuServiceAddMenuItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	beef := addIngredient(t, f, f.rest, "Beef", 30)
	potato := addIngredient(t, f, f.rest, "Potatoes", 0.6)

	item, err := f.menuSvc.AddMenuItem(ctx, f.owner, f.rest, &dto.CreateMenuItemRequest{
		Name: "Steak Frites", SellingPrice: 30,
		Recipe: []dto.RecipeLineRequest{
			{IngredientID: beef, Quantity: 0.25},
			{IngredientID: potato, Quantity: 0.5},
		},
	})
	if err != nil {
		t.Fatalf("AddMenuItem: %v", err)
	}
	if item.ComputedCost == nil || !approx(*item.ComputedCost, 7.8) {
		t.Errorf("ComputedCost = %v, want 7.8", item.ComputedCost)
	}

	uncosted, err := f.menuSvc.AddMenuItem(ctx, f.owner, f.rest, &dto.CreateMenuItemRequest{Name: "Bread", SellingPrice: 3})
	if err != nil {
		t.Fatalf("AddMenuItem without recipe: %v", err)
	}
	if uncosted.ComputedCost != nil {
		t.Errorf("ComputedCost = %v, want nil", *uncosted.ComputedCost)
	}
}

func TestMenuServiceRejectsForeignIngredient(t *testing.T) {
	f := newFixture(t)
	other := f.addRestaurant(t, f.owner, "York", nil)
	foreign := addIngredient(t, f, other, "Lobster", 40)

	_, err := f.menuSvc.AddMenuItem(context.Background(), f.owner, f.rest, &dto.CreateMenuItemRequest{
		Name: "Thermidor", SellingPrice: 45,
		Recipe: []dto.RecipeLineRequest{{IngredientID: foreign, Quantity: 0.5}},
	})
	if !errors.Is(err, ErrUnknownIngredient) {
		t.Errorf("err = %v, want ErrUnknownIngredient", err)
	}

	items, _ := f.menuStore.ListMenuItems(context.Background(), f.rest)
	if len(items) != 0 {
		t.Errorf("menu item stored despite rejection")
	}
}

func TestMenuServiceEngineer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	beef := addIngredient(t, f, f.rest, "Beef", 30)

	add := func(name string, price, qty float64) uuid.UUID {
		item, err := f.menuSvc.AddMenuItem(ctx, f.owner, f.rest, &dto.CreateMenuItemRequest{
			Name: name, SellingPrice: price,
			Recipe: []dto.RecipeLineRequest{{IngredientID: beef, Quantity: qty}},
		})
		if err != nil {
			t.Fatalf("AddMenuItem %s: %v", name, err)
		}
		return item.ID
	}
	steak := add("Steak", 30, 0.3)    // 70% GP
	burger := add("Burger", 15, 0.25) // 50% GP
	if _, err := f.menuSvc.AddMenuItem(ctx, f.owner, f.rest, &dto.CreateMenuItemRequest{Name: "Soup", SellingPrice: 6}); err != nil {
		t.Fatalf("AddMenuItem Soup: %v", err)
	}

	flat, err := f.menuSvc.Engineer(ctx, f.owner, f.rest, nil)
	if err != nil {
		t.Fatalf("Engineer: %v", err)
	}
	if flat.PopularitySource != PopularityFlat {
		t.Errorf("source = %s, want flat", flat.PopularitySource)
	}
	want := map[analytics.Category]int{
		analytics.CategoryStar:        1,
		analytics.CategoryPloughHorse: 1,
		analytics.CategoryPuzzle:      0,
		analytics.CategoryDog:         0,
		analytics.CategoryUncosted:    1,
	}
	for cat, n := range want {
		if flat.Counts[cat] != n {
			t.Errorf("flat %s = %d, want %d", cat, flat.Counts[cat], n)
		}
	}

	sales, err := f.menuSvc.Engineer(ctx, f.owner, f.rest, &dto.MenuEngineeringRequest{
		Sales: []dto.UnitSalesRequest{
			{MenuItemID: steak.String(), Units: 50},
			{MenuItemID: burger.String(), Units: 400},
		},
	})
	if err != nil {
		t.Fatalf("Engineer with sales: %v", err)
	}
	if sales.PopularitySource != PopularitySales {
		t.Errorf("source = %s, want sales", sales.PopularitySource)
	}
	got := make(map[uuid.UUID]analytics.Category)
	for _, ci := range sales.Items {
		got[ci.Item.ID] = ci.Category
	}
	if got[steak] != analytics.CategoryPuzzle {
		t.Errorf("Steak = %s, want puzzle", got[steak])
	}
	if got[burger] != analytics.CategoryPloughHorse {
		t.Errorf("Burger = %s, want plough-horse", got[burger])
	}

	_, err = f.menuSvc.Engineer(ctx, f.owner, f.rest, &dto.MenuEngineeringRequest{
		Sales: []dto.UnitSalesRequest{{MenuItemID: "nope", Units: 1}},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad sale id err = %v, want ErrInvalidInput", err)
	}
}

func TestMenuServiceEngineerSkipsInactiveItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	beef := addIngredient(t, f, f.rest, "Beef", 30)
	recipe := []dto.RecipeLineRequest{{IngredientID: beef, Quantity: 0.3}}
	off := false

	live, err := f.menuSvc.AddMenuItem(ctx, f.owner, f.rest, &dto.CreateMenuItemRequest{Name: "Steak", SellingPrice: 30, Recipe: recipe})
	if err != nil {
		t.Fatalf("AddMenuItem: %v", err)
	}
	if _, err := f.menuSvc.AddMenuItem(ctx, f.owner, f.rest, &dto.CreateMenuItemRequest{Name: "Winter Stew", SellingPrice: 14, IsActive: &off, Recipe: recipe}); err != nil {
		t.Fatalf("AddMenuItem inactive: %v", err)
	}

	names := func() []string {
		t.Helper()
		resp, err := f.menuSvc.Engineer(ctx, f.owner, f.rest, nil)
		if err != nil {
			t.Fatalf("Engineer: %v", err)
		}
		var out []string
		for _, ci := range resp.Items {
			out = append(out, ci.Item.Name)
		}
		return out
	}

	if got := names(); len(got) != 1 || got[0] != "Steak" {
		t.Fatalf("classified %v, want only Steak", got)
	}

	if err := f.menuSvc.SetMenuItemActive(ctx, f.owner, f.rest, live.ID, false); err != nil {
		t.Fatalf("SetMenuItemActive: %v", err)
	}
	if got := names(); len(got) != 0 {
		t.Errorf("classified %v after deactivating, want none", got)
	}

	if err := f.menuSvc.SetMenuItemActive(ctx, f.owner, f.rest, uuid.New(), true); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("unknown item err = %v, want ErrRecordNotFound", err)
	}
	other := f.addRestaurant(t, f.owner, "York", nil)
	if err := f.menuSvc.SetMenuItemActive(ctx, f.owner, other, live.ID, true); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("item of another restaurant err = %v, want ErrRecordNotFound", err)
	}
}
