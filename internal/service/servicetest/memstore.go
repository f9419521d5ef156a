// Package servicetest provides in-memory stores for exercising services and
// handlers without a database.
package servicetest

import (
	"context"
	"sort"
	"sync"

	"restaurant-intel/internal/models"
	"restaurant-intel/internal/repository"

	"github.com/google/uuid"
)

// Users is an in-memory service.UserStore.
type Users struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*models.User
	Err  error
}

func NewUsers() *Users {
	return &Users{byID: make(map[uuid.UUID]*models.User)}
}

func (s *Users) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	cp := *user
	s.byID[user.ID] = &cp
	return nil
}

func (s *Users) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Users) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	u, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// Restaurants is an in-memory service.RestaurantStore keeping insertion order.
type Restaurants struct {
	mu    sync.Mutex
	items []*models.Restaurant
	Err   error
}

func NewRestaurants() *Restaurants {
	return &Restaurants{}
}

func (s *Restaurants) Create(_ context.Context, rest *models.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	cp := *rest
	s.items = append(s.items, &cp)
	return nil
}

func (s *Restaurants) GetByID(_ context.Context, id uuid.UUID) (*models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, r := range s.items {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Restaurants) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*models.Restaurant, error) {
	return s.filter(func(r *models.Restaurant) bool { return r.OwnerID == ownerID })
}

func (s *Restaurants) ListByFranchiseGroup(_ context.Context, groupID uuid.UUID) ([]*models.Restaurant, error) {
	return s.filter(func(r *models.Restaurant) bool {
		return r.FranchiseGroupID != nil && *r.FranchiseGroupID == groupID
	})
}

func (s *Restaurants) filter(keep func(*models.Restaurant) bool) ([]*models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []*models.Restaurant
	for _, r := range s.items {
		if keep(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Financials is an in-memory service.FinancialStore. Lists come back in
// insertion order, matching created_at ordering in Postgres.
type Financials struct {
	mu      sync.Mutex
	monthly []*models.MonthlyData
	weekly  []*models.WeeklyData
	Err     error
}

func NewFinancials() *Financials {
	return &Financials{}
}

func (s *Financials) CreateMonthly(_ context.Context, m *models.MonthlyData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	cp := *m
	s.monthly = append(s.monthly, &cp)
	return nil
}

func (s *Financials) ListMonthly(ctx context.Context, restaurantID uuid.UUID) ([]*models.MonthlyData, error) {
	return s.ListMonthlyForRestaurants(ctx, []uuid.UUID{restaurantID})
}

func (s *Financials) ListMonthlyForRestaurants(_ context.Context, restaurantIDs []uuid.UUID) ([]*models.MonthlyData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	want := make(map[uuid.UUID]bool, len(restaurantIDs))
	for _, id := range restaurantIDs {
		want[id] = true
	}
	var out []*models.MonthlyData
	for _, m := range s.monthly {
		if want[m.RestaurantID] {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *Financials) CreateWeekly(_ context.Context, w *models.WeeklyData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	cp := *w
	s.weekly = append(s.weekly, &cp)
	return nil
}

func (s *Financials) ListWeekly(_ context.Context, restaurantID uuid.UUID) ([]*models.WeeklyData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []*models.WeeklyData
	for _, w := range s.weekly {
		if w.RestaurantID == restaurantID {
			cp := *w
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].WeekNumber < out[j].WeekNumber
	})
	return out, nil
}

// Menu is an in-memory service.MenuStore.
type Menu struct {
	mu          sync.Mutex
	ingredients []*models.Ingredient
	items       []*models.MenuItem
	recipe      []*models.MenuItemIngredient
	Err         error
}

func NewMenu() *Menu {
	return &Menu{}
}

func (s *Menu) CreateIngredient(_ context.Context, ing *models.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	cp := *ing
	s.ingredients = append(s.ingredients, &cp)
	return nil
}

func (s *Menu) ListIngredients(_ context.Context, restaurantID uuid.UUID) ([]*models.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []*models.Ingredient
	for _, ing := range s.ingredients {
		if ing.RestaurantID == restaurantID {
			cp := *ing
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *Menu) CreateMenuItem(_ context.Context, item *models.MenuItem, recipe []*models.MenuItemIngredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	cp := *item
	s.items = append(s.items, &cp)
	for _, l := range recipe {
		lc := *l
		s.recipe = append(s.recipe, &lc)
	}
	return nil
}

func (s *Menu) ListMenuItems(_ context.Context, restaurantID uuid.UUID) ([]*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []*models.MenuItem
	for _, it := range s.items {
		if it.RestaurantID == restaurantID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *Menu) SetMenuItemActive(_ context.Context, restaurantID, itemID uuid.UUID, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, it := range s.items {
		if it.ID == itemID && it.RestaurantID == restaurantID {
			it.IsActive = active
			return nil
		}
	}
	return repository.ErrNotFound
}

// ListRecipeLines joins the current ingredient price, as the SQL query does.
func (s *Menu) ListRecipeLines(_ context.Context, restaurantID uuid.UUID) ([]*models.MenuItemIngredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	owned := make(map[uuid.UUID]bool)
	for _, it := range s.items {
		if it.RestaurantID == restaurantID {
			owned[it.ID] = true
		}
	}
	prices := make(map[uuid.UUID]float64)
	for _, ing := range s.ingredients {
		prices[ing.ID] = ing.UnitPrice
	}
	var out []*models.MenuItemIngredient
	for _, l := range s.recipe {
		if owned[l.MenuItemID] {
			cp := *l
			cp.UnitPrice = prices[l.IngredientID]
			out = append(out, &cp)
		}
	}
	return out, nil
}

// PriceReports is an in-memory service.PriceReportStore; lists are newest first.
type PriceReports struct {
	mu    sync.Mutex
	items []*models.SupplierPriceReport
	Err   error
}

func NewPriceReports() *PriceReports {
	return &PriceReports{}
}

func (s *PriceReports) Create(_ context.Context, rep *models.SupplierPriceReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	cp := *rep
	s.items = append(s.items, &cp)
	return nil
}

func (s *PriceReports) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]*models.SupplierPriceReport, error) {
	return s.filter(func(r *models.SupplierPriceReport) bool { return r.RestaurantID == restaurantID })
}

func (s *PriceReports) ListByFranchiseGroup(_ context.Context, groupID uuid.UUID) ([]*models.SupplierPriceReport, error) {
	return s.filter(func(r *models.SupplierPriceReport) bool { return r.FranchiseGroupID == groupID })
}

func (s *PriceReports) filter(keep func(*models.SupplierPriceReport) bool) ([]*models.SupplierPriceReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []*models.SupplierPriceReport
	for _, r := range s.items {
		if keep(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ReportedAt.After(out[j].ReportedAt) })
	return out, nil
}

// ApprovedSuppliers is an in-memory service.ApprovedSupplierStore.
type ApprovedSuppliers struct {
	mu    sync.Mutex
	items []*models.ApprovedSupplier
	Err   error
}

func NewApprovedSuppliers() *ApprovedSuppliers {
	return &ApprovedSuppliers{}
}

func (s *ApprovedSuppliers) Create(_ context.Context, sup *models.ApprovedSupplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	cp := *sup
	s.items = append(s.items, &cp)
	return nil
}

// ListByFranchiseGroup orders required suppliers first, then by name.
func (s *ApprovedSuppliers) ListByFranchiseGroup(_ context.Context, groupID uuid.UUID) ([]*models.ApprovedSupplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []*models.ApprovedSupplier{}
	for _, sup := range s.items {
		if sup.FranchiseGroupID == groupID {
			cp := *sup
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsRequired != out[j].IsRequired {
			return out[i].IsRequired
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *ApprovedSuppliers) Delete(_ context.Context, groupID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for i, sup := range s.items {
		if sup.ID == id && sup.FranchiseGroupID == groupID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// Waste is an in-memory service.WasteStore.
type Waste struct {
	mu    sync.Mutex
	items []*models.WasteLog
	Err   error
}

func NewWaste() *Waste {
	return &Waste{}
}

func (s *Waste) Create(_ context.Context, w *models.WasteLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	cp := *w
	s.items = append(s.items, &cp)
	return nil
}

func (s *Waste) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]*models.WasteLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []*models.WasteLog
	for _, w := range s.items {
		if w.RestaurantID == restaurantID {
			cp := *w
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
