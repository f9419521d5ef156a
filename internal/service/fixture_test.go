package service

import (
	"context"
	"testing"
	"time"

	"restaurant-intel/internal/analytics"
	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/models"
	"restaurant-intel/internal/service/servicetest"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fixture struct {
	restaurants *servicetest.Restaurants
	financials  *servicetest.Financials
	menuStore   *servicetest.Menu
	prices      *servicetest.PriceReports
	approved    *servicetest.ApprovedSuppliers
	wasteStore  *servicetest.Waste

	restSvc      *RestaurantService
	financialSvc *FinancialService
	insightSvc   *InsightService
	menuSvc      *MenuService
	supplierSvc  *SupplierService
	wasteSvc     *WasteService

	owner uuid.UUID
	rest  uuid.UUID
	group uuid.UUID
}

// newFixture wires every service over in-memory stores and registers one
// restaurant in a franchise group for a fresh owner.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zap.NewNop()
	bench := analytics.UKBenchmarks()

	f := &fixture{
		restaurants: servicetest.NewRestaurants(),
		financials:  servicetest.NewFinancials(),
		menuStore:   servicetest.NewMenu(),
		prices:      servicetest.NewPriceReports(),
		approved:    servicetest.NewApprovedSuppliers(),
		wasteStore:  servicetest.NewWaste(),
		owner:       uuid.New(),
		group:       uuid.New(),
	}
	f.restSvc = NewRestaurantService(f.restaurants, log)
	f.financialSvc = NewFinancialService(f.restSvc, f.financials, log)
	f.insightSvc = NewInsightService(f.restSvc, f.financials, analytics.NewEngine(bench), log)
	f.menuSvc = NewMenuService(f.restSvc, f.menuStore, bench, log)
	f.supplierSvc = NewSupplierService(f.restSvc, f.restSvc, f.prices, f.approved, f.financials, log)
	f.wasteSvc = NewWasteService(f.restSvc, f.wasteStore, f.financials, log)

	f.rest = f.addRestaurant(t, f.owner, "Leeds", &f.group)
	return f
}

func (f *fixture) addRestaurant(t *testing.T, owner uuid.UUID, name string, group *uuid.UUID) uuid.UUID {
	t.Helper()
	req := &dto.CreateRestaurantRequest{Name: name}
	if group != nil {
		req.FranchiseGroupID = group.String()
	}
	resp, err := f.restSvc.Create(context.Background(), owner, req)
	if err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	id, err := uuid.Parse(resp.ID)
	if err != nil {
		t.Fatalf("restaurant id: %v", err)
	}
	return id
}

func (f *fixture) addMonth(t *testing.T, rest uuid.UUID, month string, year int, in dto.FiguresInput) {
	t.Helper()
	_, err := f.financialSvc.AddMonthly(context.Background(), f.ownerOf(t, rest), rest, &dto.CreateMonthlyDataRequest{
		Month:        month,
		Year:         year,
		FiguresInput: in,
	})
	if err != nil {
		t.Fatalf("add %s %d: %v", month, year, err)
	}
}

func (f *fixture) ownerOf(t *testing.T, rest uuid.UUID) uuid.UUID {
	t.Helper()
	r, err := f.restaurants.GetByID(context.Background(), rest)
	if err != nil {
		t.Fatalf("lookup restaurant: %v", err)
	}
	return r.OwnerID
}

// seedPrice stores a report directly so tests control ReportedAt.
func (f *fixture) seedPrice(t *testing.T, rest uuid.UUID, ingredient, supplier string, price float64, at time.Time) {
	t.Helper()
	err := f.prices.Create(context.Background(), &models.SupplierPriceReport{
		ID:               uuid.New(),
		RestaurantID:     rest,
		FranchiseGroupID: f.group,
		IngredientName:   ingredient,
		SupplierName:     supplier,
		UnitPrice:        price,
		Unit:             "kg",
		Month:            int(at.Month()),
		Year:             at.Year(),
		ReportedAt:       at,
	})
	if err != nil {
		t.Fatalf("seed price: %v", err)
	}
}

// workedExample gives fixed+other 6000 and variable 3000 over 400 covers at 25.
func workedExample() dto.FiguresInput {
	return dto.FiguresInput{
		Revenue:       10000,
		RentCost:      3000,
		LabourCost:    5000,
		FoodCost:      1000,
		TotalCovers:   400,
		AvgTicketSize: 25,
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
