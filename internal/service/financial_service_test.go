package service

import (
	"context"
	"errors"
	"testing"

	"restaurant-intel/internal/dto"

	"github.com/google/uuid"
)

func TestFinancialServiceAddMonthly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.financialSvc.AddMonthly(ctx, f.owner, f.rest, &dto.CreateMonthlyDataRequest{
		Month:        "march",
		Year:         2024,
		FiguresInput: dto.FiguresInput{Revenue: 12000, FoodCost: 3600},
	})
	if err != nil {
		t.Fatalf("AddMonthly: %v", err)
	}
	if resp.Month != "March" || resp.Revenue != 12000 || resp.RestaurantID != f.rest.String() {
		t.Errorf("resp = %+v", resp)
	}

	_, err = f.financialSvc.AddMonthly(ctx, f.owner, f.rest, &dto.CreateMonthlyDataRequest{Month: "Marchember", Year: 2024})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown month err = %v, want ErrInvalidInput", err)
	}

	_, err = f.financialSvc.AddMonthly(ctx, uuid.New(), f.rest, &dto.CreateMonthlyDataRequest{Month: "April", Year: 2024})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign owner err = %v, want ErrForbidden", err)
	}

	list, err := f.financialSvc.ListMonthly(ctx, f.owner, f.rest)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListMonthly = %v, %v", list, err)
	}
}

func TestFinancialServiceCompareQuarter(t *testing.T) {
	f := newFixture(t)
	for _, m := range []struct {
		month   string
		year    int
		revenue float64
	}{
		{"January", 2024, 10000},
		{"February", 2024, 11000},
		{"October", 2023, 9000},
		{"January", 2023, 8000},
	} {
		f.addMonth(t, f.rest, m.month, m.year, dto.FiguresInput{Revenue: m.revenue, FoodCost: m.revenue * 0.3})
	}

	cmp, err := f.financialSvc.CompareQuarter(context.Background(), f.owner, f.rest, 1, 2024)
	if err != nil {
		t.Fatalf("CompareQuarter: %v", err)
	}
	if cmp.Current.Data == nil || cmp.Current.Data.Revenue != 21000 {
		t.Errorf("current = %+v", cmp.Current.Data)
	}
	if cmp.Previous.Year != 2023 || cmp.Previous.Quarter != 4 || cmp.Previous.Data.Revenue != 9000 {
		t.Errorf("previous = %+v", cmp.Previous)
	}
	if got := cmp.VsLastYear["revenue"]; got == nil || !approx(*got, 162.5) {
		t.Errorf("vsLastYear revenue = %v, want 162.5", got)
	}
}

func TestFinancialServiceComparisonBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{name: "quarter 0", call: func() error { _, err := f.financialSvc.CompareQuarter(ctx, f.owner, f.rest, 0, 2024); return err }},
		{name: "quarter 5", call: func() error { _, err := f.financialSvc.CompareQuarter(ctx, f.owner, f.rest, 5, 2024); return err }},
		{name: "half 3", call: func() error { _, err := f.financialSvc.CompareHalf(ctx, f.owner, f.rest, 3, 2024); return err }},
		{name: "week 54", call: func() error { _, err := f.financialSvc.CompareWeek(ctx, f.owner, f.rest, 54, 2024); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestFinancialServiceWeekly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, w := range []struct {
		week, year int
		revenue    float64
	}{
		{week: 2, year: 2024, revenue: 5000},
		{week: 1, year: 2024, revenue: 4000},
		{week: 52, year: 2023, revenue: 4500},
	} {
		_, err := f.financialSvc.AddWeekly(ctx, f.owner, f.rest, &dto.CreateWeeklyDataRequest{
			WeekNumber:   w.week,
			Year:         w.year,
			FiguresInput: dto.FiguresInput{Revenue: w.revenue},
		})
		if err != nil {
			t.Fatalf("AddWeekly: %v", err)
		}
	}

	list, err := f.financialSvc.ListWeekly(ctx, f.owner, f.rest)
	if err != nil || len(list) != 3 {
		t.Fatalf("ListWeekly = %v, %v", list, err)
	}
	if list[0].WeekNumber != 52 || list[2].WeekNumber != 2 {
		t.Errorf("weekly order = %d,%d,%d", list[0].WeekNumber, list[1].WeekNumber, list[2].WeekNumber)
	}

	cmp, err := f.financialSvc.CompareWeek(ctx, f.owner, f.rest, 1, 2024)
	if err != nil {
		t.Fatalf("CompareWeek: %v", err)
	}
	if cmp.Previous.Week != 52 || cmp.Previous.Year != 2023 || cmp.Previous.Data.Revenue != 4500 {
		t.Errorf("previous = %+v", cmp.Previous)
	}
}
