package service

import (
	"time"

	"restaurant-intel/internal/analytics"
	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/models"
)

func figuresFromInput(in dto.FiguresInput) models.Figures {
	return models.Figures{
		Revenue:            in.Revenue,
		FoodCost:           in.FoodCost,
		LabourCost:         in.LabourCost,
		EnergyCost:         in.EnergyCost,
		RentCost:           in.RentCost,
		MarketingCost:      in.MarketingCost,
		SuppliesCost:       in.SuppliesCost,
		TechnologyCost:     in.TechnologyCost,
		WasteCost:          in.WasteCost,
		DeliveryRevenue:    in.DeliveryRevenue,
		DineInRevenue:      in.DineInRevenue,
		TakeawayRevenue:    in.TakeawayRevenue,
		TotalCovers:        in.TotalCovers,
		AvgTicketSize:      in.AvgTicketSize,
		RepeatCustomerRate: in.RepeatCustomerRate,
	}
}

func periodFromFigures(f models.Figures) analytics.Period {
	return analytics.Period{
		Revenue:            f.Revenue,
		FoodCost:           f.FoodCost,
		LabourCost:         f.LabourCost,
		EnergyCost:         f.EnergyCost,
		RentCost:           f.RentCost,
		MarketingCost:      f.MarketingCost,
		SuppliesCost:       f.SuppliesCost,
		TechnologyCost:     f.TechnologyCost,
		WasteCost:          f.WasteCost,
		DeliveryRevenue:    f.DeliveryRevenue,
		DineInRevenue:      f.DineInRevenue,
		TakeawayRevenue:    f.TakeawayRevenue,
		TotalCovers:        f.TotalCovers,
		AvgTicketSize:      f.AvgTicketSize,
		RepeatCustomerRate: f.RepeatCustomerRate,
	}
}

func periodFromMonthly(m *models.MonthlyData) analytics.Period {
	p := periodFromFigures(m.Figures)
	p.Month = m.Month
	p.Year = m.Year
	return p
}

func periodFromWeekly(w *models.WeeklyData) analytics.Period {
	p := periodFromFigures(w.Figures)
	p.WeekNumber = w.WeekNumber
	p.Year = w.Year
	return p
}

func monthlyPeriods(records []*models.MonthlyData) []analytics.Period {
	out := make([]analytics.Period, 0, len(records))
	for _, m := range records {
		out = append(out, periodFromMonthly(m))
	}
	return out
}

func weeklyPeriods(records []*models.WeeklyData) []analytics.Period {
	out := make([]analytics.Period, 0, len(records))
	for _, w := range records {
		out = append(out, periodFromWeekly(w))
	}
	return out
}

func monthlyResponse(m *models.MonthlyData) dto.PeriodResponse {
	return dto.PeriodResponse{
		ID:           m.ID.String(),
		RestaurantID: m.RestaurantID.String(),
		Period:       periodFromMonthly(m),
		CreatedAt:    m.CreatedAt.Format(time.RFC3339),
	}
}

func weeklyResponse(w *models.WeeklyData) dto.PeriodResponse {
	return dto.PeriodResponse{
		ID:           w.ID.String(),
		RestaurantID: w.RestaurantID.String(),
		Period:       periodFromWeekly(w),
		CreatedAt:    w.CreatedAt.Format(time.RFC3339),
	}
}

func restaurantResponse(r *models.Restaurant) dto.RestaurantResponse {
	resp := dto.RestaurantResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		CuisineType: r.CuisineType,
		Location:    r.Location,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
	if r.FranchiseGroupID != nil {
		g := r.FranchiseGroupID.String()
		resp.FranchiseGroupID = &g
	}
	return resp
}

func priceReportFromModel(m *models.SupplierPriceReport) analytics.PriceReport {
	return analytics.PriceReport{
		ID:               m.ID,
		RestaurantID:     m.RestaurantID,
		FranchiseGroupID: m.FranchiseGroupID,
		IngredientName:   m.IngredientName,
		SupplierName:     m.SupplierName,
		UnitPrice:        m.UnitPrice,
		Unit:             m.Unit,
		Month:            m.Month,
		Year:             m.Year,
		ReportedAt:       m.ReportedAt,
	}
}

func priceReports(records []*models.SupplierPriceReport) []analytics.PriceReport {
	out := make([]analytics.PriceReport, 0, len(records))
	for _, m := range records {
		out = append(out, priceReportFromModel(m))
	}
	return out
}

func wasteLogFromModel(m *models.WasteLog) analytics.WasteLog {
	return analytics.WasteLog{
		ID:          m.ID,
		ItemName:    m.ItemName,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
		CostPerUnit: m.CostPerUnit,
		TotalCost:   m.TotalCost,
		Reason:      m.Reason,
		Date:        m.Date,
	}
}

func approvedSupplierFromModel(m *models.ApprovedSupplier) analytics.ApprovedSupplier {
	return analytics.ApprovedSupplier{
		ID:               m.ID,
		FranchiseGroupID: m.FranchiseGroupID,
		Name:             m.Name,
		Category:         m.Category,
		ContactInfo:      m.ContactInfo,
		IngredientName:   m.IngredientName,
		ContractedPrice:  m.ContractedPrice,
		Unit:             m.Unit,
		IsRequired:       m.IsRequired,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
	}
}

func approvedSuppliers(records []*models.ApprovedSupplier) []analytics.ApprovedSupplier {
	out := make([]analytics.ApprovedSupplier, 0, len(records))
	for _, m := range records {
		out = append(out, approvedSupplierFromModel(m))
	}
	return out
}
