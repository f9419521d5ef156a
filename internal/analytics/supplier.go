package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

type PriceReport struct {
	ID               uuid.UUID `json:"id"`
	RestaurantID     uuid.UUID `json:"-"`
	FranchiseGroupID uuid.UUID `json:"franchiseGroupId"`
	IngredientName   string    `json:"ingredientName"`
	SupplierName     string    `json:"supplierName"`
	UnitPrice        float64   `json:"unitPrice"`
	Unit             string    `json:"unit"`
	Month            int       `json:"month"`
	Year             int       `json:"year"`
	ReportedAt       time.Time `json:"reportedAt"`
}

// ApprovedSupplier is a supplier endorsed by a franchise group, optionally
// for one ingredient at a contracted price.
type ApprovedSupplier struct {
	ID               uuid.UUID `json:"id"`
	FranchiseGroupID uuid.UUID `json:"franchiseGroupId"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	ContactInfo      string    `json:"contactInfo,omitempty"`
	IngredientName   string    `json:"ingredientName,omitempty"`
	ContractedPrice  *float64  `json:"contractedPrice"`
	Unit             string    `json:"unit,omitempty"`
	IsRequired       bool      `json:"isRequired"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type IntelligenceRow struct {
	Ingredient        string   `json:"ingredient"`
	Unit              string   `json:"unit"`
	MyPrice           float64  `json:"myPrice"`
	MySupplier        string   `json:"mySupplier"`
	NetworkAvg        *float64 `json:"networkAvg"`
	Difference        *float64 `json:"difference"`
	DifferencePercent *float64 `json:"differencePercent"`
	NetworkDataPoints int      `json:"networkDataPoints"`
}

// LatestReports keeps the most recent report per ingredient, newest first.
// Reports with equal timestamps keep their input order.
func LatestReports(reports []PriceReport) []PriceReport {
	sorted := make([]PriceReport, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReportedAt.After(sorted[j].ReportedAt)
	})

	seen := make(map[string]bool, len(sorted))
	latest := make([]PriceReport, 0, len(sorted))
	for _, r := range sorted {
		if seen[r.IngredientName] {
			continue
		}
		seen[r.IngredientName] = true
		latest = append(latest, r)
	}
	return latest
}

// ComputeSupplierIntelligence compares a restaurant's latest price per
// ingredient with the average paid by the rest of the network. Reports filed
// by restaurantID never count towards the network average.
func ComputeSupplierIntelligence(restaurantID uuid.UUID, myReports, allReports []PriceReport) []IntelligenceRow {
	network := make(map[string][]float64)
	for _, r := range allReports {
		if r.RestaurantID == restaurantID {
			continue
		}
		network[r.IngredientName] = append(network[r.IngredientName], r.UnitPrice)
	}

	latest := LatestReports(myReports)
	rows := make([]IntelligenceRow, 0, len(latest))
	for _, mine := range latest {
		prices := network[mine.IngredientName]
		row := IntelligenceRow{
			Ingredient:        mine.IngredientName,
			Unit:              mine.Unit,
			MyPrice:           mine.UnitPrice,
			MySupplier:        mine.SupplierName,
			NetworkDataPoints: len(prices),
		}
		if len(prices) > 0 {
			avg := mean(prices)
			diff := mine.UnitPrice - avg
			row.NetworkAvg = &avg
			row.Difference = &diff
			if avg != 0 {
				pct := diff / avg * 100
				row.DifferencePercent = &pct
			}
		}
		rows = append(rows, row)
	}

	// Most overpriced first; rows without a network figure go last.
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].DifferencePercent, rows[j].DifferencePercent
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
	return rows
}

type VarianceRow struct {
	Ingredient string  `json:"ingredient"`
	Unit       string  `json:"unit"`
	Avg        float64 `json:"avg"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Variance   float64 `json:"variance"`
	DataPoints int     `json:"dataPoints"`
}

// ComputePriceVariance summarises every report in the network per ingredient,
// widest price spread first. This is the franchisor view, nothing is excluded.
func ComputePriceVariance(allReports []PriceReport) []VarianceRow {
	index := make(map[string]int)
	var (
		rows   []VarianceRow
		prices [][]float64
	)
	for _, r := range allReports {
		i, ok := index[r.IngredientName]
		if !ok {
			i = len(rows)
			index[r.IngredientName] = i
			rows = append(rows, VarianceRow{Ingredient: r.IngredientName, Unit: r.Unit})
			prices = append(prices, nil)
		}
		prices[i] = append(prices[i], r.UnitPrice)
	}

	for i := range rows {
		vals := prices[i]
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range vals {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		rows[i].Avg = mean(vals)
		rows[i].Min = lo
		rows[i].Max = hi
		rows[i].Variance = hi - lo
		rows[i].DataPoints = len(vals)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Variance > rows[j].Variance
	})
	if rows == nil {
		rows = []VarianceRow{}
	}
	return rows
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
