package analytics

import (
	"github.com/google/uuid"
)

type Category string

const (
	CategoryStar        Category = "star"
	CategoryPloughHorse Category = "plough-horse"
	CategoryPuzzle      Category = "puzzle"
	CategoryDog         Category = "dog"
	CategoryUncosted    Category = "uncosted"
)

// Categories lists every classification in display order.
var Categories = []Category{CategoryStar, CategoryPloughHorse, CategoryPuzzle, CategoryDog, CategoryUncosted}

type MenuItem struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	SellingPrice float64   `json:"sellingPrice"`
	// ComputedCost is the recipe cost per serve. Nil or zero means uncosted.
	ComputedCost *float64 `json:"computedCost"`
}

type ClassifiedItem struct {
	Item            MenuItem `json:"item"`
	FoodCostPercent float64  `json:"foodCostPercent"`
	GPPercent       float64  `json:"gpPercent"`
	GPPerServe      float64  `json:"gpPerServe"`
	CostPerServe    float64  `json:"costPerServe"`
	PopularityScore float64  `json:"popularityScore"`
	HighPopularity  bool     `json:"highPopularity"`
	HighMargin      bool     `json:"highMargin"`
	Category        Category `json:"category"`
}

// PopularityProvider scores items for the popularity axis of the matrix.
// scores[i] belongs to items[i]; items scoring at or above threshold are popular.
type PopularityProvider interface {
	Score(items []MenuItem) (scores []float64, threshold float64)
}

// SalesVolume scores items by their share of units sold. An item is popular
// when its share reaches factor x (1/N), the classic 70% menu-engineering rule.
// Units is keyed by menu item ID, so scored items need distinct IDs; items
// sharing an ID (including uuid.Nil) share one sales figure, counted once.
type SalesVolume struct {
	Units  map[uuid.UUID]float64
	Factor float64
}

func (s SalesVolume) Score(items []MenuItem) ([]float64, float64) {
	scores := make([]float64, len(items))
	if len(items) == 0 {
		return scores, 0
	}
	var total float64
	seen := make(map[uuid.UUID]bool, len(items))
	for _, it := range items {
		if !seen[it.ID] {
			seen[it.ID] = true
			total += s.Units[it.ID]
		}
	}
	for i, it := range items {
		scores[i] = safeDiv(s.Units[it.ID], total)
	}
	factor := s.Factor
	if factor <= 0 {
		factor = 1
	}
	return scores, factor / float64(len(items))
}

// FlatPopularity is the placeholder used until real sales data is available:
// every item sits exactly on the threshold, so the quadrant only reflects margin.
type FlatPopularity struct{}

func (FlatPopularity) Score(items []MenuItem) ([]float64, float64) {
	scores := make([]float64, len(items))
	for i := range scores {
		scores[i] = 1
	}
	return scores, 1
}

// Quadrant maps the two axes of the matrix to a live category.
func Quadrant(highPopularity, highMargin bool) Category {
	switch {
	case highPopularity && highMargin:
		return CategoryStar
	case highPopularity:
		return CategoryPloughHorse
	case highMargin:
		return CategoryPuzzle
	default:
		return CategoryDog
	}
}

// ClassifyMenu assigns each priced item to exactly one category. Items with
// no selling price are left out.
func ClassifyMenu(items []MenuItem, pop PopularityProvider, b Benchmarks) []ClassifiedItem {
	priced := make([]MenuItem, 0, len(items))
	for _, it := range items {
		if it.SellingPrice > 0 {
			priced = append(priced, it)
		}
	}
	if len(priced) == 0 {
		return []ClassifiedItem{}
	}
	if pop == nil {
		pop = FlatPopularity{}
	}
	scores, threshold := pop.Score(priced)

	out := make([]ClassifiedItem, 0, len(priced))
	for i, it := range priced {
		var cost float64
		if it.ComputedCost != nil {
			cost = *it.ComputedCost
		}
		price := it.SellingPrice
		gpPerServe := price - cost
		ci := ClassifiedItem{
			Item:            it,
			CostPerServe:    cost,
			GPPerServe:      gpPerServe,
			GPPercent:       gpPerServe / price * 100,
			FoodCostPercent: cost / price * 100,
			PopularityScore: scores[i],
		}
		ci.HighPopularity = ci.PopularityScore >= threshold
		ci.HighMargin = ci.GPPercent >= b.HighMarginGP
		if cost <= 0 {
			ci.Category = CategoryUncosted
		} else {
			ci.Category = Quadrant(ci.HighPopularity, ci.HighMargin)
		}
		out = append(out, ci)
	}
	return out
}

// Partition groups classified items by category; every category key is present.
func Partition(items []ClassifiedItem) map[Category][]ClassifiedItem {
	out := make(map[Category][]ClassifiedItem, len(Categories))
	for _, c := range Categories {
		out[c] = []ClassifiedItem{}
	}
	for _, it := range items {
		out[it.Category] = append(out[it.Category], it)
	}
	return out
}

type RecipeLine struct {
	IngredientID uuid.UUID `json:"ingredientId"`
	Quantity     float64   `json:"quantity"`
	UnitPrice    float64   `json:"unitPrice"`
}

// RecipeCost sums quantity x unit price over a recipe. Nil means no recipe.
func RecipeCost(lines []RecipeLine) *float64 {
	if len(lines) == 0 {
		return nil
	}
	var total float64
	for _, l := range lines {
		total += l.Quantity * l.UnitPrice
	}
	total = RoundPence(total)
	return &total
}
