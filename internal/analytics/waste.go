package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

type WasteLog struct {
	ID          uuid.UUID `json:"id"`
	ItemName    string    `json:"itemName"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	CostPerUnit float64   `json:"costPerUnit"`
	TotalCost   float64   `json:"totalCost"`
	Reason      string    `json:"reason"`
	Date        time.Time `json:"date"`
}

type WasteBucket struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Cost  float64 `json:"cost"`
}

type WasteAnalytics struct {
	TotalWasteCost  float64       `json:"totalWasteCost"`
	TotalPurchases  float64       `json:"totalPurchases"`
	WastePercentage float64       `json:"wastePercentage"`
	TotalLogs       int           `json:"totalLogs"`
	ByReason        []WasteBucket `json:"byReason"`
	ByMonth         []WasteBucket `json:"byMonth"`
	TopWastedItems  []WasteBucket `json:"topWastedItems"`
}

const topWastedItems = 10

// AnalyzeWaste relates logged waste to food purchases over the given periods.
func AnalyzeWaste(logs []WasteLog, periods []Period) WasteAnalytics {
	out := WasteAnalytics{TotalLogs: len(logs)}
	for _, l := range logs {
		out.TotalWasteCost += l.TotalCost
	}
	for _, p := range periods {
		out.TotalPurchases += p.FoodCost
	}
	out.WastePercentage = safeDiv(out.TotalWasteCost*100, out.TotalPurchases)

	out.ByReason = bucketWaste(logs, func(l WasteLog) string { return l.Reason })
	sortByCostDesc(out.ByReason)

	out.ByMonth = bucketWaste(logs, func(l WasteLog) string { return l.Date.Format("2006-01") })
	sort.SliceStable(out.ByMonth, func(i, j int) bool { return out.ByMonth[i].Key < out.ByMonth[j].Key })

	items := bucketWaste(logs, func(l WasteLog) string { return l.ItemName })
	sortByCostDesc(items)
	if len(items) > topWastedItems {
		items = items[:topWastedItems]
	}
	out.TopWastedItems = items
	return out
}

func bucketWaste(logs []WasteLog, key func(WasteLog) string) []WasteBucket {
	index := make(map[string]int)
	buckets := []WasteBucket{}
	for _, l := range logs {
		k := key(l)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, WasteBucket{Key: k})
		}
		buckets[i].Count++
		buckets[i].Cost += l.TotalCost
	}
	return buckets
}

func sortByCostDesc(b []WasteBucket) {
	sort.SliceStable(b, func(i, j int) bool { return b[i].Cost > b[j].Cost })
}
