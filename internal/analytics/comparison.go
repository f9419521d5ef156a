package analytics

// Changes maps a metric name to its percent change. A nil value means the
// change is undefined because the earlier figure was zero or missing.
type Changes map[string]*float64

// Compare computes percent changes between two aggregates. Every metric is
// nil when either side is missing.
func Compare(current, previous *AggregatedPeriod) Changes {
	keys := []string{
		"revenue", "foodCost", "labourCost", "totalCosts", "totalCovers",
		"avgTicketSize", "foodCostPercent", "labourCostPercent", "gpPercent",
	}
	out := make(Changes, len(keys))
	if current == nil || previous == nil {
		for _, k := range keys {
			out[k] = nil
		}
		return out
	}
	out["revenue"] = PercentChange(current.Revenue, previous.Revenue)
	out["foodCost"] = PercentChange(current.FoodCost, previous.FoodCost)
	out["labourCost"] = PercentChange(current.LabourCost, previous.LabourCost)
	out["totalCosts"] = PercentChange(current.TotalCosts, previous.TotalCosts)
	out["totalCovers"] = PercentChange(float64(current.TotalCovers), float64(previous.TotalCovers))
	out["avgTicketSize"] = PercentChange(current.AvgTicketSize, previous.AvgTicketSize)
	out["foodCostPercent"] = PercentChange(current.FoodCostPercent, previous.FoodCostPercent)
	out["labourCostPercent"] = PercentChange(current.LabourCostPercent, previous.LabourCostPercent)
	out["gpPercent"] = PercentChange(current.GPPercent, previous.GPPercent)
	return out
}

type QuarterBucket struct {
	Quarter int               `json:"quarter"`
	Year    int               `json:"year"`
	Data    *AggregatedPeriod `json:"data"`
}

type QuarterComparison struct {
	Current            QuarterBucket   `json:"current"`
	Previous           QuarterBucket   `json:"previous"`
	SamePeriodLastYear QuarterBucket   `json:"samePeriodLastYear"`
	Trend              []QuarterBucket `json:"trend"`
	VsPrevious         Changes         `json:"vsPrevious"`
	VsLastYear         Changes         `json:"vsLastYear"`
}

// CompareQuarter builds the quarter-on-quarter report. The trend holds Q1..Q4;
// quarters later than the requested one come from the previous year.
func CompareQuarter(periods []Period, quarter, year int) QuarterComparison {
	bucket := func(q, y int) QuarterBucket {
		return QuarterBucket{Quarter: q, Year: y, Data: Aggregate(periods, QuarterRule{Quarter: q, Year: y})}
	}

	prevQ, prevYear := quarter-1, year
	if quarter == 1 {
		prevQ, prevYear = 4, year-1
	}

	cmp := QuarterComparison{
		Current:            bucket(quarter, year),
		Previous:           bucket(prevQ, prevYear),
		SamePeriodLastYear: bucket(quarter, year-1),
		Trend:              make([]QuarterBucket, 0, 4),
	}
	for q := 1; q <= 4; q++ {
		y := year
		if q > quarter {
			y = year - 1
		}
		cmp.Trend = append(cmp.Trend, bucket(q, y))
	}
	cmp.VsPrevious = Compare(cmp.Current.Data, cmp.Previous.Data)
	cmp.VsLastYear = Compare(cmp.Current.Data, cmp.SamePeriodLastYear.Data)
	return cmp
}

type HalfBucket struct {
	Half int               `json:"half"`
	Year int               `json:"year"`
	Data *AggregatedPeriod `json:"data"`
}

type HalfComparison struct {
	Current            HalfBucket `json:"current"`
	Previous           HalfBucket `json:"previous"`
	SamePeriodLastYear HalfBucket `json:"samePeriodLastYear"`
	VsPrevious         Changes    `json:"vsPrevious"`
	VsLastYear         Changes    `json:"vsLastYear"`
}

func CompareHalf(periods []Period, half, year int) HalfComparison {
	bucket := func(h, y int) HalfBucket {
		return HalfBucket{Half: h, Year: y, Data: Aggregate(periods, HalfRule{Half: h, Year: y})}
	}

	prevH, prevYear := 1, year
	if half == 1 {
		prevH, prevYear = 2, year-1
	}

	cmp := HalfComparison{
		Current:            bucket(half, year),
		Previous:           bucket(prevH, prevYear),
		SamePeriodLastYear: bucket(half, year-1),
	}
	cmp.VsPrevious = Compare(cmp.Current.Data, cmp.Previous.Data)
	cmp.VsLastYear = Compare(cmp.Current.Data, cmp.SamePeriodLastYear.Data)
	return cmp
}

type WeekBucket struct {
	Week int               `json:"week"`
	Year int               `json:"year"`
	Data *AggregatedPeriod `json:"data"`
}

type WeekComparison struct {
	Current            WeekBucket   `json:"current"`
	Previous           WeekBucket   `json:"previous"`
	SamePeriodLastYear WeekBucket   `json:"samePeriodLastYear"`
	Trend              []WeekBucket `json:"trend"`
	VsPrevious         Changes      `json:"vsPrevious"`
	VsLastYear         Changes      `json:"vsLastYear"`
}

const weeksPerYear = 52

// CompareWeek builds the week-on-week report with an eight week trend ending
// at the requested week. Week numbers wrap into the previous year.
func CompareWeek(periods []Period, week, year int) WeekComparison {
	bucket := func(w, y int) WeekBucket {
		return WeekBucket{Week: w, Year: y, Data: Aggregate(periods, WeekRule{Week: w, Year: y})}
	}

	prevW, prevYear := week-1, year
	if week == 1 {
		prevW, prevYear = weeksPerYear, year-1
	}

	cmp := WeekComparison{
		Current:            bucket(week, year),
		Previous:           bucket(prevW, prevYear),
		SamePeriodLastYear: bucket(week, year-1),
		Trend:              make([]WeekBucket, 0, 8),
	}
	for i := 0; i < 8; i++ {
		w, y := week-(7-i), year
		if w <= 0 {
			w += weeksPerYear
			y--
		}
		cmp.Trend = append(cmp.Trend, bucket(w, y))
	}
	cmp.VsPrevious = Compare(cmp.Current.Data, cmp.Previous.Data)
	cmp.VsLastYear = Compare(cmp.Current.Data, cmp.SamePeriodLastYear.Data)
	return cmp
}
