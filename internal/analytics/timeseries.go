package analytics

import (
	"sort"

	"adboard/internal/domain"
)

// MetricValue projects one record onto a chart metric. Ratio metrics are
// derived per record; any other name reads the record field of that JSON
// name, 0 when there is none.
func MetricValue(r *domain.PerformanceRecord, metric string) float64 {
	switch metric {
	case "impressions":
		return float64(r.Impressions)
	case "clicks":
		return float64(r.Clicks)
	case "conversions":
		return float64(r.Conversions)
	case "cost":
		return finite(r.Cost)
	case "revenue":
		return finite(r.Revenue)
	case "ctr":
		return CTR(float64(r.Clicks), float64(r.Impressions))
	case "cpc":
		return CPC(r.Cost, float64(r.Clicks))
	case "cpa":
		return CPA(r.Cost, float64(r.Conversions))
	case "roas":
		return ROAS(r.Revenue, r.Cost)
	case "cvr":
		return CVR(float64(r.Conversions), float64(r.Clicks))
	}
	return finite(r.FieldValue(metric))
}

// GroupByDate builds one chart point per distinct date, ascending. Every
// point carries a value for every platform key (registered platforms plus
// any unregistered media seen), summed over records sharing the date and
// platform. Records without a date are skipped.
func GroupByDate(records []*domain.PerformanceRecord, metric string, platforms []domain.Platform) []domain.ChartSeriesPoint {
	keys := make([]string, 0, len(platforms))
	for _, p := range platforms {
		keys = append(keys, p.Key)
	}

	byDate := make(map[string]map[string]float64)
	var dates []string

	for _, r := range records {
		if r == nil || r.Date == "" {
			continue
		}

		values, ok := byDate[r.Date]
		if !ok {
			values = make(map[string]float64, len(keys))
			for _, k := range keys {
				values[k] = 0
			}
			byDate[r.Date] = values
			dates = append(dates, r.Date)
		}

		key := domain.PlatformKey(platforms, r.Media)
		if !containsKey(keys, key) {
			keys = append(keys, key)
		}
		values[key] += MetricValue(r, metric)
	}

	sort.Strings(dates)

	points := make([]domain.ChartSeriesPoint, 0, len(dates))
	for _, date := range dates {
		values := byDate[date]
		for _, k := range keys {
			if _, ok := values[k]; !ok {
				values[k] = 0
			}
		}
		points = append(points, domain.ChartSeriesPoint{Date: date, Values: values})
	}

	return points
}

// GroupByPlatformTotal sums the metric per platform across all dates, in
// registry order, followed by unregistered media in first-seen order.
func GroupByPlatformTotal(records []*domain.PerformanceRecord, metric string, platforms []domain.Platform) []domain.PlatformTotal {
	totals := make([]domain.PlatformTotal, 0, len(platforms))
	index := make(map[domain.Media]int, len(platforms))

	for _, p := range platforms {
		index[p.Media] = len(totals)
		totals = append(totals, domain.PlatformTotal{Platform: p.Key, Label: p.Label, Color: p.Color})
	}

	for _, r := range records {
		if r == nil {
			continue
		}
		i, ok := index[r.Media]
		if !ok {
			i = len(totals)
			index[r.Media] = i
			totals = append(totals, domain.PlatformTotal{Platform: string(r.Media), Label: string(r.Media)})
		}
		totals[i].Value += MetricValue(r, metric)
	}

	return totals
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
