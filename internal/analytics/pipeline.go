package analytics

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"adboard/internal/domain"
)

// Validate fails fast on a spec the pipeline cannot apply.
func Validate(spec domain.FilterSpec) error {
	if len(spec.SelectedMedias) == 0 {
		return fmt.Errorf("%w: at least one media must be selected", domain.ErrInvalidFilterSpec)
	}
	return nil
}

// Apply runs the keyword view pipeline: media filter, cost range filter
// (CPC metric only), sort, limit. The steps run in that order; the result is
// a new slice and records is left untouched.
func Apply(records []*domain.PerformanceRecord, spec domain.FilterSpec) ([]*domain.PerformanceRecord, error) {
	if err := Validate(spec); err != nil {
		return nil, err
	}

	out := make([]*domain.PerformanceRecord, 0, len(records))
	for _, r := range records {
		if r == nil || !spec.HasMedia(r.Media) {
			continue
		}
		if spec.Metric == domain.MetricCPC && !inCostRange(r.CostToday, spec.MinCost, spec.MaxCost) {
			continue
		}
		out = append(out, r)
	}

	slices.SortStableFunc(out, func(a, b *domain.PerformanceRecord) int {
		return compareRecords(a, b, spec.Metric, spec.Order)
	})

	if spec.Count > 0 && spec.Count < len(out) {
		out = out[:spec.Count]
	}

	return out, nil
}

// bounds are inclusive; nil or NaN bounds do not constrain
func inCostRange(cost float64, minCost, maxCost *float64) bool {
	cost = finite(cost)
	if minCost != nil && !math.IsNaN(*minCost) && cost < *minCost {
		return false
	}
	if maxCost != nil && !math.IsNaN(*maxCost) && cost > *maxCost {
		return false
	}
	return true
}

// compareRecords orders by the selected metric. Ties on clicks or cpc go to
// the higher cost_today whatever the primary direction.
func compareRecords(a, b *domain.PerformanceRecord, metric domain.SortMetric, order domain.SortOrder) int {
	switch metric {
	case domain.MetricAdCost:
		return directed(cmp.Compare(finite(a.CostToday), finite(b.CostToday)), order)
	case domain.MetricClicks:
		if c := cmp.Compare(a.Clicks, b.Clicks); c != 0 {
			return directed(c, order)
		}
		return costDescending(a, b)
	case domain.MetricCPC:
		if c := cmp.Compare(finite(a.CPCToday), finite(b.CPCToday)); c != 0 {
			return directed(c, order)
		}
		return costDescending(a, b)
	}
	return costDescending(a, b)
}

func costDescending(a, b *domain.PerformanceRecord) int {
	return cmp.Compare(finite(b.CostToday), finite(a.CostToday))
}

func directed(c int, order domain.SortOrder) int {
	if order == domain.OrderAscending {
		return c
	}
	return -c
}
