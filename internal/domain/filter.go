package domain

import "strings"

// SortMetric selects the sort key of the keyword view.
type SortMetric string

const (
	MetricAdCost SortMetric = "adCost"
	MetricClicks SortMetric = "clicks"
	MetricCPC    SortMetric = "cpc"
)

// SortOrder is the primary sort direction.
type SortOrder string

const (
	OrderDescending SortOrder = "desc"
	OrderAscending  SortOrder = "asc"
)

// FilterSpec describes one application of the keyword view pipeline. Count
// of 0 means unlimited; nil cost bounds are unbounded.
type FilterSpec struct {
	SelectedMedias []Media    `json:"selectedMedias"`
	Metric         SortMetric `json:"keywordMetric"`
	Order          SortOrder  `json:"sortOrder"`
	Count          int        `json:"keywordCount,omitempty"`
	MinCost        *float64   `json:"costRangeMin,omitempty"`
	MaxCost        *float64   `json:"costRangeMax,omitempty"`
}

// HasMedia reports whether m is one of the selected medias.
func (f FilterSpec) HasMedia(m Media) bool {
	for _, s := range f.SelectedMedias {
		if s == m {
			return true
		}
	}
	return false
}

// Unlimited returns a copy of f without the count limit.
func (f FilterSpec) Unlimited() FilterSpec {
	f.Count = 0
	return f
}

// ParseSortMetric maps dashboard labels onto a SortMetric. Unrecognised
// values are returned as-is; the pipeline sorts them by ad cost.
func ParseSortMetric(s string) SortMetric {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "adcost", "ad_cost", "cost", "광고비":
		return MetricAdCost
	case "clicks", "click", "클릭수":
		return MetricClicks
	case "cpc":
		return MetricCPC
	}
	return SortMetric(s)
}

// ParseSortOrder defaults to descending.
func ParseSortOrder(s string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "오름차순":
		return OrderAscending
	}
	return OrderDescending
}
