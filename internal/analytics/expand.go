package analytics

import "adboard/internal/domain"

// SameKeywordRows returns the rows whose keyword equals keyword, in their
// original order.
func SameKeywordRows(rows []*domain.PerformanceRecord, keyword string) []*domain.PerformanceRecord {
	out := make([]*domain.PerformanceRecord, 0)
	for _, r := range rows {
		if r != nil && r.Keyword == keyword {
			out = append(out, r)
		}
	}
	return out
}

// ExpandRow returns the drill-down siblings of primary. primary itself is
// excluded by identity, so a distinct row with equal values stays in.
func ExpandRow(rows []*domain.PerformanceRecord, primary *domain.PerformanceRecord) []*domain.PerformanceRecord {
	if primary == nil {
		return []*domain.PerformanceRecord{}
	}

	siblings := SameKeywordRows(rows, primary.Keyword)
	out := siblings[:0]
	for _, r := range siblings {
		if r != primary {
			out = append(out, r)
		}
	}
	return out
}
