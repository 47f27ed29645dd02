package analytics

import (
	"testing"

	"adboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dailyRecords() []*domain.PerformanceRecord {
	return []*domain.PerformanceRecord{
		{Date: "2025-01-03", Media: domain.MediaNaver, Impressions: 1000, Clicks: 50, Cost: 5000, CostToday: 11},
		{Date: "2025-01-01", Media: domain.MediaNaver, Impressions: 2000, Clicks: 40, Cost: 4000},
		{Date: "2025-01-01", Media: domain.MediaNaver, Impressions: 500, Clicks: 10, Cost: 2000},
		{Date: "2025-01-01", Media: domain.MediaGoogle, Impressions: 800, Clicks: 8, Cost: 1600, CostToday: 7},
		{Date: "2025-01-02", Media: domain.MediaMeta, Impressions: 300, Clicks: 3, Cost: 900},
	}
}

func TestGroupByDateOrderingAndCompleteness(t *testing.T) {
	points := GroupByDate(dailyRecords(), "clicks", domain.Platforms)
	require.Len(t, points, 3)

	assert.Equal(t, "2025-01-01", points[0].Date)
	assert.Equal(t, "2025-01-02", points[1].Date)
	assert.Equal(t, "2025-01-03", points[2].Date)

	for _, p := range points {
		for _, platform := range domain.Platforms {
			_, ok := p.Values[platform.Key]
			assert.True(t, ok, "%s missing on %s", platform.Key, p.Date)
		}
	}

	assert.Equal(t, 50.0, points[0].Values["naver"], "same date and platform are summed")
	assert.Equal(t, 8.0, points[0].Values["google"])
	assert.Equal(t, 0.0, points[0].Values["tiktok"])
	assert.Equal(t, 3.0, points[1].Values["meta"])
}

func TestGroupByDateRatioMetricDerivedPerRecord(t *testing.T) {
	points := GroupByDate(dailyRecords(), "cpc", domain.Platforms)
	require.Len(t, points, 3)

	// 4000/40 + 2000/10
	assert.Equal(t, 300.0, points[0].Values["naver"])
	assert.Equal(t, 200.0, points[0].Values["google"])
}

func TestGroupByDateUnknownMetricReadsField(t *testing.T) {
	points := GroupByDate(dailyRecords(), "cost_today", domain.Platforms)
	assert.Equal(t, 7.0, points[0].Values["google"])
	assert.Equal(t, 11.0, points[2].Values["naver"])

	points = GroupByDate(dailyRecords(), "bogus", domain.Platforms)
	for _, p := range points {
		for _, v := range p.Values {
			assert.Zero(t, v)
		}
	}
}

func TestGroupByDateUnregisteredMediaAndBlankDates(t *testing.T) {
	records := append(dailyRecords(),
		&domain.PerformanceRecord{Date: "2025-01-02", Media: "기타", Clicks: 4},
		&domain.PerformanceRecord{Media: domain.MediaNaver, Clicks: 1000},
	)

	points := GroupByDate(records, "clicks", domain.Platforms)
	require.Len(t, points, 3)
	assert.Equal(t, 4.0, points[1].Values["기타"])
	assert.Equal(t, 0.0, points[0].Values["기타"])
	assert.Equal(t, 0.0, points[2].Values["기타"])
}

func TestGroupByDateEmpty(t *testing.T) {
	assert.Empty(t, GroupByDate(nil, "clicks", domain.Platforms))
}

func TestGroupByPlatformTotal(t *testing.T) {
	totals := GroupByPlatformTotal(dailyRecords(), "cost", domain.Platforms)
	require.Len(t, totals, len(domain.Platforms))

	assert.Equal(t, domain.PlatformTotal{Platform: "naver", Label: "네이버", Value: 11000, Color: "#03C75A"}, totals[0])
	assert.Equal(t, 1600.0, totals[1].Value)
	assert.Equal(t, 0.0, totals[2].Value)
	assert.Equal(t, 900.0, totals[3].Value)
	assert.Equal(t, "tiktok", totals[4].Platform)
}

func TestGroupByPlatformTotalUnregisteredMedia(t *testing.T) {
	records := []*domain.PerformanceRecord{{Media: "기타", Impressions: 10}}
	totals := GroupByPlatformTotal(records, "impressions", domain.Platforms)
	require.Len(t, totals, len(domain.Platforms)+1)
	assert.Equal(t, domain.PlatformTotal{Platform: "기타", Label: "기타", Value: 10}, totals[len(totals)-1])
}
