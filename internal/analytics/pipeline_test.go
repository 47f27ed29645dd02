package analytics

import (
	"math"
	"slices"
	"testing"

	"adboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTopThreeByAdCost(t *testing.T) {
	spec := allMediaSpec(domain.MetricAdCost, domain.OrderDescending)
	spec.Count = 3

	out, err := Apply(brandRecords(), spec)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, domain.MediaTikTok, out[0].Media)
	assert.Equal(t, 492558.0, out[0].CostToday)
	assert.Equal(t, domain.MediaNaver, out[1].Media)
	assert.Equal(t, 275075.0, out[1].CostToday)
	assert.Equal(t, domain.MediaGoogle, out[2].Media)
	assert.Equal(t, 231944.0, out[2].CostToday)
}

func TestApplyRejectsEmptyMedias(t *testing.T) {
	_, err := Apply(brandRecords(), domain.FilterSpec{Metric: domain.MetricAdCost})
	assert.ErrorIs(t, err, domain.ErrInvalidFilterSpec)
}

func TestApplyMediaFilter(t *testing.T) {
	spec := allMediaSpec(domain.MetricAdCost, domain.OrderAscending)
	spec.SelectedMedias = []domain.Media{domain.MediaKakao, domain.MediaMeta}

	out, err := Apply(brandRecords(), spec)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, domain.MediaMeta, out[0].Media)
	assert.Equal(t, domain.MediaKakao, out[1].Media)
}

func TestApplyClicksTieBreakByCostDescending(t *testing.T) {
	low := &domain.PerformanceRecord{Media: domain.MediaNaver, Clicks: 100, CostToday: 3000}
	high := &domain.PerformanceRecord{Media: domain.MediaGoogle, Clicks: 100, CostToday: 5000}

	for _, order := range []domain.SortOrder{domain.OrderDescending, domain.OrderAscending} {
		for _, input := range [][]*domain.PerformanceRecord{{low, high}, {high, low}} {
			out, err := Apply(input, allMediaSpec(domain.MetricClicks, order))
			require.NoError(t, err)
			assert.Same(t, high, out[0], "order %s", order)
			assert.Same(t, low, out[1], "order %s", order)
		}
	}
}

func TestApplyCPCTieBreakByCostDescending(t *testing.T) {
	a := &domain.PerformanceRecord{Media: domain.MediaNaver, CPCToday: 200, CostToday: 1000}
	b := &domain.PerformanceRecord{Media: domain.MediaNaver, CPCToday: 200, CostToday: 9000}
	c := &domain.PerformanceRecord{Media: domain.MediaNaver, CPCToday: 100, CostToday: 50000}

	out, err := Apply([]*domain.PerformanceRecord{a, b, c}, allMediaSpec(domain.MetricCPC, domain.OrderAscending))
	require.NoError(t, err)
	assert.Equal(t, []*domain.PerformanceRecord{c, b, a}, out)

	out, err = Apply([]*domain.PerformanceRecord{a, b, c}, allMediaSpec(domain.MetricCPC, domain.OrderDescending))
	require.NoError(t, err)
	assert.Equal(t, []*domain.PerformanceRecord{b, a, c}, out)
}

func TestApplyUnknownMetricSortsByCostDescending(t *testing.T) {
	out, err := Apply(brandRecords(), allMediaSpec(domain.SortMetric("roas"), domain.OrderAscending))
	require.NoError(t, err)

	costs := make([]float64, len(out))
	for i, r := range out {
		costs[i] = r.CostToday
	}
	assert.Equal(t, []float64{492558, 275075, 231944, 206062, 171804}, costs)
}

func TestApplyCostRangeOnlyForCPC(t *testing.T) {
	spec := allMediaSpec(domain.MetricCPC, domain.OrderDescending)
	spec.MinCost = float(200000)
	spec.MaxCost = float(275075)

	out, err := Apply(brandRecords(), spec)
	require.NoError(t, err)
	require.Len(t, out, 3, "bounds are inclusive")
	for _, r := range out {
		assert.GreaterOrEqual(t, r.CostToday, 200000.0)
		assert.LessOrEqual(t, r.CostToday, 275075.0)
	}

	spec.Metric = domain.MetricAdCost
	out, err = Apply(brandRecords(), spec)
	require.NoError(t, err)
	assert.Len(t, out, 5, "range ignored for other metrics")
}

func TestApplyCostRangeOpenBounds(t *testing.T) {
	spec := allMediaSpec(domain.MetricCPC, domain.OrderDescending)
	spec.MinCost = float(250000)

	out, err := Apply(brandRecords(), spec)
	require.NoError(t, err)
	assert.Len(t, out, 2)

	spec.MinCost = float(math.NaN())
	spec.MaxCost = float(200000)
	out, err = Apply(brandRecords(), spec)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestApplyIsIdempotentAndDoesNotMutateInput(t *testing.T) {
	records := tenRecords()
	before := slices.Clone(records)
	values := domain.CloneRecords(records)

	spec := allMediaSpec(domain.MetricClicks, domain.OrderAscending)
	first, err := Apply(records, spec)
	require.NoError(t, err)
	second, err := Apply(records, spec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for i := range records {
		assert.Same(t, before[i], records[i])
		assert.Equal(t, *values[i], *records[i])
	}
}

func TestApplyCountLimit(t *testing.T) {
	spec := allMediaSpec(domain.MetricAdCost, domain.OrderDescending)
	full, err := Apply(tenRecords(), spec)
	require.NoError(t, err)
	require.Len(t, full, 10)

	records := tenRecords()
	spec.Count = 3
	limited, err := Apply(records, spec)
	require.NoError(t, err)
	require.Len(t, limited, 3)
	for i := range limited {
		assert.Equal(t, *full[i], *limited[i])
	}

	spec.Count = -1
	all, err := Apply(records, spec)
	require.NoError(t, err)
	assert.Len(t, all, 10)

	spec.Count = 50
	all, err = Apply(records, spec)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}
