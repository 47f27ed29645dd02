package infrastructure

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"

	"adboard/internal/analytics"
	"adboard/internal/domain"

	"github.com/google/uuid"
)

var (
	campaignNames = []string{"브랜드 검색", "시즌 프로모션", "리타겟팅", "신제품 런칭"}
	adGroupNames  = []string{"그룹 A", "그룹 B", "그룹 C"}

	// record ids are name-based so a regenerated dataset keeps its ids
	recordNamespace = uuid.MustParse("6f1c8a53-2b7e-4d0a-9c3e-5a8f0e4b7d21")
)

// implements domain.RecordGenerator with synthetic data
type Generator struct {
	keywords  []string
	platforms []domain.Platform
	days      int
	seed      int64
	now       func() time.Time
}

func NewGenerator(keywords []string, days int, seed int64) *Generator {
	return &Generator{
		keywords:  keywords,
		platforms: domain.Platforms,
		days:      days,
		seed:      seed,
		now:       time.Now,
	}
}

// Generate builds the dataset of one advertiser. The same advertiser, seed
// and day always produce the same records.
func (g *Generator) Generate(ctx context.Context, advertiser string) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, fmt.Errorf("generate %s: %w", advertiser, err)
	}

	h := fnv.New64a()
	h.Write([]byte(advertiser))
	rng := rand.New(rand.NewPCG(uint64(g.seed), h.Sum64()))

	dataset := domain.Dataset{Advertiser: advertiser}

	for _, keyword := range g.keywords {
		for _, p := range g.platforms {
			dataset.Keywords = append(dataset.Keywords, g.keywordRecord(rng, advertiser, keyword, p.Media))
		}
	}

	today := g.now().UTC().Truncate(24 * time.Hour)
	for d := g.days - 1; d >= 0; d-- {
		date := today.AddDate(0, 0, -d).Format("2006-01-02")
		for _, p := range g.platforms {
			dataset.Daily = append(dataset.Daily, g.dailyRecord(rng, advertiser, date, p.Media))
		}
	}

	return dataset, nil
}

func (g *Generator) keywordRecord(rng *rand.Rand, advertiser, keyword string, media domain.Media) *domain.PerformanceRecord {
	impressions := between(rng, 5000, 80000)
	clicks := int64(float64(impressions) * (0.01 + rng.Float64()*0.05))
	cpc := float64(between(rng, 80, 400))
	costToday := float64(clicks) * cpc
	conversions := analytics.Conversions(float64(clicks), domain.ConversionRateToday)

	r := &domain.PerformanceRecord{
		ID:          recordID(advertiser, "keyword", keyword, string(media)),
		Keyword:     keyword,
		Media:       media,
		Campaign:    pick(rng, campaignNames),
		AdGroup:     pick(rng, adGroupNames),
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		Cost:        costToday,
		Revenue:     float64(conversions) * float64(between(rng, 20000, 80000)),
		CTR:         analytics.CTR(float64(clicks), float64(impressions)),

		CostToday:        costToday,
		CostYesterday:    jitter(rng, costToday, 0.8, 1.2),
		Cost7Days:        jitter(rng, costToday, 6, 8),
		CostLastWeek:     jitter(rng, costToday, 6, 8),
		CostCurrentMonth: jitter(rng, costToday, 20, 31),
		CostLastMonth:    jitter(rng, costToday, 20, 31),
	}

	r.CPCToday = analytics.CPC(r.CostToday, float64(clicks))
	r.CPCYesterday = jitter(rng, r.CPCToday, 0.85, 1.15)
	r.CPC7Days = jitter(rng, r.CPCToday, 0.9, 1.1)
	r.CPCLastWeek = jitter(rng, r.CPCToday, 0.9, 1.1)
	r.CPCCurrentMonth = jitter(rng, r.CPCToday, 0.9, 1.1)
	r.CPCLastMonth = jitter(rng, r.CPCToday, 0.85, 1.15)

	return r
}

func (g *Generator) dailyRecord(rng *rand.Rand, advertiser, date string, media domain.Media) *domain.PerformanceRecord {
	impressions := between(rng, 20000, 200000)
	clicks := int64(float64(impressions) * (0.01 + rng.Float64()*0.04))
	cost := float64(clicks) * float64(between(rng, 100, 350))
	conversions := analytics.Conversions(float64(clicks), domain.ConversionRateToday)

	return &domain.PerformanceRecord{
		ID:          recordID(advertiser, "daily", date, string(media)),
		Media:       media,
		Date:        date,
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		Cost:        cost,
		CostToday:   cost,
		Revenue:     float64(conversions) * float64(between(rng, 20000, 80000)),
		CTR:         analytics.CTR(float64(clicks), float64(impressions)),
		CPCToday:    analytics.CPC(cost, float64(clicks)),
	}
}

func recordID(parts ...string) string {
	var name []byte
	for _, p := range parts {
		name = append(name, p...)
		name = append(name, '|')
	}
	return uuid.NewSHA1(recordNamespace, name).String()
}

// inclusive range
func between(rng *rand.Rand, lo, hi int64) int64 {
	return lo + rng.Int64N(hi-lo+1)
}

func jitter(rng *rand.Rand, base, lo, hi float64) float64 {
	return float64(int64(base * (lo + rng.Float64()*(hi-lo))))
}

func pick(rng *rand.Rand, items []string) string {
	return items[rng.IntN(len(items))]
}
