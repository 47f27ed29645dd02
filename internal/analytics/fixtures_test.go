package analytics

import "adboard/internal/domain"

func brandRecords() []*domain.PerformanceRecord {
	return []*domain.PerformanceRecord{
		{ID: "1", Keyword: "브랜드명", Media: domain.MediaNaver, Impressions: 52000, Clicks: 1800, CostToday: 275075, CPCToday: 153},
		{ID: "2", Keyword: "브랜드명", Media: domain.MediaGoogle, Impressions: 48000, Clicks: 1500, CostToday: 231944, CPCToday: 155},
		{ID: "3", Keyword: "브랜드명", Media: domain.MediaKakao, Impressions: 36000, Clicks: 1100, CostToday: 206062, CPCToday: 187},
		{ID: "4", Keyword: "브랜드명", Media: domain.MediaMeta, Impressions: 29000, Clicks: 900, CostToday: 171804, CPCToday: 191},
		{ID: "5", Keyword: "브랜드명", Media: domain.MediaTikTok, Impressions: 61000, Clicks: 2100, CostToday: 492558, CPCToday: 235},
	}
}

func tenRecords() []*domain.PerformanceRecord {
	var records []*domain.PerformanceRecord
	medias := domain.AllMedias()
	for i := 0; i < 10; i++ {
		records = append(records, &domain.PerformanceRecord{
			Keyword:   "키워드",
			Media:     medias[i%len(medias)],
			Clicks:    int64(100 + (i*37)%50),
			CostToday: float64(1000 + (i*7919)%5000),
			CPCToday:  float64(10 + i),
		})
	}
	return records
}

func allMediaSpec(metric domain.SortMetric, order domain.SortOrder) domain.FilterSpec {
	return domain.FilterSpec{SelectedMedias: domain.AllMedias(), Metric: metric, Order: order}
}

func float(v float64) *float64 { return &v }
