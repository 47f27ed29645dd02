package domain

import (
	"context"
	"time"
)

// interface for performance record storage
type RecordRepository interface {
	Store(ctx context.Context, dataset Dataset) error
	KeywordRecords(ctx context.Context, advertiser string) ([]*PerformanceRecord, error)
	DailyRecords(ctx context.Context, advertiser string) ([]*PerformanceRecord, error)
	Advertisers(ctx context.Context) ([]string, error)
}

// interface for the data source
type RecordGenerator interface {
	Generate(ctx context.Context, advertiser string) (Dataset, error)
}

// interface for report export
type ExportClient interface {
	Export(ctx context.Context, report ExportReport) error
}

// ExportReport is the payload pushed to the report sink.
type ExportReport struct {
	Advertiser    string               `json:"advertiser"`
	GeneratedAt   time.Time            `json:"generated_at"`
	Filters       FilterSpec           `json:"filters"`
	PeriodSummary PeriodSummary        `json:"period_summary"`
	Total         int                  `json:"total"`
	Rows          []*PerformanceRecord `json:"rows"`
}
