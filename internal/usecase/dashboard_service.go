package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adboard/internal/analytics"
	"adboard/internal/domain"
	"adboard/pkg/logger"
	"adboard/pkg/metrics"
)

// KeywordReport is the keyword view returned for one filter application.
type KeywordReport struct {
	Data          []*domain.PerformanceRecord `json:"data"`
	PeriodSummary domain.PeriodSummary        `json:"periodSummary"`
	Total         int                         `json:"total"`
	Filters       domain.FilterSpec           `json:"filters"`
}

// ChartReport carries the date series and the per platform breakdown.
type ChartReport struct {
	Metric string                    `json:"metric"`
	Series []domain.ChartSeriesPoint `json:"series"`
	Totals []domain.PlatformTotal    `json:"totals"`
}

// DashboardService adapts dashboard requests onto the analytics functions
type DashboardService struct {
	repo         domain.RecordRepository
	exportClient domain.ExportClient
	logger       *logger.Logger
	metrics      *metrics.Metrics
	now          func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	repo domain.RecordRepository,
	exportClient domain.ExportClient,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *DashboardService {
	return &DashboardService{
		repo:         repo,
		exportClient: exportClient,
		logger:       logger,
		metrics:      metrics,
		now:          time.Now,
	}
}

// QueryKeywords filters, sorts and limits the advertiser's keyword rows.
// Total and the period summary cover every row that passed the filters,
// before the count limit.
func (s *DashboardService) QueryKeywords(ctx context.Context, advertiser string, spec domain.FilterSpec) (*KeywordReport, error) {
	log := s.logger.WithContext(ctx)
	log.WithFields(map[string]any{
		"advertiser": advertiser,
		"medias":     spec.SelectedMedias,
		"metric":     spec.Metric,
		"order":      spec.Order,
		"count":      spec.Count,
	}).Info("Querying keyword performance")

	if err := analytics.Validate(spec); err != nil {
		s.metrics.RecordDashboardQuery("keywords", "invalid", 0)
		return nil, err
	}

	records, err := s.repo.KeywordRecords(ctx, advertiser)
	if err != nil {
		s.recordFailure("keywords", err)
		return nil, fmt.Errorf("failed to load keyword records: %w", err)
	}

	filtered, err := analytics.Apply(records, spec.Unlimited())
	if err != nil {
		s.metrics.RecordDashboardQuery("keywords", "invalid", 0)
		return nil, err
	}

	data := filtered
	if spec.Count > 0 && spec.Count < len(filtered) {
		data = filtered[:spec.Count]
	}

	report := &KeywordReport{
		Data:          data,
		PeriodSummary: analytics.Summarize(filtered),
		Total:         len(filtered),
		Filters:       spec,
	}

	s.metrics.RecordDashboardQuery("keywords", "success", len(data))
	log.WithFields(map[string]any{
		"returned": len(data),
		"total":    report.Total,
	}).Info("Keyword performance query completed")

	return report, nil
}

// Summary returns the period summary of the rows in medias, or of every row
// when medias is empty.
func (s *DashboardService) Summary(ctx context.Context, advertiser string, medias []domain.Media) (*domain.PeriodSummary, error) {
	records, err := s.repo.KeywordRecords(ctx, advertiser)
	if err != nil {
		s.recordFailure("summary", err)
		return nil, fmt.Errorf("failed to load keyword records: %w", err)
	}

	selected := filterMedias(records, medias)
	summary := analytics.Summarize(selected)

	s.metrics.RecordDashboardQuery("summary", "success", len(selected))
	s.logger.WithContext(ctx).WithFields(map[string]any{
		"advertiser": advertiser,
		"records":    len(selected),
	}).Info("Period summary generated")

	return &summary, nil
}

// Chart groups the advertiser's daily rows by date and by platform.
func (s *DashboardService) Chart(ctx context.Context, advertiser, metric string, medias []domain.Media) (*ChartReport, error) {
	records, err := s.repo.DailyRecords(ctx, advertiser)
	if err != nil {
		s.recordFailure("chart", err)
		return nil, fmt.Errorf("failed to load daily records: %w", err)
	}

	selected := filterMedias(records, medias)
	report := &ChartReport{
		Metric: metric,
		Series: analytics.GroupByDate(selected, metric, domain.Platforms),
		Totals: analytics.GroupByPlatformTotal(selected, metric, domain.Platforms),
	}

	s.metrics.RecordDashboardQuery("chart", "success", len(report.Series))
	s.logger.WithContext(ctx).WithFields(map[string]any{
		"advertiser": advertiser,
		"metric":     metric,
		"points":     len(report.Series),
	}).Info("Chart series generated")

	return report, nil
}

// ExpandKeyword returns the same-keyword rows of the other medias for the
// row identified by rowID.
func (s *DashboardService) ExpandKeyword(ctx context.Context, advertiser, rowID string) ([]*domain.PerformanceRecord, error) {
	rows, err := s.repo.KeywordRecords(ctx, advertiser)
	if err != nil {
		s.recordFailure("expand", err)
		return nil, fmt.Errorf("failed to load keyword records: %w", err)
	}

	var primary *domain.PerformanceRecord
	for _, r := range rows {
		if r.ID == rowID {
			primary = r
			break
		}
	}
	if primary == nil {
		s.metrics.RecordDashboardQuery("expand", "not_found", 0)
		return nil, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, rowID)
	}

	siblings := analytics.ExpandRow(rows, primary)
	s.metrics.RecordDashboardQuery("expand", "success", len(siblings))

	return siblings, nil
}

// ExportReport sends the filtered keyword report to the configured sink.
func (s *DashboardService) ExportReport(ctx context.Context, advertiser string, spec domain.FilterSpec) (*KeywordReport, error) {
	log := s.logger.WithContext(ctx)

	report, err := s.QueryKeywords(ctx, advertiser, spec)
	if err != nil {
		return nil, err
	}

	export := domain.ExportReport{
		Advertiser:    advertiser,
		GeneratedAt:   s.now().UTC(),
		Filters:       report.Filters,
		PeriodSummary: report.PeriodSummary,
		Total:         report.Total,
		Rows:          report.Data,
	}

	if err := s.exportClient.Export(ctx, export); err != nil {
		log.WithError(err).Error("Failed to export keyword report")
		return nil, fmt.Errorf("failed to export report: %w", err)
	}

	s.metrics.RecordDashboardQuery("export", "success", len(report.Data))
	log.WithField("records", len(report.Data)).Info("Keyword report exported")

	return report, nil
}

func (s *DashboardService) recordFailure(kind string, err error) {
	status := "error"
	if errors.Is(err, domain.ErrAdvertiserNotFound) {
		status = "not_found"
	}
	s.metrics.RecordDashboardQuery(kind, status, 0)
}

func filterMedias(records []*domain.PerformanceRecord, medias []domain.Media) []*domain.PerformanceRecord {
	if len(medias) == 0 {
		return records
	}
	spec := domain.FilterSpec{SelectedMedias: medias}

	out := make([]*domain.PerformanceRecord, 0, len(records))
	for _, r := range records {
		if spec.HasMedia(r.Media) {
			out = append(out, r)
		}
	}
	return out
}
