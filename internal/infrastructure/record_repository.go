package infrastructure

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"adboard/internal/domain"
	"adboard/pkg/logger"
)

// implements domain.RecordRepository in memory
type RecordRepository struct {
	data   map[string]domain.Dataset
	mutex  sync.RWMutex
	logger *logger.Logger
}

// creates a new record repository
func NewRecordRepository(logger *logger.Logger) *RecordRepository {
	return &RecordRepository{
		data:   make(map[string]domain.Dataset),
		logger: logger,
	}
}

// Store replaces the advertiser's dataset with a private copy of dataset.
func (r *RecordRepository) Store(ctx context.Context, dataset domain.Dataset) error {
	if dataset.Advertiser == "" {
		return fmt.Errorf("store dataset: advertiser is required")
	}

	stored := domain.Dataset{
		Advertiser: dataset.Advertiser,
		Keywords:   domain.CloneRecords(dataset.Keywords),
		Daily:      domain.CloneRecords(dataset.Daily),
	}

	r.mutex.Lock()
	r.data[dataset.Advertiser] = stored
	r.mutex.Unlock()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"advertiser":      dataset.Advertiser,
		"keyword_records": len(stored.Keywords),
		"daily_records":   len(stored.Daily),
	}).Info("Stored performance records in memory")

	return nil
}

// KeywordRecords returns a snapshot of the advertiser's keyword rows.
func (r *RecordRepository) KeywordRecords(ctx context.Context, advertiser string) ([]*domain.PerformanceRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	dataset, exists := r.data[advertiser]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrAdvertiserNotFound, advertiser)
	}
	return domain.CloneRecords(dataset.Keywords), nil
}

// DailyRecords returns a snapshot of the advertiser's daily platform rows.
func (r *RecordRepository) DailyRecords(ctx context.Context, advertiser string) ([]*domain.PerformanceRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	dataset, exists := r.data[advertiser]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrAdvertiserNotFound, advertiser)
	}
	return domain.CloneRecords(dataset.Daily), nil
}

func (r *RecordRepository) Advertisers(ctx context.Context) ([]string, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	advertisers := make([]string, 0, len(r.data))
	for name := range r.data {
		advertisers = append(advertisers, name)
	}
	sort.Strings(advertisers)

	return advertisers, nil
}
