package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"adboard/internal/domain"
	"adboard/pkg/logger"
	"adboard/pkg/metrics"
)

// SeedService fills the repository from the data source.
type SeedService struct {
	repo       domain.RecordRepository
	generator  domain.RecordGenerator
	logger     *logger.Logger
	metrics    *metrics.Metrics
	workerPool int
}

func NewSeedService(
	repo domain.RecordRepository,
	generator domain.RecordGenerator,
	logger *logger.Logger,
	metrics *metrics.Metrics,
	workerPool int,
) *SeedService {
	if workerPool <= 0 {
		workerPool = 1
	}
	return &SeedService{
		repo:       repo,
		generator:  generator,
		logger:     logger,
		metrics:    metrics,
		workerPool: workerPool,
	}
}

type seedResult struct {
	dataset domain.Dataset
	err     error
}

// Run generates and stores a dataset for every advertiser. Generation runs
// in a worker pool; the first failure is returned after all workers finish.
func (s *SeedService) Run(ctx context.Context, advertisers []string) error {
	start := time.Now()
	s.metrics.IncSeedJobsInProgress()
	defer s.metrics.DecSeedJobsInProgress()

	log := s.logger.WithContext(ctx)
	log.WithField("advertisers", len(advertisers)).Info("Starting dummy data seed")

	jobs := make(chan string, len(advertisers))
	results := make(chan seedResult, len(advertisers))

	var wg sync.WaitGroup
	for i := 0; i < s.workerPool; i++ {
		wg.Go(func() {
			for advertiser := range jobs {
				dataset, err := s.generator.Generate(ctx, advertiser)
				results <- seedResult{dataset: dataset, err: err}
			}
		})
	}

	go func() {
		defer close(jobs)
		for _, advertiser := range advertisers {
			jobs <- advertiser
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var firstErr error
	stored := 0
	for result := range results {
		if result.err != nil {
			log.WithError(result.err).Error("Failed to generate dataset")
			if firstErr == nil {
				firstErr = result.err
			}
			continue
		}

		if err := s.repo.Store(ctx, result.dataset); err != nil {
			log.WithError(err).WithField("advertiser", result.dataset.Advertiser).Error("Failed to store dataset")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		s.metrics.RecordGenerated("keyword", len(result.dataset.Keywords))
		s.metrics.RecordGenerated("daily", len(result.dataset.Daily))
		stored++
	}

	duration := time.Since(start)
	if firstErr != nil {
		s.metrics.RecordSeedJob("failed", duration)
		return fmt.Errorf("failed to seed dummy data: %w", firstErr)
	}

	s.metrics.RecordSeedJob("success", duration)
	log.WithFields(map[string]any{
		"duration":    duration,
		"advertisers": stored,
	}).Info("Dummy data seed completed")

	return nil
}
