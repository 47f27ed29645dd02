package infrastructure

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"adboard/internal/domain"
	"adboard/pkg/logger"
	"adboard/pkg/metrics"

	"golang.org/x/time/rate"
)

// implements domain.ExportClient against an HTTP report sink
type HTTPClient struct {
	client      *http.Client
	sinkURL     string
	sinkSecret  string
	logger      *logger.Logger
	metrics     *metrics.Metrics
	rateLimiter *rate.Limiter
}

// creates a new HTTP client
func NewHTTPClient(sinkURL, sinkSecret string, timeout time.Duration, ratePerSecond int, logger *logger.Logger, metrics *metrics.Metrics) *HTTPClient {
	if ratePerSecond <= 0 {
		ratePerSecond = 100
	}

	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		sinkURL:     sinkURL,
		sinkSecret:  sinkSecret,
		logger:      logger,
		metrics:     metrics,
		rateLimiter: rate.NewLimiter(rate.Limit(ratePerSecond), 10),
	}
}

// Export posts the report as JSON, signed with X-Signature when a secret is
// configured.
func (c *HTTPClient) Export(ctx context.Context, report domain.ExportReport) error {
	if c.sinkURL == "" {
		return domain.ErrSinkNotConfigured
	}

	start := time.Now()

	if err := c.rateLimiter.Wait(ctx); err != nil {
		c.metrics.RecordExternalAPIFailure("sink", "rate_limit")
		return fmt.Errorf("rate limit exceeded: %w", err)
	}

	payload, err := json.Marshal(report)
	if err != nil {
		c.metrics.RecordExternalAPIFailure("sink", "json_marshal")
		return fmt.Errorf("failed to marshal export report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sinkURL, bytes.NewReader(payload))
	if err != nil {
		c.metrics.RecordExternalAPIFailure("sink", "request_creation")
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.sinkSecret != "" {
		req.Header.Set("X-Signature", c.generateHMACSignature(payload))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.metrics.RecordExternalAPIFailure("sink", "network_error")
		return fmt.Errorf("failed to export report: %w", err)
	}
	defer resp.Body.Close()

	duration := time.Since(start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.RecordExternalAPICall("sink", fmt.Sprintf("error_%d", resp.StatusCode), duration)
		return fmt.Errorf("sink API returned status %d", resp.StatusCode)
	}

	c.metrics.RecordExternalAPICall("sink", "success", duration)

	c.logger.WithContext(ctx).WithFields(map[string]any{
		"url":        c.sinkURL,
		"duration":   duration,
		"advertiser": report.Advertiser,
		"records":    len(report.Rows),
	}).Info("Successfully exported report")

	return nil
}

// generates HMAC-SHA256 signature for the payload
func (c *HTTPClient) generateHMACSignature(payload []byte) string {
	h := hmac.New(sha256.New, []byte(c.sinkSecret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
