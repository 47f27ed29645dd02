package delivery

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"adboard/internal/domain"
	"adboard/internal/usecase"
	"adboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// handles HTTP requests
type HTTPHandlers struct {
	dashboardService *usecase.DashboardService
	seedService      *usecase.SeedService
	logger           *logger.Logger
	advertisers      []string
	development      bool
}

// creates new HTTP handlers; advertisers[0] is used when a request names none
func NewHTTPHandlers(
	dashboardService *usecase.DashboardService,
	seedService *usecase.SeedService,
	logger *logger.Logger,
	advertisers []string,
	development bool,
) *HTTPHandlers {
	return &HTTPHandlers{
		dashboardService: dashboardService,
		seedService:      seedService,
		logger:           logger,
		advertisers:      advertisers,
		development:      development,
	}
}

// QueryKeywords applies the dashboard filter payload to the keyword view
func (h *HTTPHandlers) QueryKeywords(c *gin.Context) {
	ctx, requestID := requestContext(c)

	req, spec, ok := h.bindFilter(c, requestID)
	if !ok {
		return
	}

	report, err := h.dashboardService.QueryKeywords(ctx, h.advertiser(req.Advertiser), spec)
	if err != nil {
		h.respondError(c, ctx, err, requestID, "Failed to query keywords")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          report.Data,
		"periodSummary": report.PeriodSummary,
		"total":         report.Total,
		"filters":       h.echoFilters(req, spec),
		"request_id":    requestID,
	})
}

// GetSummary returns the period summary for the selected medias
func (h *HTTPHandlers) GetSummary(c *gin.Context) {
	ctx, requestID := requestContext(c)

	medias, err := parseMediaQuery(c.Query("medias"))
	if err != nil {
		h.respondError(c, ctx, err, requestID, "Invalid medias")
		return
	}

	summary, err := h.dashboardService.Summary(ctx, h.advertiser(c.Query("advertiser")), medias)
	if err != nil {
		h.respondError(c, ctx, err, requestID, "Failed to build summary")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"periodSummary": summary,
		"request_id":    requestID,
	})
}

// GetChart returns the date series and platform breakdown of one metric
func (h *HTTPHandlers) GetChart(c *gin.Context) {
	ctx, requestID := requestContext(c)

	medias, err := parseMediaQuery(c.Query("medias"))
	if err != nil {
		h.respondError(c, ctx, err, requestID, "Invalid medias")
		return
	}

	metric := strings.TrimSpace(c.DefaultQuery("metric", "cost"))

	report, err := h.dashboardService.Chart(ctx, h.advertiser(c.Query("advertiser")), metric, medias)
	if err != nil {
		h.respondError(c, ctx, err, requestID, "Failed to build chart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"metric":     report.Metric,
		"series":     report.Series,
		"totals":     report.Totals,
		"request_id": requestID,
	})
}

// ExpandRow returns the other medias' rows for the keyword of row :id
func (h *HTTPHandlers) ExpandRow(c *gin.Context) {
	ctx, requestID := requestContext(c)

	rows, err := h.dashboardService.ExpandKeyword(ctx, h.advertiser(c.Query("advertiser")), c.Param("id"))
	if err != nil {
		h.respondError(c, ctx, err, requestID, "Failed to expand row")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       rows,
		"total":      len(rows),
		"request_id": requestID,
	})
}

// SeedRun regenerates the dummy data of one or every configured advertiser
func (h *HTTPHandlers) SeedRun(c *gin.Context) {
	ctx, requestID := requestContext(c)

	log := h.logger.WithContext(ctx)
	log.Info("Starting dummy data seed")

	advertisers := h.advertisers
	if name := strings.TrimSpace(c.Query("advertiser")); name != "" {
		advertisers = []string{name}
	}

	if err := h.seedService.Run(ctx, advertisers); err != nil {
		h.respondError(c, ctx, err, requestID, "Seed failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Dummy data seeded successfully",
		"advertisers": advertisers,
		"request_id":  requestID,
	})
}

// ExportRun pushes the filtered keyword report to the report sink
func (h *HTTPHandlers) ExportRun(c *gin.Context) {
	ctx, requestID := requestContext(c)

	req, spec, ok := h.bindFilter(c, requestID)
	if !ok {
		return
	}

	advertiser := h.advertiser(req.Advertiser)
	report, err := h.dashboardService.ExportReport(ctx, advertiser, spec)
	if err != nil {
		h.respondError(c, ctx, err, requestID, "Export failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Export completed successfully",
		"advertiser": advertiser,
		"exported":   len(report.Data),
		"total":      report.Total,
		"request_id": requestID,
	})
}

// GetAPIInfo returns API v1 information and available endpoints
func (h *HTTPHandlers) GetAPIInfo(c *gin.Context) {
	_, requestID := requestContext(c)

	filterPayload := gin.H{
		"selectedMedias": "Required: media labels or keys (naver, google, kakao, meta, tiktok)",
		"keywordMetric":  "Optional: adCost (default), clicks or cpc",
		"sortOrder":      "Optional: desc (default) or asc",
		"keywordCount":   "Optional: maximum number of rows",
		"costRangeMin":   "Optional: minimum cost_today, applied when sorting by cpc",
		"costRangeMax":   "Optional: maximum cost_today, applied when sorting by cpc",
		"selectedDate":   "Optional: YYYY-MM-DD",
		"advertiser":     "Optional: advertiser name",
	}

	c.JSON(http.StatusOK, gin.H{
		"api_version": "v1",
		"service":     "adboard",
		"version":     "1.0.0",
		"description": "Advertising performance dashboard API",
		"endpoints": gin.H{
			"keywords": gin.H{
				"path":        "/api/v1/dashboard/keywords",
				"method":      "POST",
				"description": "Filter, sort and limit keyword performance rows",
				"body":        filterPayload,
			},
			"summary": gin.H{
				"path":        "/api/v1/dashboard/summary",
				"method":      "GET",
				"description": "Period totals, averages and change rates",
				"example":     "/api/v1/dashboard/summary?medias=naver,google",
			},
			"chart": gin.H{
				"path":        "/api/v1/dashboard/chart",
				"method":      "GET",
				"description": "Daily series per platform and platform totals for one metric",
				"example":     "/api/v1/dashboard/chart?metric=clicks",
			},
			"expand": gin.H{
				"path":        "/api/v1/dashboard/rows/:id/expand",
				"method":      "GET",
				"description": "Rows of the same keyword on the other medias",
			},
			"seed": gin.H{
				"path":        "/api/v1/seed/run",
				"method":      "POST",
				"description": "Regenerate dummy performance data",
			},
			"export": gin.H{
				"path":        "/api/v1/export/run",
				"method":      "POST",
				"description": "Export a filtered keyword report to the configured sink",
				"body":        filterPayload,
			},
		},
		"business_metrics": gin.H{
			"ctr":  "Click-through rate (clicks / impressions x 100)",
			"cpc":  "Cost per click (cost / clicks)",
			"cpa":  "Cost per acquisition (cost / conversions)",
			"roas": "Return on ad spend (revenue / cost x 100)",
			"cvr":  "Conversion rate (conversions / clicks x 100)",
		},
		"request_id": requestID,
	})
}

// HealthCheck returns the health status of the service
func (h *HTTPHandlers) HealthCheck(c *gin.Context) {
	_, requestID := requestContext(c)

	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"service":    "adboard",
		"version":    "1.0.0",
		"request_id": requestID,
	})
}

func (h *HTTPHandlers) bindFilter(c *gin.Context, requestID string) (keywordQueryRequest, domain.FilterSpec, bool) {
	var req keywordQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid filter",
			"message":    validationMessage(err),
			"request_id": requestID,
		})
		return req, domain.FilterSpec{}, false
	}

	spec, err := req.toFilterSpec()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid filter",
			"message":    err.Error(),
			"request_id": requestID,
		})
		return req, domain.FilterSpec{}, false
	}

	return req, spec, true
}

func (h *HTTPHandlers) echoFilters(req keywordQueryRequest, spec domain.FilterSpec) gin.H {
	return gin.H{
		"selectedMedias": spec.SelectedMedias,
		"keywordMetric":  spec.Metric,
		"sortOrder":      spec.Order,
		"keywordCount":   spec.Count,
		"costRangeMin":   spec.MinCost,
		"costRangeMax":   spec.MaxCost,
		"selectedDate":   req.SelectedDate,
		"advertiser":     h.advertiser(req.Advertiser),
	}
}

func (h *HTTPHandlers) advertiser(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	if len(h.advertisers) > 0 {
		return h.advertisers[0]
	}
	return ""
}

// respondError maps domain errors onto status codes. Internal detail is only
// exposed in development.
func (h *HTTPHandlers) respondError(c *gin.Context, ctx context.Context, err error, requestID, title string) {
	status := http.StatusInternalServerError
	message := "an unexpected error occurred"

	switch {
	case errors.Is(err, domain.ErrInvalidFilterSpec):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrAdvertiserNotFound), errors.Is(err, domain.ErrRecordNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrSinkNotConfigured):
		status, message = http.StatusServiceUnavailable, err.Error()
	case h.development:
		message = err.Error()
	}

	entry := h.logger.WithContext(ctx).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error(title)
	} else {
		entry.Warn(title)
	}

	c.JSON(status, gin.H{
		"error":      title,
		"message":    message,
		"request_id": requestID,
	})
}

// requestContext returns the request context and the id set by the
// RequestID middleware, minting one when the middleware did not run.
func requestContext(c *gin.Context) (context.Context, string) {
	ctx := c.Request.Context()
	requestID := c.GetString("request_id")
	if requestID == "" {
		requestID = uuid.New().String()
		ctx = context.WithValue(ctx, logger.RequestIDKey, requestID)
	}
	return ctx, requestID
}
