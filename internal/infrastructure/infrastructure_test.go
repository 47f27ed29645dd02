package infrastructure

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adboard/internal/domain"
	"adboard/pkg/logger"
	"adboard/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedGenerator(keywords []string, days int) *Generator {
	g := NewGenerator(keywords, days, 7)
	g.now = func() time.Time { return time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC) }
	return g
}

func TestGeneratorShape(t *testing.T) {
	g := fixedGenerator([]string{"브랜드명", "운동화"}, 3)

	ds, err := g.Generate(context.Background(), "acme")
	require.NoError(t, err)

	assert.Equal(t, "acme", ds.Advertiser)
	assert.Len(t, ds.Keywords, 2*len(domain.Platforms))
	assert.Len(t, ds.Daily, 3*len(domain.Platforms))

	assert.Equal(t, "2025-03-08", ds.Daily[0].Date)
	assert.Equal(t, "2025-03-10", ds.Daily[len(ds.Daily)-1].Date)

	ids := map[string]bool{}
	for _, r := range append(ds.Keywords, ds.Daily...) {
		assert.LessOrEqual(t, r.Clicks, r.Impressions)
		assert.GreaterOrEqual(t, r.CostToday, 0.0)
		assert.NotEmpty(t, r.ID)
		assert.False(t, ids[r.ID], "duplicate id %s", r.ID)
		ids[r.ID] = true
	}
}

func TestGeneratorIsDeterministicPerAdvertiser(t *testing.T) {
	g := fixedGenerator([]string{"브랜드명"}, 2)

	first, err := g.Generate(context.Background(), "acme")
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), "acme")
	require.NoError(t, err)
	other, err := g.Generate(context.Background(), "globex")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first.Keywords[0].CostToday, other.Keywords[0].CostToday)
}

func TestGeneratorHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fixedGenerator([]string{"x"}, 1).Generate(ctx, "acme")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecordRepositorySnapshots(t *testing.T) {
	repo := NewRecordRepository(logger.Discard())
	ctx := context.Background()

	original := []*domain.PerformanceRecord{{ID: "a", Keyword: "운동화", Clicks: 10}}
	require.NoError(t, repo.Store(ctx, domain.Dataset{Advertiser: "acme", Keywords: original}))

	original[0].Clicks = 500

	snap, err := repo.KeywordRecords(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, snap, 1)
	assert.Equal(t, int64(10), snap[0].Clicks, "store keeps its own copy")

	snap[0].Clicks = 700
	again, err := repo.KeywordRecords(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, int64(10), again[0].Clicks, "reads hand out copies")

	daily, err := repo.DailyRecords(ctx, "acme")
	require.NoError(t, err)
	assert.Empty(t, daily)
}

func TestRecordRepositoryUnknownAdvertiser(t *testing.T) {
	repo := NewRecordRepository(logger.Discard())

	_, err := repo.KeywordRecords(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrAdvertiserNotFound)

	_, err = repo.DailyRecords(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrAdvertiserNotFound)

	assert.Error(t, repo.Store(context.Background(), domain.Dataset{}))
}

func TestRecordRepositoryAdvertisersSorted(t *testing.T) {
	repo := NewRecordRepository(logger.Discard())
	ctx := context.Background()
	for _, name := range []string{"globex", "acme", "initech"} {
		require.NoError(t, repo.Store(ctx, domain.Dataset{Advertiser: name}))
	}

	names, err := repo.Advertisers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"acme", "globex", "initech"}, names)
}

func TestHTTPClientExportSignsPayload(t *testing.T) {
	var gotBody []byte
	var gotSignature string

	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get("X-Signature")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer sink.Close()

	m := metrics.New(prometheus.NewRegistry())
	client := NewHTTPClient(sink.URL, "s3cret", time.Second, 10, logger.Discard(), m)

	report := domain.ExportReport{
		Advertiser: "acme",
		Total:      1,
		Rows:       []*domain.PerformanceRecord{{ID: "a", Keyword: "운동화", Media: domain.MediaNaver}},
	}
	require.NoError(t, client.Export(context.Background(), report))

	mac := hmac.New(sha256.New, []byte("s3cret"))
	mac.Write(gotBody)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)

	var decoded domain.ExportReport
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, "acme", decoded.Advertiser)
	require.Len(t, decoded.Rows, 1)
	assert.Equal(t, "운동화", decoded.Rows[0].Keyword)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExternalAPICalls.WithLabelValues("sink", "success")))
}

func TestHTTPClientExportErrors(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	unconfigured := NewHTTPClient("", "", time.Second, 10, logger.Discard(), m)
	assert.ErrorIs(t, unconfigured.Export(context.Background(), domain.ExportReport{}), domain.ErrSinkNotConfigured)

	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer sink.Close()

	failing := NewHTTPClient(sink.URL, "", time.Second, 10, logger.Discard(), m)
	err := failing.Export(context.Background(), domain.ExportReport{Advertiser: "acme"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExternalAPICalls.WithLabelValues("sink", "error_502")))
}
