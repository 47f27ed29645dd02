package delivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"adboard/internal/domain"
)

// optionalNumber decodes a JSON number or numeric string. Anything else,
// including null and "", leaves it unset.
type optionalNumber struct {
	Value float64
	Set   bool
}

func (n *optionalNumber) UnmarshalJSON(data []byte) error {
	*n = optionalNumber{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		n.Value, n.Set = v, true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			n.Value, n.Set = f, true
		}
	}
	return nil
}

func (n optionalNumber) ptr() *float64 {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}

// keywordQueryRequest is the dashboard filter payload.
type keywordQueryRequest struct {
	Advertiser     string         `json:"advertiser"`
	SelectedMedias []string       `json:"selectedMedias" binding:"required,min=1,dive,required"`
	KeywordMetric  string         `json:"keywordMetric"`
	SortOrder      string         `json:"sortOrder"`
	KeywordCount   optionalNumber `json:"keywordCount"`
	CostRangeMin   optionalNumber `json:"costRangeMin"`
	CostRangeMax   optionalNumber `json:"costRangeMax"`
	SelectedDate   string         `json:"selectedDate" binding:"omitempty,datetime=2006-01-02"`
}

// toFilterSpec maps the payload onto a FilterSpec. Unknown medias are
// rejected rather than silently dropped.
func (r keywordQueryRequest) toFilterSpec() (domain.FilterSpec, error) {
	medias, err := parseMedias(r.SelectedMedias)
	if err != nil {
		return domain.FilterSpec{}, err
	}

	spec := domain.FilterSpec{
		SelectedMedias: medias,
		Metric:         domain.ParseSortMetric(r.KeywordMetric),
		Order:          domain.ParseSortOrder(r.SortOrder),
		MinCost:        r.CostRangeMin.ptr(),
		MaxCost:        r.CostRangeMax.ptr(),
	}
	if r.KeywordCount.Set && r.KeywordCount.Value > 0 {
		spec.Count = int(r.KeywordCount.Value)
	}

	return spec, nil
}

func parseMedias(values []string) ([]domain.Media, error) {
	medias := make([]domain.Media, 0, len(values))
	for _, v := range values {
		m, ok := domain.ParseMedia(strings.TrimSpace(v))
		if !ok {
			return nil, fmt.Errorf("%w: unknown media %q", domain.ErrInvalidFilterSpec, v)
		}
		medias = append(medias, m)
	}
	return medias, nil
}

// comma separated query value, empty means every media
func parseMediaQuery(value string) ([]domain.Media, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	return parseMedias(strings.Split(value, ","))
}
