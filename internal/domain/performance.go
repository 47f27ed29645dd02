package domain

// PerformanceRecord is one row of observed ad performance, either for a
// (keyword, media) pair in the keyword view or a (date, media) pair in the
// chart view. The windowed cost and cpc fields are independent
// pre-aggregated observations; none of them is derived from another.
type PerformanceRecord struct {
	ID       string `json:"id"`
	Keyword  string `json:"keyword,omitempty"`
	Media    Media  `json:"media"`
	Date     string `json:"date,omitempty"`
	Campaign string `json:"campaign"`
	AdGroup  string `json:"adGroup"`

	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
	Conversions int64 `json:"conversions"`

	Cost    float64 `json:"cost"`
	Revenue float64 `json:"revenue,omitempty"`
	CTR     float64 `json:"ctr"`

	CostToday        float64 `json:"cost_today"`
	CostYesterday    float64 `json:"cost_yesterday"`
	Cost7Days        float64 `json:"cost_7days"`
	CostLastWeek     float64 `json:"cost_last_week"`
	CostCurrentMonth float64 `json:"cost_current_month"`
	CostLastMonth    float64 `json:"cost_last_month"`

	CPCToday        float64 `json:"cpc_today"`
	CPCYesterday    float64 `json:"cpc_yesterday"`
	CPC7Days        float64 `json:"cpc_7days"`
	CPCLastWeek     float64 `json:"cpc_last_week"`
	CPCCurrentMonth float64 `json:"cpc_current_month"`
	CPCLastMonth    float64 `json:"cpc_last_month"`
}

// FieldValue looks a numeric field up by its JSON name. Unknown names and
// non-numeric fields read as 0.
func (r *PerformanceRecord) FieldValue(name string) float64 {
	switch name {
	case "impressions":
		return float64(r.Impressions)
	case "clicks":
		return float64(r.Clicks)
	case "conversions":
		return float64(r.Conversions)
	case "cost":
		return r.Cost
	case "revenue":
		return r.Revenue
	case "ctr":
		return r.CTR
	case "cost_today":
		return r.CostToday
	case "cost_yesterday":
		return r.CostYesterday
	case "cost_7days":
		return r.Cost7Days
	case "cost_last_week":
		return r.CostLastWeek
	case "cost_current_month":
		return r.CostCurrentMonth
	case "cost_last_month":
		return r.CostLastMonth
	case "cpc_today":
		return r.CPCToday
	case "cpc_yesterday":
		return r.CPCYesterday
	case "cpc_7days":
		return r.CPC7Days
	case "cpc_last_week":
		return r.CPCLastWeek
	case "cpc_current_month":
		return r.CPCCurrentMonth
	case "cpc_last_month":
		return r.CPCLastMonth
	}
	return 0
}

// Dataset is everything the data source produces for one advertiser.
type Dataset struct {
	Advertiser string               `json:"advertiser"`
	Keywords   []*PerformanceRecord `json:"keywords"`
	Daily      []*PerformanceRecord `json:"daily"`
}

// CloneRecords copies every record so the result shares no memory with in.
func CloneRecords(in []*PerformanceRecord) []*PerformanceRecord {
	out := make([]*PerformanceRecord, 0, len(in))
	for _, r := range in {
		if r == nil {
			continue
		}
		c := *r
		out = append(out, &c)
	}
	return out
}
