package domain

// Assumed rates standing in for conversion tracking the data source does
// not provide. Every aggregate reads them from here.
const (
	ConversionRateToday     = 0.12
	ConversionRateYesterday = 0.10
	// yesterday's click baseline is today's clicks scaled by this factor
	YesterdayClickFactor = 0.96
)

// PeriodSummary aggregates a record set over every period window.
type PeriodSummary struct {
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
	TotalCost        float64 `json:"totalCost"`
	TotalRevenue     float64 `json:"totalRevenue"`

	TotalCostToday        float64 `json:"totalCostToday"`
	TotalCostYesterday    float64 `json:"totalCostYesterday"`
	TotalCost7Days        float64 `json:"totalCost7Days"`
	TotalCostLastWeek     float64 `json:"totalCostLastWeek"`
	TotalCostCurrentMonth float64 `json:"totalCostCurrentMonth"`
	TotalCostLastMonth    float64 `json:"totalCostLastMonth"`

	TotalConversions          int64 `json:"totalConversions"`
	TotalConversionsYesterday int64 `json:"totalConversionsYesterday"`

	AvgCTR          float64 `json:"avgCtr"`
	AvgCTRYesterday float64 `json:"avgCtrYesterday"`
	AvgCPC          float64 `json:"avgCpc"`
	AvgCPCYesterday float64 `json:"avgCpcYesterday"`
	AvgCPA          float64 `json:"avgCpa"`
	AvgCPAYesterday float64 `json:"avgCpaYesterday"`
	ROAS            float64 `json:"roas"`

	CostChangeRate       float64 `json:"costChangeRate"`
	CPCChangeRate        float64 `json:"cpcChangeRate"`
	ConversionChangeRate float64 `json:"conversionChangeRate"`
	CPAChangeRate        float64 `json:"cpaChangeRate"`
	CTRChangeRate        float64 `json:"ctrChangeRate"`
	WeekCostChangeRate   float64 `json:"weekCostChangeRate"`
	MonthCostChangeRate  float64 `json:"monthCostChangeRate"`
}
