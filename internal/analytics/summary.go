package analytics

import "adboard/internal/domain"

// Summarize reduces records into period totals, averages and change rates.
// Each cost window is summed as supplied; none is derived from daily data.
// Conversions and the yesterday click baseline use the assumed rates in
// the domain package. An empty input yields the zero summary.
func Summarize(records []*domain.PerformanceRecord) domain.PeriodSummary {
	var s domain.PeriodSummary

	for _, r := range records {
		if r == nil {
			continue
		}
		s.TotalImpressions += r.Impressions
		s.TotalClicks += r.Clicks
		s.TotalCost += finite(r.Cost)
		s.TotalRevenue += finite(r.Revenue)

		s.TotalCostToday += finite(r.CostToday)
		s.TotalCostYesterday += finite(r.CostYesterday)
		s.TotalCost7Days += finite(r.Cost7Days)
		s.TotalCostLastWeek += finite(r.CostLastWeek)
		s.TotalCostCurrentMonth += finite(r.CostCurrentMonth)
		s.TotalCostLastMonth += finite(r.CostLastMonth)
	}

	clicks := float64(s.TotalClicks)
	impressions := float64(s.TotalImpressions)

	s.TotalConversions = Conversions(clicks, domain.ConversionRateToday)
	s.TotalConversionsYesterday = Conversions(clicks, domain.ConversionRateYesterday)

	s.AvgCTR = CTR(clicks, impressions)
	s.AvgCTRYesterday = CTR(clicks*domain.YesterdayClickFactor, impressions)

	// no separate yesterday click total exists, today's clicks stand in
	s.AvgCPC = CPC(s.TotalCostToday, clicks)
	s.AvgCPCYesterday = CPC(s.TotalCostYesterday, clicks)

	s.AvgCPA = CPA(s.TotalCostToday, float64(s.TotalConversions))
	s.AvgCPAYesterday = CPA(s.TotalCostYesterday, float64(s.TotalConversionsYesterday))

	s.ROAS = ROAS(s.TotalRevenue, s.TotalCost)

	s.CostChangeRate = ChangeRate(s.TotalCostToday, s.TotalCostYesterday)
	s.CPCChangeRate = ChangeRate(s.AvgCPC, s.AvgCPCYesterday)
	s.ConversionChangeRate = ChangeRate(float64(s.TotalConversions), float64(s.TotalConversionsYesterday))
	s.CPAChangeRate = ChangeRate(s.AvgCPA, s.AvgCPAYesterday)
	s.CTRChangeRate = ChangeRate(s.AvgCTR, s.AvgCTRYesterday)
	s.WeekCostChangeRate = ChangeRate(s.TotalCost7Days, s.TotalCostLastWeek)
	s.MonthCostChangeRate = ChangeRate(s.TotalCostCurrentMonth, s.TotalCostLastMonth)

	return s
}
