// Package analytics holds the pure aggregation and filtering rules of the
// dashboard. Every function takes its full input as arguments, never
// mutates it and never returns NaN or Inf.
package analytics

import "math"

// CTR is clicks per impression as a percentage with two decimals.
func CTR(clicks, impressions float64) float64 {
	clicks, impressions = finite(clicks), finite(impressions)
	if impressions <= 0 {
		return 0
	}
	return roundTo(clicks/impressions*100, 2)
}

// CPC is cost per click rounded to the nearest integer.
func CPC(cost, clicks float64) float64 {
	cost, clicks = finite(cost), finite(clicks)
	if clicks <= 0 {
		return 0
	}
	return roundTo(cost/clicks, 0)
}

// CPA is cost per conversion, floored. Unlike CPC it never rounds up.
func CPA(cost, conversions float64) float64 {
	cost, conversions = finite(cost), finite(conversions)
	if conversions <= 0 {
		return 0
	}
	return finite(math.Floor(cost / conversions))
}

// ROAS is revenue per unit of cost as a percentage with two decimals.
func ROAS(revenue, cost float64) float64 {
	revenue, cost = finite(revenue), finite(cost)
	if cost <= 0 {
		return 0
	}
	return roundTo(revenue/cost*100, 2)
}

// CVR is conversions per click as a percentage with two decimals.
func CVR(conversions, clicks float64) float64 {
	conversions, clicks = finite(conversions), finite(clicks)
	if clicks <= 0 {
		return 0
	}
	return roundTo(conversions/clicks*100, 2)
}

// Conversions estimates conversions from clicks with an assumed rate.
func Conversions(clicks, rate float64) int64 {
	v := finite(math.Floor(finite(clicks) * finite(rate)))
	return int64(v)
}

// ChangeRate is the percentage change from previous to current with one
// decimal. A non-positive previous value yields 0.
func ChangeRate(current, previous float64) float64 {
	current, previous = finite(current), finite(previous)
	if previous <= 0 {
		return 0
	}
	return roundTo((current-previous)/previous*100, 1)
}

// roundTo rounds half toward +Inf, so -22.5 becomes -22.
func roundTo(x float64, places int) float64 {
	p := math.Pow10(places)
	return finite(math.Floor(x*p+0.5) / p)
}

func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
