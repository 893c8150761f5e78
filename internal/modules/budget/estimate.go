// README: Budget estimator; closed-form trip cost from fixed per-day rates.
package budget

import (
	"errors"
	"math"
)

// ErrInvalidStyle is returned for a daily style outside the fixed rate table.
// Daily style has no default; destination and accommodation do.
var ErrInvalidStyle = errors.New("unknown daily style")

type Input struct {
	Days            int
	Travelers       int
	DestinationType string // city/beach/mountains/rural
	Accommodation   string // budget/mid/premium
	DailyStyle      string // thrifty/standard/comfort
}

type Output struct {
	TotalEstimate float64            `json:"total_estimate"`
	PerDay        float64            `json:"per_day"`
	Breakdown     map[string]float64 `json:"breakdown"`
	Suggestions   []string           `json:"suggestions"`
}

// Per-day base rates, per person.
var baseFood = map[string]float64{
	"thrifty":  18,
	"standard": 35,
	"comfort":  60,
}

var destAdjust = map[string]float64{
	"city":      1.0,
	"beach":     1.1,
	"mountains": 0.9,
	"rural":     0.8,
}

// Accommodation is per room per day, not per traveler.
var accomRates = map[string]float64{
	"budget":  15,
	"mid":     35,
	"premium": 80,
}

const (
	transportBase   = 8.0
	miscDaily       = 5.0
	defaultAccoRate = 15.0
)

var suggestions = []string{
	"Book stays with kitchens to save on breakfasts.",
	"Use day passes for public transport.",
	"Travel mid-week to reduce fares.",
}

// Estimate computes a trip cost breakdown. Unrecognized destination types and
// accommodation tiers fall back to their defaults; an unrecognized daily style
// is rejected.
func Estimate(in Input) (Output, error) {
	base, ok := baseFood[in.DailyStyle]
	if !ok {
		return Output{}, ErrInvalidStyle
	}
	adj, ok := destAdjust[in.DestinationType]
	if !ok {
		adj = 1.0
	}
	accom, ok := accomRates[in.Accommodation]
	if !ok {
		accom = defaultAccoRate
	}

	days := float64(in.Days)
	travelers := float64(in.Travelers)

	dailyFood := base * adj
	dailyTransport := transportBase * adj
	perPersonDaily := dailyFood + dailyTransport + miscDaily

	total := (perPersonDaily*travelers + accom) * days

	return Output{
		TotalEstimate: round2(total),
		PerDay:        round2(total / math.Max(days, 1)),
		Breakdown: map[string]float64{
			"food":      round2(dailyFood * travelers * days),
			"transport": round2(dailyTransport * travelers * days),
			"misc":      round2(miscDaily * travelers * days),
			"stay":      round2(accom * days),
		},
		Suggestions: suggestions,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
