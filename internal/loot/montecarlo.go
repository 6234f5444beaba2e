package loot

import (
	"context"
	"math"
	"sort"
)

// SimParams describes what one simulated generation draws from.
type SimParams struct {
	// Items already passed through Filter.
	Items  []Item
	Budget int
	// Materials follows Sample: nil disables resolution.
	Materials []Material
}

// Stats summarizes simulation results.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"stddev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
	// Optional: raw samples if caller needs histograms/exports
	Samples []int `json:"-"`
}

// Report is the outcome of RunMonteCarlo.
type Report struct {
	Trials int `json:"trials"`
	Budget int `json:"budget"`
	// Points is the distribution of generated totals, Items of result lengths.
	Points Stats `json:"points"`
	Items  Stats `json:"items"`
	// OptimalPoints is the best total the filtered point values can reach
	// under Budget, ignoring material modifiers. It is 0 when the search
	// would be too large to run.
	OptimalPoints int `json:"optimal_points"`
	// MeanFill is Points.Mean / Budget.
	MeanFill float64 `json:"mean_fill"`
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// population variance
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(sorted, 0.50),
		P90:     percentile(sorted, 0.90),
		P99:     percentile(sorted, 0.99),
		Samples: xs,
	}
}

// percentile interpolates linearly between the closest ranks of sorted.
func percentile(sorted []int, p float64) float64 {
	n := len(sorted)
	if n == 1 || p <= 0 {
		return float64(sorted[0])
	}
	if p >= 1 {
		return float64(sorted[n-1])
	}
	pos := p * float64(n-1)
	i := int(math.Floor(pos))
	f := pos - float64(i)
	if i+1 >= n {
		return float64(sorted[i])
	}
	return float64(sorted[i])*(1-f) + float64(sorted[i+1])*f
}

// RunMonteCarlo runs trials independent samples sharing rng and summarizes
// the totals and lengths they produce. It stops with ctx's error when ctx is
// done between trials.
func RunMonteCarlo(ctx context.Context, p SimParams, trials int, rng RandomSource) (Report, error) {
	if err := validateBudget(p.Budget); err != nil {
		return Report{}, err
	}
	if err := validateTrials(trials); err != nil {
		return Report{}, err
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	points := make([]int, trials)
	counts := make([]int, trials)
	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		out, err := Sample(p.Items, p.Budget, p.Materials, rng)
		if err != nil {
			return Report{}, err
		}
		points[i] = Total(out)
		counts[i] = len(out)
	}

	rep := Report{
		Trials:        trials,
		Budget:        p.Budget,
		Points:        calcStats(points),
		Items:         calcStats(counts),
		OptimalPoints: MaxReachable(p.Items, p.Budget),
	}
	rep.MeanFill = rep.Points.Mean / float64(p.Budget)
	return rep, nil
}
