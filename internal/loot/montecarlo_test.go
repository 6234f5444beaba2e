package loot

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcStats(t *testing.T) {
	s := calcStats([]int{4, 1, 3, 2})
	assert.InDelta(t, 2.5, s.Mean, 1e-9)
	assert.InDelta(t, 1.25, s.Var, 1e-9)
	assert.InDelta(t, 2.5, s.P50, 1e-9)
	assert.InDelta(t, 3.7, s.P90, 1e-9)
	assert.Equal(t, []int{4, 1, 3, 2}, s.Samples, "samples keep trial order")

	assert.Equal(t, Stats{}, calcStats(nil))
	one := calcStats([]int{7})
	assert.Equal(t, 7.0, one.P99)
}

func TestRunMonteCarlo_Validation(t *testing.T) {
	ctx := context.Background()
	_, err := RunMonteCarlo(ctx, SimParams{Items: testCatalog(), Budget: 0}, 10, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = RunMonteCarlo(ctx, SimParams{Items: testCatalog(), Budget: 10}, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRunMonteCarlo_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunMonteCarlo(ctx, SimParams{Items: testCatalog(), Budget: 10}, 5, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunMonteCarlo_ExactFill(t *testing.T) {
	p := SimParams{Items: []Item{{Name: "Coin", Rarity: 1, PointValue: 1}}, Budget: 10}
	rep, err := RunMonteCarlo(context.Background(), p, 50, NewSeededRNG(1))
	require.NoError(t, err)

	assert.Equal(t, 50, rep.Trials)
	assert.Equal(t, 10.0, rep.Points.Mean)
	assert.Equal(t, 0.0, rep.Points.StdDev)
	assert.Equal(t, 10.0, rep.Items.Mean)
	assert.Equal(t, 10, rep.OptimalPoints)
	assert.Equal(t, 1.0, rep.MeanFill)
}

func TestRunMonteCarlo_HugeBudget(t *testing.T) {
	p := SimParams{Items: []Item{{Name: "Hoard", Rarity: 1, PointValue: 1 << 62}}, Budget: math.MaxInt}
	rep, err := RunMonteCarlo(context.Background(), p, 1, NewSeededRNG(1))
	require.NoError(t, err)

	assert.Equal(t, 1<<62, rep.OptimalPoints)
	assert.Equal(t, float64(1<<62), rep.Points.Mean)
	assert.Equal(t, 1.0, rep.Items.Mean)
}

func TestRunMonteCarlo_UnderFill(t *testing.T) {
	p := SimParams{Items: Filter(testCatalog(), Constraints{}), Budget: 37}
	rep, err := RunMonteCarlo(context.Background(), p, 500, NewSeededRNG(8))
	require.NoError(t, err)

	assert.LessOrEqual(t, rep.Points.P99, 37.0)
	assert.Equal(t, 35, rep.OptimalPoints)
	assert.Greater(t, rep.MeanFill, 0.0)
	assert.LessOrEqual(t, rep.MeanFill, 1.0)
}
