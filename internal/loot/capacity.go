package loot

import "math"

// maxReachableCells bounds the DP table MaxReachable will allocate.
const maxReachableCells = 1 << 22

// MaxReachable returns the largest total <= budget that some multiset of the
// items' point values adds up to. It is the ceiling an ideal packer could
// reach; Sample is greedy and random and usually lands below it.
//
// Values are divided by their GCD first. Once the reduced budget passes the
// Schur bound (smallest-1)*(largest-1) every multiple of the GCD is
// reachable and no table is needed. Otherwise an unbounded knapsack DP runs
// over the reduced totals; when that table would exceed maxReachableCells
// the answer is unknown and MaxReachable returns 0. Items with non-positive
// values are ignored.
func MaxReachable(items []Item, budget int) int {
	if budget <= 0 {
		return 0
	}

	// distinct affordable values
	seen := make(map[int]bool)
	var values []int
	for _, it := range items {
		v := it.PointValue
		if v <= 0 || v > budget || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	if len(values) == 0 {
		return 0
	}

	g := values[0]
	for _, v := range values[1:] {
		g = gcd(g, v)
	}
	lo, hi := math.MaxInt, 0
	for i, v := range values {
		values[i] = v / g
		lo = min(lo, values[i])
		hi = max(hi, values[i])
	}
	units := budget / g

	if lo == 1 || (hi-1 <= math.MaxInt/(lo-1) && units >= (lo-1)*(hi-1)) {
		return units * g
	}
	if units > maxReachableCells {
		return 0
	}

	reach := make([]bool, units+1)
	reach[0] = true
	best := 0
	for c := 0; c <= units; c++ {
		if !reach[c] {
			continue
		}
		best = c
		if best == units {
			break
		}
		for _, v := range values {
			if nc := c + v; nc <= units {
				reach[nc] = true
			}
		}
	}
	return best * g
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
