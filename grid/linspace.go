package grid

import (
	"math"
)

// DefaultSize is the number of price samples used when none is configured.
const DefaultSize = 100

// Linspace returns n evenly spaced prices from lower to upper, both included.
// The last sample is pinned to upper so accumulated rounding never moves it.
func Linspace(lower float64, upper float64, n int) []float64 {

	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{lower}
	}

	step := (upper - lower) / float64(n-1)
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = lower + step*float64(i)
	}
	prices[n-1] = upper

	return prices
}

// Nearest returns the index of the price closest to target. Ties keep the
// lowest index. It returns -1 for an empty slice.
func Nearest(prices []float64, target float64) int {

	if len(prices) == 0 {
		return -1
	}

	index := 0
	for i := 1; i < len(prices); i++ {
		if math.Abs(prices[i]-target) < math.Abs(prices[index]-target) {
			index = i
		}
	}

	return index
}
