package tangent

import (
	"errors"
	"fmt"

	"github.com/optakt/rangelp/grid"
)

// DefaultWindow is the number of samples taken on each side of the anchor
// for the central difference.
const DefaultWindow = 1

var (
	ErrShortCurve     = errors.New("curve needs at least two samples")
	ErrLengthMismatch = errors.New("prices and values differ in length")
	ErrWindow         = errors.New("window must be at least one sample")
)

// Line is the linear approximation of a value curve around a target price.
// Anchor is the curve value at the sample nearest to Target, not the exact
// value at Target.
type Line struct {
	Target float64
	Index  int
	Slope  float64
	Anchor float64
	Prices []float64
	Values []float64
}

// At evaluates the line at price.
func (l Line) At(price float64) float64 {
	return l.Slope*(price-l.Target) + l.Anchor
}

// Compute differentiates the value curve at the sample nearest to target,
// using the samples window steps to the left and right, and evaluates the
// resulting line over every price.
func Compute(prices []float64, values []float64, target float64, window int) (Line, error) {

	if len(prices) != len(values) {
		return Line{}, fmt.Errorf("could not compute tangent (%d prices, %d values): %w", len(prices), len(values), ErrLengthMismatch)
	}
	if len(prices) < 2 {
		return Line{}, ErrShortCurve
	}
	if window < 1 {
		return Line{}, ErrWindow
	}

	index := grid.Nearest(prices, target)
	left := index - window
	if left < 0 {
		left = 0
	}
	right := index + window
	if right > len(prices)-1 {
		right = len(prices) - 1
	}

	slope := (values[right] - values[left]) / (prices[right] - prices[left])

	line := Line{
		Target: target,
		Index:  index,
		Slope:  slope,
		Anchor: values[index],
		Prices: prices,
		Values: make([]float64, len(prices)),
	}
	for i, price := range prices {
		line.Values[i] = line.At(price)
	}

	return line, nil
}
