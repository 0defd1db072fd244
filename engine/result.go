package engine

import (
	"github.com/optakt/rangelp/tangent"
)

// Result is either a Normal or a Degenerate evaluation.
type Result interface {
	result()
	Samples() Curves
	Line() tangent.Line
}

// Curves holds the evaluated series, aligned index for index with Prices.
type Curves struct {
	Prices []float64
	Base   []float64
	Quote  []float64
	Value  []float64
	Hold   []float64
	Loss   []float64
}

// Point is the evaluation of the position at a single exact price.
type Point struct {
	Price float64
	Base  float64
	Quote float64
	Value float64
	Hold  float64
	Loss  float64
}

// Composition returns the percentage of the point value held in the base and
// the quote asset. Without a positive value, both shares are 50%.
func (p Point) Composition() (float64, float64) {
	baseValue := p.Base * p.Price
	total := baseValue + p.Quote
	if !(total > 0) {
		return 50, 50
	}
	return baseValue / total * 100, p.Quote / total * 100
}

// Normal is the result for a position with a defined liquidity constant.
type Normal struct {
	Liquidity float64
	Curves    Curves
	Current   Point
	Withdraw  Point
	Tangent   tangent.Line
}

// Degenerate is the result when the entry price equals the upper bound. All
// curves, point values and the tangent are zero; only the prices are kept.
type Degenerate struct {
	Curves   Curves
	Current  Point
	Withdraw Point
	Tangent  tangent.Line
}

func (Normal) result()     {}
func (Degenerate) result() {}

func (n Normal) Samples() Curves     { return n.Curves }
func (d Degenerate) Samples() Curves { return d.Curves }

func (n Normal) Line() tangent.Line     { return n.Tangent }
func (d Degenerate) Line() tangent.Line { return d.Tangent }
