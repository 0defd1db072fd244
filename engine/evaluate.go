package engine

import (
	"fmt"

	"github.com/optakt/rangelp/grid"
	"github.com/optakt/rangelp/position"
	"github.com/optakt/rangelp/tangent"
)

// Compute validates the configuration and the parameters, then evaluates the
// position over a fresh price grid.
func Compute(cfg Config, params position.Params) (Result, error) {

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("could not use engine configuration: %w", err)
	}

	err = params.Validate()
	if err != nil {
		return nil, fmt.Errorf("could not validate position: %w", err)
	}

	prices := grid.Linspace(params.Lower, params.Upper, cfg.GridSize)

	return Evaluate(params, prices, cfg.Window)
}

// Evaluate derives holdings, values and losses over the given prices and at
// the current and withdraw prices. It does not validate its inputs: invalid
// prices propagate NaN and an inverted range yields a negative liquidity.
func Evaluate(params position.Params, prices []float64, window int) (Result, error) {

	lp, ok := position.NewConcentrated(params)
	if !ok {
		curves := zeroCurves(prices)
		line, err := tangent.Compute(prices, curves.Value, params.Withdraw, window)
		if err != nil {
			return nil, fmt.Errorf("could not compute withdraw tangent: %w", err)
		}
		degenerate := Degenerate{
			Curves:   curves,
			Current:  Point{Price: params.Current},
			Withdraw: Point{Price: params.Withdraw},
			Tangent:  line,
		}
		return degenerate, nil
	}

	hold := position.Hold{Amount: params.Amount}

	curves := Curves{
		Prices: prices,
		Base:   make([]float64, len(prices)),
		Quote:  make([]float64, len(prices)),
		Value:  make([]float64, len(prices)),
		Hold:   make([]float64, len(prices)),
		Loss:   make([]float64, len(prices)),
	}
	for i, price := range prices {
		point := evaluate(lp, hold, price)
		curves.Base[i] = point.Base
		curves.Quote[i] = point.Quote
		curves.Value[i] = point.Value
		curves.Hold[i] = point.Hold
		curves.Loss[i] = point.Loss
	}

	line, err := tangent.Compute(prices, curves.Value, params.Withdraw, window)
	if err != nil {
		return nil, fmt.Errorf("could not compute withdraw tangent: %w", err)
	}

	normal := Normal{
		Liquidity: lp.Liquidity,
		Curves:    curves,
		Current:   evaluate(lp, hold, params.Current),
		Withdraw:  evaluate(lp, hold, params.Withdraw),
		Tangent:   line,
	}

	return normal, nil
}

func evaluate(lp position.Concentrated, hold position.Hold, price float64) Point {

	value := lp.Value(price)
	baseline := hold.Value(price)

	p := Point{
		Price: price,
		Base:  lp.Base(price),
		Quote: lp.Quote(price),
		Value: value,
		Hold:  baseline,
		Loss:  position.Loss(value, baseline),
	}

	return p
}

func zeroCurves(prices []float64) Curves {
	return Curves{
		Prices: prices,
		Base:   make([]float64, len(prices)),
		Quote:  make([]float64, len(prices)),
		Value:  make([]float64, len(prices)),
		Hold:   make([]float64, len(prices)),
		Loss:   make([]float64, len(prices)),
	}
}
