package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rangelp/position"
	"github.com/optakt/rangelp/tangent"
)

func reference() position.Params {
	return position.Params{
		Lower:    1000,
		Upper:    3000,
		Entry:    1000,
		Current:  3000,
		Amount:   1,
		Withdraw: 2000,
	}
}

func TestCompute_Reference(t *testing.T) {

	result, err := Compute(DefaultConfig, reference())
	require.NoError(t, err)

	normal, ok := result.(Normal)
	require.True(t, ok, "expected normal result, got %T", result)

	assert.InDelta(t, 74.83, normal.Liquidity, 0.01)

	assert.InDelta(t, 0, normal.Current.Base, 1e-9)
	assert.InDelta(t, 1732.05, normal.Current.Quote, 0.5)
	assert.InDelta(t, 1732.05, normal.Current.Value, 0.5)
	assert.InDelta(t, 3000, normal.Current.Hold, 1e-9)
	assert.InDelta(t, 1267.95, normal.Current.Loss, 0.5)

	assert.InDelta(t, 0.3070, normal.Withdraw.Base, 1e-3)
	assert.InDelta(t, 980.04, normal.Withdraw.Quote, 0.01)
	assert.InDelta(t, 1594.05, normal.Withdraw.Value, 0.01)
	assert.InDelta(t, 405.95, normal.Withdraw.Loss, 0.01)
}

func TestCompute_Degenerate(t *testing.T) {

	params := reference()
	params.Entry = params.Upper

	result, err := Compute(DefaultConfig, params)
	require.NoError(t, err)

	degenerate, ok := result.(Degenerate)
	require.True(t, ok, "expected degenerate result, got %T", result)

	curves := degenerate.Curves
	require.Len(t, curves.Prices, DefaultConfig.GridSize)
	for _, series := range [][]float64{curves.Base, curves.Quote, curves.Value, curves.Hold, curves.Loss} {
		require.Len(t, series, DefaultConfig.GridSize)
		for _, v := range series {
			assert.Zero(t, v)
		}
	}

	for _, point := range []Point{degenerate.Current, degenerate.Withdraw} {
		assert.Zero(t, point.Base)
		assert.Zero(t, point.Quote)
		assert.Zero(t, point.Value)
		assert.Zero(t, point.Hold)
		assert.Zero(t, point.Loss)
	}
	assert.Equal(t, params.Current, degenerate.Current.Price)
	assert.Equal(t, params.Withdraw, degenerate.Withdraw.Price)

	line := degenerate.Tangent
	assert.Equal(t, line, result.Line())
	assert.Equal(t, params.Withdraw, line.Target)
	assert.Zero(t, line.Slope)
	assert.Zero(t, line.Anchor)
	require.Len(t, line.Values, DefaultConfig.GridSize)
	for _, v := range line.Values {
		assert.Zero(t, v)
	}
}

func TestEvaluate_Window(t *testing.T) {

	degenerate := reference()
	degenerate.Entry = degenerate.Upper

	tests := []struct {
		name   string
		params position.Params
	}{
		{name: "normal", params: reference()},
		{name: "degenerate", params: degenerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Evaluate(tt.params, []float64{1000, 2000, 3000}, 0)
			assert.ErrorIs(t, err, tangent.ErrWindow)
			assert.Nil(t, result)
		})
	}
}

func TestCompute_Boundaries(t *testing.T) {

	tests := []struct {
		name   string
		params position.Params
	}{
		{
			name:   "entry at lower bound",
			params: reference(),
		},
		{
			name:   "entry inside range",
			params: position.Params{Lower: 1500, Upper: 2500, Entry: 2000, Current: 1800, Amount: 2.5, Withdraw: 2200},
		},
		{
			name:   "narrow range",
			params: position.Params{Lower: 0.99, Upper: 1.01, Entry: 1, Current: 1, Amount: 1000, Withdraw: 1.005},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compute(DefaultConfig, tt.params)
			require.NoError(t, err)

			normal, ok := result.(Normal)
			require.True(t, ok)

			assert.Greater(t, normal.Liquidity, 0.0)

			curves := normal.Curves
			last := len(curves.Prices) - 1
			assert.Equal(t, tt.params.Upper, curves.Prices[last])
			assert.Equal(t, tt.params.Lower, curves.Prices[0])
			assert.Zero(t, curves.Base[last])
			assert.Zero(t, curves.Quote[0])

			for i, loss := range curves.Loss {
				assert.GreaterOrEqual(t, loss, 0.0, "negative loss at sample %d", i)
			}
		})
	}
}

func TestCompute_Idempotent(t *testing.T) {

	first, err := Compute(DefaultConfig, reference())
	require.NoError(t, err)
	second, err := Compute(DefaultConfig, reference())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompute_TangentAnchor(t *testing.T) {

	tests := []struct {
		name     string
		gridSize int
	}{
		{name: "default grid", gridSize: 100},
		{name: "fine grid", gridSize: 10001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := reference()
			cfg := Config{GridSize: tt.gridSize, Window: 1}

			result, err := Compute(cfg, params)
			require.NoError(t, err)
			normal := result.(Normal)

			spacing := (params.Upper - params.Lower) / float64(tt.gridSize-1)
			tolerance := math.Abs(normal.Tangent.Slope) * spacing

			diff := math.Abs(normal.Tangent.Anchor - normal.Withdraw.Value)
			assert.LessOrEqual(t, diff, tolerance)

			// dV/dP = L * (1/sqrt(P) - 1/sqrt(upper)) at the anchor sample
			anchor := normal.Curves.Prices[normal.Tangent.Index]
			exact := normal.Liquidity * (1/math.Sqrt(anchor) - 1/math.Sqrt(params.Upper))
			assert.InDelta(t, exact, normal.Tangent.Slope, 1e-4)
		})
	}
}

func TestCompute_Invalid(t *testing.T) {

	tests := []struct {
		name   string
		cfg    Config
		params position.Params
		target interface{}
		err    error
	}{
		{
			name:   "zero lower price",
			cfg:    DefaultConfig,
			params: position.Params{Lower: 0, Upper: 3000, Entry: 1000, Current: 2000, Amount: 1, Withdraw: 2000},
			target: new(*position.InvalidPriceError),
		},
		{
			name:   "negative withdraw price",
			cfg:    DefaultConfig,
			params: position.Params{Lower: 1000, Upper: 3000, Entry: 1000, Current: 2000, Amount: 1, Withdraw: -5},
			target: new(*position.InvalidPriceError),
		},
		{
			name:   "inverted range",
			cfg:    DefaultConfig,
			params: position.Params{Lower: 3000, Upper: 1000, Entry: 2000, Current: 2000, Amount: 1, Withdraw: 2000},
			target: new(*position.InvalidRangeError),
		},
		{
			name:   "empty range",
			cfg:    DefaultConfig,
			params: position.Params{Lower: 1000, Upper: 1000, Entry: 1000, Current: 1000, Amount: 1, Withdraw: 1000},
			target: new(*position.InvalidRangeError),
		},
		{
			name:   "negative amount",
			cfg:    DefaultConfig,
			params: position.Params{Lower: 1000, Upper: 3000, Entry: 1000, Current: 2000, Amount: -1, Withdraw: 2000},
			target: new(*position.InvalidAmountError),
		},
		{
			name:   "single sample grid",
			cfg:    Config{GridSize: 1, Window: 1},
			params: reference(),
			err:    ErrGridSize,
		},
		{
			name:   "oversized grid",
			cfg:    Config{GridSize: 1 << 62, Window: 1},
			params: reference(),
			err:    ErrGridSizeLimit,
		},
		{
			name:   "grid at limit plus one",
			cfg:    Config{GridSize: MaxGridSize + 1, Window: 1},
			params: reference(),
			err:    ErrGridSizeLimit,
		},
		{
			name:   "empty window",
			cfg:    Config{GridSize: 100, Window: 0},
			params: reference(),
			err:    ErrWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compute(tt.cfg, tt.params)
			require.Error(t, err)
			assert.Nil(t, result)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
			}
			if tt.target != nil {
				assert.True(t, errors.As(err, tt.target))
			}
		})
	}
}

func TestEvaluate_Unvalidated(t *testing.T) {

	params := position.Params{Lower: -1, Upper: 3000, Entry: 1000, Current: 2000, Amount: 1, Withdraw: 2000}
	prices := []float64{1000, 2000, 3000}

	result, err := Evaluate(params, prices, 1)
	require.NoError(t, err)

	normal := result.(Normal)
	assert.True(t, math.IsNaN(normal.Current.Quote))

	inverted := position.Params{Lower: 1000, Upper: 900, Entry: 1000, Current: 950, Amount: 1, Withdraw: 950}
	result, err = Evaluate(inverted, prices, 1)
	require.NoError(t, err)
	assert.Less(t, result.(Normal).Liquidity, 0.0)
}

func TestPoint_Composition(t *testing.T) {

	result, err := Compute(DefaultConfig, reference())
	require.NoError(t, err)
	normal := result.(Normal)

	base, quote := normal.Withdraw.Composition()
	assert.InDelta(t, 38.52, base, 0.01)
	assert.InDelta(t, 61.48, quote, 0.01)
	assert.InDelta(t, 100, base+quote, 1e-9)

	base, quote = Point{}.Composition()
	assert.Equal(t, 50.0, base)
	assert.Equal(t, 50.0, quote)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig.Validate())
	assert.NoError(t, Config{GridSize: 2, Window: 1}.Validate())
	assert.NoError(t, Config{GridSize: MaxGridSize, Window: 1}.Validate())
	assert.ErrorIs(t, Config{GridSize: MaxGridSize + 1, Window: 1}.Validate(), ErrGridSizeLimit)
}
