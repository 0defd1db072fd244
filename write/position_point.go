package write

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/optakt/rangelp/engine"
	"github.com/optakt/rangelp/position"
)

// PositionPoint summarizes the result at the current and withdraw prices.
func PositionPoint(timestamp time.Time, measurement string, name string, params position.Params, result engine.Result) *write.Point {

	var (
		variant   string
		liquidity float64
		current   engine.Point
		withdraw  engine.Point
	)
	switch r := result.(type) {
	case engine.Normal:
		variant = "normal"
		liquidity = r.Liquidity
		current = r.Current
		withdraw = r.Withdraw
	case engine.Degenerate:
		variant = "degenerate"
		current = r.Current
		withdraw = r.Withdraw
	}

	line := result.Line()

	baseShare, quoteShare := current.Composition()

	fields := map[string]interface{}{
		"liquidity":      liquidity,
		"current_price":  current.Price,
		"current_base":   current.Base,
		"current_quote":  current.Quote,
		"current_value":  current.Value,
		"current_hold":   current.Hold,
		"current_loss":   current.Loss,
		"base_share":     baseShare,
		"quote_share":    quoteShare,
		"withdraw_price": withdraw.Price,
		"withdraw_base":  withdraw.Base,
		"withdraw_quote": withdraw.Quote,
		"withdraw_value": withdraw.Value,
		"withdraw_loss":  withdraw.Loss,
		"tangent_slope":  line.Slope,
		"tangent_anchor": line.Anchor,
	}

	return write.NewPoint(measurement+"_position", tags(name, params, variant), fields, timestamp)
}

// Position writes the summary point of the result to the outbound API.
func Position(timestamp time.Time, measurement string, name string, params position.Params, result engine.Result, outbound api.WriteAPI) {
	outbound.WritePoint(PositionPoint(timestamp, measurement, name, params, result))
}
