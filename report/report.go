package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/optakt/rangelp/engine"
)

// Base amounts are shown with four decimals, quote values with two.
const (
	basePlaces  = 4
	quotePlaces = 2
)

func base(v float64) string {
	return fixed(v, basePlaces)
}

func quote(v float64) string {
	return fixed(v, quotePlaces)
}

// decimal cannot represent NaN or infinities.
func fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// Write renders the current and withdraw evaluations of a result as a table.
func Write(w io.Writer, name string, result engine.Result) error {

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	var current, withdraw engine.Point
	switch r := result.(type) {
	case engine.Normal:
		fmt.Fprintf(tw, "%s\tliquidity %s\n", name, base(r.Liquidity))
		current, withdraw = r.Current, r.Withdraw
	case engine.Degenerate:
		fmt.Fprintf(tw, "%s\tdegenerate range (entry at upper bound)\n", name)
		current, withdraw = r.Current, r.Withdraw
	default:
		return fmt.Errorf("unknown result type (%T)", result)
	}

	fmt.Fprintf(tw, "\tprice\tbase\tquote\tvalue\thold\tloss\n")
	fmt.Fprintf(tw, "current\t%s\t%s\t%s\t%s\t%s\t%s\n",
		quote(current.Price), base(current.Base), quote(current.Quote), quote(current.Value), quote(current.Hold), quote(current.Loss))
	fmt.Fprintf(tw, "withdraw\t%s\t%s\t%s\t%s\t%s\t%s\n",
		quote(withdraw.Price), base(withdraw.Base), quote(withdraw.Quote), quote(withdraw.Value), quote(withdraw.Hold), quote(withdraw.Loss))

	baseShare, quoteShare := current.Composition()
	fmt.Fprintf(tw, "composition\tbase %s%%\tquote %s%%\n", quote(baseShare), quote(quoteShare))

	line := result.Line()
	fmt.Fprintf(tw, "tangent\tslope %s\tanchor %s\tat %s\n",
		base(line.Slope), quote(line.Anchor), quote(line.Prices[line.Index]))

	err := tw.Flush()
	if err != nil {
		return fmt.Errorf("could not flush report: %w", err)
	}

	return nil
}
