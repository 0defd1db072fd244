package position

import (
	"math"
)

// Concentrated is a single uniform liquidity range between Lower and Upper.
// Prices outside the range are evaluated without clamping.
type Concentrated struct {
	Lower     float64
	Upper     float64
	Liquidity float64
}

// Liquidity derives the liquidity constant of a position entered at entry with
// amount of the base asset:
//
//	L = amount * sqrt(entry) * sqrt(upper) / (sqrt(upper) - sqrt(entry))
//
// The second return value is false when sqrt(upper) == sqrt(entry), where the
// constant is undefined.
func Liquidity(entry float64, upper float64, amount float64) (float64, bool) {

	sqrtEntry := math.Sqrt(entry)
	sqrtUpper := math.Sqrt(upper)
	if sqrtUpper == sqrtEntry {
		return 0, false
	}

	liquidity := amount * sqrtEntry * sqrtUpper / (sqrtUpper - sqrtEntry)

	return liquidity, true
}

// NewConcentrated builds the range for the given parameters. It returns false
// for the degenerate entry == upper case.
func NewConcentrated(params Params) (Concentrated, bool) {

	liquidity, ok := Liquidity(params.Entry, params.Upper, params.Amount)
	if !ok {
		return Concentrated{}, false
	}

	c := Concentrated{
		Lower:     params.Lower,
		Upper:     params.Upper,
		Liquidity: liquidity,
	}

	return c, true
}

// Base returns the amount of the base asset held at price.
func (c Concentrated) Base(price float64) float64 {
	sqrtPrice := math.Sqrt(price)
	sqrtUpper := math.Sqrt(c.Upper)
	return c.Liquidity * (sqrtUpper - sqrtPrice) / (sqrtPrice * sqrtUpper)
}

// Quote returns the amount of the quote asset held at price.
func (c Concentrated) Quote(price float64) float64 {
	return c.Liquidity * (math.Sqrt(price) - math.Sqrt(c.Lower))
}

// Value returns the position value at price, denominated in the quote asset.
func (c Concentrated) Value(price float64) float64 {
	return c.Base(price)*price + c.Quote(price)
}

// Loss returns the impermanent loss of a position value against its hold
// baseline value.
func Loss(value float64, hold float64) float64 {
	return math.Abs(value - hold)
}
