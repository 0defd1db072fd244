package write

import (
	"github.com/dustin/go-humanize"

	"github.com/optakt/rangelp/position"
)

func tags(name string, params position.Params, variant string) map[string]string {

	number, suffix := humanize.ComputeSI(params.Amount)
	size := humanize.Ftoa(number) + suffix

	return map[string]string{
		"strategy": "concentrated",
		"scenario": name,
		"range":    si(params.Lower) + "-" + si(params.Upper),
		"size":     size,
		"result":   variant,
	}
}

func si(price float64) string {
	number, suffix := humanize.ComputeSI(price)
	return humanize.Ftoa(number) + suffix
}
