package position

import (
	"math"
)

// Params describes a single position and the two prices it is evaluated at.
type Params struct {
	Lower    float64 `yaml:"lower"`
	Upper    float64 `yaml:"upper"`
	Entry    float64 `yaml:"entry"`
	Current  float64 `yaml:"current"`
	Amount   float64 `yaml:"amount"`
	Withdraw float64 `yaml:"withdraw"`
}

// Validate checks that all prices are strictly positive, that the range is not
// empty and that the base amount is not negative.
func (p Params) Validate() error {

	prices := []struct {
		field string
		value float64
	}{
		{field: "lower", value: p.Lower},
		{field: "upper", value: p.Upper},
		{field: "entry", value: p.Entry},
		{field: "current", value: p.Current},
		{field: "withdraw", value: p.Withdraw},
	}
	for _, price := range prices {
		if !(price.value > 0) || math.IsInf(price.value, 1) {
			return &InvalidPriceError{Field: price.field, Value: price.value}
		}
	}

	if p.Upper <= p.Lower {
		return &InvalidRangeError{Lower: p.Lower, Upper: p.Upper}
	}

	if !(p.Amount >= 0) || math.IsInf(p.Amount, 1) {
		return &InvalidAmountError{Value: p.Amount}
	}

	return nil
}

// Outside lists the evaluated prices (entry, current, withdraw) that fall
// outside of the range.
func (p Params) Outside() []string {

	var fields []string
	if p.Entry < p.Lower || p.Entry > p.Upper {
		fields = append(fields, "entry")
	}
	if p.Current < p.Lower || p.Current > p.Upper {
		fields = append(fields, "current")
	}
	if p.Withdraw < p.Lower || p.Withdraw > p.Upper {
		fields = append(fields, "withdraw")
	}

	return fields
}
