package position

import (
	"fmt"
)

// InvalidPriceError is returned for a price that is not strictly positive.
type InvalidPriceError struct {
	Field string
	Value float64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid %s price (%v): must be positive", e.Field, e.Value)
}

// InvalidRangeError is returned when the upper bound does not exceed the lower bound.
type InvalidRangeError struct {
	Lower float64
	Upper float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid price range [%v, %v]: upper must exceed lower", e.Lower, e.Upper)
}

// InvalidAmountError is returned for a negative initial base amount.
type InvalidAmountError struct {
	Value float64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid base amount (%v): must not be negative", e.Value)
}
