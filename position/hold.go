package position

// Hold is the baseline of simply keeping the initial base amount instead of
// depositing it into the range.
type Hold struct {
	Amount float64
}

func (h Hold) Value(price float64) float64 {
	return h.Amount * price
}
