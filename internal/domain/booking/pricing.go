package booking

import "errors"

var (
	ErrNoItems       = errors.New("booking requires at least one item")
	ErrNegativeItem  = errors.New("item price and quantity cannot be negative")
	ErrTotalMismatch = errors.New("client totals do not match recomputed totals")
)

// RecomputeTotal is the authoritative total: sum of quantity x price over the
// item list. Client-supplied totals are never trusted.
func RecomputeTotal(items []LineItem) Money {
	var cents int64
	for _, item := range items {
		cents += item.Total().Cents()
	}
	return NewMoney(cents)
}

// ValidateTotals rejects any client-supplied subtotal or estimated total that
// disagrees with the recomputed sum. Exact equality, no tolerance.
func ValidateTotals(items []LineItem, subtotal, estimatedTotal Money) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for _, item := range items {
		if item.Quantity < 0 || item.Price.Cents() < 0 {
			return ErrNegativeItem
		}
	}

	recomputed := RecomputeTotal(items)
	if !subtotal.Equals(recomputed) || !estimatedTotal.Equals(recomputed) {
		return ErrTotalMismatch
	}
	return nil
}
