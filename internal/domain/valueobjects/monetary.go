package valueobjects

import "errors"

var ErrNegativeAmount = errors.New("monetary amount cannot be negative")

// MonetaryAmount is a non-negative money value.
//
// Stricter rules (e.g. the policy premium must be > 0) belong to the entity
// that carries the amount, not here.
type MonetaryAmount struct {
	value float64
}

func NewMonetaryAmount(value float64) (MonetaryAmount, error) {
	if value < 0 {
		return MonetaryAmount{}, ErrNegativeAmount
	}
	return MonetaryAmount{value: value}, nil
}

func (m MonetaryAmount) Value() float64 {
	return m.value
}

func (m MonetaryAmount) Equals(other MonetaryAmount) bool {
	return m.value == other.value
}
