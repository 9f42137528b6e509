package internal

import "github.com/shopspring/decimal"

// Amount is money in minor units (cents, kopecks).
type Amount int64

// Major renders the amount in major units. Every currency is treated as
// having two decimal places.
func (a Amount) Major() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

func (a Amount) String() string {
	return a.Major().StringFixed(2)
}
