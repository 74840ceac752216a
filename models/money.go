package models

import "github.com/shopspring/decimal"

// Cents is a monetary amount in minor currency units.
type Cents int64

// Decimal returns the amount in major units, e.g. 1234 cents as 12.34.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}
