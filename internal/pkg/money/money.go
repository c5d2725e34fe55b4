// Package money handles currency amounts as integer pence to keep arithmetic
// exact; decimal conversion happens only at the parsing/formatting boundary.
package money

import (
	"github.com/shopspring/decimal"
)

// Format renders an amount in pence as a plain decimal string, e.g. 2500 -> "25.00".
func Format(pence int64) string {
	return decimal.NewFromInt(pence).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// Parse converts a decimal currency string such as "25.00" into pence.
func Parse(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
