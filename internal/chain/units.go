package chain

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// ToBaseUnits converts a human decimal string to the token's integer base
// units, truncating any precision beyond the token's decimals.
func ToBaseUnits(amount string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse decimal amount %q: %w", amount, err)
	}
	return d.Shift(decimals).Truncate(0).BigInt(), nil
}

// FromBaseUnits formats integer base units as a human decimal string at the
// token's precision.
func FromBaseUnits(value *big.Int, decimals int32) string {
	return decimal.NewFromBigInt(value, -decimals).String()
}
