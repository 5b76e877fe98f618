package evm

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrNegativeAmount is returned when a decimal-string amount parses to a
// negative value; every u128 field in this module is non-negative.
var ErrNegativeAmount = errors.New("amount must not be negative")

// ParseAmount parses a base-10 string into a non-negative big.Int suitable
// for any u128-range field (value, gas price, gas limit). Decimal-string
// amounts exist purely for hosts without a native u128/big-integer type;
// parsing happens before the transaction value is built.
func ParseAmount(decimal string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		return nil, errors.Errorf("invalid decimal amount %q", decimal)
	}
	if v.Sign() < 0 {
		return nil, errors.Wrapf(ErrNegativeAmount, "%q", decimal)
	}
	return v, nil
}
