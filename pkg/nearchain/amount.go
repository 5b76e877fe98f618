package nearchain

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrNegativeAmount is returned when a decimal-string amount is negative;
// every u128 deposit field in this module is non-negative.
var ErrNegativeAmount = errors.New("amount must not be negative")

// ParseAmount parses a base-10 string (e.g. a yoctoNEAR deposit) into a
// non-negative big.Int. Decimal strings exist purely for hosts lacking a
// native u128 type; parsing happens before the action is built.
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
