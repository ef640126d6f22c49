package fixed

import (
	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
)

// MaxScale is the largest scale a value may be built or decoded with. It is
// the largest scale the 14 bit scale field of the binary form holds.
// Multiplication may produce larger scales; such values have no binary form.
const MaxScale = 1<<13 - 1

// Error classes. Use Has to test an error's kind, e.g. ScaleError.Has(err).
var (
	// ScaleError is returned for a negative scale or one above MaxScale.
	ScaleError = errs.Class("invalid scale")

	// AllocationError is returned for invalid allocation ratios.
	AllocationError = errs.Class("invalid allocation")

	// MultiplierError is returned when a multiplier or divisor has an
	// unsupported type.
	MultiplierError = errs.Class("unsupported multiplier")

	// ValueError is returned for unparsable or non-finite values and for
	// division by zero.
	ValueError = errs.Class("invalid value")
)

func checkScale(scale int32) error {
	if scale < 0 {
		return ScaleError.New("scale %d is negative", scale)
	}

	if scale > MaxScale {
		return ScaleError.New("scale %d exceeds %d", scale, MaxScale)
	}

	return nil
}

// checkExponent bounds the exponent of decimals read from outside input, so
// building a value never works on more than MaxScale implied digits.
func checkExponent(d decimal.Decimal) error {
	if exp := d.Exponent(); exp < -MaxScale || exp > MaxScale {
		return ValueError.New("exponent %d out of range", exp)
	}

	return nil
}
