package fixed

import (
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/calebcase/fixed/integer"
)

// floatScale is the number of decimal places kept from float multipliers.
const floatScale = 14

func maxScale(a, b int32) int32 {
	if a > b {
		return a
	}

	return b
}

// Add returns f + o at the larger of the two scales.
func (f Fixed) Add(o Fixed) Fixed {
	return build(f.value.Add(o.value), maxScale(f.scale, o.scale))
}

// Sub returns f - o at the larger of the two scales.
func (f Fixed) Sub(o Fixed) Fixed {
	return build(f.value.Sub(o.value), maxScale(f.scale, o.scale))
}

// Neg returns -f.
func (f Fixed) Neg() Fixed {
	return build(f.value.Neg(), f.scale)
}

// Abs returns |f|.
func (f Fixed) Abs() Fixed {
	return build(f.value.Abs(), f.scale)
}

// Mul returns the exact product f * o at the sum of the two scales.
func (f Fixed) Mul(o Fixed) Fixed {
	return build(f.value.Mul(o.value), f.scale+o.scale)
}

// Div returns f / o at the larger of the two scales. The quotient is
// truncated toward zero at that scale, so quotients with non-terminating
// expansions (1/3) are cut rather than rejected.
func (f Fixed) Div(o Fixed) (Fixed, error) {
	if o.IsZero() {
		return Fixed{}, ValueError.New("division of %s by zero", f)
	}

	scale := maxScale(f.scale, o.scale)
	q, _ := f.value.QuoRem(o.value, scale)

	return build(q, scale), nil
}

// MulInt returns f * n at the same scale.
func (f Fixed) MulInt(n int64) Fixed {
	return build(f.value.Mul(decimal.NewFromInt(n)), f.scale)
}

// MulFloat returns f * x at the same scale.
//
// The multiplier is taken to 14 significant digits and applied as an
// integer count of 10^-14 units to the minor units of f. The product is
// divided back with half-up rounding away from zero. The result is
// approximate; use Mul for exact products.
func (f Fixed) MulFloat(x float64) (Fixed, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Fixed{}, ValueError.New("multiplier %v is not finite", x)
	}

	m, err := decimal.NewFromString(strconv.FormatFloat(math.Abs(x), 'e', floatScale-1, 64))
	if err != nil {
		return Fixed{}, ValueError.Wrap(err)
	}

	multiplier := m.Shift(floatScale).Round(0).BigInt()
	divisor := integer.Pow10(floatScale)

	product := new(big.Int).Abs(f.minor())
	product.Mul(product, multiplier)

	q, r := product.QuoRem(product, divisor, new(big.Int))
	if r.Lsh(r, 1).Cmp(divisor) >= 0 {
		q.Add(q, big.NewInt(1))
	}

	if (f.Sign() < 0) != (x < 0) {
		q.Neg(q)
	}

	return fromUnits(q, f.scale), nil
}

// DivFloat returns f * (1 / x) at the same scale. It inherits the error of
// the float reciprocal; use Div for exact quotients.
func (f Fixed) DivFloat(x float64) (Fixed, error) {
	if x == 0 {
		return Fixed{}, ValueError.New("division of %s by zero", f)
	}

	return f.MulFloat(1.0 / x)
}

// MulNumber multiplies f by n, which may be any integer or float type, a
// decimal.Decimal, a *big.Int or a Fixed. Integer and decimal multipliers
// keep the scale of f; a Fixed multiplier behaves as Mul.
func (f Fixed) MulNumber(n any) (Fixed, error) {
	switch n := n.(type) {
	case Fixed:
		return f.Mul(n), nil
	case decimal.Decimal:
		return build(f.value.Mul(n), f.scale), nil
	case *big.Int:
		return build(f.value.Mul(decimal.NewFromBigInt(n, 0)), f.scale), nil
	case float64:
		return f.MulFloat(n)
	case float32:
		return f.MulFloat(float64(n))
	}

	i, ok := toBig(n)
	if !ok {
		return Fixed{}, MultiplierError.New("%T", n)
	}

	return build(f.value.Mul(decimal.NewFromBigInt(i, 0)), f.scale), nil
}

// DivNumber divides f by n. Fixed and decimal.Decimal divisors divide
// exactly as Div does; integer and float divisors go through DivFloat.
func (f Fixed) DivNumber(n any) (Fixed, error) {
	switch n := n.(type) {
	case Fixed:
		return f.Div(n)
	case decimal.Decimal:
		return f.Div(natural(n))
	case *big.Int:
		x, _ := new(big.Float).SetInt(n).Float64()
		return f.DivFloat(x)
	case float64:
		return f.DivFloat(n)
	case float32:
		return f.DivFloat(float64(n))
	}

	i, ok := toBig(n)
	if !ok {
		return Fixed{}, MultiplierError.New("%T", n)
	}

	x, _ := new(big.Float).SetInt(i).Float64()

	return f.DivFloat(x)
}

func toBig(n any) (*big.Int, bool) {
	switch n := n.(type) {
	case int:
		return big.NewInt(int64(n)), true
	case int8:
		return big.NewInt(int64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	}

	return nil, false
}
