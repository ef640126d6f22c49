package fixed

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/calebcase/fixed/integer"
	"github.com/calebcase/fixed/pattern"
)

// Fixed is an exact decimal number with a fixed number of fractional digits
// (its scale). The zero value is 0 at scale 0.
//
// Fixed values are immutable and safe for concurrent use.
type Fixed struct {
	value decimal.Decimal
	scale int32

	// Derived at construction.
	units    *big.Int
	whole    *big.Int
	fraction *big.Int
}

var _ pattern.Value = Fixed{}

// zero backs the derived fields of the zero Fixed. It is never modified.
var zero = new(big.Int)

// build returns value at scale, truncating digits beyond scale toward
// zero. Scale must not be negative.
func build(value decimal.Decimal, scale int32) Fixed {
	if -value.Exponent() > scale {
		value = value.Truncate(scale)
	}

	units := value.Shift(scale).BigInt()
	whole, fraction := new(big.Int).QuoRem(units, integer.Pow10(scale), new(big.Int))

	return Fixed{
		value:    decimal.NewFromBigInt(units, -scale),
		scale:    scale,
		units:    units,
		whole:    whole,
		fraction: fraction.Abs(fraction),
	}
}

func fromUnits(units *big.Int, scale int32) Fixed {
	return build(decimal.NewFromBigInt(units, -scale), scale)
}

// natural returns value at the scale of its own fractional digits.
func natural(value decimal.Decimal) Fixed {
	scale := -value.Exponent()
	if scale < 0 {
		scale = 0
	}

	return build(value, scale)
}

// New returns value at scale. The value is kept exactly when it has no more
// than scale fractional digits, otherwise it is truncated toward zero.
func New(value decimal.Decimal, scale int32) (Fixed, error) {
	err := checkScale(scale)
	if err != nil {
		return Fixed{}, err
	}

	err = checkExponent(value)
	if err != nil {
		return Fixed{}, err
	}

	return build(value, scale), nil
}

// NewFromMinorUnits returns units * 10^-scale.
func NewFromMinorUnits(units int64, scale int32) (Fixed, error) {
	return NewFromBigMinorUnits(big.NewInt(units), scale)
}

// NewFromBigMinorUnits returns units * 10^-scale.
func NewFromBigMinorUnits(units *big.Int, scale int32) (Fixed, error) {
	err := checkScale(scale)
	if err != nil {
		return Fixed{}, err
	}

	return fromUnits(units, scale), nil
}

// NewFromInt returns i at scale.
func NewFromInt(i int64, scale int32) (Fixed, error) {
	return New(decimal.NewFromInt(i), scale)
}

// NewFromFloat returns the shortest decimal representation of f truncated
// at scale.
func NewFromFloat(f float64, scale int32) (Fixed, error) {
	err := checkScale(scale)
	if err != nil {
		return Fixed{}, err
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fixed{}, ValueError.New("%v is not finite", f)
	}

	return build(decimal.NewFromFloat(f), scale), nil
}

// NewFromString parses a plain decimal string (e.g. "-12.345") and returns
// it at scale.
func NewFromString(s string, scale int32) (Fixed, error) {
	err := checkScale(scale)
	if err != nil {
		return Fixed{}, err
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Fixed{}, ValueError.Wrap(err)
	}

	err = checkExponent(d)
	if err != nil {
		return Fixed{}, err
	}

	return build(d, scale), nil
}

// Parse decodes text formatted with pattern. Invert swaps the default
// decimal and grouping separators.
func Parse(text, pat string, scale int32, invert bool) (Fixed, error) {
	err := checkScale(scale)
	if err != nil {
		return Fixed{}, err
	}

	d, err := pattern.NewDecoder(pattern.Choose(invert)).Decode(text, pat, scale)
	if err != nil {
		return Fixed{}, err
	}

	return build(d, scale), nil
}

// Rescale returns f at scale, truncating toward zero when narrowing.
func (f Fixed) Rescale(scale int32) (Fixed, error) {
	err := checkScale(scale)
	if err != nil {
		return Fixed{}, err
	}

	return build(f.value, scale), nil
}

// Value returns the exact decimal value.
func (f Fixed) Value() decimal.Decimal {
	return f.value
}

// Scale returns the number of fractional digits.
func (f Fixed) Scale() int32 {
	return f.scale
}

func (f Fixed) minor() *big.Int {
	if f.units == nil {
		return zero
	}

	return f.units
}

// MinorUnits returns the value as an integer count of 10^-scale units.
func (f Fixed) MinorUnits() *big.Int {
	return new(big.Int).Set(f.minor())
}

// IntegerPart returns the value truncated toward zero.
func (f Fixed) IntegerPart() *big.Int {
	if f.whole == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(f.whole)
}

// FractionalPart returns the digits after the point as a non-negative
// count of 10^-scale units. For -1.25 it is 25.
func (f Fixed) FractionalPart() *big.Int {
	if f.fraction == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(f.fraction)
}

// Sign returns -1, 0 or +1.
func (f Fixed) Sign() int {
	return f.minor().Sign()
}

// IsZero returns true if the value is zero.
func (f Fixed) IsZero() bool {
	return f.Sign() == 0
}

// Equal returns true if f and o have the same value, regardless of scale.
func (f Fixed) Equal(o Fixed) bool {
	return f.value.Equal(o.value)
}

// Cmp compares values, then scales. It returns -1, 0 or +1 and defines a
// total order suitable for sorting; 1.5 (scale 1) sorts before 1.50
// (scale 2) although they are Equal.
func (f Fixed) Cmp(o Fixed) int {
	c := f.value.Cmp(o.value)
	if c != 0 {
		return c
	}

	switch {
	case f.scale < o.scale:
		return -1
	case f.scale > o.scale:
		return 1
	}

	return 0
}

// Less reports whether f sorts before o.
func (f Fixed) Less(o Fixed) bool {
	return f.Cmp(o) < 0
}

// String formats f with the pattern "#" for scale 0, "#.##" for scale 2
// and so on: no grouping and no trailing zeros.
func (f Fixed) String() string {
	pat := "#"
	if f.scale > 0 {
		pat = "#." + strings.Repeat("#", int(f.scale))
	}

	// The default patterns are always valid.
	s, _ := f.Format(pat)

	return s
}

// Format renders f with pat and the default separators.
func (f Fixed) Format(pat string) (string, error) {
	return f.FormatWith(pat, pattern.Default)
}

// FormatWith renders f with pat and the given separators.
func (f Fixed) FormatWith(pat string, seps pattern.Separators) (string, error) {
	return pattern.NewEncoder(seps).Encode(f, pat)
}
