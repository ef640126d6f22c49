package pattern

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/calebcase/fixed/integer"
)

// Value is a fixed point number as seen by the encoder.
type Value interface {
	Sign() int
	Scale() int32

	// IntegerPart is the value truncated toward zero.
	IntegerPart() *big.Int

	// FractionalPart is the absolute value of the digits after the
	// point, as an integer count of 10^-Scale units.
	FractionalPart() *big.Int
}

// Encoder renders values according to a pattern.
type Encoder struct {
	seps Separators
}

// NewEncoder returns a new encoder.
func NewEncoder(seps Separators) *Encoder {
	return &Encoder{
		seps: seps,
	}
}

// Encode renders v according to pattern.
func (e *Encoder) Encode(v Value, pattern string) (s string, err error) {
	defer Error.WrapP(&err)

	p, err := Parse(pattern, e.seps)
	if err != nil {
		return "", err
	}

	sb := &strings.Builder{}

	sb.WriteString(p.Major.Lead)

	// The sign is written even when the integer part is zero (-0.5).
	if v.Sign() < 0 {
		sb.WriteByte('-')
	}

	abs := new(big.Int).Abs(v.IntegerPart())
	sb.WriteString(e.major(p.Major, abs))
	sb.WriteString(p.Major.Trail)

	scale := v.Scale()
	if scale == 0 || !p.HasPoint {
		return sb.String(), nil
	}

	minor := e.minor(p.Minor, v.FractionalPart(), scale)
	if minor == "" {
		return sb.String(), nil
	}

	sb.WriteRune(e.seps.Decimal)
	sb.WriteString(p.Minor.Lead)
	sb.WriteString(minor)
	sb.WriteString(p.Minor.Trail)

	return sb.String(), nil
}

// major formats the absolute integer part, zero padded to the number of
// mandatory placeholders and grouped in threes if the segment is grouped.
func (e *Encoder) major(seg Segment, abs *big.Int) string {
	n := seg.Mandatory()
	width := integer.Digits(abs)

	if !seg.Grouped() {
		digits := abs.String()
		if width < n {
			digits = strings.Repeat("0", n-width) + digits
		}

		return digits
	}

	var grouped string
	if width < n {
		// Group 10^n + abs and drop the leading one so the padding
		// zeros are grouped as well.
		padded := new(big.Int).Add(integer.Pow10(int32(n)), abs)
		grouped = strings.TrimPrefix(humanize.BigComma(padded)[1:], ",")
	} else {
		// BigComma consumes its argument.
		grouped = humanize.BigComma(new(big.Int).Set(abs))
	}

	return strings.ReplaceAll(grouped, ",", string(e.seps.Grouping))
}

// minor formats the fractional digits for the segment. Trailing zeros under
// optional placeholders are dropped.
func (e *Encoder) minor(seg Segment, frac *big.Int, scale int32) string {
	digits := frac.String()
	if len(digits) < int(scale) {
		digits = strings.Repeat("0", int(scale)-len(digits)) + digits
	}

	places := seg.Places()
	if len(places) < len(digits) {
		digits = digits[:len(places)]
	} else {
		digits += strings.Repeat("0", len(places)-len(digits))
	}

	end := len(digits)
	for end > 0 && places[end-1] == Optional && digits[end-1] == '0' {
		end--
	}

	return digits[:end]
}
