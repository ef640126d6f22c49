package pattern

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Decoder parses text according to a pattern.
type Decoder struct {
	seps Separators
}

// NewDecoder returns a new decoder.
func NewDecoder(seps Separators) *Decoder {
	return &Decoder{
		seps: seps,
	}
}

// Decode parses text according to pattern. Fractional digits beyond scale
// are truncated.
func (d *Decoder) Decode(text, pattern string, scale int32) (v decimal.Decimal, err error) {
	defer Error.WrapP(&err)

	if scale < 0 {
		return v, Error.New("invalid scale %d", scale)
	}

	p, err := Parse(pattern, d.seps)
	if err != nil {
		return v, err
	}

	s := text
	if d.seps.Grouping != ' ' {
		s = strings.Trim(s, " ")
	}

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	whole, frac := s, ""
	switch n := strings.Count(s, string(d.seps.Decimal)); {
	case n > 1:
		return v, Error.New("more than one decimal separator in %q", text)
	case n == 1 && !p.HasPoint:
		return v, Error.New("decimal separator in %q but not in pattern %q", text, pattern)
	case n == 1:
		i := strings.IndexRune(s, d.seps.Decimal)
		whole = s[:i]
		frac = s[i+len(string(d.seps.Decimal)):]

		// Literal spaces the pattern puts beside the decimal separator.
		whole = strings.TrimSuffix(whole, p.Major.Trail)
		frac = strings.TrimPrefix(frac, p.Minor.Lead)
	}

	grouping := string(d.seps.Grouping)
	if strings.Contains(frac, grouping) {
		return v, Error.New("grouping separator in fraction of %q", text)
	}
	if strings.Contains(whole, grouping) {
		if !p.Major.Grouped() {
			return v, Error.New("grouping separator in %q but not in pattern %q", text, pattern)
		}

		whole = strings.ReplaceAll(whole, grouping, "")
	}

	if whole == "" && frac == "" {
		return v, Error.New("no digits in %q", text)
	}

	if !digits(whole) || !digits(frac) {
		return v, Error.New("invalid character in %q", text)
	}

	if len(frac) > int(scale) {
		frac = frac[:scale]
	}

	coef, ok := new(big.Int).SetString("0"+whole+frac, 10)
	if !ok {
		return v, Error.New("invalid number %q", text)
	}

	if negative {
		coef.Neg(coef)
	}

	return decimal.NewFromBigInt(coef, -int32(len(frac))), nil
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
