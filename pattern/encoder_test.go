package pattern_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixed/pattern"
)

// value is a minimal pattern.Value for tests.
type value struct {
	sign     int
	scale    int32
	integer  *big.Int
	fraction *big.Int
}

func newValue(t *testing.T, s string, scale int32) value {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)

	units := d.Shift(scale).BigInt()
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	integer, fraction := new(big.Int).QuoRem(units, pow, new(big.Int))

	return value{
		sign:     d.Sign(),
		scale:    scale,
		integer:  integer,
		fraction: fraction.Abs(fraction),
	}
}

func (v value) Sign() int                { return v.sign }
func (v value) Scale() int32             { return v.scale }
func (v value) IntegerPart() *big.Int    { return v.integer }
func (v value) FractionalPart() *big.Int { return v.fraction }

func TestEncoder(t *testing.T) {
	spaced := pattern.Separators{Decimal: ',', Grouping: ' '}

	t.Run("valid", func(t *testing.T) {
		type TC struct {
			Value      string
			Scale      int32
			Pattern    string
			Separators pattern.Separators
			Output     string
			Mark       error
		}

		tcs := []TC{
			{Value: "1234.5", Scale: 2, Pattern: "#,##0.00", Separators: pattern.Default, Output: "1,234.50", Mark: oops.New("grouped")},
			{Value: "-1234.56", Scale: 2, Pattern: "#,##0.00", Separators: pattern.Default, Output: "-1,234.56", Mark: oops.New("grouped negative")},
			{Value: "1234567", Scale: 0, Pattern: "#,##0", Separators: pattern.Default, Output: "1,234,567", Mark: oops.New("grouped integer")},
			{Value: "1000", Scale: 0, Pattern: "#,##0", Separators: pattern.Default, Output: "1,000", Mark: oops.New("grouped zeros")},
			{Value: "1234.5", Scale: 2, Pattern: "#.##", Separators: pattern.Default, Output: "1234.5", Mark: oops.New("optional trailing zero")},
			{Value: "1234", Scale: 2, Pattern: "#.##", Separators: pattern.Default, Output: "1234", Mark: oops.New("empty fraction")},
			{Value: "-0.5", Scale: 1, Pattern: "#.#", Separators: pattern.Default, Output: "-0.5", Mark: oops.New("negative near zero")},
			{Value: "-0.001", Scale: 3, Pattern: "#.##", Separators: pattern.Default, Output: "-0", Mark: oops.New("negative displayed zero")},
			{Value: "5", Scale: 0, Pattern: "000", Separators: pattern.Default, Output: "005", Mark: oops.New("padded")},
			{Value: "5", Scale: 0, Pattern: "0,000", Separators: pattern.Default, Output: "0,005", Mark: oops.New("padded grouped")},
			{Value: "12345", Scale: 0, Pattern: "0,000", Separators: pattern.Default, Output: "12,345", Mark: oops.New("wider than padding")},
			{Value: "3.567", Scale: 3, Pattern: "#.##", Separators: pattern.Default, Output: "3.56", Mark: oops.New("truncated")},
			{Value: "3.999", Scale: 3, Pattern: "#.#", Separators: pattern.Default, Output: "3.9", Mark: oops.New("truncated not rounded")},
			{Value: "0.05", Scale: 2, Pattern: "0.0#", Separators: pattern.Default, Output: "0.05", Mark: oops.New("leading fraction zero")},
			{Value: "0.1", Scale: 2, Pattern: "0.0#", Separators: pattern.Default, Output: "0.1", Mark: oops.New("mixed minor")},
			{Value: "0", Scale: 2, Pattern: "0.00", Separators: pattern.Default, Output: "0.00", Mark: oops.New("zero mandatory")},
			{Value: "0", Scale: 2, Pattern: "#.##", Separators: pattern.Default, Output: "0", Mark: oops.New("zero optional")},
			{Value: "1.5", Scale: 1, Pattern: "#.000", Separators: pattern.Default, Output: "1.500", Mark: oops.New("padded fraction")},
			{Value: "1.05", Scale: 2, Pattern: "#.####", Separators: pattern.Default, Output: "1.05", Mark: oops.New("wide optional fraction")},
			{Value: "7", Scale: 0, Pattern: "#.00", Separators: pattern.Default, Output: "7", Mark: oops.New("scale zero")},
			{Value: "7.25", Scale: 2, Pattern: "#,##0", Separators: pattern.Default, Output: "7", Mark: oops.New("no point in pattern")},
			{Value: "7.25", Scale: 2, Pattern: "#.", Separators: pattern.Default, Output: "7", Mark: oops.New("empty minor run")},
			{Value: "0.25", Scale: 2, Pattern: ".##", Separators: pattern.Default, Output: "0.25", Mark: oops.New("empty major run")},
			{Value: "12.34", Scale: 2, Pattern: " #.## ", Separators: pattern.Default, Output: " 12.34 ", Mark: oops.New("literal spaces")},
			{Value: "12.34", Scale: 2, Pattern: "#  .##", Separators: pattern.Default, Output: "12  .34", Mark: oops.New("major trail")},
			{Value: "1234.5", Scale: 2, Pattern: "#.##0,00", Separators: pattern.Default.Invert(), Output: "1.234,50", Mark: oops.New("inverted")},
			{Value: "1234567.8", Scale: 1, Pattern: "# ##0,0", Separators: spaced, Output: "1 234 567,8", Mark: oops.New("space grouping")},
			{
				Value:      "123456789012345678901234567890.12",
				Scale:      2,
				Pattern:    "#,##0.00",
				Separators: pattern.Default,
				Output:     "123,456,789,012,345,678,901,234,567,890.12",
				Mark:       oops.New("big"),
			},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("%02d/%s", i, tc.Output), func(t *testing.T) {
				e := pattern.NewEncoder(tc.Separators)

				output, err := e.Encode(newValue(t, tc.Value, tc.Scale), tc.Pattern)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Output, output, tc.Mark)
			})
		}
	})

	t.Run("invalid", func(t *testing.T) {
		patterns := []string{
			"#0#",
			"#.#.#",
			"#.#0",
			"# #",
			"#x",
			"",
		}

		e := pattern.NewEncoder(pattern.Default)

		for i, p := range patterns {
			t.Run(fmt.Sprintf("%02d/%s", i, p), func(t *testing.T) {
				output, err := e.Encode(newValue(t, "1.5", 1), p)
				require.Error(t, err)
				require.True(t, pattern.Error.Has(err))
				require.Equal(t, "", output)
			})
		}
	})
}
