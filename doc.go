// Package fixed provides an exact fixed point base 10 number.
//
// The equation for a fixed point number is:
//
//	number = units * 10^-scale
//
// Where units is an integer count of minor units (e.g. cents) and scale is
// the number of fractional digits retained. For example:
//
//	1.23 = 123 * 10^-2
//
// Scale is never negative. Values are arbitrary precision: units is a
// big.Int and the exact value is a decimal.Decimal.
//
// # Scale
//
// Constructors take the scale explicitly. Values with more fractional
// digits than the scale are truncated toward zero, never rounded:
//
//	| Input  | Scale | Value |
//	|--------|-------|-------|
//	| 3.567  | 2     | 3.56  |
//	| -3.567 | 2     | -3.56 |
//	| 3.5    | 3     | 3.500 |
//	|--------|-------|-------|
//
// Arithmetic keeps scales as follows:
//
//	| Operation | Result scale       | Exact |
//	|-----------|--------------------|-------|
//	| Add, Sub  | max(left, right)   | yes   |
//	| Mul       | left + right       | yes   |
//	| Div       | max(left, right)   | truncated at the scale |
//	| MulInt    | left               | yes   |
//	| MulFloat  | left               | no, half-up on 10^-14 units |
//	| DivFloat  | left               | no, via 1/x |
//	|-----------|--------------------|-------|
//
// Two values are Equal when their numbers are equal, whatever their scales.
// Cmp orders by number and then by scale.
//
// # Allocation
//
// Allocate splits a value into shares proportional to integer ratios. The
// shares always sum to the original value: leftover minor units are given
// one at a time to the shares in ratio order.
//
//	| Value | Ratios  | Shares              |
//	|-------|---------|---------------------|
//	| 1.01  | 1, 1    | 0.51, 0.50          |
//	| 0.05  | 1, 1, 1 | 0.02, 0.02, 0.01    |
//	| -1.00 | 1, 3    | -0.25, -0.75        |
//	|-------|---------|---------------------|
//
// # Formatting
//
// Values are rendered and parsed with the display patterns of package
// pattern, e.g. "#,##0.00". String uses "#.##" (one '#' per scale digit).
//
// # Encoding
//
// The binary form is one control block (see package control) whose data
// packs the minor units, then the exponent -scale, then two bits giving the
// width of the exponent field. Integers are big-endian with a trailing sign
// bit (aka zigzag).
//
//	| 0 | 1 | Exponent field |
//	|-------|----------------|
//	| 0 . 0 | none           | scale 0, the value uses the remaining bits.
//	| 0 . 1 | 6 bits         | scale up to 31
//	| 1 . 0 | 14 bits        | scale up to 8191 (MaxScale)
//	| 1 . 1 | 22 bits        | reserved for scales above MaxScale
//	|-------|----------------|
//
// The control block is the smallest that holds the packed data, so small
// values with small scales cost one to three bytes:
//
//	USD 0.0001 (2 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 1 | 0 . 0 . 0 . 1 | 0 | Data + 1 block with value of +1.
//	|-------------------------------|
//	| 0 . 0 . 1 . 0 . 0 | 1 | 0 . 1 | 6 bit exponent of -4.
//	|---------------|---------------|
//
//	USD -20.47 (3 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 0 . 1 | 1 . 1 . 1 . 1 | Data + 2 block with value of -2047.
//	| 1 . 1 . 1 . 1 . 1 . 1 . 1 | 1 |
//	|-------------------------------|
//	| 0 . 0 . 0 . 1 . 0 | 1 | 0 . 1 | 6 bit exponent of -2.
//	|---------------|---------------|
//
// Encoder and Decoder write and read streams of values. A Schema may fix
// the scale for the whole stream, in which case only the minor units are
// written.
//
// The text and JSON forms print every scale digit ("1.50"); the scale of a
// parsed text is its number of fractional digits.
package fixed
