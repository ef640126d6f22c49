// Package pattern renders and parses fixed point numbers with display
// patterns such as "#,##0.00".
//
// # Grammar
//
// A pattern is made of these characters:
//
//	| Character | Class     | Meaning                                  |
//	|-----------|-----------|------------------------------------------|
//	| #         | Optional  | Digit, omitted when not needed.          |
//	| 0         | Mandatory | Digit, zero padded.                      |
//	| ,         | Grouping  | Group the integer digits in threes.      |
//	| .         | Point     | Decimal separator, at most one.          |
//	| (space)   | Space     | Literal, copied verbatim.                |
//	|-----------|-----------|------------------------------------------|
//
// The grouping and decimal characters are configured with Separators and
// may be swapped with Invert (e.g. "#.##0,00"). Any other character is an
// error.
//
// The decimal separator splits the pattern into a major (integer) and a
// minor (fraction) segment. Within a segment the placeholders and grouping
// separators form one contiguous run; spaces may only surround it.
//
// Mandatory digits trail the major run and lead the minor run:
//
//	#,##0.00##   valid
//	0.#          valid
//	#0#          invalid: mandatory digit before an optional one
//	#.#0         invalid: mandatory digit after an optional one
//	#.#.#        invalid: two decimal separators
//	# #.#        invalid: run broken by a space
//
// # Encoding
//
// The integer part is printed with at least one digit, zero padded to the
// number of mandatory placeholders. The fraction is cut or zero padded to
// the number of minor placeholders, then zeros under trailing optional
// placeholders are dropped. When no fraction digits remain the decimal
// separator is dropped too:
//
//	| Value   | Pattern   | Output     |
//	|---------|-----------|------------|
//	| 1234.5  | #,##0.00  | 1,234.50   |
//	| 1234.5  | #.##      | 1234.5     |
//	| 1234.00 | #.##      | 1234       |
//	| -0.5    | #.#       | -0.5       |
//	| 5       | 000       | 005        |
//	| 3.567   | #.##      | 3.56       |
//	|---------|-----------|------------|
//
// # Decoding
//
// Decoding accepts what encoding produces: surrounding spaces, a sign,
// grouping separators in the integer digits (when the pattern groups) and
// at most one decimal separator (when the pattern has one). The spaces a
// pattern places beside the decimal separator may be present or omitted.
// Fractional digits beyond the requested scale are truncated.
package pattern
