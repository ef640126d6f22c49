// Package control provides the block framing used by the binary forms.
//
// Control blocks use a prefix coding scheme to indicate the type of the
// current byte, which then indicates how many bytes the block contains. The
// intention is to minimize signaling overhead and pack as much data directly
// into the control byte as possible.
//
// # Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte is shown.
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type                |                              |
//	|-------------------------------||---------------------|------------------------------|
//	| 1 |                           || Data                | 7 bits                       |
//	| 0 . 1 |                       || Data Size           | 1 to 64 bytes follow         |
//	| 0 . 0 . 1 |                   || Data + 1            | 5 bits + 1 byte = 13 bits    |
//	| 0 . 0 . 0 . 1 |               || Data + 2            | 4 bits + 2 bytes = 20 bits   |
//	| 0 . 0 . 0 . 0 . 1 |           || Data Size Size      | 1 to 8 size bytes follow     |
//	| 0 . 0 . 0 . 0 . 0 . 1 . 1 . 1 || Container Symmetric | reserved                     |
//	| 0 . 0 . 0 . 0 . 0 . 1 . 1 . 0 || Container Unbounded | blocks until Container End   |
//	| 0 . 0 . 0 . 0 . 0 . 1 . 0 . 1 || Container Bounded   | reserved                     |
//	| 0 . 0 . 0 . 0 . 0 . 1 . 0 . 0 || Container End       | closes Container Unbounded   |
//	| 0 . 0 . 0 . 0 . 0 . 0 . 1 |   || Skip Size           | reserved                     |
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty               | empty value                  |
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null                | null value                   |
//
// All sizes are stored minus one to maximize their range. Zero length data
// is written as an Empty block.
//
// Data + 1 and Data + 2 carry the leading bits of the first data byte in the
// control byte, so a two byte value whose first byte fits in 5 bits costs
// two bytes total.
//
// Data Size Size blocks have three parts:
//
//  1. Number of bytes for the data size
//  2. Number of bytes that contain data
//  3. Data
//
// Reserved block types are rejected by the decoder.
package control
