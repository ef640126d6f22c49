// Package integer provides big integer helpers shared by the fixed point
// types: a zigzag encoded binary form and a table of powers of ten.
package integer

import (
	"io"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/fixed/control"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBig returns the block holding i.
func FromBig(i *big.Int) Block {
	b := Block{
		Value:    i.Bytes(),
		Negative: i.Sign() < 0,
	}

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(b.Value) == 0 {
		b.Value = []byte{0}
	}

	return b
}

// Big returns the block as a new big.Int.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The magnitude is shifted left one bit and the sign is stored in the
// lowest bit.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty data")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	if len(data) == 0 {
		data = []byte{0}

		// A set sign bit on zero is not produced by MarshalBinary.
		if b.Negative {
			return Error.New("negative zero")
		}
	}

	b.Value = data

	return nil
}

// Encoder writes integer blocks.
type Encoder struct {
	ce control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(ce control.Encoder) *Encoder {
	return &Encoder{
		ce: ce,
	}
}

// Encode writes b in the smallest data block that holds it. A block without
// a value is written as Null.
func (e *Encoder) Encode(b Block) (err error) {
	defer Error.WrapP(&err)

	if b.Value == nil {
		return e.ce.Null()
	}

	data, err := b.MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}

// Decoder reads integer blocks.
type Decoder struct {
	cd control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(cd control.Decoder) *Decoder {
	return &Decoder{
		cd: cd,
	}
}

// Decode reads the next block into b. It returns io.EOF when the input is
// exhausted.
func (d *Decoder) Decode(b *Block) (err error) {
	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return Error.Wrap(d.cd.Err())
		}

		return io.EOF
	}

	return d.Current(b)
}

// Current reads the block the control decoder is positioned on into b. A
// Null block leaves b without a value.
func (d *Decoder) Current(b *Block) (err error) {
	defer Error.WrapP(&err)

	switch t := d.cd.Type(); {
	case t == control.Null:
		*b = Block{}

		return nil
	case t.IsData():
		data, err := d.cd.Data()
		if err != nil {
			return err
		}

		return b.UnmarshalBinary(data)
	default:
		return Error.New("unexpected block %q", t.Abbr)
	}
}
