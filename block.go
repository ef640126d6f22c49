package fixed

import (
	"math/big"

	"github.com/calebcase/fixed/integer"
)

// Scale field widths in bits, indexed by the two bit scale size.
var scaleBits = [4]uint{0, 6, 14, 22}

// Block is the binary layout of a value: the minor units followed by the
// scale, packed into the data of one control block.
type Block struct {
	Value integer.Block
	Scale int32
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The minor units come first (magnitude and sign bit), then the exponent
// -Scale (magnitude and sign bit) in the narrowest field that holds it, and
// finally the two bit scale size. Scale 0 is written without a field.
func (b Block) MarshalBinary() (data []byte, err error) {
	defer ValueError.WrapP(&err)

	if b.Scale < 0 {
		return nil, ValueError.New("scale %d is negative", b.Scale)
	}

	size := 0
	field := new(big.Int)
	if b.Scale > 0 {
		// The exponent is -Scale: the magnitude followed by a set sign bit.
		field.SetInt64(int64(b.Scale)<<1 | 1)

		size = 1
		for size < len(scaleBits) && field.BitLen() > int(scaleBits[size]) {
			size++
		}

		if size == len(scaleBits) {
			return nil, ValueError.New("scale %d does not fit", b.Scale)
		}
	}

	value, err := b.Value.MarshalBinary()
	if err != nil {
		return nil, err
	}

	packed := new(big.Int).SetBytes(value)
	packed.Lsh(packed, scaleBits[size])
	packed.Or(packed, field)
	packed.Lsh(packed, 2)
	packed.Or(packed, big.NewInt(int64(size)))

	data = packed.Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Positive
// exponents are rejected: a value always has whole minor units.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer ValueError.WrapP(&err)

	if len(data) == 0 {
		return ValueError.New("empty data")
	}

	packed := new(big.Int).SetBytes(data)

	size := packed.Bit(1)<<1 | packed.Bit(0)
	packed.Rsh(packed, 2)

	bits := scaleBits[size]
	field := new(big.Int).And(packed, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1)))
	packed.Rsh(packed, bits)

	scale := int64(0)
	if size != 0 {
		if field.Bit(0) == 0 {
			return ValueError.New("positive exponent %d", field.Int64()>>1)
		}

		scale = field.Int64() >> 1
		if scale == 0 {
			return ValueError.New("negative zero exponent")
		}
	}

	value := packed.Bytes()
	if len(value) == 0 {
		value = []byte{0}
	}

	err = b.Value.UnmarshalBinary(value)
	if err != nil {
		return err
	}

	b.Scale = int32(scale)

	return nil
}
