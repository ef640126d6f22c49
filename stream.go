package fixed

import (
	"errors"
	"io"
	"math/big"

	"github.com/calebcase/fixed/control"
	"github.com/calebcase/fixed/integer"
)

// Schema configures a stream of values.
type Schema struct {
	// Scale is shared by every value in the stream when Implicit is set.
	// Values are widened to it and written as bare minor units, so the
	// scale costs nothing per value.
	Scale    int32
	Implicit bool

	// Nullable allows Null blocks in the stream.
	Nullable bool
}

// Encoder writes values as control blocks.
type Encoder struct {
	schema Schema
	ce     control.Encoder
	ie     *integer.Encoder
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer, schema Schema) *Encoder {
	ce := control.NewEncoder(w)

	return &Encoder{
		schema: schema,
		ce:     ce,
		ie:     integer.NewEncoder(ce),
	}
}

// Encode writes f as one data block.
func (e *Encoder) Encode(f Fixed) (err error) {
	defer ValueError.WrapP(&err)

	if e.schema.Implicit {
		err = checkScale(e.schema.Scale)
		if err != nil {
			return err
		}

		if f.scale > e.schema.Scale {
			return ValueError.New("scale %d exceeds stream scale %d", f.scale, e.schema.Scale)
		}

		units := new(big.Int).Mul(f.minor(), integer.Pow10(e.schema.Scale-f.scale))

		return e.ie.Encode(integer.FromBig(units))
	}

	if f.scale > MaxScale {
		return ValueError.New("scale %d exceeds %d", f.scale, MaxScale)
	}

	data, err := Block{
		Value: integer.FromBig(f.minor()),
		Scale: f.scale,
	}.MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}

// EncodeNull writes a Null block. The schema must be nullable.
func (e *Encoder) EncodeNull() (err error) {
	if !e.schema.Nullable {
		return ValueError.New("null in a non-nullable stream")
	}

	return ValueError.Wrap(e.ce.Null())
}

// EncodeSlice writes fs inside an unbounded container.
func (e *Encoder) EncodeSlice(fs []Fixed) (err error) {
	defer ValueError.WrapP(&err)

	return e.ce.Unbound(func(control.Encoder) error {
		for _, f := range fs {
			err := e.Encode(f)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Decoder reads values written by an Encoder with the same schema.
type Decoder struct {
	schema Schema
	cd     control.Decoder
	id     *integer.Decoder
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader, schema Schema) *Decoder {
	cd := control.NewDecoder(r)

	return &Decoder{
		schema: schema,
		cd:     cd,
		id:     integer.NewDecoder(cd),
	}
}

func (d *Decoder) next() (err error) {
	if d.cd.Next() {
		return nil
	}

	if d.cd.Err() != nil {
		return ValueError.Wrap(d.cd.Err())
	}

	return io.EOF
}

// Decode reads the next value. A Null block decodes as nil. It returns
// io.EOF when the input is exhausted.
func (d *Decoder) Decode() (f *Fixed, err error) {
	err = d.next()
	if err != nil {
		return nil, err
	}

	return d.current()
}

// DecodeSlice reads values written by EncodeSlice.
func (d *Decoder) DecodeSlice() (fs []Fixed, err error) {
	err = d.next()
	if err != nil {
		return nil, err
	}

	if t := d.cd.Type(); t != control.ContainerUnbounded {
		return nil, ValueError.New("unexpected block %q", t.Abbr)
	}

	err = d.cd.Enter()
	if err != nil {
		return nil, ValueError.Wrap(err)
	}

	fs = []Fixed{}

	for {
		err = d.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = ValueError.New("unterminated slice")
			}

			return nil, err
		}

		if d.cd.Type() == control.ContainerEnd {
			return fs, nil
		}

		var f *Fixed
		f, err = d.current()
		if err != nil {
			return nil, err
		}

		if f == nil {
			return nil, ValueError.New("null in slice")
		}

		fs = append(fs, *f)
	}
}

// current decodes the block the control decoder is positioned on.
func (d *Decoder) current() (f *Fixed, err error) {
	defer ValueError.WrapP(&err)

	t := d.cd.Type()

	if t == control.Null {
		if !d.schema.Nullable {
			return nil, ValueError.New("null in a non-nullable stream")
		}

		return nil, nil
	}

	if d.schema.Implicit {
		err = checkScale(d.schema.Scale)
		if err != nil {
			return nil, err
		}

		var units integer.Block
		err = d.id.Current(&units)
		if err != nil {
			return nil, err
		}

		v := fromUnits(units.Big(), d.schema.Scale)

		return &v, nil
	}

	if !t.IsData() {
		return nil, ValueError.New("unexpected block %q", t.Abbr)
	}

	data, err := d.cd.Data()
	if err != nil {
		return nil, err
	}

	var b Block
	err = b.UnmarshalBinary(data)
	if err != nil {
		return nil, err
	}

	if b.Scale > MaxScale {
		return nil, ValueError.New("scale %d exceeds %d", b.Scale, MaxScale)
	}

	v := fromUnits(b.Value.Big(), b.Scale)

	return &v, nil
}
