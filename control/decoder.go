package control

import (
	"bytes"
	"errors"
	"io"
	"math"
	"math/big"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Depth() int
	Stack() Stack
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
	Enter() (err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	stack *Stack

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r:     r,
		stack: &Stack{},
	}
}

// read returns the next n bytes. The buffer grows with the bytes actually
// read, so a large declared size costs nothing until the input backs it.
func (d *decoder) read(n uint64) (data []byte, err error) {
	if n > math.MaxInt64 {
		return nil, Error.New("unimplemented: size >= 2^63")
	}

	buf := &bytes.Buffer{}

	m, err := io.CopyN(buf, d.r, int64(n))
	d.consumed += uint64(m)

	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return buf.Bytes(), nil
}

// seek moves past the rest of the current block.
func (d *decoder) seek() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	switch d.t {
	case Data1, Data2, DataSize, DataSizeSize:
		_, err = d.Data()

		return err
	case ContainerUnbounded:
		// Read blocks until the matching ContainerEnd, which leaves the
		// stack one frame shorter.
		target := d.Depth() - 1
		d.finished = true

		for d.Next() {
			if d.t == ContainerEnd && d.Depth() == target {
				break
			}
		}

		return d.err
	}

	return nil
}

// Next moves to the next block, skipping whatever remains of the current
// one. It returns false at the end of the input or on error.
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	if d.t != Unknown && !d.finished {
		if d.seek() != nil {
			return false
		}
	}

	d.value[0] = 0
	d.t = Unknown
	d.size = 0
	d.data = nil
	d.finished = false

	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			if d.Depth() != 0 {
				d.err = Error.New("unexpected end of input: depth=%d", d.Depth())
			}

			return false
		}

		d.err = Error.Wrap(err)

		return false
	}

	d.consumed++

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	if !t.supported() {
		d.err = Error.New("unsupported block %q: %08b", t.Abbr, d.value[0])

		return false
	}

	switch t {
	case ContainerEnd:
		d.err = d.stack.Pop()
		if d.err != nil {
			return false
		}

		d.finished = true
	case ContainerUnbounded:
		d.stack.Count()
		d.stack.Push(&Frame{
			Type: t,
		})
	case Data, Empty, Null:
		d.stack.Count()
		d.finished = true
	default:
		d.stack.Count()
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Depth() int {
	return len(*d.stack)
}

func (d *decoder) Stack() Stack {
	return *d.stack
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current block.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeBytes, err := d.read(uint64(d.value[0]&d.t.Mask) + 1)
		if err != nil {
			return 0, err
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size.Uint64()
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads data bits and bytes from the block. If the block does not
// contain data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if !d.t.IsData() {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.data != nil {
		return d.data, nil
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	switch d.t {
	case Data:
		d.data = []byte{d.value[0] & d.t.Mask}
	case Data1, Data2:
		rest, err := d.read(size - 1)
		if err != nil {
			return nil, err
		}

		d.data = append([]byte{d.value[0] & d.t.Mask}, rest...)
	case DataSize, DataSizeSize:
		d.data, err = d.read(size)
		if err != nil {
			return nil, err
		}
	}

	d.finished = true

	return d.data, nil
}

// Enter steps into the current unbounded container so that Next returns
// its first block. If the current block is not ContainerUnbounded, then it
// returns ErrInvalidOperation.
func (d *decoder) Enter() (err error) {
	if d.t != ContainerUnbounded {
		d.err = oops.Trace(ErrInvalidOperation)

		return d.err
	}

	d.finished = true

	return nil
}
