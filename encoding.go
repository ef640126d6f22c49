package fixed

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

// MarshalBinary implements encoding.BinaryMarshaler. The result is one
// control block holding the minor units and the scale (see the package
// documentation).
func (f Fixed) MarshalBinary() (data []byte, err error) {
	buf := &bytes.Buffer{}

	err = NewEncoder(buf, Schema{}).Encode(f)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Data must hold
// exactly one block with a scale no larger than MaxScale.
func (f *Fixed) UnmarshalBinary(data []byte) (err error) {
	defer ValueError.WrapP(&err)

	r := bytes.NewReader(data)

	v, err := NewDecoder(r, Schema{}).Decode()
	if errors.Is(err, io.EOF) {
		return ValueError.New("empty data")
	}
	if err != nil {
		return err
	}

	if r.Len() != 0 {
		return ValueError.New("%d trailing bytes", r.Len())
	}

	*f = *v

	return nil
}

// MarshalText implements encoding.TextMarshaler. All scale digits are
// written ("1.50" for 1.5 at scale 2) so the scale survives a round trip.
func (f Fixed) MarshalText() ([]byte, error) {
	return []byte(f.value.StringFixed(f.scale)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The scale is the
// number of fractional digits in the text, so "1.50" has scale 2.
func (f *Fixed) UnmarshalText(text []byte) error {
	d, err := decimal.NewFromString(string(text))
	if err != nil {
		return ValueError.Wrap(err)
	}

	err = checkExponent(d)
	if err != nil {
		return err
	}

	*f = natural(d)

	return nil
}

// MarshalJSON implements json.Marshaler. Values are written as strings to
// keep them exact.
func (f Fixed) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.value.StringFixed(f.scale))), nil
}

// UnmarshalJSON implements json.Unmarshaler. Both strings and bare numbers
// are accepted.
func (f *Fixed) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}

	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}

	return f.UnmarshalText([]byte(s))
}
