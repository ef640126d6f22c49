package fixed_test

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixed"
)

func TestAddSub(t *testing.T) {
	a := mustString(t, "1.5", 1)
	b := mustString(t, "2.25", 2)

	sum := a.Add(b)
	require.Equal(t, int32(2), sum.Scale())
	require.Equal(t, "375", sum.MinorUnits().String())

	diff := a.Sub(b)
	require.Equal(t, int32(2), diff.Scale())
	require.Equal(t, "-0.75", diff.String())

	require.Equal(t, "-1.5", a.Neg().String())
	require.Equal(t, int32(1), a.Neg().Scale())
	require.Equal(t, "0.75", diff.Abs().String())

	// Operands are unchanged.
	require.Equal(t, "1.5", a.String())
	require.Equal(t, "2.25", b.String())
}

func TestMul(t *testing.T) {
	a := mustString(t, "1.1", 1)
	b := mustString(t, "2.2", 1)

	p := a.Mul(b)
	require.Equal(t, int32(2), p.Scale())
	require.Equal(t, "2.42", p.String())

	p = mustString(t, "-0.001", 3).Mul(mustString(t, "0.001", 3))
	require.Equal(t, int32(6), p.Scale())
	require.Equal(t, "-1", p.MinorUnits().String())

	require.Equal(t, "3.75", mustString(t, "1.25", 2).MulInt(3).String())
	require.Equal(t, "-3.75", mustString(t, "1.25", 2).MulInt(-3).String())
}

func TestDiv(t *testing.T) {
	type TC struct {
		Left       string
		LeftScale  int32
		Right      string
		RightScale int32
		Output     string
		Scale      int32
		Mark       error
	}

	tcs := []TC{
		{Left: "1.00", LeftScale: 2, Right: "3", RightScale: 0, Output: "0.33", Scale: 2, Mark: oops.New("non-terminating")},
		{Left: "-1.00", LeftScale: 2, Right: "3", RightScale: 0, Output: "-0.33", Scale: 2, Mark: oops.New("non-terminating negative")},
		{Left: "2", LeftScale: 0, Right: "3", RightScale: 0, Output: "0", Scale: 0, Mark: oops.New("integer")},
		{Left: "10", LeftScale: 0, Right: "4", RightScale: 0, Output: "2", Scale: 0, Mark: oops.New("truncated")},
		{Left: "10", LeftScale: 0, Right: "4", RightScale: 1, Output: "2.5", Scale: 1, Mark: oops.New("exact")},
		{Left: "1", LeftScale: 1, Right: "0.25", RightScale: 2, Output: "4", Scale: 2, Mark: oops.New("fractional divisor")},
		{Left: "2.42", LeftScale: 2, Right: "-1.1", RightScale: 1, Output: "-2.2", Scale: 2, Mark: oops.New("negative divisor")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s÷%s", i, tc.Left, tc.Right), func(t *testing.T) {
			q, err := mustString(t, tc.Left, tc.LeftScale).Div(mustString(t, tc.Right, tc.RightScale))
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Scale, q.Scale(), tc.Mark)
			require.Equal(t, tc.Output, q.String(), tc.Mark)
		})
	}

	t.Run("zero", func(t *testing.T) {
		_, err := mustString(t, "1", 0).Div(mustString(t, "0", 2))
		require.Error(t, err)
		require.True(t, fixed.ValueError.Has(err))
	})
}

func TestMulFloat(t *testing.T) {
	type TC struct {
		Input  string
		Scale  int32
		X      float64
		Output string
		Mark   error
	}

	tcs := []TC{
		{Input: "1.00", Scale: 2, X: 1.5, Output: "150", Mark: oops.New("exact")},
		{Input: "0.01", Scale: 2, X: 0.5, Output: "1", Mark: oops.New("half rounds up")},
		{Input: "0.01", Scale: 2, X: 0.49, Output: "0", Mark: oops.New("below half")},
		{Input: "-0.01", Scale: 2, X: 0.5, Output: "-1", Mark: oops.New("half rounds away from zero")},
		{Input: "1.00", Scale: 2, X: -0.5, Output: "-50", Mark: oops.New("negative multiplier")},
		{Input: "-1.00", Scale: 2, X: -0.5, Output: "50", Mark: oops.New("both negative")},
		{Input: "10.00", Scale: 2, X: 0.1, Output: "100", Mark: oops.New("inexact float")},
		{Input: "100.00", Scale: 2, X: 1.0 / 3.0, Output: "3333", Mark: oops.New("reciprocal")},
		{Input: "123456789.12", Scale: 2, X: 2, Output: "24691357824", Mark: oops.New("large")},
		{Input: "5", Scale: 0, X: 0, Output: "0", Mark: oops.New("zero")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s×%v", i, tc.Input, tc.X), func(t *testing.T) {
			f := mustString(t, tc.Input, tc.Scale)

			p, err := f.MulFloat(tc.X)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Scale, p.Scale(), tc.Mark)
			require.Equal(t, tc.Output, p.MinorUnits().String(), tc.Mark)
		})
	}

	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := mustString(t, "1", 0).MulFloat(x)
		require.Error(t, err)
		require.True(t, fixed.ValueError.Has(err))
	}
}

func TestDivFloat(t *testing.T) {
	q, err := mustString(t, "100.00", 2).DivFloat(3)
	require.NoError(t, err)
	require.Equal(t, "33.33", q.String())

	q, err = mustString(t, "1.00", 2).DivFloat(8)
	require.NoError(t, err)
	require.Equal(t, "13", q.MinorUnits().String())

	_, err = mustString(t, "1", 0).DivFloat(0)
	require.Error(t, err)
	require.True(t, fixed.ValueError.Has(err))
}

func TestMulNumber(t *testing.T) {
	f := mustString(t, "1.25", 2)

	type TC struct {
		N      any
		Output string
		Scale  int32
	}

	tcs := []TC{
		{N: 3, Output: "3.75", Scale: 2},
		{N: int8(-2), Output: "-2.5", Scale: 2},
		{N: int16(2), Output: "2.5", Scale: 2},
		{N: int32(2), Output: "2.5", Scale: 2},
		{N: int64(2), Output: "2.5", Scale: 2},
		{N: uint(2), Output: "2.5", Scale: 2},
		{N: uint8(2), Output: "2.5", Scale: 2},
		{N: uint16(2), Output: "2.5", Scale: 2},
		{N: uint32(2), Output: "2.5", Scale: 2},
		{N: uint64(2), Output: "2.5", Scale: 2},
		{N: big.NewInt(4), Output: "5", Scale: 2},
		{N: 0.5, Output: "0.63", Scale: 2},
		{N: float32(0.5), Output: "0.63", Scale: 2},
		{N: decimal.RequireFromString("0.5"), Output: "0.62", Scale: 2},
		{N: mustString(t, "0.5", 1), Output: "0.625", Scale: 3},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%T", i, tc.N), func(t *testing.T) {
			p, err := f.MulNumber(tc.N)
			require.NoError(t, err)
			require.Equal(t, tc.Scale, p.Scale())
			require.Equal(t, tc.Output, p.String())
		})
	}

	for _, n := range []any{"2", nil, complex(1, 0), []int{1}} {
		_, err := f.MulNumber(n)
		require.Error(t, err)
		require.True(t, fixed.MultiplierError.Has(err), "%T", n)
	}
}

func TestDivNumber(t *testing.T) {
	f := mustString(t, "100.00", 2)

	type TC struct {
		N      any
		Output string
	}

	tcs := []TC{
		{N: 4, Output: "25"},
		{N: uint64(3), Output: "33.33"},
		{N: big.NewInt(8), Output: "12.5"},
		{N: 0.5, Output: "200"},
		{N: decimal.RequireFromString("0.3"), Output: "333.33"},
		{N: mustString(t, "3", 0), Output: "33.33"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%T", i, tc.N), func(t *testing.T) {
			q, err := f.DivNumber(tc.N)
			require.NoError(t, err)
			require.Equal(t, tc.Output, q.String())
		})
	}

	_, err := f.DivNumber("4")
	require.Error(t, err)
	require.True(t, fixed.MultiplierError.Has(err))

	_, err = f.DivNumber(0)
	require.Error(t, err)
	require.True(t, fixed.ValueError.Has(err))
}
