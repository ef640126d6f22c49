package integer

import "math/big"

// pow10Cached is the number of powers of ten built at init.
const pow10Cached = 64

var (
	ten        = big.NewInt(10)
	pow10Table [pow10Cached]*big.Int
)

func init() {
	pow10Table[0] = big.NewInt(1)
	for i := 1; i < pow10Cached; i++ {
		pow10Table[i] = new(big.Int).Mul(pow10Table[i-1], ten)
	}
}

// Pow10 returns 10^n. The result for small n is shared and must not be
// modified. Pow10 panics if n is negative.
func Pow10(n int32) *big.Int {
	if n < 0 {
		panic("integer: negative exponent")
	}

	if n < pow10Cached {
		return pow10Table[n]
	}

	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// Digits returns the number of decimal digits in |i|. Zero has one digit.
func Digits(i *big.Int) int {
	if i.Sign() == 0 {
		return 1
	}

	s := i.Text(10)
	if s[0] == '-' {
		return len(s) - 1
	}

	return len(s)
}
