package fixed

import "math/big"

// Allocate splits f into shares proportional to ratios. The shares are at
// the scale of f and always sum to exactly f.
//
// Each share is first given |units| * ratio / sum(ratios) minor units
// (floor). The remaining units are then handed out one at a time, in ratio
// order, to shares with a positive ratio. Allocating 1.01 by [1, 1]
// therefore yields [0.51, 0.50].
func (f Fixed) Allocate(ratios ...int64) (shares []Fixed, err error) {
	if len(ratios) == 0 {
		return nil, AllocationError.New("no ratios")
	}

	sum := new(big.Int)
	for i, r := range ratios {
		if r < 0 {
			return nil, AllocationError.New("ratio %d is negative: %d", i, r)
		}

		sum.Add(sum, big.NewInt(r))
	}

	if sum.Sign() == 0 {
		return nil, AllocationError.New("ratios sum to zero")
	}

	total := new(big.Int).Abs(f.minor())
	remainder := new(big.Int).Set(total)

	units := make([]*big.Int, len(ratios))
	for i, r := range ratios {
		units[i] = new(big.Int).Mul(total, big.NewInt(r))
		units[i].Quo(units[i], sum)

		remainder.Sub(remainder, units[i])
	}

	one := big.NewInt(1)
	for i := 0; remainder.Sign() > 0; i = (i + 1) % len(ratios) {
		if ratios[i] == 0 {
			continue
		}

		units[i].Add(units[i], one)
		remainder.Sub(remainder, one)
	}

	shares = make([]Fixed, len(units))
	for i, u := range units {
		if f.Sign() < 0 {
			u.Neg(u)
		}

		shares[i] = fromUnits(u, f.scale)
	}

	return shares, nil
}

// Split splits f into n shares that differ by at most one minor unit.
func (f Fixed) Split(n int) ([]Fixed, error) {
	if n <= 0 {
		return nil, AllocationError.New("cannot split into %d parts", n)
	}

	ratios := make([]int64, n)
	for i := range ratios {
		ratios[i] = 1
	}

	return f.Allocate(ratios...)
}
