package scalar

import (
	"math/big"
	"sync"
)

var piCache = struct {
	sync.RWMutex
	byBits map[uint]*big.Float
}{byBits: make(map[uint]*big.Float)}

// Pi evaluates pi at the requested precision using Machin's formula
// with guard bits. Results are cached per precision (they are
// referentially stable) and returned as copies.
func Pi(bits uint) *big.Float {
	piCache.RLock()
	cached, ok := piCache.byBits[bits]
	piCache.RUnlock()
	if ok {
		return new(big.Float).Copy(cached)
	}

	// pi = 16*atan(1/5) - 4*atan(1/239)
	work := bits + 64
	a := atanRecip(work, 5)
	a.Mul(a, new(big.Float).SetPrec(work).SetInt64(16))
	b := atanRecip(work, 239)
	b.Mul(b, new(big.Float).SetPrec(work).SetInt64(4))
	pi := new(big.Float).SetPrec(work).Sub(a, b)
	pi.SetPrec(bits)

	piCache.Lock()
	piCache.byBits[bits] = pi
	piCache.Unlock()
	return new(big.Float).Copy(pi)
}

// atanRecip evaluates atan(1/x) for integer x > 1 by the Taylor
// series, stopping once terms fall below the working precision.
func atanRecip(prec uint, x int64) *big.Float {
	xf := new(big.Float).SetPrec(prec).SetInt64(x)
	x2 := new(big.Float).SetPrec(prec).Mul(xf, xf)

	pow := new(big.Float).SetPrec(prec).Quo(new(big.Float).SetPrec(prec).SetInt64(1), xf)
	sum := new(big.Float).SetPrec(prec).Set(pow)

	term := new(big.Float).SetPrec(prec)
	for n, sub := int64(3), true; ; n, sub = n+2, !sub {
		pow.Quo(pow, x2)
		term.Quo(pow, new(big.Float).SetPrec(prec).SetInt64(n))
		if sub {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		if term.Sign() == 0 || term.MantExp(nil) < sum.MantExp(nil)-int(prec)-8 {
			break
		}
	}
	return sum
}
