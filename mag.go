package algebra

import (
	"math"
	"math/big"
)

// magBits is the mantissa width of a Mag. Radii only need to bound errors,
// not represent them precisely, so a short mantissa with one-sided rounding
// is enough.
const magBits = 30

// Mag is a non-negative magnitude used as a ball radius or error bound.
// Every operation rounds toward +infinity, so a Mag can only over-estimate,
// never under-estimate. A zero Mag means exactness; an infinite Mag absorbs
// any overflow or unbounded error.
type Mag struct {
	inf bool
	f   big.Float
}

// newMagFloat returns a big.Float configured for magnitude arithmetic:
// short mantissa, rounding toward +infinity.
func newMagFloat() *big.Float {
	return new(big.Float).SetPrec(magBits).SetMode(big.ToPositiveInf)
}

// MagZero returns the zero magnitude, meaning exactness.
func MagZero() *Mag { return new(Mag) }

// MagInf returns the infinite magnitude.
func MagInf() *Mag { return &Mag{inf: true} }

// MagFromFloat64 returns the magnitude of |v|, rounded up.
func MagFromFloat64(v float64) *Mag {
	if v < 0 {
		v = -v
	}
	z := new(Mag)
	z.f.SetPrec(magBits).SetMode(big.ToPositiveInf).SetFloat64(v)
	return z
}

// MagFromBigFloat returns an upper bound for |x|.
func MagFromBigFloat(x *big.Float) *Mag {
	if x.IsInf() {
		return MagInf()
	}
	z := new(Mag)
	z.f.SetPrec(magBits).SetMode(big.ToPositiveInf).Abs(x)
	return z
}

// magTwoPower returns the magnitude 2^e.
func magTwoPower(e int) *Mag {
	z := new(Mag)
	z.f.SetPrec(magBits).SetMode(big.ToPositiveInf).SetMantExp(big.NewFloat(0.5), e+1)
	return z
}

// Clone returns a copy of x.
func (x *Mag) Clone() *Mag {
	if x.inf {
		return MagInf()
	}
	z := new(Mag)
	z.f.SetPrec(magBits).SetMode(big.ToPositiveInf).Set(&x.f)
	return z
}

// IsZero reports whether x is exactly zero, i.e. represents exactness.
func (x *Mag) IsZero() bool { return !x.inf && x.f.Sign() == 0 }

// IsInf reports whether x is infinite.
func (x *Mag) IsInf() bool { return x.inf }

// Cmp compares two magnitudes, with every finite value below infinity.
func (x *Mag) Cmp(y *Mag) int {
	switch {
	case x.inf && y.inf:
		return 0
	case x.inf:
		return 1
	case y.inf:
		return -1
	}
	return x.f.Cmp(&y.f)
}

// Float returns a copy of the bound as a big.Float. Panics on the infinite
// magnitude.
func (x *Mag) Float() *big.Float {
	if x.inf {
		panic("algebra: Mag.Float on infinite magnitude")
	}
	return new(big.Float).Copy(&x.f)
}

// Float64 returns the bound as a float64, rounded up.
func (x *Mag) Float64() float64 {
	if x.inf {
		return inf64()
	}
	v, acc := x.f.Float64()
	if acc == big.Below {
		// Nudge up so the float64 remains an upper bound.
		v = nextAfter64(v)
	}
	return v
}

// String renders the bound in short scientific form.
func (x *Mag) String() string {
	if x.inf {
		return "inf"
	}
	return x.f.Text('e', 5)
}

// Add returns an upper bound for x + y.
func (x *Mag) Add(y *Mag) *Mag {
	if x.inf || y.inf {
		return MagInf()
	}
	z := new(Mag)
	z.f.SetPrec(magBits).SetMode(big.ToPositiveInf).Add(&x.f, &y.f)
	return z
}

// Mul returns an upper bound for x * y.
func (x *Mag) Mul(y *Mag) *Mag {
	if x.inf || y.inf {
		// 0 * inf is treated as inf: an unbounded error dominates.
		return MagInf()
	}
	z := new(Mag)
	z.f.SetPrec(magBits).SetMode(big.ToPositiveInf).Mul(&x.f, &y.f)
	return z
}

// Max returns the larger of x and y.
func (x *Mag) Max(y *Mag) *Mag {
	if x.Cmp(y) >= 0 {
		return x.Clone()
	}
	return y.Clone()
}

// MantExp decomposes a finite magnitude into a 30-bit mantissa and an
// exponent with value = mant * 2^(exp-30). The zero magnitude yields (0, 0).
func (x *Mag) MantExp() (mant uint32, exp int64) {
	if x.inf {
		panic("algebra: Mag.MantExp on infinite magnitude")
	}
	if x.f.Sign() == 0 {
		return 0, 0
	}
	m := new(big.Float)
	e := x.f.MantExp(m)
	// m is in [0.5, 1) with at most magBits mantissa bits, so scaling by
	// 2^magBits is exact.
	mi, _ := m.SetMantExp(m, magBits).Uint64()
	return uint32(mi), int64(e)
}

func inf64() float64 { return math.Inf(1) }

func nextAfter64(v float64) float64 { return math.Nextafter(v, math.Inf(1)) }

// magFromMantExp rebuilds a magnitude from its MantExp decomposition.
func magFromMantExp(mant uint32, exp int64) *Mag {
	if mant == 0 {
		return MagZero()
	}
	z := new(Mag)
	m := new(big.Float).SetUint64(uint64(mant))
	z.f.SetPrec(magBits).SetMode(big.ToPositiveInf).SetMantExp(m, int(exp)-magBits)
	return z
}
