package algebra

import (
	"math/big"
	"math/bits"
	"sync"

	"github.com/agbru/algebra/internal/config"
	"github.com/agbru/algebra/internal/logging"
)

// Elementary functions on balls. Every function follows the same shape: an
// internal kernel evaluates the midpoint (or the interval endpoints, for
// monotone functions) on exact big.Float values at a padded working
// precision and reports a magnitude bounding every error source — series
// truncation, accumulated rounding, argument-reduction slop. The ball
// wrapper folds the input radius in through a Lipschitz or endpoint bound
// and retries with doubled padding while the result is wider than the
// target, up to the configured step cap. Precision loss is never an error:
// when the cap is hit, the widened ball is returned as-is.

// seriesRound bounds the rounding error accumulated by ops big.Float
// operations at precision wp on intermediate values of magnitude at most
// 2^maxExp.
func seriesRound(ops int, maxExp int, wp uint) *Mag {
	return magTwoPower(bits.Len(uint(ops)) + maxExp + 1 - int(wp))
}

// upFloat and downFloat return short directed-rounding accumulators used
// for endpoint and bound computations.
func upFloat() *big.Float {
	return new(big.Float).SetPrec(magBits).SetMode(big.ToPositiveInf)
}

func downFloat() *big.Float {
	return new(big.Float).SetPrec(magBits).SetMode(big.ToNegativeInf)
}

type cachedConst struct {
	val *big.Float
	err *Mag
}

var constCache = struct {
	mu  sync.Mutex
	pi  map[uint]cachedConst
	ln2 map[uint]cachedConst
}{
	pi:  make(map[uint]cachedConst),
	ln2: make(map[uint]cachedConst),
}

// atanRecip evaluates arctan(1/q) at precision wp by the alternating Taylor
// series. The tail of an alternating series with decreasing terms is bounded
// by its first omitted term.
func atanRecip(q int64, wp uint) (*big.Float, *Mag) {
	qf := new(big.Float).SetPrec(wp).SetInt64(q)
	q2 := new(big.Float).SetPrec(wp).SetInt64(q * q)
	pow := new(big.Float).SetPrec(wp).Quo(big.NewFloat(1), qf)
	sum := new(big.Float).SetPrec(wp).Set(pow)
	term := new(big.Float).SetPrec(wp)
	threshold := new(big.Float).SetMantExp(big.NewFloat(0.5), -int(wp)-3)

	ops := 2
	for i := 1; ; i++ {
		pow.Quo(pow, q2)
		term.Quo(pow, new(big.Float).SetInt64(int64(2*i+1)))
		ops += 3
		if term.Cmp(threshold) < 0 {
			return sum, MagFromBigFloat(term).Add(seriesRound(ops, 0, wp))
		}
		if i%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}
}

// piFloat returns pi at precision wp with a certified error bound, using
// Machin's formula pi = 16*arctan(1/5) - 4*arctan(1/239).
func piFloat(wp uint) (*big.Float, *Mag) {
	constCache.mu.Lock()
	if c, ok := constCache.pi[wp]; ok {
		constCache.mu.Unlock()
		return new(big.Float).Copy(c.val), c.err.Clone()
	}
	constCache.mu.Unlock()

	a5, e5 := atanRecip(5, wp+8)
	a239, e239 := atanRecip(239, wp+8)
	pi := new(big.Float).SetPrec(wp + 8)
	pi.Sub(new(big.Float).SetPrec(wp+8).SetMantExp(a5, 4), new(big.Float).SetPrec(wp+8).SetMantExp(a239, 2))
	err := magTwoPower(4).Mul(e5).Add(magTwoPower(2).Mul(e239)).Add(seriesRound(4, 2, wp+8))

	constCache.mu.Lock()
	constCache.pi[wp] = cachedConst{val: new(big.Float).Copy(pi), err: err.Clone()}
	constCache.mu.Unlock()
	return pi, err
}

// ln2Float returns log(2) at precision wp with a certified error bound,
// using log(2) = 2*atanh(1/3). The series terms are positive with ratio at
// most 1/9, so the tail is below 9/8 of the first omitted term.
func ln2Float(wp uint) (*big.Float, *Mag) {
	constCache.mu.Lock()
	if c, ok := constCache.ln2[wp]; ok {
		constCache.mu.Unlock()
		return new(big.Float).Copy(c.val), c.err.Clone()
	}
	constCache.mu.Unlock()

	p := wp + 8
	t := new(big.Float).SetPrec(p).Quo(big.NewFloat(1), big.NewFloat(3))
	t2 := new(big.Float).SetPrec(p).Mul(t, t)
	pow := new(big.Float).SetPrec(p).Set(t)
	sum := new(big.Float).SetPrec(p).Set(t)
	term := new(big.Float).SetPrec(p)
	threshold := new(big.Float).SetMantExp(big.NewFloat(0.5), -int(p)-3)

	ops := 3
	var tail *Mag
	for i := 1; ; i++ {
		pow.Mul(pow, t2)
		term.Quo(pow, new(big.Float).SetInt64(int64(2*i+1)))
		ops += 3
		if term.Cmp(threshold) < 0 {
			tail = MagFromBigFloat(term).Mul(MagFromFloat64(2))
			break
		}
		sum.Add(sum, term)
	}
	ln2 := new(big.Float).SetPrec(p).SetMantExp(sum, 1)
	err := tail.Add(seriesRound(ops, 0, p))

	constCache.mu.Lock()
	constCache.ln2[wp] = cachedConst{val: new(big.Float).Copy(ln2), err: err.Clone()}
	constCache.mu.Unlock()
	return ln2, err
}

// expFloat evaluates exp(x) for an exact x at precision wp. It reduces
// x = k*log(2) + r with |r| <= log(2)/2, evaluates the Taylor series of
// exp(r) and scales by 2^k. The returned magnitude bounds truncation,
// rounding and reduction error together.
func expFloat(x *big.Float, wp uint) (*big.Float, *Mag, error) {
	p := wp + 8
	if x.Sign() == 0 {
		return big.NewFloat(1).SetPrec(wp), MagZero(), nil
	}
	ln2, eln2 := ln2Float(p)

	// k = nearest integer to x / log(2).
	kf := new(big.Float).SetPrec(64).Quo(x, ln2)
	if kf.MantExp(nil) > 30 {
		return nil, nil, NewDomainError("Exp", x.Text('g', 8))
	}
	half := big.NewFloat(0.5)
	if kf.Sign() >= 0 {
		kf.Add(kf, half)
	} else {
		kf.Sub(kf, half)
	}
	k, _ := kf.Int64()

	// r = x - k*ln2; the reduction error is |k| times the ln2 bound plus
	// two roundings.
	r := new(big.Float).SetPrec(p)
	r.Sub(x, new(big.Float).SetPrec(p).Mul(ln2, new(big.Float).SetInt64(k)))
	absK := k
	if absK < 0 {
		absK = -absK
	}
	redErr := MagFromFloat64(float64(absK) + 1).Mul(eln2).Add(seriesRound(2, 1, p))

	// Taylor series of exp(r), |r| < 0.7 after reduction slop.
	sum := new(big.Float).SetPrec(p).SetInt64(1)
	term := new(big.Float).SetPrec(p).SetInt64(1)
	threshold := new(big.Float).SetMantExp(big.NewFloat(0.5), -int(p)-3)
	ops := 0
	for i := int64(1); ; i++ {
		term.Mul(term, r)
		term.Quo(term, new(big.Float).SetInt64(i))
		sum.Add(sum, term)
		ops += 3
		t := new(big.Float).Abs(term)
		if t.Cmp(threshold) < 0 {
			break
		}
	}
	tail := MagFromBigFloat(new(big.Float).Abs(term)).Mul(MagFromFloat64(2))

	// |exp(r + d) - exp(r)| <= exp(r) * 2|d| for |d| < 1/2, and
	// exp(r) <= 2 on the reduced range.
	localErr := tail.Add(seriesRound(ops, 2, p)).Add(MagFromFloat64(4).Mul(redErr))

	res := new(big.Float).SetPrec(wp).SetMantExp(sum, int(k))
	scaled := magTwoPower(int(k)).Mul(localErr).Add(roundErr(res))
	return res, scaled, nil
}

// logFloat evaluates log(x) for an exact x > 0 at precision wp, via
// log(m * 2^e) = e*log(2) + 2*atanh((m-1)/(m+1)) with m in [1/2, 1).
func logFloat(x *big.Float, wp uint) (*big.Float, *Mag) {
	p := wp + 8
	m := new(big.Float)
	e := x.MantExp(m)
	m.SetPrec(p)

	num := new(big.Float).SetPrec(p).Sub(m, big.NewFloat(1))
	den := new(big.Float).SetPrec(p).Add(m, big.NewFloat(1))
	t := new(big.Float).SetPrec(p).Quo(num, den)

	// |t| <= 1/3, so the series ratio is at most 1/9.
	t2 := new(big.Float).SetPrec(p).Mul(t, t)
	pow := new(big.Float).SetPrec(p).Set(t)
	sum := new(big.Float).SetPrec(p).Set(t)
	term := new(big.Float).SetPrec(p)
	threshold := new(big.Float).SetMantExp(big.NewFloat(0.5), -int(p)-3)
	ops := 6
	var tail *Mag
	for i := 1; ; i++ {
		pow.Mul(pow, t2)
		term.Quo(pow, new(big.Float).SetInt64(int64(2*i+1)))
		ops += 3
		ta := new(big.Float).Abs(term)
		if ta.Cmp(threshold) < 0 {
			tail = MagFromBigFloat(ta).Mul(MagFromFloat64(2))
			break
		}
		sum.Add(sum, term)
	}
	lnm := new(big.Float).SetPrec(p).SetMantExp(sum, 1)

	res := new(big.Float).SetPrec(wp)
	if e != 0 {
		ln2, eln2 := ln2Float(p)
		ef := new(big.Float).SetPrec(p).SetInt64(int64(e))
		res.Add(lnm, new(big.Float).SetPrec(p).Mul(ef, ln2))
		absE := e
		if absE < 0 {
			absE = -absE
		}
		tail = tail.Add(MagFromFloat64(float64(absE)).Mul(eln2))
	} else {
		res.Set(lnm)
	}
	err := tail.Add(seriesRound(ops, bits.Len(uint(abs(e)))+1, p)).Add(roundErr(res))
	return res, err
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sinCosFloat evaluates sin(x) and cos(x) for an exact x at precision wp.
// The argument is reduced modulo pi/2 with pi computed at a precision
// padded by the exponent of x, then both Taylor series are summed on the
// reduced range |r| <= pi/4 plus slop. One magnitude bounds both results.
func sinCosFloat(x *big.Float, wp uint) (sin, cos *big.Float, errMag *Mag, err error) {
	xExp := 0
	if x.Sign() != 0 {
		xExp = x.MantExp(nil)
	}
	if xExp > 1<<20 {
		return nil, nil, nil, NewDomainError("SinCos", x.Text('g', 8))
	}
	if xExp < 0 {
		xExp = 0
	}
	p := wp + 16 + uint(xExp)

	pi, epi := piFloat(p)
	halfPi := new(big.Float).SetMantExp(pi, -1)

	// n = nearest integer to x / (pi/2), exact as a big.Int.
	nf := new(big.Float).SetPrec(p).Quo(x, halfPi)
	half := big.NewFloat(0.5)
	if nf.Sign() >= 0 {
		nf.Add(nf, half)
	} else {
		nf.Sub(nf, half)
	}
	n, _ := nf.Int(nil)

	r := new(big.Float).SetPrec(p)
	r.Sub(x, new(big.Float).SetPrec(p).Mul(halfPi, new(big.Float).SetInt(n)))
	nAbs := new(big.Float).SetInt(new(big.Int).Abs(n))
	redErr := MagFromBigFloat(nAbs).Add(MagFromFloat64(1)).Mul(epi).Add(seriesRound(3, xExp+2, p))

	// Taylor series for sin(r) and cos(r); both are alternating with
	// decreasing terms on |r| < 1, so the tails are bounded by the first
	// omitted terms.
	sinR := new(big.Float).SetPrec(p).Set(r)
	cosR := new(big.Float).SetPrec(p).SetInt64(1)
	termS := new(big.Float).SetPrec(p).Set(r)
	termC := new(big.Float).SetPrec(p).SetInt64(1)
	r2 := new(big.Float).SetPrec(p).Mul(r, r)
	threshold := new(big.Float).SetMantExp(big.NewFloat(0.5), -int(p)-3)
	ops := 4
	for i := int64(1); ; i++ {
		// termS_i = (-1)^i r^(2i+1)/(2i+1)!; termC_i = (-1)^i r^(2i)/(2i)!.
		termC.Mul(termC, r2)
		termC.Quo(termC, new(big.Float).SetInt64(2*i*(2*i-1)))
		termS.Mul(termS, r2)
		termS.Quo(termS, new(big.Float).SetInt64(2*i*(2*i+1)))
		if i%2 == 1 {
			sinR.Sub(sinR, termS)
			cosR.Sub(cosR, termC)
		} else {
			sinR.Add(sinR, termS)
			cosR.Add(cosR, termC)
		}
		ops += 6
		ts := new(big.Float).Abs(termS)
		tc := new(big.Float).Abs(termC)
		if ts.Cmp(threshold) < 0 && tc.Cmp(threshold) < 0 {
			break
		}
	}
	tail := MagFromBigFloat(new(big.Float).Abs(termS)).Max(MagFromBigFloat(new(big.Float).Abs(termC))).Mul(MagFromFloat64(2))

	// Both sin and cos are 1-Lipschitz, so the reduction error carries
	// through unchanged.
	total := tail.Add(seriesRound(ops, 1, p)).Add(redErr)

	// Quadrant mapping by n mod 4.
	q := new(big.Int).Mod(n, big.NewInt(4)).Int64()
	s := new(big.Float).SetPrec(wp)
	c := new(big.Float).SetPrec(wp)
	switch q {
	case 0:
		s.Set(sinR)
		c.Set(cosR)
	case 1:
		s.Set(cosR)
		c.Neg(sinR)
	case 2:
		s.Neg(sinR)
		c.Neg(cosR)
	case 3:
		s.Neg(cosR)
		c.Set(sinR)
	}
	total = total.Add(roundErr(s)).Add(roundErr(c))
	return s, c, total, nil
}

// endpoints returns certified lower and upper big.Float bounds of a finite
// ball at precision wp.
func (x *Real) endpoints(wp uint) (lo, hi *big.Float) {
	lo = new(big.Float).SetPrec(wp).SetMode(big.ToNegativeInf)
	hi = new(big.Float).SetPrec(wp).SetMode(big.ToPositiveInf)
	if x.rad.IsZero() {
		lo.Set(&x.mid.f)
		hi.Set(&x.mid.f)
		return lo, hi
	}
	lo.Sub(&x.mid.f, &x.rad.f)
	hi.Add(&x.mid.f, &x.rad.f)
	return lo, hi
}

// ballFromEndpoints builds the ball [ (vlo+vhi)/2 +/- (vhi-vlo)/2 + errs ]
// at the field precision, returning the irreducible half-width separately
// for the adaptive acceptance check.
func (f *RealField) ballFromEndpoints(vlo, vhi *big.Float, fnErr *Mag) (*Real, *Mag) {
	z := f.Zero()
	z.mid.f.Add(vlo, vhi)
	rnd := roundErr(&z.mid.f)
	// Halving is an exact exponent shift.
	z.mid.f.SetMantExp(&z.mid.f, -1)

	irr := MagFromBigFloat(upFloat().Sub(vhi, vlo))
	irr = magHalf(irr)
	z.rad = *irr.Add(fnErr).Add(rnd)
	return z, irr
}

// magHalf halves a finite magnitude exactly.
func magHalf(m *Mag) *Mag {
	if m.inf || m.f.Sign() == 0 {
		return m.Clone()
	}
	z := m.Clone()
	z.f.SetMantExp(&z.f, -1)
	return z
}

// accepted reports whether a result ball is tight enough for the field
// precision: its radius is within a small factor of the irreducible width
// inherited from the input, or below one unit in the prec-th place of the
// midpoint.
func (f *RealField) accepted(z *Real, irr *Mag) bool {
	if z.rad.IsInf() {
		return false
	}
	if z.rad.IsZero() {
		return true
	}
	if !irr.IsZero() && z.rad.Cmp(irr.Mul(MagFromFloat64(1.5))) <= 0 {
		return true
	}
	exp := 0
	if z.mid.f.Sign() != 0 {
		exp = z.mid.f.MantExp(nil)
	}
	return z.rad.Cmp(magTwoPower(exp-int(f.prec)+2)) <= 0
}

// adaptive runs eval with doubling precision padding until the result is
// accepted or the configured step cap is reached, and returns the last
// ball either way.
func (f *RealField) adaptive(op string, eval func(wp uint) (*Real, *Mag, error)) (*Real, error) {
	pad := uint(8)
	steps := config.MaxAdaptiveSteps()
	var z *Real
	for step := 0; ; step++ {
		var irr *Mag
		var err error
		z, irr, err = eval(f.prec + pad)
		if err != nil {
			return nil, err
		}
		if f.accepted(z, irr) || step >= steps-1 {
			return z, nil
		}
		pad *= 2
		log := logging.L()
		log.Debug().Str("op", op).Uint("pad", pad).Msg("adaptive precision retry")
	}
}

// Pi returns a ball containing pi at the field precision.
func (f *RealField) Pi() *Real {
	v, e := piFloat(f.prec + 8)
	z := f.Zero()
	z.mid.f.Set(v)
	z.rad = *e.Add(roundErr(&z.mid.f))
	return z
}

// Log2 returns a ball containing log(2) at the field precision.
func (f *RealField) Log2() *Real {
	v, e := ln2Float(f.prec + 8)
	z := f.Zero()
	z.mid.f.Set(v)
	z.rad = *e.Add(roundErr(&z.mid.f))
	return z
}

// E returns a ball containing Euler's number at the field precision.
func (f *RealField) E() *Real {
	z, _ := f.One().Exp()
	return z
}

// Sqrt returns a ball containing the square root of every point of x, or a
// DomainError when the ball contains negative values. The kernel's
// correctly-rounded square root is applied to both interval endpoints.
func (x *Real) Sqrt() (*Real, error) {
	if x.rad.IsInf() {
		return nil, NewDomainError("Sqrt", x.String())
	}
	wp := x.field.prec + 8
	lo, hi := x.endpoints(wp)
	if lo.Sign() < 0 {
		return nil, NewDomainError("Sqrt", x.String())
	}
	vlo := new(big.Float).SetPrec(wp).Sqrt(lo)
	elo := roundErr(vlo)
	vhi := new(big.Float).SetPrec(wp).Sqrt(hi)
	ehi := roundErr(vhi)
	z, _ := x.field.ballFromEndpoints(vlo, vhi, elo.Max(ehi))
	return z, nil
}

// Exp returns a ball containing exp(t) for every t in x. exp is monotone,
// so the interval endpoints are evaluated and the series/rounding error is
// re-evaluated at doubled padding while the result is too wide.
func (x *Real) Exp() (*Real, error) {
	if x.rad.IsInf() {
		z := x.field.Zero()
		z.rad = *MagInf()
		return z, nil
	}
	return x.field.adaptive("Exp", func(wp uint) (*Real, *Mag, error) {
		lo, hi := x.endpoints(wp)
		vlo, elo, err := expFloat(lo, wp)
		if err != nil {
			return nil, nil, err
		}
		vhi, ehi, err := expFloat(hi, wp)
		if err != nil {
			return nil, nil, err
		}
		z, irr := x.field.ballFromEndpoints(vlo, vhi, elo.Max(ehi))
		return z, irr, nil
	})
}

// Log returns a ball containing log(t) for every t in x, or a DomainError
// when the ball touches zero or negative values.
func (x *Real) Log() (*Real, error) {
	if x.rad.IsInf() {
		return nil, NewDomainError("Log", x.String())
	}
	return x.field.adaptive("Log", func(wp uint) (*Real, *Mag, error) {
		lo, hi := x.endpoints(wp)
		if lo.Sign() <= 0 {
			return nil, nil, NewDomainError("Log", x.String())
		}
		vlo, elo := logFloat(lo, wp)
		vhi, ehi := logFloat(hi, wp)
		z, irr := x.field.ballFromEndpoints(vlo, vhi, elo.Max(ehi))
		return z, irr, nil
	})
}

// Sin returns a ball containing sin(t) for every t in x. sin is 1-Lipschitz,
// so the input radius carries through unchanged; when the ball is wider
// than the period the trivial enclosure [0 +/- 1] is returned.
func (x *Real) Sin() (*Real, error) {
	return x.sinCos("Sin", true)
}

// Cos returns a ball containing cos(t) for every t in x.
func (x *Real) Cos() (*Real, error) {
	return x.sinCos("Cos", false)
}

func (x *Real) sinCos(op string, wantSin bool) (*Real, error) {
	f := x.field
	unit := func() *Real {
		z := f.Zero()
		z.rad = *MagFromFloat64(1)
		return z
	}
	if x.rad.IsInf() || x.rad.Cmp(MagFromFloat64(3.15)) >= 0 {
		return unit(), nil
	}
	z, err := f.adaptive(op, func(wp uint) (*Real, *Mag, error) {
		s, c, e, err := sinCosFloat(&x.mid.f, wp)
		if err != nil {
			return nil, nil, err
		}
		z := f.Zero()
		if wantSin {
			z.mid.f.Set(s)
		} else {
			z.mid.f.Set(c)
		}
		rnd := roundErr(&z.mid.f)
		z.rad = *x.rad.Add(e).Add(rnd)
		return z, x.rad.Clone(), nil
	})
	if err != nil {
		return nil, err
	}
	if z.rad.Cmp(MagFromFloat64(1)) >= 0 {
		return unit(), nil
	}
	return z, nil
}

// PowInt returns a ball containing t^n for every t in x. Negative exponents
// require the ball to exclude zero and return a DivisionError otherwise.
func (x *Real) PowInt(n int) (*Real, error) {
	if n >= 0 {
		return RingPow[*Real](x.field, x, uint(n)), nil
	}
	inv, err := x.Inv()
	if err != nil {
		return nil, err
	}
	return RingPow[*Real](x.field, inv, uint(-n)), nil
}

// Pow returns a ball containing s^t for s in x and t in y, computed as
// exp(t*log(s)). The base ball must be strictly positive.
func (x *Real) Pow(y *Real) (*Real, error) {
	mustCompatible("Pow", x.field, y.field)
	lx, err := x.Log()
	if err != nil {
		return nil, err
	}
	return lx.Mul(y).Exp()
}
