package algebra

import (
	"math/big"
)

// Arf is an exact arbitrary-precision binary floating-point value, used as
// the midpoint of a ball. An Arf never carries an error of its own: rounding
// only happens when an operation is asked for a target precision, and the
// rounding error is reported alongside the result as a Mag so the caller can
// fold it into a radius.
type Arf struct {
	f big.Float
}

// ArfFromInt64 returns the exact value v.
func ArfFromInt64(v int64) *Arf {
	z := new(Arf)
	z.f.SetPrec(64).SetInt64(v)
	return z
}

// ArfFromFloat64 returns the exact value of v (every float64 is a dyadic
// rational).
func ArfFromFloat64(v float64) *Arf {
	z := new(Arf)
	z.f.SetPrec(53).SetFloat64(v)
	return z
}

// ArfFromBigFloat returns a copy of x with its precision preserved.
func ArfFromBigFloat(x *big.Float) *Arf {
	z := new(Arf)
	z.f.Copy(x)
	return z
}

// ArfFromInteger returns the exact value of n.
func ArfFromInteger(n *Integer) *Arf {
	z := new(Arf)
	prec := uint(n.i.BitLen())
	if prec < 64 {
		prec = 64
	}
	z.f.SetPrec(prec).SetInt(&n.i)
	return z
}

// Clone returns a copy of x.
func (x *Arf) Clone() *Arf {
	z := new(Arf)
	z.f.Copy(&x.f)
	return z
}

// Float returns a copy of x as a big.Float.
func (x *Arf) Float() *big.Float { return new(big.Float).Copy(&x.f) }

// Rat returns the exact rational value of x.
func (x *Arf) Rat() *Rational {
	r, _ := x.f.Rat(nil)
	return RationalFromBig(r)
}

// Sign returns -1, 0 or 1 according to the sign of x.
func (x *Arf) Sign() int { return x.f.Sign() }

// IsZero reports whether x is zero.
func (x *Arf) IsZero() bool { return x.f.Sign() == 0 }

// Cmp compares x and y, returning -1, 0 or 1.
func (x *Arf) Cmp(y *Arf) int { return x.f.Cmp(&y.f) }

// Equal reports whether x and y are the same exact value.
func (x *Arf) Equal(y *Arf) bool { return x.f.Cmp(&y.f) == 0 }

// Neg returns -x, exactly.
func (x *Arf) Neg() *Arf {
	z := new(Arf)
	z.f.Copy(&x.f)
	z.f.Neg(&z.f)
	return z
}

// Abs returns |x|, exactly.
func (x *Arf) Abs() *Arf {
	z := new(Arf)
	z.f.Copy(&x.f)
	z.f.Abs(&z.f)
	return z
}

// String renders x in decimal scientific form at its native precision.
func (x *Arf) String() string { return x.f.Text('g', -1) }

// Add returns x + y rounded to prec bits, together with a bound on the
// rounding error.
func (x *Arf) Add(y *Arf, prec uint) (*Arf, *Mag) {
	z := new(Arf)
	z.f.SetPrec(prec).Add(&x.f, &y.f)
	return z, roundErr(&z.f)
}

// Sub returns x - y rounded to prec bits, together with a bound on the
// rounding error.
func (x *Arf) Sub(y *Arf, prec uint) (*Arf, *Mag) {
	z := new(Arf)
	z.f.SetPrec(prec).Sub(&x.f, &y.f)
	return z, roundErr(&z.f)
}

// Mul returns x * y rounded to prec bits, together with a bound on the
// rounding error.
func (x *Arf) Mul(y *Arf, prec uint) (*Arf, *Mag) {
	z := new(Arf)
	z.f.SetPrec(prec).Mul(&x.f, &y.f)
	return z, roundErr(&z.f)
}

// Div returns x / y rounded to prec bits, together with a bound on the
// rounding error, or a DivisionError when y is zero.
func (x *Arf) Div(y *Arf, prec uint) (*Arf, *Mag, error) {
	if y.IsZero() {
		return nil, nil, NewDivisionError("Div", "division of %s by zero", x)
	}
	z := new(Arf)
	z.f.SetPrec(prec).Quo(&x.f, &y.f)
	return z, roundErr(&z.f), nil
}

// roundErr returns a magnitude bounding the rounding error recorded by the
// most recent operation on f: zero when the result was exact, one unit in
// the last place otherwise.
func roundErr(f *big.Float) *Mag {
	if f.Acc() == big.Exact {
		return MagZero()
	}
	exp := f.MantExp(nil)
	return magTwoPower(exp - int(f.Prec()))
}
