package algebra

import (
	"math/big"
)

// RationalField is the field of arbitrary-precision rationals. It carries no
// parameters; use the package-level QQ instance.
type RationalField struct{}

// QQ is the field of rationals.
var QQ = &RationalField{}

// String returns a human-readable name for the field.
func (f *RationalField) String() string { return "Rational field" }

// SameAs reports whether other is also the rational field.
func (f *RationalField) SameAs(other Parent) bool {
	_, ok := other.(*RationalField)
	return ok
}

// New returns the rational num/den. den must be non-zero.
func (f *RationalField) New(num, den int64) (*Rational, error) {
	return NewRational(num, den)
}

// FromInt64 returns v as a rational.
func (f *RationalField) FromInt64(v int64) *Rational {
	z := new(Rational)
	z.r.SetInt64(v)
	return z
}

// FromInteger returns n as a rational.
func (f *RationalField) FromInteger(n *Integer) *Rational {
	z := new(Rational)
	z.r.SetInt(&n.i)
	return z
}

// FromString parses a rational literal such as "3/4" or "-7".
func (f *RationalField) FromString(s string) (*Rational, error) {
	z := new(Rational)
	if _, ok := z.r.SetString(s); !ok {
		return nil, NewConversionError(s, "string", "Rational")
	}
	return z, nil
}

// Ring and Field capability methods.

func (f *RationalField) Zero() *Rational              { return new(Rational) }
func (f *RationalField) One() *Rational               { z := new(Rational); z.r.SetInt64(1); return z }
func (f *RationalField) Add(a, b *Rational) *Rational { return a.Add(b) }
func (f *RationalField) Sub(a, b *Rational) *Rational { return a.Sub(b) }
func (f *RationalField) Mul(a, b *Rational) *Rational { return a.Mul(b) }
func (f *RationalField) Neg(a *Rational) *Rational    { return a.Neg() }
func (f *RationalField) IsZero(a *Rational) bool      { return a.IsZero() }
func (f *RationalField) Equal(a, b *Rational) bool    { return a.Equal(b) }
func (f *RationalField) Clone(a *Rational) *Rational  { return a.Clone() }
func (f *RationalField) Text(a *Rational) string      { return a.String() }

// Inv returns 1/a, or a DivisionError when a is zero.
func (f *RationalField) Inv(a *Rational) (*Rational, error) { return a.Inv() }

// Div returns a/b, or a DivisionError when b is zero.
func (f *RationalField) Div(a, b *Rational) (*Rational, error) { return a.Div(b) }

// Rational is an arbitrary-precision rational number, always stored in
// lowest terms with a positive denominator. The zero value is 0. Copy with
// Clone, not by assignment.
type Rational struct {
	r big.Rat
}

// NewRational returns the rational num/den in lowest terms, or a
// DivisionError when den is zero.
func NewRational(num, den int64) (*Rational, error) {
	if den == 0 {
		return nil, NewDivisionError("NewRational", "zero denominator for numerator %d", num)
	}
	z := new(Rational)
	z.r.SetFrac64(num, den)
	return z, nil
}

// RationalFromBig returns a rational with a copy of r's value.
func RationalFromBig(r *big.Rat) *Rational {
	z := new(Rational)
	z.r.Set(r)
	return z
}

// Parent returns the field the rational belongs to.
func (x *Rational) Parent() Parent { return QQ }

// Clone returns a deep copy of x.
func (x *Rational) Clone() *Rational {
	z := new(Rational)
	z.r.Set(&x.r)
	return z
}

// BigRat returns a copy of x as a math/big value.
func (x *Rational) BigRat() *big.Rat { return new(big.Rat).Set(&x.r) }

// Num returns the numerator of x (negative when x is negative).
func (x *Rational) Num() *Integer { return IntegerFromBig(x.r.Num()) }

// Den returns the (positive) denominator of x.
func (x *Rational) Den() *Integer { return IntegerFromBig(x.r.Denom()) }

// Sign returns -1, 0 or 1 according to the sign of x.
func (x *Rational) Sign() int { return x.r.Sign() }

// IsZero reports whether x is 0.
func (x *Rational) IsZero() bool { return x.r.Sign() == 0 }

// IsInteger reports whether x has unit denominator.
func (x *Rational) IsInteger() bool { return x.r.IsInt() }

// Cmp compares x and y, returning -1, 0 or 1.
func (x *Rational) Cmp(y *Rational) int { return x.r.Cmp(&y.r) }

// Equal reports whether x and y have the same value.
func (x *Rational) Equal(y *Rational) bool { return x.r.Cmp(&y.r) == 0 }

// String renders x as "num/den", or just "num" when the denominator is 1.
func (x *Rational) String() string { return x.r.RatString() }

func (z *Rational) add(x, y *Rational) { z.r.Add(&x.r, &y.r) }
func (z *Rational) sub(x, y *Rational) { z.r.Sub(&x.r, &y.r) }
func (z *Rational) mul(x, y *Rational) { z.r.Mul(&x.r, &y.r) }
func (z *Rational) neg(x *Rational)    { z.r.Neg(&x.r) }

// Add returns x + y.
func (x *Rational) Add(y *Rational) *Rational {
	z := new(Rational)
	z.add(x, y)
	return z
}

// AddAssign sets x to x + y.
func (x *Rational) AddAssign(y *Rational) { x.add(x, y) }

// Sub returns x - y.
func (x *Rational) Sub(y *Rational) *Rational {
	z := new(Rational)
	z.sub(x, y)
	return z
}

// SubAssign sets x to x - y.
func (x *Rational) SubAssign(y *Rational) { x.sub(x, y) }

// Mul returns x * y.
func (x *Rational) Mul(y *Rational) *Rational {
	z := new(Rational)
	z.mul(x, y)
	return z
}

// MulAssign sets x to x * y.
func (x *Rational) MulAssign(y *Rational) { x.mul(x, y) }

// Neg returns -x.
func (x *Rational) Neg() *Rational {
	z := new(Rational)
	z.neg(x)
	return z
}

// NegAssign sets x to -x.
func (x *Rational) NegAssign() { x.neg(x) }

// Abs returns |x|.
func (x *Rational) Abs() *Rational {
	z := new(Rational)
	z.r.Abs(&x.r)
	return z
}

// Inv returns 1/x, or a DivisionError when x is zero.
func (x *Rational) Inv() (*Rational, error) {
	if x.IsZero() {
		return nil, NewDivisionError("Inv", "inverse of zero")
	}
	z := new(Rational)
	z.r.Inv(&x.r)
	return z, nil
}

// Div returns x/y, or a DivisionError when y is zero.
func (x *Rational) Div(y *Rational) (*Rational, error) {
	if y.IsZero() {
		return nil, NewDivisionError("Div", "division of %s by zero", x)
	}
	z := new(Rational)
	z.r.Quo(&x.r, &y.r)
	return z, nil
}

// Pow returns x to the n-th power.
func (x *Rational) Pow(n uint) *Rational {
	z := QQ.One()
	base := x.Clone()
	for n > 0 {
		if n&1 == 1 {
			z.MulAssign(base)
		}
		base.MulAssign(base)
		n >>= 1
	}
	return z
}
