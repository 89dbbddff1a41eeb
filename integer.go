package algebra

import (
	"math/big"
)

// IntegerRing is the ring of arbitrary-precision integers. It carries no
// parameters; all IntegerRing values describe the same structure. Use the
// package-level ZZ instance.
type IntegerRing struct{}

// ZZ is the ring of integers.
var ZZ = &IntegerRing{}

// String returns a human-readable name for the ring.
func (r *IntegerRing) String() string { return "Integer ring" }

// SameAs reports whether other is also the integer ring.
func (r *IntegerRing) SameAs(other Parent) bool {
	_, ok := other.(*IntegerRing)
	return ok
}

// New returns the integer with the given machine value.
func (r *IntegerRing) New(v int64) *Integer { return NewInteger(v) }

// FromString parses a base-10 integer.
func (r *IntegerRing) FromString(s string) (*Integer, error) {
	return IntegerFromString(s)
}

// Ring capability methods, used by the generic polynomial and matrix
// containers.

func (r *IntegerRing) Zero() *Integer                 { return NewInteger(0) }
func (r *IntegerRing) One() *Integer                  { return NewInteger(1) }
func (r *IntegerRing) Add(a, b *Integer) *Integer     { return a.Add(b) }
func (r *IntegerRing) Sub(a, b *Integer) *Integer     { return a.Sub(b) }
func (r *IntegerRing) Mul(a, b *Integer) *Integer     { return a.Mul(b) }
func (r *IntegerRing) Neg(a *Integer) *Integer        { return a.Neg() }
func (r *IntegerRing) IsZero(a *Integer) bool         { return a.IsZero() }
func (r *IntegerRing) Equal(a, b *Integer) bool       { return a.Equal(b) }
func (r *IntegerRing) Clone(a *Integer) *Integer      { return a.Clone() }
func (r *IntegerRing) Text(a *Integer) string         { return a.String() }

// Integer is an arbitrary-precision integer. The zero value is 0 and ready
// to use. Copy Integer values with Clone, not by assignment: the payload is
// owned by the value holding it.
type Integer struct {
	i big.Int
}

// NewInteger returns the integer with the given machine value.
func NewInteger(v int64) *Integer {
	z := new(Integer)
	z.i.SetInt64(v)
	return z
}

// IntegerFromString parses a base-10 integer, returning a ConversionError if
// s is not a valid integer literal.
func IntegerFromString(s string) (*Integer, error) {
	z := new(Integer)
	if _, ok := z.i.SetString(s, 10); !ok {
		return nil, NewConversionError(s, "string", "Integer")
	}
	return z, nil
}

// IntegerFromBig returns an integer with a copy of n's value.
func IntegerFromBig(n *big.Int) *Integer {
	z := new(Integer)
	z.i.Set(n)
	return z
}

// Parent returns the ring the integer belongs to.
func (x *Integer) Parent() Parent { return ZZ }

// Clone returns a deep copy of x.
func (x *Integer) Clone() *Integer {
	z := new(Integer)
	z.i.Set(&x.i)
	return z
}

// BigInt returns a copy of x as a math/big value.
func (x *Integer) BigInt() *big.Int { return new(big.Int).Set(&x.i) }

// Int64 returns x as a machine integer, or a ConversionError when x does not
// fit in 64 bits.
func (x *Integer) Int64() (int64, error) {
	if !x.i.IsInt64() {
		return 0, NewConversionError(x.String(), "Integer", "int64")
	}
	return x.i.Int64(), nil
}

// Sign returns -1, 0 or 1 according to the sign of x.
func (x *Integer) Sign() int { return x.i.Sign() }

// IsZero reports whether x is 0.
func (x *Integer) IsZero() bool { return x.i.Sign() == 0 }

// IsOne reports whether x is 1.
func (x *Integer) IsOne() bool { return x.i.IsInt64() && x.i.Int64() == 1 }

// Cmp compares x and y, returning -1, 0 or 1.
func (x *Integer) Cmp(y *Integer) int { return x.i.Cmp(&y.i) }

// Equal reports whether x and y have the same value.
func (x *Integer) Equal(y *Integer) bool { return x.i.Cmp(&y.i) == 0 }

// CmpInt64 compares x against a machine integer.
func (x *Integer) CmpInt64(v int64) int { return x.i.Cmp(big.NewInt(v)) }

// String renders x in base 10.
func (x *Integer) String() string { return x.i.String() }

// Each arithmetic operation has one canonical in-place kernel; the
// allocating form and the assign form both forward to it.

func (z *Integer) add(x, y *Integer) { z.i.Add(&x.i, &y.i) }
func (z *Integer) sub(x, y *Integer) { z.i.Sub(&x.i, &y.i) }
func (z *Integer) mul(x, y *Integer) { z.i.Mul(&x.i, &y.i) }
func (z *Integer) neg(x *Integer)    { z.i.Neg(&x.i) }

// Add returns x + y.
func (x *Integer) Add(y *Integer) *Integer {
	z := new(Integer)
	z.add(x, y)
	return z
}

// AddAssign sets x to x + y.
func (x *Integer) AddAssign(y *Integer) { x.add(x, y) }

// Sub returns x - y.
func (x *Integer) Sub(y *Integer) *Integer {
	z := new(Integer)
	z.sub(x, y)
	return z
}

// SubAssign sets x to x - y.
func (x *Integer) SubAssign(y *Integer) { x.sub(x, y) }

// Mul returns x * y.
func (x *Integer) Mul(y *Integer) *Integer {
	z := new(Integer)
	z.mul(x, y)
	return z
}

// MulAssign sets x to x * y.
func (x *Integer) MulAssign(y *Integer) { x.mul(x, y) }

// Neg returns -x.
func (x *Integer) Neg() *Integer {
	z := new(Integer)
	z.neg(x)
	return z
}

// NegAssign sets x to -x.
func (x *Integer) NegAssign() { x.neg(x) }

// Abs returns |x|.
func (x *Integer) Abs() *Integer {
	z := new(Integer)
	z.i.Abs(&x.i)
	return z
}

// Quo returns the Euclidean quotient x div y, or a DivisionError when y is
// zero.
func (x *Integer) Quo(y *Integer) (*Integer, error) {
	if y.IsZero() {
		return nil, NewDivisionError("Quo", "division of %s by zero", x)
	}
	z := new(Integer)
	z.i.Div(&x.i, &y.i)
	return z, nil
}

// Rem returns the Euclidean remainder of x by y (always non-negative for
// positive y), or a DivisionError when y is zero.
func (x *Integer) Rem(y *Integer) (*Integer, error) {
	if y.IsZero() {
		return nil, NewDivisionError("Rem", "division of %s by zero", x)
	}
	z := new(Integer)
	z.i.Mod(&x.i, &y.i)
	return z, nil
}

// GCD returns the non-negative greatest common divisor of x and y.
func (x *Integer) GCD(y *Integer) *Integer {
	z := new(Integer)
	z.i.GCD(nil, nil, new(big.Int).Abs(&x.i), new(big.Int).Abs(&y.i))
	return z
}

// XGCD returns g, s, t with g = gcd(x, y) = s*x + t*y.
func (x *Integer) XGCD(y *Integer) (g, s, t *Integer) {
	g, s, t = new(Integer), new(Integer), new(Integer)
	g.i.GCD(&s.i, &t.i, &x.i, &y.i)
	return g, s, t
}

// Pow returns x to the n-th power. Pow(0) is 1 for every x.
func (x *Integer) Pow(n uint) *Integer {
	z := new(Integer)
	z.i.Exp(&x.i, new(big.Int).SetUint64(uint64(n)), nil)
	return z
}

// IsProbablePrime reports whether x is prime with error probability below
// 2^-64, delegating to the kernel's Miller-Rabin plus Lucas test.
func (x *Integer) IsProbablePrime() bool {
	return x.i.ProbablyPrime(0)
}
