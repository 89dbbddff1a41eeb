package algebra

import (
	"fmt"
	"math/big"
)

// IntModRing is the ring of integers modulo n for a fixed n > 0. Elements
// hold a shared reference to their ring; the ring itself is immutable after
// construction. Two rings are the same structure exactly when their moduli
// are equal, regardless of which call constructed them.
type IntModRing struct {
	m Integer
}

// NewIntModRing returns the ring of integers mod modulus, or a
// ConfigurationError when modulus is not positive.
func NewIntModRing(modulus *Integer) (*IntModRing, error) {
	if modulus.Sign() <= 0 {
		return nil, NewConfigurationError("modulus", "must be positive, got %s", modulus)
	}
	r := new(IntModRing)
	r.m.i.Set(&modulus.i)
	return r, nil
}

// NewIntModRingInt64 returns the ring of integers mod the given machine
// value.
func NewIntModRingInt64(modulus int64) (*IntModRing, error) {
	return NewIntModRing(NewInteger(modulus))
}

// Modulus returns a copy of the ring's modulus.
func (r *IntModRing) Modulus() *Integer { return r.m.Clone() }

// String returns a human-readable name for the ring.
func (r *IntModRing) String() string {
	return fmt.Sprintf("Ring of integers mod %s", &r.m)
}

// SameAs reports whether other is a ring with an equal modulus. A pointer
// match short-circuits the comparison, but equality never requires it.
func (r *IntModRing) SameAs(other Parent) bool {
	o, ok := other.(*IntModRing)
	if !ok {
		return false
	}
	return r == o || r.m.Equal(&o.m)
}

/// New returns the residue of value in the ring. Construction always reduces:
// the payload of an IntMod is kept in [0, modulus).
func (r *IntModRing) New(value *Integer) *IntMod {
	z := &IntMod{ring: r}
	z.val.i.Set(&value.i)
	z.canonicalize()
	return z
}

// NewInt64 returns the residue of a machine value in the ring.
func (r *IntModRing) NewInt64(value int64) *IntMod {
	return r.New(NewInteger(value))
}

// Ring capability methods.

func (r *IntModRing) Zero() *IntMod             { return r.NewInt64(0) }
func (r *IntModRing) One() *IntMod              { return r.NewInt64(1) }
func (r *IntModRing) Add(a, b *IntMod) *IntMod  { return a.Add(b) }
func (r *IntModRing) Sub(a, b *IntMod) *IntMod  { return a.Sub(b) }
func (r *IntModRing) Mul(a, b *IntMod) *IntMod  { return a.Mul(b) }
func (r *IntModRing) Neg(a *IntMod) *IntMod     { return a.Neg() }
func (r *IntModRing) IsZero(a *IntMod) bool     { return a.IsZero() }
func (r *IntModRing) Equal(a, b *IntMod) bool   { return a.Equal(b) }
func (r *IntModRing) Clone(a *IntMod) *IntMod   { return a.Clone() }
func (r *IntModRing) Text(a *IntMod) string     { return a.String() }

// Inv returns the multiplicative inverse of a, or a DivisionError when a and
// the modulus are not coprime.
func (r *IntModRing) Inv(a *IntMod) (*IntMod, error) { return a.Inv() }

// Div returns a * b^-1, or a DivisionError when b is not invertible.
func (r *IntModRing) Div(a, b *IntMod) (*IntMod, error) {
	bi, err := b.Inv()
	if err != nil {
		return nil, err
	}
	return a.Mul(bi), nil
}

// IntMod is a residue class modulo the modulus of its ring. The payload is
// always reduced to [0, modulus); every mutating operation re-establishes
// that invariant. Copy with Clone, not by assignment.
type IntMod struct {
	ring *IntModRing
	val  Integer
}

// Parent returns the ring the element belongs to.
func (x *IntMod) Parent() Parent { return x.ring }

// Ring returns the element's ring.
func (x *IntMod) Ring() *IntModRing { return x.ring }

// canonicalize reduces the payload into [0, modulus).
func (x *IntMod) canonicalize() {
	x.val.i.Mod(&x.val.i, &x.ring.m.i)
}

// Clone returns a deep copy of x, referencing the same ring.
func (x *IntMod) Clone() *IntMod {
	z := &IntMod{ring: x.ring}
	z.val.i.Set(&x.val.i)
	return z
}

// Lift returns the canonical representative of x in [0, modulus) as an
// integer.
func (x *IntMod) Lift() *Integer { return x.val.Clone() }

// IsZero reports whether x is the zero residue.
func (x *IntMod) IsZero() bool { return x.val.IsZero() }

// IsOne reports whether x is the unit residue.
func (x *IntMod) IsOne() bool {
	if x.ring.m.IsOne() {
		return x.val.IsZero()
	}
	return x.val.IsOne()
}

// Equal reports whether x and y are the same residue. The rings must be the
// same structure; mismatched rings are a programming defect and panic.
func (x *IntMod) Equal(y *IntMod) bool {
	mustCompatible("Equal", x.ring, y.ring)
	return x.val.Equal(&y.val)
}

// String renders the canonical representative of x.
func (x *IntMod) String() string { return x.val.String() }

func (z *IntMod) add(x, y *IntMod) {
	z.val.i.Add(&x.val.i, &y.val.i)
	z.canonicalize()
}

func (z *IntMod) sub(x, y *IntMod) {
	z.val.i.Sub(&x.val.i, &y.val.i)
	z.canonicalize()
}

func (z *IntMod) mul(x, y *IntMod) {
	z.val.i.Mul(&x.val.i, &y.val.i)
	z.canonicalize()
}

// Add returns x + y. Panics when the rings differ.
func (x *IntMod) Add(y *IntMod) *IntMod {
	mustCompatible("Add", x.ring, y.ring)
	z := &IntMod{ring: x.ring}
	z.add(x, y)
	return z
}

// AddAssign sets x to x + y. Panics when the rings differ.
func (x *IntMod) AddAssign(y *IntMod) {
	mustCompatible("AddAssign", x.ring, y.ring)
	x.add(x, y)
}

// Sub returns x - y. Panics when the rings differ.
func (x *IntMod) Sub(y *IntMod) *IntMod {
	mustCompatible("Sub", x.ring, y.ring)
	z := &IntMod{ring: x.ring}
	z.sub(x, y)
	return z
}

// SubAssign sets x to x - y. Panics when the rings differ.
func (x *IntMod) SubAssign(y *IntMod) {
	mustCompatible("SubAssign", x.ring, y.ring)
	x.sub(x, y)
}

// Mul returns x * y. Panics when the rings differ.
func (x *IntMod) Mul(y *IntMod) *IntMod {
	mustCompatible("Mul", x.ring, y.ring)
	z := &IntMod{ring: x.ring}
	z.mul(x, y)
	return z
}

// MulAssign sets x to x * y. Panics when the rings differ.
func (x *IntMod) MulAssign(y *IntMod) {
	mustCompatible("MulAssign", x.ring, y.ring)
	x.mul(x, y)
}

// Neg returns -x.
func (x *IntMod) Neg() *IntMod {
	z := &IntMod{ring: x.ring}
	z.val.i.Neg(&x.val.i)
	z.canonicalize()
	return z
}

// Inv returns the multiplicative inverse of x, or a DivisionError when x and
// the modulus share a factor.
func (x *IntMod) Inv() (*IntMod, error) {
	z := &IntMod{ring: x.ring}
	if z.val.i.ModInverse(&x.val.i, &x.ring.m.i) == nil {
		return nil, NewDivisionError("Inv", "%s is not invertible mod %s", &x.val, &x.ring.m)
	}
	return z, nil
}

// Pow returns x to the n-th power by modular binary exponentiation.
func (x *IntMod) Pow(n uint) *IntMod {
	z := &IntMod{ring: x.ring}
	z.val.i.Exp(&x.val.i, new(big.Int).SetUint64(uint64(n)), &x.ring.m.i)
	return z
}
