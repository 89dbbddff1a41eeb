package algebra

import (
	"fmt"
	"strings"
)

// PolyRing is the ring of univariate polynomials over a base ring, with a
// named variable. It is generic over the coefficient type: any context
// implementing Ring[E] can serve as the base, so integer, rational, modular
// and finite-field polynomials are all instantiations of the same container.
type PolyRing[E any] struct {
	base    Ring[E]
	varName string
}

// NewPolyRing returns the polynomial ring base[varName]. An empty variable
// name defaults to "x".
func NewPolyRing[E any](base Ring[E], varName string) *PolyRing[E] {
	if varName == "" {
		varName = "x"
	}
	return &PolyRing[E]{base: base, varName: varName}
}

// Base returns the coefficient ring.
func (r *PolyRing[E]) Base() Ring[E] { return r.base }

// Var returns the variable name.
func (r *PolyRing[E]) Var() string { return r.varName }

// String returns a human-readable name for the ring.
func (r *PolyRing[E]) String() string {
	return fmt.Sprintf("Univariate polynomial ring in %s over %v", r.varName, r.base)
}

// SameAs reports whether other is a polynomial ring in the same variable
// over the same base structure.
func (r *PolyRing[E]) SameAs(other Parent) bool {
	o, ok := other.(*PolyRing[E])
	if !ok {
		return false
	}
	return r == o || (r.varName == o.varName && r.base.SameAs(o.base))
}

// New returns the polynomial with the given coefficients, coeffs[i] being
// the coefficient of the i-th power. Coefficients are cloned; trailing zeros
// are trimmed.
func (r *PolyRing[E]) New(coeffs ...E) *Poly[E] {
	z := &Poly[E]{ring: r, c: make([]E, len(coeffs))}
	for i, c := range coeffs {
		z.c[i] = r.base.Clone(c)
	}
	z.normalize()
	return z
}

// Gen returns the generator of the ring, i.e. the polynomial "x".
func (r *PolyRing[E]) Gen() *Poly[E] {
	return r.New(r.base.Zero(), r.base.One())
}

// Constant returns the constant polynomial with value c.
func (r *PolyRing[E]) Constant(c E) *Poly[E] { return r.New(c) }

// Ring capability methods: a polynomial ring is itself a Ring over its
// polynomials, so rings nest (matrices of polynomials, polynomials of
// polynomials).

func (r *PolyRing[E]) Zero() *Poly[E]                { return &Poly[E]{ring: r} }
func (r *PolyRing[E]) One() *Poly[E]                 { return r.New(r.base.One()) }
func (r *PolyRing[E]) Add(a, b *Poly[E]) *Poly[E]    { return a.Add(b) }
func (r *PolyRing[E]) Sub(a, b *Poly[E]) *Poly[E]    { return a.Sub(b) }
func (r *PolyRing[E]) Mul(a, b *Poly[E]) *Poly[E]    { return a.Mul(b) }
func (r *PolyRing[E]) Neg(a *Poly[E]) *Poly[E]       { return a.Neg() }
func (r *PolyRing[E]) IsZero(a *Poly[E]) bool        { return a.IsZero() }
func (r *PolyRing[E]) Equal(a, b *Poly[E]) bool      { return a.Equal(b) }
func (r *PolyRing[E]) Clone(a *Poly[E]) *Poly[E]     { return a.Clone() }
func (r *PolyRing[E]) Text(a *Poly[E]) string        { return a.String() }

// Poly is a univariate polynomial over a generic coefficient ring. The
// coefficient slice is normalized: it never ends in a zero, and the zero
// polynomial has no coefficients at all. Copy with Clone, not by assignment.
type Poly[E any] struct {
	ring *PolyRing[E]
	c    []E
}

// Parent returns the polynomial ring the element belongs to.
func (x *Poly[E]) Parent() Parent { return x.ring }

// Ring returns the element's polynomial ring.
func (x *Poly[E]) Ring() *PolyRing[E] { return x.ring }

func (x *Poly[E]) normalize() {
	for len(x.c) > 0 && x.ring.base.IsZero(x.c[len(x.c)-1]) {
		x.c = x.c[:len(x.c)-1]
	}
}

// Clone returns a deep copy of x, referencing the same ring.
func (x *Poly[E]) Clone() *Poly[E] {
	z := &Poly[E]{ring: x.ring, c: make([]E, len(x.c))}
	for i, c := range x.c {
		z.c[i] = x.ring.base.Clone(c)
	}
	return z
}

// Degree returns the degree of x, with -1 for the zero polynomial.
func (x *Poly[E]) Degree() int { return len(x.c) - 1 }

// Coeff returns a copy of the coefficient of the i-th power; powers beyond
// the degree are zero.
func (x *Poly[E]) Coeff(i int) E {
	if i < 0 || i >= len(x.c) {
		return x.ring.base.Zero()
	}
	return x.ring.base.Clone(x.c[i])
}

// Coeffs returns copies of the coefficients from the constant term up to the
// leading term. The zero polynomial yields an empty slice.
func (x *Poly[E]) Coeffs() []E {
	out := make([]E, len(x.c))
	for i, c := range x.c {
		out[i] = x.ring.base.Clone(c)
	}
	return out
}

// LeadingCoeff returns a copy of the leading coefficient of a non-zero
// polynomial, and the base ring's zero for the zero polynomial.
func (x *Poly[E]) LeadingCoeff() E {
	if len(x.c) == 0 {
		return x.ring.base.Zero()
	}
	return x.ring.base.Clone(x.c[len(x.c)-1])
}

// IsZero reports whether x is the zero polynomial.
func (x *Poly[E]) IsZero() bool { return len(x.c) == 0 }

// IsMonic reports whether the leading coefficient of x is one.
func (x *Poly[E]) IsMonic() bool {
	if len(x.c) == 0 {
		return false
	}
	b := x.ring.base
	return b.Equal(x.c[len(x.c)-1], b.One())
}

// Equal reports whether x and y have equal coefficients. Panics when the
// rings differ.
func (x *Poly[E]) Equal(y *Poly[E]) bool {
	mustCompatible("Equal", x.ring, y.ring)
	if len(x.c) != len(y.c) {
		return false
	}
	for i := range x.c {
		if !x.ring.base.Equal(x.c[i], y.c[i]) {
			return false
		}
	}
	return true
}

// String renders x with the ring's variable, leading term first.
func (x *Poly[E]) String() string {
	if len(x.c) == 0 {
		return x.ring.base.Text(x.ring.base.Zero())
	}
	b := x.ring.base
	var terms []string
	for i := len(x.c) - 1; i >= 0; i-- {
		if b.IsZero(x.c[i]) {
			continue
		}
		ct := b.Text(x.c[i])
		switch i {
		case 0:
			terms = append(terms, ct)
		case 1:
			terms = append(terms, fmt.Sprintf("(%s)*%s", ct, x.ring.varName))
		default:
			terms = append(terms, fmt.Sprintf("(%s)*%s^%d", ct, x.ring.varName, i))
		}
	}
	return strings.Join(terms, " + ")
}

// Add returns x + y. Panics when the rings differ.
func (x *Poly[E]) Add(y *Poly[E]) *Poly[E] {
	mustCompatible("Add", x.ring, y.ring)
	b := x.ring.base
	n := max(len(x.c), len(y.c))
	z := &Poly[E]{ring: x.ring, c: make([]E, n)}
	for i := 0; i < n; i++ {
		switch {
		case i >= len(x.c):
			z.c[i] = b.Clone(y.c[i])
		case i >= len(y.c):
			z.c[i] = b.Clone(x.c[i])
		default:
			z.c[i] = b.Add(x.c[i], y.c[i])
		}
	}
	z.normalize()
	return z
}

// Sub returns x - y. Panics when the rings differ.
func (x *Poly[E]) Sub(y *Poly[E]) *Poly[E] {
	return x.Add(y.Neg())
}

// Neg returns -x.
func (x *Poly[E]) Neg() *Poly[E] {
	b := x.ring.base
	z := &Poly[E]{ring: x.ring, c: make([]E, len(x.c))}
	for i, c := range x.c {
		z.c[i] = b.Neg(c)
	}
	return z
}

// Mul returns x * y by schoolbook convolution. Panics when the rings differ.
func (x *Poly[E]) Mul(y *Poly[E]) *Poly[E] {
	mustCompatible("Mul", x.ring, y.ring)
	if x.IsZero() || y.IsZero() {
		return x.ring.Zero()
	}
	b := x.ring.base
	z := &Poly[E]{ring: x.ring, c: make([]E, len(x.c)+len(y.c)-1)}
	for i := range z.c {
		z.c[i] = b.Zero()
	}
	for i, xc := range x.c {
		for j, yc := range y.c {
			z.c[i+j] = b.Add(z.c[i+j], b.Mul(xc, yc))
		}
	}
	z.normalize()
	return z
}

// MulScalar returns x scaled by a base-ring element.
func (x *Poly[E]) MulScalar(s E) *Poly[E] {
	b := x.ring.base
	z := &Poly[E]{ring: x.ring, c: make([]E, len(x.c))}
	for i, c := range x.c {
		z.c[i] = b.Mul(c, s)
	}
	z.normalize()
	return z
}

// Eval evaluates x at a base-ring point by Horner's rule.
func (x *Poly[E]) Eval(v E) E {
	b := x.ring.base
	acc := b.Zero()
	for i := len(x.c) - 1; i >= 0; i-- {
		acc = b.Add(b.Mul(acc, v), x.c[i])
	}
	return acc
}

// Pow returns x to the n-th power.
func (x *Poly[E]) Pow(n uint) *Poly[E] {
	return RingPow[*Poly[E]](x.ring, x, n)
}

// PolyDivMod returns q, r with a = q*b + r and deg(r) < deg(b). The base of
// the ring must be a field; a DivisionError is returned when b is zero.
func PolyDivMod[E any](a, b *Poly[E]) (q, r *Poly[E], err error) {
	mustCompatible("PolyDivMod", a.ring, b.ring)
	f, ok := a.ring.base.(Field[E])
	if !ok {
		return nil, nil, NewDivisionError("PolyDivMod", "base ring %v is not a field", a.ring.base)
	}
	if b.IsZero() {
		return nil, nil, NewDivisionError("PolyDivMod", "division of %s by zero polynomial", a)
	}
	lcInv, err := f.Inv(b.LeadingCoeff())
	if err != nil {
		return nil, nil, err
	}
	q = a.ring.Zero()
	r = a.Clone()
	for r.Degree() >= b.Degree() {
		shift := r.Degree() - b.Degree()
		c := f.Mul(r.LeadingCoeff(), lcInv)
		// term = c * x^shift
		tc := make([]E, shift+1)
		for i := range tc {
			tc[i] = f.Zero()
		}
		tc[shift] = c
		term := a.ring.New(tc...)
		q = q.Add(term)
		r = r.Sub(term.Mul(b))
	}
	return q, r, nil
}

// PolyMod returns the remainder of a modulo b over a field base.
func PolyMod[E any](a, b *Poly[E]) (*Poly[E], error) {
	_, r, err := PolyDivMod(a, b)
	return r, err
}

// PolyGCD returns the monic greatest common divisor of a and b over a field
// base, with PolyGCD(0, 0) = 0.
func PolyGCD[E any](a, b *Poly[E]) (*Poly[E], error) {
	mustCompatible("PolyGCD", a.ring, b.ring)
	f, ok := a.ring.base.(Field[E])
	if !ok {
		return nil, NewDivisionError("PolyGCD", "base ring %v is not a field", a.ring.base)
	}
	x, y := a.Clone(), b.Clone()
	for !y.IsZero() {
		_, r, err := PolyDivMod(x, y)
		if err != nil {
			return nil, err
		}
		x, y = y, r
	}
	if x.IsZero() {
		return x, nil
	}
	lcInv, err := f.Inv(x.LeadingCoeff())
	if err != nil {
		return nil, err
	}
	return x.MulScalar(lcInv), nil
}

// PolyXGCD returns g, s, t with g = gcd(a, b) = s*a + t*b, g monic, over a
// field base.
func PolyXGCD[E any](a, b *Poly[E]) (g, s, t *Poly[E], err error) {
	mustCompatible("PolyXGCD", a.ring, b.ring)
	f, ok := a.ring.base.(Field[E])
	if !ok {
		return nil, nil, nil, NewDivisionError("PolyXGCD", "base ring %v is not a field", a.ring.base)
	}
	r := a.ring
	r0, r1 := a.Clone(), b.Clone()
	s0, s1 := r.One(), r.Zero()
	t0, t1 := r.Zero(), r.One()
	for !r1.IsZero() {
		q, rem, derr := PolyDivMod(r0, r1)
		if derr != nil {
			return nil, nil, nil, derr
		}
		r0, r1 = r1, rem
		s0, s1 = s1, s0.Sub(q.Mul(s1))
		t0, t1 = t1, t0.Sub(q.Mul(t1))
	}
	if r0.IsZero() {
		return r0, s0, t0, nil
	}
	lcInv, err := f.Inv(r0.LeadingCoeff())
	if err != nil {
		return nil, nil, nil, err
	}
	return r0.MulScalar(lcInv), s0.MulScalar(lcInv), t0.MulScalar(lcInv), nil
}

// Named instantiations matching the concrete rings.

// IntPoly is a polynomial with integer coefficients.
type IntPoly = Poly[*Integer]

// IntPolyRing is the ring of integer polynomials.
type IntPolyRing = PolyRing[*Integer]

// NewIntPolyRing returns ZZ[varName].
func NewIntPolyRing(varName string) *IntPolyRing {
	return NewPolyRing[*Integer](ZZ, varName)
}

// RatPoly is a polynomial with rational coefficients.
type RatPoly = Poly[*Rational]

// RatPolyRing is the ring of rational polynomials.
type RatPolyRing = PolyRing[*Rational]

// NewRatPolyRing returns QQ[varName].
func NewRatPolyRing(varName string) *RatPolyRing {
	return NewPolyRing[*Rational](QQ, varName)
}

// IntModPoly is a polynomial with coefficients in Z/nZ.
type IntModPoly = Poly[*IntMod]

// IntModPolyRing is the ring of polynomials over Z/nZ.
type IntModPolyRing = PolyRing[*IntMod]

// NewIntModPolyRing returns (Z/nZ)[varName] for the given residue ring.
func NewIntModPolyRing(base *IntModRing, varName string) *IntModPolyRing {
	return NewPolyRing[*IntMod](base, varName)
}
