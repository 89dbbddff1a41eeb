package algebra

import "fmt"

// ComplexField is the parent of certified complex numbers at a fixed working
// precision. A complex ball is a rectangle: independent real and imaginary
// balls drawn from the underlying real field.
type ComplexField struct {
	rf *RealField
}

// NewComplexField returns the complex field at prec bits of working
// precision.
func NewComplexField(prec uint) (*ComplexField, error) {
	rf, err := NewRealField(prec)
	if err != nil {
		return nil, err
	}
	return &ComplexField{rf: rf}, nil
}

// RealField returns the field the real and imaginary parts live in.
func (f *ComplexField) RealField() *RealField { return f.rf }

// Prec returns the working precision in bits.
func (f *ComplexField) Prec() uint { return f.rf.Prec() }

// String implements Parent.
func (f *ComplexField) String() string {
	return fmt.Sprintf("ComplexField(prec=%d)", f.rf.Prec())
}

// SameAs reports whether other is a complex field at the same precision.
func (f *ComplexField) SameAs(other Parent) bool {
	o, ok := other.(*ComplexField)
	return ok && f.rf.SameAs(o.rf)
}

// Zero returns the exact complex zero.
func (f *ComplexField) Zero() *Complex {
	return &Complex{field: f, re: f.rf.Zero(), im: f.rf.Zero()}
}

// One returns the exact complex one.
func (f *ComplexField) One() *Complex {
	return &Complex{field: f, re: f.rf.One(), im: f.rf.Zero()}
}

// I returns the imaginary unit.
func (f *ComplexField) I() *Complex {
	return &Complex{field: f, re: f.rf.Zero(), im: f.rf.One()}
}

// FromInt64 returns the value v as an exact complex ball.
func (f *ComplexField) FromInt64(v int64) *Complex {
	return &Complex{field: f, re: f.rf.FromInt64(v), im: f.rf.Zero()}
}

// FromFloat64 returns the exact value of v as a complex ball.
func (f *ComplexField) FromFloat64(v float64) *Complex {
	return &Complex{field: f, re: f.rf.FromFloat64(v), im: f.rf.Zero()}
}

// FromReals builds a complex ball from its parts. Both parts must belong to
// the field's real field.
func (f *ComplexField) FromReals(re, im *Real) *Complex {
	mustCompatible("FromReals", f.rf, re.field)
	mustCompatible("FromReals", f.rf, im.field)
	return &Complex{field: f, re: re.Clone(), im: im.Clone()}
}

// Ring capability methods, mirroring RealField.

func (f *ComplexField) Add(a, b *Complex) *Complex { return a.Add(b) }
func (f *ComplexField) Sub(a, b *Complex) *Complex { return a.Sub(b) }
func (f *ComplexField) Mul(a, b *Complex) *Complex { return a.Mul(b) }
func (f *ComplexField) Neg(a *Complex) *Complex    { return a.Neg() }
func (f *ComplexField) IsZero(a *Complex) bool {
	return a.IsExact() && a.re.mid.IsZero() && a.im.mid.IsZero()
}
func (f *ComplexField) Equal(a, b *Complex) bool  { return a.Equal(b) }
func (f *ComplexField) Clone(a *Complex) *Complex { return a.Clone() }
func (f *ComplexField) Text(a *Complex) string    { return a.String() }

// Field capability methods.

func (f *ComplexField) Inv(a *Complex) (*Complex, error)    { return a.Inv() }
func (f *ComplexField) Div(a, b *Complex) (*Complex, error) { return a.Div(b) }

// ComplexPoly is a polynomial with certified complex coefficients.
type ComplexPoly = Poly[*Complex]

// ComplexPolyRing is the ring of polynomials over a complex field.
type ComplexPolyRing = PolyRing[*Complex]

// NewComplexPolyRing returns f[varName].
func NewComplexPolyRing(f *ComplexField, varName string) *ComplexPolyRing {
	return NewPolyRing[*Complex](f, varName)
}

// ComplexMat is a matrix with certified complex entries.
type ComplexMat = Mat[*Complex]

// ComplexMatSpace is a space of matrices over a complex field.
type ComplexMatSpace = MatSpace[*Complex]

// NewComplexMatSpace returns the space of rows x cols matrices over f.
func NewComplexMatSpace(f *ComplexField, rows, cols int) (*ComplexMatSpace, error) {
	return NewMatSpace[*Complex](f, rows, cols)
}

// Complex is a certified complex number. The true value lies in the
// rectangle re x im. Copy with Clone, not by assignment.
type Complex struct {
	field *ComplexField
	re    *Real
	im    *Real
}

// Parent implements the element side of the parent/element contract.
func (x *Complex) Parent() Parent { return x.field }

// Field returns the complex field x belongs to.
func (x *Complex) Field() *ComplexField { return x.field }

// Clone returns an independent copy of x.
func (x *Complex) Clone() *Complex {
	return &Complex{field: x.field, re: x.re.Clone(), im: x.im.Clone()}
}

// Re returns a copy of the real part.
func (x *Complex) Re() *Real { return x.re.Clone() }

// Im returns a copy of the imaginary part.
func (x *Complex) Im() *Real { return x.im.Clone() }

// IsExact reports whether both parts have zero radius.
func (x *Complex) IsExact() bool { return x.re.IsExact() && x.im.IsExact() }

// IsFinite reports whether both radii are finite.
func (x *Complex) IsFinite() bool { return x.re.IsFinite() && x.im.IsFinite() }

// ContainsZero reports whether the rectangle contains 0.
func (x *Complex) ContainsZero() bool {
	return x.re.ContainsZero() && x.im.ContainsZero()
}

// Equal reports whether x and y are provably the same complex number. Like
// Real.Equal this is a certified predicate, not interval overlap.
func (x *Complex) Equal(y *Complex) bool {
	mustCompatible("Equal", x.field, y.field)
	return x.re.Equal(y.re) && x.im.Equal(y.im)
}

// Overlaps reports whether the rectangles of x and y intersect, i.e. whether
// x and y could be the same number.
func (x *Complex) Overlaps(y *Complex) bool {
	mustCompatible("Overlaps", x.field, y.field)
	return x.re.Overlaps(y.re) && x.im.Overlaps(y.im)
}

// String renders x as "re + im*i" using the part notation of Real.
func (x *Complex) String() string {
	return fmt.Sprintf("(%s + %s*i)", x.re, x.im)
}

// Neg returns -x.
func (x *Complex) Neg() *Complex {
	return &Complex{field: x.field, re: x.re.Neg(), im: x.im.Neg()}
}

// Conj returns the complex conjugate of x.
func (x *Complex) Conj() *Complex {
	return &Complex{field: x.field, re: x.re.Clone(), im: x.im.Neg()}
}

// Add returns x + y.
func (x *Complex) Add(y *Complex) *Complex {
	mustCompatible("Add", x.field, y.field)
	return &Complex{field: x.field, re: x.re.Add(y.re), im: x.im.Add(y.im)}
}

// AddAssign sets x to x + y.
func (x *Complex) AddAssign(y *Complex) { *x = *x.Add(y) }

// Sub returns x - y.
func (x *Complex) Sub(y *Complex) *Complex {
	mustCompatible("Sub", x.field, y.field)
	return &Complex{field: x.field, re: x.re.Sub(y.re), im: x.im.Sub(y.im)}
}

// SubAssign sets x to x - y.
func (x *Complex) SubAssign(y *Complex) { *x = *x.Sub(y) }

// Mul returns x * y.
func (x *Complex) Mul(y *Complex) *Complex {
	mustCompatible("Mul", x.field, y.field)
	re := x.re.Mul(y.re).Sub(x.im.Mul(y.im))
	im := x.re.Mul(y.im).Add(x.im.Mul(y.re))
	return &Complex{field: x.field, re: re, im: im}
}

// MulAssign sets x to x * y.
func (x *Complex) MulAssign(y *Complex) { *x = *x.Mul(y) }

// MulReal returns x scaled by the real ball r.
func (x *Complex) MulReal(r *Real) *Complex {
	mustCompatible("MulReal", x.field.rf, r.field)
	return &Complex{field: x.field, re: x.re.Mul(r), im: x.im.Mul(r)}
}

// AbsSquared returns |x|^2 = re^2 + im^2 as a real ball.
func (x *Complex) AbsSquared() *Real {
	return x.re.Mul(x.re).Add(x.im.Mul(x.im))
}

// Abs returns a ball containing |x|.
func (x *Complex) Abs() (*Real, error) {
	return x.AbsSquared().Sqrt()
}

// Inv returns 1/x, or a DivisionError when the rectangle of x contains zero.
// The quotient is conj(x) / |x|^2; the norm ball excluding zero certifies
// that the true value of x is invertible.
func (x *Complex) Inv() (*Complex, error) {
	norm := x.AbsSquared()
	if norm.ContainsZero() {
		return nil, NewDivisionError("Inv", "inversion of a complex ball containing zero")
	}
	ninv, err := norm.Inv()
	if err != nil {
		return nil, err
	}
	return x.Conj().MulReal(ninv), nil
}

// Div returns x / y, or a DivisionError when the rectangle of y contains
// zero.
func (x *Complex) Div(y *Complex) (*Complex, error) {
	mustCompatible("Div", x.field, y.field)
	yinv, err := y.Inv()
	if err != nil {
		return nil, NewDivisionError("Div", "division by a complex ball containing zero")
	}
	return x.Mul(yinv), nil
}

// DivAssign sets x to x / y.
func (x *Complex) DivAssign(y *Complex) error {
	z, err := x.Div(y)
	if err != nil {
		return err
	}
	*x = *z
	return nil
}

// PowInt returns x^n for n >= 0 by binary exponentiation, and inverts the
// result for negative n.
func (x *Complex) PowInt(n int) (*Complex, error) {
	if n < 0 {
		inv, err := x.Inv()
		if err != nil {
			return nil, err
		}
		return RingPow[*Complex](x.field, inv, uint(-n)), nil
	}
	return RingPow[*Complex](x.field, x, uint(n)), nil
}

// Exp returns a ball containing e^x, using e^(a+bi) = e^a (cos b + i sin b).
func (x *Complex) Exp() (*Complex, error) {
	ea, err := x.re.Exp()
	if err != nil {
		return nil, err
	}
	cb, err := x.im.Cos()
	if err != nil {
		return nil, err
	}
	sb, err := x.im.Sin()
	if err != nil {
		return nil, err
	}
	return &Complex{field: x.field, re: ea.Mul(cb), im: ea.Mul(sb)}, nil
}
