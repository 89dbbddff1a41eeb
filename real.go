package algebra

import (
	"fmt"
	"math/big"

	"github.com/agbru/algebra/internal/config"
)

// RealField is the context for certified real arithmetic at a fixed working
// precision in bits. Elements are balls: an exact Arf midpoint and a Mag
// radius such that the true value lies in [mid-rad, mid+rad]. The precision
// is the only defining parameter; two fields with equal precision are the
// same structure.
//
// Increasing the precision of a new field narrows the radii of future
// results; it never retroactively narrows a ball already computed.
type RealField struct {
	prec uint
}

// NewRealField returns the real field with the given working precision in
// bits, or a ConfigurationError when the precision is outside
// [config.MinPrecision, config.MaxPrecision].
func NewRealField(prec uint) (*RealField, error) {
	if prec < config.MinPrecision || prec > config.MaxPrecision {
		return nil, NewConfigurationError("precision",
			"must be in [%d, %d] bits, got %d", config.MinPrecision, config.MaxPrecision, prec)
	}
	return &RealField{prec: prec}, nil
}

// Prec returns the working precision in bits.
func (f *RealField) Prec() uint { return f.prec }

// String returns a human-readable name for the field.
func (f *RealField) String() string {
	return fmt.Sprintf("Real field with %d-bit precision", f.prec)
}

// SameAs reports whether other is a real field with the same precision.
func (f *RealField) SameAs(other Parent) bool {
	o, ok := other.(*RealField)
	if !ok {
		return false
	}
	return f.prec == o.prec
}

// Zero returns the exact ball 0.
func (f *RealField) Zero() *Real {
	z := &Real{field: f}
	z.mid.f.SetPrec(f.prec)
	return z
}

// One returns the exact ball 1.
func (f *RealField) One() *Real { return f.FromInt64(1) }

// FromInt64 returns the exact ball around a machine integer.
func (f *RealField) FromInt64(v int64) *Real {
	z := f.Zero()
	z.mid.f.SetInt64(v)
	z.foldRounding()
	return z
}

// FromFloat64 returns the exact ball around a float64 value.
func (f *RealField) FromFloat64(v float64) *Real {
	z := f.Zero()
	z.mid.f.SetFloat64(v)
	z.foldRounding()
	return z
}

// FromInteger returns the ball around an integer, exact whenever the value
// fits the working precision.
func (f *RealField) FromInteger(n *Integer) *Real {
	z := f.Zero()
	z.mid.f.SetInt(&n.i)
	z.foldRounding()
	return z
}

// FromRational returns the ball around a rational, exact whenever the value
// is a dyadic rational fitting the working precision.
func (f *RealField) FromRational(q *Rational) *Real {
	z := f.Zero()
	z.mid.f.SetRat(&q.r)
	z.foldRounding()
	return z
}

// FromString parses a decimal literal into a ball containing its exact
// value, or a ConversionError when s is not a valid number.
func (f *RealField) FromString(s string) (*Real, error) {
	z := f.Zero()
	if _, ok := z.mid.f.SetString(s); !ok {
		return nil, NewConversionError(s, "string", "Real")
	}
	z.foldRounding()
	return z, nil
}

// FromMidRad returns the ball with the given midpoint and radius. The
// midpoint is rounded to the working precision with the rounding error
// folded into the radius.
func (f *RealField) FromMidRad(mid *Arf, rad *Mag) *Real {
	z := f.Zero()
	z.mid.f.Set(&mid.f)
	z.rad = *rad.Clone()
	z.foldRounding()
	return z
}

// Ring capability methods: the real field is a Ring over its balls, so
// polynomials and matrices of certified reals come from the same generic
// containers as the exact types. IsZero and Equal are the provable
// predicates; an inexact ball is never provably zero.

func (f *RealField) Add(a, b *Real) *Real  { return a.Add(b) }
func (f *RealField) Sub(a, b *Real) *Real  { return a.Sub(b) }
func (f *RealField) Mul(a, b *Real) *Real  { return a.Mul(b) }
func (f *RealField) Neg(a *Real) *Real     { return a.Neg() }
func (f *RealField) IsZero(a *Real) bool   { return a.IsExact() && a.mid.IsZero() }
func (f *RealField) Equal(a, b *Real) bool { return a.Equal(b) }
func (f *RealField) Clone(a *Real) *Real   { return a.Clone() }
func (f *RealField) Text(a *Real) string   { return a.String() }

// RealPoly is a polynomial with certified real coefficients.
type RealPoly = Poly[*Real]

// RealPolyRing is the ring of polynomials over a real field.
type RealPolyRing = PolyRing[*Real]

// NewRealPolyRing returns f[varName].
func NewRealPolyRing(f *RealField, varName string) *RealPolyRing {
	return NewPolyRing[*Real](f, varName)
}

// RealMat is a matrix with certified real entries.
type RealMat = Mat[*Real]

// RealMatSpace is a space of matrices over a real field.
type RealMatSpace = MatSpace[*Real]

// NewRealMatSpace returns the space of rows x cols matrices over f.
func NewRealMatSpace(f *RealField, rows, cols int) (*RealMatSpace, error) {
	return NewMatSpace[*Real](f, rows, cols)
}

// Real is a certified real number: the exact value is unknown but
// guaranteed to lie within the ball. Copy with Clone, not by assignment.
type Real struct {
	field *RealField
	mid   Arf
	rad   Mag
}

// foldRounding adds the rounding error of the last midpoint operation to
// the radius. Every constructor and arithmetic kernel calls it after
// touching the midpoint; the error is never silently dropped.
func (x *Real) foldRounding() {
	if err := roundErr(&x.mid.f); !err.IsZero() {
		x.rad = *x.rad.Add(err)
	}
}

// Parent returns the field the ball belongs to.
func (x *Real) Parent() Parent { return x.field }

// Field returns the ball's field.
func (x *Real) Field() *RealField { return x.field }

// Clone returns a deep copy of x, referencing the same field.
func (x *Real) Clone() *Real {
	z := &Real{field: x.field}
	z.mid.f.Copy(&x.mid.f)
	z.rad = *x.rad.Clone()
	return z
}

// Midpoint returns a copy of the ball midpoint.
func (x *Real) Midpoint() *Arf { return x.mid.Clone() }

// Radius returns a copy of the ball radius.
func (x *Real) Radius() *Mag { return x.rad.Clone() }

// IsExact reports whether the radius is zero, i.e. the ball is a single
// point.
func (x *Real) IsExact() bool { return x.rad.IsZero() }

// IsFinite reports whether the radius is finite.
func (x *Real) IsFinite() bool { return !x.rad.IsInf() }

// String renders the ball as "[midpoint +/- radius]".
func (x *Real) String() string {
	digits := int(float64(x.field.prec)*0.30102999566398119521) + 1
	if x.rad.IsZero() {
		return fmt.Sprintf("[%s +/- 0]", x.mid.f.Text('g', digits))
	}
	return fmt.Sprintf("[%s +/- %s]", x.mid.f.Text('g', digits), x.rad.String())
}

// interval returns the exact rational endpoints of a finite ball.
func (x *Real) interval() (lo, hi *big.Rat) {
	m, _ := x.mid.f.Rat(nil)
	r, _ := x.rad.f.Rat(nil)
	lo = new(big.Rat).Sub(m, r)
	hi = new(big.Rat).Add(m, r)
	return lo, hi
}

// ContainsRational reports whether the exact rational q lies in the ball.
func (x *Real) ContainsRational(q *Rational) bool {
	if x.rad.IsInf() {
		return true
	}
	lo, hi := x.interval()
	return lo.Cmp(&q.r) <= 0 && q.r.Cmp(hi) <= 0
}

// ContainsInt64 reports whether the machine integer v lies in the ball.
func (x *Real) ContainsInt64(v int64) bool {
	return x.ContainsRational(RationalFromBig(new(big.Rat).SetInt64(v)))
}

// ContainsZero reports whether 0 lies in the ball.
func (x *Real) ContainsZero() bool { return x.ContainsInt64(0) }

// Overlaps reports whether the balls x and y share at least one point.
// Panics when the fields differ.
func (x *Real) Overlaps(y *Real) bool {
	mustCompatible("Overlaps", x.field, y.field)
	if x.rad.IsInf() || y.rad.IsInf() {
		return true
	}
	xlo, xhi := x.interval()
	ylo, yhi := y.interval()
	return xlo.Cmp(yhi) <= 0 && ylo.Cmp(xhi) <= 0
}

// Cmp compares two balls. The second result reports whether the comparison
// is decided: it is true with -1 or 1 when the intervals are disjoint, true
// with 0 only when both balls are the same single point, and false (with 0)
// whenever the balls overlap without being identical points — the
// indeterminate outcome. Midpoints are never compared on their own, since
// that would be unsound. Panics when the fields differ.
func (x *Real) Cmp(y *Real) (int, bool) {
	mustCompatible("Cmp", x.field, y.field)
	if x.IsExact() && y.IsExact() && x.mid.Equal(&y.mid) {
		return 0, true
	}
	if x.rad.IsInf() || y.rad.IsInf() {
		return 0, false
	}
	xlo, xhi := x.interval()
	ylo, yhi := y.interval()
	if xhi.Cmp(ylo) < 0 {
		return -1, true
	}
	if yhi.Cmp(xlo) < 0 {
		return 1, true
	}
	return 0, false
}

// Equal reports whether x and y are provably equal, i.e. both are the same
// exact point. Overlapping inexact balls are not provably equal. Panics
// when the fields differ.
func (x *Real) Equal(y *Real) bool {
	c, ok := x.Cmp(y)
	return ok && c == 0
}

// Neg returns -x, exactly mirroring the ball.
func (x *Real) Neg() *Real {
	z := x.Clone()
	z.mid.f.Neg(&z.mid.f)
	return z
}

// Abs returns a ball containing |t| for every t in x.
func (x *Real) Abs() *Real {
	if !x.ContainsZero() {
		z := x.Clone()
		z.mid.f.Abs(&z.mid.f)
		return z
	}
	// The interval straddles zero: |x| lies in [0, hi] with
	// hi = |mid| + rad.
	z := x.field.Zero()
	hi := MagFromBigFloat(&x.mid.f).Add(&x.rad)
	if hi.IsInf() {
		z.rad = *MagInf()
		return z
	}
	half := hi.Float()
	half.Quo(half, big.NewFloat(2))
	z.mid.f.Set(half)
	z.rad = *MagFromBigFloat(half)
	z.foldRounding()
	return z
}

// Add returns x + y: the midpoints are added at the working precision and
// the radii, plus the rounding error, accumulate. Panics when the fields
// differ.
func (x *Real) Add(y *Real) *Real {
	mustCompatible("Add", x.field, y.field)
	z := x.field.Zero()
	z.rad = *x.rad.Add(&y.rad)
	z.mid.f.Add(&x.mid.f, &y.mid.f)
	z.foldRounding()
	return z
}

// AddAssign sets x to x + y. Panics when the fields differ.
func (x *Real) AddAssign(y *Real) { *x = *x.Add(y) }

// Sub returns x - y. Panics when the fields differ.
func (x *Real) Sub(y *Real) *Real {
	mustCompatible("Sub", x.field, y.field)
	z := x.field.Zero()
	z.rad = *x.rad.Add(&y.rad)
	z.mid.f.Sub(&x.mid.f, &y.mid.f)
	z.foldRounding()
	return z
}

// SubAssign sets x to x - y. Panics when the fields differ.
func (x *Real) SubAssign(y *Real) { *x = *x.Sub(y) }

// Mul returns x * y. The radius over-estimates
// |mx|*ry + |my|*rx + rx*ry plus the midpoint rounding error; it is never
// an under-estimate. Panics when the fields differ.
func (x *Real) Mul(y *Real) *Real {
	mustCompatible("Mul", x.field, y.field)
	z := x.field.Zero()
	mx := MagFromBigFloat(&x.mid.f)
	my := MagFromBigFloat(&y.mid.f)
	z.rad = *mx.Mul(&y.rad).Add(my.Mul(&x.rad)).Add(x.rad.Mul(&y.rad))
	z.mid.f.Mul(&x.mid.f, &y.mid.f)
	z.foldRounding()
	return z
}

// MulAssign sets x to x * y. Panics when the fields differ.
func (x *Real) MulAssign(y *Real) { *x = *x.Mul(y) }

// Div returns x / y, or a DivisionError when the divisor ball contains
// zero, where the quotient is unbounded. Panics when the fields differ.
func (x *Real) Div(y *Real) (*Real, error) {
	mustCompatible("Div", x.field, y.field)
	inv, err := y.Inv()
	if err != nil {
		return nil, err
	}
	return x.Mul(inv), nil
}

// Inv returns 1 / x, or a DivisionError when the ball contains zero.
//
// For x = [m +/- r] with |m| > r the result radius over-estimates
// r / (|m| * (|m| - r)) plus rounding.
func (x *Real) Inv() (*Real, error) {
	if x.rad.IsInf() {
		return nil, NewDivisionError("Inv", "ball %s contains zero", x)
	}
	// Certified lower bound of |m|, rounded toward zero.
	lo := new(big.Float).SetPrec(magBits).SetMode(big.ToNegativeInf).Abs(&x.mid.f)
	if !x.rad.IsZero() && lo.Cmp(&x.rad.f) <= 0 {
		return nil, NewDivisionError("Inv", "ball %s contains zero", x)
	}
	if x.mid.IsZero() {
		return nil, NewDivisionError("Inv", "ball %s contains zero", x)
	}
	z := x.field.Zero()
	z.mid.f.Quo(big.NewFloat(1), &x.mid.f)
	rnd := roundErr(&z.mid.f)
	if !x.rad.IsZero() {
		// |1/t - 1/m| <= r / (|m| (|m| - r)) for t in the ball.
		den := new(big.Float).SetPrec(magBits).SetMode(big.ToNegativeInf).Sub(lo, &x.rad.f)
		den.SetMode(big.ToNegativeInf).Mul(den, lo)
		prop := new(big.Float).SetPrec(magBits).SetMode(big.ToPositiveInf).Quo(&x.rad.f, den)
		z.rad = *MagFromBigFloat(prop)
	}
	z.rad = *z.rad.Add(rnd)
	return z, nil
}

// DivAssign sets x to x / y, or returns a DivisionError when the divisor
// ball contains zero.
func (x *Real) DivAssign(y *Real) error {
	z, err := x.Div(y)
	if err != nil {
		return err
	}
	*x = *z
	return nil
}
