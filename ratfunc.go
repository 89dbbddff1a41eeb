package algebra

// RatFuncField is the field of rational functions over the rationals in one
// variable: reduced quotients num/den of rational polynomials.
type RatFuncField struct {
	polys *RatPolyRing
}

// NewRatFuncField returns the rational function field QQ(varName).
func NewRatFuncField(varName string) *RatFuncField {
	return &RatFuncField{polys: NewRatPolyRing(varName)}
}

// PolyRing returns the underlying polynomial ring.
func (f *RatFuncField) PolyRing() *RatPolyRing { return f.polys }

// Var returns the variable name.
func (f *RatFuncField) Var() string { return f.polys.Var() }

// String implements Parent.
func (f *RatFuncField) String() string {
	return "QQ(" + f.polys.Var() + ")"
}

// SameAs reports whether other is a rational function field in the same
// variable.
func (f *RatFuncField) SameAs(other Parent) bool {
	o, ok := other.(*RatFuncField)
	return ok && f.polys.SameAs(o.polys)
}

// New returns the reduced quotient num/den, or a DivisionError when den is
// the zero polynomial.
func (f *RatFuncField) New(num, den *RatPoly) (*RatFunc, error) {
	mustCompatible("New", f.polys, num.Ring())
	mustCompatible("New", f.polys, den.Ring())
	if den.IsZero() {
		return nil, NewDivisionError("New", "zero denominator for %s", num)
	}
	z := &RatFunc{field: f, num: num.Clone(), den: den.Clone()}
	if err := z.reduce(); err != nil {
		return nil, err
	}
	return z, nil
}

// FromPoly embeds a polynomial.
func (f *RatFuncField) FromPoly(p *RatPoly) *RatFunc {
	mustCompatible("FromPoly", f.polys, p.Ring())
	return &RatFunc{field: f, num: p.Clone(), den: f.polys.One()}
}

// FromRational embeds a constant.
func (f *RatFuncField) FromRational(q *Rational) *RatFunc {
	return &RatFunc{field: f, num: f.polys.Constant(q.Clone()), den: f.polys.One()}
}

// Gen returns the variable as a rational function.
func (f *RatFuncField) Gen() *RatFunc {
	return &RatFunc{field: f, num: f.polys.Gen(), den: f.polys.One()}
}

// Zero returns the additive identity.
func (f *RatFuncField) Zero() *RatFunc {
	return &RatFunc{field: f, num: f.polys.Zero(), den: f.polys.One()}
}

// One returns the multiplicative identity.
func (f *RatFuncField) One() *RatFunc {
	return &RatFunc{field: f, num: f.polys.One(), den: f.polys.One()}
}

// Ring and Field capability methods.

func (f *RatFuncField) Add(a, b *RatFunc) *RatFunc { return a.Add(b) }
func (f *RatFuncField) Sub(a, b *RatFunc) *RatFunc { return a.Sub(b) }
func (f *RatFuncField) Mul(a, b *RatFunc) *RatFunc { return a.Mul(b) }
func (f *RatFuncField) Neg(a *RatFunc) *RatFunc    { return a.Neg() }
func (f *RatFuncField) IsZero(a *RatFunc) bool     { return a.IsZero() }
func (f *RatFuncField) Equal(a, b *RatFunc) bool   { return a.Equal(b) }
func (f *RatFuncField) Clone(a *RatFunc) *RatFunc  { return a.Clone() }
func (f *RatFuncField) Text(a *RatFunc) string     { return a.String() }

func (f *RatFuncField) Inv(a *RatFunc) (*RatFunc, error)    { return a.Inv() }
func (f *RatFuncField) Div(a, b *RatFunc) (*RatFunc, error) { return a.Div(b) }

// RatFunc is a rational function in reduced form: the gcd of numerator and
// denominator is 1 and the denominator is monic. Zero is 0/1.
type RatFunc struct {
	field *RatFuncField
	num   *RatPoly
	den   *RatPoly
}

// reduce re-establishes the canonical form after a mutation: divide out the
// gcd, then scale the denominator monic.
func (x *RatFunc) reduce() error {
	if x.num.IsZero() {
		x.den = x.field.polys.One()
		return nil
	}
	g, err := PolyGCD(x.num, x.den)
	if err != nil {
		return err
	}
	if g.Degree() > 0 {
		q, _, err := PolyDivMod(x.num, g)
		if err != nil {
			return err
		}
		x.num = q
		q, _, err = PolyDivMod(x.den, g)
		if err != nil {
			return err
		}
		x.den = q
	}
	lc := x.den.LeadingCoeff()
	if !lc.Equal(QQ.One()) {
		lcInv, err := lc.Inv()
		if err != nil {
			return err
		}
		x.num = x.num.MulScalar(lcInv)
		x.den = x.den.MulScalar(lcInv)
	}
	return nil
}

// mustReduce is reduce for internal callers whose inputs are already valid
// reduced operands, where a failure would be a broken invariant.
func (x *RatFunc) mustReduce() {
	if err := x.reduce(); err != nil {
		panic("algebra: RatFunc.reduce: " + err.Error())
	}
}

// Parent implements the element side of the parent/element contract.
func (x *RatFunc) Parent() Parent { return x.field }

// Field returns the rational function field x belongs to.
func (x *RatFunc) Field() *RatFuncField { return x.field }

// Clone returns an independent copy of x.
func (x *RatFunc) Clone() *RatFunc {
	return &RatFunc{field: x.field, num: x.num.Clone(), den: x.den.Clone()}
}

// Num returns a copy of the numerator.
func (x *RatFunc) Num() *RatPoly { return x.num.Clone() }

// Den returns a copy of the monic denominator.
func (x *RatFunc) Den() *RatPoly { return x.den.Clone() }

// IsZero reports whether x is zero.
func (x *RatFunc) IsZero() bool { return x.num.IsZero() }

// IsPoly reports whether x is a polynomial.
func (x *RatFunc) IsPoly() bool { return x.den.Degree() == 0 }

// Equal reports whether x and y are the same rational function. Both sides
// are reduced, so equality is componentwise.
func (x *RatFunc) Equal(y *RatFunc) bool {
	mustCompatible("Equal", x.field, y.field)
	return x.num.Equal(y.num) && x.den.Equal(y.den)
}

// String renders x as "num / den", or just the numerator when the
// denominator is 1.
func (x *RatFunc) String() string {
	if x.IsPoly() && x.den.Coeff(0).Equal(QQ.One()) {
		return x.num.String()
	}
	return "(" + x.num.String() + ")/(" + x.den.String() + ")"
}

// Neg returns -x.
func (x *RatFunc) Neg() *RatFunc {
	return &RatFunc{field: x.field, num: x.num.Neg(), den: x.den.Clone()}
}

// Add returns x + y.
func (x *RatFunc) Add(y *RatFunc) *RatFunc {
	mustCompatible("Add", x.field, y.field)
	z := &RatFunc{
		field: x.field,
		num:   x.num.Mul(y.den).Add(y.num.Mul(x.den)),
		den:   x.den.Mul(y.den),
	}
	z.mustReduce()
	return z
}

// AddAssign sets x to x + y.
func (x *RatFunc) AddAssign(y *RatFunc) { *x = *x.Add(y) }

// Sub returns x - y.
func (x *RatFunc) Sub(y *RatFunc) *RatFunc {
	mustCompatible("Sub", x.field, y.field)
	return x.Add(y.Neg())
}

// SubAssign sets x to x - y.
func (x *RatFunc) SubAssign(y *RatFunc) { *x = *x.Sub(y) }

// Mul returns x * y.
func (x *RatFunc) Mul(y *RatFunc) *RatFunc {
	mustCompatible("Mul", x.field, y.field)
	z := &RatFunc{
		field: x.field,
		num:   x.num.Mul(y.num),
		den:   x.den.Mul(y.den),
	}
	z.mustReduce()
	return z
}

// MulAssign sets x to x * y.
func (x *RatFunc) MulAssign(y *RatFunc) { *x = *x.Mul(y) }

// Inv returns 1/x, or a DivisionError when x is zero.
func (x *RatFunc) Inv() (*RatFunc, error) {
	if x.IsZero() {
		return nil, NewDivisionError("Inv", "inverse of the zero function")
	}
	z := &RatFunc{field: x.field, num: x.den.Clone(), den: x.num.Clone()}
	z.mustReduce()
	return z, nil
}

// Div returns x / y, or a DivisionError when y is zero.
func (x *RatFunc) Div(y *RatFunc) (*RatFunc, error) {
	mustCompatible("Div", x.field, y.field)
	yinv, err := y.Inv()
	if err != nil {
		return nil, NewDivisionError("Div", "division of %s by zero function", x)
	}
	return x.Mul(yinv), nil
}

// Pow returns x to the n-th power.
func (x *RatFunc) Pow(n uint) *RatFunc {
	return RingPow[*RatFunc](x.field, x, n)
}

// Eval evaluates x at the rational point v, or reports a DivisionError when
// v is a pole.
func (x *RatFunc) Eval(v *Rational) (*Rational, error) {
	d := x.den.Eval(v)
	if d.IsZero() {
		return nil, NewDivisionError("Eval", "pole of %s at %s", x, v)
	}
	return x.num.Eval(v).Div(d)
}
