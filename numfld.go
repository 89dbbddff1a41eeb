package algebra

// NumFldCtx is the number field Q[a]/(f) for a monic minimal polynomial f
// over the rationals. Elements are rational polynomials in the generator,
// reduced below the degree of f. The context is immutable after
// construction.
//
// Irreducibility of f over Q is the caller's responsibility: a reducible f
// yields a ring with zero divisors, and inverting a non-unit reports a
// DivisionError at that point rather than at construction.
type NumFldCtx struct {
	polys   *RatPolyRing
	minpoly *RatPoly
}

// NewNumFldCtx returns the number field defined by minpoly, which must be
// monic of degree at least 1 over the rationals.
func NewNumFldCtx(minpoly *RatPoly) (*NumFldCtx, error) {
	if !minpoly.Ring().Base().SameAs(QQ) {
		return nil, NewConfigurationError("minpoly", "polynomial over %v, want %v", minpoly.Ring().Base(), QQ)
	}
	if minpoly.Degree() < 1 {
		return nil, NewConfigurationError("minpoly", "degree must be at least 1, got %d", minpoly.Degree())
	}
	if !minpoly.IsMonic() {
		return nil, NewConfigurationError("minpoly", "polynomial %s is not monic", minpoly)
	}
	ctx := &NumFldCtx{polys: NewRatPolyRing("a")}
	// Rebuild in the context's own ring so the variable name never enters
	// the structural identity of the field.
	ctx.minpoly = ctx.polys.New(minpoly.Coeffs()...)
	return ctx, nil
}

// Degree returns the degree of the field extension.
func (ctx *NumFldCtx) Degree() int { return ctx.minpoly.Degree() }

// MinPoly returns a copy of the defining polynomial.
func (ctx *NumFldCtx) MinPoly() *RatPoly { return ctx.polys.Clone(ctx.minpoly) }

// String implements Parent.
func (ctx *NumFldCtx) String() string {
	return "QQ[a]/(" + ctx.minpoly.String() + ")"
}

// SameAs reports whether other is a number field with the same minimal
// polynomial. Like all contexts the identity is structural, so two
// independently built contexts over the same polynomial are interchangeable.
func (ctx *NumFldCtx) SameAs(other Parent) bool {
	o, ok := other.(*NumFldCtx)
	if !ok {
		return false
	}
	if ctx == o {
		return true
	}
	return ctx.minpoly.Equal(o.minpoly)
}

// New returns the element with the given coefficients in the generator,
// constant term first, reduced modulo the minimal polynomial.
func (ctx *NumFldCtx) New(coeffs ...*Rational) (*NumFldElem, error) {
	v := ctx.polys.New(coeffs...)
	red, err := PolyMod(v, ctx.minpoly)
	if err != nil {
		return nil, err
	}
	return &NumFldElem{ctx: ctx, val: red}, nil
}

// NewFromRational embeds q into the field.
func (ctx *NumFldCtx) NewFromRational(q *Rational) *NumFldElem {
	return &NumFldElem{ctx: ctx, val: ctx.polys.Constant(q.Clone())}
}

// NewFromInt64 embeds v into the field.
func (ctx *NumFldCtx) NewFromInt64(v int64) *NumFldElem {
	return ctx.NewFromRational(QQ.FromInt64(v))
}

// Gen returns the generator a, the residue of the polynomial variable.
func (ctx *NumFldCtx) Gen() *NumFldElem {
	if ctx.Degree() == 1 {
		// a is rational: x = x - f + f reduces to -f(0).
		c := QQ.Neg(ctx.minpoly.Coeff(0))
		return &NumFldElem{ctx: ctx, val: ctx.polys.Constant(c)}
	}
	return &NumFldElem{ctx: ctx, val: ctx.polys.Gen()}
}

// Zero returns the additive identity.
func (ctx *NumFldCtx) Zero() *NumFldElem { return &NumFldElem{ctx: ctx, val: ctx.polys.Zero()} }

// One returns the multiplicative identity.
func (ctx *NumFldCtx) One() *NumFldElem { return &NumFldElem{ctx: ctx, val: ctx.polys.One()} }

// Ring capability methods.

func (ctx *NumFldCtx) Add(a, b *NumFldElem) *NumFldElem { return a.Add(b) }
func (ctx *NumFldCtx) Sub(a, b *NumFldElem) *NumFldElem { return a.Sub(b) }
func (ctx *NumFldCtx) Mul(a, b *NumFldElem) *NumFldElem { return a.Mul(b) }
func (ctx *NumFldCtx) Neg(a *NumFldElem) *NumFldElem    { return a.Neg() }
func (ctx *NumFldCtx) IsZero(a *NumFldElem) bool        { return a.IsZero() }
func (ctx *NumFldCtx) Equal(a, b *NumFldElem) bool      { return a.Equal(b) }
func (ctx *NumFldCtx) Clone(a *NumFldElem) *NumFldElem  { return a.Clone() }
func (ctx *NumFldCtx) Text(a *NumFldElem) string        { return a.String() }

// Field capability methods.

func (ctx *NumFldCtx) Inv(a *NumFldElem) (*NumFldElem, error) { return a.Inv() }

func (ctx *NumFldCtx) Div(a, b *NumFldElem) (*NumFldElem, error) {
	return a.Div(b)
}

// NumFldElem is an element of a number field, stored as its reduced
// polynomial representation in the generator.
type NumFldElem struct {
	ctx *NumFldCtx
	val *RatPoly
}

// Parent implements the element side of the parent/element contract.
func (x *NumFldElem) Parent() Parent { return x.ctx }

// Ctx returns the number field x belongs to.
func (x *NumFldElem) Ctx() *NumFldCtx { return x.ctx }

// Clone returns an independent copy of x.
func (x *NumFldElem) Clone() *NumFldElem {
	return &NumFldElem{ctx: x.ctx, val: x.val.Clone()}
}

// PolyRep returns a copy of the reduced polynomial representation of x.
func (x *NumFldElem) PolyRep() *RatPoly { return x.val.Clone() }

// Coeff returns the coefficient of a^i in the reduced representation.
func (x *NumFldElem) Coeff(i int) *Rational { return x.val.Coeff(i) }

// IsZero reports whether x is zero.
func (x *NumFldElem) IsZero() bool { return x.val.IsZero() }

// IsRational reports whether x lies in the prime field.
func (x *NumFldElem) IsRational() bool { return x.val.Degree() <= 0 }

// Equal reports whether x and y are the same element.
func (x *NumFldElem) Equal(y *NumFldElem) bool {
	mustCompatible("Equal", x.ctx, y.ctx)
	return x.val.Equal(y.val)
}

// String renders x as its polynomial representation in the generator.
func (x *NumFldElem) String() string { return x.val.String() }

// Add returns x + y.
func (x *NumFldElem) Add(y *NumFldElem) *NumFldElem {
	mustCompatible("Add", x.ctx, y.ctx)
	return &NumFldElem{ctx: x.ctx, val: x.val.Add(y.val)}
}

// Sub returns x - y.
func (x *NumFldElem) Sub(y *NumFldElem) *NumFldElem {
	mustCompatible("Sub", x.ctx, y.ctx)
	return &NumFldElem{ctx: x.ctx, val: x.val.Sub(y.val)}
}

// Neg returns -x.
func (x *NumFldElem) Neg() *NumFldElem {
	return &NumFldElem{ctx: x.ctx, val: x.val.Neg()}
}

// Mul returns x * y, reduced modulo the minimal polynomial.
func (x *NumFldElem) Mul(y *NumFldElem) *NumFldElem {
	mustCompatible("Mul", x.ctx, y.ctx)
	red, err := PolyMod(x.val.Mul(y.val), x.ctx.minpoly)
	if err != nil {
		// The minimal polynomial is monic over a field, so reduction
		// cannot fail.
		panic("algebra: NumFldElem.Mul: " + err.Error())
	}
	return &NumFldElem{ctx: x.ctx, val: red}
}

// MulRational returns x scaled by q.
func (x *NumFldElem) MulRational(q *Rational) *NumFldElem {
	return &NumFldElem{ctx: x.ctx, val: x.val.MulScalar(q.Clone())}
}

// Inv returns the multiplicative inverse of x. It reports a DivisionError
// when x is zero, or when x shares a factor with a reducible minimal
// polynomial.
func (x *NumFldElem) Inv() (*NumFldElem, error) {
	if x.IsZero() {
		return nil, NewDivisionError("Inv", "inverse of zero in %v", x.ctx)
	}
	g, s, _, err := PolyXGCD(x.val, x.ctx.minpoly)
	if err != nil {
		return nil, err
	}
	if g.Degree() != 0 {
		return nil, NewDivisionError("Inv", "%s is not invertible in %v", x, x.ctx)
	}
	red, err := PolyMod(s, x.ctx.minpoly)
	if err != nil {
		return nil, err
	}
	return &NumFldElem{ctx: x.ctx, val: red}, nil
}

// Div returns x / y.
func (x *NumFldElem) Div(y *NumFldElem) (*NumFldElem, error) {
	mustCompatible("Div", x.ctx, y.ctx)
	yinv, err := y.Inv()
	if err != nil {
		return nil, NewDivisionError("Div", "division of %s by non-invertible %s", x, y)
	}
	return x.Mul(yinv), nil
}

// Pow returns x to the n-th power.
func (x *NumFldElem) Pow(n uint) *NumFldElem {
	return RingPow[*NumFldElem](x.ctx, x, n)
}

// repMat returns the matrix of multiplication by x on the power basis
// 1, a, ..., a^(d-1), with column i holding x*a^i.
func (x *NumFldElem) repMat() *RatMat {
	d := x.ctx.Degree()
	space, err := NewRatMatSpace(d, d)
	if err != nil {
		panic("algebra: NumFldElem.repMat: " + err.Error())
	}
	m := space.Zero()
	col := x.val.Clone()
	for j := 0; j < d; j++ {
		for i := 0; i < d; i++ {
			m.Set(i, j, col.Coeff(i))
		}
		next, err := PolyMod(col.Mul(x.ctx.polys.Gen()), x.ctx.minpoly)
		if err != nil {
			panic("algebra: NumFldElem.repMat: " + err.Error())
		}
		col = next
	}
	return m
}

// Trace returns the field trace of x over the rationals.
func (x *NumFldElem) Trace() *Rational {
	t, err := x.repMat().Trace()
	if err != nil {
		panic("algebra: NumFldElem.Trace: " + err.Error())
	}
	return t
}

// Norm returns the field norm of x over the rationals, the determinant of
// the multiplication-by-x matrix.
func (x *NumFldElem) Norm() *Rational {
	n, err := MatDet(x.repMat())
	if err != nil {
		panic("algebra: NumFldElem.Norm: " + err.Error())
	}
	return n
}

// NumFldPoly is a polynomial with number-field coefficients.
type NumFldPoly = Poly[*NumFldElem]

// NumFldPolyRing is the ring of polynomials over a number field.
type NumFldPolyRing = PolyRing[*NumFldElem]

// NewNumFldPolyRing returns ctx[varName].
func NewNumFldPolyRing(ctx *NumFldCtx, varName string) *NumFldPolyRing {
	return NewPolyRing[*NumFldElem](ctx, varName)
}

// NumFldMat is a matrix with number-field entries.
type NumFldMat = Mat[*NumFldElem]

// NumFldMatSpace is a space of matrices over a number field.
type NumFldMatSpace = MatSpace[*NumFldElem]

// NewNumFldMatSpace returns the space of rows x cols matrices over ctx.
func NewNumFldMatSpace(ctx *NumFldCtx, rows, cols int) (*NumFldMatSpace, error) {
	return NewMatSpace[*NumFldElem](ctx, rows, cols)
}
