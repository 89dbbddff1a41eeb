package algebra

import (
	"fmt"
	"math/big"

	"github.com/agbru/algebra/internal/logging"
)

// FinFldCtx is the finite field of size p^k: polynomials over Z/pZ reduced
// modulo a monic irreducible polynomial of degree k. The characteristic, the
// degree and the modulus polynomial are the defining parameters; the context
// is immutable after construction.
type FinFldCtx struct {
	p       Integer
	k       int
	base    *IntModRing
	polys   *IntModPolyRing
	modulus *IntModPoly
}

// NewFinFldCtx returns the finite field of size p^k, choosing the smallest
// monic irreducible modulus polynomial in the enumeration order of its
// coefficients. It returns a ConfigurationError when p is not prime or k is
// not positive.
func NewFinFldCtx(p *Integer, k int) (*FinFldCtx, error) {
	ctx, err := newFinFldBase(p, k)
	if err != nil {
		return nil, err
	}
	ctx.modulus, err = ctx.findIrreducible()
	if err != nil {
		return nil, err
	}
	return ctx, nil
}

// NewFinFldCtxWithModulus returns the finite field defined by the given
// monic irreducible polynomial over Z/pZ. The polynomial's ring must be over
// Z/pZ; irreducibility is verified and a ConfigurationError returned when it
// fails.
func NewFinFldCtxWithModulus(p *Integer, modulus *IntModPoly) (*FinFldCtx, error) {
	ctx, err := newFinFldBase(p, modulus.Degree())
	if err != nil {
		return nil, err
	}
	if !modulus.Ring().Base().SameAs(ctx.base) {
		return nil, NewConfigurationError("modulus", "polynomial over %v, want %v", modulus.Ring().Base(), ctx.base)
	}
	if !modulus.IsMonic() {
		return nil, NewConfigurationError("modulus", "polynomial %s is not monic", modulus)
	}
	// Rebuild in the context's own ring so the variable name never enters
	// the structural identity of the field.
	mod := ctx.polys.New(modulus.Coeffs()...)
	ok, err := isIrreducible(mod, &ctx.p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewConfigurationError("modulus", "polynomial %s is reducible over Z/%sZ", mod, &ctx.p)
	}
	ctx.modulus = mod
	return ctx, nil
}

func newFinFldBase(p *Integer, k int) (*FinFldCtx, error) {
	if !p.IsProbablePrime() {
		return nil, NewConfigurationError("characteristic", "must be prime, got %s", p)
	}
	if k < 1 {
		return nil, NewConfigurationError("degree", "must be at least 1, got %d", k)
	}
	base, err := NewIntModRing(p)
	if err != nil {
		return nil, err
	}
	ctx := &FinFldCtx{k: k, base: base, polys: NewIntModPolyRing(base, "x")}
	ctx.p.i.Set(&p.i)
	return ctx, nil
}

// findIrreducible enumerates monic degree-k candidates x^k + c, c counting
// upward base p over the lower coefficients, until Rabin's irreducibility
// test accepts one. Roughly one candidate in k is irreducible, so the search
// terminates quickly.
func (ctx *FinFldCtx) findIrreducible() (*IntModPoly, error) {
	if ctx.k == 1 {
		// Z/pZ itself: modulus x, elements are constants.
		return ctx.polys.Gen(), nil
	}
	low := make([]*big.Int, ctx.k)
	for i := range low {
		low[i] = new(big.Int)
	}
	log := logging.L().With().Str("component", "finfld").Logger()
	for attempt := 1; ; attempt++ {
		coeffs := make([]*IntMod, ctx.k+1)
		for i, c := range low {
			coeffs[i] = ctx.base.New(IntegerFromBig(c))
		}
		coeffs[ctx.k] = ctx.base.One()
		cand := ctx.polys.New(coeffs...)
		ok, err := isIrreducible(cand, &ctx.p)
		if err != nil {
			return nil, err
		}
		if ok {
			log.Debug().Int("attempts", attempt).Str("modulus", cand.String()).Msg("irreducible modulus found")
			return cand, nil
		}
		// Increment the coefficient vector base p.
		for i := 0; i < ctx.k; i++ {
			low[i].Add(low[i], big.NewInt(1))
			if low[i].Cmp(&ctx.p.i) < 0 {
				break
			}
			low[i].SetInt64(0)
			if i == ctx.k-1 {
				return nil, NewConfigurationError("degree",
					"no irreducible polynomial of degree %d over Z/%sZ", ctx.k, &ctx.p)
			}
		}
	}
}

// isIrreducible applies Rabin's test to a monic polynomial f over Z/pZ:
// f of degree k is irreducible iff x^(p^k) = x mod f and, for every prime
// divisor d of k, gcd(x^(p^(k/d)) - x, f) = 1.
func isIrreducible(f *IntModPoly, p *Integer) (bool, error) {
	k := f.Degree()
	if k <= 0 {
		return false, nil
	}
	if k == 1 {
		return true, nil
	}
	ring := f.Ring()
	x := ring.Gen()
	for _, d := range primeDivisors(k) {
		h, err := frobeniusPower(x, p, k/d, f)
		if err != nil {
			return false, err
		}
		g, err := PolyGCD(h.Sub(x), f)
		if err != nil {
			return false, err
		}
		if g.Degree() != 0 {
			return false, nil
		}
	}
	h, err := frobeniusPower(x, p, k, f)
	if err != nil {
		return false, err
	}
	return h.Equal(x), nil
}

// frobeniusPower returns a^(p^m) mod f by m successive p-th powers.
func frobeniusPower(a *IntModPoly, p *Integer, m int, f *IntModPoly) (*IntModPoly, error) {
	z := a.Clone()
	var err error
	for i := 0; i < m; i++ {
		z, err = polyPowModBig(z, &p.i, f)
		if err != nil {
			return nil, err
		}
	}
	return z, nil
}

// polyPowModBig returns a^e mod f by binary exponentiation over the bits of
// an arbitrary-precision exponent.
func polyPowModBig(a *IntModPoly, e *big.Int, f *IntModPoly) (*IntModPoly, error) {
	res := a.Ring().One()
	base, err := PolyMod(a, f)
	if err != nil {
		return nil, err
	}
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			res, err = PolyMod(res.Mul(base), f)
			if err != nil {
				return nil, err
			}
		}
		base, err = PolyMod(base.Mul(base), f)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func primeDivisors(n int) []int {
	var out []int
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			out = append(out, d)
			for n%d == 0 {
				n /= d
			}
		}
	}
	if n > 1 {
		out = append(out, n)
	}
	return out
}

// Characteristic returns a copy of the field characteristic p.
func (ctx *FinFldCtx) Characteristic() *Integer { return ctx.p.Clone() }

// Degree returns the extension degree k.
func (ctx *FinFldCtx) Degree() int { return ctx.k }

// Order returns the field size p^k.
func (ctx *FinFldCtx) Order() *Integer { return ctx.p.Pow(uint(ctx.k)) }

// ModulusPoly returns a copy of the defining modulus polynomial.
func (ctx *FinFldCtx) ModulusPoly() *IntModPoly { return ctx.polys.Clone(ctx.modulus) }

// String returns a human-readable name for the field.
func (ctx *FinFldCtx) String() string {
	return fmt.Sprintf("Finite field of size %s^%d", &ctx.p, ctx.k)
}

// SameAs reports whether other is a finite field with the same
// characteristic, degree and modulus polynomial.
func (ctx *FinFldCtx) SameAs(other Parent) bool {
	o, ok := other.(*FinFldCtx)
	if !ok {
		return false
	}
	if ctx == o {
		return true
	}
	return ctx.p.Equal(&o.p) && ctx.k == o.k && ctx.modulus.Equal(o.modulus)
}

// New returns the element represented by the given polynomial coefficients
// over Z/pZ, reduced modulo the field's modulus polynomial. coeffs[i] is the
// coefficient of the i-th power of the generator.
func (ctx *FinFldCtx) New(coeffs ...*IntMod) (*FinFldElem, error) {
	raw := ctx.polys.New(coeffs...)
	red, err := PolyMod(raw, ctx.modulus)
	if err != nil {
		return nil, err
	}
	return &FinFldElem{ctx: ctx, val: red}, nil
}

// NewFromInt64 returns the element with the given machine-integer image in
// the prime subfield.
func (ctx *FinFldCtx) NewFromInt64(v int64) *FinFldElem {
	z, _ := ctx.New(ctx.base.NewInt64(v))
	return z
}

// Gen returns the generator of the field over its prime subfield, i.e. the
// residue of x. For degree 1 the generator is zero.
func (ctx *FinFldCtx) Gen() *FinFldElem {
	red, _ := PolyMod(ctx.polys.Gen(), ctx.modulus)
	return &FinFldElem{ctx: ctx, val: red}
}

// Ring and Field capability methods.

func (ctx *FinFldCtx) Zero() *FinFldElem { return &FinFldElem{ctx: ctx, val: ctx.polys.Zero()} }
func (ctx *FinFldCtx) One() *FinFldElem  { return &FinFldElem{ctx: ctx, val: ctx.polys.One()} }

func (ctx *FinFldCtx) Add(a, b *FinFldElem) *FinFldElem { return a.Add(b) }
func (ctx *FinFldCtx) Sub(a, b *FinFldElem) *FinFldElem { return a.Sub(b) }
func (ctx *FinFldCtx) Mul(a, b *FinFldElem) *FinFldElem { return a.Mul(b) }
func (ctx *FinFldCtx) Neg(a *FinFldElem) *FinFldElem    { return a.Neg() }
func (ctx *FinFldCtx) IsZero(a *FinFldElem) bool        { return a.IsZero() }
func (ctx *FinFldCtx) Equal(a, b *FinFldElem) bool      { return a.Equal(b) }
func (ctx *FinFldCtx) Clone(a *FinFldElem) *FinFldElem  { return a.Clone() }
func (ctx *FinFldCtx) Text(a *FinFldElem) string        { return a.String() }

// Inv returns the multiplicative inverse of a, or a DivisionError when a is
// zero.
func (ctx *FinFldCtx) Inv(a *FinFldElem) (*FinFldElem, error) { return a.Inv() }

// Div returns a * b^-1, or a DivisionError when b is zero.
func (ctx *FinFldCtx) Div(a, b *FinFldElem) (*FinFldElem, error) {
	bi, err := b.Inv()
	if err != nil {
		return nil, err
	}
	return a.Mul(bi), nil
}

// FinFldElem is an element of a finite field: a polynomial over Z/pZ of
// degree below the field degree. Every mutating operation re-reduces modulo
// the field's modulus polynomial. Copy with Clone, not by assignment.
type FinFldElem struct {
	ctx *FinFldCtx
	val *IntModPoly
}

// Parent returns the field the element belongs to.
func (x *FinFldElem) Parent() Parent { return x.ctx }

// Ctx returns the element's field.
func (x *FinFldElem) Ctx() *FinFldCtx { return x.ctx }

// Clone returns a deep copy of x, referencing the same field.
func (x *FinFldElem) Clone() *FinFldElem {
	return &FinFldElem{ctx: x.ctx, val: x.val.Clone()}
}

// PolyRep returns a copy of the representative polynomial of x.
func (x *FinFldElem) PolyRep() *IntModPoly { return x.val.Clone() }

// IsZero reports whether x is zero.
func (x *FinFldElem) IsZero() bool { return x.val.IsZero() }

// Equal reports whether x and y are equal. Panics when the fields differ.
func (x *FinFldElem) Equal(y *FinFldElem) bool {
	mustCompatible("Equal", x.ctx, y.ctx)
	return x.val.Equal(y.val)
}

// String renders the representative polynomial of x.
func (x *FinFldElem) String() string { return x.val.String() }

// Add returns x + y. Panics when the fields differ.
func (x *FinFldElem) Add(y *FinFldElem) *FinFldElem {
	mustCompatible("Add", x.ctx, y.ctx)
	return &FinFldElem{ctx: x.ctx, val: x.val.Add(y.val)}
}

// Sub returns x - y. Panics when the fields differ.
func (x *FinFldElem) Sub(y *FinFldElem) *FinFldElem {
	mustCompatible("Sub", x.ctx, y.ctx)
	return &FinFldElem{ctx: x.ctx, val: x.val.Sub(y.val)}
}

// Neg returns -x.
func (x *FinFldElem) Neg() *FinFldElem {
	return &FinFldElem{ctx: x.ctx, val: x.val.Neg()}
}

// Mul returns x * y, reduced modulo the field modulus. Panics when the
// fields differ.
func (x *FinFldElem) Mul(y *FinFldElem) *FinFldElem {
	mustCompatible("Mul", x.ctx, y.ctx)
	red, err := PolyMod(x.val.Mul(y.val), x.ctx.modulus)
	if err != nil {
		// The modulus is monic over a prime field; reduction cannot fail.
		panic(fmt.Sprintf("algebra: FinFldElem.Mul: %v", err))
	}
	return &FinFldElem{ctx: x.ctx, val: red}
}

// Inv returns the multiplicative inverse of x, or a DivisionError when x is
// zero.
func (x *FinFldElem) Inv() (*FinFldElem, error) {
	if x.IsZero() {
		return nil, NewDivisionError("Inv", "inverse of zero in %v", x.ctx)
	}
	g, s, _, err := PolyXGCD(x.val, x.ctx.modulus)
	if err != nil {
		return nil, err
	}
	if g.Degree() != 0 {
		return nil, NewDivisionError("Inv", "%s is not invertible in %v", x, x.ctx)
	}
	red, err := PolyMod(s, x.ctx.modulus)
	if err != nil {
		return nil, err
	}
	return &FinFldElem{ctx: x.ctx, val: red}, nil
}

// Pow returns x to the n-th power.
func (x *FinFldElem) Pow(n uint) *FinFldElem {
	return RingPow[*FinFldElem](x.ctx, x, n)
}

// Frobenius returns x^p, the image of x under the Frobenius endomorphism.
func (x *FinFldElem) Frobenius() *FinFldElem {
	z, err := polyPowModBig(x.val, &x.ctx.p.i, x.ctx.modulus)
	if err != nil {
		panic(fmt.Sprintf("algebra: FinFldElem.Frobenius: %v", err))
	}
	return &FinFldElem{ctx: x.ctx, val: z}
}

// FinFldPoly is a polynomial with finite-field coefficients.
type FinFldPoly = Poly[*FinFldElem]

// FinFldPolyRing is the ring of polynomials over a finite field.
type FinFldPolyRing = PolyRing[*FinFldElem]

// NewFinFldPolyRing returns ctx[varName].
func NewFinFldPolyRing(ctx *FinFldCtx, varName string) *FinFldPolyRing {
	return NewPolyRing[*FinFldElem](ctx, varName)
}

// FinFldMat is a matrix with finite-field entries.
type FinFldMat = Mat[*FinFldElem]

// FinFldMatSpace is a space of matrices over a finite field.
type FinFldMatSpace = MatSpace[*FinFldElem]

// NewFinFldMatSpace returns the space of rows x cols matrices over ctx.
func NewFinFldMatSpace(ctx *FinFldCtx, rows, cols int) (*FinFldMatSpace, error) {
	return NewMatSpace[*FinFldElem](ctx, rows, cols)
}
