package algebra

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Wire format. Every concrete type encodes as a fixed-order CBOR array
// (struct tag "toarray"): matrices as row count, column count, then entries
// in row-major order; modular types as modulus then residue; balls as
// midpoint then radius. Decoding goes through a context entry point that
// re-validates compatibility before returning an element, so bytes produced
// under one context never silently deserialize into another.

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("algebra: cbor encode mode: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{
		MaxArrayElements: 1 << 24,
	}.DecMode()
	if err != nil {
		panic("algebra: cbor decode mode: " + err.Error())
	}
}

// ElemDecoder is the decoding half of the serialization boundary: a context
// that can reconstruct its own elements from wire bytes, re-validating
// compatibility as it does.
type ElemDecoder[E any] interface {
	DecodeElem(data []byte) (E, error)
}

type integerWire struct {
	_    struct{} `cbor:",toarray"`
	Sign int8
	Abs  []byte
}

// MarshalCBOR implements cbor.Marshaler.
func (x *Integer) MarshalCBOR() ([]byte, error) {
	return cborEnc.Marshal(integerWire{Sign: int8(x.i.Sign()), Abs: x.i.Bytes()})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (x *Integer) UnmarshalCBOR(data []byte) error {
	var w integerWire
	if err := cborDec.Unmarshal(data, &w); err != nil {
		return err
	}
	x.i.SetBytes(w.Abs)
	if w.Sign < 0 {
		x.i.Neg(&x.i)
	}
	return nil
}

// DecodeElem reconstructs an integer from wire bytes.
func (r *IntegerRing) DecodeElem(data []byte) (*Integer, error) {
	z := new(Integer)
	if err := z.UnmarshalCBOR(data); err != nil {
		return nil, err
	}
	return z, nil
}

type rationalWire struct {
	_   struct{} `cbor:",toarray"`
	Num *Integer
	Den *Integer
}

// MarshalCBOR implements cbor.Marshaler.
func (x *Rational) MarshalCBOR() ([]byte, error) {
	return cborEnc.Marshal(rationalWire{Num: x.Num(), Den: x.Den()})
}

// UnmarshalCBOR implements cbor.Unmarshaler. The denominator must be
// positive; big.Rat re-normalizes, so hand-crafted unreduced fractions
// still decode to canonical form.
func (x *Rational) UnmarshalCBOR(data []byte) error {
	var w rationalWire
	if err := cborDec.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Num == nil || w.Den == nil || w.Den.Sign() <= 0 {
		return NewConversionError("(wire)", "cbor", "Rational")
	}
	x.r.SetFrac(&w.Num.i, &w.Den.i)
	return nil
}

// DecodeElem reconstructs a rational from wire bytes.
func (f *RationalField) DecodeElem(data []byte) (*Rational, error) {
	z := new(Rational)
	if err := z.UnmarshalCBOR(data); err != nil {
		return nil, err
	}
	return z, nil
}

type intModWire struct {
	_       struct{} `cbor:",toarray"`
	Modulus *Integer
	Residue *Integer
}

// MarshalCBOR implements cbor.Marshaler. The modulus travels with the
// residue so the receiving side can check it against its own ring.
func (x *IntMod) MarshalCBOR() ([]byte, error) {
	return cborEnc.Marshal(intModWire{Modulus: x.ring.Modulus(), Residue: x.Lift()})
}

// DecodeElem reconstructs a residue from wire bytes. The wire modulus must
// equal the ring's modulus; the residue is re-reduced, so an over-sized
// payload decodes to its canonical representative rather than failing.
func (r *IntModRing) DecodeElem(data []byte) (*IntMod, error) {
	var w intModWire
	if err := cborDec.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	if w.Modulus == nil || w.Residue == nil {
		return nil, NewConversionError("(wire)", "cbor", "IntMod")
	}
	if !w.Modulus.Equal(&r.m) {
		return nil, NewConversionError(w.Modulus.String(), "modulus", r.String())
	}
	return r.New(w.Residue), nil
}

type finFldWire struct {
	_            struct{} `cbor:",toarray"`
	Char         *Integer
	Degree       int
	ModulusCoefs []*Integer
	ValueCoefs   []*Integer
}

// MarshalCBOR implements cbor.Marshaler. The characteristic, degree and
// modulus polynomial travel with the value so the receiving context can
// verify it describes the same field.
func (x *FinFldElem) MarshalCBOR() ([]byte, error) {
	ctx := x.ctx
	w := finFldWire{
		Char:         ctx.Characteristic(),
		Degree:       ctx.Degree(),
		ModulusCoefs: liftCoeffs(ctx.modulus),
		ValueCoefs:   liftCoeffs(x.val),
	}
	return cborEnc.Marshal(w)
}

func liftCoeffs(p *IntModPoly) []*Integer {
	cs := p.Coeffs()
	out := make([]*Integer, len(cs))
	for i, c := range cs {
		out[i] = c.Lift()
	}
	return out
}

// DecodeElem reconstructs a finite-field element from wire bytes,
// re-validating that the wire field parameters match ctx.
func (ctx *FinFldCtx) DecodeElem(data []byte) (*FinFldElem, error) {
	var w finFldWire
	if err := cborDec.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	if w.Char == nil || !w.Char.Equal(&ctx.p) || w.Degree != ctx.k {
		return nil, NewConversionError("(wire)", "field parameters", ctx.String())
	}
	mod := ctx.reduceCoeffs(w.ModulusCoefs)
	if !mod.Equal(ctx.modulus) {
		return nil, NewConversionError(mod.String(), "modulus polynomial", ctx.String())
	}
	val, err := PolyMod(ctx.reduceCoeffs(w.ValueCoefs), ctx.modulus)
	if err != nil {
		return nil, err
	}
	return &FinFldElem{ctx: ctx, val: val}, nil
}

func (ctx *FinFldCtx) reduceCoeffs(cs []*Integer) *IntModPoly {
	out := make([]*IntMod, len(cs))
	for i, c := range cs {
		out[i] = ctx.base.New(c)
	}
	return ctx.polys.New(out...)
}

type numFldWire struct {
	_            struct{} `cbor:",toarray"`
	MinPolyCoefs []*Rational
	ValueCoefs   []*Rational
}

// MarshalCBOR implements cbor.Marshaler.
func (x *NumFldElem) MarshalCBOR() ([]byte, error) {
	return cborEnc.Marshal(numFldWire{
		MinPolyCoefs: x.ctx.minpoly.Coeffs(),
		ValueCoefs:   x.val.Coeffs(),
	})
}

// DecodeElem reconstructs a number-field element from wire bytes,
// re-validating that the wire minimal polynomial matches ctx.
func (ctx *NumFldCtx) DecodeElem(data []byte) (*NumFldElem, error) {
	var w numFldWire
	if err := cborDec.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	minpoly := ctx.polys.New(w.MinPolyCoefs...)
	if !minpoly.Equal(ctx.minpoly) {
		return nil, NewConversionError(minpoly.String(), "minimal polynomial", ctx.String())
	}
	return ctx.New(w.ValueCoefs...)
}

type arfWire struct {
	_   struct{} `cbor:",toarray"`
	Gob []byte
}

// MarshalCBOR implements cbor.Marshaler, preserving the exact value and
// precision through big.Float's binary encoding.
func (x *Arf) MarshalCBOR() ([]byte, error) {
	gob, err := x.f.GobEncode()
	if err != nil {
		return nil, err
	}
	return cborEnc.Marshal(arfWire{Gob: gob})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (x *Arf) UnmarshalCBOR(data []byte) error {
	var w arfWire
	if err := cborDec.Unmarshal(data, &w); err != nil {
		return err
	}
	return x.f.GobDecode(w.Gob)
}

type magWire struct {
	_    struct{} `cbor:",toarray"`
	Inf  bool
	Mant uint32
	Exp  int64
}

// MarshalCBOR implements cbor.Marshaler.
func (x *Mag) MarshalCBOR() ([]byte, error) {
	if x.inf {
		return cborEnc.Marshal(magWire{Inf: true})
	}
	mant, exp := x.MantExp()
	return cborEnc.Marshal(magWire{Mant: mant, Exp: exp})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (x *Mag) UnmarshalCBOR(data []byte) error {
	var w magWire
	if err := cborDec.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Inf {
		*x = *MagInf()
		return nil
	}
	*x = *magFromMantExp(w.Mant, w.Exp)
	return nil
}

type realWire struct {
	_   struct{} `cbor:",toarray"`
	Mid *Arf
	Rad *Mag
}

// MarshalCBOR implements cbor.Marshaler: midpoint then radius.
func (x *Real) MarshalCBOR() ([]byte, error) {
	return cborEnc.Marshal(realWire{Mid: x.Midpoint(), Rad: x.Radius()})
}

// DecodeElem reconstructs a ball from wire bytes into the field f. The ball
// semantics carry over directly: any rounding from re-folding the midpoint
// at f's precision widens the radius.
func (f *RealField) DecodeElem(data []byte) (*Real, error) {
	var w realWire
	if err := cborDec.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	if w.Mid == nil || w.Rad == nil {
		return nil, NewConversionError("(wire)", "cbor", "Real")
	}
	return f.FromMidRad(w.Mid, w.Rad), nil
}

type complexWire struct {
	_  struct{} `cbor:",toarray"`
	Re *Real
	Im *Real
}

// MarshalCBOR implements cbor.Marshaler: real part then imaginary part.
func (x *Complex) MarshalCBOR() ([]byte, error) {
	return cborEnc.Marshal(complexWire{Re: x.re, Im: x.im})
}

// DecodeElem reconstructs a complex ball from wire bytes into the field f.
func (f *ComplexField) DecodeElem(data []byte) (*Complex, error) {
	var w cborTwoRaw
	if err := cborDec.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	re, err := f.rf.DecodeElem(w.A)
	if err != nil {
		return nil, err
	}
	im, err := f.rf.DecodeElem(w.B)
	if err != nil {
		return nil, err
	}
	return &Complex{field: f, re: re, im: im}, nil
}

// cborTwoRaw splits a two-element wire array without committing to the
// element type, so context-qualified decoding can route each half.
type cborTwoRaw struct {
	_ struct{} `cbor:",toarray"`
	A cbor.RawMessage
	B cbor.RawMessage
}

type polyWire struct {
	_      struct{} `cbor:",toarray"`
	Coeffs []cbor.RawMessage
}

// MarshalCBOR implements cbor.Marshaler for polynomials whose coefficient
// type is itself marshalable: coefficients in ascending degree order.
func (x *Poly[E]) MarshalCBOR() ([]byte, error) {
	w := polyWire{Coeffs: make([]cbor.RawMessage, 0, len(x.c))}
	for _, c := range x.c {
		raw, err := cborEnc.Marshal(c)
		if err != nil {
			return nil, err
		}
		w.Coeffs = append(w.Coeffs, raw)
	}
	return cborEnc.Marshal(w)
}

// DecodeCBOR reconstructs a polynomial from wire bytes. The base ring must
// implement ElemDecoder; each coefficient is routed through it, so context
// re-validation applies coefficientwise.
func (r *PolyRing[E]) DecodeCBOR(data []byte) (*Poly[E], error) {
	dec, ok := r.base.(ElemDecoder[E])
	if !ok {
		return nil, NewConversionError(r.String(), "cbor", "PolyRing without element decoder")
	}
	var w polyWire
	if err := cborDec.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	coeffs := make([]E, len(w.Coeffs))
	for i, raw := range w.Coeffs {
		c, err := dec.DecodeElem(raw)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return r.New(coeffs...), nil
}

type matWire struct {
	_       struct{} `cbor:",toarray"`
	Rows    int
	Cols    int
	Entries []cbor.RawMessage
}

// MarshalCBOR implements cbor.Marshaler for matrices whose entry type is
// itself marshalable: row count, column count, then row-major entries.
func (x *Mat[E]) MarshalCBOR() ([]byte, error) {
	w := matWire{
		Rows:    x.space.rows,
		Cols:    x.space.cols,
		Entries: make([]cbor.RawMessage, 0, len(x.e)),
	}
	for _, v := range x.e {
		raw, err := cborEnc.Marshal(v)
		if err != nil {
			return nil, err
		}
		w.Entries = append(w.Entries, raw)
	}
	return cborEnc.Marshal(w)
}

// DecodeCBOR reconstructs a matrix from wire bytes, re-validating the
// dimensions against the space before decoding any entry.
func (s *MatSpace[E]) DecodeCBOR(data []byte) (*Mat[E], error) {
	dec, ok := s.base.(ElemDecoder[E])
	if !ok {
		return nil, NewConversionError(s.String(), "cbor", "MatSpace without element decoder")
	}
	var w matWire
	if err := cborDec.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	if w.Rows != s.rows || w.Cols != s.cols {
		return nil, NewConversionError(
			formatDims(w.Rows, w.Cols), "matrix dimensions", s.String())
	}
	if len(w.Entries) != s.rows*s.cols {
		return nil, NewConversionError("(wire)", "cbor", s.String())
	}
	entries := make([]E, len(w.Entries))
	for i, raw := range w.Entries {
		v, err := dec.DecodeElem(raw)
		if err != nil {
			return nil, err
		}
		entries[i] = v
	}
	return s.New(entries...)
}

func formatDims(rows, cols int) string {
	return fmt.Sprintf("%dx%d", rows, cols)
}
