package algebra

import "fmt"

// Parent is the common interface of every context: an immutable description
// of an algebraic structure whose elements hold a shared, non-owning
// reference to it. Equality between parents is structural, not allocation
// identity: two independently constructed contexts with equal defining
// parameters are interchangeable.
type Parent interface {
	fmt.Stringer

	// SameAs reports whether other describes the same algebraic structure.
	SameAs(other Parent) bool
}

// mustCompatible panics when a and b are not the same structure. Mixing
// elements of distinct contexts in a binary operation is a programming
// defect, not a recoverable condition, so it fails immediately rather than
// returning an error.
func mustCompatible(op string, a, b Parent) {
	if a == nil || b == nil {
		panic(fmt.Sprintf("algebra: %s: element without a parent context", op))
	}
	if !a.SameAs(b) {
		panic(fmt.Sprintf("algebra: %s: mismatched contexts %v and %v", op, a, b))
	}
}

// Ring is the capability interface a context implements over its element
// type E. It gives generic containers (polynomials, matrices) everything they
// need to do coefficient arithmetic without knowing the concrete type.
//
// The Add/Sub/Mul/Neg methods allocate fresh elements; arguments are never
// mutated. Clone returns a deep copy of its argument; Text renders an element
// for diagnostics.
type Ring[E any] interface {
	Parent

	Zero() E
	One() E
	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Neg(a E) E
	IsZero(a E) bool
	Equal(a, b E) bool
	Clone(a E) E
	Text(a E) string
}

// Field extends Ring with exact division. Inv returns a DivisionError when
// the argument is zero or otherwise not invertible.
type Field[E any] interface {
	Ring[E]

	Inv(a E) (E, error)
	Div(a, b E) (E, error)
}

// RingPow raises x to the n-th power in r by binary exponentiation. n must
// be non-negative; RingPow(r, x, 0) is r.One() for every x, including zero.
func RingPow[E any](r Ring[E], x E, n uint) E {
	res := r.One()
	base := r.Clone(x)
	for n > 0 {
		if n&1 == 1 {
			res = r.Mul(res, base)
		}
		base = r.Mul(base, base)
		n >>= 1
	}
	return res
}
