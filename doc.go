// Package algebra provides exact and certified arbitrary-precision
// computation: integers, rationals, modular integers, finite-field and
// number-field elements, generic polynomials and matrices, and real/complex
// ball arithmetic with rigorous error bounds.
//
// Every value belongs to a parent context describing the algebraic structure
// it lives in (a modulus, a field degree, a working precision). Contexts are
// immutable after construction and are shared by reference between all the
// elements built from them; two contexts are interchangeable exactly when
// their defining parameters are equal. Binary operations require both
// operands to come from equal contexts and panic otherwise, since mixing
// structures (two different moduli, two different precisions) has no
// mathematical meaning.
//
// Real and complex numbers are balls: a midpoint known to a caller-chosen
// working precision together with a radius bounding the distance to the true
// value. Every operation returns a ball guaranteed to contain the exact
// mathematical result; rounding errors widen the radius and are never
// dropped.
//
// The arbitrary-precision kernel is math/big. This package never
// re-implements bignum arithmetic; it layers context discipline, reduction
// invariants and certified error propagation on top of it.
package algebra
