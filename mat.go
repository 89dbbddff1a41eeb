package algebra

import (
	"fmt"
	"strings"
)

// MatSpace is the space of rows x cols matrices over a base ring. Like
// PolyRing it is generic over the coefficient type; the shape and the base
// structure are the defining parameters.
type MatSpace[E any] struct {
	base Ring[E]
	rows int
	cols int
}

// NewMatSpace returns the space of rows x cols matrices over base, or a
// ConfigurationError when either dimension is not positive.
func NewMatSpace[E any](base Ring[E], rows, cols int) (*MatSpace[E], error) {
	if rows <= 0 {
		return nil, NewConfigurationError("rows", "must be positive, got %d", rows)
	}
	if cols <= 0 {
		return nil, NewConfigurationError("cols", "must be positive, got %d", cols)
	}
	return &MatSpace[E]{base: base, rows: rows, cols: cols}, nil
}

// Base returns the coefficient ring.
func (s *MatSpace[E]) Base() Ring[E] { return s.base }

// Rows returns the row count of the space.
func (s *MatSpace[E]) Rows() int { return s.rows }

// Cols returns the column count of the space.
func (s *MatSpace[E]) Cols() int { return s.cols }

// String returns a human-readable name for the space.
func (s *MatSpace[E]) String() string {
	return fmt.Sprintf("Space of %dx%d matrices over %v", s.rows, s.cols, s.base)
}

// SameAs reports whether other is a matrix space with the same shape over
// the same base structure.
func (s *MatSpace[E]) SameAs(other Parent) bool {
	o, ok := other.(*MatSpace[E])
	if !ok {
		return false
	}
	return s == o || (s.rows == o.rows && s.cols == o.cols && s.base.SameAs(o.base))
}

// New returns the matrix with the given entries in row-major order. The
// entry count must be exactly rows*cols; entries are cloned.
func (s *MatSpace[E]) New(entries ...E) (*Mat[E], error) {
	if len(entries) != s.rows*s.cols {
		return nil, NewConfigurationError("entries",
			"need %d entries for a %dx%d matrix, got %d", s.rows*s.cols, s.rows, s.cols, len(entries))
	}
	z := &Mat[E]{space: s, e: make([]E, len(entries))}
	for i, v := range entries {
		z.e[i] = s.base.Clone(v)
	}
	return z, nil
}

// Identity returns the identity matrix, or a ConfigurationError when the
// space is not square.
func (s *MatSpace[E]) Identity() (*Mat[E], error) {
	if s.rows != s.cols {
		return nil, NewConfigurationError("shape", "identity needs a square space, have %dx%d", s.rows, s.cols)
	}
	z := s.Zero()
	for i := 0; i < s.rows; i++ {
		z.e[i*s.cols+i] = s.base.One()
	}
	return z, nil
}

// Zero returns the zero matrix of the space.
func (s *MatSpace[E]) Zero() *Mat[E] {
	z := &Mat[E]{space: s, e: make([]E, s.rows*s.cols)}
	for i := range z.e {
		z.e[i] = s.base.Zero()
	}
	return z
}

// Mat is a matrix over a generic coefficient ring, stored row-major. Copy
// with Clone, not by assignment.
type Mat[E any] struct {
	space *MatSpace[E]
	e     []E
}

// Parent returns the matrix space the element belongs to.
func (x *Mat[E]) Parent() Parent { return x.space }

// Space returns the element's matrix space.
func (x *Mat[E]) Space() *MatSpace[E] { return x.space }

// Rows returns the row count.
func (x *Mat[E]) Rows() int { return x.space.rows }

// Cols returns the column count.
func (x *Mat[E]) Cols() int { return x.space.cols }

// Clone returns a deep copy of x, referencing the same space.
func (x *Mat[E]) Clone() *Mat[E] {
	z := &Mat[E]{space: x.space, e: make([]E, len(x.e))}
	for i, v := range x.e {
		z.e[i] = x.space.base.Clone(v)
	}
	return z
}

// At returns a copy of the entry at row i, column j (zero-based). Panics on
// out-of-range indices.
func (x *Mat[E]) At(i, j int) E {
	x.check(i, j)
	return x.space.base.Clone(x.e[i*x.space.cols+j])
}

// Set replaces the entry at row i, column j with a clone of v.
func (x *Mat[E]) Set(i, j int, v E) {
	x.check(i, j)
	x.e[i*x.space.cols+j] = x.space.base.Clone(v)
}

func (x *Mat[E]) check(i, j int) {
	if i < 0 || i >= x.space.rows || j < 0 || j >= x.space.cols {
		panic(fmt.Sprintf("algebra: matrix index (%d,%d) out of range for %dx%d", i, j, x.space.rows, x.space.cols))
	}
}

// Entries returns copies of the entries in row-major order.
func (x *Mat[E]) Entries() []E {
	out := make([]E, len(x.e))
	for i, v := range x.e {
		out[i] = x.space.base.Clone(v)
	}
	return out
}

// IsZero reports whether every entry is zero.
func (x *Mat[E]) IsZero() bool {
	for _, v := range x.e {
		if !x.space.base.IsZero(v) {
			return false
		}
	}
	return true
}

// Equal reports whether x and y have equal entries. Panics when the spaces
// differ.
func (x *Mat[E]) Equal(y *Mat[E]) bool {
	mustCompatible("Equal", x.space, y.space)
	for i := range x.e {
		if !x.space.base.Equal(x.e[i], y.e[i]) {
			return false
		}
	}
	return true
}

// String renders the matrix one row per line.
func (x *Mat[E]) String() string {
	var sb strings.Builder
	for i := 0; i < x.space.rows; i++ {
		row := make([]string, x.space.cols)
		for j := 0; j < x.space.cols; j++ {
			row[j] = x.space.base.Text(x.e[i*x.space.cols+j])
		}
		sb.WriteString("[" + strings.Join(row, " ") + "]")
		if i < x.space.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Add returns x + y entry-wise. Panics when the spaces differ.
func (x *Mat[E]) Add(y *Mat[E]) *Mat[E] {
	mustCompatible("Add", x.space, y.space)
	z := &Mat[E]{space: x.space, e: make([]E, len(x.e))}
	for i := range x.e {
		z.e[i] = x.space.base.Add(x.e[i], y.e[i])
	}
	return z
}

// Sub returns x - y entry-wise. Panics when the spaces differ.
func (x *Mat[E]) Sub(y *Mat[E]) *Mat[E] {
	mustCompatible("Sub", x.space, y.space)
	z := &Mat[E]{space: x.space, e: make([]E, len(x.e))}
	for i := range x.e {
		z.e[i] = x.space.base.Sub(x.e[i], y.e[i])
	}
	return z
}

// Neg returns -x.
func (x *Mat[E]) Neg() *Mat[E] {
	z := &Mat[E]{space: x.space, e: make([]E, len(x.e))}
	for i := range x.e {
		z.e[i] = x.space.base.Neg(x.e[i])
	}
	return z
}

// MulScalar returns x scaled by a base-ring element.
func (x *Mat[E]) MulScalar(s E) *Mat[E] {
	z := &Mat[E]{space: x.space, e: make([]E, len(x.e))}
	for i := range x.e {
		z.e[i] = x.space.base.Mul(x.e[i], s)
	}
	return z
}

// Mul returns the matrix product x * y. The column count of x must equal the
// row count of y and the bases must be the same structure; the result lives
// in the rows(x) x cols(y) space over the common base.
func (x *Mat[E]) Mul(y *Mat[E]) (*Mat[E], error) {
	if !x.space.base.SameAs(y.space.base) {
		panic(fmt.Sprintf("algebra: Mul: mismatched base rings %v and %v", x.space.base, y.space.base))
	}
	if x.space.cols != y.space.rows {
		return nil, NewConfigurationError("shape",
			"cannot multiply %dx%d by %dx%d", x.space.rows, x.space.cols, y.space.rows, y.space.cols)
	}
	out, err := NewMatSpace[E](x.space.base, x.space.rows, y.space.cols)
	if err != nil {
		return nil, err
	}
	b := x.space.base
	z := out.Zero()
	for i := 0; i < x.space.rows; i++ {
		for k := 0; k < x.space.cols; k++ {
			xik := x.e[i*x.space.cols+k]
			if b.IsZero(xik) {
				continue
			}
			for j := 0; j < y.space.cols; j++ {
				idx := i*out.cols + j
				z.e[idx] = b.Add(z.e[idx], b.Mul(xik, y.e[k*y.space.cols+j]))
			}
		}
	}
	return z, nil
}

// Transpose returns the transpose of x in the cols x rows space.
func (x *Mat[E]) Transpose() *Mat[E] {
	out := &MatSpace[E]{base: x.space.base, rows: x.space.cols, cols: x.space.rows}
	z := &Mat[E]{space: out, e: make([]E, len(x.e))}
	for i := 0; i < x.space.rows; i++ {
		for j := 0; j < x.space.cols; j++ {
			z.e[j*out.cols+i] = x.space.base.Clone(x.e[i*x.space.cols+j])
		}
	}
	return z
}

// Trace returns the sum of the diagonal entries of a square matrix.
func (x *Mat[E]) Trace() (E, error) {
	var zero E
	if x.space.rows != x.space.cols {
		return zero, NewDomainError("Trace", x.space.String())
	}
	b := x.space.base
	t := b.Zero()
	for i := 0; i < x.space.rows; i++ {
		t = b.Add(t, x.e[i*x.space.cols+i])
	}
	return t, nil
}

// MatDet returns the determinant of a square matrix over a field base, by
// Gaussian elimination with partial pivoting on the first non-zero entry.
func MatDet[E any](x *Mat[E]) (E, error) {
	var zero E
	f, ok := x.space.base.(Field[E])
	if !ok {
		return zero, NewDivisionError("MatDet", "base ring %v is not a field", x.space.base)
	}
	if x.space.rows != x.space.cols {
		return zero, NewDomainError("MatDet", x.space.String())
	}
	n := x.space.rows
	a := make([]E, len(x.e))
	for i, v := range x.e {
		a[i] = f.Clone(v)
	}
	det := f.One()
	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if !f.IsZero(a[row*n+col]) {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			return f.Zero(), nil
		}
		if pivot != col {
			for j := col; j < n; j++ {
				a[col*n+j], a[pivot*n+j] = a[pivot*n+j], a[col*n+j]
			}
			det = f.Neg(det)
		}
		p := a[col*n+col]
		det = f.Mul(det, p)
		pinv, err := f.Inv(p)
		if err != nil {
			return zero, err
		}
		for row := col + 1; row < n; row++ {
			if f.IsZero(a[row*n+col]) {
				continue
			}
			factor := f.Mul(a[row*n+col], pinv)
			for j := col; j < n; j++ {
				a[row*n+j] = f.Sub(a[row*n+j], f.Mul(factor, a[col*n+j]))
			}
		}
	}
	return det, nil
}

// Named instantiations matching the concrete rings.

// IntMat is a matrix with integer entries.
type IntMat = Mat[*Integer]

// IntMatSpace is a space of integer matrices.
type IntMatSpace = MatSpace[*Integer]

// NewIntMatSpace returns the space of rows x cols integer matrices.
func NewIntMatSpace(rows, cols int) (*IntMatSpace, error) {
	return NewMatSpace[*Integer](ZZ, rows, cols)
}

// RatMat is a matrix with rational entries.
type RatMat = Mat[*Rational]

// RatMatSpace is a space of rational matrices.
type RatMatSpace = MatSpace[*Rational]

// NewRatMatSpace returns the space of rows x cols rational matrices.
func NewRatMatSpace(rows, cols int) (*RatMatSpace, error) {
	return NewMatSpace[*Rational](QQ, rows, cols)
}

// IntModMat is a matrix with entries in Z/nZ.
type IntModMat = Mat[*IntMod]

// IntModMatSpace is a space of matrices over Z/nZ.
type IntModMatSpace = MatSpace[*IntMod]

// NewIntModMatSpace returns the space of rows x cols matrices over base.
func NewIntModMatSpace(base *IntModRing, rows, cols int) (*IntModMatSpace, error) {
	return NewMatSpace[*IntMod](base, rows, cols)
}
