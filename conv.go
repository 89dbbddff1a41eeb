package algebra

// Conversions between contexts and coercions with machine types. Lossless
// promotions (integer to rational, rational to ball) are plain methods;
// narrowing conversions return a ConversionError when the value does not
// fit. Mixed-type arithmetic coerces the narrower operand up and dispatches
// through the canonical operation.

// FromRational converts q to an integer, or reports a ConversionError when
// q has a non-unit denominator.
func (r *IntegerRing) FromRational(q *Rational) (*Integer, error) {
	if !q.IsInteger() {
		return nil, NewConversionError(q.String(), "Rational", "Integer")
	}
	return IntegerFromBig(q.r.Num()), nil
}

// Rational returns x as an element of QQ.
func (x *Integer) Rational() *Rational { return QQ.FromInteger(x) }

// AddInt64 returns x + v.
func (x *Integer) AddInt64(v int64) *Integer { return x.Add(NewInteger(v)) }

// SubInt64 returns x - v.
func (x *Integer) SubInt64(v int64) *Integer { return x.Sub(NewInteger(v)) }

// MulInt64 returns x * v.
func (x *Integer) MulInt64(v int64) *Integer { return x.Mul(NewInteger(v)) }

// AddInteger returns x + n with n promoted to a rational.
func (x *Rational) AddInteger(n *Integer) *Rational { return x.Add(QQ.FromInteger(n)) }

// SubInteger returns x - n with n promoted to a rational.
func (x *Rational) SubInteger(n *Integer) *Rational { return x.Sub(QQ.FromInteger(n)) }

// MulInteger returns x * n with n promoted to a rational.
func (x *Rational) MulInteger(n *Integer) *Rational { return x.Mul(QQ.FromInteger(n)) }

// AddInt64 returns x + v.
func (x *Rational) AddInt64(v int64) *Rational { return x.Add(QQ.FromInt64(v)) }

// MulInt64 returns x * v.
func (x *Rational) MulInt64(v int64) *Rational { return x.Mul(QQ.FromInt64(v)) }

// Integer converts x to an element of ZZ, or reports a ConversionError when
// x has a non-unit denominator.
func (x *Rational) Integer() (*Integer, error) { return ZZ.FromRational(x) }

// FromInteger reduces n into the ring.
func (r *IntModRing) FromInteger(n *Integer) *IntMod { return r.New(n) }

// AddInt64 returns x + v with v reduced into the ring of x.
func (x *IntMod) AddInt64(v int64) *IntMod { return x.Add(x.ring.New(NewInteger(v))) }

// MulInt64 returns x * v with v reduced into the ring of x.
func (x *IntMod) MulInt64(v int64) *IntMod { return x.Mul(x.ring.New(NewInteger(v))) }

// AddInteger returns x + n with n promoted into the field of x.
func (x *Real) AddInteger(n *Integer) *Real { return x.Add(x.field.FromInteger(n)) }

// AddRational returns x + q with q promoted into the field of x.
func (x *Real) AddRational(q *Rational) *Real { return x.Add(x.field.FromRational(q)) }

// AddInt64 returns x + v.
func (x *Real) AddInt64(v int64) *Real { return x.Add(x.field.FromInt64(v)) }

// MulInteger returns x * n with n promoted into the field of x.
func (x *Real) MulInteger(n *Integer) *Real { return x.Mul(x.field.FromInteger(n)) }

// MulRational returns x * q with q promoted into the field of x.
func (x *Real) MulRational(q *Rational) *Real { return x.Mul(x.field.FromRational(q)) }

// MulInt64 returns x * v.
func (x *Real) MulInt64(v int64) *Real { return x.Mul(x.field.FromInt64(v)) }

// FromReal embeds a real ball from the field's real field as a complex ball.
func (f *ComplexField) FromReal(re *Real) *Complex {
	mustCompatible("FromReal", f.rf, re.field)
	return &Complex{field: f, re: re.Clone(), im: f.rf.Zero()}
}

// FromRational returns the value of q as an exact complex ball, up to the
// rounding recorded in the real part's radius.
func (f *ComplexField) FromRational(q *Rational) *Complex {
	return &Complex{field: f, re: f.rf.FromRational(q), im: f.rf.Zero()}
}

// Real converts x to its real part, or reports a ConversionError when the
// imaginary part is not exactly zero.
func (x *Complex) Real() (*Real, error) {
	if !x.field.rf.IsZero(x.im) {
		return nil, NewConversionError(x.String(), "Complex", "Real")
	}
	return x.re.Clone(), nil
}
