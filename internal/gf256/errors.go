package gf256

import "errors"

// ErrDivByZero is returned by Div when the divisor is zero. Division by
// zero is undefined in GF(256); callers above this package translate it
// into the shared internal error taxonomy rather than letting it surface.
var ErrDivByZero = errors.New("gf256: division by zero")

// ErrZeroInverse is returned by Inv when asked to invert zero, which has
// no multiplicative inverse.
var ErrZeroInverse = errors.New("gf256: zero has no inverse")

// ErrEmptyDivisor is returned by Poly.Div when the divisor is empty or has
// a zero leading coefficient.
var ErrEmptyDivisor = errors.New("gf256: empty or non-normalized divisor polynomial")
