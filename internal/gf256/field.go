// Package gf256 implements GF(256) arithmetic shared by the rs and sss
// packages. The field is defined by the primitive polynomial
// x^8 + x^4 + x^3 + x^2 + 1 (0x11D) with generator alpha = 2, matching the
// constants used throughout the rest of this library.
package gf256

import "sync"

// primitivePolynomial and generator define the field. They are part of
// the wire contract and must never change without breaking every encoded
// shard/share in the wild.
const (
	primitivePolynomial = 0x11D
	generator           = 2
	fieldSize           = 256
)

var (
	expTable [2*fieldSize - 2]byte // duplicated past 255 to avoid modular reduction on log sums
	logTable [fieldSize]byte

	tablesOnce sync.Once
)

func initTables() {
	tablesOnce.Do(func() {
		x := 1
		for i := 0; i < fieldSize-1; i++ {
			expTable[i] = byte(x)
			logTable[byte(x)] = byte(i)

			x <<= 1
			if x&fieldSize != 0 {
				x ^= primitivePolynomial
			}
		}
		// Duplicate the cycle so exp[i+j] can be read without a mod-255
		// when i and j are themselves < 255.
		for i := fieldSize - 1; i < len(expTable); i++ {
			expTable[i] = expTable[i-(fieldSize-1)]
		}
	})
}

func init() {
	initTables()
}

// Add returns a + b in GF(256). Addition and subtraction are both XOR.
func Add(a, b byte) byte { return a ^ b }

// Sub returns a - b in GF(256). Identical to Add.
func Sub(a, b byte) byte { return a ^ b }

// Mul returns a * b in GF(256).
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[int(logTable[a])+int(logTable[b])]
}

// Div returns a / b in GF(256). Returns (0, ErrDivByZero) when b == 0.
func Div(a, b byte) (byte, error) {
	if b == 0 {
		return 0, ErrDivByZero
	}
	if a == 0 {
		return 0, nil
	}
	diff := int(logTable[a]) - int(logTable[b])
	if diff < 0 {
		diff += fieldSize - 1
	}
	return expTable[diff], nil
}

// Pow returns a^e in GF(256). a^0 is 1 for all a, including 0.
func Pow(a byte, e int) byte {
	if e == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	exp := (int(logTable[a]) * e) % (fieldSize - 1)
	if exp < 0 {
		exp += fieldSize - 1
	}
	return expTable[exp]
}

// Inv returns the multiplicative inverse of a. Returns (0, ErrZeroInverse)
// when a == 0.
func Inv(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrZeroInverse
	}
	return expTable[fieldSize-1-int(logTable[a])], nil
}

// Exp returns generator^i in GF(256). i is reduced mod 255 first, so any
// integer (including a negative one) is accepted.
func Exp(i int) byte {
	i %= fieldSize - 1
	if i < 0 {
		i += fieldSize - 1
	}
	return expTable[i]
}

// Log returns the discrete log of a (base generator). Panics on a == 0;
// callers must never invoke Log(0) since it is mathematically undefined.
func Log(a byte) byte {
	if a == 0 {
		panic("gf256: Log(0) is undefined")
	}
	return logTable[a]
}
