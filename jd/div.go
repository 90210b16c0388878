package jd

import "golang.org/x/exp/constraints"

//FloorDiv returns a/b rounded towards negative infinity.
func FloorDiv[T constraints.Integer](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

//FloorMod returns the remainder matching FloorDiv, it has the sign of b.
func FloorMod[T constraints.Integer](a, b T) T {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
