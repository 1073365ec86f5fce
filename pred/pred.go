/*
Package pred provides relational predicate patterns over ordered types, the
companions to patmat.Meet for the common cases:

	patmat.Of(pred.Lt(0), patmat.Expr("negative")),
	patmat.Of(pred.Within(0, 9), patmat.Expr("digit")),

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pred

import (
	"github.com/npillmayer/patmat"
	"golang.org/x/exp/constraints"
)

// Lt matches values strictly less than the bound.
func Lt[T constraints.Ordered](bound T) patmat.Pattern {
	return patmat.Meet(func(v T) bool { return v < bound })
}

// Le matches values less than or equal to the bound.
func Le[T constraints.Ordered](bound T) patmat.Pattern {
	return patmat.Meet(func(v T) bool { return v <= bound })
}

// Gt matches values strictly greater than the bound.
func Gt[T constraints.Ordered](bound T) patmat.Pattern {
	return patmat.Meet(func(v T) bool { return v > bound })
}

// Ge matches values greater than or equal to the bound.
func Ge[T constraints.Ordered](bound T) patmat.Pattern {
	return patmat.Meet(func(v T) bool { return v >= bound })
}

// Within matches values of the inclusive interval [lo, hi].
func Within[T constraints.Ordered](lo, hi T) patmat.Pattern {
	return patmat.Meet(func(v T) bool { return lo <= v && v <= hi })
}

// Between matches values strictly between lo and hi, both bounds excluded.
func Between[T constraints.Ordered](lo, hi T) patmat.Pattern {
	return patmat.Meet(func(v T) bool { return lo < v && v < hi })
}

// OneOf matches any of the listed values.
func OneOf[T comparable](values ...T) patmat.Pattern {
	return patmat.Meet(func(v T) bool {
		for _, w := range values {
			if v == w {
				return true
			}
		}
		return false
	})
}
