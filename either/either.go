package either

// Either is a sum of two alternatives, the stand-in for
//
//	type Either a b = Left a | Right b
//
// By convention Left carries the exceptional alternative and Right the
// regular one.
type Either[L, R any] interface {
	IsLeft() bool
	get() (interface{}, interface{}, bool)
}

type either[L, R any] struct {
	left  L
	right R
	isL   bool
}

func Left[L, R any](l L) Either[L, R] {
	return either[L, R]{left: l, isL: true}
}

func Right[L, R any](r R) Either[L, R] {
	return either[L, R]{right: r}
}

func (e either[L, R]) IsLeft() bool {
	return e.isL
}

func (e either[L, R]) get() (interface{}, interface{}, bool) {
	return e.left, e.right, e.isL
}

// Fold collapses an Either by applying the matching branch.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	l, r, isL := e.get()
	if isL {
		return onLeft(l.(L))
	}
	return onRight(r.(R))
}

// MapRight transforms the Right alternative, leaving a Left untouched.
func MapRight[L, R, S any](f func(R) S, e Either[L, R]) Either[L, S] {
	l, r, isL := e.get()
	if isL {
		return Left[L, S](l.(L))
	}
	return Right[L, S](f(r.(R)))
}
