package either

import (
	"github.com/npillmayer/patmat"
)

// Pattern adaptors: LeftWith and RightWith make Either values matchable.

// eitherLike is satisfied by either[L,R] for all L, R.
type eitherLike interface {
	get() (interface{}, interface{}, bool)
}

// LeftWith matches a Left and matches the inner pattern against its payload.
func LeftWith(p interface{}) patmat.Pattern {
	return patmat.Project(func(v interface{}) (interface{}, bool) {
		if e, ok := v.(eitherLike); ok {
			if l, _, isL := e.get(); isL {
				return l, true
			}
		}
		return nil, false
	}, p)
}

// RightWith matches a Right and matches the inner pattern against its
// payload.
func RightWith(p interface{}) patmat.Pattern {
	return patmat.Project(func(v interface{}) (interface{}, bool) {
		if e, ok := v.(eitherLike); ok {
			if _, r, isL := e.get(); !isL {
				return r, true
			}
		}
		return nil, false
	}, p)
}
