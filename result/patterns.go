package result

import (
	"github.com/npillmayer/patmat"
)

// Pattern adaptors: OkWith and ErrWith make Result values matchable.

// resultLike is satisfied by result[T] for every T.
type resultLike interface {
	getAny() (interface{}, error)
}

// OkWith matches a successful Result and matches the inner pattern against
// the contained value.
func OkWith(p interface{}) patmat.Pattern {
	return patmat.Project(func(v interface{}) (interface{}, bool) {
		if r, ok := v.(resultLike); ok {
			if value, err := r.getAny(); err == nil {
				return value, true
			}
		}
		return nil, false
	}, p)
}

// ErrWith matches a failed Result and matches the inner pattern against the
// error.
func ErrWith(p interface{}) patmat.Pattern {
	return patmat.Project(func(v interface{}) (interface{}, bool) {
		if r, ok := v.(resultLike); ok {
			if _, err := r.getAny(); err != nil {
				return err, true
			}
		}
		return nil, false
	}, p)
}
