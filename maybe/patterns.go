package maybe

import (
	"reflect"

	"github.com/npillmayer/patmat"
)

// Pattern adaptors: Some and None make option-like values matchable.
// They work on Maybe values and on plain pointers (pointer-like options).

// optional is satisfied by maybe[T] for every T.
type optional interface {
	getAny() (interface{}, bool)
}

// Some matches a Maybe holding a value, or a non-nil pointer, and matches
// the inner pattern against the contained (dereferenced) value.
//
//	var id patmat.Id[int]
//	maybe.Some(&id)          // capture the payload
func Some(p interface{}) patmat.Pattern {
	return patmat.Project(unwrap, p)
}

// None matches an empty Maybe or a nil pointer.
var None patmat.Pattern = patmat.Meet(func(v interface{}) bool {
	if o, ok := v.(optional); ok {
		_, defined := o.getAny()
		return !defined
	}
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
})

func unwrap(v interface{}) (interface{}, bool) {
	if o, ok := v.(optional); ok {
		return o.getAny()
	}
	if v == nil {
		return nil, false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Elem().Interface(), true
	}
	return nil, false
}
