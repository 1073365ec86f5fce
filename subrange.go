package patmat

import (
	"fmt"
	"reflect"
)

// Subrange is the non-owning view captured by a binding splice: a window
// over the elements a splice consumed. For slice scrutinees it aliases the
// source storage and stays valid for the source's lifetime; for array
// scrutinees that are not addressable the window is materialised into the
// match context instead.
type Subrange struct {
	seq reflect.Value // a slice over the source (or context) storage
}

func subrangeOf(seq reflect.Value) Subrange {
	return Subrange{seq: seq}
}

// Size returns the number of elements in the view.
func (s Subrange) Size() int {
	if !s.seq.IsValid() {
		return 0
	}
	return s.seq.Len()
}

// At returns the i-th element of the view.
func (s Subrange) At(i int) interface{} {
	return s.seq.Index(i).Interface()
}

// Values materialises the view as a fresh []interface{}. The underlying
// elements are only copied here, on demand.
func (s Subrange) Values() []interface{} {
	vs := make([]interface{}, s.Size())
	for i := range vs {
		vs[i] = s.seq.Index(i).Interface()
	}
	return vs
}

// Interface returns the view as its typed slice, e.g. []int for a splice
// over an []int or [N]int scrutinee.
func (s Subrange) Interface() interface{} {
	if !s.seq.IsValid() {
		return nil
	}
	return s.seq.Interface()
}

func (s Subrange) String() string {
	if !s.seq.IsValid() {
		return "subrange[]"
	}
	return fmt.Sprintf("subrange%v", s.seq.Interface())
}

// EqualValue compares the view elementwise against another Subrange, or
// against a plain slice or array.
func (s Subrange) EqualValue(other interface{}) bool {
	o := reflect.ValueOf(underlying(other))
	if o.IsValid() && o.Type() == reflect.TypeOf(s) {
		o = o.Interface().(Subrange).seq
	}
	if !o.IsValid() {
		return s.Size() == 0
	}
	if k := o.Kind(); k != reflect.Slice && k != reflect.Array {
		return false
	}
	if o.Len() != s.Size() {
		return false
	}
	for i := 0; i < o.Len(); i++ {
		if !reflect.DeepEqual(s.seq.Index(i).Interface(), o.Index(i).Interface()) {
			return false
		}
	}
	return true
}
