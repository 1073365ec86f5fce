package patmat

import (
	"reflect"
)

// --- Splice sentinels ------------------------------------------------------

type oooPat struct{}

// Ooo is the variadic splice sentinel. Inside a destructure it consumes the
// surplus elements without binding them; a destructure may hold at most one
// splice.
var Ooo Pattern = oooPat{}

func (oooPat) match(interface{}, int32, *context) bool { return true }
func (oooPat) processID(int32, idProcess)              {}
func (oooPat) contextSlots() int                       { return 0 }
func (oooPat) label() string                           { return "ooo" }
func (oooPat) children() []Pattern                     { return nil }

type oooBinder struct {
	id *Id[Subrange]
}

// OooBind is the binding splice: like Ooo, but the consumed subrange is
// captured into the cell. Equivalent to id.At(Ooo). Binding splices are
// legal on iterable scrutinees and on arrays (uniform tuples); on any other
// tuple-like scrutinee they are a structural error.
func OooBind(id *Id[Subrange]) Pattern {
	return oooBinder{id: id}
}

func (b oooBinder) match(value interface{}, depth int32, ctx *context) bool {
	return matchPattern(value, b.id, depth+1, ctx)
}

func (b oooBinder) processID(depth int32, op idProcess) { b.id.processID(depth, op) }
func (b oooBinder) contextSlots() int                   { return 1 }
func (b oooBinder) label() string                       { return "ooo*" }
func (b oooBinder) children() []Pattern                 { return []Pattern{b.id} }

// --- Destructure -----------------------------------------------------------

type dsPat struct {
	pats   []Pattern
	splice int // index of the splice among pats, -1 when absent
	binder bool
}

// Ds destructures a tuple-like scrutinee (a struct with its exported fields,
// or a fixed-size array) or an iterable one (a slice). Without a splice the
// arity must equal the number of sub-patterns; with one, the splice consumes
// the surplus elements:
//
//	patmat.Ds(10, patmat.Ooo, 50)       // first 10, last 50, anything between
//	patmat.Ds(10, tail.At(patmat.Ooo))  // capture everything after the 10
//
// More than one splice in a destructure is a structural error, detected at
// construction time. Arity mismatches are plain mismatches, not errors.
func Ds(elements ...interface{}) Pattern {
	pats := liftAll(elements)
	splice, binder := -1, false
	for i, p := range pats {
		isBinder := false
		switch p.(type) {
		case oooPat:
		case oooBinder:
			isBinder = true
		default:
			continue
		}
		if splice >= 0 {
			structuralPanic("destructure holds more than one splice")
		}
		splice, binder = i, isBinder
	}
	return dsPat{pats: pats, splice: splice, binder: binder}
}

func (d dsPat) match(value interface{}, depth int32, ctx *context) bool {
	if sub, ok := underlying(value).(Subrange); ok {
		// a captured subrange destructures like the sequence it views
		if !sub.seq.IsValid() {
			return d.matchSeq(reflect.ValueOf([]interface{}{}), depth, ctx)
		}
		return d.matchSeq(sub.seq, depth, ctx)
	}
	rv := scrutOf(value)
	if rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Struct:
		return d.matchTuple(exportedFields(rv), depth, ctx)
	case reflect.Array, reflect.Slice:
		return d.matchSeq(rv, depth, ctx)
	}
	return false
}

// matchTuple destructures a struct. Structs are non-uniform tuples, so a
// binding splice cannot materialise a subrange over them.
func (d dsPat) matchTuple(fields []reflect.Value, depth int32, ctx *context) bool {
	if d.binder {
		structuralPanic("binding splice on a non-array tuple scrutinee")
	}
	valLen, patLen := len(fields), len(d.pats)
	if d.splice < 0 {
		if valLen != patLen {
			return false
		}
		for i, p := range d.pats {
			if !matchPattern(elemArg(fields[i]), p, depth+1, ctx) {
				return false
			}
		}
		return true
	}
	if valLen < patLen-1 {
		return false
	}
	k := d.splice
	for i := 0; i < k; i++ {
		if !matchPattern(elemArg(fields[i]), d.pats[i], depth+1, ctx) {
			return false
		}
	}
	for j := k + 1; j < patLen; j++ {
		if !matchPattern(elemArg(fields[valLen-patLen+j]), d.pats[j], depth+1, ctx) {
			return false
		}
	}
	return true
}

// matchSeq destructures an array or slice.
func (d dsPat) matchSeq(rv reflect.Value, depth int32, ctx *context) bool {
	valLen, patLen := rv.Len(), len(d.pats)
	if d.splice < 0 {
		if valLen != patLen {
			return false
		}
		for i, p := range d.pats {
			if !matchPattern(elemArg(rv.Index(i)), p, depth+1, ctx) {
				return false
			}
		}
		return true
	}
	if valLen < patLen-1 {
		return false
	}
	k := d.splice
	width := valLen - (patLen - 1)
	tracer().Debugf("destructure splice at %d consumes %d of %d elements", k, width, valLen)
	for i := 0; i < k; i++ {
		if !matchPattern(elemArg(rv.Index(i)), d.pats[i], depth+1, ctx) {
			return false
		}
	}
	if d.binder {
		sub := makeSubrange(rv, k, k+width)
		ptr := ctx.emplaceBack(sub)
		if !matchPattern(ref{ptr: ptr}, d.pats[k], depth+1, ctx) {
			return false
		}
	}
	for j := k + 1; j < patLen; j++ {
		if !matchPattern(elemArg(rv.Index(valLen-patLen+j)), d.pats[j], depth+1, ctx) {
			return false
		}
	}
	return true
}

func (d dsPat) processID(depth int32, op idProcess) { processAll(d.pats, depth, op) }
func (d dsPat) contextSlots() int                   { return sumSlots(d.pats) }
func (d dsPat) label() string                       { return "ds" }
func (d dsPat) children() []Pattern                 { return d.pats }

// --- Element plumbing ------------------------------------------------------

// elemArg prepares a container element for a sub-pattern: addressable
// non-scalar elements travel as references so that identifier cells can
// borrow them in place.
func elemArg(ev reflect.Value) interface{} {
	if ev.CanAddr() && !isScalarKind(ev.Kind()) {
		return ref{ptr: ev.Addr().Interface()}
	}
	return ev.Interface()
}

func exportedFields(rv reflect.Value) []reflect.Value {
	t := rv.Type()
	fields := make([]reflect.Value, 0, rv.NumField())
	for i := 0; i < rv.NumField(); i++ {
		if t.Field(i).IsExported() {
			fields = append(fields, rv.Field(i))
		}
	}
	return fields
}

// makeSubrange builds the view a binding splice captures. Slices (and
// addressable arrays) are windowed in place; a non-addressable array is
// copied once, the copy being owned by the match context.
func makeSubrange(rv reflect.Value, lo, hi int) Subrange {
	if rv.Kind() == reflect.Slice || rv.CanAddr() {
		return subrangeOf(rv.Slice(lo, hi))
	}
	n := hi - lo
	ns := reflect.MakeSlice(reflect.SliceOf(rv.Type().Elem()), n, n)
	for i := 0; i < n; i++ {
		ns.Index(i).Set(rv.Index(lo + i))
	}
	return subrangeOf(ns)
}
