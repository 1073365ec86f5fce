package patmat

import (
	"fmt"
	"reflect"
)

// idProcess is the outcome applied to identifier cells after a node has been
// matched: confirm on success, cancel on failure.
type idProcess int32

const (
	idCancel idProcess = iota
	idConfirm
)

// Pattern is a value describing a shape to match against a scrutinee.
// Patterns are immutable (identifier cells excepted) and compose recursively.
// Clients construct them with Lit, Or, And, Not, Meet, App, Ds, When and the
// sentinels Any and Ooo; plain non-pattern values in pattern position are
// lifted to literals.
type Pattern interface {
	match(value interface{}, depth int32, ctx *context) bool
	processID(depth int32, op idProcess)
	contextSlots() int
	label() string
	children() []Pattern
}

// matchPattern drives a single node: it delegates to the node's match rule
// and then confirms or cancels the identifier cells beneath it. Rollback on
// failure is bounded by depth, which grows by one on every recursive descent.
func matchPattern(value interface{}, p Pattern, depth int32, ctx *context) bool {
	ok := p.match(value, depth, ctx)
	if ok {
		p.processID(depth, idConfirm)
	} else {
		p.processID(depth, idCancel)
	}
	return ok
}

// --- Scrutinee plumbing ----------------------------------------------------

// ref marks an addressable scrutinee location handed down by the matcher
// itself: an element of a destructured container, a projection result
// materialised in the context, or a top-level value wrapped with Ref.
// Identifier cells may borrow through it instead of copying.
type ref struct {
	ptr interface{} // always a non-nil pointer
}

// Ref marks a pointer as an addressable scrutinee. Identifier cells matched
// against it (or against parts of it) will capture by reference, observing
// the pointee in place rather than copying it. The pointee must outlive the
// match actions.
func Ref(ptr interface{}) interface{} {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		structuralPanic("Ref expects a non-nil pointer, got %T", ptr)
	}
	return ref{ptr: ptr}
}

// underlying unwraps a matcher-introduced reference, yielding the plain value
// a pattern should inspect.
func underlying(v interface{}) interface{} {
	if r, ok := v.(ref); ok {
		return reflect.ValueOf(r.ptr).Elem().Interface()
	}
	return v
}

// scrutOf returns the reflect view of a scrutinee, addressable if the value
// came through a ref.
func scrutOf(v interface{}) reflect.Value {
	if r, ok := v.(ref); ok {
		return reflect.ValueOf(r.ptr).Elem()
	}
	return reflect.ValueOf(v)
}

// isScalarKind tells whether values of kind k are cheap to copy and carry no
// interior storage worth borrowing. Scalars are always captured by copy.
func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String, reflect.Ptr, reflect.UnsafePointer, reflect.Chan, reflect.Func:
		return true
	}
	return false
}

func isScalarValue(v interface{}) bool {
	if v == nil {
		return true
	}
	return isScalarKind(reflect.TypeOf(v).Kind())
}

// coerce extracts a T from a scrutinee value, following a matcher-introduced
// reference and at most one pointer indirection.
func coerce[T any](v interface{}) (T, bool) {
	v = underlying(v)
	if t, ok := v.(T); ok {
		return t, true
	}
	var zero T
	if v == nil {
		// a nil scrutinee is a valid T whenever T is an interface type
		ok := reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Interface
		return zero, ok
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && !rv.IsNil() {
		if t, ok := rv.Elem().Interface().(T); ok {
			return t, true
		}
	}
	return zero, false
}

// --- Lifting ---------------------------------------------------------------

// lift turns a value in pattern position into a pattern: patterns pass
// through, anything else becomes a literal.
func lift(v interface{}) Pattern {
	if p, ok := v.(Pattern); ok {
		return p
	}
	return lit{v: v}
}

func liftAll(vs []interface{}) []Pattern {
	ps := make([]Pattern, len(vs))
	for i, v := range vs {
		ps[i] = lift(v)
	}
	return ps
}

func sumSlots(ps []Pattern) int {
	n := 0
	for _, p := range ps {
		n += p.contextSlots()
	}
	return n
}

func processAll(ps []Pattern, depth int32, op idProcess) {
	for _, p := range ps {
		p.processID(depth, op)
	}
}

// --- Wildcard --------------------------------------------------------------

type wildcard struct{}

// Any is the wildcard sentinel: it matches every value and binds nothing.
var Any Pattern = wildcard{}

func (wildcard) match(interface{}, int32, *context) bool { return true }
func (wildcard) processID(int32, idProcess)              {}
func (wildcard) contextSlots() int                       { return 0 }
func (wildcard) label() string                           { return "_" }
func (wildcard) children() []Pattern                     { return nil }

// --- Literal ---------------------------------------------------------------

type lit struct {
	v interface{}
}

// Lit matches values equal to v. Plain values in pattern position are lifted
// to literals implicitly; Lit is needed only to match a value that itself
// implements Pattern.
func Lit(v interface{}) Pattern {
	return lit{v: v}
}

func (l lit) match(value interface{}, _ int32, _ *context) bool {
	return equalValues(l.v, underlying(value))
}

func (l lit) processID(int32, idProcess) {}
func (l lit) contextSlots() int          { return 0 }
func (l lit) label() string              { return fmt.Sprintf("lit(%v)", l.v) }
func (l lit) children() []Pattern        { return nil }

// --- Or --------------------------------------------------------------------

type orPat struct {
	pats []Pattern
}

// Or matches if any alternative matches. Alternatives are tried left to
// right and the first success wins; identifier cells bound by a failed
// alternative are rolled back before the next one runs.
func Or(alternatives ...interface{}) Pattern {
	if len(alternatives) == 0 {
		structuralPanic("Or requires at least one alternative")
	}
	return orPat{pats: liftAll(alternatives)}
}

func (o orPat) match(value interface{}, depth int32, ctx *context) bool {
	for _, p := range o.pats {
		if matchPattern(value, p, depth+1, ctx) {
			return true
		}
	}
	return false
}

func (o orPat) processID(depth int32, op idProcess) { processAll(o.pats, depth, op) }
func (o orPat) contextSlots() int                   { return sumSlots(o.pats) }
func (o orPat) label() string                       { return "or" }
func (o orPat) children() []Pattern                 { return o.pats }

// --- And -------------------------------------------------------------------

type andPat struct {
	pats []Pattern
}

// And matches if all conjuncts match the same value, left to right. The
// conjuncts share identifier cells, so a later conjunct may constrain a
// capture introduced by an earlier one. All conjuncts see the same borrowed
// view of the scrutinee.
func And(conjuncts ...interface{}) Pattern {
	if len(conjuncts) == 0 {
		structuralPanic("And requires at least one conjunct")
	}
	return andPat{pats: liftAll(conjuncts)}
}

func (a andPat) match(value interface{}, depth int32, ctx *context) bool {
	for _, p := range a.pats {
		if !matchPattern(value, p, depth+1, ctx) {
			return false
		}
	}
	return true
}

func (a andPat) processID(depth int32, op idProcess) { processAll(a.pats, depth, op) }
func (a andPat) contextSlots() int                   { return sumSlots(a.pats) }
func (a andPat) label() string                       { return "and" }
func (a andPat) children() []Pattern                 { return a.pats }

// --- Not -------------------------------------------------------------------

type notPat struct {
	pat Pattern
}

// Not matches iff its operand does not. Identifier cells bound beneath a Not
// are always rolled back, whether the node succeeds or fails: captures are
// never observable through a negation.
func Not(p interface{}) Pattern {
	return notPat{pat: lift(p)}
}

func (n notPat) match(value interface{}, depth int32, ctx *context) bool {
	if matchPattern(value, n.pat, depth+1, ctx) {
		n.pat.processID(depth+1, idCancel)
		return false
	}
	return true
}

func (n notPat) processID(depth int32, op idProcess) { n.pat.processID(depth, op) }
func (n notPat) contextSlots() int                   { return n.pat.contextSlots() }
func (n notPat) label() string                       { return "not" }
func (n notPat) children() []Pattern                 { return []Pattern{n.pat} }

// --- Meet ------------------------------------------------------------------

type meetPat struct {
	pred func(interface{}) bool
}

// Meet matches iff the predicate holds for the value. A scrutinee that is not
// a T (nor a *T) fails the pattern without invoking the predicate.
func Meet[T any](pred func(T) bool) Pattern {
	return meetPat{pred: func(v interface{}) bool {
		t, ok := coerce[T](v)
		return ok && pred(t)
	}}
}

func (m meetPat) match(value interface{}, _ int32, _ *context) bool {
	return m.pred(value)
}

func (m meetPat) processID(int32, idProcess) {}
func (m meetPat) contextSlots() int          { return 0 }
func (m meetPat) label() string              { return "meet" }
func (m meetPat) children() []Pattern        { return nil }

// --- App (projection) ------------------------------------------------------

type appPat struct {
	project func(interface{}) (interface{}, bool)
	pat     Pattern
	name    string
}

// App computes f(value) and matches the inner pattern against the result.
// Non-scalar results are temporaries: they are materialised in the match
// context so that nested identifier cells receive a stable reference.
// A scrutinee that is not a T (nor a *T) fails the pattern.
func App[T, U any](f func(T) U, p interface{}) Pattern {
	return appPat{
		project: func(v interface{}) (interface{}, bool) {
			t, ok := coerce[T](v)
			if !ok {
				return nil, false
			}
			return f(t), true
		},
		pat:  lift(p),
		name: "app",
	}
}

// Project is the dynamic variant of App, the extension point for adaptor
// packages: f reports whether the projection applies at all. When it does
// not, the pattern fails.
func Project(f func(interface{}) (interface{}, bool), p interface{}) Pattern {
	return appPat{project: f, pat: lift(p), name: "app"}
}

// As matches iff the value is a T (possibly through an interface or one
// pointer indirection) and the inner pattern matches the downcast result.
func As[T any](p interface{}) Pattern {
	return appPat{
		project: func(v interface{}) (interface{}, bool) {
			t, ok := coerce[T](v)
			if !ok {
				return nil, false
			}
			return t, true
		},
		pat:  lift(p),
		name: fmt.Sprintf("as[%s]", reflect.TypeOf((*T)(nil)).Elem()),
	}
}

func (a appPat) match(value interface{}, depth int32, ctx *context) bool {
	r, ok := a.project(underlying(value))
	if !ok {
		return false
	}
	if isScalarValue(r) {
		return matchPattern(r, a.pat, depth+1, ctx)
	}
	ptr := ctx.emplaceBack(r)
	return matchPattern(ref{ptr: ptr}, a.pat, depth+1, ctx)
}

func (a appPat) processID(depth int32, op idProcess) { a.pat.processID(depth, op) }
func (a appPat) contextSlots() int                   { return 1 + a.pat.contextSlots() }
func (a appPat) label() string                       { return a.name }
func (a appPat) children() []Pattern                 { return []Pattern{a.pat} }

// --- Post-guard ------------------------------------------------------------

type guardPat struct {
	pat  Pattern
	pred func() bool
}

// When matches the pattern and then requires the guard to hold. The guard
// runs with the pattern's captures bound, so it may read identifier cells;
// if it vetoes, the bindings are rolled back by the enclosing failure
// handling.
func When(p interface{}, guard func() bool) Pattern {
	return guardPat{pat: lift(p), pred: guard}
}

func (g guardPat) match(value interface{}, depth int32, ctx *context) bool {
	return matchPattern(value, g.pat, depth+1, ctx) && g.pred()
}

func (g guardPat) processID(depth int32, op idProcess) { g.pat.processID(depth, op) }
func (g guardPat) contextSlots() int                   { return g.pat.contextSlots() }
func (g guardPat) label() string                       { return "when" }
func (g guardPat) children() []Pattern                 { return []Pattern{g.pat} }
