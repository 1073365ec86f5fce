package patmat

import "reflect"

// context is the scratch buffer of one clause attempt. It holds the
// intermediate values produced by projections and by binding splices, so
// that nested patterns receive stable references. The buffer is append-only;
// elements are never dropped mid-match, the whole context is discarded when
// the clause attempt ends.
type context struct {
	mem []interface{}
}

// newContext allocates a context with room for the given number of slots.
// The capacity is computed up front from the pattern tree (one slot per
// projection plus one per binding splice), so matching never reallocates.
func newContext(slots int) *context {
	if slots == 0 {
		return &context{}
	}
	return &context{mem: make([]interface{}, 0, slots)}
}

// emplaceBack stores a copy of v with a stable address and returns a typed
// pointer (*T as interface{}) to the stored copy.
func (ctx *context) emplaceBack(v interface{}) interface{} {
	p := reflect.New(reflect.TypeOf(v))
	p.Elem().Set(reflect.ValueOf(v))
	ctx.mem = append(ctx.mem, p.Interface())
	return p.Interface()
}
