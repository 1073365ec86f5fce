package patmat

import (
	"fmt"
	"reflect"
)

type cellState int32

const (
	cellEmpty cellState = iota
	cellOwned
	cellBorrowed
)

// Id is an identifier cell: the capturing pattern. Declare a cell in the
// scope enclosing the match and use a pointer to it in pattern position:
//
//	var x patmat.Id[int]
//	patmat.Of(patmat.Ds(1, &x), func() int { return x.Value() })
//
// On first encounter an empty cell captures the value; on re-encounter
// within the same clause it matches iff the new value equals the captured
// one (per the type's registered equality). After the clause finishes,
// match or no match, the cell is empty again: captures are only readable
// from within the clause's action and guard.
//
// Never copy an Id; pass the same pointer everywhere.
type Id[T any] struct {
	state    cellState
	owned    T
	borrowed *T
	depth    int32
}

// --- Capture storage -------------------------------------------------------

// matchValue implements the capture-or-compare rule. Addressable non-scalar
// inputs are captured by reference, observing the scrutinee in place;
// scalars and temporaries are captured by copy.
func (id *Id[T]) matchValue(v interface{}) bool {
	if id.state != cellEmpty {
		t, ok := coerce[T](v)
		return ok && equalValues(interface{}(id.read()), interface{}(t))
	}
	if r, ok := v.(ref); ok && !scalarCell[T]() {
		if p, ok := r.ptr.(*T); ok {
			id.borrowed = p
			id.state = cellBorrowed
			return true
		}
	}
	t, ok := coerce[T](v)
	if !ok {
		return false
	}
	id.owned = t
	id.state = cellOwned
	return true
}

func (id *Id[T]) read() T {
	if id.state == cellBorrowed {
		return *id.borrowed
	}
	return id.owned
}

func scalarCell[T any]() bool {
	return isScalarKind(reflect.TypeOf((*T)(nil)).Elem().Kind())
}

// reset clears the cell if it was bound at the given depth or deeper.
func (id *Id[T]) reset(depth int32) {
	if id.depth >= depth {
		var zero T
		id.owned = zero
		id.borrowed = nil
		id.state = cellEmpty
		id.depth = depth
	}
}

// confirm records that the binding survived up to the given depth, so that
// it outlives rollbacks happening at deeper levels.
func (id *Id[T]) confirm(depth int32) {
	if id.depth > depth || id.depth == 0 {
		id.depth = depth
	}
}

// --- Reading captures ------------------------------------------------------

// IsBound tells whether the cell currently holds a capture.
func (id *Id[T]) IsBound() bool {
	return id.state != cellEmpty
}

// Value returns the captured value. It panics with *InvalidIdentifierRead if
// the cell is empty. For a borrowed capture the returned value is read from
// the scrutinee's live storage.
func (id *Id[T]) Value() T {
	if id.state == cellEmpty {
		panic(&InvalidIdentifierRead{Op: "Value on empty identifier cell"})
	}
	return id.read()
}

// MutableValue returns a pointer to an owned capture. It panics with
// *InvalidIdentifierRead if the cell is empty or holds a borrowed reference
// (a borrow cannot produce an owned mutable reference).
func (id *Id[T]) MutableValue() *T {
	switch id.state {
	case cellEmpty:
		panic(&InvalidIdentifierRead{Op: "MutableValue on empty identifier cell"})
	case cellBorrowed:
		panic(&InvalidIdentifierRead{Op: "MutableValue on borrowed identifier cell"})
	}
	return &id.owned
}

// Move returns a copy of the owned captured value, for transferring
// ownership inside an action; the cell stays bound until the clause ends.
// Same restrictions as MutableValue.
func (id *Id[T]) Move() T {
	return *id.MutableValue()
}

// --- Combinators -----------------------------------------------------------

// At combines capturing with further matching: id.At(p) is And(p, id), i.e.
// the value must match p and is captured into the cell. As a special case,
// id.At(Ooo) on an Id[Subrange] cell yields a binding splice for use inside
// a destructure.
func (id *Id[T]) At(p interface{}) Pattern {
	if _, ok := p.(oooPat); ok {
		sid, ok := interface{}(id).(*Id[Subrange])
		if !ok {
			structuralPanic("binding splice requires an Id[Subrange] cell, have Id[%s]",
				reflect.TypeOf((*T)(nil)).Elem())
		}
		return oooBinder{id: sid}
	}
	return And(p, id)
}

// --- Pattern ---------------------------------------------------------------

func (id *Id[T]) match(value interface{}, _ int32, _ *context) bool {
	return id.matchValue(value)
}

func (id *Id[T]) processID(depth int32, op idProcess) {
	switch op {
	case idCancel:
		id.reset(depth)
	case idConfirm:
		id.confirm(depth)
	}
}

func (id *Id[T]) contextSlots() int { return 0 }

func (id *Id[T]) label() string {
	return fmt.Sprintf("id[%s]", reflect.TypeOf((*T)(nil)).Elem())
}

func (id *Id[T]) children() []Pattern { return nil }
