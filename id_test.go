package patmat_test

import (
	"math"
	"testing"

	"github.com/npillmayer/patmat"
	"github.com/stretchr/testify/assert"
)

func TestValueOnEmptyCellPanics(t *testing.T) {
	var x patmat.Id[int]
	defer func() {
		r := recover()
		if _, ok := r.(*patmat.InvalidIdentifierRead); !ok {
			t.Errorf("expected *InvalidIdentifierRead, got %v", r)
		}
	}()
	x.Value()
}

func TestOwnedCaptureIsMutable(t *testing.T) {
	var x patmat.Id[[2]int]
	// array elements of a by-value scrutinee are copied into the cell
	patmat.Select([2]int{1, 2},
		patmat.Do(&x, func() {
			x.MutableValue()[0] = 11
			assert.Equal(t, [2]int{11, 2}, x.Value())
			moved := x.Move()
			assert.Equal(t, [2]int{11, 2}, moved)
		}),
	)
}

func TestBorrowedCaptureObservesInPlace(t *testing.T) {
	type big struct{ Payload [8]int }
	var cell patmat.Id[big]
	v := big{Payload: [8]int{1, 2, 3, 4, 5, 6, 7, 8}}
	ok := patmat.Select(patmat.Ref(&v),
		patmat.Do(&cell, func() {
			// the capture refers to v's live storage
			v.Payload[0] = 99
			assert.Equal(t, 99, cell.Value().Payload[0])
		}),
	)
	assert.True(t, ok)
}

func TestMutableValueOnBorrowPanics(t *testing.T) {
	type big struct{ Payload [8]int }
	var cell patmat.Id[big]
	v := big{}
	patmat.Select(patmat.Ref(&v),
		patmat.Do(&cell, func() {
			defer func() {
				r := recover()
				if _, ok := r.(*patmat.InvalidIdentifierRead); !ok {
					t.Errorf("expected *InvalidIdentifierRead, got %v", r)
				}
			}()
			cell.MutableValue()
		}),
	)
}

func TestBorrowWithinDestructure(t *testing.T) {
	type item struct{ Tag string }
	var cell patmat.Id[item]
	items := []item{{Tag: "a"}, {Tag: "b"}}
	patmat.Select(items,
		patmat.Do(patmat.Ds(patmat.Any, &cell), func() {
			items[1].Tag = "bb"
			assert.Equal(t, "bb", cell.Value().Tag, "slice elements are captured by reference")
		}),
	)
}

func TestRefRejectsNonPointer(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(*patmat.StructuralError); !ok {
			t.Errorf("expected *StructuralError, got %v", r)
		}
	}()
	patmat.Ref(42)
}

type grade float64

func TestRegisteredEquality(t *testing.T) {
	patmat.RegisterEqual(func(a, b grade) bool {
		return math.Abs(float64(a-b)) < 1e-6
	})
	var x patmat.Id[grade]
	// the re-encounter uses the registered tolerant comparison
	ok := patmat.Select([]grade{1.0, 1.0000001},
		patmat.Do(patmat.Ds(&x, &x), func() {}),
	)
	assert.True(t, ok, "expected tolerant equality for re-encounters")
	ok = patmat.Select([]grade{1.0, 1.1},
		patmat.Do(patmat.Ds(&x, &x), func() {}),
	)
	assert.False(t, ok)
	// literals consult the registry as well
	ok = patmat.Select(grade(2.0000000001),
		patmat.Do(grade(2.0), func() {}),
	)
	assert.True(t, ok)
}

func TestIdAtCombinator(t *testing.T) {
	var x patmat.Id[int]
	// id.At(p) is and_(p, id): match and capture
	got := patmat.MustMatch(4,
		patmat.Of(x.At(patmat.Or(2, 4, 8)), func() int { return x.Value() }),
		patmat.Of(patmat.Any, patmat.Expr(-1)),
	)
	assert.Equal(t, 4, got)
}
