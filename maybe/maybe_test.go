package maybe_test

import (
	"testing"

	"github.com/npillmayer/patmat"
	. "github.com/npillmayer/patmat/maybe"
)

func square(t Maybe[int]) int {
	var id patmat.Id[int]
	return patmat.MustMatch(t,
		patmat.Of(Some(&id), func() int { return id.Value() * id.Value() }),
		patmat.Of(None, patmat.Expr(0)),
	)
}

func TestSomeNone(t *testing.T) {
	if sq := square(Just(5)); sq != 25 {
		t.Errorf("expected square of Just(5) to be 25, is %d", sq)
	}
	if sq := square(Nothing[int]()); sq != 0 {
		t.Errorf("expected square of Nothing to be 0, is %d", sq)
	}
}

func TestPointerOption(t *testing.T) {
	var id patmat.Id[int]
	seven := 7
	clauses := func(v interface{}) string {
		return patmat.MustMatch(v,
			patmat.Of(Some(&id), patmat.Expr("some")),
			patmat.Of(None, patmat.Expr("none")),
		)
	}
	if got := clauses(&seven); got != "some" {
		t.Errorf("expected non-nil pointer to match Some, got %q", got)
	}
	if got := clauses((*int)(nil)); got != "none" {
		t.Errorf("expected nil pointer to match None, got %q", got)
	}
}

func TestWithDefault(t *testing.T) {
	x := Just(7)
	y := Nothing[int]()
	if x.WithDefault(0) != 7 {
		t.Errorf("expected Just(7) with default to be 7")
	}
	if y.WithDefault(42) != 42 {
		t.Errorf("expected Nothing with default to be 42")
	}
}

func TestAndThen(t *testing.T) {
	half := func(n int) Maybe[int] {
		if n%2 == 0 {
			return Just(n / 2)
		}
		return Nothing[int]()
	}
	if v := AndThen(half, Just(8)).WithDefault(-1); v != 4 {
		t.Errorf("expected Just(8) andThen half to be 4, is %d", v)
	}
	if v := AndThen(half, Just(7)).WithDefault(-1); v != -1 {
		t.Errorf("expected Just(7) andThen half to be Nothing")
	}
}

func TestMap(t *testing.T) {
	x := Just(7)
	y := Map(func(n int) string {
		if n == 7 {
			return "seven"
		}
		return "?"
	}, x)
	if v := y.WithDefault(""); v != "seven" {
		t.Errorf("expected mapped maybe to hold \"seven\", is %q", v)
	}
}
