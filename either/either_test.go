package either_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/patmat"
	"github.com/npillmayer/patmat/either"
)

func TestEitherFold(t *testing.T) {
	one := either.Left[int, string](1)
	s := either.Fold(one, strconv.Itoa, func(s string) string { return s })
	if s != "1" {
		t.Errorf("expected folded Left(1) to be \"1\", is %q", s)
	}
	hello := either.Right[int, string]("hello")
	s = either.Fold(hello, strconv.Itoa, func(s string) string { return s })
	if s != "hello" {
		t.Errorf("expected folded Right to be \"hello\", is %q", s)
	}
}

func TestEitherPatterns(t *testing.T) {
	var n patmat.Id[int]
	var s patmat.Id[string]
	describe := func(e either.Either[int, string]) string {
		return patmat.MustMatch(e,
			patmat.Of(either.LeftWith(&n), func() string { return "#" + strconv.Itoa(n.Value()) }),
			patmat.Of(either.RightWith(&s), func() string { return s.Value() }),
		)
	}
	if got := describe(either.Left[int, string](7)); got != "#7" {
		t.Errorf("expected Left(7) to describe as #7, got %q", got)
	}
	if got := describe(either.Right[int, string]("seven")); got != "seven" {
		t.Errorf("expected Right to describe as seven, got %q", got)
	}
}

func TestEitherMapRight(t *testing.T) {
	e := either.Right[error, int](21)
	doubled := either.MapRight(func(n int) int { return 2 * n }, e)
	got := either.Fold(doubled, func(error) int { return -1 }, func(n int) int { return n })
	if got != 42 {
		t.Errorf("expected mapped Right to hold 42, is %d", got)
	}
}
