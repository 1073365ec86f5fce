/*
Package patmat brings expressive, nestable pattern matching to Go.

Go's native selection constructs—switch statements—are limited to equality
tests and type dispatch. This package provides a value-level DSL of composable
patterns: wildcards, literals, capturing identifiers, disjunction, conjunction,
negation, predicates, projections, destructuring with variadic splices, and
post-guards. A match expression tries a sequence of pattern → action clauses
in order; the first matching clause binds any captured sub-values and produces
a result.

	var id patmat.Id[int]
	sq, err := patmat.Match(maybeFive,
		patmat.Of(maybe.Some(&id), func() int { return id.Value() * id.Value() }),
		patmat.Of(maybe.None, patmat.Expr(0)),
	)

Patterns compose recursively and succeed or fail atomically: whenever a
candidate clause is abandoned, every identifier cell it touched is rolled
back. Captured sub-values stay valid for the duration of the clause's action.

Destructuring covers tuple-like scrutinees (structs and fixed-size arrays)
as well as iterable ones (slices). A destructure may contain at most one
variadic splice (Ooo), which consumes the surplus elements; a binding splice
additionally captures the spliced subrange as a non-owning view into the
scrutinee.

The matcher is strictly synchronous. A single match invocation is not safe
for concurrent use, but independent matches over disjoint identifier cells
may run in parallel.

Status

Work in progress.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package patmat

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patmat'.
func tracer() tracing.Trace {
	return tracing.Select("patmat")
}
