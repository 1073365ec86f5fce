package patmat

// A Clause pairs a pattern with the action to run when the pattern matches.
type Clause[T any] struct {
	pat    Pattern
	action func() T
}

// Of builds a clause for the expression form of Match. The pattern may be
// any pattern value or a plain value (lifted to a literal).
func Of[T any](pattern interface{}, action func() T) Clause[T] {
	return Clause[T]{pat: lift(pattern), action: action}
}

// OfGuarded builds a clause whose pattern must match and whose guard must
// hold. The guard runs with captures bound, so it may read identifier cells.
func OfGuarded[T any](pattern interface{}, guard func() bool, action func() T) Clause[T] {
	return Clause[T]{pat: When(pattern, guard), action: action}
}

// Match tries the clauses in order against the scrutinee and returns the
// result of the first matching clause's action. If no clause matches, it
// returns ErrNoMatch.
//
// Captured references handed out through identifier cells are valid for the
// duration of the action and no longer; after each clause attempt—match or
// mismatch—every identifier cell the clause references is empty again. If a
// user callable (projection, predicate, guard or action) panics, the panic
// propagates and in-flight captures are rolled back during unwinding.
func Match[T any](value interface{}, clauses ...Clause[T]) (result T, err error) {
	for i := range clauses {
		c := &clauses[i]
		if tryClause(value, c.pat, func() { result = c.action() }) {
			return result, nil
		}
	}
	var zero T
	return zero, ErrNoMatch
}

// MustMatch is the panicking form of Match, for matches that are known to be
// exhaustive.
func MustMatch[T any](value interface{}, clauses ...Clause[T]) T {
	result, err := Match(value, clauses...)
	if err != nil {
		panic(err)
	}
	return result
}

// A StmtClause pairs a pattern with a statement action.
type StmtClause struct {
	pat    Pattern
	action func()
}

// Do builds a clause for the statement form, Select.
func Do(pattern interface{}, action func()) StmtClause {
	return StmtClause{pat: lift(pattern), action: action}
}

// Select is the statement form of Match: it runs the first matching clause's
// action and reports whether any clause matched. Matching nothing is not an
// error.
func Select(value interface{}, clauses ...StmtClause) bool {
	for _, c := range clauses {
		if tryClause(value, c.pat, c.action) {
			return true
		}
	}
	return false
}

// tryClause performs one clause attempt: it allocates a fresh context, runs
// the matcher, executes the action while captures are live, and leaves every
// identifier cell of the pattern empty afterwards. This holds on success, on
// failure, and on a panicking user callable alike.
func tryClause(value interface{}, pat Pattern, action func()) bool {
	ctx := newContext(pat.contextSlots())
	done := false
	defer func() {
		if !done {
			pat.processID(0, idCancel)
		}
	}()
	if !matchPattern(value, pat, 0, ctx) {
		// the matcher has cancelled at depth 0 already
		done = true
		return false
	}
	tracer().Debugf("clause matched, executing action")
	action()
	pat.processID(0, idCancel)
	done = true
	return true
}
