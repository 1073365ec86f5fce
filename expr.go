package patmat

// Expr wraps a constant into the nullary action form clauses expect:
//
//	patmat.Of(maybe.None, patmat.Expr(0))
func Expr[T any](a T) func() T {
	return func() T {
		return a
	}
}
