// Package parser provides a small algebra for building parsers by
// composing smaller parsers.
//
// # Overview
//
// A parser consumes a state and either produces an advanced state plus a
// value, or fails with an error:
//
//	type Parser[S, V any] interface {
//	    DoParse(state S) (S, V, error)
//	}
//
// The package is independent of what a state is. Package text supplies a
// state that walks a string and tracks row and column for diagnostics.
//
// # Composition
//
// Parsers are built once and reused. Every adapter returns a new parser
// without running anything:
//
//	Map(p, f)         transform the value of p
//	Map2(p, q, f)     run p then q, combine both values with f
//	Keep(fp, arg)     apply the function produced by fp to arg's value
//	Ignore(p, q)      run p then q, keep p's value
//	Flatten(pp)       run the parser produced by pp
//	FlatMap(p, f)     run p, build the next parser from its value, run it
//
// Go methods cannot declare their own type parameters, so the adapters
// are package-level functions rather than methods on Parser.
//
// A typical chain seeds a curried constructor with Succeed and fills in
// one field per Keep:
//
//	pair := parser.Succeed[text.State](func(a int64) func(int64) Pair {
//	    return func(b int64) Pair { return Pair{a, b} }
//	})
//	withFirst := parser.Keep(pair, number)
//	withSep := parser.Ignore(withFirst, comma)
//	full := parser.Keep(withSep, number)
//
// # Errors
//
// Failure short-circuits: the first failing sub-parser aborts the whole
// composite and its error is returned unchanged. There is no alternation
// and no backtracking. When DoParse returns a non-nil error the returned
// state carries no meaning and must be discarded by the caller.
package parser
