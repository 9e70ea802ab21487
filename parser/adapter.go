package parser

type mapped[S, A, B any] struct {
	parser Parser[S, A]
	f      func(A) B
}

// Map transforms the value produced by p. State and errors pass through
// unchanged.
func Map[S, A, B any](p Parser[S, A], f func(A) B) Parser[S, B] {
	return mapped[S, A, B]{parser: p, f: f}
}

func (m mapped[S, A, B]) DoParse(state S) (S, B, error) {
	next, value, err := m.parser.DoParse(state)
	if err != nil {
		var zero B
		return next, zero, err
	}
	return next, m.f(value), nil
}

type mapped2[S, A, B, C any] struct {
	first  Parser[S, A]
	second Parser[S, B]
	f      func(A, B) C
}

// Map2 runs first, then second on the state first produced, and combines
// both values with f. If first fails, second is never run.
func Map2[S, A, B, C any](first Parser[S, A], second Parser[S, B], f func(A, B) C) Parser[S, C] {
	return mapped2[S, A, B, C]{first: first, second: second, f: f}
}

func (m mapped2[S, A, B, C]) DoParse(state S) (S, C, error) {
	var zero C
	afterFirst, a, err := m.first.DoParse(state)
	if err != nil {
		return afterFirst, zero, err
	}
	afterSecond, b, err := m.second.DoParse(afterFirst)
	if err != nil {
		return afterSecond, zero, err
	}
	return afterSecond, m.f(a, b), nil
}

// Keep applies the function produced by fp to the value produced by arg.
// Chained Keeps fill in a curried constructor one argument at a time.
func Keep[S, A, B any](fp Parser[S, func(A) B], arg Parser[S, A]) Parser[S, B] {
	return Map2(fp, arg, func(f func(A) B, a A) B {
		return f(a)
	})
}

// Ignore runs other after p for its effect on the state only and keeps
// p's value.
func Ignore[S, V, I any](p Parser[S, V], other Parser[S, I]) Parser[S, V] {
	return Map2(p, other, func(v V, _ I) V {
		return v
	})
}

type flattened[S, V any] struct {
	outer Parser[S, Parser[S, V]]
}

// Flatten runs the parser produced by outer on the state outer left
// behind.
func Flatten[S, V any](outer Parser[S, Parser[S, V]]) Parser[S, V] {
	return flattened[S, V]{outer: outer}
}

func (f flattened[S, V]) DoParse(state S) (S, V, error) {
	next, inner, err := f.outer.DoParse(state)
	if err != nil {
		var zero V
		return next, zero, err
	}
	return inner.DoParse(next)
}

// FlatMap runs p, builds the next parser from its value with f and runs
// that parser. It lets later parsing depend on earlier results.
func FlatMap[S, A, B any](p Parser[S, A], f func(A) Parser[S, B]) Parser[S, B] {
	return Flatten(Map(p, f))
}
