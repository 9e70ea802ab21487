package parser

// Parser maps a state to an advanced state and a value, or fails.
type Parser[S, V any] interface {
	DoParse(state S) (S, V, error)
}

// Func adapts an ordinary function to the Parser interface.
type Func[S, V any] func(state S) (S, V, error)

func (f Func[S, V]) DoParse(state S) (S, V, error) {
	return f(state)
}

// Run runs p from state and drops the final state.
func Run[S, V any](p Parser[S, V], state S) (V, error) {
	_, value, err := p.DoParse(state)
	if err != nil {
		var zero V
		return zero, err
	}
	return value, nil
}

type succeed[S, V any] struct {
	value V
}

// Succeed returns a parser that always yields value and leaves the state
// untouched.
func Succeed[S, V any](value V) Parser[S, V] {
	return succeed[S, V]{value: value}
}

func (p succeed[S, V]) DoParse(state S) (S, V, error) {
	return state, p.value, nil
}
