package text

import (
	"unicode"

	"github.com/dhamidi/parsec/parser"
)

type token struct {
	literal string
	err     error
}

// Token matches literal exactly. On a mismatch or premature end of input
// it fails with err, located from where matching started up to the first
// rune that did not match.
func Token(literal string, err error) parser.Parser[State, string] {
	return token{literal: literal, err: err}
}

func (t token) DoParse(state State) (State, string, error) {
	start := state.location
	for _, want := range t.literal {
		got, ok := state.Peek()
		if !ok || got != want {
			return state, "", Locate(state, start, t.err)
		}
		state.Advance()
	}
	return state, t.literal, nil
}

type chop struct {
	predicate func(rune) bool
}

// Chop consumes the longest prefix whose runes all satisfy predicate and
// returns it. It never fails; the prefix may be empty.
func Chop(predicate func(rune) bool) parser.Parser[State, string] {
	return chop{predicate: predicate}
}

func (c chop) DoParse(state State) (State, string, error) {
	start := state.location
	for {
		r, ok := state.Peek()
		if !ok || !c.predicate(r) {
			break
		}
		state.Advance()
	}
	return state, state.Since(start), nil
}

// Whitespace skips any run of Unicode white space, newlines included.
func Whitespace() parser.Parser[State, string] {
	return Chop(unicode.IsSpace)
}
