package text

import (
	"unicode/utf8"

	"github.com/dhamidi/parsec/parser"
)

// State is a cursor over an immutable input. Copying a State is cheap:
// the input string is shared, only the cursor is copied, so parsers can
// scan ahead on a copy and throw it away.
type State struct {
	input    string
	location Location
}

// NewState returns a state positioned at the start of input.
func NewState(input string) State {
	return State{input: input, location: Start()}
}

// Location returns the position of the cursor.
func (s State) Location() Location {
	return s.location
}

// Input returns the whole input, independent of the cursor.
func (s State) Input() string {
	return s.input
}

// AtEnd reports whether the whole input has been consumed.
func (s State) AtEnd() bool {
	return s.location.offset >= len(s.input)
}

// Since returns the input between start and the cursor.
func (s State) Since(start Location) string {
	return s.input[start.offset:s.location.offset]
}

// Peek returns the next rune without consuming it.
func (s State) Peek() (rune, bool) {
	r, _, ok := s.peek()
	return r, ok
}

func (s State) peek() (rune, int, bool) {
	if s.AtEnd() {
		return 0, 0, false
	}
	r, size := utf8.DecodeRuneInString(s.input[s.location.offset:])
	return r, size, true
}

// Next consumes and returns the next rune.
func (s *State) Next() (rune, bool) {
	r, size, ok := s.peek()
	if ok {
		s.step(r, size)
	}
	return r, ok
}

// Advance moves the cursor past the next rune. At the end of the input
// it does nothing.
func (s *State) Advance() {
	if r, size, ok := s.peek(); ok {
		s.step(r, size)
	}
}

func (s *State) step(r rune, size int) {
	if r == '\n' {
		s.location = s.location.NewLine(size)
	} else {
		s.location = s.location.Increment(size)
	}
}

// Locate wraps target with the range from start to the cursor of s.
func Locate[T any](s State, start Location, target T) Located[T] {
	return Located[T]{
		Range:  Range{Start: start, End: s.location},
		Target: target,
	}
}

// LocateHere wraps target with an empty range at the cursor of s.
func LocateHere[T any](s State, target T) Located[T] {
	return Locate(s, s.location, target)
}

// Parse runs p over input from the start location and returns its value.
func Parse[V any](p parser.Parser[State, V], input string) (V, error) {
	return parser.Run(p, NewState(input))
}

type spanned[V any] struct {
	inner parser.Parser[State, V]
}

// Spanned records the range consumed by p alongside its value.
func Spanned[V any](p parser.Parser[State, V]) parser.Parser[State, Located[V]] {
	return spanned[V]{inner: p}
}

func (p spanned[V]) DoParse(state State) (State, Located[V], error) {
	start := state.location
	next, value, err := p.inner.DoParse(state)
	if err != nil {
		return next, Located[V]{}, err
	}
	return next, Locate(next, start, value), nil
}
