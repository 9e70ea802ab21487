// Package calc implements a tiny sum language on top of package text:
// a document is a whitespace separated list of sums such as "2 + 4".
package calc

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/dhamidi/parsec/parser"
	"github.com/dhamidi/parsec/text"
)

var (
	ErrExpectedInteger = errors.WithHint(
		errors.New("expected integer"),
		"both sides of a sum are whole numbers, e.g. 2 + 4",
	)
	ErrFoundFloat = errors.WithHint(
		errors.New("found float, expected integer"),
		"drop the fractional part or the F suffix",
	)
	ErrExpectedPlus = errors.WithHint(
		errors.New(`expected "+"`),
		"separate the two operands with a plus sign",
	)
	ErrIntegerRange = errors.New("integer out of range")
	ErrSumRange     = errors.WithHint(
		errors.New("sum out of range"),
		"the total must fit in a signed 64-bit integer",
	)
)

// Sum is a parsed "lhs + rhs" expression.
type Sum struct {
	Lhs int64 `json:"lhs"`
	Rhs int64 `json:"rhs"`
}

// Total is exact for every Sum produced by this package's parsers, which
// reject sums that do not fit in an int64. Hand-built sums may wrap.
func (s Sum) Total() int64 {
	return s.Lhs + s.Rhs
}

// Overflows reports whether Total wraps around.
func (s Sum) Overflows() bool {
	t := s.Lhs + s.Rhs
	return (s.Lhs > 0 && s.Rhs > 0 && t < 0) || (s.Lhs < 0 && s.Rhs < 0 && t >= 0)
}

func (s Sum) String() string {
	return fmt.Sprintf("%d + %d", s.Lhs, s.Rhs)
}

var sumParser = newSumParser()

// SumParser returns the parser for a single sum. It is safe for
// concurrent use.
func SumParser() parser.Parser[text.State, Sum] {
	return sumParser
}

func operand() parser.Parser[text.State, int64] {
	return text.NewNumber(
		func(float64, error) (int64, error) {
			return 0, ErrFoundFloat
		},
		func(v int64, err error) (int64, error) {
			if err != nil {
				return 0, errors.WithSecondaryError(ErrIntegerRange, err)
			}
			return v, nil
		},
		ErrExpectedInteger,
	)
}

func newSumParser() parser.Parser[text.State, Sum] {
	number := operand()
	ws := text.Whitespace()
	plus := text.Token("+", ErrExpectedPlus)

	newSum := parser.Succeed[text.State](func(lhs int64) func(int64) Sum {
		return func(rhs int64) Sum {
			return Sum{Lhs: lhs, Rhs: rhs}
		}
	})

	p := parser.Keep(newSum, number)
	p = parser.Ignore(p, ws)
	p = parser.Ignore(p, plus)
	p = parser.Ignore(p, ws)
	return inRange{inner: parser.Keep(p, number)}
}

// inRange fails with ErrSumRange, located over the whole sum, when the
// total of a parsed sum does not fit in an int64.
type inRange struct {
	inner parser.Parser[text.State, Sum]
}

func (p inRange) DoParse(state text.State) (text.State, Sum, error) {
	start := state.Location()
	next, sum, err := p.inner.DoParse(state)
	if err != nil {
		return next, Sum{}, err
	}
	if sum.Overflows() {
		return next, Sum{}, text.Locate(next, start, ErrSumRange)
	}
	return next, sum, nil
}

// ParseSum parses the sum at the start of input. Anything after it is
// ignored.
func ParseSum(input string) (Sum, error) {
	return text.Parse(sumParser, input)
}

// ParseDocument parses every sum in input. Locations in the result and
// in errors are relative to the whole document. Parsing stops at the
// first error; the sums parsed before it are returned alongside.
func ParseDocument(input string) ([]text.Located[Sum], error) {
	sum := text.Spanned(sumParser)
	ws := text.Whitespace()

	state, _, _ := ws.DoParse(text.NewState(input))
	var sums []text.Located[Sum]
	for !state.AtEnd() {
		next, located, err := sum.DoParse(state)
		if err != nil {
			return sums, err
		}
		sums = append(sums, located)
		state, _, _ = ws.DoParse(next)
	}
	return sums, nil
}
