package text

import (
	"errors"
	"testing"

	"github.com/dhamidi/parsec/parser"
)

type addition struct {
	lhs int64
	rhs int64
}

var errExpectedPlus = errors.New(`expected "+"`)

func additionParser() parser.Parser[State, addition] {
	var number parser.Parser[State, int64] = Integer(errExpectedInteger, errExpectedInteger)

	ctor := parser.Succeed[State](func(lhs int64) func(int64) addition {
		return func(rhs int64) addition { return addition{lhs: lhs, rhs: rhs} }
	})
	withLhs := parser.Keep(ctor, number)
	withPlus := parser.Ignore(parser.Ignore(parser.Ignore(withLhs, Whitespace()), Token("+", errExpectedPlus)), Whitespace())
	return parser.Keep(withPlus, number)
}

func TestSimpleAddition(t *testing.T) {
	p := additionParser()

	tests := []struct {
		input string
		want  addition
	}{
		{"2 + 4", addition{2, 4}},
		{"34 + 35", addition{34, 35}},
		{"1+2", addition{1, 2}},
		{"1\n+\n2", addition{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(p, tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSimpleAdditionMissingOperand(t *testing.T) {
	_, err := Parse(additionParser(), "34 +")

	var loc Located[error]
	if !errors.As(err, &loc) {
		t.Fatalf("err = %v, want Located error", err)
	}
	if !errors.Is(err, errExpectedInteger) {
		t.Errorf("err = %v, want %v", err, errExpectedInteger)
	}
	want := NewLocation(4, 1, 5)
	if loc.Range.Start != want || loc.Range.End != want {
		t.Errorf("Range = %+v, want empty range at %+v", loc.Range, want)
	}
}

func TestSimpleAdditionMissingPlus(t *testing.T) {
	_, err := Parse(additionParser(), "3 - 4")

	var loc Located[error]
	if !errors.As(err, &loc) {
		t.Fatalf("err = %v, want Located error", err)
	}
	if !errors.Is(err, errExpectedPlus) {
		t.Errorf("err = %v, want %v", err, errExpectedPlus)
	}
	if loc.Range.Start != NewLocation(2, 1, 3) || !loc.Range.Empty() {
		t.Errorf("Range = %v, want empty range at 1:3", loc.Range)
	}
}
