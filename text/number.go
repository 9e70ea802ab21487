package text

import (
	"strconv"
	"strings"
)

// Number scans a decimal literal and hands the converted value to one of
// two result constructors, depending on whether the literal is a float.
//
// The accepted shape is a run of digits with at most one '.', optionally
// followed by an 'F' suffix that marks the literal as a float. A second
// '.' ends the literal. A trailing '.' still marks the literal as a
// float but is not consumed, so "4.foo" scans as the float 4 and leaves
// ".foo" for the next parser.
//
// Either constructor may reject its input; the rejection is reported as a
// Located error over the consumed literal, suffix included.
type Number[R any] struct {
	float    func(float64, error) (R, error)
	integer  func(int64, error) (R, error)
	expected error
}

// NewNumber configures a number parser. expected is reported, located at
// the cursor, when no literal is found at all.
func NewNumber[R any](float func(float64, error) (R, error), integer func(int64, error) (R, error), expected error) Number[R] {
	return Number[R]{float: float, integer: integer, expected: expected}
}

// Integer accepts integer literals only; float literals fail with
// foundFloat.
func Integer(expected, foundFloat error) Number[int64] {
	return NewNumber(
		func(float64, error) (int64, error) { return 0, foundFloat },
		func(v int64, err error) (int64, error) { return v, err },
		expected,
	)
}

// Float accepts float literals only; integer literals fail with
// foundInteger.
func Float(expected, foundInteger error) Number[float64] {
	return NewNumber(
		func(v float64, err error) (float64, error) { return v, err },
		func(int64, error) (float64, error) { return 0, foundInteger },
		expected,
	)
}

func (n Number[R]) DoParse(state State) (State, R, error) {
	var zero R
	start := state.location

	lit := scanNumber(state)
	if lit.text == "" {
		return state, zero, LocateHere(state, n.expected)
	}
	for i := 0; i < lit.consumed; i++ {
		state.Advance()
	}

	var (
		value R
		err   error
	)
	if lit.float {
		value, err = n.float(strconv.ParseFloat(lit.text, 64))
	} else {
		value, err = n.integer(strconv.ParseInt(lit.text, 10, 64))
	}
	if err != nil {
		return state, zero, Locate(state, start, err)
	}
	return state, value, nil
}

type numberLiteral struct {
	text     string
	float    bool
	consumed int // runes to advance past, suffix included
}

// scanNumber reads ahead on its own copy of the state.
func scanNumber(scan State) numberLiteral {
	var b strings.Builder
	dotFound := false
	suffixed := false

loop:
	for {
		r, ok := scan.Next()
		switch {
		case !ok:
			break loop
		case r == 'F':
			suffixed = true
			break loop
		case r == '.' && !dotFound:
			dotFound = true
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			break loop
		}
	}

	lit := numberLiteral{text: b.String(), float: dotFound || suffixed}
	if strings.HasSuffix(lit.text, ".") {
		// The dot stays unconsumed, and so does an 'F' behind it.
		lit.text = strings.TrimSuffix(lit.text, ".")
		lit.consumed = len(lit.text)
		return lit
	}
	lit.consumed = len(lit.text)
	if suffixed {
		lit.consumed++
	}
	return lit
}
