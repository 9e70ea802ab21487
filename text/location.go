package text

import "fmt"

// Location is a cursor position in the input. Ordering is defined by the
// byte offset alone; row and column are for presentation.
type Location struct {
	offset int
	row    int
	column int
}

// Start is the location of the first byte of any input.
func Start() Location {
	return Location{offset: 0, row: 1, column: 1}
}

// NewLocation creates a location from a byte offset and a 1-based row and
// column.
func NewLocation(offset, row, column int) Location {
	return Location{offset: offset, row: row, column: column}
}

// NewLine returns the location after a newline that is size bytes long.
func (l Location) NewLine(size int) Location {
	return Location{offset: l.offset + size, row: l.row + 1, column: 1}
}

// Increment returns the location after any other rune that is size bytes
// long.
func (l Location) Increment(size int) Location {
	return Location{offset: l.offset + size, row: l.row, column: l.column + 1}
}

// ByteOffset is the 0-based offset into the input, in bytes.
func (l Location) ByteOffset() int {
	return l.offset
}

// Row is the 1-based line number.
func (l Location) Row() int {
	return l.row
}

// Column is the 1-based position within the row, in runes.
func (l Location) Column() int {
	return l.column
}

// Compare returns -1, 0 or +1 depending on whether l is before, at, or
// after other.
func (l Location) Compare(other Location) int {
	switch {
	case l.offset < other.offset:
		return -1
	case l.offset > other.offset:
		return 1
	default:
		return 0
	}
}

func (l Location) Before(other Location) bool {
	return l.offset < other.offset
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.row, l.column)
}

// Range is the half-open source range [Start, End).
type Range struct {
	Start Location
	End   Location
}

// Empty reports whether the range covers no input.
func (r Range) Empty() bool {
	return r.Start.offset == r.End.offset
}

// Len is the number of bytes covered.
func (r Range) Len() int {
	return r.End.offset - r.Start.offset
}

// Contains reports whether loc falls inside r. An empty range contains
// its own start.
func (r Range) Contains(loc Location) bool {
	if r.Empty() {
		return loc.offset == r.Start.offset
	}
	return loc.offset >= r.Start.offset && loc.offset < r.End.offset
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Located pairs a value with the source range it was produced from.
//
// Located values satisfy the error interface so that a located failure
// travels through ordinary error returns; Unwrap exposes Target when it
// is itself an error.
type Located[T any] struct {
	Range  Range
	Target T
}

func (l Located[T]) Error() string {
	return fmt.Sprintf("%s: %v", l.Range.Start, l.Target)
}

func (l Located[T]) Unwrap() error {
	err, _ := any(l.Target).(error)
	return err
}
