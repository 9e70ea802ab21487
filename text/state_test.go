package text

import (
	"errors"
	"testing"
)

var errTest = errors.New("test error")

func TestStatePeekDoesNotConsume(t *testing.T) {
	s := NewState("héllo")
	for i := 0; i < 2; i++ {
		r, ok := s.Peek()
		if !ok || r != 'h' {
			t.Fatalf("Peek = %q, %v, want 'h', true", r, ok)
		}
	}
	if s.Location() != Start() {
		t.Errorf("Location = %+v, want start", s.Location())
	}
}

func TestStateNextDecodesRunes(t *testing.T) {
	s := NewState("hé")
	want := []rune{'h', 'é'}
	for _, w := range want {
		r, ok := s.Next()
		if !ok || r != w {
			t.Fatalf("Next = %q, %v, want %q, true", r, ok, w)
		}
	}
	if _, ok := s.Next(); ok {
		t.Error("Next at end of input returned a rune")
	}
	if got := s.Location(); got != NewLocation(3, 1, 3) {
		t.Errorf("Location = %+v, want offset 3, row 1, column 3", got)
	}
}

func TestStateAdvance(t *testing.T) {
	input := "a\nbé\r\n"
	want := []Location{
		NewLocation(1, 1, 2), // a
		NewLocation(2, 2, 1), // \n
		NewLocation(3, 2, 2), // b
		NewLocation(5, 2, 3), // é is two bytes
		NewLocation(6, 2, 4), // \r
		NewLocation(7, 3, 1), // \n
		NewLocation(7, 3, 1), // end of input
		NewLocation(7, 3, 1),
	}

	s := NewState(input)
	prev := s.Location()
	for i, w := range want {
		s.Advance()
		got := s.Location()
		if got != w {
			t.Errorf("step %d: Location = %+v, want %+v", i, got, w)
		}
		if got.Before(prev) {
			t.Errorf("step %d: offset went backwards", i)
		}
		if !s.AtEnd() && got.ByteOffset() <= prev.ByteOffset() {
			t.Errorf("step %d: offset did not increase", i)
		}
		prev = got
	}
}

func TestStateCopiesAreIndependent(t *testing.T) {
	s := NewState("abc")
	ahead := s
	ahead.Advance()
	ahead.Advance()

	if s.Location() != Start() {
		t.Errorf("original moved to %+v", s.Location())
	}
	if ahead.Since(s.Location()) != "ab" {
		t.Errorf("Since = %q, want %q", ahead.Since(s.Location()), "ab")
	}
}

func TestLocate(t *testing.T) {
	s := NewState("abc")
	start := s.Location()
	s.Advance()
	s.Advance()

	loc := Locate(s, start, errTest)
	if loc.Range.Start != start || loc.Range.End != NewLocation(2, 1, 3) {
		t.Errorf("Range = %v, want 1:1-1:3", loc.Range)
	}

	here := LocateHere(s, "x")
	if !here.Range.Empty() || here.Range.Start != s.Location() {
		t.Errorf("LocateHere range = %v, want empty at %v", here.Range, s.Location())
	}
}

func TestSpanned(t *testing.T) {
	p := Spanned(Chop(func(r rune) bool { return r == 'a' }))
	got, err := Parse(p, "aab")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Target != "aa" {
		t.Errorf("Target = %q, want %q", got.Target, "aa")
	}
	if got.Range.Start != Start() || got.Range.End != NewLocation(2, 1, 3) {
		t.Errorf("Range = %v, want 1:1-1:3", got.Range)
	}
}
