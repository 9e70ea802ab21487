// Package text specialises package parser to parsing strings.
//
// State walks an immutable input string one UTF-8 scalar at a time and
// keeps the byte offset, row and column of the cursor. Every primitive in
// this package reports failures as Located errors, so a diagnostic can
// point at the exact source range that failed:
//
//	plus := text.Token("+", errExpectedPlus)
//	_, err := text.Parse(plus, "-")
//
//	var loc text.Located[error]
//	if errors.As(err, &loc) {
//	    fmt.Println(loc.Range) // 1:1-1:1
//	}
//
// Rows and columns start at 1 and columns count runes, not bytes.
package text
