package lsp

import (
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/parsec/text"
)

// LSP positions count UTF-16 code units from the start of a zero-based
// line, text.Location counts runes from a one-based row.

func toPosition(source string, loc text.Location) protocol.Position {
	offset := min(loc.ByteOffset(), len(source))
	lineStart := strings.LastIndexByte(source[:offset], '\n') + 1

	var character int
	for _, r := range source[lineStart:offset] {
		character += utf16Len(r)
	}
	return protocol.Position{
		Line:      protocol.UInteger(loc.Row() - 1),
		Character: protocol.UInteger(character),
	}
}

func toRange(source string, r text.Range) protocol.Range {
	return protocol.Range{
		Start: toPosition(source, r.Start),
		End:   toPosition(source, r.End),
	}
}

// offsetAt maps an LSP position back to a byte offset. Positions past
// the end of a line clamp to the line end.
func offsetAt(source string, pos protocol.Position) int {
	lineStart := 0
	for line := protocol.UInteger(0); line < pos.Line; line++ {
		i := strings.IndexByte(source[lineStart:], '\n')
		if i < 0 {
			return len(source)
		}
		lineStart += i + 1
	}

	var units protocol.UInteger
	for i, r := range source[lineStart:] {
		if r == '\n' || units >= pos.Character {
			return lineStart + i
		}
		units += protocol.UInteger(utf16Len(r))
	}
	return len(source)
}

func utf16Len(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
