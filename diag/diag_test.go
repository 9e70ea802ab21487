package diag

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/parsec/calc"
	"github.com/dhamidi/parsec/text"
)

func render(t *testing.T, source string, d Diagnostic) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, source, d, Options{}))
	return buf.String()
}

func TestFromError(t *testing.T) {
	_, err := calc.ParseSum("34 +")
	require.Error(t, err)

	d := FromError("sum.txt", err)
	assert.True(t, d.Located)
	assert.Equal(t, "expected integer", d.Message)
	assert.Equal(t, text.NewLocation(4, 1, 5), d.Range.Start)
	assert.Equal(t, "sum.txt:1:5: expected integer", d.String())
	assert.NotEmpty(t, d.Hints)
}

func TestFromErrorWithoutLocation(t *testing.T) {
	d := FromError("", errors.New("boom"))
	assert.False(t, d.Located)
	assert.Equal(t, "boom", d.String())
}

func TestRenderZeroWidth(t *testing.T) {
	source := "34 +"
	_, err := calc.ParseSum(source)

	got := render(t, source, FromError("sum.txt", err))
	want := "error: sum.txt:1:5: expected integer\n" +
		"   1 | 34 +\n" +
		"     |     ^\n" +
		"hint: both sides of a sum are whole numbers, e.g. 2 + 4\n"
	assert.Equal(t, want, got)
}

func TestRenderUnderlinesRange(t *testing.T) {
	source := "1 + 2\n7 + 1.5F\n"
	_, err := calc.ParseDocument(source)
	require.Error(t, err)

	got := render(t, source, FromError("", err))
	want := "error: 2:5: found float, expected integer\n" +
		"   2 | 7 + 1.5F\n" +
		"     |     ^~~~\n" +
		"hint: drop the fractional part or the F suffix\n"
	assert.Equal(t, want, got)
}

func TestRenderKeepsTabs(t *testing.T) {
	source := "\t1 -"
	_, err := calc.ParseSum(source)
	require.Error(t, err)

	// calc.ParseSum does not skip leading white space.
	d := FromError("", err)
	assert.Equal(t, 0, d.Range.Start.ByteOffset())

	d.Range = text.Range{Start: text.NewLocation(3, 1, 4), End: text.NewLocation(4, 1, 5)}
	d.Hints = nil
	got := render(t, source, d)
	assert.Equal(t, "error: 1:4: expected integer\n   1 | \t1 -\n     | \t  ^\n", got)
}

func TestRenderUnlocated(t *testing.T) {
	got := render(t, "", Diagnostic{Filename: "a.sum", Message: "read failed"})
	assert.Equal(t, "error: a.sum: read failed\n", got)
}

func TestExcerptClipsToLine(t *testing.T) {
	source := "ab\ncd"
	r := text.Range{Start: text.NewLocation(1, 1, 2), End: text.NewLocation(5, 2, 3)}
	line, prefix, width := excerpt(source, r)
	assert.Equal(t, "ab", line)
	assert.Equal(t, " ", prefix)
	assert.Equal(t, 1, width)
}
