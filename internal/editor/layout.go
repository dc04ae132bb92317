package editor

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// VisualLine is one rendered row: the bytes [Start, End) of the text.
// HardBreak is set when the row was closed by a '\n' (which sits at End and is
// not part of the row), and unset when it was closed because it ran out of width.
type VisualLine struct {
	Start     int
	End       int
	HardBreak bool
}

// Layout is the wrapped view of a text at a given width. It is derived state:
// build a new one after every edit or resize instead of patching an old one.
type Layout struct {
	Text      string
	Width     int
	Lines     []VisualLine
	CursorRow int
	CursorCol int
}

// ComputeLayout wraps text greedily, character by character, into rows of at
// most width cells. There is no word awareness. A character wider than the
// whole row still gets a row of its own. width < 1 disables soft wrapping.
//
// The result always ends with a row starting at the last row boundary, so an
// empty text, a trailing '\n' or a trailing forced wrap all yield a final empty
// row for the cursor to sit on.
func ComputeLayout(text string, width int) Layout {
	l := Layout{Text: text, Width: width}
	lineStart, running := 0, 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\n' {
			l.Lines = append(l.Lines, VisualLine{Start: lineStart, End: i, HardBreak: true})
			i += size
			lineStart, running = i, 0
			continue
		}
		if width < 1 {
			i += size
			continue
		}
		w := cellWidth(r)
		if running > 0 && running+w > width {
			l.Lines = append(l.Lines, VisualLine{Start: lineStart, End: i})
			lineStart, running = i, 0
		}
		running += w
		i += size
		if running >= width {
			l.Lines = append(l.Lines, VisualLine{Start: lineStart, End: i})
			lineStart, running = i, 0
		}
	}
	l.Lines = append(l.Lines, VisualLine{Start: lineStart, End: len(text)})
	return l
}

// WithCursor returns a copy of l with CursorRow and CursorCol set for offset.
func (l Layout) WithCursor(offset int) Layout {
	l.CursorRow, l.CursorCol = l.Locate(offset)
	return l
}

// Locate maps a byte offset to its (row, display column).
//
// An offset equal to a row's End belongs to that row only when the row ends in
// a hard break or is the last row; after a forced wrap it is the first
// character of the next row.
func (l Layout) Locate(offset int) (row, col int) {
	if len(l.Lines) == 0 {
		return 0, 0
	}
	offset = clampRange(offset, 0, len(l.Text))
	last := len(l.Lines) - 1
	for i, ln := range l.Lines {
		if offset < ln.Start {
			break
		}
		if offset < ln.End || (offset == ln.End && (ln.HardBreak || i == last)) {
			return i, textWidth(l.Text[ln.Start:offset])
		}
	}
	ln := l.Lines[last]
	return last, textWidth(l.Text[ln.Start:ln.End])
}

// OffsetAt returns the byte offset on row that is closest to display column col
// without passing it. On a soft-wrapped row the result stays before the row's
// last character so it does not jump onto the next row.
func (l Layout) OffsetAt(row, col int) int {
	if len(l.Lines) == 0 {
		return 0
	}
	row = clampRange(row, 0, len(l.Lines)-1)
	ln := l.Lines[row]
	pos, c := ln.Start, 0
	for pos < ln.End && c < col {
		r, size := utf8.DecodeRuneInString(l.Text[pos:])
		c += cellWidth(r)
		pos += size
	}
	if pos >= ln.End && pos > ln.Start && !ln.HardBreak && row < len(l.Lines)-1 {
		_, size := utf8.DecodeLastRuneInString(l.Text[ln.Start:ln.End])
		pos = ln.End - size
	}
	return pos
}

// cellWidth is the number of terminal cells r occupies. Control characters,
// including '\t', are drawn as a single blank cell.
func cellWidth(r rune) int {
	if isControl(r) {
		return 1
	}
	return runewidth.RuneWidth(r)
}

func textWidth(s string) int {
	w := 0
	for _, r := range s {
		w += cellWidth(r)
	}
	return w
}

func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7f && r < 0xa0)
}

func clampRange(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
