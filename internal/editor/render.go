package editor

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rect is a region of the terminal grid, in cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// CellWriter is the part of a frame buffer the renderer needs. tcell.Screen
// satisfies it.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Frame is everything needed to draw one editor view. Building a Frame is the
// only step that moves the scroll offset; drawing it is read-only.
type Frame struct {
	Layout   Layout
	Scroll   int
	Height   int
	Cursor   int
	SelStart int
	SelEnd   int
	Styles   Styles
}

// VisibleLines returns the rows inside the scroll window.
func (f Frame) VisibleLines() []VisualLine {
	start := clampRange(f.Scroll, 0, len(f.Layout.Lines))
	end := len(f.Layout.Lines)
	if f.Height >= 0 && start+f.Height < end {
		end = start + f.Height
	}
	return f.Layout.Lines[start:end]
}

// CursorPosition returns the cell the cursor is drawn in, relative to the
// top-left of the drawing area.
func (f Frame) CursorPosition() (x, y int, visible bool) {
	y = f.Layout.CursorRow - f.Scroll
	visible = y >= 0 && y < f.Height
	return f.Layout.CursorCol, y, visible
}

// Draw writes the frame into area of dst. Every cell of area is written.
func (f Frame) Draw(dst CellWriter, area Rect) {
	if area.Width <= 0 || area.Height <= 0 {
		return
	}
	lines := f.VisibleLines()
	right := area.X + area.Width
	for y := 0; y < area.Height; y++ {
		row := area.Y + y
		x := area.X
		if y < len(lines) {
			x = f.drawLine(dst, lines[y], f.Scroll+y, area.X, right, row)
		}
		for ; x < right; x++ {
			dst.SetContent(x, row, ' ', nil, f.Styles.Normal)
		}
	}
}

type cell struct {
	x         int
	primary   rune
	combining []rune
	style     tcell.Style
}

func (f Frame) drawLine(dst CellWriter, ln VisualLine, rowIdx, left, right, y int) int {
	x := left
	var pending *cell
	flush := func() {
		if pending != nil {
			dst.SetContent(pending.x, y, pending.primary, pending.combining, pending.style)
			pending = nil
		}
	}
	text := f.Layout.Text
	for pos := ln.Start; pos < ln.End; {
		r, size := utf8.DecodeRuneInString(text[pos:])
		w := cellWidth(r)
		if w == 0 && pending != nil {
			pending.combining = append(pending.combining, r)
			if pos == f.Cursor {
				pending.style = f.Styles.Cursor
			}
			pos += size
			continue
		}
		flush()
		if w < 1 {
			w = 1
		}
		if x+w > right {
			// too wide for the rest of the row: one blank cell in its style
			if x < right {
				dst.SetContent(x, y, ' ', nil, f.styleAt(pos))
				x++
			}
			return x
		}
		glyph := r
		if isControl(r) {
			glyph = ' '
		}
		pending = &cell{x: x, primary: glyph, style: f.styleAt(pos)}
		x += w
		pos += size
	}
	flush()
	if x >= right {
		return x
	}
	switch {
	case f.Cursor == ln.End && f.Layout.CursorRow == rowIdx:
		dst.SetContent(x, y, ' ', nil, f.Styles.Cursor)
		x++
	case ln.HardBreak && f.selected(ln.End):
		dst.SetContent(x, y, ' ', nil, f.Styles.Selected)
		x++
	}
	return x
}

func (f Frame) styleAt(pos int) tcell.Style {
	if pos == f.Cursor {
		return f.Styles.Cursor
	}
	if f.selected(pos) {
		return f.Styles.Selected
	}
	return f.Styles.Normal
}

// selected uses the same half-open range [SelStart, SelEnd) that deletion
// removes, so what is highlighted is exactly what a delete or an insert
// replaces.
func (f Frame) selected(pos int) bool {
	return pos >= f.SelStart && pos < f.SelEnd
}
