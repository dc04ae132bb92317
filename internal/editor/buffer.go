package editor

import (
	"slices"
	"unicode/utf8"
)

// Buffer holds the text of one edit session as UTF-8 bytes.
// Positions are byte offsets. Every position handed to a mutation is clamped
// to [0, Len()] and snapped back to the start of the character it points into,
// so the buffer never ends up holding a split character.
type Buffer struct {
	data []byte
}

func (b *Buffer) Len() int {
	return len(b.data)
}

func (b *Buffer) String() string {
	return string(b.data)
}

// Set replaces the whole contents.
func (b *Buffer) Set(text string) {
	b.data = append(b.data[:0], text...)
}

func (b *Buffer) Clear() {
	b.data = b.data[:0]
}

// InsertRune inserts r at pos and returns the offset just after it.
func (b *Buffer) InsertRune(pos int, r rune) int {
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	pos = b.boundary(pos)
	b.data = slices.Insert(b.data, pos, enc[:n]...)
	return pos + n
}

// InsertString inserts s at pos and returns the offset just after it.
func (b *Buffer) InsertString(pos int, s string) int {
	pos = b.boundary(pos)
	if s == "" {
		return pos
	}
	b.data = slices.Insert(b.data, pos, []byte(s)...)
	return pos + len(s)
}

// DeleteRange removes [start, end). An empty or inverted range is a no-op.
func (b *Buffer) DeleteRange(start, end int) {
	start, end = b.span(start, end)
	if start == end {
		return
	}
	b.data = slices.Delete(b.data, start, end)
}

// NextBoundary returns the offset of the character after the one at pos,
// or Len() when pos is already at the end.
func (b *Buffer) NextBoundary(pos int) int {
	pos = b.boundary(pos)
	if pos >= len(b.data) {
		return len(b.data)
	}
	_, size := utf8.DecodeRune(b.data[pos:])
	return pos + size
}

// PrevBoundary returns the offset of the character before pos, or 0.
func (b *Buffer) PrevBoundary(pos int) int {
	pos = b.boundary(pos)
	if pos <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRune(b.data[:pos])
	return pos - size
}

func (b *Buffer) boundary(pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(b.data) {
		return len(b.data)
	}
	for pos > 0 && !utf8.RuneStart(b.data[pos]) {
		pos--
	}
	return pos
}

func (b *Buffer) span(start, end int) (int, int) {
	start = b.boundary(start)
	end = b.boundary(end)
	if end < start {
		end = start
	}
	return start, end
}
