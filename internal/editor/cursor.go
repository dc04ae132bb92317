package editor

// Motion is a cursor movement request.
type Motion int

const (
	MoveForward Motion = iota
	MoveBack
	MoveUp
	MoveDown
	MoveStart
	MoveEnd
)

// Cursor is the live insertion point plus an optional selection anchor.
// Offset is the moving end of a selection, Anchor the fixed one. The pair is
// kept unordered so shifted movement keeps extending from the right end.
type Cursor struct {
	Offset   int
	Anchor   int
	anchored bool
}

// Anchored reports whether an anchor is set, even if it currently equals Offset.
func (c Cursor) Anchored() bool {
	return c.anchored
}

// HasSelection reports whether a non-empty selection exists.
func (c Cursor) HasSelection() bool {
	return c.anchored && c.Anchor != c.Offset
}

// Selection returns the normalized selected range [start, end).
func (c Cursor) Selection() (start, end int, ok bool) {
	if !c.HasSelection() {
		return 0, 0, false
	}
	if c.Anchor < c.Offset {
		return c.Anchor, c.Offset, true
	}
	return c.Offset, c.Anchor, true
}

func (c *Cursor) anchor() {
	if !c.anchored {
		c.Anchor = c.Offset
		c.anchored = true
	}
}

func (c *Cursor) clearSelection() {
	c.Anchor = 0
	c.anchored = false
}

// collapse drops an anchor that has caught up with the cursor.
func (c *Cursor) collapse() {
	if c.anchored && c.Anchor == c.Offset {
		c.clearSelection()
	}
}

func (c *Cursor) selectRange(anchor, offset int) {
	c.Anchor = anchor
	c.Offset = offset
	c.anchored = true
	c.collapse()
}
