package editor

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/cardedit/internal/config"
)

// Editor is a single edit session: a text buffer, a cursor with an optional
// selection and a scroll position. Layout is never stored; it is rebuilt from
// the buffer and the last known width whenever it is needed.
//
// An Editor is not safe for concurrent use. It expects events to be delivered
// one at a time by the host's event loop.
type Editor struct {
	buf    Buffer
	cursor Cursor
	scroll Scroll
	width  int
	keymap map[string]string
	styles Styles

	// actionHook, when set, observes every keymap action executed.
	actionHook func(action string)
}

func New(cfg config.Config) *Editor {
	keymap := make(map[string]string, len(cfg.Keymap))
	for k, v := range cfg.Keymap {
		keymap[k] = v
	}
	return &Editor{
		keymap: keymap,
		styles: NewStyles(cfg.Theme),
	}
}

// Contents returns the current text.
func (e *Editor) Contents() string {
	return e.buf.String()
}

// Load replaces the text and puts the cursor at the start.
func (e *Editor) Load(text string) {
	e.buf.Set(strings.ToValidUTF8(text, "\uFFFD"))
	e.cursor = Cursor{}
	e.scroll = Scroll{}
}

// Clear resets the editor to an empty session.
func (e *Editor) Clear() {
	e.buf.Clear()
	e.cursor = Cursor{}
	e.scroll = Scroll{}
}

// Cursor returns the cursor and selection state.
func (e *Editor) Cursor() Cursor {
	return e.cursor
}

// Resize records the size of the area the editor is drawn into and scrolls
// the cursor back into view. Vertical movement wraps at this width until the
// next resize or render.
func (e *Editor) Resize(width, height int) {
	e.width = width
	e.scroll.Follow(e.Layout().CursorRow, height)
}

// Layout wraps the current text at the current width and locates the cursor.
func (e *Editor) Layout() Layout {
	return ComputeLayout(e.buf.String(), e.width).WithCursor(e.cursor.Offset)
}

// Frame resizes the editor to width x height, scrolls just enough to keep the
// cursor in view and returns the resulting frame.
func (e *Editor) Frame(width, height int) Frame {
	e.width = width
	l := e.Layout()
	e.scroll.Follow(l.CursorRow, height)
	f := Frame{
		Layout: l,
		Scroll: e.scroll.Offset,
		Height: height,
		Cursor: e.cursor.Offset,
		Styles: e.styles,
	}
	if start, end, ok := e.cursor.Selection(); ok {
		f.SelStart, f.SelEnd = start, end
	}
	return f
}

// Render draws the editor into area of dst and returns the frame it drew.
func (e *Editor) Render(dst CellWriter, area Rect) Frame {
	f := e.Frame(area.Width, area.Height)
	f.Draw(dst, area)
	return f
}

// InsertRune types r at the cursor, replacing the selection if there is one.
func (e *Editor) InsertRune(r rune) {
	e.deleteSelection()
	e.cursor.Offset = e.buf.InsertRune(e.cursor.Offset, r)
}

// Paste inserts s at the cursor, replacing the selection if there is one.
func (e *Editor) Paste(s string) {
	s = strings.ToValidUTF8(s, "\uFFFD")
	if s == "" {
		return
	}
	e.deleteSelection()
	e.cursor.Offset = e.buf.InsertString(e.cursor.Offset, s)
}

// DeleteBack removes the selection, or the character before the cursor.
func (e *Editor) DeleteBack() {
	if e.deleteSelection() {
		return
	}
	prev := e.buf.PrevBoundary(e.cursor.Offset)
	e.buf.DeleteRange(prev, e.cursor.Offset)
	e.cursor.Offset = prev
}

// DeleteForward removes the selection, or the character under the cursor.
func (e *Editor) DeleteForward() {
	if e.deleteSelection() {
		return
	}
	e.buf.DeleteRange(e.cursor.Offset, e.buf.NextBoundary(e.cursor.Offset))
}

// SelectAll selects the whole text with the cursor at its end.
func (e *Editor) SelectAll() {
	e.cursor.selectRange(0, e.buf.Len())
}

// Move moves the cursor. With extend set the move grows or shrinks the
// selection; without it any selection is dropped.
func (e *Editor) Move(m Motion, extend bool) {
	if extend {
		e.cursor.anchor()
	} else {
		e.cursor.clearSelection()
	}
	switch m {
	case MoveForward:
		e.cursor.Offset = e.buf.NextBoundary(e.cursor.Offset)
	case MoveBack:
		e.cursor.Offset = e.buf.PrevBoundary(e.cursor.Offset)
	case MoveUp:
		l := e.Layout()
		if l.CursorRow == 0 {
			e.cursor.Offset = 0
		} else {
			e.cursor.Offset = l.OffsetAt(l.CursorRow-1, l.CursorCol)
		}
	case MoveDown:
		l := e.Layout()
		if l.CursorRow >= len(l.Lines)-1 {
			e.cursor.Offset = e.buf.Len()
		} else {
			e.cursor.Offset = l.OffsetAt(l.CursorRow+1, l.CursorCol)
		}
	case MoveStart:
		e.cursor.Offset = 0
	case MoveEnd:
		e.cursor.Offset = e.buf.Len()
	}
	e.cursor.collapse()
}

// HandleKey applies a key event and reports whether the editor consumed it.
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	extend := ev.Modifiers()&tcell.ModShift != 0
	if key := keyString(ev); key != "" {
		if action, ok := e.keymap[key]; ok {
			return e.execAction(action, extend)
		}
		return false
	}
	if ev.Key() == tcell.KeyRune {
		e.InsertRune(ev.Rune())
		return true
	}
	return false
}

func (e *Editor) execAction(action string, extend bool) bool {
	if e.actionHook != nil {
		e.actionHook(action)
	}
	if m, ok := motionActions[action]; ok {
		e.Move(m, extend)
		return true
	}
	switch action {
	case actionSelectAll:
		e.SelectAll()
	case actionBackspace:
		e.DeleteBack()
	case actionDelete:
		e.DeleteForward()
	case actionNewline:
		e.InsertRune('\n')
	default:
		return false
	}
	return true
}

// deleteSelection removes the selected text, leaves the cursor where it
// started and reports whether anything was selected.
func (e *Editor) deleteSelection() bool {
	start, end, ok := e.cursor.Selection()
	e.cursor.clearSelection()
	if !ok {
		return false
	}
	e.buf.DeleteRange(start, end)
	e.cursor.Offset = start
	return true
}
