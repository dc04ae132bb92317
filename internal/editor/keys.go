package editor

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

const (
	actionMoveForward = "move_forward"
	actionMoveBack    = "move_back"
	actionMoveUp      = "move_up"
	actionMoveDown    = "move_down"
	actionMoveStart   = "move_start"
	actionMoveEnd     = "move_end"
	actionSelectAll   = "select_all"
	actionBackspace   = "backspace"
	actionDelete      = "delete"
	actionNewline     = "newline"
)

var motionActions = map[string]Motion{
	actionMoveForward: MoveForward,
	actionMoveBack:    MoveBack,
	actionMoveUp:      MoveUp,
	actionMoveDown:    MoveDown,
	actionMoveStart:   MoveStart,
	actionMoveEnd:     MoveEnd,
}

// keyString names a key event for keymap lookup. Shift is not part of the
// name: it is reported separately and turns motions into selection extension.
func keyString(ev *tcell.EventKey) string {
	mods := ev.Modifiers()
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if mods&tcell.ModCtrl != 0 {
			return "ctrl+" + strings.ToLower(string(r))
		}
		if mods&tcell.ModAlt != 0 {
			return "alt+" + string(r)
		}
		return ""
	}
	// Enter, Backspace and Tab share codes with Ctrl+M, Ctrl+H and Ctrl+I.
	switch ev.Key() {
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyEscape:
		return "esc"
	}
	if name := ctrlKeyName(ev.Key()); name != "" {
		return name
	}
	prefix := ""
	if mods&tcell.ModCtrl != 0 {
		prefix = "ctrl+"
	}
	switch ev.Key() {
	case tcell.KeyUp:
		return prefix + "up"
	case tcell.KeyDown:
		return prefix + "down"
	case tcell.KeyLeft:
		return prefix + "left"
	case tcell.KeyRight:
		return prefix + "right"
	case tcell.KeyHome:
		return prefix + "home"
	case tcell.KeyEnd:
		return prefix + "end"
	case tcell.KeyPgUp:
		return prefix + "pgup"
	case tcell.KeyPgDn:
		return prefix + "pgdn"
	case tcell.KeyDelete:
		return prefix + "del"
	}
	return ""
}

// KeyString is keyString for hosts that bind their own shortcuts next to the
// editor's, so both sides agree on key names.
func KeyString(ev *tcell.EventKey) string {
	return keyString(ev)
}

func ctrlKeyName(key tcell.Key) string {
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+int(key-tcell.KeyCtrlA)))
	}
	return ""
}
