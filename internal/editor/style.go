package editor

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/cardedit/internal/config"
)

// Styles are the three cell styles the renderer draws with.
type Styles struct {
	Normal   tcell.Style
	Cursor   tcell.Style
	Selected tcell.Style
}

// NewStyles builds editor styles from a theme. Unset or unparsable colors
// fall back to sensible terminal defaults.
func NewStyles(theme config.Theme) Styles {
	fg := ParseColor(theme.Foreground, tcell.ColorWhite)
	bg := ParseColor(theme.Background, tcell.ColorBlack)
	cursorFg := ParseColor(theme.CursorForeground, bg)
	cursorBg := ParseColor(theme.CursorBackground, fg)
	selectionFg := ParseColor(theme.SelectionForeground, fg)
	selectionBg := ParseColor(theme.SelectionBackground, tcell.ColorGray)
	return Styles{
		Normal:   tcell.StyleDefault.Foreground(fg).Background(bg),
		Cursor:   tcell.StyleDefault.Foreground(cursorFg).Background(cursorBg),
		Selected: tcell.StyleDefault.Foreground(selectionFg).Background(selectionBg),
	}
}

// ParseColor accepts "#rrggbb", "default" or a tcell color name.
func ParseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
