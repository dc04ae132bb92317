package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kobzarvs/cardedit/internal/config"
	"github.com/kobzarvs/cardedit/internal/editor"
	"github.com/kobzarvs/cardedit/internal/logger"
	"github.com/kobzarvs/cardedit/internal/store"
)

// Options select what the app opens with.
type Options struct {
	// CardID opens an existing card for editing. Empty starts a new card.
	CardID string
	// Review starts on the review page instead of a new card.
	Review bool
	Debug  bool
}

// App is the top-level runtime for cardedit.
type App struct {
	opts Options
}

func New(opts Options) *App {
	return &App{opts: opts}
}

func (a *App) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(a.opts.Debug); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	dir, err := cfg.DataDir()
	if err != nil {
		return err
	}
	st, err := store.Open(dir)
	if err != nil {
		return err
	}
	v, err := newView(cfg, st, a.opts.CardID)
	if err != nil {
		return err
	}
	if a.opts.Review && a.opts.CardID == "" {
		v.enterReview()
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	s.EnablePaste()

	logger.Info("session opened", "route", v.route.String(), "card", v.card.ID)
	v.resize(s.Size())
	v.render(s)
	for {
		ev := s.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
		case *tcell.EventPaste:
			v.handlePaste(ev)
		case *tcell.EventResize:
			s.Sync()
			v.resize(ev.Size())
		}
		if v.pasting {
			continue
		}
		v.render(s)
	}
}

type route int

const (
	routeAddCard route = iota
	routeEditCard
	routeReview
)

func (r route) String() string {
	switch r {
	case routeEditCard:
		return "edit"
	case routeReview:
		return "review"
	}
	return "add"
}

type shortcut struct {
	key  string
	name string
}

type cardStore interface {
	New(content string) (store.Card, error)
	Get(id string) (store.Card, error)
	Put(c store.Card) (store.Card, error)
	Delete(id string) error
	List(ctx context.Context) ([]store.Card, error)
}

type styles struct {
	main   tcell.Style
	header tcell.Style
	label  tcell.Style
	status tcell.Style
	text   editor.Styles
}

// view is the screen the user sees: the current route, the editor session
// for the add and edit routes, the review queue and the chrome around them.
type view struct {
	cfg    config.Config
	store  cardStore
	ed     *editor.Editor
	route  route
	card   store.Card
	status string
	styles styles

	// back is set when the edit route was opened from the review page;
	// leaving it returns there instead of quitting.
	back bool
	// draft keeps the add route's text while the review page is shown.
	draft  string
	review review

	pasting bool
	paste   strings.Builder
}

func newView(cfg config.Config, st cardStore, cardID string) (*view, error) {
	bg := editor.ParseColor(cfg.Theme.Background, tcell.ColorBlack)
	fg := editor.ParseColor(cfg.Theme.Foreground, tcell.ColorWhite)
	v := &view{
		cfg:   cfg,
		store: st,
		ed:    editor.New(cfg),
		route: routeAddCard,
		styles: styles{
			main: tcell.StyleDefault.Foreground(fg).Background(bg),
			header: tcell.StyleDefault.
				Foreground(editor.ParseColor(cfg.Theme.HeaderForeground, fg)).
				Background(editor.ParseColor(cfg.Theme.HeaderBackground, bg)),
			label:  tcell.StyleDefault.Foreground(editor.ParseColor(cfg.Theme.LabelForeground, fg)).Background(bg),
			status: tcell.StyleDefault.Foreground(editor.ParseColor(cfg.Theme.StatusForeground, fg)).Background(bg),
			text:   editor.NewStyles(cfg.Theme),
		},
	}
	if cardID != "" {
		card, err := st.Get(cardID)
		if err != nil {
			return nil, err
		}
		v.openCard(card, false)
	}
	return v, nil
}

func (v *view) title() string {
	switch v.route {
	case routeEditCard:
		return "Edit Card"
	case routeReview:
		return "Review"
	}
	return "Add Card"
}

func (v *view) shortcuts() []shortcut {
	switch v.route {
	case routeEditCard:
		return []shortcut{{"ctrl+s", "save"}, {"esc", "cancel"}}
	case routeReview:
		if _, ok := v.review.current(); !ok {
			return []shortcut{{"tab", "add"}, {"esc", "quit"}}
		}
		sc := []shortcut{{"up/down", "scroll"}, {"e", "edit"}, {"del", "delete"}}
		if len(v.review.queue) > 1 {
			sc = append(sc, shortcut{"right", "skip"})
		}
		return append(sc, shortcut{"tab", "add"}, shortcut{"esc", "quit"})
	}
	return []shortcut{{"ctrl+s", "add"}, {"tab", "review"}, {"esc", "quit"}}
}

func (v *view) openCard(card store.Card, back bool) {
	v.card = card
	v.route = routeEditCard
	v.back = back
	v.ed.Load(card.Content)
}

func (v *view) enterAdd() {
	v.route = routeAddCard
	v.card = store.Card{}
	v.back = false
	v.ed.Load(v.draft)
	v.ed.Move(editor.MoveEnd, false)
	v.draft = ""
}

// enterReview reloads the review queue from the store.
func (v *view) enterReview() {
	cards, err := v.store.List(context.Background())
	if err != nil {
		logger.Warn("list cards", "error", err)
		if len(cards) == 0 {
			v.status = err.Error()
		}
	}
	v.route = routeReview
	v.card = store.Card{}
	v.back = false
	v.review = newReview(cards)
}

// resize tells the editor the size of the body area for a w x h screen.
func (v *view) resize(w, h int) {
	_, body, _ := v.areas(w, h)
	v.ed.Resize(body.Width, body.Height)
}

// handleKey reports whether the app should exit.
func (v *view) handleKey(ev *tcell.EventKey) bool {
	if v.pasting {
		switch ev.Key() {
		case tcell.KeyRune:
			v.paste.WriteRune(ev.Rune())
		case tcell.KeyEnter, tcell.KeyLF:
			v.paste.WriteByte('\n')
		case tcell.KeyTab:
			v.paste.WriteByte('\t')
		}
		return false
	}
	v.status = ""
	key := editor.KeyString(ev)
	if key == "ctrl+c" {
		return v.quit()
	}
	if v.route == routeReview {
		return v.handleReviewKey(ev, key)
	}
	switch key {
	case "esc":
		if v.route == routeEditCard && v.ed.Contents() != v.card.Content {
			logger.Warn("unsaved changes discarded", "card", v.card.ID)
		}
		if v.back {
			v.enterReview()
			return false
		}
		return v.quit()
	case "ctrl+s":
		return v.save()
	case "tab":
		if v.route == routeAddCard {
			v.draft = v.ed.Contents()
			v.enterReview()
			return false
		}
	}
	if !v.ed.HandleKey(ev) {
		logger.Debug("key ignored", "key", ev.Name())
	}
	return false
}

func (v *view) handleReviewKey(ev *tcell.EventKey, key string) bool {
	switch key {
	case "esc":
		return v.quit()
	case "tab":
		v.enterAdd()
		return false
	}
	card, ok := v.review.current()
	if !ok {
		return false
	}
	switch key {
	case "right":
		v.review.skip()
	case "up":
		v.review.scrollBy(-1)
	case "down":
		v.review.scrollBy(1)
	case "del":
		if err := v.store.Delete(card.ID); err != nil {
			logger.Error("delete card", "card", card.ID, "error", err)
			v.status = err.Error()
			return false
		}
		logger.Info("card deleted", "card", card.ID)
		v.review.drop()
	case "":
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'e' {
			v.openCard(card, true)
		}
	}
	return false
}

func (v *view) quit() bool {
	logger.Info("session closed", "route", v.route.String(), "card", v.card.ID)
	return true
}

func (v *view) handlePaste(ev *tcell.EventPaste) {
	if ev.Start() {
		v.pasting = true
		v.paste.Reset()
		return
	}
	if ev.End() && v.pasting {
		v.pasting = false
		if v.route != routeReview {
			v.ed.Paste(normalizeNewlines(v.paste.String()))
		}
		v.paste.Reset()
	}
}

// save stores the editor contents and reports whether the app should exit.
func (v *view) save() bool {
	content := v.ed.Contents()
	switch v.route {
	case routeEditCard:
		v.card.Content = content
		card, err := v.store.Put(v.card)
		if err != nil {
			logger.Error("save card", "card", v.card.ID, "error", err)
			v.status = err.Error()
			return false
		}
		logger.Info("card saved", "card", card.ID, "bytes", len(content))
		if v.back {
			v.enterReview()
			v.status = "saved " + shortID(card.ID)
			return false
		}
		return true
	default:
		if strings.TrimSpace(content) == "" {
			v.status = "nothing to add"
			return false
		}
		card, err := v.store.New(content)
		if err != nil {
			logger.Error("add card", "error", err)
			v.status = err.Error()
			return false
		}
		logger.Info("card added", "card", card.ID, "bytes", len(content))
		v.ed.Clear()
		v.status = "added " + shortID(card.ID)
		return false
	}
}

func (v *view) render(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	s.SetStyle(v.styles.main)
	s.Clear()
	s.HideCursor()

	header, body, footer := v.areas(w, h)
	fillRect(s, header, v.styles.header)
	drawCentered(s, header, "cardedit: "+v.title(), v.styles.header)
	if body.Width > 0 && body.Height > 0 {
		if v.route == routeReview {
			v.renderReview(s, body)
		} else {
			f := v.ed.Render(s, body)
			if x, y, ok := f.CursorPosition(); ok && x < body.Width {
				s.ShowCursor(body.X+x, body.Y+y)
			}
		}
	}
	if footer.Y != header.Y {
		v.renderFooter(s, footer)
	}
	s.Show()
}

// renderReview draws the current card read-only, or a message when there
// is nothing left to review.
func (v *view) renderReview(s tcell.Screen, body editor.Rect) {
	card, ok := v.review.current()
	if !ok {
		line := editor.Rect{X: body.X, Y: body.Y, Width: body.Width, Height: 1}
		drawCentered(s, line, v.review.message(), v.styles.main)
		return
	}
	l := editor.ComputeLayout(card.Content, body.Width)
	v.review.clampScroll(len(l.Lines), body.Height)
	editor.Frame{
		Layout: l,
		Scroll: v.review.scroll,
		Height: body.Height,
		Cursor: -1,
		Styles: v.styles.text,
	}.Draw(s, body)
}

// areas splits the screen into a header row, a centred body column and a
// footer row.
func (v *view) areas(w, h int) (header, body, footer editor.Rect) {
	header = editor.Rect{X: 0, Y: 0, Width: w, Height: 1}
	footer = editor.Rect{X: 0, Y: h - 1, Width: w, Height: 1}
	margin := v.cfg.Editor.Margin
	if margin < 0 {
		margin = 0
	}
	body = editor.Rect{
		X:      margin,
		Y:      1 + margin,
		Width:  w - 2*margin,
		Height: h - 2 - 2*margin,
	}
	if body.Width < 0 {
		body.Width = 0
	}
	if body.Height < 0 {
		body.Height = 0
	}
	if maxWidth := v.cfg.Editor.MaxWidth; maxWidth > 0 && body.Width > maxWidth {
		body.X += (body.Width - maxWidth) / 2
		body.Width = maxWidth
	}
	return header, body, footer
}

func (v *view) renderFooter(s tcell.Screen, area editor.Rect) {
	if v.status != "" {
		drawCentered(s, area, v.status, v.styles.status)
		return
	}
	shortcuts := v.shortcuts()
	width := 0
	for i, sc := range shortcuts {
		if i > 0 {
			width += 2
		}
		width += runewidth.StringWidth(sc.key) + 1 + runewidth.StringWidth(sc.name)
	}
	x := area.X + (area.Width-width)/2
	if x < area.X {
		x = area.X
	}
	right := area.X + area.Width
	for i, sc := range shortcuts {
		if i > 0 {
			x = drawText(s, x, area.Y, right, "  ", v.styles.main)
		}
		x = drawText(s, x, area.Y, right, sc.key, v.styles.label)
		x = drawText(s, x, area.Y, right, " "+sc.name, v.styles.main)
	}
}

func drawCentered(s tcell.Screen, area editor.Rect, text string, style tcell.Style) {
	x := area.X + (area.Width-runewidth.StringWidth(text))/2
	if x < area.X {
		x = area.X
	}
	drawText(s, x, area.Y, area.X+area.Width, text, style)
}

// drawText writes text from x, clipped at right, and returns the next free x.
func drawText(s tcell.Screen, x, y, right int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		if x+w > right {
			return right
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

func fillRect(s tcell.Screen, area editor.Rect, style tcell.Style) {
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// normalizeNewlines turns pasted CRLF and lone CR line endings into '\n'.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
