package app

import "github.com/kobzarvs/cardedit/internal/store"

// review is the queue of cards shown one at a time on the review page.
// queue[0] is the card on screen.
type review struct {
	queue  []store.Card
	empty  bool
	scroll int
}

func newReview(cards []store.Card) review {
	return review{queue: cards, empty: len(cards) == 0}
}

func (r *review) current() (store.Card, bool) {
	if len(r.queue) == 0 {
		return store.Card{}, false
	}
	return r.queue[0], true
}

// skip moves the shown card to the back of the queue.
func (r *review) skip() {
	if len(r.queue) < 2 {
		return
	}
	first := r.queue[0]
	r.queue = append(r.queue[1:], first)
	r.scroll = 0
}

// drop removes the shown card from the queue.
func (r *review) drop() {
	if len(r.queue) > 0 {
		r.queue = r.queue[1:]
	}
	r.scroll = 0
}

func (r *review) scrollBy(n int) {
	r.scroll = max(r.scroll+n, 0)
}

// clampScroll keeps the last row of a card of the given row count on screen.
func (r *review) clampScroll(rows, height int) {
	r.scroll = min(r.scroll, max(rows-height, 0))
}

func (r *review) message() string {
	if r.empty {
		return "no cards to review"
	}
	return "done"
}
