// Package store persists cards as JSON documents in a diskv key-value store
// keyed by an opaque card ID.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"
)

// ErrNotFound is returned when no card has the requested ID.
var ErrNotFound = errors.New("card not found")

const cardExt = ".json"

// Card is one stored note.
type Card struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// Title is the first non-blank line of the card.
func (c Card) Title() string {
	for _, line := range strings.Split(c.Content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

type Store struct {
	d   *diskv.Diskv
	now func() time.Time
}

// Open creates a store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:          dir,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		now: time.Now,
	}, nil
}

// New stores content as a new card with a fresh ID.
func (s *Store) New(content string) (Card, error) {
	now := s.now()
	c := Card{
		ID:      uuid.NewString(),
		Content: content,
		Created: now,
		Updated: now,
	}
	if err := s.write(c); err != nil {
		return Card{}, err
	}
	return c, nil
}

// Get returns the card with the given ID.
func (s *Store) Get(id string) (Card, error) {
	if !validID(id) || !s.d.Has(id) {
		return Card{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	data, err := s.d.Read(id)
	if err != nil {
		return Card{}, fmt.Errorf("read card %s: %w", id, err)
	}
	var c Card
	if err := json.Unmarshal(data, &c); err != nil {
		return Card{}, fmt.Errorf("decode card %s: %w", id, err)
	}
	c.ID = id
	return c, nil
}

// Put updates an existing card's content and bumps its update time.
func (s *Store) Put(c Card) (Card, error) {
	old, err := s.Get(c.ID)
	if err != nil {
		return Card{}, err
	}
	old.Content = c.Content
	old.Updated = s.now()
	if err := s.write(old); err != nil {
		return Card{}, err
	}
	return old, nil
}

// Delete removes a card.
func (s *Store) Delete(id string) error {
	if !validID(id) || !s.d.Has(id) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := s.d.Erase(id); err != nil {
		return fmt.Errorf("delete card %s: %w", id, err)
	}
	return nil
}

// List returns all cards, oldest first. Unreadable entries are skipped and
// reported in the returned error.
func (s *Store) List(ctx context.Context) ([]Card, error) {
	var (
		cards []Card
		errs  []error
	)
	for key := range s.d.Keys(ctx.Done()) {
		c, err := s.Get(key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cards = append(cards, c)
	}
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Created.Equal(cards[j].Created) {
			return cards[i].ID < cards[j].ID
		}
		return cards[i].Created.Before(cards[j].Created)
	})
	return cards, errors.Join(errs...)
}

func (s *Store) write(c Card) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode card %s: %w", c.ID, err)
	}
	if err := s.d.Write(c.ID, data); err != nil {
		return fmt.Errorf("write card %s: %w", c.ID, err)
	}
	return nil
}

// validID rejects keys that would escape the store directory.
func validID(id string) bool {
	return id != "" && !strings.ContainsAny(id, `/\.`)
}

// keyToPathTransform shards cards by the first two characters of their ID.
func keyToPathTransform(key string) *diskv.PathKey {
	pk := &diskv.PathKey{FileName: key + cardExt}
	if len(key) > 2 {
		pk.Path = []string{key[:2]}
	}
	return pk
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, cardExt)
}
