package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kobzarvs/cardedit/internal/store"
)

func setupDirs(t *testing.T) *store.Store {
	t.Helper()
	t.Setenv("CARDEDIT_CONFIG_HOME", t.TempDir())
	dataDir := t.TempDir()
	t.Setenv("CARDEDIT_DATA_HOME", dataDir)
	st, err := store.Open(dataDir)
	if err != nil {
		t.Fatalf("store.Open error: %v", err)
	}
	return st
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCards(t *testing.T) {
	st := setupDirs(t)
	first, err := st.New("\nshopping list\nmilk")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	second, err := st.New("call back")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	for _, want := range []string{"ID", "Title", first.ID, "shopping list", second.ID, "call back"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "milk") {
		t.Fatalf("output shows more than the title:\n%s", out)
	}
}

func TestListEmpty(t *testing.T) {
	setupDirs(t)
	out, err := run(t, "ls")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if strings.TrimSpace(out) != "no cards" {
		t.Fatalf("output = %q, want %q", out, "no cards")
	}
}

func TestRemoveCard(t *testing.T) {
	st := setupDirs(t)
	c, err := st.New("gone soon")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	out, err := run(t, "rm", c.ID)
	if err != nil {
		t.Fatalf("rm error: %v", err)
	}
	if !strings.Contains(out, "deleted "+c.ID) {
		t.Fatalf("output = %q", out)
	}
	if _, err := st.Get(c.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get after rm error = %v, want ErrNotFound", err)
	}
}

func TestRemoveMissingCard(t *testing.T) {
	setupDirs(t)
	if _, err := run(t, "rm", "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("rm error = %v, want ErrNotFound", err)
	}
	if _, err := run(t, "rm"); err == nil {
		t.Fatalf("rm without an id succeeded")
	}
}

func TestRootRejectsExtraArgs(t *testing.T) {
	setupDirs(t)
	if _, err := run(t, "one", "two"); err == nil {
		t.Fatalf("two card ids accepted")
	}
}

func TestReviewRejectsCardID(t *testing.T) {
	setupDirs(t)
	_, err := run(t, "--review", "abc")
	if err == nil || !strings.Contains(err.Error(), "--review") {
		t.Fatalf("error = %v, want --review rejection", err)
	}
}

type failingLister struct {
	cards []store.Card
	err   error
}

func (f failingLister) List(context.Context) ([]store.Card, error) {
	return f.cards, f.err
}

func TestPrintCardsReportsPartialFailure(t *testing.T) {
	boom := errors.New("boom")
	var out bytes.Buffer
	err := printCards(context.Background(), &out, failingLister{
		cards: []store.Card{{ID: "abc", Content: "kept"}},
		err:   boom,
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if !strings.Contains(out.String(), "kept") {
		t.Fatalf("output = %q, want readable card listed", out.String())
	}

	out.Reset()
	if err := printCards(context.Background(), &out, failingLister{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if out.Len() != 0 {
		t.Fatalf("output = %q, want nothing", out.String())
	}
}
