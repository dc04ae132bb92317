package editor

import "testing"

func TestBufferInsertAndDelete(t *testing.T) {
	var b Buffer
	pos := b.InsertString(0, "hllo")
	if pos != 4 {
		t.Fatalf("InsertString returned %d, want 4", pos)
	}
	if pos = b.InsertRune(1, 'é'); pos != 3 {
		t.Fatalf("InsertRune returned %d, want 3", pos)
	}
	if got := b.String(); got != "héllo" {
		t.Fatalf("String() = %q, want %q", got, "héllo")
	}
	b.DeleteRange(1, 3)
	if got := b.String(); got != "hllo" {
		t.Fatalf("after delete = %q, want %q", got, "hllo")
	}
	b.DeleteRange(3, 1)
	b.DeleteRange(2, 2)
	if got := b.String(); got != "hllo" {
		t.Fatalf("empty ranges changed text to %q", got)
	}
	b.Clear()
	if b.Len() != 0 {
		t.Fatalf("Len() after Clear = %d", b.Len())
	}
}

func TestBufferSnapsToCharacterStart(t *testing.T) {
	var b Buffer
	b.Set("中b")
	if pos := b.InsertRune(2, 'a'); pos != 1 {
		t.Fatalf("InsertRune inside 中 returned %d, want 1", pos)
	}
	if got := b.String(); got != "a中b" {
		t.Fatalf("String() = %q, want %q", got, "a中b")
	}
	// both ends fall inside 中, so the range is empty
	b.DeleteRange(2, 3)
	if got := b.String(); got != "a中b" {
		t.Fatalf("DeleteRange inside a character changed text to %q", got)
	}
	b.DeleteRange(-5, 1)
	if got := b.String(); got != "中b" {
		t.Fatalf("DeleteRange(-5, 1) = %q, want %q", got, "中b")
	}
	b.DeleteRange(2, 99)
	if got := b.String(); got != "" {
		t.Fatalf("DeleteRange(2, 99) = %q, want empty", got)
	}
}

func TestBufferBoundaries(t *testing.T) {
	var b Buffer
	b.Set("a😀b")
	if got := b.NextBoundary(1); got != 5 {
		t.Fatalf("NextBoundary(1) = %d, want 5", got)
	}
	if got := b.PrevBoundary(5); got != 1 {
		t.Fatalf("PrevBoundary(5) = %d, want 1", got)
	}
	if got := b.NextBoundary(6); got != 6 {
		t.Fatalf("NextBoundary at end = %d, want 6", got)
	}
	if got := b.PrevBoundary(0); got != 0 {
		t.Fatalf("PrevBoundary at start = %d, want 0", got)
	}
	if got := b.NextBoundary(3); got != 5 {
		t.Fatalf("NextBoundary from inside 😀 = %d, want 5", got)
	}
}

func TestBufferSetCopies(t *testing.T) {
	var b Buffer
	src := "abc"
	b.Set(src)
	b.InsertRune(0, 'x')
	if src != "abc" {
		t.Fatalf("source string changed")
	}
	if got := b.String(); got != "xabc" {
		t.Fatalf("String() = %q, want %q", got, "xabc")
	}
}
