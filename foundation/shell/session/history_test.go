// File: history_test.go
// Title: History Unit Tests
// Description: Tests for cursor movement, bound clamping, cursor reset on
//              append and the entry limit.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package session

import (
	"testing"
)

func filledHistory(lines ...string) *History {
	h := NewHistory(0)
	for _, l := range lines {
		h.Append(l)
	}
	return h
}

func TestHistory_AppendResetsCursor(t *testing.T) {
	h := filledHistory("a", "b")

	h.Previous()
	h.Previous()
	if h.Cursor() == h.Len() {
		t.Fatal("cursor should have moved back")
	}

	h.Append("c")
	if h.Cursor() != h.Len() {
		t.Errorf("cursor = %d after append, want %d", h.Cursor(), h.Len())
	}
}

func TestHistory_PreviousWalksBack(t *testing.T) {
	h := filledHistory("a", "b", "c")

	steps := []string{"c", "b", "a"}
	for i, want := range steps {
		got, ok := h.Previous()
		if !ok {
			t.Fatalf("step %d: Previous reported empty history", i)
		}
		if got != want {
			t.Errorf("step %d: Previous = %q, want %q", i, got, want)
		}
	}
}

func TestHistory_PreviousClampsAtOldest(t *testing.T) {
	h := filledHistory("a", "b", "c")

	var got string
	for i := 0; i < 5; i++ {
		got, _ = h.Previous()
	}
	if got != "a" {
		t.Errorf("after five Previous presses got %q, want clamp at %q", got, "a")
	}
	if h.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", h.Cursor())
	}
}

func TestHistory_NextWalksForwardAndClears(t *testing.T) {
	h := filledHistory("a", "b", "c")

	// Walk all the way back, then forward again
	for i := 0; i < 3; i++ {
		h.Previous()
	}

	wantEntries := []string{"b", "c"}
	for i, want := range wantEntries {
		got, ok := h.Next()
		if !ok || got != want {
			t.Errorf("forward step %d: Next = (%q, %v), want (%q, true)", i, got, ok, want)
		}
	}

	// Past the newest entry the buffer clears
	got, ok := h.Next()
	if !ok || got != "" {
		t.Errorf("Next past end = (%q, %v), want empty clear signal", got, ok)
	}

	// Further presses keep clearing, never error
	got, ok = h.Next()
	if !ok || got != "" {
		t.Errorf("repeated Next past end = (%q, %v), want empty clear signal", got, ok)
	}
}

func TestHistory_EmptyNavigation(t *testing.T) {
	h := NewHistory(0)

	if _, ok := h.Previous(); ok {
		t.Error("Previous on empty history should report false")
	}
	if _, ok := h.Next(); ok {
		t.Error("Next on empty history should report false")
	}
}

func TestHistory_Limit(t *testing.T) {
	h := NewHistory(3)
	for _, l := range []string{"one", "two", "three", "four"} {
		h.Append(l)
	}

	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}

	// Oldest entry was dropped; walking back ends at "two"
	var got string
	for i := 0; i < 5; i++ {
		got, _ = h.Previous()
	}
	if got != "two" {
		t.Errorf("oldest retained entry = %q, want %q", got, "two")
	}
}
