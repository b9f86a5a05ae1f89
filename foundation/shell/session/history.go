// File: history.go
// Title: Input History Log
// Description: Implements the append-only input history with a cursor for
//              previous/next recall. The cursor lives in [0, length];
//              navigating past either bound clamps instead of failing.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package session

// DefaultHistoryLimit caps the history when no limit is configured
const DefaultHistoryLimit = 100

// History is the append-only log of submitted lines with a recall cursor
type History struct {
	entries []string
	cursor  int
	limit   int
}

// NewHistory creates a history capped at limit entries; a non-positive
// limit falls back to DefaultHistoryLimit
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Append records a submitted line and resets the cursor past the end.
// The oldest entry is dropped once the limit is exceeded.
func (h *History) Append(line string) {
	h.entries = append(h.entries, line)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	h.cursor = len(h.entries)
}

// Previous moves the cursor one entry back and returns the entry there.
// At the oldest entry the cursor clamps and keeps returning it. The
// boolean is false only when the history is empty, meaning the input
// buffer should stay as it is.
func (h *History) Previous() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next moves the cursor one entry forward. While the cursor lands on an
// entry that entry is returned; once it reaches the end an empty string
// is returned, meaning the input buffer should be cleared. The boolean is
// false only when the history is empty.
func (h *History) Next() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor < len(h.entries) {
		h.cursor++
	}
	if h.cursor < len(h.entries) {
		return h.entries[h.cursor], true
	}
	return "", true
}

// Len returns the number of recorded entries
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the current cursor position, in [0, Len]
func (h *History) Cursor() int {
	return h.cursor
}
