package domain

import (
	"errors"
	"fmt"
	"log/slog"

	m "mcyview.dev/pkg/mcyview/internal/model"
)

// ErrProtocolViolation reports a misuse of the navigation engine by its
// caller, such as navigating an empty history or selecting a node that does
// not exist.
var ErrProtocolViolation = errors.New("navigation protocol violation")

// HistoryEntry is a (view, node) pair remembered by the history.
type HistoryEntry = m.NodeRef

// History is a linear back/forward stack shared by every view. Recording
// after moving back discards the entries after the cursor.
//
// Navigating sets a suppress flag so the caller can replay the returned entry
// through its normal selection path: the next Record consumes the flag
// instead of adding an entry.
type History struct {
	entries  []HistoryEntry
	cursor   int
	suppress bool
	strict   bool
}

// NewHistory returns an empty history. In strict mode protocol violations
// panic instead of returning ErrProtocolViolation.
func NewHistory(strict bool) *History {
	return &History{cursor: -1, strict: strict}
}

// Record adds entry after the cursor. It is a no-op for a replayed entry and
// for an entry equal to the current one.
func (h *History) Record(entry HistoryEntry) {
	if h.suppress {
		h.suppress = false
		return
	}

	if h.cursor >= 0 && h.entries[h.cursor] == entry {
		return
	}

	h.entries = append(h.entries[:h.cursor+1], entry)
	h.cursor = len(h.entries) - 1
}

// First moves to the oldest entry.
func (h *History) First() (HistoryEntry, error) {
	return h.move(m.NavFirst, func() int { return 0 })
}

// Prev moves one entry back.
func (h *History) Prev() (HistoryEntry, error) {
	return h.move(m.NavPrev, func() int { return h.cursor - 1 })
}

// Next moves one entry forward.
func (h *History) Next() (HistoryEntry, error) {
	return h.move(m.NavNext, func() int { return h.cursor + 1 })
}

// Last moves to the newest entry.
func (h *History) Last() (HistoryEntry, error) {
	return h.move(m.NavLast, func() int { return len(h.entries) - 1 })
}

func (h *History) move(dir m.Direction, target func() int) (HistoryEntry, error) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, h.violation("%s on empty history", dir)
	}

	if h.suppress {
		return HistoryEntry{}, h.violation("%s while a replay is pending", dir)
	}

	idx := target()
	if idx < 0 || idx >= len(h.entries) {
		return HistoryEntry{}, h.violation("%s past the end (cursor %d of %d)", dir, h.cursor, len(h.entries))
	}

	h.cursor = idx
	h.suppress = true

	return h.entries[idx], nil
}

// Clear empties the history and records current, if any, as its only entry.
func (h *History) Clear(current *HistoryEntry) {
	h.entries = nil
	h.cursor = -1
	h.suppress = false

	if current != nil {
		h.Record(*current)
	}
}

// Buttons reports which navigation directions are available.
func (h *History) Buttons() m.HistoryButtons {
	back := h.cursor > 0
	forward := h.cursor >= 0 && h.cursor < len(h.entries)-1

	return m.HistoryButtons{First: back, Prev: back, Next: forward, Last: forward}
}

// Current returns the entry at the cursor.
func (h *History) Current() (HistoryEntry, bool) {
	if h.cursor < 0 {
		return HistoryEntry{}, false
	}

	return h.entries[h.cursor], true
}

// Entries returns a copy of the recorded entries.
func (h *History) Entries() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}

// Cursor returns the cursor index, -1 when empty.
func (h *History) Cursor() int {
	return h.cursor
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Pending reports whether a replayed entry has not been recorded yet.
func (h *History) Pending() bool {
	return h.suppress
}

func (h *History) violation(format string, args ...any) error {
	return h.fail(fmt.Errorf("%w: %s", ErrProtocolViolation, fmt.Sprintf(format, args...)))
}

// fail reports a protocol violation: a panic in strict mode, a logged no-op
// otherwise.
func (h *History) fail(err error) error {
	if h.strict {
		panic(err)
	}

	slog.Warn("Navigation request ignored", "error", err)

	return err
}
