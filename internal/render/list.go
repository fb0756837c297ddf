package render

import (
	"fmt"
	"log"
	"sync"

	"github.com/ytget/videogrid/internal/diff"
	"github.com/ytget/videogrid/internal/snapshot"
)

// Batch is one coordinated update handed to a View.
type Batch struct {
	Script   diff.Script
	Animate  bool
	Snapshot *snapshot.Snapshot
}

// View redraws the visual list. Render is called once per applied batch and
// never for an empty script; by then List already answers lookups with the new
// state.
type View interface {
	Render(batch Batch)
}

// ViewFunc adapts a function to View.
type ViewFunc func(Batch)

// Render calls f(batch).
func (f ViewFunc) Render(batch Batch) { f(batch) }

// List owns the currently applied snapshot and the rendered rows derived from
// it. Apply must be driven from a single scheduling context; the mutex only
// protects lookups racing with an apply.
type List struct {
	mu      sync.RWMutex
	view    View
	applied *snapshot.Snapshot
	rows    []rowSection
}

// NewList creates an empty list that reports updates to view.
func NewList(view View) *List {
	return &List{view: view}
}

// Apply diffs next against the applied snapshot, applies the resulting script
// in one batch and then tells the view. The applied snapshot only changes when
// application succeeds.
func (l *List) Apply(next *snapshot.Snapshot, animate bool) error {
	l.mu.Lock()
	script, err := diff.Compute(l.applied, next)
	if err != nil {
		l.mu.Unlock()
		return fmt.Errorf("diff snapshots: %w", err)
	}

	if script.IsEmpty() {
		l.applied = next
		l.mu.Unlock()
		return nil
	}

	rows, err := applyScript(l.rows, script)
	if err != nil {
		l.mu.Unlock()
		return fmt.Errorf("apply %s: %w", script.Summary(), err)
	}
	if !matches(rows, next) {
		l.mu.Unlock()
		return fmt.Errorf("apply %s: %w", script.Summary(), ErrDiverged)
	}

	l.rows = rows
	l.applied = next
	l.mu.Unlock()

	log.Printf("Applied snapshot: %s (animate=%v, items=%d)", script.Summary(), animate, next.NumberOfItems())

	if l.view != nil {
		l.view.Render(Batch{Script: script, Animate: animate, Snapshot: next})
	}
	return nil
}

// Reset drops the rendered state without notifying the view.
func (l *List) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.applied = nil
	l.rows = nil
}

// Snapshot returns the applied snapshot, nil before the first Apply.
func (l *List) Snapshot() *snapshot.Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.applied
}

// Len returns the number of rendered items across all sections.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, r := range l.rows {
		n += len(r.items)
	}
	return n
}

// NumberOfSections returns the number of rendered sections.
func (l *List) NumberOfSections() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.rows)
}

// ItemAt returns the item rendered at index within section. Out-of-range
// positions report false; taps can race with a re-render.
func (l *List) ItemAt(section, index int) (snapshot.Item, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if section < 0 || section >= len(l.rows) {
		return nil, false
	}
	items := l.rows[section].items
	if index < 0 || index >= len(items) {
		return nil, false
	}
	return items[index], true
}

// ItemAtOffset returns the item at a flat offset counting across sections in
// order, as a single grid widget sees them.
func (l *List) ItemAtOffset(offset int) (snapshot.Item, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if offset < 0 {
		return nil, false
	}
	for _, r := range l.rows {
		if offset < len(r.items) {
			return r.items[offset], true
		}
		offset -= len(r.items)
	}
	return nil, false
}

// OffsetOf returns the flat offset of the identity, if rendered.
func (l *List) OffsetOf(id string) (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	offset := 0
	for _, r := range l.rows {
		for _, item := range r.items {
			if item.ItemID() == id {
				return offset, true
			}
			offset++
		}
	}
	return 0, false
}
