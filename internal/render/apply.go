package render

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ytget/videogrid/internal/diff"
	"github.com/ytget/videogrid/internal/snapshot"
)

// ErrDiverged means a script did not reproduce its target snapshot. It points
// at a bug in script construction, never at user input.
var ErrDiverged = errors.New("rendered state diverged from snapshot")

// ErrOutOfRange means a change addressed a position that does not exist.
var ErrOutOfRange = errors.New("change position out of range")

type rowSection struct {
	name  string
	items []snapshot.Item
}

func cloneRows(rows []rowSection) []rowSection {
	out := make([]rowSection, len(rows))
	for i, r := range rows {
		out[i] = rowSection{name: r.name, items: append([]snapshot.Item(nil), r.items...)}
	}
	return out
}

// applyScript runs the script against a copy of rows as one batch: first every
// removal at its previous position, back to front, then every placement at its
// final position, front to back, then reloads in place.
func applyScript(rows []rowSection, script diff.Script) ([]rowSection, error) {
	out := cloneRows(rows)

	removals := script.Filter(diff.OpDelete, diff.OpMove)
	sort.Slice(removals, func(i, j int) bool {
		return after(removals[i].From, removals[j].From)
	})
	for _, c := range removals {
		p := c.From
		if p.Section < 0 || p.Section >= len(out) || p.Index < 0 || p.Index >= len(out[p.Section].items) {
			return nil, fmt.Errorf("%w: %s", ErrOutOfRange, c)
		}
		run := out[p.Section].items
		out[p.Section].items = append(run[:p.Index:p.Index], run[p.Index+1:]...)
	}

	sectionRemovals := script.Filter(diff.OpDeleteSection, diff.OpMoveSection)
	sort.Slice(sectionRemovals, func(i, j int) bool {
		return sectionRemovals[i].From.Section > sectionRemovals[j].From.Section
	})
	parked := make(map[string]rowSection)
	for _, c := range sectionRemovals {
		i := c.From.Section
		if i < 0 || i >= len(out) {
			return nil, fmt.Errorf("%w: %s", ErrOutOfRange, c)
		}
		if c.Op == diff.OpMoveSection {
			parked[c.ID] = out[i]
		}
		out = append(out[:i:i], out[i+1:]...)
	}

	sectionPlacements := script.Filter(diff.OpInsertSection, diff.OpMoveSection)
	sort.Slice(sectionPlacements, func(i, j int) bool {
		return sectionPlacements[i].To.Section < sectionPlacements[j].To.Section
	})
	for _, c := range sectionPlacements {
		i := c.To.Section
		if i < 0 || i > len(out) {
			return nil, fmt.Errorf("%w: %s", ErrOutOfRange, c)
		}
		sec := rowSection{name: c.ID}
		if c.Op == diff.OpMoveSection {
			sec = parked[c.ID]
		}
		out = append(out[:i], append([]rowSection{sec}, out[i:]...)...)
	}

	placements := script.Filter(diff.OpInsert, diff.OpMove)
	sort.Slice(placements, func(i, j int) bool {
		return after(placements[j].To, placements[i].To)
	})
	for _, c := range placements {
		p := c.To
		if p.Section < 0 || p.Section >= len(out) || p.Index < 0 || p.Index > len(out[p.Section].items) {
			return nil, fmt.Errorf("%w: %s", ErrOutOfRange, c)
		}
		run := out[p.Section].items
		out[p.Section].items = append(run[:p.Index], append([]snapshot.Item{c.Item}, run[p.Index:]...)...)
	}

	for _, c := range script.Filter(diff.OpReload) {
		p := c.To
		if p.Section < 0 || p.Section >= len(out) || p.Index < 0 || p.Index >= len(out[p.Section].items) {
			return nil, fmt.Errorf("%w: %s", ErrOutOfRange, c)
		}
		out[p.Section].items[p.Index] = c.Item
	}

	return out, nil
}

// after orders positions back to front.
func after(a, b snapshot.Position) bool {
	if a.Section != b.Section {
		return a.Section > b.Section
	}
	return a.Index > b.Index
}

func rowsFor(snap *snapshot.Snapshot) []rowSection {
	rows := make([]rowSection, snap.NumberOfSections())
	for i := range rows {
		name, _ := snap.SectionName(i)
		rows[i] = rowSection{name: name, items: snap.ItemsAt(i)}
	}
	return rows
}

// matches reports whether rows show exactly the snapshot, payloads included.
func matches(rows []rowSection, snap *snapshot.Snapshot) bool {
	if len(rows) != snap.NumberOfSections() {
		return false
	}
	for i, r := range rows {
		name, _ := snap.SectionName(i)
		want := snap.ItemsAt(i)
		if r.name != name || len(r.items) != len(want) {
			return false
		}
		for j, item := range r.items {
			if !item.Equal(want[j]) {
				return false
			}
		}
	}
	return true
}
