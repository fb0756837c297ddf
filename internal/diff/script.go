package diff

import (
	"fmt"
	"strings"

	"github.com/ytget/videogrid/internal/snapshot"
)

// Op is the kind of a structural change.
type Op int

const (
	OpDelete Op = iota
	OpDeleteSection
	OpMoveSection
	OpInsertSection
	OpInsert
	OpMove
	OpReload
)

// String returns a short lowercase name for the op.
func (o Op) String() string {
	switch o {
	case OpDelete:
		return "delete"
	case OpDeleteSection:
		return "delete-section"
	case OpMoveSection:
		return "move-section"
	case OpInsertSection:
		return "insert-section"
	case OpInsert:
		return "insert"
	case OpMove:
		return "move"
	case OpReload:
		return "reload"
	default:
		return "unknown"
	}
}

// IsSection reports whether the op addresses a whole section.
func (o Op) IsSection() bool {
	return o == OpDeleteSection || o == OpMoveSection || o == OpInsertSection
}

// Change is one edit. ID holds the item identity, or the section name for
// section ops. From is a position in the previous snapshot (Delete, Move,
// DeleteSection, MoveSection); To is a position in the next snapshot (Insert,
// Move, Reload, InsertSection, MoveSection). Section ops only use the Section
// field of From and To. Item carries the next payload for Insert, Move and
// Reload.
type Change struct {
	Op   Op
	ID   string
	Item snapshot.Item
	From snapshot.Position
	To   snapshot.Position
}

func (c Change) String() string {
	switch c.Op {
	case OpDelete:
		return fmt.Sprintf("%s %s @%d.%d", c.Op, c.ID, c.From.Section, c.From.Index)
	case OpInsert, OpReload:
		return fmt.Sprintf("%s %s @%d.%d", c.Op, c.ID, c.To.Section, c.To.Index)
	case OpMove:
		return fmt.Sprintf("%s %s %d.%d->%d.%d", c.Op, c.ID, c.From.Section, c.From.Index, c.To.Section, c.To.Index)
	case OpDeleteSection:
		return fmt.Sprintf("%s %s @%d", c.Op, c.ID, c.From.Section)
	case OpInsertSection:
		return fmt.Sprintf("%s %s @%d", c.Op, c.ID, c.To.Section)
	case OpMoveSection:
		return fmt.Sprintf("%s %s %d->%d", c.Op, c.ID, c.From.Section, c.To.Section)
	default:
		return c.Op.String()
	}
}

// Script is an ordered edit script. It is applied as one batch: deletes
// address the previous snapshot, inserts and moves address the next one.
type Script struct {
	Changes []Change
}

// IsEmpty reports whether applying the script changes nothing.
func (s Script) IsEmpty() bool {
	return len(s.Changes) == 0
}

// Count returns how many changes have the given op.
func (s Script) Count(op Op) int {
	n := 0
	for _, c := range s.Changes {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the changes with any of the given ops, in script order.
func (s Script) Filter(ops ...Op) []Change {
	var out []Change
	for _, c := range s.Changes {
		for _, op := range ops {
			if c.Op == op {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Summary renders counts per op, e.g. "2 delete, 1 insert".
func (s Script) Summary() string {
	if s.IsEmpty() {
		return "no changes"
	}
	var parts []string
	for op := OpDelete; op <= OpReload; op++ {
		if n := s.Count(op); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, op))
		}
	}
	return strings.Join(parts, ", ")
}
