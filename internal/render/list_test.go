package render

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/videogrid/internal/diff"
	"github.com/ytget/videogrid/internal/snapshot"
)

type tile struct {
	id      string
	caption string
}

func (t tile) ItemID() string { return t.id }

func (t tile) Equal(other snapshot.Item) bool {
	o, ok := other.(tile)
	return ok && o == t
}

type recorder struct {
	batches []Batch
}

func (r *recorder) Render(batch Batch) {
	r.batches = append(r.batches, batch)
}

func mainSnapshot(t *testing.T, ids ...string) *snapshot.Snapshot {
	t.Helper()
	items := make([]snapshot.Item, len(ids))
	for i, id := range ids {
		items[i] = tile{id: id, caption: "caption " + id}
	}
	snap, err := snapshot.New(snapshot.Section{Name: "main", Items: items})
	require.NoError(t, err)
	return snap
}

func renderedIDs(l *List) []string {
	out := make([]string, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		item, _ := l.ItemAtOffset(i)
		out = append(out, item.ItemID())
	}
	return out
}

func TestList_ApplyInitial(t *testing.T) {
	view := &recorder{}
	list := NewList(view)

	require.NoError(t, list.Apply(mainSnapshot(t, "a", "b", "c"), false))

	assert.Equal(t, []string{"a", "b", "c"}, renderedIDs(list))
	require.Len(t, view.batches, 1)
	assert.False(t, view.batches[0].Animate)
	assert.Equal(t, 3, view.batches[0].Script.Count(diff.OpInsert))
	assert.Equal(t, 1, list.NumberOfSections())
}

func TestList_IdenticalApplyIsSilent(t *testing.T) {
	view := &recorder{}
	list := NewList(view)

	require.NoError(t, list.Apply(mainSnapshot(t, "a", "b"), false))
	require.NoError(t, list.Apply(mainSnapshot(t, "a", "b"), true))

	assert.Len(t, view.batches, 1)
	assert.Equal(t, []string{"a", "b"}, renderedIDs(list))
}

func TestList_SearchScenario(t *testing.T) {
	view := &recorder{}
	list := NewList(view)

	full, err := snapshot.New(snapshot.Section{Name: "main", Items: []snapshot.Item{
		tile{id: "1", caption: "Swift Basics"},
		tile{id: "2", caption: "UIKit Intro"},
	}})
	require.NoError(t, err)
	filtered, err := full.Builder().DeleteItems("2").Build()
	require.NoError(t, err)

	require.NoError(t, list.Apply(full, false))
	require.NoError(t, list.Apply(filtered, true))

	require.Len(t, view.batches, 2)
	last := view.batches[1]
	assert.True(t, last.Animate)
	require.Len(t, last.Script.Changes, 1)
	assert.Equal(t, diff.OpDelete, last.Script.Changes[0].Op)
	assert.Equal(t, "2", last.Script.Changes[0].ID)
	assert.Equal(t, []string{"1"}, renderedIDs(list))
	assert.Same(t, filtered, list.Snapshot())
}

func TestList_Reorder(t *testing.T) {
	list := NewList(nil)
	require.NoError(t, list.Apply(mainSnapshot(t, "A", "B", "C"), false))
	require.NoError(t, list.Apply(mainSnapshot(t, "C", "A", "B"), true))

	assert.Equal(t, []string{"C", "A", "B"}, renderedIDs(list))
}

func TestList_ReloadReplacesPayload(t *testing.T) {
	list := NewList(nil)

	before, err := snapshot.New(snapshot.Section{Name: "main", Items: []snapshot.Item{tile{id: "1", caption: "old"}}})
	require.NoError(t, err)
	after, err := snapshot.New(snapshot.Section{Name: "main", Items: []snapshot.Item{tile{id: "1", caption: "new"}}})
	require.NoError(t, err)

	require.NoError(t, list.Apply(before, false))
	require.NoError(t, list.Apply(after, false))

	item, ok := list.ItemAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, "new", item.(tile).caption)
}

func TestList_Lookups(t *testing.T) {
	list := NewList(nil)

	_, ok := list.ItemAtOffset(0)
	assert.False(t, ok, "empty list has nothing to select")

	snap, err := snapshot.New(
		snapshot.Section{Name: "featured", Items: []snapshot.Item{tile{id: "a"}}},
		snapshot.Section{Name: "main", Items: []snapshot.Item{tile{id: "b"}, tile{id: "c"}}},
	)
	require.NoError(t, err)
	require.NoError(t, list.Apply(snap, false))

	tests := []struct {
		offset int
		want   string
		ok     bool
	}{
		{-1, "", false},
		{0, "a", true},
		{1, "b", true},
		{2, "c", true},
		{3, "", false},
	}
	for _, tt := range tests {
		item, ok := list.ItemAtOffset(tt.offset)
		assert.Equal(t, tt.ok, ok, "offset %d", tt.offset)
		if ok {
			assert.Equal(t, tt.want, item.ItemID())
		}
	}

	item, ok := list.ItemAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, "c", item.ItemID())

	_, ok = list.ItemAt(2, 0)
	assert.False(t, ok)
	_, ok = list.ItemAt(0, 5)
	assert.False(t, ok)

	offset, ok := list.OffsetOf("c")
	require.True(t, ok)
	assert.Equal(t, 2, offset)
	_, ok = list.OffsetOf("zzz")
	assert.False(t, ok)
}

func TestList_Reset(t *testing.T) {
	list := NewList(nil)
	require.NoError(t, list.Apply(mainSnapshot(t, "a"), false))

	list.Reset()
	assert.Zero(t, list.Len())
	assert.Nil(t, list.Snapshot())
}

func TestApplyScript_RejectsBadPositions(t *testing.T) {
	rows := []rowSection{{name: "main", items: []snapshot.Item{tile{id: "a"}}}}
	script := diff.Script{Changes: []diff.Change{
		{Op: diff.OpDelete, ID: "ghost", From: snapshot.Position{Section: 0, Index: 4}},
	}}

	_, err := applyScript(rows, script)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Len(t, rows[0].items, 1, "input rows must stay untouched")
}

// randomSnapshot draws up to three sections from a small pool of names and
// spreads a random subset of the identity pool across them.
func randomSnapshot(t *testing.T, rng *rand.Rand) *snapshot.Snapshot {
	t.Helper()
	names := []string{"featured", "main", "archive"}
	rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	names = names[:1+rng.Intn(len(names))]

	pool := rng.Perm(12)
	pool = pool[:rng.Intn(len(pool)+1)]

	sections := make([]snapshot.Section, len(names))
	for i, name := range names {
		sections[i].Name = name
	}
	for _, n := range pool {
		s := rng.Intn(len(sections))
		caption := "v1"
		if rng.Intn(4) == 0 {
			caption = "v2"
		}
		sections[s].Items = append(sections[s].Items, tile{id: fmt.Sprintf("id-%d", n), caption: caption})
	}

	snap, err := snapshot.New(sections...)
	require.NoError(t, err)
	return snap
}

func TestList_ConvergesForRandomSnapshots(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 300; round++ {
		from := randomSnapshot(t, rng)
		to := randomSnapshot(t, rng)

		list := NewList(nil)
		require.NoError(t, list.Apply(from, false))
		require.NoError(t, list.Apply(to, rng.Intn(2) == 0), "round %d", round)

		assert.Equal(t, to.ItemIDs(), renderedIDs(list), "round %d", round)
		assert.True(t, matches(list.rows, to), "round %d", round)
	}
}
