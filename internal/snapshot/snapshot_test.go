package snapshot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	id    string
	title string
}

func (e entry) ItemID() string { return e.id }

func (e entry) Equal(other Item) bool {
	o, ok := other.(entry)
	return ok && o == e
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ItemID()
	}
	return out
}

func TestBuilder_AppendItems(t *testing.T) {
	snap, err := NewBuilder().
		AppendSections("main").
		AppendItems("main", entry{id: "1", title: "Swift Basics"}, entry{id: "2", title: "UIKit Intro"}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"main"}, snap.SectionNames())
	assert.Equal(t, 2, snap.NumberOfItems())
	assert.Equal(t, []string{"1", "2"}, snap.ItemIDs())

	pos, ok := snap.Position("2")
	require.True(t, ok)
	assert.Equal(t, Position{Section: 0, Index: 1}, pos)

	item, ok := snap.Item("1")
	require.True(t, ok)
	assert.Equal(t, "Swift Basics", item.(entry).title)
}

func TestBuilder_AppendToLastSection(t *testing.T) {
	snap, err := NewBuilder().
		AppendSections("featured", "main").
		AppendItems("", entry{id: "a"}).
		Build()
	require.NoError(t, err)

	name, ok := snap.SectionOf("a")
	require.True(t, ok)
	assert.Equal(t, "main", name)
}

func TestBuilder_DuplicateIdentity(t *testing.T) {
	_, err := NewBuilder().
		AppendSections("main").
		AppendItems("main", entry{id: "1", title: "first"}, entry{id: "1", title: "second"}).
		Build()
	require.Error(t, err)

	var dup *DuplicateIdentityError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "1", dup.ID)
	assert.Equal(t, "main", dup.FirstSection)
}

func TestBuilder_DuplicateIdentityAcrossSections(t *testing.T) {
	_, err := NewBuilder().
		AppendSections("a", "b").
		AppendItems("a", entry{id: "x"}).
		AppendItems("b", entry{id: "x"}).
		Build()

	var dup *DuplicateIdentityError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.FirstSection)
	assert.Equal(t, "b", dup.SecondSection)
	assert.Contains(t, err.Error(), "sections")
}

func TestBuilder_Misuse(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Snapshot, error)
		want  error
	}{
		{
			name:  "duplicate section",
			build: NewBuilder().AppendSections("main", "main").Build,
			want:  ErrDuplicateSection,
		},
		{
			name:  "unknown section",
			build: NewBuilder().AppendSections("main").AppendItems("other", entry{id: "1"}).Build,
			want:  ErrUnknownSection,
		},
		{
			name:  "no section",
			build: NewBuilder().AppendItems("", entry{id: "1"}).Build,
			want:  ErrNoSection,
		},
		{
			name:  "unknown anchor",
			build: NewBuilder().AppendSections("main").InsertItemsBefore("missing", entry{id: "1"}).Build,
			want:  ErrUnknownItem,
		},
		{
			name:  "unknown delete",
			build: NewBuilder().AppendSections("main").DeleteItems("missing").Build,
			want:  ErrUnknownItem,
		},
		{
			name:  "unknown section delete",
			build: NewBuilder().DeleteSections("main").Build,
			want:  ErrUnknownSection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := tt.build()
			assert.Nil(t, snap)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuilder_InsertAndDelete(t *testing.T) {
	snap, err := NewBuilder().
		AppendSections("main").
		AppendItems("main", entry{id: "a"}, entry{id: "c"}).
		InsertItemsBefore("c", entry{id: "b"}).
		InsertItemsAfter("c", entry{id: "d"}, entry{id: "e"}).
		DeleteItems("a").
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d", "e"}, snap.ItemIDs())
}

func TestSnapshot_BuilderDoesNotMutateSource(t *testing.T) {
	base, err := NewBuilder().
		AppendSections("main").
		AppendItems("main", entry{id: "a"}, entry{id: "b"}, entry{id: "c"}).
		Build()
	require.NoError(t, err)

	next, err := base.Builder().DeleteItems("b").AppendItems("main", entry{id: "d"}).Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, base.ItemIDs())
	assert.Equal(t, []string{"a", "c", "d"}, next.ItemIDs())
}

func TestSnapshot_DeleteSections(t *testing.T) {
	base, err := New(
		Section{Name: "featured", Items: []Item{entry{id: "a"}}},
		Section{Name: "main", Items: []Item{entry{id: "b"}}},
	)
	require.NoError(t, err)

	next, err := base.Builder().DeleteSections("featured").Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, next.SectionNames())
	assert.Equal(t, []string{"b"}, next.ItemIDs())

	_, ok := next.Position("a")
	assert.False(t, ok)
}

func TestNew_CopiesInput(t *testing.T) {
	items := []Item{entry{id: "a"}, entry{id: "b"}}
	snap, err := New(Section{Name: "main", Items: items})
	require.NoError(t, err)

	items[0] = entry{id: "z"}
	assert.Equal(t, []string{"a", "b"}, ids(snap.Items("main")))
}

func TestSnapshot_NilIsEmpty(t *testing.T) {
	var snap *Snapshot

	assert.Equal(t, 0, snap.NumberOfSections())
	assert.Equal(t, 0, snap.NumberOfItems())
	assert.Empty(t, snap.ItemIDs())
	assert.NoError(t, snap.Validate())

	_, ok := snap.Item("a")
	assert.False(t, ok)
	_, ok = snap.SectionName(0)
	assert.False(t, ok)
	assert.Nil(t, snap.ItemsAt(3))

	built, err := snap.Builder().Build()
	require.NoError(t, err)
	assert.Equal(t, 0, built.NumberOfSections())
}
