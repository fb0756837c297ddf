package snapshot

import "fmt"

// Builder assembles a Snapshot. Methods chain; the first misuse is remembered
// and returned by Build, after which further calls are ignored.
type Builder struct {
	sections []Section
	err      error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func wrap(err error, name string) error {
	return fmt.Errorf("%w: %q", err, name)
}

// AppendSections adds empty sections at the end.
func (b *Builder) AppendSections(names ...string) *Builder {
	if b.err != nil {
		return b
	}
	for _, name := range names {
		if b.sectionIndex(name) >= 0 {
			b.err = wrap(ErrDuplicateSection, name)
			return b
		}
		b.sections = append(b.sections, Section{Name: name})
	}
	return b
}

// AppendItems adds items to the end of the named section. An empty name
// targets the last section.
func (b *Builder) AppendItems(section string, items ...Item) *Builder {
	if b.err != nil {
		return b
	}
	i := len(b.sections) - 1
	if section != "" {
		i = b.sectionIndex(section)
	}
	if i < 0 {
		if section == "" {
			b.err = ErrNoSection
		} else {
			b.err = wrap(ErrUnknownSection, section)
		}
		return b
	}
	b.sections[i].Items = append(b.sections[i].Items, items...)
	return b
}

// InsertItemsBefore places items directly before the anchor identity.
func (b *Builder) InsertItemsBefore(anchor string, items ...Item) *Builder {
	return b.insertAt(anchor, 0, items)
}

// InsertItemsAfter places items directly after the anchor identity.
func (b *Builder) InsertItemsAfter(anchor string, items ...Item) *Builder {
	return b.insertAt(anchor, 1, items)
}

func (b *Builder) insertAt(anchor string, offset int, items []Item) *Builder {
	if b.err != nil {
		return b
	}
	si, ii := b.find(anchor)
	if si < 0 {
		b.err = wrap(ErrUnknownItem, anchor)
		return b
	}
	at := ii + offset
	run := b.sections[si].Items
	merged := make([]Item, 0, len(run)+len(items))
	merged = append(merged, run[:at]...)
	merged = append(merged, items...)
	merged = append(merged, run[at:]...)
	b.sections[si].Items = merged
	return b
}

// DeleteItems removes the identities from whichever section holds them.
func (b *Builder) DeleteItems(ids ...string) *Builder {
	if b.err != nil {
		return b
	}
	for _, id := range ids {
		si, ii := b.find(id)
		if si < 0 {
			b.err = wrap(ErrUnknownItem, id)
			return b
		}
		run := b.sections[si].Items
		b.sections[si].Items = append(run[:ii:ii], run[ii+1:]...)
	}
	return b
}

// DeleteSections removes sections together with their items.
func (b *Builder) DeleteSections(names ...string) *Builder {
	if b.err != nil {
		return b
	}
	for _, name := range names {
		i := b.sectionIndex(name)
		if i < 0 {
			b.err = wrap(ErrUnknownSection, name)
			return b
		}
		b.sections = append(b.sections[:i:i], b.sections[i+1:]...)
	}
	return b
}

// Build validates and freezes the accumulated state. Repeated identities fail
// with *DuplicateIdentityError.
func (b *Builder) Build() (*Snapshot, error) {
	if b.err != nil {
		return nil, b.err
	}
	sections := make([]Section, len(b.sections))
	for i, sec := range b.sections {
		sections[i] = Section{Name: sec.Name, Items: append([]Item(nil), sec.Items...)}
	}
	return build(sections)
}

func (b *Builder) sectionIndex(name string) int {
	for i, sec := range b.sections {
		if sec.Name == name {
			return i
		}
	}
	return -1
}

func (b *Builder) find(id string) (int, int) {
	for si, sec := range b.sections {
		for ii, item := range sec.Items {
			if item.ItemID() == id {
				return si, ii
			}
		}
	}
	return -1, -1
}
