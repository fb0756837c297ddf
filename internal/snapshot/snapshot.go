package snapshot

// Item is the unit of diffing. ItemID must be stable for the same logical item
// across snapshots even when its payload changes; Equal compares identity and
// payload.
type Item interface {
	ItemID() string
	Equal(other Item) bool
}

// Section is a named, ordered run of items.
type Section struct {
	Name  string
	Items []Item
}

// Position addresses an item by section index and index within that section.
type Position struct {
	Section int
	Index   int
}

// Snapshot is an immutable, ordered list of sections. The zero value and a
// nil *Snapshot are both the empty snapshot.
type Snapshot struct {
	sections []Section
	index    map[string]Position
}

// New builds a snapshot from sections in order. It fails with
// *DuplicateIdentityError when an identity repeats anywhere in the snapshot and
// with ErrDuplicateSection when a section name repeats.
func New(sections ...Section) (*Snapshot, error) {
	copied := make([]Section, len(sections))
	for i, sec := range sections {
		copied[i] = Section{Name: sec.Name, Items: append([]Item(nil), sec.Items...)}
	}
	return build(copied)
}

func build(sections []Section) (*Snapshot, error) {
	if err := validate(sections); err != nil {
		return nil, err
	}
	s := &Snapshot{
		sections: sections,
		index:    make(map[string]Position),
	}
	for si, sec := range sections {
		for ii, item := range sec.Items {
			s.index[item.ItemID()] = Position{Section: si, Index: ii}
		}
	}
	return s, nil
}

func validate(sections []Section) error {
	names := make(map[string]struct{}, len(sections))
	owner := make(map[string]string)
	for _, sec := range sections {
		if _, dup := names[sec.Name]; dup {
			return wrap(ErrDuplicateSection, sec.Name)
		}
		names[sec.Name] = struct{}{}
		for _, item := range sec.Items {
			id := item.ItemID()
			if first, dup := owner[id]; dup {
				return &DuplicateIdentityError{ID: id, FirstSection: first, SecondSection: sec.Name}
			}
			owner[id] = sec.Name
		}
	}
	return nil
}

// Validate re-checks the uniqueness invariants. Snapshots produced by New or a
// Builder always pass; it exists for consumers that accept snapshots from
// elsewhere and must not trust them.
func (s *Snapshot) Validate() error {
	if s == nil {
		return nil
	}
	return validate(s.sections)
}

// NumberOfSections returns the number of sections.
func (s *Snapshot) NumberOfSections() int {
	if s == nil {
		return 0
	}
	return len(s.sections)
}

// NumberOfItems returns the item count across all sections.
func (s *Snapshot) NumberOfItems() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, sec := range s.sections {
		n += len(sec.Items)
	}
	return n
}

// SectionNames returns the section names in order.
func (s *Snapshot) SectionNames() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.sections))
	for i, sec := range s.sections {
		names[i] = sec.Name
	}
	return names
}

// SectionIndex returns the index of the named section.
func (s *Snapshot) SectionIndex(name string) (int, bool) {
	if s == nil {
		return 0, false
	}
	for i, sec := range s.sections {
		if sec.Name == name {
			return i, true
		}
	}
	return 0, false
}

// SectionName returns the name of the section at index i.
func (s *Snapshot) SectionName(i int) (string, bool) {
	if s == nil || i < 0 || i >= len(s.sections) {
		return "", false
	}
	return s.sections[i].Name, true
}

// Items returns a copy of the items in the named section, nil if it does not exist.
func (s *Snapshot) Items(section string) []Item {
	i, ok := s.SectionIndex(section)
	if !ok {
		return nil
	}
	return s.ItemsAt(i)
}

// ItemsAt returns a copy of the items in the section at index i.
func (s *Snapshot) ItemsAt(i int) []Item {
	if s == nil || i < 0 || i >= len(s.sections) {
		return nil
	}
	return append([]Item(nil), s.sections[i].Items...)
}

// ItemIDs returns every identity in display order.
func (s *Snapshot) ItemIDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, s.NumberOfItems())
	for _, sec := range s.sections {
		for _, item := range sec.Items {
			ids = append(ids, item.ItemID())
		}
	}
	return ids
}

// Position reports where the identity sits in this snapshot.
func (s *Snapshot) Position(id string) (Position, bool) {
	if s == nil {
		return Position{}, false
	}
	pos, ok := s.index[id]
	return pos, ok
}

// Item returns the item with the given identity.
func (s *Snapshot) Item(id string) (Item, bool) {
	pos, ok := s.Position(id)
	if !ok {
		return nil, false
	}
	return s.sections[pos.Section].Items[pos.Index], true
}

// SectionOf returns the name of the section containing the identity.
func (s *Snapshot) SectionOf(id string) (string, bool) {
	pos, ok := s.Position(id)
	if !ok {
		return "", false
	}
	return s.sections[pos.Section].Name, true
}

// Builder returns a builder seeded with this snapshot's contents. Building it
// yields a new snapshot; s is never modified.
func (s *Snapshot) Builder() *Builder {
	b := NewBuilder()
	if s == nil {
		return b
	}
	for _, sec := range s.sections {
		b.sections = append(b.sections, Section{Name: sec.Name, Items: append([]Item(nil), sec.Items...)})
	}
	return b
}
