package snapshot

import (
	"errors"
	"fmt"
)

// Builder misuse errors. They are wrapped with the offending name or identity.
var (
	ErrDuplicateSection = errors.New("duplicate section")
	ErrUnknownSection   = errors.New("unknown section")
	ErrUnknownItem      = errors.New("unknown item")
	ErrNoSection        = errors.New("no section to append to")
)

// DuplicateIdentityError reports an item identity that occurs twice in one
// snapshot. It is a precondition violation: callers must hand in unique items.
type DuplicateIdentityError struct {
	ID            string
	FirstSection  string
	SecondSection string
}

func (e *DuplicateIdentityError) Error() string {
	if e.FirstSection == e.SecondSection {
		return fmt.Sprintf("duplicate item identity %q in section %q", e.ID, e.FirstSection)
	}
	return fmt.Sprintf("duplicate item identity %q in sections %q and %q", e.ID, e.FirstSection, e.SecondSection)
}
