package snapshot

// Package snapshot describes one desired state of a sectioned list: named
// sections in order, each holding an ordered run of item identities. Snapshots
// are immutable once built and an identity appears at most once per snapshot.
