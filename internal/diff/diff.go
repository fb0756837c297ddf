package diff

import (
	"sort"

	"github.com/ytget/videogrid/internal/snapshot"
)

// Compute returns the edit script that turns prev into next.
//
// Identities only in prev are deleted, identities only in next are inserted.
// Identities in both stay put when they keep their section and belong to the
// longest run whose previous order is preserved; every other shared identity
// moves, which keeps the number of moves minimal. Stationary items whose
// payload changed are reloaded. Sections are diffed by name the same way.
//
// Changes are emitted as item deletes (descending previous position), section
// deletes (descending), section moves and inserts (ascending next index), item
// inserts and moves (ascending next position), then reloads.
func Compute(prev, next *snapshot.Snapshot) (Script, error) {
	if err := prev.Validate(); err != nil {
		return Script{}, err
	}
	if err := next.Validate(); err != nil {
		return Script{}, err
	}

	var changes []Change
	changes = append(changes, itemDeletes(prev, next)...)

	sectionDeletes, sectionPlacements := sectionChanges(prev, next)
	changes = append(changes, sectionDeletes...)
	changes = append(changes, sectionPlacements...)

	placements, reloads := itemPlacements(prev, next)
	changes = append(changes, placements...)
	changes = append(changes, reloads...)

	return Script{Changes: changes}, nil
}

func itemDeletes(prev, next *snapshot.Snapshot) []Change {
	var out []Change
	for si := prev.NumberOfSections() - 1; si >= 0; si-- {
		items := prev.ItemsAt(si)
		for ii := len(items) - 1; ii >= 0; ii-- {
			id := items[ii].ItemID()
			if _, ok := next.Position(id); ok {
				continue
			}
			out = append(out, Change{
				Op:   OpDelete,
				ID:   id,
				From: snapshot.Position{Section: si, Index: ii},
			})
		}
	}
	return out
}

func sectionChanges(prev, next *snapshot.Snapshot) (deletes, placements []Change) {
	for si := prev.NumberOfSections() - 1; si >= 0; si-- {
		name, _ := prev.SectionName(si)
		if _, ok := next.SectionIndex(name); !ok {
			deletes = append(deletes, Change{
				Op:   OpDeleteSection,
				ID:   name,
				From: snapshot.Position{Section: si},
			})
		}
	}

	names := next.SectionNames()
	var shared []int
	var order []int
	for ni, name := range names {
		if pi, ok := prev.SectionIndex(name); ok {
			shared = append(shared, ni)
			order = append(order, pi)
		}
	}
	stays := make(map[int]bool, len(shared))
	for k, keep := range longestIncreasing(order) {
		if keep {
			stays[shared[k]] = true
		}
	}

	for ni, name := range names {
		pi, existed := prev.SectionIndex(name)
		switch {
		case !existed:
			placements = append(placements, Change{
				Op: OpInsertSection,
				ID: name,
				To: snapshot.Position{Section: ni},
			})
		case !stays[ni]:
			placements = append(placements, Change{
				Op:   OpMoveSection,
				ID:   name,
				From: snapshot.Position{Section: pi},
				To:   snapshot.Position{Section: ni},
			})
		}
	}
	return deletes, placements
}

func itemPlacements(prev, next *snapshot.Snapshot) (placements, reloads []Change) {
	for si := 0; si < next.NumberOfSections(); si++ {
		name, _ := next.SectionName(si)
		items := next.ItemsAt(si)

		// Previous indices of items that were already in this section, in
		// next order; the longest increasing run among them stays put.
		var shared []int
		var order []int
		for ii, item := range items {
			pos, ok := prev.Position(item.ItemID())
			if !ok {
				continue
			}
			if prevName, _ := prev.SectionName(pos.Section); prevName != name {
				continue
			}
			shared = append(shared, ii)
			order = append(order, pos.Index)
		}
		stays := make(map[int]bool, len(shared))
		for k, keep := range longestIncreasing(order) {
			if keep {
				stays[shared[k]] = true
			}
		}

		for ii, item := range items {
			id := item.ItemID()
			to := snapshot.Position{Section: si, Index: ii}
			from, existed := prev.Position(id)
			switch {
			case !existed:
				placements = append(placements, Change{Op: OpInsert, ID: id, Item: item, To: to})
			case !stays[ii]:
				placements = append(placements, Change{Op: OpMove, ID: id, Item: item, From: from, To: to})
			default:
				old, _ := prev.Item(id)
				if !old.Equal(item) {
					reloads = append(reloads, Change{Op: OpReload, ID: id, Item: item, To: to})
				}
			}
		}
	}
	return placements, reloads
}

// longestIncreasing marks the members of one longest strictly increasing
// subsequence of seq.
func longestIncreasing(seq []int) []bool {
	keep := make([]bool, len(seq))
	if len(seq) == 0 {
		return keep
	}

	// tails[k] is the index into seq of the smallest tail of an increasing
	// run of length k+1.
	tails := make([]int, 0, len(seq))
	parent := make([]int, len(seq))
	for i, v := range seq {
		k := sort.Search(len(tails), func(j int) bool { return seq[tails[j]] >= v })
		if k > 0 {
			parent[i] = tails[k-1]
		} else {
			parent[i] = -1
		}
		if k == len(tails) {
			tails = append(tails, i)
		} else {
			tails[k] = i
		}
	}

	for i := tails[len(tails)-1]; i >= 0; i = parent[i] {
		keep[i] = true
	}
	return keep
}
