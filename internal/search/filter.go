package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ytget/videogrid/internal/model"
	"github.com/ytget/videogrid/internal/snapshot"
)

// MainSection is the only section the video grid uses.
const MainSection = "main"

// Filter returns the videos whose display title contains query, ignoring case,
// in their original order. An empty query returns all unchanged.
func Filter(all []model.Video, query string) []model.Video {
	if query == "" {
		return all
	}

	// A Caser keeps state between calls, so each Filter gets its own.
	fold := cases.Fold()
	needle := fold.String(query)

	matched := make([]model.Video, 0, len(all))
	for _, v := range all {
		if strings.Contains(fold.String(v.DisplayTitle()), needle) {
			matched = append(matched, v)
		}
	}
	return matched
}

// BuildSnapshot places videos in MainSection, in order.
func BuildSnapshot(videos []model.Video) (*snapshot.Snapshot, error) {
	items := make([]snapshot.Item, len(videos))
	for i, v := range videos {
		items[i] = v
	}
	return snapshot.NewBuilder().
		AppendSections(MainSection).
		AppendItems(MainSection, items...).
		Build()
}
