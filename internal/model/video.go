package model

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ytget/videogrid/internal/snapshot"
)

// titleNamespace scopes identities derived from a title when a video has no link.
var titleNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://videogrid.ytget.dev/title"))

// Video is one entry of the grid.
type Video struct {
	ID        string `yaml:"id,omitempty"`
	Title     string `yaml:"title"`
	Link      string `yaml:"link,omitempty"`
	Thumbnail string `yaml:"thumbnail,omitempty"`
	Author    string `yaml:"author,omitempty"`
	Duration  string `yaml:"duration,omitempty"`
}

// NewVideo creates a video with its identity derived from link and title.
func NewVideo(title, link, thumbnail string) Video {
	v := Video{
		Title:     cleanText(title),
		Link:      cleanLink(link),
		Thumbnail: strings.TrimSpace(thumbnail),
	}
	v.ID = IdentityFor(v.Title, v.Link)
	return v
}

// IdentityFor derives a stable identity. The link wins because titles get
// edited; a title only counts when the video has no link.
func IdentityFor(title, link string) string {
	if link != "" {
		return uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).String()
	}
	return uuid.NewSHA1(titleNamespace, []byte(title)).String()
}

// ItemID returns the video identity.
func (v Video) ItemID() string {
	return v.ID
}

// Equal reports whether other is a Video with the same identity and payload.
func (v Video) Equal(other snapshot.Item) bool {
	o, ok := other.(Video)
	return ok && o == v
}

// DisplayTitle returns the title, or the link when the title is empty.
func (v Video) DisplayTitle() string {
	if v.Title != "" {
		return v.Title
	}
	return v.Link
}

// Subtitle joins author and duration for the second line of a cell.
func (v Video) Subtitle() string {
	var parts []string
	if v.Author != "" {
		parts = append(parts, v.Author)
	}
	if v.Duration != "" {
		parts = append(parts, v.Duration)
	}
	return strings.Join(parts, " · ")
}

// ThumbnailRef returns the thumbnail reference as stored in the catalog.
func (v Video) ThumbnailRef() string {
	return v.Thumbnail
}

// Href returns the raw link the video opens.
func (v Video) Href() string {
	return v.Link
}

// cleanText flattens control whitespace so titles render on one line.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}

func cleanLink(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\t", "")
	return strings.TrimSpace(s)
}
