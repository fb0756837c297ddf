package model

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var bundledCatalog []byte

// ErrDuplicateVideo is returned when two catalog entries share an identity.
var ErrDuplicateVideo = errors.New("duplicate video")

// catalogFile is the on-disk YAML layout.
type catalogFile struct {
	Videos []Video `yaml:"videos"`
}

// LoadCatalog decodes a YAML catalog. Entries without an id get one derived
// from their link (or title); titles and links are cleaned. Identities must be
// unique because every catalog ends up in a snapshot.
func LoadCatalog(r io.Reader) ([]Video, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return []Video{}, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	videos := make([]Video, 0, len(file.Videos))
	seen := make(map[string]int, len(file.Videos))
	for i, entry := range file.Videos {
		v := entry
		v.Title = cleanText(v.Title)
		v.Link = cleanLink(v.Link)
		v.Thumbnail = strings.TrimSpace(v.Thumbnail)
		v.Author = cleanText(v.Author)
		if v.ID == "" {
			v.ID = IdentityFor(v.Title, v.Link)
		}
		if first, dup := seen[v.ID]; dup {
			return nil, fmt.Errorf("%w: entries %d and %d share id %s", ErrDuplicateVideo, first+1, i+1, v.ID)
		}
		seen[v.ID] = i
		videos = append(videos, v)
	}
	return videos, nil
}

// LoadCatalogFile reads a catalog from path.
func LoadCatalogFile(path string) ([]Video, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// BundledCatalog returns the catalog compiled into the binary.
func BundledCatalog() []Video {
	videos, err := LoadCatalog(bytes.NewReader(bundledCatalog))
	if err != nil {
		panic(fmt.Sprintf("bundled catalog is invalid: %v", err))
	}
	return videos
}
