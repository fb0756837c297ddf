package model

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBundledCatalog(t *testing.T) {
	videos := BundledCatalog()
	if len(videos) == 0 {
		t.Fatal("Expected bundled catalog to contain videos")
	}

	seen := make(map[string]bool)
	for _, v := range videos {
		if v.ID == "" {
			t.Errorf("Video %q has no identity", v.Title)
		}
		if seen[v.ID] {
			t.Errorf("Identity %s appears twice", v.ID)
		}
		seen[v.ID] = true
		if v.Title == "" || v.Link == "" {
			t.Errorf("Video %+v is missing title or link", v)
		}
	}

	if videos[0].Title != "Swift Basics" {
		t.Errorf("Expected catalog order to be preserved, first title %q", videos[0].Title)
	}
}

func TestLoadCatalog(t *testing.T) {
	input := `
videos:
  - title: "Swift Basics"
    link: "https://example.com/swift"
  - id: "pinned"
    title: "UIKit\tIntro"
    link: "https://example.com/uikit"
`
	videos, err := LoadCatalog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("Expected 2 videos, got %d", len(videos))
	}
	if videos[0].ID != IdentityFor("Swift Basics", "https://example.com/swift") {
		t.Errorf("Expected derived identity, got %s", videos[0].ID)
	}
	if videos[1].ID != "pinned" {
		t.Errorf("Expected pinned identity to be kept, got %s", videos[1].ID)
	}
	if videos[1].Title != "UIKit Intro" {
		t.Errorf("Expected cleaned title, got %q", videos[1].Title)
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	videos, err := LoadCatalog(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Expected no error for empty catalog, got %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("Expected no videos, got %d", len(videos))
	}
}

func TestLoadCatalog_Duplicate(t *testing.T) {
	input := `
videos:
  - title: "One"
    link: "https://example.com/same"
  - title: "Two"
    link: "https://example.com/same"
`
	_, err := LoadCatalog(strings.NewReader(input))
	if !errors.Is(err, ErrDuplicateVideo) {
		t.Fatalf("Expected ErrDuplicateVideo, got %v", err)
	}
	if !strings.Contains(err.Error(), "entries 1 and 2") {
		t.Errorf("Expected error to name the entries, got %v", err)
	}
}

func TestLoadCatalog_UnknownField(t *testing.T) {
	input := `
videos:
  - title: "One"
    rating: 5
`
	if _, err := LoadCatalog(strings.NewReader(input)); err == nil {
		t.Error("Expected error for unknown field")
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "videos:\n  - title: \"Beginning Git\"\n    link: \"https://example.com/git\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}

	videos, err := LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(videos) != 1 || videos[0].Title != "Beginning Git" {
		t.Errorf("Unexpected videos: %+v", videos)
	}

	if _, err := LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadCatalog_MatchesNewVideo(t *testing.T) {
	input := `
videos:
  - title: " Swift Basics "
    link: "https://example.com/swift"
    thumbnail: " swift.png "
`
	videos, err := LoadCatalog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := NewVideo("Swift Basics", "https://example.com/swift", "swift.png")
	if len(videos) != 1 || !videos[0].Equal(want) {
		t.Errorf("Expected catalog entry to equal %+v, got %+v", want, videos)
	}
}
