package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewVideo_Identity(t *testing.T) {
	a := NewVideo("Swift Basics", "https://example.com/swift", "swift.png")
	b := NewVideo("Swift Basics (2nd edition)", "https://example.com/swift", "swift.png")

	if a.ID == "" {
		t.Fatal("Expected identity to be derived")
	}
	if _, err := uuid.Parse(a.ID); err != nil {
		t.Errorf("Expected identity to be a UUID, got %q: %v", a.ID, err)
	}
	if a.ID != b.ID {
		t.Errorf("Expected identity to survive title edits, got %s and %s", a.ID, b.ID)
	}
	if a.Equal(b) {
		t.Error("Expected videos with different titles to be unequal")
	}
}

func TestIdentityFor(t *testing.T) {
	tests := []struct {
		name        string
		titleA      string
		linkA       string
		titleB      string
		linkB       string
		expectEqual bool
	}{
		{"same link", "A", "https://x/1", "B", "https://x/1", true},
		{"different link", "A", "https://x/1", "A", "https://x/2", false},
		{"title fallback", "Untitled", "", "Untitled", "", true},
		{"title fallback differs", "One", "", "Two", "", false},
		{"link beats title", "Same", "https://x/1", "Same", "", false},
	}

	for _, test := range tests {
		a := IdentityFor(test.titleA, test.linkA)
		b := IdentityFor(test.titleB, test.linkB)
		if (a == b) != test.expectEqual {
			t.Errorf("%s: IdentityFor equality = %v, expected %v", test.name, a == b, test.expectEqual)
		}
	}
}

func TestNewVideo_CleansText(t *testing.T) {
	v := NewVideo("\tUIKit\nIntro ", " https://example.com/uikit\n", " thumb.png ")

	if v.Title != "UIKit Intro" {
		t.Errorf("Expected cleaned title 'UIKit Intro', got %q", v.Title)
	}
	if v.Link != "https://example.com/uikit" {
		t.Errorf("Expected cleaned link, got %q", v.Link)
	}
	if v.Thumbnail != "thumb.png" {
		t.Errorf("Expected trimmed thumbnail, got %q", v.Thumbnail)
	}
}

func TestVideo_DisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		link     string
		expected string
	}{
		{"Swift Basics", "https://example.com/swift", "Swift Basics"},
		{"", "https://example.com/swift", "https://example.com/swift"},
		{"", "", ""},
	}

	for _, test := range tests {
		v := Video{Title: test.title, Link: test.link}
		if got := v.DisplayTitle(); got != test.expected {
			t.Errorf("DisplayTitle() with title=%q link=%q = %q, expected %q", test.title, test.link, got, test.expected)
		}
	}
}

func TestVideo_Subtitle(t *testing.T) {
	tests := []struct {
		author   string
		duration string
		expected string
	}{
		{"Audrey Tam", "1h 34m", "Audrey Tam · 1h 34m"},
		{"Audrey Tam", "", "Audrey Tam"},
		{"", "45m", "45m"},
		{"", "", ""},
	}

	for _, test := range tests {
		v := Video{Author: test.author, Duration: test.duration}
		if got := v.Subtitle(); got != test.expected {
			t.Errorf("Subtitle() = %q, expected %q", got, test.expected)
		}
	}
}

func TestVideo_Equal(t *testing.T) {
	v := NewVideo("Swift Basics", "https://example.com/swift", "")

	if !v.Equal(v) {
		t.Error("Expected video to equal itself")
	}

	edited := v
	edited.Duration = "10m"
	if v.Equal(edited) {
		t.Error("Expected payload change to break equality")
	}
	if v.ItemID() != edited.ItemID() {
		t.Error("Expected payload change to keep identity")
	}
}
