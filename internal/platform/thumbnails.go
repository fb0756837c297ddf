package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ThumbnailExtensions are tried, in order, when a thumbnail reference has no
// extension or the named file is missing.
var ThumbnailExtensions = []string{".png", ".jpg", ".jpeg"}

// ErrThumbnailNotFound is returned when no candidate file exists
var ErrThumbnailNotFound = errors.New("thumbnail not found")

// ResolveThumbnail finds the file for ref. Absolute references are checked
// as is; relative ones are looked up under each dir in turn. Each candidate is
// also tried with ThumbnailExtensions swapped in.
func ResolveThumbnail(ref string, dirs ...string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: empty reference", ErrThumbnailNotFound)
	}
	if strings.HasPrefix(ref, "http") {
		return "", fmt.Errorf("%w: %s is a URL", ErrThumbnailNotFound, ref)
	}

	var bases []string
	if filepath.IsAbs(ref) {
		bases = []string{ref}
	} else {
		for _, dir := range dirs {
			bases = append(bases, filepath.Join(dir, ref))
		}
	}

	for _, base := range bases {
		for _, candidate := range thumbnailCandidates(base) {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s", ErrThumbnailNotFound, ref)
}

func thumbnailCandidates(path string) []string {
	stem := strings.TrimSuffix(path, filepath.Ext(path))
	candidates := []string{path}
	for _, ext := range ThumbnailExtensions {
		if alt := stem + ext; alt != path {
			candidates = append(candidates, alt)
		}
	}
	return candidates
}
