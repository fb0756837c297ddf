package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// LayoutMode forces a grid layout or leaves it to the device
type LayoutMode string

const (
	LayoutAuto   LayoutMode = "auto"
	LayoutPhone  LayoutMode = "phone"
	LayoutTablet LayoutMode = "tablet"
)

// Settings keys for Fyne preferences
const (
	KeyAnimateDifferences = "animate_differences"
	KeyAnimationMillis    = "animation_duration_ms"
	KeyLanguage           = "app_language"
	KeyCatalogPath        = "catalog_path"
	KeyThumbnailCacheSize = "thumbnail_cache_size"
	KeyLayoutMode         = "layout_mode"
)

// Default values
const (
	DefaultAnimateDifferences = true
	DefaultAnimationMillis    = 300
	DefaultLanguage           = "system"
	DefaultThumbnailCacheSize = 64
	DefaultLayoutMode         = LayoutAuto
)

const (
	minAnimationMillis = 50
	maxAnimationMillis = 2000
	minThumbnailCache  = 8
	maxThumbnailCache  = 512
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAnimateDifferences reports whether list changes are animated
func (s *Settings) GetAnimateDifferences() bool {
	return s.app.Preferences().BoolWithFallback(KeyAnimateDifferences, DefaultAnimateDifferences)
}

// SetAnimateDifferences sets whether list changes are animated
func (s *Settings) SetAnimateDifferences(animate bool) {
	s.app.Preferences().SetBool(KeyAnimateDifferences, animate)
}

// GetAnimationDuration returns how long a cell highlight lasts
func (s *Settings) GetAnimationDuration() time.Duration {
	value := s.app.Preferences().Int(KeyAnimationMillis)
	if value <= 0 {
		s.SetAnimationDuration(DefaultAnimationMillis * time.Millisecond)
		return DefaultAnimationMillis * time.Millisecond
	}
	return time.Duration(value) * time.Millisecond
}

// SetAnimationDuration sets the highlight duration, clamped to a sane range
func (s *Settings) SetAnimationDuration(d time.Duration) {
	ms := int(d / time.Millisecond)
	if ms < minAnimationMillis {
		ms = minAnimationMillis
	}
	if ms > maxAnimationMillis {
		ms = maxAnimationMillis
	}
	s.app.Preferences().SetInt(KeyAnimationMillis, ms)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetCatalogPath returns the catalog override, empty for the bundled catalog
func (s *Settings) GetCatalogPath() string {
	return s.app.Preferences().String(KeyCatalogPath)
}

// SetCatalogPath sets the catalog override; empty restores the bundled catalog
func (s *Settings) SetCatalogPath(path string) {
	if path == "" {
		s.app.Preferences().RemoveValue(KeyCatalogPath)
		return
	}
	s.app.Preferences().SetString(KeyCatalogPath, path)
}

// GetThumbnailCacheSize returns how many decoded thumbnails are kept
func (s *Settings) GetThumbnailCacheSize() int {
	value := s.app.Preferences().Int(KeyThumbnailCacheSize)
	if value <= 0 {
		s.SetThumbnailCacheSize(DefaultThumbnailCacheSize)
		return DefaultThumbnailCacheSize
	}
	return value
}

// SetThumbnailCacheSize sets the thumbnail cache size
func (s *Settings) SetThumbnailCacheSize(size int) {
	if size < minThumbnailCache {
		size = minThumbnailCache
	}
	if size > maxThumbnailCache {
		size = maxThumbnailCache
	}
	s.app.Preferences().SetInt(KeyThumbnailCacheSize, size)
}

// GetLayoutMode returns the layout override
func (s *Settings) GetLayoutMode() LayoutMode {
	switch mode := LayoutMode(s.app.Preferences().String(KeyLayoutMode)); mode {
	case LayoutAuto, LayoutPhone, LayoutTablet:
		return mode
	default:
		s.SetLayoutMode(DefaultLayoutMode)
		return DefaultLayoutMode
	}
}

// SetLayoutMode sets the layout override; unknown modes fall back to auto
func (s *Settings) SetLayoutMode(mode LayoutMode) {
	switch mode {
	case LayoutAuto, LayoutPhone, LayoutTablet:
	default:
		mode = DefaultLayoutMode
	}
	s.app.Preferences().SetString(KeyLayoutMode, string(mode))
}

// GetLayoutModeOptions returns available layout modes
func (s *Settings) GetLayoutModeOptions() []LayoutMode {
	return []LayoutMode{LayoutAuto, LayoutPhone, LayoutTablet}
}
