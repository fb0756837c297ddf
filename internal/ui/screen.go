package ui

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/videogrid/internal/config"
	"github.com/ytget/videogrid/internal/model"
	"github.com/ytget/videogrid/internal/platform"
	"github.com/ytget/videogrid/internal/render"
	"github.com/ytget/videogrid/internal/search"
	"github.com/ytget/videogrid/internal/snapshot"
)

// linked is implemented by items that open a page when selected
type linked interface {
	Href() string
}

// VideoScreen is the main window content: a search entry above the video grid.
type VideoScreen struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	thumbnails *ThumbnailCache
	grid       *VideoGrid
	list       *render.List
	controller *search.Controller

	searchEntry *widget.Entry
	statusLabel *widget.Label
	emptyLabel  *widget.Label
	reloadBtn   *widget.Button
	settingsBtn *widget.Button

	lastResult search.Result
}

// LoadCatalog returns the catalog named in settings, or the bundled one.
func LoadCatalog(settings *config.Settings) ([]model.Video, error) {
	path := settings.GetCatalogPath()
	if path == "" {
		return model.BundledCatalog(), nil
	}
	return model.LoadCatalogFile(path)
}

// catalogDirs are searched for relative thumbnail references
func catalogDirs(catalogPath string) []string {
	if catalogPath == "" {
		return []string{"."}
	}
	return []string{filepath.Dir(catalogPath), "."}
}

// NewVideoScreen builds the screen into window and starts showing videos.
func NewVideoScreen(app fyne.App, window fyne.Window, settings *config.Settings, videos []model.Video) *VideoScreen {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	dirs := catalogDirs(settings.GetCatalogPath())
	thumbnails, err := NewThumbnailCache(settings.GetThumbnailCacheSize(), dirs...)
	if err != nil {
		log.Printf("Failed to create thumbnail cache: %v", err)
		thumbnails, _ = NewThumbnailCache(config.DefaultThumbnailCacheSize, dirs...)
	}

	s := &VideoScreen{
		app:          app,
		window:       window,
		settings:     settings,
		localization: localization,
		thumbnails:   thumbnails,
	}

	s.grid = NewVideoGrid(newVideoCellProvider(thumbnails), settings.GetLayoutMode())
	s.grid.SetAnimation(settings.GetAnimateDifferences(), settings.GetAnimationDuration())
	s.grid.SetOnSelect(s.openItem)

	s.list = render.NewList(s.grid)
	s.grid.SetList(s.list)

	s.controller = search.NewController(s.list, fyne.DoAndWait, videos)
	s.controller.SetResultCallback(s.onResult)

	window.SetTitle(localization.GetText(KeyAppTitle))
	s.setupUI()
	window.SetOnClosed(s.Close)

	s.controller.Refresh(false)

	log.Printf("Video screen initialized with %d videos", len(videos))
	return s
}

// setupUI creates the widgets and sets the window content
func (s *VideoScreen) setupUI() {
	s.createMenu()

	s.searchEntry = widget.NewEntry()
	s.searchEntry.SetPlaceHolder(s.localization.GetText(KeySearchPlaceholder))
	s.searchEntry.OnChanged = s.controller.Update

	s.reloadBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), s.ReloadCatalog)
	s.reloadBtn.Importance = widget.LowImportance

	s.settingsBtn = widget.NewButton(IconSettings, s.onShowSettings)
	s.settingsBtn.Importance = widget.LowImportance

	s.statusLabel = widget.NewLabel("")
	s.statusLabel.SizeName = theme.SizeNameCaptionText

	s.emptyLabel = widget.NewLabel(s.localization.GetText(KeyNoResults))
	s.emptyLabel.Alignment = fyne.TextAlignCenter
	s.emptyLabel.Hide()

	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, container.NewHBox(s.reloadBtn, s.settingsBtn), s.searchEntry),
		s.statusLabel,
	)
	center := container.NewStack(s.grid.Container(), container.NewCenter(s.emptyLabel))

	s.window.SetContent(container.NewBorder(top, nil, nil, nil, center))
}

// createMenu creates the application menu
func (s *VideoScreen) createMenu() {
	reloadItem := fyne.NewMenuItem(s.localization.GetText(KeyReloadCatalog), s.ReloadCatalog)
	settingsItem := fyne.NewMenuItem(s.localization.GetText(KeySettings), s.onShowSettings)

	languageMenu := fyne.NewMenu(s.localization.GetText(KeyLanguage))
	for code, name := range s.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			s.onLanguageChange(langCode)
		})
		langItem.Checked = s.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	s.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(s.localization.GetText(KeyFile), reloadItem, settingsItem),
		languageMenu,
	))
}

// Close stops the query worker
func (s *VideoScreen) Close() {
	s.controller.Close()
}

// ReloadCatalog reads the catalog again and shows it under the current query.
func (s *VideoScreen) ReloadCatalog() {
	videos, err := LoadCatalog(s.settings)
	if err != nil {
		log.Printf("Failed to reload catalog: %v", err)
		dialog.ShowError(fmt.Errorf("%s: %w", s.localization.GetText(KeyErrorLoadCatalog), err), s.window)
		return
	}

	s.thumbnails.SetDirs(catalogDirs(s.settings.GetCatalogPath())...)
	s.controller.SetVideos(videos, s.settings.GetAnimateDifferences())
	log.Printf("Catalog reloaded with %d videos", len(videos))
}

// openItem opens the link of a selected item. Items without a valid link are
// ignored.
func (s *VideoScreen) openItem(item snapshot.Item) {
	l, ok := item.(linked)
	if !ok {
		log.Printf("Item %s has no link", item.ItemID())
		return
	}

	u, err := platform.ValidateLink(l.Href())
	if err != nil {
		log.Printf("Ignoring selection of %s: %v", item.ItemID(), err)
		return
	}

	if err := s.app.OpenURL(u); err != nil {
		log.Printf("Failed to open %s: %v", u, err)
	}
}

// onResult updates the status line after each processed query
func (s *VideoScreen) onResult(r search.Result) {
	s.lastResult = r
	if r.Err != nil {
		return
	}

	s.statusLabel.SetText(fmt.Sprintf(s.localization.GetText(KeyShowingCount), r.Shown, r.Total))
	if r.Shown == 0 && r.Total > 0 {
		s.emptyLabel.Show()
	} else {
		s.emptyLabel.Hide()
	}
}

// onShowSettings shows the settings dialog
func (s *VideoScreen) onShowSettings() {
	ShowSettingsDialog(s.window, s.settings, s.localization, s.applySettings)
}

// applySettings pushes saved settings into the running screen
func (s *VideoScreen) applySettings(catalogChanged bool) {
	s.grid.SetAnimation(s.settings.GetAnimateDifferences(), s.settings.GetAnimationDuration())
	s.grid.SetLayoutMode(s.settings.GetLayoutMode())
	s.thumbnails.Resize(s.settings.GetThumbnailCacheSize())

	if lang := s.settings.GetLanguage(); lang != s.localization.GetCurrentLanguage() {
		s.localization.SetLanguage(lang)
		s.refreshUITexts()
		s.createMenu()
	}

	if catalogChanged {
		s.ReloadCatalog()
	}
}

// onLanguageChange handles language change
func (s *VideoScreen) onLanguageChange(langCode string) {
	s.localization.SetLanguage(langCode)
	s.settings.SetLanguage(langCode)
	s.refreshUITexts()
	s.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (s *VideoScreen) refreshUITexts() {
	s.window.SetTitle(s.localization.GetText(KeyAppTitle))
	s.searchEntry.SetPlaceHolder(s.localization.GetText(KeySearchPlaceholder))
	s.emptyLabel.SetText(s.localization.GetText(KeyNoResults))
	s.onResult(s.lastResult)
}
