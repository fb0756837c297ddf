package ui

import (
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/videogrid/internal/config"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 500
	SettingsDialogHeight = 420
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(catalogChanged bool)

	// UI components
	animateCheck     *widget.Check
	durationEntry    *widget.Entry
	cacheSizeEntry   *widget.Entry
	layoutSelect     *widget.Select
	catalogPathEntry *widget.Entry
	languageSelect   *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after the settings were written.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(catalogChanged bool)) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.animateCheck = widget.NewCheck(text(KeyAnimateDifferences), nil)

	sd.durationEntry = widget.NewEntry()
	sd.durationEntry.SetPlaceHolder(strconv.Itoa(config.DefaultAnimationMillis))

	sd.cacheSizeEntry = widget.NewEntry()
	sd.cacheSizeEntry.SetPlaceHolder(strconv.Itoa(config.DefaultThumbnailCacheSize))

	layoutOptions := []string{}
	for _, mode := range sd.settings.GetLayoutModeOptions() {
		layoutOptions = append(layoutOptions, string(mode))
	}
	sd.layoutSelect = widget.NewSelect(layoutOptions, nil)

	sd.catalogPathEntry = widget.NewEntry()
	sd.catalogPathEntry.SetPlaceHolder(text(KeyBundledCatalog))
	browseBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseCatalog)
	catalogRow := container.NewBorder(nil, nil, nil, browseBtn, sd.catalogPathEntry)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		sd.animateCheck,

		widget.NewLabel(text(KeyAnimationDuration)+":"),
		sd.durationEntry,

		widget.NewLabel(text(KeyThumbnailCache)+":"),
		sd.cacheSizeEntry,

		widget.NewLabel(text(KeyLayoutMode)+":"),
		sd.layoutSelect,

		widget.NewLabel(text(KeyCatalogPath)+":"),
		catalogRow,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.animateCheck.SetChecked(sd.settings.GetAnimateDifferences())
	sd.durationEntry.SetText(strconv.Itoa(int(sd.settings.GetAnimationDuration() / time.Millisecond)))
	sd.cacheSizeEntry.SetText(strconv.Itoa(sd.settings.GetThumbnailCacheSize()))
	sd.layoutSelect.SetSelected(string(sd.settings.GetLayoutMode()))
	sd.catalogPathEntry.SetText(sd.settings.GetCatalogPath())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseCatalog picks a catalog file
func (sd *SettingsDialog) onBrowseCatalog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.catalogPathEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save writes the form to settings and reports to onSaved
func (sd *SettingsDialog) save() {
	sd.settings.SetAnimateDifferences(sd.animateCheck.Checked)

	if ms, err := strconv.Atoi(sd.durationEntry.Text); err == nil {
		sd.settings.SetAnimationDuration(time.Duration(ms) * time.Millisecond)
	}

	if size, err := strconv.Atoi(sd.cacheSizeEntry.Text); err == nil {
		sd.settings.SetThumbnailCacheSize(size)
	}

	if sd.layoutSelect.Selected != "" {
		sd.settings.SetLayoutMode(config.LayoutMode(sd.layoutSelect.Selected))
	}

	catalogChanged := sd.catalogPathEntry.Text != sd.settings.GetCatalogPath()
	sd.settings.SetCatalogPath(sd.catalogPathEntry.Text)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved(catalogChanged)
	}
}
