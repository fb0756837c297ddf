package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySearchPlaceholder  = "search_placeholder"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyReloadCatalog      = "reload_catalog"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeyNoResults          = "no_results"
	KeyShowingCount       = "showing_count"
	KeyErrorLoadCatalog   = "error_load_catalog"
	KeyInvalidLink        = "invalid_link"
	KeyAnimateDifferences = "animate_differences"
	KeyAnimationDuration  = "animation_duration"
	KeyThumbnailCache     = "thumbnail_cache"
	KeyLayoutMode         = "layout_mode"
	KeyCatalogPath        = "catalog_path"
	KeyBundledCatalog     = "bundled_catalog"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// System locale detection is not wired; English is the default
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Videos",
		KeySearchPlaceholder:  "Search videos",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyReloadCatalog:      "Reload Catalog",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyNoResults:          "No videos match your search",
		KeyShowingCount:       "%d of %d videos",
		KeyErrorLoadCatalog:   "Could not load catalog",
		KeyInvalidLink:        "Invalid link",
		KeyAnimateDifferences: "Animate changes",
		KeyAnimationDuration:  "Highlight duration (ms)",
		KeyThumbnailCache:     "Thumbnail cache size",
		KeyLayoutMode:         "Layout",
		KeyCatalogPath:        "Catalog file",
		KeyBundledCatalog:     "Bundled catalog",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Видео",
		KeySearchPlaceholder:  "Поиск видео",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyReloadCatalog:      "Обновить каталог",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyNoResults:          "Нет видео по вашему запросу",
		KeyShowingCount:       "%d из %d видео",
		KeyErrorLoadCatalog:   "Не удалось загрузить каталог",
		KeyInvalidLink:        "Неверная ссылка",
		KeyAnimateDifferences: "Анимировать изменения",
		KeyAnimationDuration:  "Длительность подсветки (мс)",
		KeyThumbnailCache:     "Размер кэша миниатюр",
		KeyLayoutMode:         "Раскладка",
		KeyCatalogPath:        "Файл каталога",
		KeyBundledCatalog:     "Встроенный каталог",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Vídeos",
		KeySearchPlaceholder:  "Pesquisar vídeos",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyReloadCatalog:      "Recarregar Catálogo",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyNoResults:          "Nenhum vídeo corresponde à pesquisa",
		KeyShowingCount:       "%d de %d vídeos",
		KeyErrorLoadCatalog:   "Não foi possível carregar o catálogo",
		KeyInvalidLink:        "Link inválido",
		KeyAnimateDifferences: "Animar alterações",
		KeyAnimationDuration:  "Duração do destaque (ms)",
		KeyThumbnailCache:     "Tamanho do cache de miniaturas",
		KeyLayoutMode:         "Layout",
		KeyCatalogPath:        "Arquivo de catálogo",
		KeyBundledCatalog:     "Catálogo embutido",
	}
}
