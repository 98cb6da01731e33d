package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyLayers          = "layers"
	KeyInstrument      = "instrument"
	KeyWavelength      = "wavelength"
	KeyOpacity         = "opacity"
	KeyEnabled         = "enabled"
	KeyRemove          = "remove"
	KeyMove            = "move"
	KeyEvents          = "events"
	KeyUnknownLayer    = "unknown_layer"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyHelp            = "help"
	KeyShortcuts       = "shortcuts"
	KeyAddEITLayer     = "add_eit_layer"
	KeyAddLASLayer     = "add_las_layer"
	KeyAddEventLayer   = "add_event_layer"
	KeyRemoveLastLayer = "remove_last_layer"
	KeyToggleDuration  = "toggle_duration"
	KeyRemovalPolicy   = "removal_policy"
	KeyStartExpanded   = "start_expanded"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyNoLayers        = "no_layers"
	KeyInvalidOpacity  = "invalid_opacity"
	KeyLayerAdded      = "layer_added"
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
		// Use system locale - simplified to English for now
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

	// Final fallback - return key itself
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
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "SunViewer",
		KeyLayers:          "Layers",
		KeyInstrument:      "Instrument",
		KeyWavelength:      "Wavelength",
		KeyOpacity:         "Opacity",
		KeyEnabled:         "Enabled",
		KeyRemove:          "Remove",
		KeyMove:            "Move",
		KeyEvents:          EventsText,
		KeyUnknownLayer:    UnknownLayerText,
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyHelp:            "Help",
		KeyShortcuts:       "Keyboard & Mouse Shortcuts",
		KeyAddEITLayer:     "Add EIT Layer",
		KeyAddLASLayer:     "Add LAS Layer",
		KeyAddEventLayer:   "Add Event Markers",
		KeyRemoveLastLayer: "Remove Last Layer",
		KeyToggleDuration:  "Panel Slide Duration (ms)",
		KeyRemovalPolicy:   "On Layer Removal",
		KeyStartExpanded:   "Open layer panel on startup",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyNoLayers:        "No layers to remove",
		KeyInvalidOpacity:  "Opacity input not understood",
		KeyLayerAdded:      "Layer added",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "SunViewer",
		KeyLayers:          "Слои",
		KeyInstrument:      "Инструмент",
		KeyWavelength:      "Длина волны",
		KeyOpacity:         "Прозрачность",
		KeyEnabled:         "Вкл.",
		KeyRemove:          "Удалить",
		KeyMove:            "Порядок",
		KeyEvents:          "События",
		KeyUnknownLayer:    "Неизвестный слой",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyHelp:            "Справка",
		KeyShortcuts:       "Клавиши и мышь",
		KeyAddEITLayer:     "Добавить слой EIT",
		KeyAddLASLayer:     "Добавить слой LAS",
		KeyAddEventLayer:   "Добавить события",
		KeyRemoveLastLayer: "Удалить последний слой",
		KeyToggleDuration:  "Длительность анимации панели (мс)",
		KeyRemovalPolicy:   "При удалении слоя",
		KeyStartExpanded:   "Открывать панель слоёв при запуске",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyNoLayers:        "Нет слоёв для удаления",
		KeyInvalidOpacity:  "Неверное значение прозрачности",
		KeyLayerAdded:      "Слой добавлен",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "SunViewer",
		KeyLayers:          "Camadas",
		KeyInstrument:      "Instrumento",
		KeyWavelength:      "Comprimento de onda",
		KeyOpacity:         "Opacidade",
		KeyEnabled:         "Ativa",
		KeyRemove:          "Remover",
		KeyMove:            "Mover",
		KeyEvents:          "Eventos",
		KeyUnknownLayer:    "Camada desconhecida",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeyHelp:            "Ajuda",
		KeyShortcuts:       "Atalhos de teclado e mouse",
		KeyAddEITLayer:     "Adicionar camada EIT",
		KeyAddLASLayer:     "Adicionar camada LAS",
		KeyAddEventLayer:   "Adicionar eventos",
		KeyRemoveLastLayer: "Remover última camada",
		KeyToggleDuration:  "Duração da animação do painel (ms)",
		KeyRemovalPolicy:   "Ao remover camada",
		KeyStartExpanded:   "Abrir painel de camadas ao iniciar",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyNoLayers:        "Nenhuma camada para remover",
		KeyInvalidOpacity:  "Opacidade não reconhecida",
		KeyLayerAdded:      "Camada adicionada",
	}
}
