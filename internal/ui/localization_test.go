package ui

import "testing"

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if text := l.GetText(KeyInstrument); text != "Instrument" {
		t.Errorf("Expected 'Instrument', got '%s'", text)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if text := l.GetText(KeyLayers); text != "Слои" {
		t.Errorf("Expected Russian text, got '%s'", text)
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language to stay ru, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to map to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if text := l.GetText("no_such_key"); text != "no_such_key" {
		t.Errorf("Expected key fallback, got '%s'", text)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("Missing texts for %s", lang)
			continue
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
