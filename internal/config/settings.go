package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/helioviewer/sunviewer/internal/layers"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage         = "app_language"
	KeyToggleDurationMs = "layer_toggle_duration_ms"
	KeyRemovalPolicy    = "layer_removal_policy"
	KeyStartExpanded    = "layer_panel_start_expanded"
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultToggleDurationMs = 400
	DefaultRemovalPolicy    = layers.RemovalInert
	DefaultStartExpanded    = false

	MaxToggleDurationMs = 5000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
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

// GetToggleDuration returns how long the layer panel slide takes
func (s *Settings) GetToggleDuration() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyToggleDurationMs, DefaultToggleDurationMs)
	return time.Duration(clampDuration(ms)) * time.Millisecond
}

// SetToggleDuration sets the layer panel slide duration in milliseconds
func (s *Settings) SetToggleDuration(ms int) {
	s.app.Preferences().SetInt(KeyToggleDurationMs, clampDuration(ms))
}

func clampDuration(ms int) int {
	if ms < 0 {
		return 0
	}
	if ms > MaxToggleDurationMs {
		return MaxToggleDurationMs
	}
	return ms
}

// GetRemovalPolicy returns what "layer removed" does to the table
func (s *Settings) GetRemovalPolicy() layers.RemovalPolicy {
	policy := s.app.Preferences().String(KeyRemovalPolicy)
	if policy == "" {
		s.SetRemovalPolicy(DefaultRemovalPolicy)
		return DefaultRemovalPolicy
	}
	return layers.ParseRemovalPolicy(policy)
}

// SetRemovalPolicy sets the removal policy
func (s *Settings) SetRemovalPolicy(policy layers.RemovalPolicy) {
	s.app.Preferences().SetString(KeyRemovalPolicy, string(layers.ParseRemovalPolicy(string(policy))))
}

// GetRemovalPolicyOptions returns available removal policies
func (s *Settings) GetRemovalPolicyOptions() []layers.RemovalPolicy {
	return []layers.RemovalPolicy{layers.RemovalInert, layers.RemovalDelete}
}

// GetStartExpanded returns whether the layer panel opens expanded
func (s *Settings) GetStartExpanded() bool {
	return s.app.Preferences().BoolWithFallback(KeyStartExpanded, DefaultStartExpanded)
}

// SetStartExpanded sets whether the layer panel opens expanded
func (s *Settings) SetStartExpanded(expanded bool) {
	s.app.Preferences().SetBool(KeyStartExpanded, expanded)
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
