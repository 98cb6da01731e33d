package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconHelp     = "?"
	IconWarning  = "⚠"
	IconSun      = "☀"
)

// Text fragments
const (
	PercentSuffix      = "%"
	MiddleDotSeparator = " · "
	UnknownLayerText   = "Unknown Layer"
	EventsText         = "Events"
)

// Layer table column widths, in header order
const (
	InstrumentColumnWidth float32 = 90
	WavelengthColumnWidth float32 = 90
	OpacityColumnWidth    float32 = 90
	EnabledColumnWidth    float32 = 70
	RemoveColumnWidth     float32 = 70
	MoveColumnWidth       float32 = 60
)

// Layout sizing (LayerRow / panel)
const (
	RowMinWidth  float32 = 480
	RowMinHeight float32 = 36

	PanelMinWidth float32 = 500
)

// Panel animation
const (
	DefaultToggleDuration = 400 * time.Millisecond
)

// Status bar behavior
const (
	StatusAutoClear = 5 * time.Second
)

// Dialog sizes
const (
	HelpDialogWidth      = 420
	HelpDialogHeight     = 480
	SettingsDialogWidth  = 420
	SettingsDialogHeight = 320
)
