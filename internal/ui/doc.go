package ui

// Package ui contains the Fyne-based desktop user interface for the viewer.
// LayerManager renders the layer table and bridges layer notifications from
// the event bus to LayerRow widgets; row controls publish their changes back
// on the same bus. All UI strings are localized via Localization.
