package events

// Topic names a notification channel on the bus
type Topic string

const (
	// TopicLayerPrepared carries a model.Provider whose setup has completed
	TopicLayerPrepared Topic = "layer.prepared"

	// TopicLayerRemoved carries the removed provider's ID (string)
	TopicLayerRemoved Topic = "layer.removed"

	// TopicInstrumentChanged carries an InstrumentChange
	TopicInstrumentChanged Topic = "layer.instrument_changed"

	// TopicWavelengthChanged carries a WavelengthChange
	TopicWavelengthChanged Topic = "layer.wavelength_changed"

	// TopicLayerEnabledChanged carries an EnabledChange
	TopicLayerEnabledChanged Topic = "layer.enabled_changed"

	// TopicOpacityRejected carries an OpacityInputError
	TopicOpacityRejected Topic = "layer.opacity_rejected"
)

// InstrumentChange is published when a row's instrument selection changes
type InstrumentChange struct {
	ID         int
	Instrument string
}

// WavelengthChange is published when a row's wavelength selection changes
type WavelengthChange struct {
	ID         int
	Wavelength int
}

// EnabledChange is published when a row's enabled box is toggled
type EnabledChange struct {
	ID      int
	Enabled bool
}

// OpacityInputError reports opacity input that was forwarded despite being
// malformed or out of range.
type OpacityInputError struct {
	ID    int
	Input string
	Value float64
	Err   error
}
