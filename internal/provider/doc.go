package provider

// Package provider implements the viewer-side layer objects (tile and marker
// layers) and the service that prepares them in the background and announces
// them on the event bus. The layer manager only ever sees them through
// model.Provider.
