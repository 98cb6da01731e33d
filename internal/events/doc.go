package events

// Package events provides the publish/subscribe bus the layer manager is
// injected with. Topics and payload types for layer notifications live here
// so producers and consumers agree on them without importing each other.
