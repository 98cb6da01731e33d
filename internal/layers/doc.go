package layers

// Package layers implements the layer registry: an insertion-ordered,
// id-keyed collection of row handles and per-entry state.
//
// Ids come from a monotonic counter owned by the registry. While removal is
// inert that counter always equals Size() at insertion time; once entries can
// be deleted the counter keeps ids unique, so ids are never reused.
