package model

// Package model defines domain data structures shared across the app: layer
// kinds, instruments and wavelengths, the external layer Provider contract and
// the per-entry LayerState record the layer manager renders from.
