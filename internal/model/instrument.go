package model

import "strconv"

// Instrument names selectable for tile layers
const (
	InstrumentEIT = "EIT"
	InstrumentLAS = "LAS"
)

// Wavelengths (angstrom) selectable for EIT tile layers
const (
	Wavelength171 = 171
	Wavelength195 = 195
	Wavelength284 = 284
)

// Instruments returns the fixed instrument candidates in display order
func Instruments() []string {
	return []string{InstrumentEIT, InstrumentLAS}
}

// Wavelengths returns the fixed wavelength candidates in display order
func Wavelengths() []int {
	return []int{Wavelength171, Wavelength195, Wavelength284}
}

// WavelengthOptions returns the wavelength candidates formatted for a select
func WavelengthOptions() []string {
	options := make([]string, 0, len(Wavelengths()))
	for _, wl := range Wavelengths() {
		options = append(options, strconv.Itoa(wl))
	}
	return options
}

// HasWavelength reports whether an instrument is shown with a wavelength
// selector when a row is first built.
func HasWavelength(instrument string) bool {
	return instrument == InstrumentEIT
}

// HidesWavelength reports whether switching to instrument hides the
// wavelength selector.
func HidesWavelength(instrument string) bool {
	return instrument == InstrumentLAS
}
