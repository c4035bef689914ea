// Package layout owns floor-plan geometry: the grid-unit to pixel
// translation shared by every renderer and the persistence boundary,
// and the canonical default floor plan.
package layout

// CellPixels is the single pixel-per-grid-unit scale. The value
// persisted to the store, the read-only viewer and the editor's
// save-time inverse conversion all use this one constant. Per-call-site
// multipliers are what caused the historical viewer/editor drift.
const CellPixels = 50

// SnapPixels is the editor's drag-snap resolution. It is finer than
// CellPixels and is a UI nicety only: positions snapped to it are
// re-quantized to CellPixels when the working copy is saved.
const SnapPixels = 25

// ToPixel converts a grid coordinate to pixels at the shared scale.
func ToPixel(g int) int {
	return g * CellPixels
}

// ToGrid converts a pixel coordinate back to grid units, rounding to
// the nearest cell. Grid coordinates are non-negative, so negative
// pixel positions clamp to 0. For every grid coordinate g >= 0,
// ToGrid(ToPixel(g)) == g.
func ToGrid(px int) int {
	if px < 0 {
		return 0
	}
	return (px + CellPixels/2) / CellPixels
}

// Snap rounds a pixel coordinate to the editor's snap resolution,
// clamping at 0.
func Snap(px int) int {
	if px < 0 {
		return 0
	}
	return (px + SnapPixels/2) / SnapPixels * SnapPixels
}
