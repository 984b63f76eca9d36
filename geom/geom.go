// Package geom converts template geometry into canvas coordinates.
//
// Templates express element positions and sizes in millimeters with the
// origin at the page's top-left corner. The drawing canvas runs in points
// with the same origin. Transform is the only conversion site in the
// engine; every renderer receives its geometry through it.
package geom

// PtPerMM is the number of PostScript points per millimeter (72 dpi / 25.4).
const PtPerMM = 72.0 / 25.4

// MMToPt converts a length in millimeters to points.
func MMToPt(mm float64) float64 {
	return mm * PtPerMM
}

// PtToMM converts a length in points to millimeters.
func PtToMM(pt float64) float64 {
	return pt / PtPerMM
}

// Transform converts a template position (millimeters, top-left origin)
// into canvas coordinates (points, top-left origin).
func Transform(xMM, yMM float64) (xPt, yPt float64) {
	return MMToPt(xMM), MMToPt(yMM)
}

// Untransform is the exact inverse of Transform.
func Untransform(xPt, yPt float64) (xMM, yMM float64) {
	return PtToMM(xPt), PtToMM(yPt)
}
