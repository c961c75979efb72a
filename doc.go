// Package geomotion provides floating point rectangle geometry with
// layout-relative helpers.
//
// Users import this single package for the complete public API: value types,
// sentinel rectangles, construction and layout options, and anchors.
//
//	label := geomotion.NewRect(0, 0, 100, 20)
//	field := geomotion.Layout(label, geomotion.Below(header), geomotion.WithMargins(8))
//	center := field.Center(true)
package geomotion
