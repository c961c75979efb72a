// Package geom implements floating point rectangle geometry and a small
// relative-layout vocabulary built on top of it.
//
// The primitives ([Rect.Union], [Rect.Intersection], [Rect.ContainsPoint],
// [Rect.Inset], [Rect.Equal]) follow CoreGraphics rectangle semantics,
// including the [Null] and [Infinite] sentinels. The rest of the package adds
// named accessors, directional helpers, anchor points, operand-typed
// arithmetic and [Layout], which places a rectangle next to others.
//
// Types are re-exported through the root geomotion package for public consumption.
package geom
