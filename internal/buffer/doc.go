// Package buffer composes the line store, the point and the viewport into a
// single editing unit, and exposes the movement and edit operations the
// application drives.
//
// The point is a single linear rune offset; line/column coordinates are
// derived from it on demand through the store's resolver. Every mutating
// operation leaves the point within [0, length] and the point's line inside
// the viewport.
package buffer
