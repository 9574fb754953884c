// Package text provides the in-memory line store for a single document.
//
// A Store holds the document as an ordered sequence of lines with cached
// totals, and resolves linear rune offsets to line coordinates. It is the
// addressing primitive every cursor movement is built on.
//
// The offset resolver performs a linear scan over the lines. That is a known
// performance ceiling: fine for interactive editing of modest files, not for
// very large ones. A replacement (line-offset index, piece table, rope) can be
// swapped in behind the same Resolve contract.
package text
