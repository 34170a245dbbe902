// Package buffer implements the pure, grapheme-accurate document model used by
// the formatting commands.
//
// Coordinates are 0-based (Line, Col) in grapheme clusters.
// Ranges are half-open in document coordinates: [Start, End).
//
// Document is an immutable value: Replace returns a new Document and never
// touches the receiver. Buffer is the mutable editing session a host keeps
// around; it owns one Document plus the caret/selection and commits edits
// all-or-nothing.
package buffer
