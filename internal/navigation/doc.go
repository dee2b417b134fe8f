// Package navigation is the single location for metadata about the
// application's view modes.
//
// It defines the ViewMode enumeration, the ordered category manifest built
// from it, query helpers over the manifest (serialization, positional
// indexes, reverse lookups), and the grouped menu structure handed to the
// presentation layer. The manifest is built once per process and is
// immutable afterwards, so every query is a plain read.
package navigation
