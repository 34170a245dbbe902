// Package editor provides a Bubble Tea markdown editor component backed by
// the buffer package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering, and host integration hooks (formatting command
// bindings, the link and image URL popover, embed-aware paste, and change
// events). Formatting itself is done by the command package; the editor only
// commits the edits it returns.
package editor
