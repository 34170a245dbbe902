// Package command implements the markdown formatting commands a writing
// surface runs against its text: inline decoration toggles, heading and
// blockquote line transforms, fenced code blocks, links and images, embed
// pastes, and the link popover placement.
//
// The Engine is stateless. Every operation takes a buffer.Document and a
// buffer.Selection snapshot and returns an EditResult the host commits with
// buffer.Buffer.Apply (or Document.Replace plus its own caret handling). An
// invalid selection fails with buffer.ErrInvalidRange and nothing should be
// applied.
package command
