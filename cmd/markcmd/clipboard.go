package main

import "github.com/atotto/clipboard"

// systemClipboard adapts the OS clipboard for the editor. It only carries
// text, so file pastes never reach the editor through it.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }
