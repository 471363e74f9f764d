package tui

import "github.com/atotto/clipboard"

// SystemClipboard reads and writes the OS clipboard.
// Requires xclip, xsel or wl-clipboard on Linux.
type SystemClipboard struct{}

// ReadAll returns the clipboard contents.
func (SystemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// WriteAll replaces the clipboard contents with text.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
