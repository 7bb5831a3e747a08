// Package assets exposes the font data compiled into the binary.
//
// The brand logo is read from the project tree at run time instead of being
// embedded, so a missing logo exercises the text-mark fallback.
package assets

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// BoldTTF and RegularTTF stand in for the system font files when they are absent.
var (
	BoldTTF    = gobold.TTF
	RegularTTF = goregular.TTF
)
