// Package emoji implements a width oracle for code points a bitmap font
// has no glyph for. Widths come from fallback images stored as one PNG
// per code point ("U+1F600.png") under a base directory.
package emoji

import "fmt"
import "image/png"
import "os"
import "path/filepath"

// IsEmoji is a coarse check for code points that plausibly have a
// fallback image: the pictograph, emoticon and symbol blocks. It exists
// to skip filesystem probes for ordinary text.
func IsEmoji(codePoint rune) bool {
	switch {
	case codePoint >= 0x1F000 && codePoint <= 0x1FAFF: // emoticons, pictographs, symbols
		return true
	case codePoint >= 0x2600 && codePoint <= 0x27BF: // misc symbols and dingbats
		return true
	case codePoint >= 0x2B00 && codePoint <= 0x2BFF: // arrows, stars
		return true
	case codePoint >= 0xFE00 && codePoint <= 0xFE0F: // variation selectors
		return true
	default:
		return false
	}
}

// A Dir resolves fallback widths from PNG files under a directory. Hits
// and misses are both cached, so each code point probes the filesystem at
// most once. A Dir is not safe for concurrent use.
//
// Dir implements [pfnt.WidthOracle].
type Dir struct {
	path   string
	widths map[rune]int // cached; misses stored as -1
}

func NewDir(path string) *Dir {
	return &Dir{ path: path, widths: make(map[rune]int) }
}

// CodePointWidth returns the pixel width of the code point's fallback
// image, or false when no image exists for it.
func (self *Dir) CodePointWidth(codePoint rune) (int, bool) {
	if !IsEmoji(codePoint) { return 0, false }

	width, cached := self.widths[codePoint]
	if cached {
		if width < 0 { return 0, false }
		return width, true
	}

	width = self.probe(codePoint)
	self.widths[codePoint] = width
	if width < 0 { return 0, false }
	return width, true
}

func (self *Dir) probe(codePoint rune) int {
	file, err := os.Open(filepath.Join(self.path, fmt.Sprintf("U+%X.png", codePoint)))
	if err != nil { return -1 }
	defer file.Close()

	config, err := png.DecodeConfig(file)
	if err != nil { return -1 }
	return config.Width
}
