package pfnt

import "github.com/pixelfnt/pfnt/internal"

// EnsureSpaceFor gives the 256-code-point range containing codePoint its
// own storage block. Present ranges keep their glyphs and widths; the new
// block starts blank. No-op when the range already has storage.
//
// All replacement arrays are built before any field is committed, so a
// font is never observed partially expanded. After expansion the font
// owns its storage even if it previously aliased a byte region.
func (self *Font) EnsureSpaceFor(codePoint rune) error {
	if codePoint < 0 || int(codePoint) >= internal.MaxGlyphCount { return ErrCodePointOutOfRange }
	rangeIndex := int(codePoint) / 256
	bit := byte(1) << (rangeIndex % 8)
	if rangeIndex/8 < len(self.rangeMask) && self.rangeMask[rangeIndex/8] & bit != 0 {
		return nil // already present
	}

	// new coverage bitmap, grown when the range falls past its end
	maskSize := len(self.rangeMask)
	if internal.CeilDiv(rangeIndex + 1, 8) > maskSize {
		maskSize = internal.CeilDiv(rangeIndex + 1, 8)
	}
	newMask := make([]byte, maskSize)
	copy(newMask, self.rangeMask)
	newMask[rangeIndex/8] |= bit

	// splice a blank 256-glyph block at the range's dense slot
	slot := self.presentRangesBelow(rangeIndex)
	blockRowBytes := 256 * 4 * int(self.glyphHeight)
	newRows := make([]byte, len(self.rows) + blockRowBytes)
	copy(newRows, self.rows[ : slot*blockRowBytes])
	copy(newRows[(slot + 1)*blockRowBytes : ], self.rows[slot*blockRowBytes : ])

	newWidths := make([]byte, len(self.widths) + 256)
	copy(newWidths, self.widths[ : slot*256])
	copy(newWidths[(slot + 1)*256 : ], self.widths[slot*256 : ])

	// commit, then re-derive the positions table from the new bitmap
	// (patching it in place is fragile right after a bitmap growth)
	self.rangeMask = newMask
	self.rows = newRows
	self.widths = newWidths
	self.ownsArrays = true
	self.rebuildRangePositions()
	self.deriveWidthBounds()
	self.deriveXHeight()
	return nil
}
