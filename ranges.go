package pfnt

import "github.com/pixelfnt/pfnt/internal"

// The range index: every code point belongs to the 256-wide range
// codePoint/256. Present ranges are assigned dense slots in ascending
// range order, so the storage index of a code point is
// rangePositions[codePoint/256]*256 + codePoint%256.

// GlyphIndex resolves a code point to its storage slot. The second result
// is false when the code point's range has no storage in this font.
func (self *Font) GlyphIndex(codePoint rune) (int, bool) {
	rangeIndex := int(codePoint) / 256
	if rangeIndex < 0 || rangeIndex >= len(self.rangePositions) { return 0, false }
	position := self.rangePositions[rangeIndex]
	if position == internal.NoRangePosition { return 0, false }
	return int(position)*256 + int(codePoint)%256, true
}

// HasRange reports whether the 256-code-point range containing the code
// point has storage.
func (self *Font) HasRange(codePoint rune) bool {
	_, found := self.GlyphIndex(codePoint)
	return found
}

// Rebuilds rangePositions from the coverage bitmap: walking bytes in order
// and bits LSB to MSB, each set bit claims the next dense slot, each clear
// bit gets the sentinel. Also recomputes glyphCount. Invoked on every
// decode and after every expansion.
func (self *Font) rebuildRangePositions() {
	self.rangePositions = self.rangePositions[:0]
	self.glyphCount = 0
	var next int32
	for _, maskByte := range self.rangeMask {
		for bit := 0; bit < 8; bit++ {
			if maskByte & (1 << bit) != 0 {
				self.rangePositions = append(self.rangePositions, next)
				next += 1
				self.glyphCount += 256
			} else {
				self.rangePositions = append(self.rangePositions, internal.NoRangePosition)
			}
		}
	}
}

// Number of present ranges strictly below the given range index. This is
// the dense slot a newly inserted range would take.
func (self *Font) presentRangesBelow(rangeIndex int) int {
	var count int
	for r := 0; r < rangeIndex && r < len(self.rangePositions); r++ {
		if self.rangePositions[r] != internal.NoRangePosition { count += 1 }
	}
	return count
}
