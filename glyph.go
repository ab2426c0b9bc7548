package pfnt

import "image"

import "github.com/pixelfnt/pfnt/internal"

// A Glyph is a view over one storage slot of a [Font]: its scanline words
// and its advance width. The view aliases the font's storage, so it stays
// valid only while the font is neither expanded nor closed.
type Glyph struct {
	font  *Font
	index int
}

// Advance is the horizontal pixel advance of the glyph. Zero means the
// slot is present but blank.
func (self Glyph) Advance() uint8 { return self.font.widths[self.index] }

// Width is an alias of [Glyph.Advance]; for these fonts the inked box is
// not tracked separately.
func (self Glyph) Width() uint8 { return self.Advance() }

func (self Glyph) Height() uint8 { return self.font.glyphHeight }

// RowWord returns the scanline word of row y. Bit x (LSB-first) is pixel
// column x.
func (self Glyph) RowWord(y int) uint32 {
	return internal.DecodeUint32LE(self.rowBytes(y))
}

// BitAt reports whether pixel (x, y) of the glyph is set.
func (self Glyph) BitAt(x, y int) bool {
	return self.RowWord(y) & (1 << uint(x)) != 0
}

// SetBit sets or clears pixel (x, y). Mutating a glyph of a font that
// aliases a read-only region is the caller's hazard; clone first.
func (self Glyph) SetBit(x, y int, on bool) {
	row := self.rowBytes(y)
	word := internal.DecodeUint32LE(row)
	if on {
		word |= (1 << uint(x))
	} else {
		word &^= (1 << uint(x))
	}
	internal.EncodeUint32LE(row, word)
}

func (self Glyph) rowBytes(y int) []byte {
	offset := (self.index*int(self.font.glyphHeight) + y)*4
	return self.font.rows[offset : offset + 4]
}

// Rasterize renders the glyph into a fresh alpha mask of Advance() x
// Height() pixels, fully opaque where bits are set.
func (self Glyph) Rasterize() *image.Alpha {
	width, height := int(self.Advance()), int(self.Height())
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		word := self.RowWord(y)
		for x := 0; x < width; x++ {
			if word & (1 << uint(x)) != 0 {
				mask.Pix[y*mask.Stride + x] = 255
			}
		}
	}
	return mask
}
