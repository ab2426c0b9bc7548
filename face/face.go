// Package face exposes a pfnt bitmap font as a golang.org/x/image/font.Face,
// so the standard font.Drawer and measuring helpers can use it directly.
package face

import "image"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/pixelfnt/pfnt"

var _ font.Face = (*Face)(nil)

// A Face adapts a [pfnt.Font] to the font.Face interface. Glyph advances
// include the font's inter-glyph spacing, so drawing a string with a
// font.Drawer spaces glyphs the same way [pfnt.Font.Width] measures them
// (plus one trailing spacing).
//
// The face aliases the font; it stays valid under the same rules.
type Face struct {
	font *pfnt.Font
}

func New(fnt *pfnt.Font) *Face {
	return &Face{ font: fnt }
}

// Close implements font.Face. It does not release the underlying font's
// mapped region; use [pfnt.Font.Close] for that.
func (self *Face) Close() error { return nil }

func (self *Face) Metrics() font.Metrics {
	ascent := int(self.font.Baseline()) + 1 // baseline row is 0-indexed from the top
	height := int(self.font.GlyphHeight())
	descent := height - ascent
	if descent < 0 { descent = 0 }
	return font.Metrics{
		Height: fixed.I(height),
		Ascent: fixed.I(ascent),
		Descent: fixed.I(descent),
		XHeight: fixed.I(int(self.font.XHeight())),
		CapHeight: fixed.I(ascent),
	}
}

// Kern implements font.Face; bitmap fonts carry no kerning pairs.
func (self *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (self *Face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	if !self.font.ContainsGlyph(r) { return 0, false }
	return self.advance(r), true
}

func (self *Face) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	glyph, found := self.font.Glyph(r)
	if !found || glyph.Advance() == 0 { return fixed.Rectangle26_6{}, 0, false }

	metrics := self.Metrics()
	bounds := fixed.Rectangle26_6{
		Min: fixed.Point26_6{ X: 0, Y: -metrics.Ascent },
		Max: fixed.Point26_6{ X: fixed.I(int(glyph.Advance())), Y: metrics.Descent },
	}
	return bounds, self.advance(r), true
}

func (self *Face) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	glyph, found := self.font.Glyph(r)
	if !found || glyph.Advance() == 0 {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}

	mask := glyph.Rasterize()
	x := dot.X.Floor()
	top := dot.Y.Floor() - (int(self.font.Baseline()) + 1)
	dr := image.Rect(x, top, x + int(glyph.Advance()), top + int(glyph.Height()))
	return dr, mask, image.Point{}, self.advance(r), true
}

func (self *Face) advance(r rune) fixed.Int26_6 {
	return fixed.I(self.font.GlyphOrEmojiWidth(r) + int(self.font.GlyphSpacing()))
}
