package face

import "image"
import "testing"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/pixelfnt/pfnt"

func buildFaceFont(t *testing.T) *pfnt.Font {
	t.Helper()
	fnt, err := pfnt.New(4, 6, false, 256)
	if err != nil { t.Fatalf("unexpected New() error: %s", err) }
	fnt.SetGlyphSpacing(1)
	fnt.SetBaseline(4)
	fnt.SetMeanLine(2)
	fnt.SetGlyphWidth('a', 3)
	fnt.SetGlyphWidth('b', 4)

	glyph, found := fnt.Glyph('a')
	if !found { t.Fatalf("expected 'a' to be present") }
	glyph.SetBit(0, 0, true)
	glyph.SetBit(2, 5, true)
	return fnt
}

func TestFaceMeasuring(t *testing.T) {
	fnt := buildFaceFont(t)
	fontFace := New(fnt)
	defer fontFace.Close()

	advance, ok := fontFace.GlyphAdvance('a')
	if !ok { t.Fatalf("expected 'a' to have an advance") }
	if advance != fixed.I(4) { // 3 pixels + 1 spacing
		t.Fatalf("expected advance 4, got %v", advance)
	}
	if _, ok := fontFace.GlyphAdvance(0x500); ok {
		t.Fatalf("expected absent code point to have no advance")
	}

	// MeasureString sums per-glyph advances (spacing included per glyph)
	measured := font.MeasureString(fontFace, "ab")
	if measured != fixed.I(3 + 1 + 4 + 1) {
		t.Fatalf("expected measure 9, got %v", measured)
	}
}

func TestFaceMetrics(t *testing.T) {
	fontFace := New(buildFaceFont(t))
	metrics := fontFace.Metrics()
	if metrics.Ascent != fixed.I(5) { // baseline row 4, 0-indexed
		t.Fatalf("expected ascent 5, got %v", metrics.Ascent)
	}
	if metrics.Descent != fixed.I(1) {
		t.Fatalf("expected descent 1, got %v", metrics.Descent)
	}
	if metrics.Height != fixed.I(6) {
		t.Fatalf("expected height 6, got %v", metrics.Height)
	}
	if metrics.XHeight != fixed.I(2) {
		t.Fatalf("expected x-height 2, got %v", metrics.XHeight)
	}
	if fontFace.Kern('a', 'b') != 0 {
		t.Fatalf("expected zero kerning")
	}
}

func TestFaceGlyphDrawing(t *testing.T) {
	fontFace := New(buildFaceFont(t))

	dot := fixed.P(10, 20)
	dr, mask, _, advance, ok := fontFace.Glyph(dot, 'a')
	if !ok { t.Fatalf("expected a glyph for 'a'") }
	if advance != fixed.I(4) { t.Fatalf("expected advance 4, got %v", advance) }
	if dr != image.Rect(10, 15, 13, 21) { // top = 20 - ascent(5)
		t.Fatalf("unexpected draw rectangle %v", dr)
	}

	// the mask must carry the glyph's set bits
	alpha, isAlpha := mask.(*image.Alpha)
	if !isAlpha { t.Fatalf("expected an *image.Alpha mask") }
	if alpha.Pix[0] != 255 {
		t.Fatalf("expected opaque mask pixel at (0,0)")
	}

	// draw through the standard drawer to make sure the plumbing holds
	dst := image.NewRGBA(image.Rect(0, 0, 32, 32))
	drawer := font.Drawer{
		Dst: dst,
		Src: image.Black,
		Face: fontFace,
		Dot: dot,
	}
	drawer.DrawString("a")
	if dst.RGBAAt(10, 15).A == 0 {
		t.Fatalf("expected drawn pixel at (10,15)")
	}
}

func TestFaceSkipsBlankGlyphs(t *testing.T) {
	fnt := buildFaceFont(t)
	fontFace := New(fnt)

	// 'z' has a slot but zero width
	if _, _, _, _, ok := fontFace.Glyph(fixed.P(0, 0), 'z'); ok {
		t.Fatalf("expected no glyph for a blank slot")
	}
	if _, _, ok := fontFace.GlyphBounds('z'); ok {
		t.Fatalf("expected no bounds for a blank slot")
	}
}
