package pfnt

import "fmt"

import "github.com/pixelfnt/pfnt/internal"

// A [Font] is an in-memory bitmap font: a coverage bitmap over 256-code-point
// ranges, plus two dense parallel arrays holding the glyph scanlines and the
// per-glyph advance widths.
//
// Fonts obtained from [Decode] or [LoadFromFile] alias the source byte region
// and must not outlive it (see [Font.Close]). Fonts obtained from [New],
// [Font.Clone] or after [Font.EnsureSpaceFor] own their storage.
//
// A Font is safe for concurrent readers, but mutation is not synchronized
// with anything; callers that mutate must exclude readers themselves.
type Font struct {
	name   string
	family string

	rangeMask      []byte  // coverage bitmap, bit (r%8) of byte r/8 set <=> range r present
	rangePositions []int32 // dense slot per range, internal.NoRangePosition when absent
	rows           []byte  // glyphCount * 4*glyphHeight bytes, one LE word per scanline
	widths         []byte  // glyphCount bytes

	glyphCount int

	glyphWidth       uint8
	glyphHeight      uint8
	minGlyphWidth    uint8
	maxGlyphWidth    uint8
	glyphSpacing     uint8
	baseline         uint8
	meanLine         uint8
	xHeight          uint8
	presentationSize uint8
	weight           uint16
	fixedWidth       bool

	ownsArrays bool
	region     *mappedRegion // non-nil when backed by a mapped file

	oracle      WidthOracle
	variants    VariantSource
	boldVariant *Font
}

// New allocates a blank, owned font with storage for the lowest glyphCount
// code points (rounded up to whole 256-code-point ranges). All glyphs start
// blank with width zero. Use [Font.EnsureSpaceFor] to cover further ranges.
func New(glyphWidth, glyphHeight uint8, fixedWidth bool, glyphCount int) (*Font, error) {
	if glyphCount < 0 || glyphCount > MaxGlyphCount { return nil, ErrCodePointOutOfRange }

	numRanges := internal.CeilDiv(glyphCount, 256)
	mask := make([]byte, internal.CeilDiv(numRanges, 8))
	for r := 0; r < numRanges; r++ {
		mask[r/8] |= 1 << (r % 8)
	}

	font := &Font{
		name: "Untitled",
		family: "Untitled",
		rangeMask: mask,
		rows: make([]byte, numRanges*256*4*int(glyphHeight)),
		widths: make([]byte, numRanges*256),
		glyphWidth: glyphWidth,
		glyphHeight: glyphHeight,
		glyphSpacing: 1,
		weight: WeightRegular,
		fixedWidth: fixedWidth,
		ownsArrays: true,
	}
	font.rebuildRangePositions()
	font.deriveWidthBounds()
	font.deriveXHeight()
	return font, nil
}

// --- metrics and identity accessors ---

func (self *Font) Name() string { return self.name }
func (self *Font) Family() string { return self.family }
func (self *Font) GlyphHeight() uint8 { return self.glyphHeight }

// CellWidth is the advance cell width in pixels for fixed-width fonts,
// or the nominal width for variable-width fonts.
func (self *Font) CellWidth() uint8 { return self.glyphWidth }

func (self *Font) MinGlyphWidth() uint8 { return self.minGlyphWidth }
func (self *Font) MaxGlyphWidth() uint8 { return self.maxGlyphWidth }
func (self *Font) GlyphSpacing() uint8 { return self.glyphSpacing }
func (self *Font) Baseline() uint8 { return self.baseline }
func (self *Font) MeanLine() uint8 { return self.meanLine }
func (self *Font) XHeight() uint8 { return self.xHeight }
func (self *Font) PresentationSize() uint8 { return self.presentationSize }
func (self *Font) Weight() uint16 { return self.weight }
func (self *Font) IsFixedWidth() bool { return self.fixedWidth }

// GlyphCount is the number of storage slots, always a multiple of 256.
func (self *Font) GlyphCount() int { return self.glyphCount }

// RangeMaskSize is the size of the coverage bitmap in bytes.
func (self *Font) RangeMaskSize() int { return len(self.rangeMask) }

// QualifiedName identifies a font within a family, e.g. "Katica 10 400".
func (self *Font) QualifiedName() string {
	return fmt.Sprintf("%s %d %d", self.family, self.presentationSize, self.weight)
}

// --- mutation (owned fonts) ---

func (self *Font) SetName(name string) { self.name = name }
func (self *Font) SetFamily(family string) { self.family = family }
func (self *Font) SetGlyphSpacing(spacing uint8) { self.glyphSpacing = spacing }
func (self *Font) SetPresentationSize(size uint8) { self.presentationSize = size }
func (self *Font) SetWeight(weight uint16) { self.weight = weight }

func (self *Font) SetBaseline(baseline uint8) {
	self.baseline = baseline
	self.deriveXHeight()
}

func (self *Font) SetMeanLine(meanLine uint8) {
	self.meanLine = meanLine
	self.deriveXHeight()
}

// SetGlyphWidth assigns the advance width of a present code point and
// returns false when the code point has no storage slot. Width bounds
// are re-derived.
func (self *Font) SetGlyphWidth(codePoint rune, width uint8) bool {
	index, found := self.GlyphIndex(codePoint)
	if !found { return false }
	self.widths[index] = width
	self.deriveWidthBounds()
	return true
}

// --- lookup ---

// GlyphWidth returns the advance width of the given code point, or zero
// when the code point is absent or its slot is blank.
func (self *Font) GlyphWidth(codePoint rune) uint8 {
	index, found := self.GlyphIndex(codePoint)
	if !found { return 0 }
	return self.widths[index]
}

// ContainsGlyph reports whether the code point has a non-blank glyph.
func (self *Font) ContainsGlyph(codePoint rune) bool {
	return self.GlyphWidth(codePoint) > 0
}

// Glyph returns a view over the code point's scanlines and advance width.
// The second result is false when the code point has no storage slot.
func (self *Font) Glyph(codePoint rune) (Glyph, bool) {
	index, found := self.GlyphIndex(codePoint)
	if !found { return Glyph{}, false }
	return Glyph{ font: self, index: index }, true
}

// GlyphOrEmojiWidth returns the width used when measuring the code point:
// the glyph's own advance when present and non-blank, the cell width for
// fixed-width fonts, the external width oracle's answer otherwise, and the
// width of '?' as the last resort.
func (self *Font) GlyphOrEmojiWidth(codePoint rune) int {
	index, found := self.GlyphIndex(codePoint)
	if found && self.widths[index] > 0 { return int(self.widths[index]) }
	if self.fixedWidth { return int(self.glyphWidth) }
	if self.oracle != nil {
		width, ok := self.oracle.CodePointWidth(codePoint)
		if ok { return width }
	}
	return int(self.GlyphWidth('?'))
}

// --- measurement ---

// Width measures a UTF-8 string in pixels: the sum of every code point's
// [Font.GlyphOrEmojiWidth] plus the glyph spacing between adjacent glyphs.
func (self *Font) Width(text string) int {
	var width int
	first := true
	for _, codePoint := range text {
		if !first { width += int(self.glyphSpacing) }
		first = false
		width += self.GlyphOrEmojiWidth(codePoint)
	}
	return width
}

// WidthRunes is [Font.Width] over an UTF-32 view.
func (self *Font) WidthRunes(runes []rune) int {
	if len(runes) == 0 { return 0 }
	width := (len(runes) - 1)*int(self.glyphSpacing)
	for _, codePoint := range runes {
		width += self.GlyphOrEmojiWidth(codePoint)
	}
	return width
}

// --- variants and collaborators ---

// SetWidthOracle configures the fallback width source consulted by
// [Font.GlyphOrEmojiWidth] for code points missing from this font.
func (self *Font) SetWidthOracle(oracle WidthOracle) { self.oracle = oracle }

// SetVariantSource configures the font lookup used by [Font.BoldVariant].
func (self *Font) SetVariantSource(source VariantSource) {
	self.variants = source
	self.boldVariant = nil
}

// BoldVariant returns the sibling font of the same family and presentation
// size with weight 700, or the receiver itself when no such sibling can be
// found. The result is cached after the first call.
func (self *Font) BoldVariant() *Font {
	if self.boldVariant != nil { return self.boldVariant }
	if self.variants != nil {
		self.boldVariant = self.variants.Get(self.family, self.presentationSize, WeightBold)
	}
	if self.boldVariant == nil { self.boldVariant = self }
	return self.boldVariant
}

// Clone returns a deep copy that owns its storage. The clone shares the
// width oracle and variant source, but not the mapped region nor the
// cached bold variant.
func (self *Font) Clone() *Font {
	clone := *self
	clone.rangeMask = append([]byte(nil), self.rangeMask...)
	clone.rangePositions = append([]int32(nil), self.rangePositions...)
	clone.rows = append([]byte(nil), self.rows...)
	clone.widths = append([]byte(nil), self.widths...)
	clone.ownsArrays = true
	clone.region = nil
	clone.boldVariant = nil
	return &clone
}

// Close releases the mapped byte region backing a font loaded through
// [LoadFromFile]. It is a no-op for owned fonts. The font must not be
// used after Close unless it has transitioned to owned storage.
func (self *Font) Close() error {
	if self.region == nil { return nil }
	region := self.region
	self.region = nil
	return region.release()
}

// --- derived metrics ---

func (self *Font) deriveXHeight() {
	self.xHeight = self.baseline - self.meanLine
}

func (self *Font) deriveWidthBounds() {
	if self.fixedWidth {
		self.minGlyphWidth = self.glyphWidth
		self.maxGlyphWidth = self.glyphWidth
		return
	}

	minimum, maximum := uint8(255), uint8(0)
	for _, width := range self.widths {
		if width < minimum { minimum = width }
		if width > maximum { maximum = width }
	}
	if maximum < self.glyphWidth { maximum = self.glyphWidth }
	self.minGlyphWidth = minimum
	self.maxGlyphWidth = maximum
}
