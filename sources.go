package pfnt

// WidthOracle supplies pixel widths for code points that a font has no
// glyph for, typically emoji drawn from fallback images. See the emoji
// subpackage for a directory-backed implementation.
type WidthOracle interface {
	// CodePointWidth returns the fallback width in pixels for the code
	// point, or false when no fallback exists.
	CodePointWidth(codePoint rune) (int, bool)
}

// WidthOracleFunc adapts a plain function to the [WidthOracle] interface.
type WidthOracleFunc func(rune) (int, bool)

func (self WidthOracleFunc) CodePointWidth(codePoint rune) (int, bool) { return self(codePoint) }

// VariantSource resolves sibling fonts by family, presentation size and
// weight. It is consulted only by [Font.BoldVariant]; a nil result means
// "no such font". See the fontdb subpackage.
type VariantSource interface {
	Get(family string, size uint8, weight uint16) *Font
}
