// Package pfnt implements a codec and glyph-lookup engine for "+Fnt"
// bitmap fonts, the compact binary format used for fixed and variable
// width pixel fonts.
//
// A .font file is an 81-byte little-endian header followed by a coverage
// bitmap (one bit per 256-code-point range), the glyph scanline words and
// the per-glyph advance widths. Glyphs for a code point are found in O(1)
// through a dense slot table derived from the coverage bitmap.
//
// Within a scanline word, bits are LSB-first: bit x of the y-th word of a
// glyph is pixel column x of row y. Encoding and decoding both follow this
// convention.
//
// Fonts decoded with [Decode] or [LoadFromFile] alias the source byte
// region and must not outlive it; [Font.Clone] and [Font.EnsureSpaceFor]
// always produce or transition to heap-owned storage.
package pfnt
