package internal

const HeaderSize = 81
const MaxFontDataSize = (32 << 20) // sanity limit for both files and in-memory regions

// Unicode caps code points at 0x10FFFF, so a font can't hold more
// than 0x1100 ranges of 256 code points each.
const MaxGlyphCount = 0x110000
const MaxRangeIndex = (MaxGlyphCount / 256) - 1
const MaxRangeMaskSize = MaxGlyphCount / (256 * 8)

// Dense slot sentinel for ranges without storage.
const NoRangePosition = -1

// Header field offsets. The header is packed and little-endian.
const (
	OffsetMagic            = 0
	OffsetGlyphWidth       = 4
	OffsetGlyphHeight      = 5
	OffsetRangeMaskSize    = 6
	OffsetVariableWidth    = 8
	OffsetGlyphSpacing     = 9
	OffsetBaseline         = 10
	OffsetMeanLine         = 11
	OffsetPresentationSize = 12
	OffsetWeight           = 13
	OffsetName             = 15
	OffsetFamily           = 47
	OffsetUnused           = 79
)

const NameFieldSize = 32
