package pfnt

import "github.com/pixelfnt/pfnt/internal"

// The four bytes every encoded font starts with.
var magicBytes = [4]byte{'+', 'F', 'n', 't'}

const HeaderSize = internal.HeaderSize
const MaxFontDataSize = internal.MaxFontDataSize
const MaxGlyphCount = internal.MaxGlyphCount

// Common weight values for the header's weight field.
const (
	WeightRegular uint16 = 400
	WeightBold    uint16 = 700
)

const traceParsing = false
