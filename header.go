package pfnt

import "github.com/pixelfnt/pfnt/internal"

// Decoded form of the 81-byte packed header.
type fontHeader struct {
	glyphWidth       uint8
	glyphHeight      uint8
	rangeMaskSize    uint16
	variableWidth    bool
	glyphSpacing     uint8
	baseline         uint8
	meanLine         uint8
	presentationSize uint8
	weight           uint16
	name             string
	family           string
}

func decodeHeader(data []byte) (fontHeader, error) {
	var header fontHeader
	if len(data) < internal.HeaderSize { return header, ErrInvalidHeader }
	for i := 0; i < 4; i++ {
		if data[internal.OffsetMagic + i] != magicBytes[i] { return header, ErrInvalidHeader }
	}

	// name and family are fixed fields whose last byte must be zero
	if data[internal.OffsetName + internal.NameFieldSize - 1] != 0 { return header, ErrInvalidHeader }
	if data[internal.OffsetFamily + internal.NameFieldSize - 1] != 0 { return header, ErrInvalidHeader }

	header.glyphWidth = data[internal.OffsetGlyphWidth]
	header.glyphHeight = data[internal.OffsetGlyphHeight]
	header.rangeMaskSize = internal.DecodeUint16LE(data[internal.OffsetRangeMaskSize : ])
	header.variableWidth = (data[internal.OffsetVariableWidth] != 0)
	header.glyphSpacing = data[internal.OffsetGlyphSpacing]
	header.baseline = data[internal.OffsetBaseline]
	header.meanLine = data[internal.OffsetMeanLine]
	header.presentationSize = data[internal.OffsetPresentationSize]
	header.weight = internal.DecodeUint16LE(data[internal.OffsetWeight : ])
	header.name = internal.DecodePaddedString(data[internal.OffsetName : internal.OffsetName + internal.NameFieldSize])
	header.family = internal.DecodePaddedString(data[internal.OffsetFamily : internal.OffsetFamily + internal.NameFieldSize])
	return header, nil
}

func (self *fontHeader) appendTo(buffer []byte) []byte {
	buffer = append(buffer, magicBytes[0], magicBytes[1], magicBytes[2], magicBytes[3])
	buffer = append(buffer, self.glyphWidth, self.glyphHeight)
	buffer = internal.AppendUint16LE(buffer, self.rangeMaskSize)
	if self.variableWidth {
		buffer = append(buffer, 1)
	} else {
		buffer = append(buffer, 0)
	}
	buffer = append(buffer, self.glyphSpacing, self.baseline, self.meanLine, self.presentationSize)
	buffer = internal.AppendUint16LE(buffer, self.weight)
	buffer = internal.AppendPaddedString(buffer, self.name, internal.NameFieldSize)
	buffer = internal.AppendPaddedString(buffer, self.family, internal.NameFieldSize)
	buffer = internal.AppendUint16LE(buffer, 0) // reserved, must be zero on write
	return buffer
}
