package pfnt

import "fmt"
import "io"
import "io/fs"
import "errors"

import "github.com/pixelfnt/pfnt/internal"

// Decode builds a [Font] from an encoded byte region.
//
// The resulting font aliases data: its coverage bitmap, scanlines and
// widths are subslices of it, so the font must not outlive the region.
// Use [Font.Clone] to detach, or [Parse] to decode into owned storage.
func Decode(data []byte) (*Font, error) {
	if traceParsing { fmt.Printf("decoding header...\n") }
	header, err := decodeHeader(data)
	if err != nil { return nil, err }

	maskEnd := internal.HeaderSize + int(header.rangeMaskSize)
	if len(data) < maskEnd { return nil, ErrTruncatedFile }
	rangeMask := data[internal.HeaderSize : maskEnd]

	glyphCount := 256 * internal.PopCount(rangeMask)
	if glyphCount > internal.MaxGlyphCount { return nil, ErrFontDataTooBig }

	bytesPerGlyph := 4 * int(header.glyphHeight)
	rowsEnd := maskEnd + glyphCount*bytesPerGlyph
	widthsEnd := rowsEnd + glyphCount
	if len(data) < widthsEnd { return nil, ErrTruncatedFile }
	if traceParsing {
		fmt.Printf("decoding %d glyphs (%d coverage bytes)...\n", glyphCount, len(rangeMask))
	}

	font := &Font{
		name: header.name,
		family: header.family,
		rangeMask: rangeMask,
		rows: data[maskEnd : rowsEnd],
		widths: data[rowsEnd : widthsEnd],
		glyphWidth: header.glyphWidth,
		glyphHeight: header.glyphHeight,
		glyphSpacing: header.glyphSpacing,
		baseline: header.baseline,
		meanLine: header.meanLine,
		presentationSize: header.presentationSize,
		weight: header.weight,
		fixedWidth: !header.variableWidth,
	}
	font.rebuildRangePositions()
	font.deriveWidthBounds()
	font.deriveXHeight()
	return font, nil
}

// Parse decodes a font from a reader into owned storage.
func Parse(reader io.Reader) (*Font, error) {
	data, err := io.ReadAll(io.LimitReader(reader, internal.MaxFontDataSize + 1))
	if err != nil { return nil, fmt.Errorf("reading font: %w", err) }
	if len(data) > internal.MaxFontDataSize { return nil, ErrFontDataTooBig }

	font, err := Decode(data)
	if err != nil { return nil, err }
	font.ownsArrays = true // data was read fresh, nobody else aliases it
	return font, nil
}

// ParseFS is a utility method for parsing from a fs.FS, like when using embed.
func ParseFS(filesys fs.FS, filename string) (*Font, error) {
	file, err := filesys.Open(filename)
	if err != nil { return nil, err }
	stat, err := file.Stat()
	if err != nil { return nil, err }
	if stat.Size() > internal.MaxFontDataSize {
		return nil, ErrFontDataTooBig
	}

	font, err := Parse(file)
	if err != nil {
		file.Close()
		return font, err
	}
	return font, file.Close()
}

// LoadFromFile memory-maps the file at path (falling back to a plain read
// where mapping is unavailable) and decodes it in place. The font aliases
// the mapping; release it with [Font.Close] once the font is no longer
// used, or after cloning it.
func LoadFromFile(path string) (*Font, error) {
	region, err := mapRegion(path)
	if err != nil { return nil, err }

	font, err := Decode(region.bytes())
	if err != nil {
		region.release()
		return nil, err
	}
	font.region = region
	return font, nil
}

// IsDecodeError reports whether err is one of the decoding failures
// (invalid header, truncation, oversized declaration) rather than I/O.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrInvalidHeader) ||
		errors.Is(err, ErrTruncatedFile) ||
		errors.Is(err, ErrFontDataTooBig)
}
