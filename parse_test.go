package pfnt

import "bytes"
import "testing"

// builds an owned variable/fixed width font covering the given ranges,
// with every present width set to defaultWidth
func buildTestFont(t *testing.T, fixed bool, defaultWidth uint8, ranges ...rune) *Font {
	t.Helper()
	font, err := New(4, 6, fixed, 0)
	if err != nil { t.Fatalf("unexpected New() error: %s", err) }
	font.SetGlyphSpacing(1)
	for _, rangeStart := range ranges {
		err = font.EnsureSpaceFor(rangeStart)
		if err != nil { t.Fatalf("unexpected EnsureSpaceFor() error: %s", err) }
	}
	for i := range font.widths {
		font.widths[i] = defaultWidth
	}
	font.deriveWidthBounds()
	return font
}

func TestMinimalFontEncodedSize(t *testing.T) {
	// fixed-width 4x6 font with only range 0 present, all widths = 4
	font := buildTestFont(t, true, 4, 0)

	encoded := font.Encode()
	expectedSize := 81 + 1 + 256*(24 + 1)
	if len(encoded) != expectedSize {
		t.Fatalf("expected encoded size %d, got %d", expectedSize, len(encoded))
	}
	if font.RangeMaskSize() != 1 || font.rangeMask[0] != 0x01 {
		t.Fatalf("expected coverage [0x01], got %v", font.rangeMask)
	}
	if width := font.Width("AB"); width != 9 {
		t.Fatalf("expected Width(\"AB\") == 9 with spacing 1, got %d", width)
	}
}

func TestRoundTrip(t *testing.T) {
	// variable-width font with ranges {0, 5}, widths all 3 except 'A' = 7
	font := buildTestFont(t, false, 3, 0, 0x500)
	if !font.SetGlyphWidth('A', 7) {
		t.Fatalf("expected 'A' to have a storage slot")
	}

	encoded := font.Encode()
	decoded, err := Decode(encoded)
	if err != nil { t.Fatalf("unexpected Decode() error: %s", err) }

	reEncoded := decoded.Encode()
	if !bytes.Equal(encoded, reEncoded) {
		t.Fatalf("expected byte-identical round trip, got %d vs %d differing bytes", len(encoded), len(reEncoded))
	}
	if decoded.GlyphWidth('A') != 7 {
		t.Fatalf("expected GlyphWidth('A') == 7, got %d", decoded.GlyphWidth('A'))
	}
	if decoded.GlyphWidth(0x500) != 3 {
		t.Fatalf("expected GlyphWidth(0x500) == 3, got %d", decoded.GlyphWidth(0x500))
	}
	if decoded.IsFixedWidth() {
		t.Fatalf("expected variable width font after decode")
	}
	if decoded.MaxGlyphWidth() != 7 {
		t.Fatalf("expected max glyph width 7, got %d", decoded.MaxGlyphWidth())
	}
}

func TestDecodeBadMagic(t *testing.T) {
	font := buildTestFont(t, true, 4, 0)
	encoded := font.Encode()
	copy(encoded, "Fnt+")

	_, err := Decode(encoded)
	if err != ErrInvalidHeader {
		t.Fatalf("expected ErrInvalidHeader, got %v", err)
	}
}

func TestDecodeShortInput(t *testing.T) {
	_, err := Decode([]byte("+Fnt"))
	if err != ErrInvalidHeader {
		t.Fatalf("expected ErrInvalidHeader for short input, got %v", err)
	}
}

func TestDecodeUnterminatedNames(t *testing.T) {
	font := buildTestFont(t, true, 4, 0)
	encoded := font.Encode()

	mutated := append([]byte(nil), encoded...)
	mutated[15 + 31] = 'x' // name field loses its terminator
	if _, err := Decode(mutated); err != ErrInvalidHeader {
		t.Fatalf("expected ErrInvalidHeader for unterminated name, got %v", err)
	}

	mutated = append(mutated[:0], encoded...)
	mutated[47 + 31] = 'x' // family field loses its terminator
	if _, err := Decode(mutated); err != ErrInvalidHeader {
		t.Fatalf("expected ErrInvalidHeader for unterminated family, got %v", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	font := buildTestFont(t, true, 4, 0)
	encoded := font.Encode()

	// cut anywhere after the header: coverage, rows or widths
	for _, size := range []int{ 81, 81 + 1, len(encoded) - 1 } {
		_, err := Decode(encoded[:size])
		if err != ErrTruncatedFile {
			t.Fatalf("expected ErrTruncatedFile at size %d, got %v", size, err)
		}
	}
}

func TestParseReaderOwnsStorage(t *testing.T) {
	font := buildTestFont(t, false, 3, 0)
	font.SetName("Reader")

	parsed, err := Parse(bytes.NewReader(font.Encode()))
	if err != nil { t.Fatalf("unexpected Parse() error: %s", err) }
	if !parsed.ownsArrays {
		t.Fatalf("expected Parse() result to own its storage")
	}
	if parsed.Name() != "Reader" {
		t.Fatalf("expected name 'Reader', got '%s'", parsed.Name())
	}
}

func TestDecodeAliasesRegion(t *testing.T) {
	font := buildTestFont(t, false, 3, 0)
	encoded := font.Encode()

	decoded, err := Decode(encoded)
	if err != nil { t.Fatalf("unexpected Decode() error: %s", err) }
	if decoded.ownsArrays {
		t.Fatalf("expected Decode() result to alias the region")
	}

	// widths live directly inside the region
	index, found := decoded.GlyphIndex('A')
	if !found { t.Fatalf("expected 'A' to be present") }
	encoded[81 + 1 + 256*24 + index] = 11 // widths start after header+coverage+rows
	if decoded.GlyphWidth('A') != 11 {
		t.Fatalf("expected aliased width 11, got %d", decoded.GlyphWidth('A'))
	}
}
