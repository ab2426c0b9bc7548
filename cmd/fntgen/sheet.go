package main

import "bufio"
import "fmt"
import "io"
import "strings"
import "unicode/utf8"

// A glyph sheet is a plain-text description of a pixel font: one line per
// glyph row, the glyph's character first, then its pixels between square
// brackets, 'X' for set and space for clear. Consecutive lines for the
// same character stack top to bottom:
//
//	A [ X ]
//	A [X X]
//	A [XXX]
//	A [X X]
//	A [X X]
type sheetGlyph struct {
	rows  []uint32
	width int
}

type sheet struct {
	glyphs map[rune]*sheetGlyph
	height int
	width  int // widest glyph
}

func rowBits(cells string) uint32 {
	var bits uint32
	for i := 0; i < len(cells) && i < 32; i++ {
		if cells[i] == 'X' {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

func parseSheet(reader io.Reader) (*sheet, error) {
	result := &sheet{ glyphs: make(map[rune]*sheetGlyph) }
	scanner := bufio.NewScanner(reader)
	lineNo := 0
	for scanner.Scan() {
		lineNo += 1
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") { continue }

		char, charLen := utf8.DecodeRuneInString(line)
		if char == utf8.RuneError {
			return nil, fmt.Errorf("line %d: invalid character", lineNo)
		}
		open := strings.IndexByte(line[charLen:], '[')
		if open < 0 {
			return nil, fmt.Errorf("line %d: missing '['", lineNo)
		}
		cells := line[charLen + open + 1:]
		closing := strings.IndexByte(cells, ']')
		if closing < 0 {
			return nil, fmt.Errorf("line %d: missing ']'", lineNo)
		}
		cells = cells[:closing]
		if len(cells) > 32 {
			return nil, fmt.Errorf("line %d: glyphs can't be wider than 32 pixels", lineNo)
		}

		glyph := result.glyphs[char]
		if glyph == nil {
			glyph = &sheetGlyph{}
			result.glyphs[char] = glyph
		}
		glyph.rows = append(glyph.rows, rowBits(cells))
		if len(cells) > glyph.width { glyph.width = len(cells) }

		if len(glyph.rows) > result.height { result.height = len(glyph.rows) }
		if glyph.width > result.width { result.width = glyph.width }
	}
	if err := scanner.Err(); err != nil { return nil, err }
	if len(result.glyphs) == 0 {
		return nil, fmt.Errorf("sheet defines no glyphs")
	}
	if result.height > 255 {
		return nil, fmt.Errorf("glyphs can't be taller than 255 pixels")
	}
	return result, nil
}
