// fntgen builds .font files from plain-text glyph sheets and inspects
// existing ones.
//
// Building:
//
//	fntgen -o myfont.font -name "My Font" -family "My" glyphs.txt
//
// Inspecting:
//
//	fntgen -info myfont.font
package main

import "flag"
import "fmt"
import "os"

import "github.com/pixelfnt/pfnt"

var (
	outName    = flag.String("o", "", "output .font file to create")
	infoName   = flag.String("info", "", ".font file to describe")
	fontName   = flag.String("name", "Untitled", "font display name")
	familyName = flag.String("family", "Untitled", "font family name")
	size       = flag.Int("size", 10, "presentation size in points")
	weight     = flag.Int("weight", 400, "weight, 100..900")
	spacing    = flag.Int("spacing", 1, "inter-glyph spacing in pixels")
	baseline   = flag.Int("baseline", 0, "baseline row, 0-indexed from the top")
	meanLine   = flag.Int("meanline", 0, "mean line (x-height reference) row")
	fixed      = flag.Bool("fixed", false, "produce a fixed-width font")
)

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fntgen: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	flag.Parse()

	if *infoName != "" {
		if err := describe(*infoName); err != nil { fail("%s", err) }
		return
	}
	if flag.NArg() != 1 || *outName == "" {
		fmt.Fprintln(os.Stderr, "usage: fntgen -o out.font [options] glyphs.txt")
		fmt.Fprintln(os.Stderr, "       fntgen -info some.font")
		flag.PrintDefaults()
		os.Exit(2)
	}

	input, err := os.Open(flag.Arg(0))
	if err != nil { fail("%s", err) }
	parsed, err := parseSheet(input)
	input.Close()
	if err != nil { fail("parsing %s: %s", flag.Arg(0), err) }

	font, err := buildFont(parsed)
	if err != nil { fail("%s", err) }
	if err := font.WriteFile(*outName); err != nil { fail("%s", err) }
	fmt.Printf("wrote %s: %d glyph slots, %d ranges\n", *outName, font.GlyphCount(), font.GlyphCount()/256)
}

func buildFont(parsed *sheet) (*pfnt.Font, error) {
	font, err := pfnt.New(uint8(parsed.width), uint8(parsed.height), *fixed, 0)
	if err != nil { return nil, err }
	font.SetName(*fontName)
	font.SetFamily(*familyName)
	font.SetPresentationSize(uint8(*size))
	font.SetWeight(uint16(*weight))
	font.SetGlyphSpacing(uint8(*spacing))
	font.SetBaseline(uint8(*baseline))
	font.SetMeanLine(uint8(*meanLine))

	for char, sheetGlyph := range parsed.glyphs {
		if err := font.EnsureSpaceFor(char); err != nil {
			return nil, fmt.Errorf("no space for %q: %w", char, err)
		}
		font.SetGlyphWidth(char, uint8(sheetGlyph.width))
		glyph, _ := font.Glyph(char)
		for y, bits := range sheetGlyph.rows {
			for x := 0; x < sheetGlyph.width; x++ {
				if bits & (1 << uint(x)) != 0 {
					glyph.SetBit(x, y, true)
				}
			}
		}
	}
	return font, nil
}

func describe(path string) error {
	font, err := pfnt.LoadFromFile(path)
	if err != nil { return err }
	defer font.Close()

	kind := "fixed"
	if !font.IsFixedWidth() { kind = "variable" }
	fmt.Printf("%s: %q (family %q)\n", path, font.Name(), font.Family())
	fmt.Printf("  %s width, cell %dx%d, spacing %d\n",
		kind, font.CellWidth(), font.GlyphHeight(), font.GlyphSpacing())
	fmt.Printf("  baseline %d, mean line %d, x-height %d\n",
		font.Baseline(), font.MeanLine(), font.XHeight())
	fmt.Printf("  size %d, weight %d, %d glyph slots\n",
		font.PresentationSize(), font.Weight(), font.GlyphCount())

	fmt.Printf("  ranges:")
	for rangeStart := rune(0); int(rangeStart) < pfnt.MaxGlyphCount; rangeStart += 256 {
		if font.HasRange(rangeStart) {
			fmt.Printf(" U+%04X", rangeStart)
		}
	}
	fmt.Printf("\n")
	return nil
}
