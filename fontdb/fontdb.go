// Package fontdb indexes bitmap fonts by family, presentation size and
// weight, the lookup [pfnt.Font.BoldVariant] relies on. A database is
// usually loaded once from a directory of .font files at startup.
package fontdb

import "fmt"
import "os"
import "path/filepath"
import "strings"

import "github.com/pixelfnt/pfnt"

// A Database holds a set of loaded fonts. It implements
// [pfnt.VariantSource], and every font it loads or adopts is wired back
// to it, so bold-variant lookups work out of the box.
//
// The database is safe for concurrent lookups once loading is done.
type Database struct {
	fonts []*pfnt.Font
}

// Load scans dir for .font files and decodes each of them. Files that are
// not valid fonts are skipped; I/O failures abort the load. The returned
// database keeps the fonts' byte regions mapped until [Database.Close].
func Load(dir string) (*Database, error) {
	entries, err := os.ReadDir(dir)
	if err != nil { return nil, fmt.Errorf("scanning font directory: %w", err) }

	database := &Database{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".font") { continue }
		font, err := pfnt.LoadFromFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			if pfnt.IsDecodeError(err) { continue } // not one of ours
			database.Close()
			return nil, err
		}
		database.Add(font)
	}
	return database, nil
}

// Add adopts a font into the database and wires the database as the
// font's variant source.
func (self *Database) Add(font *pfnt.Font) {
	font.SetVariantSource(self)
	self.fonts = append(self.fonts, font)
}

// Get returns the font matching family, presentation size and weight,
// or nil when the database holds no such font.
func (self *Database) Get(family string, size uint8, weight uint16) *pfnt.Font {
	for _, font := range self.fonts {
		if font.Family() != family { continue }
		if font.PresentationSize() != size { continue }
		if font.Weight() != weight { continue }
		return font
	}
	return nil
}

// Count returns the number of loaded fonts.
func (self *Database) Count() int { return len(self.fonts) }

// Each calls fn for every loaded font, in load order.
func (self *Database) Each(fn func(*pfnt.Font)) {
	for _, font := range self.fonts {
		fn(font)
	}
}

// Close releases every font's mapped region. The first failure is
// reported, but all fonts are closed regardless.
func (self *Database) Close() error {
	var firstErr error
	for _, font := range self.fonts {
		if err := font.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	self.fonts = nil
	return firstErr
}
