package fontdb

import "os"
import "path/filepath"
import "testing"

import "github.com/pixelfnt/pfnt"

func writeFont(t *testing.T, dir, file, family string, size uint8, weight uint16) {
	t.Helper()
	font, err := pfnt.New(4, 6, false, 256)
	if err != nil { t.Fatalf("unexpected New() error: %s", err) }
	font.SetName(family)
	font.SetFamily(family)
	font.SetPresentationSize(size)
	font.SetWeight(weight)
	if err := font.WriteFile(filepath.Join(dir, file)); err != nil {
		t.Fatalf("unexpected WriteFile() error: %s", err)
	}
}

func TestLoadAndGet(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "katica-10.font", "Katica", 10, 400)
	writeFont(t, dir, "katica-10-bold.font", "Katica", 10, 700)
	writeFont(t, dir, "csilla-12.font", "Csilla", 12, 400)

	// non-font noise must be skipped
	if err := os.WriteFile(filepath.Join(dir, "junk.font"), []byte("junk"), 0o644); err != nil {
		t.Fatalf("unexpected WriteFile error: %s", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("unexpected WriteFile error: %s", err)
	}

	database, err := Load(dir)
	if err != nil { t.Fatalf("unexpected Load() error: %s", err) }
	defer database.Close()

	if database.Count() != 3 {
		t.Fatalf("expected 3 fonts, got %d", database.Count())
	}

	regular := database.Get("Katica", 10, 400)
	if regular == nil { t.Fatalf("expected to find Katica 10 400") }
	if database.Get("Katica", 10, 900) != nil {
		t.Fatalf("expected no Katica 10 900")
	}
	if database.Get("Nope", 10, 400) != nil {
		t.Fatalf("expected no font for unknown family")
	}

	// loaded fonts resolve their bold sibling through the database
	bold := regular.BoldVariant()
	if bold == regular {
		t.Fatalf("expected a distinct bold variant")
	}
	if bold.Weight() != pfnt.WeightBold {
		t.Fatalf("expected weight 700, got %d", bold.Weight())
	}

	// a font without a bold sibling falls back to itself
	csilla := database.Get("Csilla", 12, 400)
	if csilla == nil { t.Fatalf("expected to find Csilla 12 400") }
	if csilla.BoldVariant() != csilla {
		t.Fatalf("expected Csilla to be its own bold variant")
	}
}

func TestEachAndAdd(t *testing.T) {
	database := &Database{}
	font, err := pfnt.New(4, 6, true, 0)
	if err != nil { t.Fatalf("unexpected New() error: %s", err) }
	font.SetFamily("Added")
	database.Add(font)

	var seen int
	database.Each(func(*pfnt.Font) { seen += 1 })
	if seen != 1 { t.Fatalf("expected to visit 1 font, got %d", seen) }
	if database.Get("Added", 0, 400) != font {
		t.Fatalf("expected to find the added font")
	}
}
