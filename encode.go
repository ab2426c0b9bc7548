package pfnt

import "fmt"
import "io"
import "os"
import "path/filepath"

// AppendTo appends the encoded font to buffer. Encoding a decoded font
// reproduces the source region byte for byte.
func (self *Font) AppendTo(buffer []byte) []byte {
	header := fontHeader{
		glyphWidth: self.glyphWidth,
		glyphHeight: self.glyphHeight,
		rangeMaskSize: uint16(len(self.rangeMask)),
		variableWidth: !self.fixedWidth,
		glyphSpacing: self.glyphSpacing,
		baseline: self.baseline,
		meanLine: self.meanLine,
		presentationSize: self.presentationSize,
		weight: self.weight,
		name: self.name,
		family: self.family,
	}
	buffer = header.appendTo(buffer)
	buffer = append(buffer, self.rangeMask...)
	buffer = append(buffer, self.rows...)
	buffer = append(buffer, self.widths...)
	return buffer
}

// Encode returns the font in its on-disk form: header, coverage bitmap,
// scanline words, advance widths.
func (self *Font) Encode() []byte {
	size := HeaderSize + len(self.rangeMask) + len(self.rows) + len(self.widths)
	return self.AppendTo(make([]byte, 0, size))
}

// WriteTo encodes the font into the given writer.
func (self *Font) WriteTo(writer io.Writer) (int64, error) {
	n, err := writer.Write(self.Encode())
	if err != nil { return int64(n), fmt.Errorf("writing font: %w", err) }
	return int64(n), nil
}

// WriteFile encodes the font to path. The data is staged in a temporary
// file in the same directory and renamed over path, so a failed write
// never leaves a partially written font behind.
func (self *Font) WriteFile(path string) error {
	dir := filepath.Dir(path)
	file, err := os.CreateTemp(dir, ".pfnt-*")
	if err != nil { return fmt.Errorf("writing font: %w", err) }
	tempName := file.Name()

	_, err = file.Write(self.Encode())
	if err == nil { err = file.Sync() }
	closeErr := file.Close()
	if err == nil { err = closeErr }
	if err == nil { err = os.Rename(tempName, path) }
	if err != nil {
		os.Remove(tempName)
		return fmt.Errorf("writing font: %w", err)
	}
	return nil
}
