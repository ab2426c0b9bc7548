//go:build !unix

package pfnt

import "fmt"
import "os"

import "github.com/pixelfnt/pfnt/internal"

// Fallback region provider for targets without memory mapping: the whole
// file is read into the heap and "release" just drops the reference.
type mappedRegion struct {
	data []byte
}

func mapRegion(path string) (*mappedRegion, error) {
	info, err := os.Stat(path)
	if err != nil { return nil, fmt.Errorf("opening font: %w", err) }
	if info.Size() > internal.MaxFontDataSize { return nil, ErrFontDataTooBig }

	data, err := os.ReadFile(path)
	if err != nil { return nil, fmt.Errorf("reading font: %w", err) }
	return &mappedRegion{ data: data }, nil
}

func (self *mappedRegion) bytes() []byte { return self.data }

func (self *mappedRegion) release() error {
	self.data = nil
	return nil
}
