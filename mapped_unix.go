//go:build unix

package pfnt

import "fmt"
import "os"

import "golang.org/x/sys/unix"

import "github.com/pixelfnt/pfnt/internal"

// A mappedRegion hands out the raw bytes of a file without copying them.
// On unix builds this is a private read-only memory mapping.
type mappedRegion struct {
	data []byte
}

func mapRegion(path string) (*mappedRegion, error) {
	file, err := os.Open(path)
	if err != nil { return nil, fmt.Errorf("opening font: %w", err) }
	defer file.Close()

	info, err := file.Stat()
	if err != nil { return nil, fmt.Errorf("opening font: %w", err) }
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("opening font %s: not a regular file", path)
	}
	if info.Size() > internal.MaxFontDataSize { return nil, ErrFontDataTooBig }
	if info.Size() == 0 { return nil, ErrInvalidHeader }

	data, err := unix.Mmap(int(file.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil { return nil, fmt.Errorf("mapping font: %w", err) }
	return &mappedRegion{ data: data }, nil
}

func (self *mappedRegion) bytes() []byte { return self.data }

func (self *mappedRegion) release() error {
	if self.data == nil { return nil }
	data := self.data
	self.data = nil
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("unmapping font: %w", err)
	}
	return nil
}
