package pfnt

import "errors"

// Decoding and mutation errors. I/O failures from file operations are
// returned wrapped instead, so callers can still match them against
// fs.ErrNotExist and friends.
var (
	// Bad magic, or the name/family fields are not zero-terminated,
	// or the input can't even hold a header.
	ErrInvalidHeader = errors.New("invalid font header")

	// The header declares more coverage, rows or widths than the
	// region actually contains.
	ErrTruncatedFile = errors.New("truncated font data")

	// Declared sizes exceed the sanity limits of the format.
	ErrFontDataTooBig = errors.New("font data exceeds maximum size")

	// A code point outside 0..0x10FFFF was passed to a mutation.
	ErrCodePointOutOfRange = errors.New("code point outside unicode range")
)
