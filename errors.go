package avatar

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by construction and serialization. All wrapped
// errors stay matchable with errors.Is.
var (
	// ErrEmptyText is returned when the identity string is empty or
	// contains only whitespace.
	ErrEmptyText = errors.New("avatar: text is empty")

	// ErrInvalidSize is returned when the canvas size is not positive.
	ErrInvalidSize = errors.New("avatar: size must be positive")

	// ErrInvalidColor is returned when a hex string or RGB triple does not
	// describe a valid color.
	ErrInvalidColor = errors.New("avatar: invalid color")

	// ErrFontLoad is returned when the font resource cannot be read or
	// parsed.
	ErrFontLoad = errors.New("avatar: cannot load font")

	// ErrUnsupportedFormat is returned for image format names the codec
	// does not recognize.
	ErrUnsupportedFormat = errors.New("avatar: unsupported image format")
)

// FontError reports a failure to load the font at a given path.
// It wraps ErrFontLoad and the underlying cause.
type FontError struct {
	Path string
	Err  error
}

func (e *FontError) Error() string {
	return fmt.Sprintf("avatar: cannot load font %q: %v", e.Path, e.Err)
}

func (e *FontError) Unwrap() []error { return []error{ErrFontLoad, e.Err} }

// WriteError reports a failure to save the avatar to a file. It wraps the
// underlying cause (an OS error, or ErrUnsupportedFormat when the path
// extension names no known format) together with the attempted path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("avatar: cannot write %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
