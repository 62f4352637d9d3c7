// Package avatar generates simple letter avatars for use as placeholder
// profile images in web applications or elsewhere.
//
// # Overview
//
// An Avatar is built from an identity string (a username, an email, any
// label). The first character of the string is drawn centered on a square
// canvas filled with a background color, which is either supplied by the
// caller or picked at random. The composed image can be read back as an
// image.Image, encoded to raw bytes in a standard raster format, embedded
// in HTML as a base64 data URI, or written straight to a file.
//
// # Quick Start
//
//	import "github.com/goavatar/avatar"
//
//	// Random background color, default 120x120 canvas
//	av, err := avatar.New("smallwat3r")
//	if err != nil {
//	    return err
//	}
//
//	// Raw PNG bytes
//	b, err := av.Stream("png")
//
//	// Data URI for an <img> src attribute
//	uri, err := av.Base64Image("jpeg")
//
//	// Write to disk, format inferred from the extension
//	err = av.Save("me.png")
//
// # Construction
//
// New validates everything up front: the identity string must contain a
// non-whitespace character, the size must be positive, a color given as a
// hex string or RGB triple must be well formed, and the font must load and
// parse. A failed New returns a typed error and no Avatar; there are no
// partially constructed states.
//
// The canvas is composed eagerly at construction and recomposed whenever
// the background color changes, so the image returned by Image or encoded
// by the serializer methods always reflects current state.
//
// # Fonts
//
// By default the glyph is drawn with the embedded Go Regular typeface, so
// the library works with no font files on disk. Use WithFontPath to load a
// .ttf or .otf file instead.
//
// # Concurrency
//
// Independent Avatar instances share no state and may be created and used
// from any number of goroutines. A single instance assumes one writer:
// callers that mix ChangeColor with reads from other goroutines must
// synchronize externally.
package avatar

// Version information
const (
	// Version is the current version of the library
	Version = "1.0.0"

	// VersionMajor is the major version
	VersionMajor = 1

	// VersionMinor is the minor version
	VersionMinor = 0

	// VersionPatch is the patch version
	VersionPatch = 0
)
