package avatar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// fontDPI is the resolution faces are rasterized at. At 72 DPI, point
// size and pixel size coincide.
const fontDPI = 72

// loadFont reads and parses the font file at path, or the embedded Go
// Regular typeface when path is empty. Any failure wraps ErrFontLoad in a
// *FontError carrying the path.
func loadFont(path string) (*sfnt.Font, error) {
	if path == "" {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, &FontError{Path: fontPathLabel(path), Err: err}
		}
		return f, nil
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".ttf" && ext != ".otf" {
		return nil, &FontError{
			Path: path,
			Err:  fmt.Errorf("extension %q not supported (want .ttf or .otf)", filepath.Ext(path)),
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FontError{Path: path, Err: err}
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &FontError{Path: path, Err: err}
	}
	return f, nil
}

// newFace builds a face rendering fnt at the given point size.
func newFace(fnt *sfnt.Font, path string, points float64) (font.Face, error) {
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    points,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &FontError{Path: fontPathLabel(path), Err: err}
	}
	return face, nil
}

// fontPathLabel names the font source in error messages.
func fontPathLabel(path string) string {
	if path == "" {
		return "(embedded)"
	}
	return path
}
