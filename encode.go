package avatar

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// resolveFormat maps a format name ("png", "jpg", "jpeg", "gif", "bmp",
// "tiff", "tif") to the codec's format identifier. Unknown names wrap
// ErrUnsupportedFormat.
func resolveFormat(name string) (imaging.Format, error) {
	f, err := imaging.FormatFromExtension(name)
	if err != nil {
		return f, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}

// Encode writes the canvas to w in the named format. JPEG output is first
// flattened onto an opaque background, since the format has no alpha
// channel; the conversion is silent and deterministic.
func (a *Avatar) Encode(w io.Writer, format string) error {
	f, err := resolveFormat(format)
	if err != nil {
		return err
	}
	return a.encode(w, f)
}

func (a *Avatar) encode(w io.Writer, f imaging.Format) error {
	img := image.Image(a.canvas)
	if f == imaging.JPEG {
		img = flatten(a.canvas)
	}
	return imaging.Encode(w, img, f)
}

// flatten redraws img over an opaque white background, producing an image
// with no alpha channel for encoders that cannot represent one.
func flatten(img image.Image) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
	return out
}

// Stream returns the canvas encoded as raw bytes in the named format.
// Repeated calls without an intervening ChangeColor return identical
// bytes.
func (a *Avatar) Stream(format string) ([]byte, error) {
	var buf bytes.Buffer
	if err := a.Encode(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Base64Image returns the canvas as a data URI usable directly as an HTML
// image source:
//
//	data:image/png;base64,iVBORw0KGgo...
//
// The payload is the standard base64 encoding of exactly the bytes Stream
// returns for the same format. The MIME subtype uses the canonical format
// name, so "jpg" yields "image/jpeg".
func (a *Avatar) Base64Image(format string) (string, error) {
	f, err := resolveFormat(format)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := a.encode(&buf, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/%s;base64,%s",
		strings.ToLower(f.String()),
		base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}

// Save writes the encoded canvas to path, inferring the format from the
// path extension. Existing files are silently overwritten; missing parent
// directories are not created. Every failure is returned as a *WriteError
// carrying the path: an unrecognized extension wraps ErrUnsupportedFormat,
// an I/O failure wraps the OS error.
func (a *Avatar) Save(path string) error {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return &WriteError{
			Path: path,
			Err:  fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path)),
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := a.encode(file, f); err != nil {
		_ = file.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	Logger().Debug("saved avatar",
		"path", path, "format", strings.ToLower(f.String()))
	return nil
}
