package avatar

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// fontSizeRatio is the point size of the glyph face relative to the
// canvas dimension. It scales linearly with the size and never clamps.
const fontSizeRatio = 0.6

// textColor is the fixed tone the letter is drawn with. A constant light
// tone stays legible against backgrounds drawn from the full RGB space;
// no contrast ratio is computed against the background.
var textColor = color.NRGBA{R: 250, G: 250, B: 250, A: 255}

// compose renders the letter centered on a size x size canvas filled with
// the background color. The returned image is freshly allocated, so the
// caller can swap it in whole and no intermediate state is observable.
func compose(letter string, size int, bg Color, face font.Face) *image.NRGBA {
	canvas := imaging.New(size, size, bg.NRGBA())

	// Center the glyph's rendered bounding box, not its baseline origin.
	// BoundString reports the box relative to the dot, so placing the box
	// midpoint on the canvas midpoint absorbs the glyph's bearing and
	// ascent offsets. Positioning the dot at the canvas center instead
	// visibly off-centers most glyphs.
	bounds, _ := font.BoundString(face, letter)
	half := fixed.I(size) / 2
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot: fixed.Point26_6{
			X: half - (bounds.Min.X+bounds.Max.X)/2,
			Y: half - (bounds.Min.Y+bounds.Max.Y)/2,
		},
	}
	d.DrawString(letter)

	Logger().Debug("composed avatar canvas",
		"letter", letter, "size", size, "color", bg.Hex())
	return canvas
}
