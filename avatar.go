package avatar

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"image"
	"math/rand/v2"

	"golang.org/x/image/font"
)

// DefaultSize is the canvas dimension in pixels when WithSize is not
// given.
const DefaultSize = 120

// Avatar is a square letter avatar. The display letter, pixel size and
// font are fixed at construction; the background color can be replaced
// with ChangeColor, which recomposes the canvas.
//
// An Avatar comes out of New fully formed and always holds a canvas
// matching its current letter, size and color.
type Avatar struct {
	letter   string
	size     int
	color    Color
	fontPath string

	face   font.Face
	rnd    *rand.Rand
	canvas *image.NRGBA
}

// New builds an Avatar from an identity string. The first character of
// the trimmed string becomes the display letter, uppercased unless
// WithCapitalize(false) is given. Without a WithColor, WithHexColor or
// WithRGBColor option the background color is drawn at random.
//
// All validation happens here, before any Avatar exists: New returns
// ErrEmptyText, ErrInvalidSize, an error wrapping ErrInvalidColor, or a
// *FontError, and never a partially constructed value.
func New(text string, opts ...Option) (*Avatar, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	letter, err := normalizeLetter(text, options.capitalize)
	if err != nil {
		return nil, err
	}
	if options.size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, options.size)
	}

	rnd := options.rnd
	if rnd == nil {
		rnd = defaultRand()
	}
	col, err := options.resolveColor(rnd)
	if err != nil {
		return nil, err
	}

	fnt, err := loadFont(options.fontPath)
	if err != nil {
		return nil, err
	}
	face, err := newFace(fnt, options.fontPath, fontSizeRatio*float64(options.size))
	if err != nil {
		return nil, err
	}

	a := &Avatar{
		letter:   letter,
		size:     options.size,
		color:    col,
		fontPath: options.fontPath,
		face:     face,
		rnd:      rnd,
	}
	a.canvas = compose(a.letter, a.size, a.color, a.face)
	return a, nil
}

// defaultRand builds an instance-local generator seeded from the OS
// entropy pool, so no Avatar shares generator state with another.
func defaultRand() *rand.Rand {
	var seed [16]byte
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
}

// Letter returns the display character.
func (a *Avatar) Letter() string { return a.letter }

// Size returns the canvas dimension in pixels.
func (a *Avatar) Size() int { return a.size }

// Color returns the current background color.
func (a *Avatar) Color() Color { return a.color }

// FontPath returns the font file in use, or "" for the embedded default.
func (a *Avatar) FontPath() string { return a.fontPath }

// Image returns the composed canvas. The image is owned by the Avatar and
// replaced wholesale on ChangeColor; callers must not modify its pixels.
func (a *Avatar) Image() image.Image { return a.canvas }

// String implements fmt.Stringer, e.g. "S 120x120 (31, 171, 137)". The
// color prints in the form it was last set: hex spelling or RGB triple.
func (a *Avatar) String() string {
	return fmt.Sprintf("%s %dx%d %s", a.letter, a.size, a.size, a.color)
}

// ChangeColor replaces the background color and recomposes the canvas.
// Called with no arguments it always draws a fresh random color, never
// keeping the old one. With one argument it sets that color; additional
// arguments are ignored.
//
// This is the only mutation an Avatar supports after construction.
func (a *Avatar) ChangeColor(colors ...Color) {
	if len(colors) > 0 {
		a.color = colors[0]
	} else {
		a.color = randomColor(a.rnd)
	}
	a.canvas = compose(a.letter, a.size, a.color, a.face)
}
