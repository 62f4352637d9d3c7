package avatar

import "math/rand/v2"

// Option configures an Avatar during creation.
// Use functional options to customize New behavior.
//
// Example:
//
//	// Defaults: 120px, random color, embedded font, uppercased letter
//	av, err := avatar.New("alice")
//
//	// Fully customized
//	av, err := avatar.New("alice",
//	    avatar.WithSize(250),
//	    avatar.WithHexColor("#1fab89"),
//	    avatar.WithCapitalize(false),
//	)
type Option func(*avatarOptions)

// avatarOptions holds optional configuration for New.
type avatarOptions struct {
	size       int
	capitalize bool
	fontPath   string
	rnd        *rand.Rand

	// Color selection. colorSet records that some color option was given;
	// colorErr carries a hex/RGB validation failure for New to report.
	color    Color
	colorSet bool
	colorErr error
}

// defaultOptions returns the default avatar options.
func defaultOptions() avatarOptions {
	return avatarOptions{
		size:       DefaultSize,
		capitalize: true,
	}
}

// resolveColor produces the background color: the validated option value
// when one was given, a random draw otherwise.
func (o *avatarOptions) resolveColor(rnd *rand.Rand) (Color, error) {
	if o.colorErr != nil {
		return Color{}, o.colorErr
	}
	if !o.colorSet {
		return randomColor(rnd), nil
	}
	return o.color, nil
}

// WithSize sets the canvas dimension in pixels. The canvas is always
// square. New fails with ErrInvalidSize unless the size is positive.
func WithSize(size int) Option {
	return func(o *avatarOptions) {
		o.size = size
	}
}

// WithColor sets the background color from an already constructed Color,
// typically obtained from ParseHex or FromRGB.
func WithColor(c Color) Option {
	return func(o *avatarOptions) {
		o.color = c
		o.colorSet = true
	}
}

// WithHexColor sets the background color from a hex string such as
// "#1fab89". Validation is deferred to New, which fails with an error
// wrapping ErrInvalidColor for malformed input.
func WithHexColor(s string) Option {
	return func(o *avatarOptions) {
		o.color, o.colorErr = ParseHex(s)
		o.colorSet = true
	}
}

// WithRGBColor sets the background color from an RGB triple. Validation
// is deferred to New, which fails with an error wrapping ErrInvalidColor
// when a channel is outside [0, 255].
func WithRGBColor(r, g, b int) Option {
	return func(o *avatarOptions) {
		o.color, o.colorErr = FromRGB(r, g, b)
		o.colorSet = true
	}
}

// WithFontPath sets the font file (.ttf or .otf) used to draw the letter,
// replacing the embedded Go Regular default. New fails with a *FontError
// when the file is missing, has an unsupported extension, or does not
// parse.
func WithFontPath(path string) Option {
	return func(o *avatarOptions) {
		o.fontPath = path
	}
}

// WithCapitalize controls uppercasing of the display letter. The default
// is true.
func WithCapitalize(capitalize bool) Option {
	return func(o *avatarOptions) {
		o.capitalize = capitalize
	}
}

// WithRand sets the randomness source used to draw background colors.
// Seed it for reproducible colors under test:
//
//	rnd := rand.New(rand.NewPCG(1, 2))
//	av, err := avatar.New("alice", avatar.WithRand(rnd))
//
// By default each Avatar gets its own generator seeded from the OS
// entropy pool.
func WithRand(rnd *rand.Rand) Option {
	return func(o *avatarOptions) {
		o.rnd = rnd
	}
}
