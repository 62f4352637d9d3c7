package avatar

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
	}{
		{"#FF0000", 255, 0, 0},
		{"#00ff00", 0, 255, 0},
		{"0000FF", 0, 0, 255},
		{"#1fab89", 31, 171, 137},
		{"#FaFaFa", 250, 250, 250},
		{"ffffff", 255, 255, 255},
		{"#000000", 0, 0, 0},
	}
	for _, tt := range tests {
		c, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		r, g, b := c.RGB()
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("ParseHex(%q) = (%d, %d, %d), want (%d, %d, %d)",
				tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"#",
		"#FFF",
		"#12345",
		"#1234567",
		"#ZZZZZZ",
		"cafe0g",
		"# ff000",
	} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestParseHexSpelling(t *testing.T) {
	c, err := ParseHex("#FF0000")
	if err != nil {
		t.Fatalf("ParseHex error: %v", err)
	}
	// String preserves the caller's spelling, Hex is canonical.
	if got := c.String(); got != "#FF0000" {
		t.Errorf("String() = %q, want %q", got, "#FF0000")
	}
	if got := c.Hex(); got != "#ff0000" {
		t.Errorf("Hex() = %q, want %q", got, "#ff0000")
	}
}

func TestFromRGB(t *testing.T) {
	c, err := FromRGB(10, 20, 30)
	if err != nil {
		t.Fatalf("FromRGB error: %v", err)
	}
	r, g, b := c.RGB()
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("RGB() = (%d, %d, %d), want (10, 20, 30)", r, g, b)
	}
	if got := c.String(); got != "(10, 20, 30)" {
		t.Errorf("String() = %q, want %q", got, "(10, 20, 30)")
	}
	if got := c.Hex(); got != "#0a141e" {
		t.Errorf("Hex() = %q, want %q", got, "#0a141e")
	}
}

func TestFromRGBInvalid(t *testing.T) {
	for _, tt := range [][3]int{
		{256, 0, 0},
		{0, 256, 0},
		{0, 0, 256},
		{-1, 0, 0},
		{0, -20, 0},
		{1000, 1000, 1000},
	} {
		if _, err := FromRGB(tt[0], tt[1], tt[2]); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("FromRGB(%d, %d, %d) error = %v, want ErrInvalidColor",
				tt[0], tt[1], tt[2], err)
		}
	}
}

func TestColorNRGBA(t *testing.T) {
	c, err := FromRGB(1, 2, 3)
	if err != nil {
		t.Fatalf("FromRGB error: %v", err)
	}
	n := c.NRGBA()
	if n.R != 1 || n.G != 2 || n.B != 3 {
		t.Errorf("NRGBA() = %+v, want R:1 G:2 B:3", n)
	}
	if n.A != 255 {
		t.Errorf("NRGBA().A = %d, want 255 (always opaque)", n.A)
	}
}

func TestRandomColor(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		c := randomColor(rnd)
		seen[c.Hex()] = true
		if c.spelling != "" {
			t.Errorf("randomColor spelling = %q, want empty", c.spelling)
		}
	}
	// 32 draws from a 256^3 space collapsing to a handful of values would
	// mean a broken generator.
	if len(seen) < 16 {
		t.Errorf("32 random colors produced only %d distinct values", len(seen))
	}
}
