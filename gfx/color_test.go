package gfx

import "testing"

func TestRgba8String(t *testing.T) {
	tests := []struct {
		c    Rgba8
		want string
	}{
		{Rgba8{0xff, 0x33, 0x66, 0xff}, "#ff3366"},
		{Rgba8{0x00, 0x00, 0x00, 0xff}, "#000000"},
		{Rgba8{0xff, 0xff, 0xff, 0x80}, "#ffffff80"},
		{Transparent, "#00000000"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	got, err := ParseColor("#ff3366")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	want := Rgba8{0xff, 0x33, 0x66, 0xff}
	if got != want {
		t.Errorf("ParseColor = %v, want %v", got, want)
	}
}

func TestParseColorMalformed(t *testing.T) {
	for _, s := range []string{"", "ff3366", "#ff336", "#ff33667f"} {
		if _, err := ParseColor(s); err == nil {
			t.Errorf("ParseColor(%q) should fail", s)
		}
	}
}

func TestParseColorRoundTrip(t *testing.T) {
	c := Rgba8{0x12, 0xab, 0xef, 0xff}
	got, err := ParseColor(c.String())
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if got != c {
		t.Errorf("round trip = %v, want %v", got, c)
	}
}

func TestInvert(t *testing.T) {
	got := Rgba8{0xff, 0x00, 0x80, 0x42}.Invert()
	want := Rgba8{0x00, 0xff, 0x7f, 0x42}
	if got != want {
		t.Errorf("Invert = %v, want %v", got, want)
	}
}

func TestWithAlpha(t *testing.T) {
	got := Red.WithAlpha(0x7f)
	want := Rgba8{0xff, 0x00, 0x00, 0x7f}
	if got != want {
		t.Errorf("WithAlpha = %v, want %v", got, want)
	}
}

func TestRgbaRoundTrip(t *testing.T) {
	for _, c := range []Rgba8{White, Black, Red, Green, Blue, {0x12, 0x34, 0x56, 0x78}} {
		if got := c.Rgba().Rgba8(); got != c {
			t.Errorf("Rgba().Rgba8() = %v, want %v", got, c)
		}
	}
}

func TestRGBAPremultiplies(t *testing.T) {
	r, g, b, a := Rgba8{0xff, 0xff, 0xff, 0x00}.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("RGBA() of transparent white = (%d, %d, %d, %d), want zeros", r, g, b, a)
	}

	r, _, _, a = Rgba8{0xff, 0x00, 0x00, 0xff}.RGBA()
	if r != 0xffff || a != 0xffff {
		t.Errorf("RGBA() of opaque red = (r=%d, a=%d), want (65535, 65535)", r, a)
	}
}
