package color

import "testing"

func TestPack565(t *testing.T) {
	tests := []struct {
		c      Color
		lo, hi byte
	}{
		{Color{R: 0, G: 0, B: 0}, 0x00, 0x00},
		{Color{R: 31, G: 63, B: 31}, 0xFF, 0xFF},
		{Color{R: 31, G: 0, B: 0}, 0x00, 0xF8},
		{Color{R: 0, G: 63, B: 0}, 0xE0, 0x07},
		{Color{R: 0, G: 0, B: 31}, 0x1F, 0x00},
	}
	for _, tt := range tests {
		lo, hi := tt.c.Pack565()
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("%+v.Pack565() = %#x,%#x, want %#x,%#x", tt.c, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestFromRGB8Truncates(t *testing.T) {
	c := FromRGB8(255, 255, 255)
	if c != (Color{R: 31, G: 63, B: 31}) {
		t.Errorf("FromRGB8(255,255,255) = %+v, want {31,63,31}", c)
	}
	c = FromRGB8(0, 0, 0)
	if c != (Color{}) {
		t.Errorf("FromRGB8(0,0,0) = %+v, want zero", c)
	}
}

func TestLessLexicographic(t *testing.T) {
	if !(Color{R: 1}).Less(Color{R: 2}) {
		t.Error("{1,0,0} should be less than {2,0,0}")
	}
	if (Color{R: 1}).Less(Color{R: 1}) {
		t.Error("a color should not be less than itself")
	}
	if !(Color{R: 1, G: 1}).Less(Color{R: 1, G: 2}) {
		t.Error("tie on R should fall through to G")
	}
}

func TestCentroidRoundHalfUp(t *testing.T) {
	// sum=5, n=2 -> 5/2=2.5 rounds up to 3 under (2*5+2)/(2*2) = 12/4 = 3.
	w := Wide{R: 5}
	got := w.Centroid(2, identityTransform)
	if got.R != 3 {
		t.Errorf("Centroid(5,2) R = %d, want 3", got.R)
	}
}

func TestCentroidClampsToChannelRange(t *testing.T) {
	w := Wide{R: 1000, G: 1000, B: 1000}
	got := w.Centroid(1, identityTransform)
	if got.R != 31 || got.G != 63 || got.B != 31 {
		t.Errorf("Centroid overflow not clamped: %+v", got)
	}
}

func TestSquaredTransformRoundTrips(t *testing.T) {
	var w Wide
	for _, v := range []int{10, 10, 10} {
		w = w.Add(Color{R: v}, squaredTransform)
	}
	got := w.Centroid(3, squaredTransform)
	if got.R != 10 {
		t.Errorf("squared-transform centroid of three equal values = %d, want 10", got.R)
	}
}

func TestIsqrtRound(t *testing.T) {
	tests := []struct{ v, want int }{
		{0, 0}, {1, 1}, {4, 2}, {5, 2}, {8, 3}, {9, 3}, {2, 1}, {3, 2},
	}
	for _, tt := range tests {
		if got := isqrtRound(tt.v); got != tt.want {
			t.Errorf("isqrtRound(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	a := Color{R: 1, G: 2, B: 3}
	b := Color{R: 1, G: 2, B: 3}
	c := Color{R: 1, G: 2, B: 4}
	if !a.Equal(b) {
		t.Error("identical colors should be equal")
	}
	if a.Equal(c) {
		t.Error("differing colors should not be equal")
	}
}
