package render

import (
	"image/color"
	"testing"
)

func TestFillDyeRGBA(t *testing.T) {
	r := []float64{0, 1, 0.5, 0.25}
	g := []float64{1, 0, 0.5, 0.25}
	b := []float64{0, 0, 0.5, 0.25}
	solid := []bool{false, false, false, true}
	barrier := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	buf := make([]byte, len(r)*4)

	fillDyeRGBA(buf, r, g, b, solid, barrier)

	want := []byte{
		0, 255, 0, 255,
		255, 0, 0, 255,
		127, 127, 127, 255,
		10, 20, 30, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestFillDyeRGBANilSolidMask(t *testing.T) {
	buf := make([]byte, 4)
	fillDyeRGBA(buf, []float64{1}, []float64{1}, []float64{1}, nil, color.RGBA{})
	for i := 0; i < 4; i++ {
		if buf[i] != 255 {
			t.Fatalf("buf[%d] = %d, want 255", i, buf[i])
		}
	}
}

func TestChannelByteClamps(t *testing.T) {
	cases := []struct {
		in   float64
		want byte
	}{
		{-1, 0},
		{0, 0},
		{0.5, 127},
		{1, 255},
		{2, 255},
	}
	for _, c := range cases {
		if got := channelByte(c.in); got != c.want {
			t.Errorf("channelByte(%g) = %d, want %d", c.in, got, c.want)
		}
	}
}
